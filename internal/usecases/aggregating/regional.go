package aggregating

import (
	"sort"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

// aggregateRegions deriva o rollup regional. A cada merge as taxas
// derivadas são imediatamente recalculadas a partir das somas correntes —
// a taxa de um registro individual nunca entra em uma média.
func aggregateRegions(data *domain.MarketingData) []RegionalAggregate {
	byRegion := make(map[string]*RegionalAggregate)
	order := make([]string, 0)

	for _, campaign := range data.Campaigns {
		if len(campaign.RegionalPerformance) == 0 {
			continue
		}

		for _, perf := range campaign.RegionalPerformance {
			existing, ok := byRegion[perf.Region]
			if !ok {
				seed := &RegionalAggregate{
					Region:         perf.Region,
					Country:        perf.Country,
					Impressions:    perf.Impressions,
					Clicks:         perf.Clicks,
					Conversions:    perf.Conversions,
					Spend:          perf.Spend,
					Revenue:        perf.Revenue,
					CTR:            perf.CTR,
					ConversionRate: perf.ConversionRate,
					CPC:            perf.CPC,
					CPA:            perf.CPA,
					ROAS:           perf.ROAS,
				}
				byRegion[perf.Region] = seed
				order = append(order, perf.Region)
				continue
			}

			existing.Impressions += perf.Impressions
			existing.Clicks += perf.Clicks
			existing.Conversions += perf.Conversions
			existing.Spend += perf.Spend
			existing.Revenue += perf.Revenue
			existing.recompute()
		}
	}

	regions := make([]RegionalAggregate, 0, len(order))
	for _, key := range order {
		regions = append(regions, *byRegion[key])
	}

	sort.SliceStable(regions, func(i, j int) bool {
		return regions[i].Revenue > regions[j].Revenue
	})

	return regions
}
