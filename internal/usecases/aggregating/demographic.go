package aggregating

import (
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

// aggregateDemographics deriva o rollup demográfico do snapshot. O
// investimento e a receita de cada slice são uma alocação proporcional do
// total da campanha pela fatia de audiência, não um valor reportado
// diretamente.
func aggregateDemographics(data *domain.MarketingData) *DemographicView {
	view := &DemographicView{
		AgeGroups:    make(map[string]SpendRevenue),
		MaleSlices:   make([]DemographicSliceRow, 0),
		FemaleSlices: make([]DemographicSliceRow, 0),
	}

	for _, campaign := range data.Campaigns {
		// Campanha sem breakdown demográfico não contribui com nada
		if len(campaign.DemographicBreakdown) == 0 {
			continue
		}

		for _, slice := range campaign.DemographicBreakdown {
			share := slice.PercentageOfAudience / 100
			demoSpend := campaign.Spend * share
			demoRevenue := campaign.Revenue * share

			// Gêneros fora de Male/Female ficam fora dos totais por gênero,
			// mas ainda contribuem para o mapa por faixa etária
			switch slice.Gender {
			case domain.GenderMale:
				view.Male.Clicks += slice.Performance.Clicks
				view.Male.Spend += demoSpend
				view.Male.Revenue += demoRevenue
			case domain.GenderFemale:
				view.Female.Clicks += slice.Performance.Clicks
				view.Female.Spend += demoSpend
				view.Female.Revenue += demoRevenue
			}

			bucket := view.AgeGroups[slice.AgeGroup]
			bucket.Spend += demoSpend
			bucket.Revenue += demoRevenue
			view.AgeGroups[slice.AgeGroup] = bucket

			row := DemographicSliceRow{
				Campaign:    campaign.Name,
				AgeGroup:    slice.AgeGroup,
				Impressions: slice.Performance.Impressions,
				Clicks:      slice.Performance.Clicks,
				Conversions: slice.Performance.Conversions,
				// Taxas do próprio slice, sem recálculo: alimentam a tabela
				// de dados brutos, não um rollup
				CTR:            slice.Performance.CTR,
				ConversionRate: slice.Performance.ConversionRate,
			}

			switch slice.Gender {
			case domain.GenderMale:
				view.MaleSlices = append(view.MaleSlices, row)
			case domain.GenderFemale:
				view.FemaleSlices = append(view.FemaleSlices, row)
			}
		}
	}

	return view
}
