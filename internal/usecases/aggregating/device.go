package aggregating

import (
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

// aggregateDevices deriva o rollup por dispositivo. Diferente do
// demográfico, os valores por dispositivo já são absolutos por campanha e
// são somados diretamente, sem alocação percentual.
func aggregateDevices(data *domain.MarketingData) *DeviceView {
	view := &DeviceView{
		Mobile:  DeviceBucket{Device: domain.DeviceMobile},
		Desktop: DeviceBucket{Device: domain.DeviceDesktop},
		Details: make([]DeviceDetailRow, 0),
	}

	for _, campaign := range data.Campaigns {
		if len(campaign.DevicePerformance) == 0 {
			continue
		}

		for _, perf := range campaign.DevicePerformance {
			var bucket *DeviceBucket
			switch perf.Device {
			case domain.DeviceMobile:
				bucket = &view.Mobile
			case domain.DeviceDesktop:
				bucket = &view.Desktop
			}

			if bucket != nil {
				bucket.Impressions += perf.Impressions
				bucket.Clicks += perf.Clicks
				bucket.Conversions += perf.Conversions
				bucket.Spend += perf.Spend
				bucket.Revenue += perf.Revenue
			}

			view.Details = append(view.Details, DeviceDetailRow{
				Campaign:    campaign.Name,
				Device:      perf.Device,
				Impressions: perf.Impressions,
				Clicks:      perf.Clicks,
				Conversions: perf.Conversions,
				Spend:       perf.Spend,
				Revenue:     perf.Revenue,
				ROAS:        domain.ROAS(perf.Revenue, perf.Spend),
			})
		}
	}

	// Taxas recalculadas das somas brutas — nunca a média das taxas
	// pré-calculadas por campanha
	view.Mobile.recompute()
	view.Desktop.recompute()

	total := view.Mobile.Impressions + view.Desktop.Impressions
	if total > 0 {
		view.Mobile.PercentageOfTraffic = float64(view.Mobile.Impressions) / float64(total) * 100
		view.Desktop.PercentageOfTraffic = float64(view.Desktop.Impressions) / float64(total) * 100
	}

	return view
}
