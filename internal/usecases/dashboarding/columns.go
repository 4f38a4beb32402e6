package dashboarding

import (
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
	"github.com/vfg2006/marketing-dashboard-api/pkg/viz/table"
)

// Descritores de coluna das tabelas de cada tela. Os render são funções
// puras de formatação; a ordenação usa o valor bruto via Value.

func sliceColumns() []table.Column[aggregating.DemographicSliceRow] {
	return []table.Column[aggregating.DemographicSliceRow]{
		{
			Key: "campaign", Header: "Campaign", Sortable: true, SortType: table.SortString,
			Value: func(r aggregating.DemographicSliceRow) any { return r.Campaign },
		},
		{
			Key: "age_group", Header: "Age Group", Sortable: true, SortType: table.SortString,
			Value: func(r aggregating.DemographicSliceRow) any { return r.AgeGroup },
		},
		{
			Key: "impressions", Header: "Impressions", Sortable: true, SortType: table.SortNumber,
			Value:  func(r aggregating.DemographicSliceRow) any { return r.Impressions },
			Render: func(r aggregating.DemographicSliceRow) string { return utils.FormatInt(r.Impressions) },
		},
		{
			Key: "clicks", Header: "Clicks", Sortable: true, SortType: table.SortNumber,
			Value:  func(r aggregating.DemographicSliceRow) any { return r.Clicks },
			Render: func(r aggregating.DemographicSliceRow) string { return utils.FormatInt(r.Clicks) },
		},
		{
			Key: "conversions", Header: "Conversions", Sortable: true, SortType: table.SortNumber,
			Value:  func(r aggregating.DemographicSliceRow) any { return r.Conversions },
			Render: func(r aggregating.DemographicSliceRow) string { return utils.FormatInt(r.Conversions) },
		},
		{
			Key: "ctr", Header: "CTR", Sortable: true, SortType: table.SortNumber,
			Value:  func(r aggregating.DemographicSliceRow) any { return r.CTR },
			Render: func(r aggregating.DemographicSliceRow) string { return utils.FormatPercent(r.CTR) },
		},
		{
			Key: "conversion_rate", Header: "Conv. Rate", Sortable: true, SortType: table.SortNumber,
			Value:  func(r aggregating.DemographicSliceRow) any { return r.ConversionRate },
			Render: func(r aggregating.DemographicSliceRow) string { return utils.FormatPercent(r.ConversionRate) },
		},
	}
}

func deviceColumns() []table.Column[aggregating.DeviceDetailRow] {
	return []table.Column[aggregating.DeviceDetailRow]{
		{
			Key: "campaign", Header: "Campaign", Sortable: true, SortType: table.SortString,
			Value: func(r aggregating.DeviceDetailRow) any { return r.Campaign },
		},
		{
			Key: "device", Header: "Device", Sortable: true, SortType: table.SortString,
			Value: func(r aggregating.DeviceDetailRow) any { return r.Device },
		},
		{
			Key: "impressions", Header: "Impressions", Sortable: true, SortType: table.SortNumber,
			Value:  func(r aggregating.DeviceDetailRow) any { return r.Impressions },
			Render: func(r aggregating.DeviceDetailRow) string { return utils.FormatInt(r.Impressions) },
		},
		{
			Key: "clicks", Header: "Clicks", Sortable: true, SortType: table.SortNumber,
			Value:  func(r aggregating.DeviceDetailRow) any { return r.Clicks },
			Render: func(r aggregating.DeviceDetailRow) string { return utils.FormatInt(r.Clicks) },
		},
		{
			Key: "spend", Header: "Spend", Sortable: true, SortType: table.SortNumber,
			Value:  func(r aggregating.DeviceDetailRow) any { return r.Spend },
			Render: func(r aggregating.DeviceDetailRow) string { return utils.FormatCurrency(r.Spend) },
		},
		{
			Key: "revenue", Header: "Revenue", Sortable: true, SortType: table.SortNumber,
			Value:  func(r aggregating.DeviceDetailRow) any { return r.Revenue },
			Render: func(r aggregating.DeviceDetailRow) string { return utils.FormatCurrency(r.Revenue) },
		},
		{
			Key: "roas", Header: "ROAS", Sortable: true, SortType: table.SortNumber,
			Value:  func(r aggregating.DeviceDetailRow) any { return r.ROAS },
			Render: func(r aggregating.DeviceDetailRow) string { return utils.FormatFloat(r.ROAS) + "x" },
		},
	}
}

func weeklyColumns() []table.Column[aggregating.WeeklyAggregate] {
	return []table.Column[aggregating.WeeklyAggregate]{
		{
			Key: "week_start", Header: "Week", Sortable: true, SortType: table.SortDate,
			Value: func(r aggregating.WeeklyAggregate) any { return r.WeekStart },
		},
		{
			Key: "impressions", Header: "Impressions", Sortable: true, SortType: table.SortNumber,
			Value:  func(r aggregating.WeeklyAggregate) any { return r.Impressions },
			Render: func(r aggregating.WeeklyAggregate) string { return utils.FormatInt(r.Impressions) },
		},
		{
			Key: "clicks", Header: "Clicks", Sortable: true, SortType: table.SortNumber,
			Value:  func(r aggregating.WeeklyAggregate) any { return r.Clicks },
			Render: func(r aggregating.WeeklyAggregate) string { return utils.FormatInt(r.Clicks) },
		},
		{
			Key: "conversions", Header: "Conversions", Sortable: true, SortType: table.SortNumber,
			Value:  func(r aggregating.WeeklyAggregate) any { return r.Conversions },
			Render: func(r aggregating.WeeklyAggregate) string { return utils.FormatInt(r.Conversions) },
		},
		{
			Key: "spend", Header: "Spend", Sortable: true, SortType: table.SortNumber,
			Value:  func(r aggregating.WeeklyAggregate) any { return r.Spend },
			Render: func(r aggregating.WeeklyAggregate) string { return utils.FormatCurrency(r.Spend) },
		},
		{
			Key: "revenue", Header: "Revenue", Sortable: true, SortType: table.SortNumber,
			Value:  func(r aggregating.WeeklyAggregate) any { return r.Revenue },
			Render: func(r aggregating.WeeklyAggregate) string { return utils.FormatCurrency(r.Revenue) },
		},
		{
			// ROAS derivado na renderização, não armazenado no agregado
			Key: "roas", Header: "ROAS", Sortable: true, SortType: table.SortNumber,
			Value: func(r aggregating.WeeklyAggregate) any { return domain.ROAS(r.Revenue, r.Spend) },
			Render: func(r aggregating.WeeklyAggregate) string {
				return utils.FormatFloat(domain.ROAS(r.Revenue, r.Spend)) + "x"
			},
		},
	}
}

func regionalColumns() []table.Column[aggregating.RegionalAggregate] {
	return []table.Column[aggregating.RegionalAggregate]{
		{
			Key: "region", Header: "Region", Sortable: true, SortType: table.SortString,
			Value: func(r aggregating.RegionalAggregate) any { return r.Region },
		},
		{
			Key: "country", Header: "Country", Sortable: true, SortType: table.SortString,
			Value: func(r aggregating.RegionalAggregate) any { return r.Country },
		},
		{
			Key: "revenue", Header: "Revenue", Sortable: true, SortType: table.SortNumber,
			Value:  func(r aggregating.RegionalAggregate) any { return r.Revenue },
			Render: func(r aggregating.RegionalAggregate) string { return utils.FormatCurrency(r.Revenue) },
		},
		{
			Key: "spend", Header: "Spend", Sortable: true, SortType: table.SortNumber,
			Value:  func(r aggregating.RegionalAggregate) any { return r.Spend },
			Render: func(r aggregating.RegionalAggregate) string { return utils.FormatCurrency(r.Spend) },
		},
		{
			Key: "ctr", Header: "CTR", Sortable: true, SortType: table.SortNumber,
			Value:  func(r aggregating.RegionalAggregate) any { return r.CTR },
			Render: func(r aggregating.RegionalAggregate) string { return utils.FormatPercent(r.CTR) },
		},
		{
			Key: "cpc", Header: "CPC", Sortable: true, SortType: table.SortNumber,
			Value:  func(r aggregating.RegionalAggregate) any { return r.CPC },
			Render: func(r aggregating.RegionalAggregate) string { return utils.FormatCurrency(r.CPC) },
		},
		{
			Key: "cpa", Header: "CPA", Sortable: true, SortType: table.SortNumber,
			Value:  func(r aggregating.RegionalAggregate) any { return r.CPA },
			Render: func(r aggregating.RegionalAggregate) string { return utils.FormatCurrency(r.CPA) },
		},
		{
			Key: "roas", Header: "ROAS", Sortable: true, SortType: table.SortNumber,
			Value:  func(r aggregating.RegionalAggregate) any { return r.ROAS },
			Render: func(r aggregating.RegionalAggregate) string { return utils.FormatFloat(r.ROAS) + "x" },
		},
	}
}

func renderSliceTable(rows []aggregating.DemographicSliceRow, sortBy *table.Sort) table.Rendered {
	opts := []table.Option[aggregating.DemographicSliceRow]{
		table.WithEmptyMessage[aggregating.DemographicSliceRow]("No demographic data available"),
	}
	if sortBy != nil {
		opts = append(opts, table.WithDefaultSort[aggregating.DemographicSliceRow](*sortBy))
	}
	return table.New(rows, sliceColumns(), opts...).Render()
}

func renderDeviceTable(rows []aggregating.DeviceDetailRow, sortBy *table.Sort) table.Rendered {
	opts := []table.Option[aggregating.DeviceDetailRow]{
		table.WithEmptyMessage[aggregating.DeviceDetailRow]("No device data available"),
	}
	if sortBy != nil {
		opts = append(opts, table.WithDefaultSort[aggregating.DeviceDetailRow](*sortBy))
	}
	return table.New(rows, deviceColumns(), opts...).Render()
}

func renderWeeklyTable(rows []aggregating.WeeklyAggregate, sortBy *table.Sort) table.Rendered {
	opts := []table.Option[aggregating.WeeklyAggregate]{
		table.WithEmptyMessage[aggregating.WeeklyAggregate]("No weekly data available"),
		table.WithDefaultSort[aggregating.WeeklyAggregate](table.Sort{Key: "week_start", Direction: table.Ascending}),
	}
	if sortBy != nil {
		opts = append(opts, table.WithDefaultSort[aggregating.WeeklyAggregate](*sortBy))
	}
	return table.New(rows, weeklyColumns(), opts...).Render()
}

func renderRegionalTable(rows []aggregating.RegionalAggregate, sortBy *table.Sort) table.Rendered {
	opts := []table.Option[aggregating.RegionalAggregate]{
		table.WithEmptyMessage[aggregating.RegionalAggregate]("No regional data available"),
		table.WithDefaultSort[aggregating.RegionalAggregate](table.Sort{Key: "revenue", Direction: table.Descending}),
	}
	if sortBy != nil {
		opts = append(opts, table.WithDefaultSort[aggregating.RegionalAggregate](*sortBy))
	}
	return table.New(rows, regionalColumns(), opts...).Render()
}
