package dashboarding

import (
	"sort"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
	"github.com/vfg2006/marketing-dashboard-api/pkg/viz/chart"
	"github.com/vfg2006/marketing-dashboard-api/pkg/viz/geomap"
	"github.com/vfg2006/marketing-dashboard-api/pkg/viz/table"
)

// Dimensões padrão da área de plotagem enviadas ao frontend.
const (
	plotWidth  = 800.0
	plotHeight = 300.0
	barLength  = 400.0
)

const (
	colorMale    = "#3b82f6"
	colorFemale  = "#ec4899"
	colorSpend   = "#f59e0b"
	colorRevenue = "#10b981"
)

// GenderSummary resume um gênero com o ROAS derivado dos valores alocados.
type GenderSummary struct {
	Clicks  int     `json:"clicks"`
	Spend   float64 `json:"spend"`
	Revenue float64 `json:"revenue"`
	ROAS    float64 `json:"roas"`
}

// DemographicScreen é a tela de gênero e faixa etária.
type DemographicScreen struct {
	Male            GenderSummary  `json:"male"`
	Female          GenderSummary  `json:"female"`
	AgeSpendChart   []chart.Bar    `json:"age_spend_chart"`
	AgeRevenueChart []chart.Bar    `json:"age_revenue_chart"`
	MaleTable       table.Rendered `json:"male_table"`
	FemaleTable     table.Rendered `json:"female_table"`
}

// DeviceScreen é a tela por dispositivo.
type DeviceScreen struct {
	Mobile       aggregating.DeviceBucket `json:"mobile"`
	Desktop      aggregating.DeviceBucket `json:"desktop"`
	TrafficChart []chart.Bar              `json:"traffic_chart"`
	DetailTable  table.Rendered           `json:"detail_table"`
}

// WeeklyScreen é a tela de desempenho semanal.
type WeeklyScreen struct {
	Chart chart.LineChart `json:"chart"`
	Table table.Rendered  `json:"table"`
}

// RegionalScreen é a tela do mapa de bolhas regional.
type RegionalScreen struct {
	Map         geomap.Map     `json:"map"`
	RankedTable table.Rendered `json:"ranked_table"`
}

// DemographicScreen compõe a tela demográfica. sortBy, quando presente,
// aplica a ordenação às duas tabelas de slices.
func (s *Service) DemographicScreen(sortBy *table.Sort) (*DemographicScreen, error) {
	aggregates, err := s.aggregates()
	if err != nil {
		return nil, err
	}

	demo := aggregates.Demographic

	ageGroups := make([]string, 0, len(demo.AgeGroups))
	for age := range demo.AgeGroups {
		ageGroups = append(ageGroups, age)
	}
	sort.Strings(ageGroups)

	spendEntries := make([]chart.BarEntry, 0, len(ageGroups))
	revenueEntries := make([]chart.BarEntry, 0, len(ageGroups))
	for _, age := range ageGroups {
		bucket := demo.AgeGroups[age]
		spendEntries = append(spendEntries, chart.BarEntry{Label: age, Value: bucket.Spend, Color: colorSpend})
		revenueEntries = append(revenueEntries, chart.BarEntry{Label: age, Value: bucket.Revenue, Color: colorRevenue})
	}

	currencyFormat := chart.BarConfig{MaxLength: barLength, FormatValue: utils.FormatCurrency}

	return &DemographicScreen{
		Male:            genderSummary(demo.Male),
		Female:          genderSummary(demo.Female),
		AgeSpendChart:   chart.BuildBars(spendEntries, currencyFormat),
		AgeRevenueChart: chart.BuildBars(revenueEntries, currencyFormat),
		MaleTable:       renderSliceTable(demo.MaleSlices, sortBy),
		FemaleTable:     renderSliceTable(demo.FemaleSlices, sortBy),
	}, nil
}

// DeviceScreen compõe a tela por dispositivo.
func (s *Service) DeviceScreen(sortBy *table.Sort) (*DeviceScreen, error) {
	aggregates, err := s.aggregates()
	if err != nil {
		return nil, err
	}

	device := aggregates.Device

	trafficEntries := []chart.BarEntry{
		{Label: domain.DeviceMobile, Value: device.Mobile.PercentageOfTraffic, Color: colorSpend},
		{Label: domain.DeviceDesktop, Value: device.Desktop.PercentageOfTraffic, Color: colorRevenue},
	}

	return &DeviceScreen{
		Mobile:  device.Mobile,
		Desktop: device.Desktop,
		TrafficChart: chart.BuildBars(trafficEntries, chart.BarConfig{
			MaxLength:   barLength,
			FormatValue: utils.FormatPercent,
		}),
		DetailTable: renderDeviceTable(device.Details, sortBy),
	}, nil
}

// WeeklyScreen compõe a tela semanal. As taxas semanais (ROAS) não são
// armazenadas no agregado; são derivadas aqui, na renderização.
func (s *Service) WeeklyScreen(sortBy *table.Sort) (*WeeklyScreen, error) {
	aggregates, err := s.aggregates()
	if err != nil {
		return nil, err
	}

	weeks := aggregates.Weekly

	labels := make([]string, 0, len(weeks))
	spendValues := make([]float64, 0, len(weeks))
	revenueValues := make([]float64, 0, len(weeks))
	for _, week := range weeks {
		labels = append(labels, week.WeekStart)
		spendValues = append(spendValues, week.Spend)
		revenueValues = append(revenueValues, week.Revenue)
	}

	series := []chart.Series{}
	if len(weeks) > 0 {
		series = []chart.Series{
			{Name: "Spend", Color: colorSpend, Values: spendValues},
			{Name: "Revenue", Color: colorRevenue, Values: revenueValues},
		}
	}

	lineChart := chart.BuildLineChart(series, chart.LineConfig{
		Width:       plotWidth,
		Height:      plotHeight,
		Labels:      labels,
		FormatValue: utils.FormatCurrency,
	})

	return &WeeklyScreen{
		Chart: lineChart,
		Table: renderWeeklyTable(weeks, sortBy),
	}, nil
}

// RegionalScreen compõe a tela do mapa regional. O valor primário das
// bolhas é a receita agregada; o secundário, o ROAS recalculado no merge.
func (s *Service) RegionalScreen(sortBy *table.Sort) (*RegionalScreen, error) {
	aggregates, err := s.aggregates()
	if err != nil {
		return nil, err
	}

	regions := aggregates.Regional

	points := make([]geomap.PointInput, 0, len(regions))
	for _, region := range regions {
		points = append(points, geomap.PointInput{
			Region:         region.Region,
			Country:        region.Country,
			Value:          region.Revenue,
			SecondaryValue: region.ROAS,
		})
	}

	return &RegionalScreen{
		Map:         geomap.BuildMap(points, geomap.Config{MinRadius: 10, SizeSpan: 30, MinOpacity: 0.4}),
		RankedTable: renderRegionalTable(regions, sortBy),
	}, nil
}

func genderSummary(bucket aggregating.GenderBucket) GenderSummary {
	return GenderSummary{
		Clicks:  bucket.Clicks,
		Spend:   utils.RoundWithTwoDecimalPlace(bucket.Spend),
		Revenue: utils.RoundWithTwoDecimalPlace(bucket.Revenue),
		ROAS:    utils.RoundWithTwoDecimalPlace(domain.ROAS(bucket.Revenue, bucket.Spend)),
	}
}
