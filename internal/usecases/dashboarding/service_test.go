package dashboarding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/insightsource/mocks"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/snapshot"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/marketing-dashboard-api/pkg/viz/table"
	"go.uber.org/mock/gomock"
)

func testData() *domain.MarketingData {
	return &domain.MarketingData{
		Campaigns: []domain.Campaign{
			{
				Name:    "Lançamento",
				Spend:   1000,
				Revenue: 3000,
				DemographicBreakdown: []domain.DemographicBreakdown{
					{Gender: "Male", AgeGroup: "18-24", PercentageOfAudience: 60,
						Performance: domain.SlicePerformance{Impressions: 5000, Clicks: 100, CTR: 2.0}},
					{Gender: "Female", AgeGroup: "25-34", PercentageOfAudience: 40,
						Performance: domain.SlicePerformance{Impressions: 4000, Clicks: 120, CTR: 3.0}},
				},
				DevicePerformance: []domain.DevicePerformance{
					{Device: "Mobile", Impressions: 6000, Clicks: 150, Spend: 600, Revenue: 1800},
					{Device: "Desktop", Impressions: 3000, Clicks: 70, Spend: 400, Revenue: 1200},
				},
				WeeklyPerformance: []domain.WeeklyPerformance{
					{WeekStart: "2024-01-01", WeekEnd: "2024-01-07", Spend: 500, Revenue: 1500, Clicks: 100},
					{WeekStart: "2024-01-08", WeekEnd: "2024-01-14", Spend: 500, Revenue: 1500, Clicks: 120},
				},
				RegionalPerformance: []domain.RegionalPerformance{
					{Region: "Europe", Country: "Germany", Spend: 700, Revenue: 2100},
					{Region: "Asia", Country: "Japan", Spend: 300, Revenue: 900},
				},
			},
		},
	}
}

func newTestService(t *testing.T, data *domain.MarketingData, fetchErr error) *Service {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	integrator := mocks.NewMockIntegrator(ctrl)
	if fetchErr != nil {
		integrator.EXPECT().FetchMarketingData(gomock.Any()).Return(nil, nil, fetchErr)
	} else {
		integrator.EXPECT().FetchMarketingData(gomock.Any()).Return(data, []byte(`payload`), nil)
	}

	store := snapshot.NewStore(integrator)
	_ = store.Refresh(context.Background())

	return NewService(store, aggregating.NewService())
}

func TestDemographicScreen(t *testing.T) {
	svc := newTestService(t, testData(), nil)

	screen, err := svc.DemographicScreen(nil)
	require.NoError(t, err)

	// Alocação proporcional: 60% de 1000 para masculino
	assert.InDelta(t, 600, screen.Male.Spend, 1e-9)
	assert.InDelta(t, 400, screen.Female.Spend, 1e-9)
	assert.InDelta(t, 3.0, screen.Male.ROAS, 1e-9)

	// Gráficos por faixa etária em ordem alfabética de faixa
	require.Len(t, screen.AgeSpendChart, 2)
	assert.Equal(t, "18-24", screen.AgeSpendChart[0].Label)

	assert.Len(t, screen.MaleTable.Rows, 1)
	assert.Len(t, screen.FemaleTable.Rows, 1)
}

func TestDeviceScreen(t *testing.T) {
	svc := newTestService(t, testData(), nil)

	screen, err := svc.DeviceScreen(nil)
	require.NoError(t, err)

	assert.InDelta(t, 2.5, screen.Mobile.CTR, 1e-9)
	assert.InDelta(t, 6000.0/9000.0*100, screen.Mobile.PercentageOfTraffic, 1e-9)
	assert.Len(t, screen.DetailTable.Rows, 2)
}

func TestWeeklyScreen_ROASDerivedAtRender(t *testing.T) {
	svc := newTestService(t, testData(), nil)

	screen, err := svc.WeeklyScreen(nil)
	require.NoError(t, err)

	require.False(t, screen.Chart.NoData)
	assert.Len(t, screen.Chart.Series, 2)

	// Última coluna da tabela é o ROAS derivado (1500/500 = 3.00x)
	require.Len(t, screen.Table.Rows, 2)
	lastCol := len(screen.Table.Rows[0]) - 1
	assert.Equal(t, "3.00x", screen.Table.Rows[0][lastCol])
}

func TestRegionalScreen(t *testing.T) {
	svc := newTestService(t, testData(), nil)

	screen, err := svc.RegionalScreen(nil)
	require.NoError(t, err)

	require.Len(t, screen.Map.Bubbles, 2)
	// Tabela de ranking em receita decrescente
	require.Len(t, screen.RankedTable.Rows, 2)
	assert.Equal(t, "Europe", screen.RankedTable.Rows[0][1])
}

func TestScreens_SortParameterApplied(t *testing.T) {
	svc := newTestService(t, testData(), nil)

	screen, err := svc.DeviceScreen(&table.Sort{Key: "spend", Direction: table.Ascending})
	require.NoError(t, err)

	require.NotNil(t, screen.DetailTable.Sort)
	assert.Equal(t, "spend", screen.DetailTable.Sort.Key)
	// Desktop (400) vem antes de Mobile (600) em ordem ascendente
	assert.Equal(t, "Desktop", screen.DetailTable.Rows[0][2])
}

func TestScreens_FetchFailureSurfacesMessage(t *testing.T) {
	svc := newTestService(t, nil, errors.New("fonte de insights retornou status 500"))

	_, err := svc.DemographicScreen(nil)
	require.Error(t, err)
	assert.Equal(t, "fonte de insights retornou status 500", err.Error())

	status := svc.Status()
	assert.Equal(t, "fonte de insights retornou status 500", status.Error)
	assert.Zero(t, status.Campaigns)
}

func TestScreens_EmptyDatasetRendersEmptyMessages(t *testing.T) {
	svc := newTestService(t, &domain.MarketingData{}, nil)

	demo, err := svc.DemographicScreen(nil)
	require.NoError(t, err)
	assert.Equal(t, "No demographic data available", demo.MaleTable.EmptyMessage)

	weekly, err := svc.WeeklyScreen(nil)
	require.NoError(t, err)
	assert.True(t, weekly.Chart.NoData)
	assert.Equal(t, "No weekly data available", weekly.Table.EmptyMessage)
}

func TestStatus_PopulatedSnapshot(t *testing.T) {
	svc := newTestService(t, testData(), nil)

	status := svc.Status()
	assert.Empty(t, status.Error)
	assert.Equal(t, 1, status.Campaigns)
	assert.NotEmpty(t, status.Version)
	assert.NotEmpty(t, status.Hash)
	assert.NotNil(t, status.FetchedAt)
}
