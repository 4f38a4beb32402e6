package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/marketing-dashboard-api/pkg/viz/table"
)

// fakeDashboarder permite controlar as respostas de cada tela nos testes
type fakeDashboarder struct {
	demographic *dashboarding.DemographicScreen
	device      *dashboarding.DeviceScreen
	weekly      *dashboarding.WeeklyScreen
	regional    *dashboarding.RegionalScreen
	status      *dashboarding.Status
	err         error
	refreshErr  error

	lastSort *table.Sort
}

func (f *fakeDashboarder) DemographicScreen(sort *table.Sort) (*dashboarding.DemographicScreen, error) {
	f.lastSort = sort
	return f.demographic, f.err
}

func (f *fakeDashboarder) DeviceScreen(sort *table.Sort) (*dashboarding.DeviceScreen, error) {
	f.lastSort = sort
	return f.device, f.err
}

func (f *fakeDashboarder) WeeklyScreen(sort *table.Sort) (*dashboarding.WeeklyScreen, error) {
	f.lastSort = sort
	return f.weekly, f.err
}

func (f *fakeDashboarder) RegionalScreen(sort *table.Sort) (*dashboarding.RegionalScreen, error) {
	f.lastSort = sort
	return f.regional, f.err
}

func (f *fakeDashboarder) Status() *dashboarding.Status {
	return f.status
}

func (f *fakeDashboarder) Refresh(ctx context.Context) error {
	return f.refreshErr
}

func TestGetDemographics(t *testing.T) {
	fake := &fakeDashboarder{demographic: &dashboarding.DemographicScreen{}}

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/demographics", nil)
	rec := httptest.NewRecorder()

	GetDemographics(fake).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Nil(t, fake.lastSort)
}

func TestGetDevices_SortParameters(t *testing.T) {
	fake := &fakeDashboarder{device: &dashboarding.DeviceScreen{}}

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/devices?sort_by=spend&direction=desc", nil)
	rec := httptest.NewRecorder()

	GetDevices(fake).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, fake.lastSort)
	assert.Equal(t, "spend", fake.lastSort.Key)
	assert.Equal(t, table.Descending, fake.lastSort.Direction)
}

func TestGetDevices_DefaultDirectionIsAscending(t *testing.T) {
	fake := &fakeDashboarder{device: &dashboarding.DeviceScreen{}}

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/devices?sort_by=clicks", nil)
	rec := httptest.NewRecorder()

	GetDevices(fake).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, fake.lastSort)
	assert.Equal(t, table.Ascending, fake.lastSort.Direction)
}

func TestGetWeekly_InvalidDirection(t *testing.T) {
	fake := &fakeDashboarder{weekly: &dashboarding.WeeklyScreen{}}

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/weekly?sort_by=spend&direction=sideways", nil)
	rec := httptest.NewRecorder()

	GetWeekly(fake).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, "VAL_003", apiErr["code"])
}

func TestGetRegions_NoSnapshot(t *testing.T) {
	fake := &fakeDashboarder{err: dashboarding.ErrNoSnapshot}

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/regions", nil)
	rec := httptest.NewRecorder()

	GetRegions(fake).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var apiErr map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, "SRV_003", apiErr["code"])
}

func TestGetRegions_FetchFailure(t *testing.T) {
	fake := &fakeDashboarder{err: errors.New("fonte de insights indisponível")}

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/regions", nil)
	rec := httptest.NewRecorder()

	GetRegions(fake).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var apiErr map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, "fonte de insights indisponível", apiErr["message"])
}

func TestGetDashboardStatus(t *testing.T) {
	fake := &fakeDashboarder{status: &dashboarding.Status{Version: "a1b2c3", Campaigns: 4}}

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/status", nil)
	rec := httptest.NewRecorder()

	GetDashboardStatus(fake).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var status dashboarding.Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "a1b2c3", status.Version)
	assert.Equal(t, 4, status.Campaigns)
}

func TestRefreshDashboard(t *testing.T) {
	fake := &fakeDashboarder{status: &dashboarding.Status{Version: "v2"}}

	req := httptest.NewRequest(http.MethodPost, "/v1/dashboard/refresh", nil)
	rec := httptest.NewRecorder()

	RefreshDashboard(fake).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var status dashboarding.Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "v2", status.Version)
}

func TestRefreshDashboard_UpstreamError(t *testing.T) {
	fake := &fakeDashboarder{refreshErr: errors.New("timeout ao buscar dados")}

	req := httptest.NewRequest(http.MethodPost, "/v1/dashboard/refresh", nil)
	rec := httptest.NewRecorder()

	RefreshDashboard(fake).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
