package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/marketing-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/dashboarding"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Dashboard retorna as rotas das quatro telas do dashboard e do ciclo de
// vida do snapshot
func Dashboard(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/demographics",
			Method:  http.MethodGet,
			Handler: GetDemographics(service),
		},
		{
			Path:    "/v1/dashboard/devices",
			Method:  http.MethodGet,
			Handler: GetDevices(service),
		},
		{
			Path:    "/v1/dashboard/weekly",
			Method:  http.MethodGet,
			Handler: GetWeekly(service),
		},
		{
			Path:    "/v1/dashboard/regions",
			Method:  http.MethodGet,
			Handler: GetRegions(service),
		},
		{
			Path:    "/v1/dashboard/status",
			Method:  http.MethodGet,
			Handler: GetDashboardStatus(service),
		},
		{
			Path:    "/v1/dashboard/refresh",
			Method:  http.MethodPost,
			Handler: RefreshDashboard(service),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}
