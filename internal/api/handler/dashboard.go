package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
	"github.com/vfg2006/marketing-dashboard-api/pkg/viz/table"
)

// sortFromQuery extrai a ordenação opcional da query string. Sem sort_by,
// a tela usa a ordenação padrão dela.
func sortFromQuery(r *http.Request) (*table.Sort, error) {
	key := r.URL.Query().Get("sort_by")
	if key == "" {
		return nil, nil
	}

	direction := table.Direction(r.URL.Query().Get("direction"))
	switch direction {
	case "":
		direction = table.Ascending
	case table.Ascending, table.Descending:
	default:
		return nil, errors.Errorf("direção de ordenação inválida: %q", direction)
	}

	return &table.Sort{Key: key, Direction: direction}, nil
}

// writeScreen serializa a tela montada, classificando falhas de snapshot
func writeScreen(w http.ResponseWriter, r *http.Request, screen any, err error, name string) {
	logger := log.ForContext(r.Context())

	if err != nil {
		logger.WithFields(log.Fields{
			"screen": name,
			"error":  err.Error(),
		}).Error("dashboard: failed to build screen")

		if errors.Is(err, dashboarding.ErrNoSnapshot) {
			apiErrors.WriteError(w, apiErrors.ErrNoSnapshot, err.Error(), nil)
			return
		}

		apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(screen); err != nil {
		logger.WithFields(log.Fields{
			"screen": name,
			"error":  err.Error(),
		}).Error("dashboard: failed to encode response")

		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func GetDemographics(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("dashboard: building demographics screen")

		sortBy, err := sortFromQuery(r)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("dashboard: invalid sort parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		screen, err := service.DemographicScreen(sortBy)
		writeScreen(w, r, screen, err, "demographics")
	})
}

func GetDevices(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("dashboard: building devices screen")

		sortBy, err := sortFromQuery(r)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("dashboard: invalid sort parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		screen, err := service.DeviceScreen(sortBy)
		writeScreen(w, r, screen, err, "devices")
	})
}

func GetWeekly(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("dashboard: building weekly screen")

		sortBy, err := sortFromQuery(r)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("dashboard: invalid sort parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		screen, err := service.WeeklyScreen(sortBy)
		writeScreen(w, r, screen, err, "weekly")
	})
}

func GetRegions(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("dashboard: building regions screen")

		sortBy, err := sortFromQuery(r)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("dashboard: invalid sort parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		screen, err := service.RegionalScreen(sortBy)
		writeScreen(w, r, screen, err, "regions")
	})
}

// GetDashboardStatus expõe a versão, o hash e a idade do snapshot atual
func GetDashboardStatus(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status := service.Status()
		logger.WithFields(log.Fields{
			"version":   status.Version,
			"campaigns": status.Campaigns,
		}).Debug("dashboard: reporting snapshot status")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logger.WithField("error", err.Error()).Error("dashboard: failed to encode status")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// RefreshDashboard dispara um fetch manual do snapshot de marketing
func RefreshDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("dashboard: manual snapshot refresh requested")

		if err := service.Refresh(r.Context()); err != nil {
			logger.WithField("error", err.Error()).Error("dashboard: snapshot refresh failed")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
			return
		}

		logger.Info("dashboard: snapshot refresh completed")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(service.Status())
	})
}
