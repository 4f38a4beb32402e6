package insightsource

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// Integrator é a fronteira com a fonte externa do dataset de marketing:
// uma única operação de fetch que pode falhar.
type Integrator interface {
	FetchMarketingData(ctx context.Context) (*domain.MarketingData, []byte, error)
}

type Service struct {
	cfg    *config.Config
	Client Client
}

func New(cfg *config.Config, client Client) *Service {
	return &Service{
		cfg:    cfg,
		Client: client,
	}
}

// FetchMarketingData busca o snapshot completo da fonte de insights.
func (s *Service) FetchMarketingData(ctx context.Context) (*domain.MarketingData, []byte, error) {
	data, raw, err := s.Client.GetMarketingData(ctx)
	if err != nil {
		logrus.WithError(err).Error("insights: failed to fetch marketing data from source")
		return nil, nil, err
	}

	logrus.WithFields(logrus.Fields{
		"campaigns": len(data.Campaigns),
		"bytes":     len(raw),
	}).Debug("insights: marketing data fetched from source")

	return data, raw, nil
}
