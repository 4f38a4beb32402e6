// Package dashboarding compõe as quatro telas do dashboard a partir dos
// agregados, ligando o motor de agregação às primitivas de visualização.
// É cola fina: escolhe colunas, cores e formatação.
package dashboarding

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/marketing-dashboard-api/internal/snapshot"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/marketing-dashboard-api/pkg/viz/table"
)

// ErrNoSnapshot indica que nenhum snapshot foi carregado ainda.
var ErrNoSnapshot = errors.New("nenhum snapshot de marketing disponível")

// Dashboarder expõe as quatro telas read-only do dashboard.
type Dashboarder interface {
	DemographicScreen(sort *table.Sort) (*DemographicScreen, error)
	DeviceScreen(sort *table.Sort) (*DeviceScreen, error)
	WeeklyScreen(sort *table.Sort) (*WeeklyScreen, error)
	RegionalScreen(sort *table.Sort) (*RegionalScreen, error)
	Status() *Status
	Refresh(ctx context.Context) error
}

// Status descreve o snapshot atual para diagnóstico.
type Status struct {
	Version   string     `json:"version,omitempty"`
	Hash      string     `json:"hash,omitempty"`
	FetchedAt *time.Time `json:"fetched_at,omitempty"`
	Campaigns int        `json:"campaigns"`
	Error     string     `json:"error,omitempty"`
}

type Service struct {
	store      *snapshot.Store
	aggregator aggregating.Aggregator
}

// NewService cria o serviço de composição das telas.
func NewService(store *snapshot.Store, aggregator aggregating.Aggregator) *Service {
	return &Service{
		store:      store,
		aggregator: aggregator,
	}
}

// Refresh dispara um novo fetch do snapshot, substituindo-o por inteiro.
func (s *Service) Refresh(ctx context.Context) error {
	return s.store.Refresh(ctx)
}

// Status retorna a situação do snapshot atual, incluindo a última mensagem
// de erro de fetch quando houver.
func (s *Service) Status() *Status {
	snap, errMsg := s.store.Current()

	status := &Status{Error: errMsg}
	if snap != nil {
		fetchedAt := snap.FetchedAt
		status.Version = snap.Version
		status.Hash = snap.Hash
		status.FetchedAt = &fetchedAt
		status.Campaigns = len(snap.Data.Campaigns)
	}

	return status
}

// aggregates resolve os agregados do snapshot atual. Sem snapshot, retorna
// a mensagem de erro de fetch armazenada — a agregação nunca roda sobre um
// fetch que falhou.
func (s *Service) aggregates() (*aggregating.Aggregates, error) {
	snap, errMsg := s.store.Current()
	if snap == nil {
		if errMsg != "" {
			return nil, errors.New(errMsg)
		}
		return nil, ErrNoSnapshot
	}

	return s.aggregator.Aggregate(snap.Hash, snap.Data), nil
}
