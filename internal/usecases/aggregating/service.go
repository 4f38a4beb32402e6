package aggregating

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/metrics"
)

// Aggregator deriva as quatro visões agregadas de um snapshot.
type Aggregator interface {
	Aggregate(snapshotHash string, data *domain.MarketingData) *Aggregates
}

// Service implementa Aggregator com memoização por hash de conteúdo do
// snapshot. A cache é invalidada quando o hash muda, não pela identidade da
// referência — um snapshot idêntico refeito reutiliza o agregado.
type Service struct {
	mu         sync.Mutex
	cachedHash string
	cached     *Aggregates
}

// NewService cria o serviço de agregação.
func NewService() *Service {
	return &Service{}
}

// Aggregate retorna as quatro visões derivadas do snapshot. O snapshot de
// entrada nunca é mutado; cada derivação produz objetos novos.
func (s *Service) Aggregate(snapshotHash string, data *domain.MarketingData) *Aggregates {
	if data == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && s.cachedHash == snapshotHash {
		metrics.AggregationCacheHits.Inc()
		return s.cached
	}

	started := time.Now()

	aggregates := &Aggregates{
		Demographic: aggregateDemographics(data),
		Device:      aggregateDevices(data),
		Weekly:      aggregateWeekly(data),
		Regional:    aggregateRegions(data),
	}

	elapsed := time.Since(started)
	metrics.AggregationDuration.Observe(elapsed.Seconds())

	logrus.WithFields(logrus.Fields{
		"snapshot_hash": snapshotHash,
		"campaigns":     len(data.Campaigns),
		"weeks":         len(aggregates.Weekly),
		"regions":       len(aggregates.Regional),
		"duration_ms":   elapsed.Milliseconds(),
	}).Debug("Agregados do dashboard recalculados")

	s.cachedHash = snapshotHash
	s.cached = aggregates

	return aggregates
}
