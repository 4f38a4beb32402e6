// Package metrics concentra a instrumentação Prometheus do serviço.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SnapshotFetches conta os fetches do snapshot por resultado.
	SnapshotFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marketing_snapshot_fetches_total",
		Help: "Total de fetches do snapshot de marketing, por resultado.",
	}, []string{"result"})

	// SnapshotAge expõe a idade do snapshot atual em segundos.
	SnapshotAge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "marketing_snapshot_age_seconds",
		Help: "Idade do snapshot de marketing atual, em segundos.",
	})

	// AggregationDuration mede a duração da derivação completa das quatro
	// visões agregadas.
	AggregationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "marketing_aggregation_duration_seconds",
		Help:    "Duração da agregação das quatro visões do dashboard.",
		Buckets: prometheus.DefBuckets,
	})

	// AggregationCacheHits conta quantas vezes o agregado memoizado foi
	// reutilizado sem recomputação.
	AggregationCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "marketing_aggregation_cache_hits_total",
		Help: "Reutilizações do agregado memoizado por hash de snapshot.",
	})
)

// ObserveFetch registra o resultado de um fetch de snapshot.
func ObserveFetch(err error) {
	if err != nil {
		SnapshotFetches.WithLabelValues("error").Inc()
		return
	}
	SnapshotFetches.WithLabelValues("success").Inc()
}

// ObserveSnapshotAge atualiza o gauge de idade do snapshot.
func ObserveSnapshotAge(fetchedAt time.Time) {
	SnapshotAge.Set(time.Since(fetchedAt).Seconds())
}
