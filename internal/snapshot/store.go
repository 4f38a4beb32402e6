// Package snapshot guarda o único snapshot de dados de marketing alcançável
// por vez. Um novo fetch substitui o snapshot por inteiro; nada é mesclado.
package snapshot

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/insightsource"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/metrics"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
)

// Snapshot é um dataset buscado, imutável depois de criado. Hash é o sha256
// do payload bruto e serve de chave de invalidação da cache de agregados;
// Version é um identificador curto por fetch, para logs e diagnóstico.
type Snapshot struct {
	Data      *domain.MarketingData
	Hash      string
	Version   string
	FetchedAt time.Time
}

// Store mantém no máximo um snapshot e a última mensagem de erro de fetch.
type Store struct {
	integrator insightsource.Integrator

	mu      sync.RWMutex
	current *Snapshot
	lastErr string

	seqMu   sync.Mutex
	nextSeq uint64
	applied uint64
}

// NewStore cria o store vazio; nenhum fetch acontece até Refresh.
func NewStore(integrator insightsource.Integrator) *Store {
	return &Store{integrator: integrator}
}

// Refresh busca um novo snapshot e o aplica por substituição total. Fetches
// sobrepostos são protegidos por sequência: um resultado que chega depois de
// outro mais novo já aplicado é descartado, para que dados obsoletos nunca
// sobrescrevam dados frescos.
func (s *Store) Refresh(ctx context.Context) error {
	seq := s.takeSequence()

	data, raw, err := s.integrator.FetchMarketingData(ctx)
	metrics.ObserveFetch(err)

	if err != nil {
		s.applyError(seq, err)
		return err
	}

	version, idErr := utils.GenerateID()
	if idErr != nil {
		logrus.WithError(idErr).Warn("Erro ao gerar versão do snapshot")
		version = "unknown"
	}

	sum := sha256.Sum256(raw)

	snap := &Snapshot{
		Data:      data,
		Hash:      hex.EncodeToString(sum[:]),
		Version:   version,
		FetchedAt: time.Now(),
	}

	if !s.apply(seq, snap) {
		logrus.WithFields(logrus.Fields{
			"version": version,
			"seq":     seq,
		}).Warn("Fetch obsoleto descartado: um snapshot mais novo já foi aplicado")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"version":   version,
		"hash":      snap.Hash[:12],
		"campaigns": len(data.Campaigns),
	}).Info("Snapshot de marketing atualizado")

	return nil
}

// Current retorna o snapshot atual (pode ser nil) e a última mensagem de
// erro de fetch, vazia quando o último fetch teve sucesso.
func (s *Store) Current() (*Snapshot, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current != nil {
		metrics.ObserveSnapshotAge(s.current.FetchedAt)
	}

	return s.current, s.lastErr
}

func (s *Store) takeSequence() uint64 {
	s.seqMu.Lock()
	defer s.seqMu.Unlock()
	s.nextSeq++
	return s.nextSeq
}

// apply instala o snapshot se a sequência ainda é a mais nova aplicada.
func (s *Store) apply(seq uint64, snap *Snapshot) bool {
	s.seqMu.Lock()
	if seq <= s.applied {
		s.seqMu.Unlock()
		return false
	}
	s.applied = seq
	s.seqMu.Unlock()

	s.mu.Lock()
	s.current = snap
	s.lastErr = ""
	s.mu.Unlock()

	return true
}

// applyError registra a falha sem descartar um snapshot já aplicado, e
// respeita a mesma proteção de sequência dos sucessos.
func (s *Store) applyError(seq uint64, err error) {
	s.seqMu.Lock()
	if seq <= s.applied {
		s.seqMu.Unlock()
		return
	}
	s.applied = seq
	s.seqMu.Unlock()

	s.mu.Lock()
	s.lastErr = err.Error()
	s.mu.Unlock()
}
