package snapshot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/insightsource/mocks"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestStore_RefreshReplacesSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := mocks.NewMockIntegrator(ctrl)
	store := NewStore(integrator)

	first := &domain.MarketingData{Campaigns: []domain.Campaign{{Name: "A"}}}
	second := &domain.MarketingData{Campaigns: []domain.Campaign{{Name: "B"}, {Name: "C"}}}

	gomock.InOrder(
		integrator.EXPECT().FetchMarketingData(gomock.Any()).Return(first, []byte(`{"v":1}`), nil),
		integrator.EXPECT().FetchMarketingData(gomock.Any()).Return(second, []byte(`{"v":2}`), nil),
	)

	require.NoError(t, store.Refresh(context.Background()))
	snap, errMsg := store.Current()
	require.NotNil(t, snap)
	assert.Empty(t, errMsg)
	assert.Len(t, snap.Data.Campaigns, 1)
	firstHash := snap.Hash

	// O segundo fetch substitui o snapshot por inteiro, nunca mescla
	require.NoError(t, store.Refresh(context.Background()))
	snap, _ = store.Current()
	assert.Len(t, snap.Data.Campaigns, 2)
	assert.NotEqual(t, firstHash, snap.Hash)
}

func TestStore_FetchErrorIsSurfacedAsMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := mocks.NewMockIntegrator(ctrl)
	integrator.EXPECT().
		FetchMarketingData(gomock.Any()).
		Return(nil, nil, errors.New("fonte de insights retornou status 502 Bad Gateway"))

	store := NewStore(integrator)

	err := store.Refresh(context.Background())
	require.Error(t, err)

	snap, errMsg := store.Current()
	assert.Nil(t, snap)
	assert.Equal(t, "fonte de insights retornou status 502 Bad Gateway", errMsg)
}

func TestStore_ErrorKeepsPreviousSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := mocks.NewMockIntegrator(ctrl)
	data := &domain.MarketingData{Campaigns: []domain.Campaign{{Name: "A"}}}

	gomock.InOrder(
		integrator.EXPECT().FetchMarketingData(gomock.Any()).Return(data, []byte(`{}`), nil),
		integrator.EXPECT().FetchMarketingData(gomock.Any()).Return(nil, nil, errors.New("timeout")),
	)

	store := NewStore(integrator)

	require.NoError(t, store.Refresh(context.Background()))
	_ = store.Refresh(context.Background())

	snap, errMsg := store.Current()
	require.NotNil(t, snap)
	assert.Equal(t, "timeout", errMsg)
}

func TestStore_StaleFetchDoesNotOverwriteFresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := mocks.NewMockIntegrator(ctrl)
	store := NewStore(integrator)

	stale := &domain.MarketingData{Campaigns: []domain.Campaign{{Name: "stale"}}}
	fresh := &domain.MarketingData{Campaigns: []domain.Campaign{{Name: "fresh"}}}

	// Simula o primeiro fetch (lento) resolvendo depois do segundo: a
	// sequência do primeiro é tomada antes, mas o resultado chega depois
	staleSeq := store.takeSequence()

	integrator.EXPECT().FetchMarketingData(gomock.Any()).Return(fresh, []byte(`fresh`), nil)
	require.NoError(t, store.Refresh(context.Background()))

	applied := store.apply(staleSeq, &Snapshot{Data: stale, Hash: "stale"})

	assert.False(t, applied)
	snap, _ := store.Current()
	assert.Equal(t, "fresh", snap.Data.Campaigns[0].Name)
}

func TestStore_SnapshotHasVersionAndHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := mocks.NewMockIntegrator(ctrl)
	integrator.EXPECT().
		FetchMarketingData(gomock.Any()).
		Return(&domain.MarketingData{}, []byte(`{"campaigns":[]}`), nil)

	store := NewStore(integrator)
	require.NoError(t, store.Refresh(context.Background()))

	snap, _ := store.Current()
	assert.Len(t, snap.Hash, 64)
	assert.NotEmpty(t, snap.Version)
	assert.False(t, snap.FetchedAt.IsZero())
}
