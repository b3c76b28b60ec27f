package scheduler

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	repositorymocks "github.com/vfg2006/rank-tracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/rank-tracker-api/internal/domain"
	resolvingmocks "github.com/vfg2006/rank-tracker-api/internal/usecases/resolving/mocks"
	trackingmocks "github.com/vfg2006/rank-tracker-api/internal/usecases/tracking/mocks"
	"go.uber.org/mock/gomock"
)

type syncMocks struct {
	snapshotRepo *repositorymocks.MockSnapshotRepository
	resolver     *resolvingmocks.MockResolver
	tracker      *trackingmocks.MockTracker
}

func newSyncServiceForTest(ctrl *gomock.Controller) (*RankUpdateSyncService, *syncMocks) {
	mocks := &syncMocks{
		snapshotRepo: repositorymocks.NewMockSnapshotRepository(ctrl),
		resolver:     resolvingmocks.NewMockResolver(ctrl),
		tracker:      trackingmocks.NewMockTracker(ctrl),
	}

	service := &RankUpdateSyncService{
		config: RankUpdateSyncConfig{
			RequestDelaySeconds: 0,
			SyncEnabled:         true,
		},
		snapshotRepo: mocks.snapshotRepo,
		resolver:     mocks.resolver,
		tracker:      mocks.tracker,
		rootCtx:      context.Background(),
	}

	return service, mocks
}

func TestSyncAllRankingsResolvesOncePerIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newSyncServiceForTest(ctrl)
	ctx := context.Background()

	tracked := &domain.TrackedQuery{
		Keyword:        "pizza madrid",
		FilteredDomain: "joes-pizza.es",
		Device:         domain.DeviceDesktop,
		SearchEngine:   domain.SearchEngineGoogle,
		UserIDs:        []int{7, 11},
	}

	mocks.snapshotRepo.EXPECT().
		ListDistinctQueries(ctx).
		Return([]*domain.TrackedQuery{tracked}, nil)

	resolution := &domain.RankResolution{Position: 3, MatchedDomain: "joes-pizza.es"}

	// Uma única resolução paginada para a identidade, mesmo compartilhada
	// por dois usuários
	mocks.resolver.EXPECT().
		ResolveRank(ctx, tracked.Query()).
		Return(resolution, nil).
		Times(1)

	// Só a gravação do snapshot é replicada por usuário
	mocks.tracker.EXPECT().
		StoreResolution(ctx, tracked.QueryFor(7), resolution).
		Return(&domain.RankSnapshot{Position: 3}, nil)
	mocks.tracker.EXPECT().
		StoreResolution(ctx, tracked.QueryFor(11), resolution).
		Return(&domain.RankSnapshot{Position: 3}, nil)

	service.syncAllRankings(ctx)

	assert.False(t, service.syncRunning)
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestSyncAllRankingsSkipsNotFoundIdentities(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newSyncServiceForTest(ctrl)
	ctx := context.Background()

	tracked := &domain.TrackedQuery{
		Keyword:        "pizza madrid",
		FilteredDomain: "joes-pizza.es",
		Device:         domain.DeviceDesktop,
		UserIDs:        []int{7},
	}

	mocks.snapshotRepo.EXPECT().
		ListDistinctQueries(ctx).
		Return([]*domain.TrackedQuery{tracked}, nil)

	// Não encontrado: o snapshot vigente não é tocado para nenhum usuário
	mocks.resolver.EXPECT().
		ResolveRank(ctx, tracked.Query()).
		Return(&domain.RankResolution{}, nil)

	service.syncAllRankings(ctx)

	assert.False(t, service.syncRunning)
}

func TestSyncAllRankingsContinuesAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newSyncServiceForTest(ctrl)
	ctx := context.Background()

	first := &domain.TrackedQuery{
		Keyword:        "pizza madrid",
		FilteredDomain: "joes-pizza.es",
		Device:         domain.DeviceDesktop,
		UserIDs:        []int{7},
	}
	second := &domain.TrackedQuery{
		Keyword:        "pizzeria cerca",
		FilteredDomain: "joes-pizza.es",
		Device:         domain.DeviceMobile,
		UserIDs:        []int{7},
	}

	mocks.snapshotRepo.EXPECT().
		ListDistinctQueries(ctx).
		Return([]*domain.TrackedQuery{first, second}, nil)

	// A falha da primeira identidade não aborta o restante do lote
	mocks.resolver.EXPECT().
		ResolveRank(ctx, first.Query()).
		Return(nil, errors.New("provedor indisponível"))

	resolution := &domain.RankResolution{Position: 5, MatchedDomain: "joes-pizza.es"}
	mocks.resolver.EXPECT().
		ResolveRank(ctx, second.Query()).
		Return(resolution, nil)
	mocks.tracker.EXPECT().
		StoreResolution(ctx, second.QueryFor(7), resolution).
		Return(&domain.RankSnapshot{Position: 5}, nil)

	service.syncAllRankings(ctx)

	assert.False(t, service.syncRunning)
}

func TestSyncAllRankingsContinuesAfterPersistenceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newSyncServiceForTest(ctrl)
	ctx := context.Background()

	tracked := &domain.TrackedQuery{
		Keyword:        "pizza madrid",
		FilteredDomain: "joes-pizza.es",
		Device:         domain.DeviceDesktop,
		UserIDs:        []int{7, 11},
	}

	mocks.snapshotRepo.EXPECT().
		ListDistinctQueries(ctx).
		Return([]*domain.TrackedQuery{tracked}, nil)

	resolution := &domain.RankResolution{Position: 3, MatchedDomain: "joes-pizza.es"}
	mocks.resolver.EXPECT().
		ResolveRank(ctx, tracked.Query()).
		Return(resolution, nil)

	// O erro de gravação de um usuário não impede a gravação dos demais
	mocks.tracker.EXPECT().
		StoreResolution(ctx, tracked.QueryFor(7), resolution).
		Return(nil, errors.New("banco indisponível"))
	mocks.tracker.EXPECT().
		StoreResolution(ctx, tracked.QueryFor(11), resolution).
		Return(&domain.RankSnapshot{Position: 3}, nil)

	service.syncAllRankings(ctx)

	assert.False(t, service.syncRunning)
}

func TestSyncAllRankingsStopsOnContextCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newSyncServiceForTest(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tracked := &domain.TrackedQuery{
		Keyword: "pizza madrid",
		UserIDs: []int{7},
	}

	// Contexto já cancelado: nenhuma identidade é resolvida
	mocks.snapshotRepo.EXPECT().
		ListDistinctQueries(ctx).
		Return([]*domain.TrackedQuery{tracked}, nil)

	service.syncAllRankings(ctx)

	assert.False(t, service.syncRunning)
}

func TestSyncAllRankingsSkipsWhenAlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newSyncServiceForTest(ctrl)
	service.syncRunning = true

	// Nenhuma chamada ao repositório é esperada
	service.syncAllRankings(context.Background())

	assert.True(t, service.syncRunning)
}

func TestGetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newSyncServiceForTest(ctrl)
	service.config.CronSchedule = "0 3 * * *"

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, false, status["sync_running"])
}
