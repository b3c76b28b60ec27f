package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/rank-tracker-api/infrastructure/repository"
	"github.com/vfg2006/rank-tracker-api/internal/config"
	"github.com/vfg2006/rank-tracker-api/internal/domain"
	"github.com/vfg2006/rank-tracker-api/internal/usecases/resolving"
	"github.com/vfg2006/rank-tracker-api/internal/usecases/tracking"
)

// RankUpdateSyncConfig representa a configuração do agendador de atualização
// de rankings
type RankUpdateSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	SyncEnabled         bool
}

// RankUpdateSyncService gerencia o agendamento e execução do lote diário de
// atualização de rankings. As identidades distintas de consulta são
// processadas em sequência para controlar o custo e a taxa de chamadas ao
// provedor de busca pago; não há fan-out concorrente de páginas.
type RankUpdateSyncService struct {
	scheduler           *gocron.Scheduler
	config              RankUpdateSyncConfig
	snapshotRepo        repository.SnapshotRepository
	resolver            resolving.Resolver
	tracker             tracking.Tracker
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	rootCtx             context.Context
}

// NewRankUpdateSyncService cria uma nova instância do serviço de
// sincronização de rankings
func NewRankUpdateSyncService(
	snapshotRepo repository.SnapshotRepository,
	resolver resolving.Resolver,
	tracker tracking.Tracker,
	appConfig *config.Config,
) *RankUpdateSyncService {
	syncConfig := RankUpdateSyncConfig{
		CronSchedule:        appConfig.RankUpdateSync.CronSchedule,
		RequestDelaySeconds: appConfig.RankUpdateSync.RequestDelaySeconds,
		SyncEnabled:         appConfig.RankUpdateSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de atualização de rankings carregada")

	return &RankUpdateSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		snapshotRepo: snapshotRepo,
		resolver:     resolver,
		tracker:      tracker,
		syncRunning:  false,
		rootCtx:      context.Background(),
	}
}

// Start inicia o agendador
func (s *RankUpdateSyncService) Start(ctx context.Context) error {
	s.rootCtx = ctx

	if !s.config.SyncEnabled {
		logrus.Info("Atualização agendada de rankings desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização de rankings")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllRankings(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de rankings: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização de rankings")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllRankings reprocessa todas as identidades distintas de consulta.
// O lote é idempotente e seguro para reexecução: cada identidade resolve a
// posição atual e sobrescreve o snapshot vigente.
func (s *RankUpdateSyncService) syncAllRankings(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização de rankings já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando atualização de rankings para todas as identidades monitoradas")

	trackedQueries, err := s.snapshotRepo.ListDistinctQueries(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar identidades de consulta para atualização de rankings")
		return
	}

	if len(trackedQueries) == 0 {
		logrus.Info("Nenhuma identidade monitorada encontrada para atualização de rankings")
		return
	}

	logrus.WithField("identities", len(trackedQueries)).Info("Identidades encontradas para atualização de rankings")

	var updated, failed int
	for _, tracked := range trackedQueries {
		// Cancelamento interrompe o lote entre identidades, nunca no meio
		// de uma resolução
		if ctx.Err() != nil {
			logrus.Info("Atualização de rankings interrompida por cancelamento do contexto")
			break
		}

		if s.processTrackedQuery(ctx, tracked) {
			updated++
		} else {
			failed++
		}

		// Aguardar antes da próxima requisição para evitar sobrecarga na API
		time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":   duration.String(),
		"identities": len(trackedQueries),
		"updated":    updated,
		"failed":     failed,
	}).Info("Atualização de rankings concluída")

	s.lastSyncCompletedAt = time.Now()
}

// processTrackedQuery resolve uma identidade uma única vez e replica o
// resultado para cada usuário que a monitora. A resolução paginada é paga por
// chamada, então só a escrita do snapshot é repetida por usuário. Falhas são
// registradas sem abortar o restante do lote.
func (s *RankUpdateSyncService) processTrackedQuery(ctx context.Context, tracked *domain.TrackedQuery) bool {
	logger := logrus.WithFields(logrus.Fields{
		"keyword":  tracked.Keyword,
		"domain":   tracked.FilteredDomain,
		"device":   tracked.Device,
		"location": tracked.Location,
		"users":    len(tracked.UserIDs),
	})

	logger.Info("Processando identidade de consulta")

	resolution, err := s.resolver.ResolveRank(ctx, tracked.Query())
	if err != nil {
		logger.WithError(err).Error("Erro ao resolver a identidade de consulta")
		return false
	}

	if !resolution.Found() {
		logger.Info("Domínio não encontrado nos resultados da busca, identidade mantida")
		return true
	}

	succeeded := true
	for _, userID := range tracked.UserIDs {
		if _, err := s.tracker.StoreResolution(ctx, tracked.QueryFor(userID), resolution); err != nil {
			logger.WithField("user_id", userID).WithError(err).Error("Erro ao gravar ranking da identidade para o usuário")
			succeeded = false
		}
	}

	return succeeded
}

// TriggerManualSync inicia manualmente uma atualização de rankings
func (s *RankUpdateSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização de rankings já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual de rankings")
	go s.syncAllRankings(s.rootCtx)
}

// GetStatus retorna o status atual do agendador
func (s *RankUpdateSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
