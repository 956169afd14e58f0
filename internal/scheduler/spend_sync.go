package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"

	"github.com/alikitto/ad-dash/infrastructure/repository"
	"github.com/alikitto/ad-dash/internal/config"
	"github.com/alikitto/ad-dash/internal/usecases/adsetting"
)

// SpendSyncConfig representa a configuração do agendador de gastos diários
type SpendSyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// SpendSyncService renova o cache local de gastos diários dos conjuntos
// rastreados, para que a visão de detalhes tenha série mesmo com o upstream
// instável
type SpendSyncService struct {
	scheduler           *gocron.Scheduler
	config              SpendSyncConfig
	spendRepo           repository.AdsetSpendRepository
	adsetService        *adsetting.Service
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRunID           string
}

// NewSpendSyncService cria uma nova instância do serviço de sincronização de gastos
func NewSpendSyncService(
	spendRepo repository.AdsetSpendRepository,
	adsetService *adsetting.Service,
	appConfig *config.Config,
) *SpendSyncService {
	syncConfig := SpendSyncConfig{
		CronSchedule:        appConfig.SpendSync.CronSchedule,
		LookbackDays:        appConfig.SpendSync.LookbackDays,
		RequestDelaySeconds: appConfig.SpendSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.SpendSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.SpendSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"lookback_days":         syncConfig.LookbackDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de gastos diários carregada")

	return &SpendSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		spendRepo:    spendRepo,
		adsetService: adsetService,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *SpendSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de gastos diários desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de gastos diários")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllTrackedAdsets(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de gastos diários: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de gastos diários")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllTrackedAdsets renova a série de gastos de todos os conjuntos com
// amostras recentes no cache
func (s *SpendSyncService) syncAllTrackedAdsets(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de gastos diários já em andamento, ignorando")
		return
	}
	s.syncRunning = true

	runID, _ := gonanoid.New(6)
	startTime := time.Now()
	s.lastRunID = runID
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.WithField("run_id", runID).Info("Iniciando sincronização de gastos diários dos conjuntos rastreados")

	tracked, err := s.spendRepo.ListTrackedAdsets(ctx, 30)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"run_id": runID,
			"error":  err.Error(),
		}).Error("Erro ao buscar conjuntos rastreados para sincronização")
		return
	}

	if len(tracked) == 0 {
		logrus.WithField("run_id", runID).Info("Nenhum conjunto rastreado encontrado para sincronização")
		return
	}

	s.processTrackedAdsets(ctx, runID, tracked)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"run_id":   runID,
		"duration": duration.String(),
		"adsets":   len(tracked),
		"days":     s.config.LookbackDays,
	}).Info("Sincronização de gastos diários concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// processTrackedAdsets busca a série de cada conjunto com concorrência
// limitada por semáforo e pausa entre requisições
func (s *SpendSyncService) processTrackedAdsets(ctx context.Context, runID string, tracked map[string]string) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	until := time.Now().UTC()
	since := until.AddDate(0, 0, -s.config.LookbackDays)

	for adsetID, accountID := range tracked {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(adsetID, accountID string) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			// GetAdsetTimeInsights grava as amostras no cache em write-through
			if _, err := s.adsetService.GetAdsetTimeInsights(ctx, adsetID, accountID, since, until); err != nil {
				logrus.WithFields(logrus.Fields{
					"run_id":   runID,
					"adset_id": adsetID,
					"error":    err.Error(),
				}).Error("Erro ao sincronizar gastos diários do conjunto")
			}

			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(adsetID, accountID)
	}

	wg.Wait()
}

// TriggerManualSync inicia manualmente uma sincronização de gastos diários.
// A rodada acontece em background e sobrevive ao request que a disparou: só
// os valores do contexto (correlação) são preservados, não o cancelamento.
func (s *SpendSyncService) TriggerManualSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de gastos diários já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de gastos diários")
	go s.syncAllTrackedAdsets(context.WithoutCancel(ctx))
}

// GetStatus retorna o status atual do agendador. Os campos da última rodada
// são compartilhados com a goroutine de sincronização e lidos sob o mutex.
func (s *SpendSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"last_run_id":            s.lastRunID,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
