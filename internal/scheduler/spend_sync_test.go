package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/alikitto/ad-dash/infrastructure/repository/mocks"
	"github.com/alikitto/ad-dash/internal/config"
	"github.com/alikitto/ad-dash/internal/domain"
	"github.com/alikitto/ad-dash/internal/usecases/adsetting"
	adsettingmocks "github.com/alikitto/ad-dash/internal/usecases/adsetting/mocks"
)

func newSyncServiceForTest(t *testing.T) (*SpendSyncService, *adsettingmocks.MockAdsetIntegrator, *mocks.MockAdsetSpendRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockIntegrator := adsettingmocks.NewMockAdsetIntegrator(ctrl)
	mockSpendRepo := mocks.NewMockAdsetSpendRepository(ctrl)

	cfg := &config.Config{
		SpendSync: config.SpendSync{
			CronSchedule:        "0 3 * * *",
			LookbackDays:        7,
			RequestDelaySeconds: 0,
			MaxConcurrentJobs:   2,
			Enabled:             true,
		},
	}

	adsetService := adsetting.NewService(cfg, mockIntegrator).WithSpendCache(mockSpendRepo)
	service := NewSpendSyncService(mockSpendRepo, adsetService, cfg)

	return service, mockIntegrator, mockSpendRepo
}

func TestSpendSyncService_syncAllTrackedAdsets(t *testing.T) {
	service, mockIntegrator, mockSpendRepo := newSyncServiceForTest(t)

	tracked := map[string]string{
		"111": "act_100",
		"222": "act_100",
	}

	insights := &domain.TimeInsights{
		DateRange: domain.DateRange{Start: "2026-08-20", End: "2026-08-21"},
		DailyData: []domain.SpendSample{
			{Date: "2026-08-20", Spend: 10.50},
			{Date: "2026-08-21", Spend: 12.00},
		},
	}

	mockSpendRepo.EXPECT().
		ListTrackedAdsets(gomock.Any(), 30).
		Return(tracked, nil)

	// Cada conjunto rastreado gera uma busca no upstream e um write-through no cache
	mockIntegrator.EXPECT().
		GetAdsetTimeInsights(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(insights, nil).
		Times(2)

	mockSpendRepo.EXPECT().
		UpsertDailySpends(gomock.Any(), "act_100", gomock.Any(), insights.DailyData).
		Return(nil).
		Times(2)

	service.syncAllTrackedAdsets(context.Background())

	assert.NotEmpty(t, service.lastRunID)
	assert.False(t, service.lastSyncStartedAt.IsZero())
	assert.False(t, service.lastSyncCompletedAt.IsZero())
	assert.False(t, service.syncRunning)
}

func TestSpendSyncService_syncAllTrackedAdsets_UpstreamIndisponivel(t *testing.T) {
	service, mockIntegrator, mockSpendRepo := newSyncServiceForTest(t)

	mockSpendRepo.EXPECT().
		ListTrackedAdsets(gomock.Any(), 30).
		Return(map[string]string{"111": "act_100"}, nil)

	mockIntegrator.EXPECT().
		GetAdsetTimeInsights(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	// Com o upstream indisponível o serviço consulta o cache antes de desistir
	mockSpendRepo.EXPECT().
		GetDailySpends(gomock.Any(), "111", gomock.Any(), gomock.Any()).
		Return(nil, nil)

	// A falha de um conjunto não interrompe a rodada
	service.syncAllTrackedAdsets(context.Background())

	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestSpendSyncService_TriggerManualSync_RequestEncerrado(t *testing.T) {
	service, _, mockSpendRepo := newSyncServiceForTest(t)

	// O contexto do request já foi cancelado quando a rodada em background
	// começa; a sincronização não pode herdar esse cancelamento
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ctxErrCh := make(chan error, 1)
	mockSpendRepo.EXPECT().
		ListTrackedAdsets(gomock.Any(), 30).
		DoAndReturn(func(c context.Context, _ int) (map[string]string, error) {
			ctxErrCh <- c.Err()
			return nil, nil
		})

	service.TriggerManualSync(ctx)

	select {
	case err := <-ctxErrCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("a sincronização manual não chegou a consultar os conjuntos rastreados")
	}
}

func TestSpendSyncService_syncAllTrackedAdsets_JaEmAndamento(t *testing.T) {
	service, _, _ := newSyncServiceForTest(t)

	service.syncRunning = true

	// Nenhuma chamada aos mocks deve acontecer com uma rodada em andamento
	service.syncAllTrackedAdsets(context.Background())

	assert.Empty(t, service.lastRunID)
}

func TestSpendSyncService_Start_Desabilitado(t *testing.T) {
	service, _, _ := newSyncServiceForTest(t)
	service.config.SyncEnabled = false

	err := service.Start(context.Background())
	assert.NoError(t, err)
}

func TestSpendSyncService_GetStatus(t *testing.T) {
	service, _, _ := newSyncServiceForTest(t)

	startedAt := time.Date(2026, 8, 29, 3, 0, 0, 0, time.UTC)
	service.lastRunID = "abc123"
	service.lastSyncStartedAt = startedAt

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, 7, status["sync_lookback_days"])
	assert.Equal(t, "abc123", status["last_run_id"])
	assert.Equal(t, startedAt, status["last_sync_started_at"])
}
