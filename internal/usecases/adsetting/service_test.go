package adsetting

import (
	"context"
	"testing"
	"time"

	repomocks "github.com/alikitto/ad-dash/infrastructure/repository/mocks"
	"github.com/alikitto/ad-dash/internal/config"
	"github.com/alikitto/ad-dash/internal/domain"
	"github.com/alikitto/ad-dash/internal/usecases/adsetting/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockAdsetIntegrator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockAdsetIntegrator(ctrl)

	cfg := &config.Config{}
	cfg.SpendSync.LookbackDays = 7

	return NewService(cfg, integrator), integrator
}

func TestService_GetAdsetDetails(t *testing.T) {
	t.Run("Monta o view-model com as três fontes disponíveis", func(t *testing.T) {
		service, integrator := newTestService(t)

		details := domain.RawRecord{
			"id":           "AD001",
			"name":         "Promo Junho",
			"status":       "ACTIVE",
			"campaign_id":  "CP001",
			"daily_budget": "5000",
			"start_time":   "2024-06-01",
		}
		history := []domain.HistoryEntry{
			{Action: "create_ad_set", Actor: "Ana"},
		}
		insights := &domain.TimeInsights{
			DateRange: domain.DateRange{Start: "2024-06-01", End: "2024-06-02"},
			DailyData: []domain.SpendSample{
				{Date: "2024-06-01", Spend: 40.0},
				{Date: "2024-06-02", Spend: 60.0},
			},
		}

		integrator.EXPECT().GetAdsetDetails("AD001").Return(details, nil)
		integrator.EXPECT().GetAdsetHistory("AD001").Return(history, nil)
		integrator.EXPECT().GetAdsetTimeInsights("AD001", gomock.Any(), gomock.Any()).Return(insights, nil)

		resolved, err := service.GetAdsetDetails(context.Background(), "AD001", "")

		require.NoError(t, err)
		assert.Equal(t, "AD001", resolved.AdsetID)
		assert.Equal(t, domain.BudgetKindDaily, resolved.Budget.Kind)
		assert.Equal(t, 50.00, resolved.Budget.Amount)
		assert.Equal(t, 50.00, resolved.AvgDailySpend)
		require.Len(t, resolved.History, 1)
		assert.Equal(t, "Adset created", resolved.History[0].Title)
	})

	t.Run("Histórico vazio recorre à campanha uma única vez", func(t *testing.T) {
		service, integrator := newTestService(t)

		details := domain.RawRecord{
			"id":          "AD001",
			"campaign_id": "CP001",
		}
		campaignHistory := []domain.HistoryEntry{
			{Action: "update_ad_set_budget", Details: "daily_budget: 1500 -> 2000"},
		}

		integrator.EXPECT().GetAdsetDetails("AD001").Return(details, nil)
		integrator.EXPECT().GetAdsetHistory("AD001").Return(nil, nil)
		integrator.EXPECT().GetAdsetHistory("CP001").Return(campaignHistory, nil)
		integrator.EXPECT().GetAdsetTimeInsights("AD001", gomock.Any(), gomock.Any()).Return(&domain.TimeInsights{}, nil)

		resolved, err := service.GetAdsetDetails(context.Background(), "AD001", "")

		require.NoError(t, err)
		require.Len(t, resolved.History, 1)
		assert.Equal(t, domain.HistoryScopeCampaign, resolved.History[0].Scope)
	})

	t.Run("Sem campanha conhecida não há segunda tentativa de histórico", func(t *testing.T) {
		service, integrator := newTestService(t)

		integrator.EXPECT().GetAdsetDetails("AD001").Return(nil, errors.New("timeout"))
		integrator.EXPECT().GetAdsetHistory("AD001").Return(nil, errors.New("timeout"))
		integrator.EXPECT().GetAdsetTimeInsights("AD001", gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		resolved, err := service.GetAdsetDetails(context.Background(), "AD001", "")

		// Todas as fontes indisponíveis ainda rendem um view-model utilizável
		require.NoError(t, err)
		assert.Equal(t, domain.BudgetKindUnknown, resolved.Budget.Kind)
		assert.Nil(t, resolved.Schedule.Start)
		assert.Empty(t, resolved.History)
		assert.Empty(t, resolved.Recommendations)
	})
}

func TestService_GetAdsetTimeInsights(t *testing.T) {
	since := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC)

	t.Run("Sucesso do upstream alimenta o cache em write-through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		integrator := mocks.NewMockAdsetIntegrator(ctrl)
		spendRepo := repomocks.NewMockAdsetSpendRepository(ctrl)

		cfg := &config.Config{}
		service := NewService(cfg, integrator).WithSpendCache(spendRepo)

		insights := &domain.TimeInsights{
			DailyData: []domain.SpendSample{{Date: "2024-06-01", Spend: 10.0}},
		}

		integrator.EXPECT().GetAdsetTimeInsights("AD001", since, until).Return(insights, nil)
		spendRepo.EXPECT().UpsertDailySpends(gomock.Any(), "ACC001", "AD001", insights.DailyData).Return(nil)

		got, err := service.GetAdsetTimeInsights(context.Background(), "AD001", "ACC001", since, until)

		require.NoError(t, err)
		assert.Equal(t, insights, got)
	})

	t.Run("Upstream indisponível responde do cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		integrator := mocks.NewMockAdsetIntegrator(ctrl)
		spendRepo := repomocks.NewMockAdsetSpendRepository(ctrl)

		cfg := &config.Config{}
		service := NewService(cfg, integrator).WithSpendCache(spendRepo)

		cached := []domain.SpendSample{
			{Date: "2024-06-01", Spend: 10.0},
			{Date: "2024-06-02", Spend: 12.0},
		}

		integrator.EXPECT().GetAdsetTimeInsights("AD001", since, until).Return(nil, errors.New("rate limited"))
		spendRepo.EXPECT().GetDailySpends(gomock.Any(), "AD001", since, until).Return(cached, nil)

		got, err := service.GetAdsetTimeInsights(context.Background(), "AD001", "ACC001", since, until)

		require.NoError(t, err)
		assert.Equal(t, cached, got.DailyData)
		assert.Equal(t, "2024-06-01", got.DateRange.Start)
		assert.Equal(t, "2024-06-02", got.DateRange.End)
	})

	t.Run("Upstream e cache indisponíveis propagam o erro original", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		integrator := mocks.NewMockAdsetIntegrator(ctrl)
		spendRepo := repomocks.NewMockAdsetSpendRepository(ctrl)

		cfg := &config.Config{}
		service := NewService(cfg, integrator).WithSpendCache(spendRepo)

		upstreamErr := errors.New("rate limited")

		integrator.EXPECT().GetAdsetTimeInsights("AD001", since, until).Return(nil, upstreamErr)
		spendRepo.EXPECT().GetDailySpends(gomock.Any(), "AD001", since, until).Return(nil, nil)

		_, err := service.GetAdsetTimeInsights(context.Background(), "AD001", "ACC001", since, until)

		assert.ErrorContains(t, err, "rate limited")
	})
}

func TestService_UpdateAdsetStatus(t *testing.T) {
	t.Run("Status válido é repassado ao integrador", func(t *testing.T) {
		service, integrator := newTestService(t)

		integrator.EXPECT().UpdateAdsetStatus("AD001", domain.AdsetStatusPaused).Return(nil)

		assert.NoError(t, service.UpdateAdsetStatus("AD001", domain.AdsetStatusPaused))
	})

	t.Run("Status fora de ACTIVE/PAUSED é rejeitado antes do upstream", func(t *testing.T) {
		service, _ := newTestService(t)

		err := service.UpdateAdsetStatus("AD001", "DELETED")

		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestService_UpdateAdsetBudgetDates(t *testing.T) {
	t.Run("Payload é repassado sem retrabalho de unidades", func(t *testing.T) {
		service, integrator := newTestService(t)

		lifetime := int64(16000)
		endTime := "2024-07-03T00:00:00Z"
		payload := domain.UpdateBudgetDatesPayload{
			LifetimeBudget: &lifetime,
			EndTime:        &endTime,
		}

		integrator.EXPECT().UpdateAdsetBudgetDates("AD001", payload).Return(nil)

		assert.NoError(t, service.UpdateAdsetBudgetDates("AD001", payload))
	})

	t.Run("Payload vazio é rejeitado antes do upstream", func(t *testing.T) {
		service, _ := newTestService(t)

		err := service.UpdateAdsetBudgetDates("AD001", domain.UpdateBudgetDatesPayload{})

		assert.ErrorIs(t, err, ErrEmptyPayload)
	})
}
