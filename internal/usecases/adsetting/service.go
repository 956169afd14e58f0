package adsetting

import (
	"context"
	"time"

	"github.com/alikitto/ad-dash/infrastructure/repository"
	"github.com/alikitto/ad-dash/internal/config"
	"github.com/alikitto/ad-dash/internal/domain"
	"github.com/alikitto/ad-dash/internal/usecases/resolving"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalidStatus indica um status de veiculação fora de ACTIVE/PAUSED
	ErrInvalidStatus = errors.New("status inválido: os valores aceitos são ACTIVE e PAUSED")

	// ErrEmptyPayload indica uma mutação de orçamento/datas sem nenhum campo
	ErrEmptyPayload = errors.New("payload de atualização não contém nenhuma mutação")
)

// Service orquestra a listagem, a visão de detalhes e as mutações de
// conjuntos de anúncios
type Service struct {
	cfg        *config.Config
	integrator AdsetIntegrator
	spendRepo  repository.AdsetSpendRepository
}

// NewService cria uma nova instância do serviço de conjuntos
func NewService(cfg *config.Config, integrator AdsetIntegrator) *Service {
	return &Service{
		cfg:        cfg,
		integrator: integrator,
	}
}

// WithSpendCache habilita o cache local da série de gastos diários
func (s *Service) WithSpendCache(spendRepo repository.AdsetSpendRepository) *Service {
	s.spendRepo = spendRepo
	return s
}

// ListAdsets retorna as linhas da listagem do dashboard de uma conta
func (s *Service) ListAdsets(accountID string, filters *domain.AdsetFilters) ([]*domain.AdsetRow, error) {
	return s.integrator.ListAdsets(accountID, filters)
}

// GetAdsetDetails monta o view-model mesclado de um conjunto. Cada fonte
// upstream (detalhes, histórico, insights por período) é buscada de forma
// independente e a falha de qualquer uma degrada para campos desconhecidos em
// vez de derrubar a visão inteira.
func (s *Service) GetAdsetDetails(ctx context.Context, adsetID, campaignID string) (*domain.ResolvedAdset, error) {
	details, err := s.integrator.GetAdsetDetails(adsetID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"adset_id": adsetID,
			"error":    err.Error(),
		}).Warn("adsets: details record unavailable, resolving from remaining sources")
		details = nil
	}

	if campaignID == "" && details != nil {
		campaignID = details.StringField("campaign_id")
	}

	history := s.fetchHistory(adsetID, campaignID)
	insights := s.fetchTimeInsights(ctx, adsetID)

	return resolving.BuildResolvedAdset(nil, details, history, insights), nil
}

// GetAdsetHistory retorna o log de alterações classificado de um conjunto
func (s *Service) GetAdsetHistory(adsetID, campaignID string) []domain.ChangeRecord {
	return resolving.ClassifyHistory(s.fetchHistory(adsetID, campaignID))
}

// fetchHistory busca o log do conjunto e recorre uma única vez ao log da
// campanha quando o do conjunto está vazio ou indisponível
func (s *Service) fetchHistory(adsetID, campaignID string) []domain.HistoryEntry {
	entries, err := s.integrator.GetAdsetHistory(adsetID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"adset_id": adsetID,
			"error":    err.Error(),
		}).Warn("adsets: adset activity log unavailable")
	}

	if len(entries) > 0 || campaignID == "" {
		return entries
	}

	campaignEntries, err := s.integrator.GetAdsetHistory(campaignID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Warn("adsets: campaign activity log unavailable")
		return entries
	}

	for i := range campaignEntries {
		campaignEntries[i].Scope = domain.HistoryScopeCampaign
	}

	return campaignEntries
}

// GetAdsetTimeInsights retorna a série de gastos diários do conjunto no
// intervalo pedido, alimentando o cache local em write-through. Com o
// upstream indisponível, o cache responde no lugar.
func (s *Service) GetAdsetTimeInsights(ctx context.Context, adsetID, accountID string, since, until time.Time) (*domain.TimeInsights, error) {
	insights, err := s.integrator.GetAdsetTimeInsights(adsetID, since, until)
	if err == nil {
		if s.spendRepo != nil && accountID != "" && len(insights.DailyData) > 0 {
			if cacheErr := s.spendRepo.UpsertDailySpends(ctx, accountID, adsetID, insights.DailyData); cacheErr != nil {
				logrus.WithFields(logrus.Fields{
					"adset_id": adsetID,
					"error":    cacheErr.Error(),
				}).Warn("adsets: failed to cache daily spends")
			}
		}
		return insights, nil
	}

	logrus.WithFields(logrus.Fields{
		"adset_id": adsetID,
		"error":    err.Error(),
	}).Warn("adsets: time insights unavailable, falling back to cache")

	if s.spendRepo == nil {
		return nil, err
	}

	samples, cacheErr := s.spendRepo.GetDailySpends(ctx, adsetID, since, until)
	if cacheErr != nil || len(samples) == 0 {
		return nil, err
	}

	return &domain.TimeInsights{
		DateRange: domain.DateRange{
			Start: samples[0].Date,
			End:   samples[len(samples)-1].Date,
		},
		DailyData: samples,
	}, nil
}

// fetchTimeInsights busca a série de gastos da janela de retrospecto
// configurada, tolerando indisponibilidade total
func (s *Service) fetchTimeInsights(ctx context.Context, adsetID string) *domain.TimeInsights {
	lookback := s.cfg.SpendSync.LookbackDays
	if lookback <= 0 {
		lookback = 7
	}

	until := time.Now().UTC()
	since := until.AddDate(0, 0, -lookback)

	insights, err := s.GetAdsetTimeInsights(ctx, adsetID, "", since, until)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"adset_id": adsetID,
			"error":    err.Error(),
		}).Warn("adsets: resolving without spend series")
		return nil
	}

	return insights
}

// UpdateAdsetStatus valida e aplica uma mudança de estado de veiculação
func (s *Service) UpdateAdsetStatus(adsetID, status string) error {
	if !domain.ValidAdsetStatus(status) {
		return ErrInvalidStatus
	}

	if err := s.integrator.UpdateAdsetStatus(adsetID, status); err != nil {
		return errors.Wrap(err, "erro ao atualizar status do conjunto")
	}

	logrus.WithFields(logrus.Fields{
		"adset_id": adsetID,
		"status":   status,
	}).Info("adsets: status updated")

	return nil
}

// UpdateAdsetBudgetDates valida e aplica uma mutação de orçamento/datas. O
// payload chega pronto das recomendações: valores em unidades menores
// inteiras e end_time em ISO-8601, repassados sem retrabalho.
func (s *Service) UpdateAdsetBudgetDates(adsetID string, payload domain.UpdateBudgetDatesPayload) error {
	if payload.Empty() {
		return ErrEmptyPayload
	}

	if err := s.integrator.UpdateAdsetBudgetDates(adsetID, payload); err != nil {
		return errors.Wrap(err, "erro ao atualizar orçamento/datas do conjunto")
	}

	logrus.WithField("adset_id", adsetID).Info("adsets: budget/dates updated")

	return nil
}
