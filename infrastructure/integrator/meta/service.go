package meta

import (
	"fmt"
	"strconv"
	"time"

	metadomain "github.com/alikitto/ad-dash/infrastructure/integrator/meta/domain"
	"github.com/alikitto/ad-dash/infrastructure/integrator/meta/metaclient"
	"github.com/alikitto/ad-dash/internal/config"
	"github.com/alikitto/ad-dash/internal/domain"
	"github.com/alikitto/ad-dash/internal/usecases/resolving"
	"github.com/alikitto/ad-dash/pkg/utils"
	"github.com/sirupsen/logrus"
)

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// ListAdsets retorna as linhas da listagem do dashboard para uma conta,
// com as métricas derivadas (CPL, CPM) já calculadas
func (s *MetaIntegrator) ListAdsets(accountID string, filters *domain.AdsetFilters) ([]*domain.AdsetRow, error) {
	insights, err := s.Client.GetAdsetInsightsByAccountID(accountID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("adsets: failed to get adset insights from API")
		return nil, err
	}

	// O endpoint de insights não traz status; a consulta à lista de conjuntos
	// preenche o estado de veiculação de cada linha. A falha dela não derruba
	// a listagem, só deixa as linhas sem status.
	statuses, err := s.Client.GetAdsetStatusesByAccountID(accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Warn("adsets: failed to get adset statuses from API")
		statuses = nil
	}

	rows := make([]*domain.AdsetRow, 0, len(insights))
	for i := range insights {
		row := factoryAdsetRow(&insights[i])
		if status, ok := statuses[row.AdsetID]; ok && status != "" {
			row.Status = status
			row.Raw["status"] = status
		}
		rows = append(rows, row)
	}

	logrus.WithFields(logrus.Fields{
		"account_id":   accountID,
		"total_adsets": len(rows),
	}).Debug("adsets: successfully retrieved adset rows")

	return rows, nil
}

// GetAdsetDetails retorna o registro de detalhes bruto de um conjunto
func (s *MetaIntegrator) GetAdsetDetails(adsetID string) (domain.RawRecord, error) {
	record, err := s.Client.GetAdsetByID(adsetID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"adset_id": adsetID,
			"error":    err.Error(),
		}).Error("adsets: failed to get adset details from API")
		return nil, err
	}

	return record, nil
}

// GetAdsetHistory retorna o log de alterações de um objeto convertido para o
// formato interno, preservando a ordem do upstream
func (s *MetaIntegrator) GetAdsetHistory(objectID string) ([]domain.HistoryEntry, error) {
	activities, err := s.Client.GetActivitiesByObjectID(objectID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"object_id": objectID,
			"error":     err.Error(),
		}).Error("adsets: failed to get activities from API")
		return nil, err
	}

	entries := make([]domain.HistoryEntry, 0, len(activities))
	for i := range activities {
		entries = append(entries, factoryHistoryEntry(&activities[i]))
	}

	return entries, nil
}

// GetAdsetTimeInsights retorna a série de gastos diários do conjunto no
// intervalo pedido
func (s *MetaIntegrator) GetAdsetTimeInsights(adsetID string, since, until time.Time) (*domain.TimeInsights, error) {
	daily, dateStart, dateStop, err := s.Client.GetAdsetDailyInsights(adsetID, since, until)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"adset_id": adsetID,
			"error":    err.Error(),
		}).Error("adsets: failed to get daily insights from API")
		return nil, err
	}

	samples := make([]domain.SpendSample, 0, len(daily))
	for _, d := range daily {
		spend, convErr := strconv.ParseFloat(d.Spend, 64)
		if convErr != nil {
			logrus.WithFields(logrus.Fields{
				"adset_id":    adsetID,
				"spend_value": d.Spend,
			}).Warn("adsets: error converting daily spend to float")
			continue
		}

		samples = append(samples, domain.SpendSample{
			Date:  d.DateStart,
			Spend: utils.RoundWithTwoDecimalPlace(spend),
		})
	}

	return &domain.TimeInsights{
		DateRange: domain.DateRange{Start: dateStart, End: dateStop},
		DailyData: samples,
	}, nil
}

// UpdateAdsetStatus muda o estado de veiculação de um conjunto
func (s *MetaIntegrator) UpdateAdsetStatus(adsetID, status string) error {
	return s.Client.UpdateAdset(adsetID, map[string]string{"status": status})
}

// UpdateAdsetBudgetDates aplica uma mutação de orçamento/datas em um conjunto.
// Os valores do payload já estão nas unidades que a API espera.
func (s *MetaIntegrator) UpdateAdsetBudgetDates(adsetID string, payload domain.UpdateBudgetDatesPayload) error {
	fields := make(map[string]string)

	if payload.DailyBudget != nil {
		fields["daily_budget"] = strconv.FormatInt(*payload.DailyBudget, 10)
	}
	if payload.LifetimeBudget != nil {
		fields["lifetime_budget"] = strconv.FormatInt(*payload.LifetimeBudget, 10)
	}
	if payload.EndTime != nil {
		fields["end_time"] = *payload.EndTime
	}

	if len(fields) == 0 {
		return fmt.Errorf("payload de atualização vazio para o conjunto %s", adsetID)
	}

	return s.Client.UpdateAdset(adsetID, fields)
}

func factoryAdsetRow(insight *metadomain.AdsetInsight) *domain.AdsetRow {
	spend := insight.GetSpend()
	leads := insight.GetLeads()

	impressions, err := strconv.Atoi(insight.Impressions)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"adset_id":          insight.AdsetID,
			"impressions_value": insight.Impressions,
		}).Warn("adsets: error converting impressions to integer")
	}

	linkClicks, err := strconv.Atoi(insight.LinkClicks)
	if err != nil && insight.LinkClicks != "" {
		logrus.WithFields(logrus.Fields{
			"adset_id":          insight.AdsetID,
			"link_clicks_value": insight.LinkClicks,
		}).Warn("adsets: error converting link clicks to integer")
	}

	frequency, _ := strconv.ParseFloat(insight.Frequency, 64)
	ctr, _ := strconv.ParseFloat(insight.CTR, 64)

	var cpl float64
	if leads > 0 {
		cpl = utils.RoundWithTwoDecimalPlace(spend / float64(leads))
	}

	var cpm float64
	if impressions > 0 {
		cpm = utils.RoundWithTwoDecimalPlace(spend / float64(impressions) * 1000)
	}

	// O registro bruto entra na linha como fonte de fallback da resolução de
	// orçamento/cronograma quando o registro de detalhes não responde
	raw := domain.RawRecord{
		"adset_id":    insight.AdsetID,
		"adset_name":  insight.AdsetName,
		"campaign_id": insight.CampaignID,
		"date_start":  insight.DateStart,
		"date_stop":   insight.DateStop,
	}

	return &domain.AdsetRow{
		AccountID:    insight.AccountID,
		AccountName:  insight.AccountName,
		AdsetID:      insight.AdsetID,
		AdsetName:    insight.AdsetName,
		CampaignID:   insight.CampaignID,
		CampaignName: insight.CampaignName,
		Objective:    insight.Objective,
		Spend:        spend,
		Leads:        leads,
		CPL:          cpl,
		CPM:          cpm,
		CTRAll:       utils.RoundWithTwoDecimalPlace(ctr),
		LinkClicks:   linkClicks,
		Impressions:  impressions,
		Frequency:    frequency,
		Raw:          raw,
	}
}

func factoryHistoryEntry(activity *metadomain.Activity) domain.HistoryEntry {
	action := activity.EventType
	if action == "" {
		action = activity.TranslatedName
	}

	var timestamp time.Time
	if ts := resolving.ParseTimestamp(activity.EventTime); ts != nil {
		timestamp = *ts
	}

	return domain.HistoryEntry{
		Timestamp: timestamp,
		Actor:     activity.ActorName,
		Action:    action,
		Details:   activity.ExtraData,
		Scope:     domain.HistoryScopeAdset,
	}
}
