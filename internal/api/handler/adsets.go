package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/alikitto/ad-dash/internal/domain"
	"github.com/alikitto/ad-dash/internal/usecases/adsetting"
	"github.com/alikitto/ad-dash/pkg/apiErrors"
	"github.com/alikitto/ad-dash/pkg/log"
	"github.com/alikitto/ad-dash/pkg/utils"
)

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListAdsets retorna as linhas da listagem do dashboard para uma conta
func ListAdsets(service *adsetting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID := r.URL.Query().Get("account_id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe account_id na query string", nil)
			return
		}

		logger.WithField("account_id", accountID).Info("adsets: listing adsets for account")

		filters, err := parseAdsetFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Warn("adsets: invalid date filters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas inválidas: use o formato YYYY-MM-DD", nil)
			return
		}

		rows, err := service.ListAdsets(accountID, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("adsets: failed to list adsets")

			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar conjuntos na API da Meta", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rows); err != nil {
			logger.WithError(err).Error("adsets: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetAdsetDetails retorna o view-model mesclado e normalizado de um conjunto,
// incluindo orçamento, cronograma, histórico classificado e recomendações
func GetAdsetDetails(service *adsetting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		adsetID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		campaignID := r.URL.Query().Get("campaign_id")

		logger.WithField("adset_id", adsetID).Info("adsets: resolving adset details")

		resolved, err := service.GetAdsetDetails(r.Context(), adsetID, campaignID)
		if err != nil {
			logger.WithFields(log.Fields{
				"adset_id": adsetID,
				"error":    err.Error(),
			}).Error("adsets: failed to resolve adset details")

			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao montar a visão de detalhes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resolved); err != nil {
			logger.WithError(err).Error("adsets: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetAdsetHistory retorna o log de alterações classificado de um conjunto
func GetAdsetHistory(service *adsetting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		adsetID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		campaignID := r.URL.Query().Get("campaign_id")

		changes := service.GetAdsetHistory(adsetID, campaignID)

		logger.WithFields(log.Fields{
			"adset_id":      adsetID,
			"total_changes": len(changes),
		}).Debug("adsets: classified history retrieved")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(changes); err != nil {
			logger.WithError(err).Error("adsets: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetAdsetTimeInsights retorna a série de gastos diários de um conjunto
func GetAdsetTimeInsights(service *adsetting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		adsetID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		accountID := r.URL.Query().Get("account_id")

		filters, err := parseAdsetFilters(r)
		if err != nil || filters.StartDate == nil || filters.EndDate == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe start_date e end_date no formato YYYY-MM-DD", nil)
			return
		}

		insights, err := service.GetAdsetTimeInsights(r.Context(), adsetID, accountID, *filters.StartDate, *filters.EndDate)
		if err != nil {
			logger.WithFields(log.Fields{
				"adset_id": adsetID,
				"error":    err.Error(),
			}).Error("adsets: failed to get time insights")

			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar série de gastos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(insights); err != nil {
			logger.WithError(err).Error("adsets: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// UpdateAdsetStatus muda o estado de veiculação de um conjunto (ACTIVE/PAUSED)
func UpdateAdsetStatus(service *adsetting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		adsetID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req UpdateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.UpdateAdsetStatus(adsetID, req.Status); err != nil {
			if errors.Is(err, adsetting.ErrInvalidStatus) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}

			logger.WithFields(log.Fields{
				"adset_id": adsetID,
				"status":   req.Status,
				"error":    err.Error(),
			}).Error("adsets: failed to update status")

			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao atualizar status na API da Meta", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"adset_id": adsetID,
			"status":   req.Status,
		})
	})
}

// UpdateAdsetBudgetDates aplica uma mutação de orçamento/datas vinda de uma
// recomendação confirmada pelo operador
func UpdateAdsetBudgetDates(service *adsetting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		adsetID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var payload domain.UpdateBudgetDatesPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.UpdateAdsetBudgetDates(adsetID, payload); err != nil {
			if errors.Is(err, adsetting.ErrEmptyPayload) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}

			logger.WithFields(log.Fields{
				"adset_id": adsetID,
				"error":    err.Error(),
			}).Error("adsets: failed to update budget/dates")

			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao atualizar orçamento/datas na API da Meta", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"adset_id": adsetID,
			"updated":  true,
		})
	})
}

// parseAdsetFilters extrai o período opcional da query string
func parseAdsetFilters(r *http.Request) (*domain.AdsetFilters, error) {
	filters := &domain.AdsetFilters{}

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		startDate, err := utils.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		filters.StartDate = startDate
	}

	if raw := r.URL.Query().Get("end_date"); raw != "" {
		endDate, err := utils.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		filters.EndDate = endDate
	}

	if filters.StartDate != nil && filters.EndDate != nil && filters.EndDate.Before(*filters.StartDate) {
		return nil, errors.New("end_date anterior a start_date")
	}

	return filters, nil
}
