package adsetting

import (
	"time"

	"github.com/alikitto/ad-dash/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces_mock.go -package=mocks

// AdsetIntegrator define a interface para consultar e mutar conjuntos de
// anúncios na plataforma upstream
type AdsetIntegrator interface {
	// ListAdsets obtém as linhas de resumo dos conjuntos de uma conta
	ListAdsets(accountID string, filters *domain.AdsetFilters) ([]*domain.AdsetRow, error)

	// GetAdsetDetails obtém o registro de detalhes bruto de um conjunto
	GetAdsetDetails(adsetID string) (domain.RawRecord, error)

	// GetAdsetHistory obtém o log de alterações de um objeto (conjunto ou campanha)
	GetAdsetHistory(objectID string) ([]domain.HistoryEntry, error)

	// GetAdsetTimeInsights obtém a série de gastos diários de um conjunto
	GetAdsetTimeInsights(adsetID string, since, until time.Time) (*domain.TimeInsights, error)

	// UpdateAdsetStatus muda o estado de veiculação de um conjunto
	UpdateAdsetStatus(adsetID, status string) error

	// UpdateAdsetBudgetDates aplica uma mutação de orçamento/datas em um conjunto
	UpdateAdsetBudgetDates(adsetID string, payload domain.UpdateBudgetDatesPayload) error
}
