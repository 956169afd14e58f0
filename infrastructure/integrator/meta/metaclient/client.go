package metaclient

import (
	"net/http"
	"time"

	metadomain "github.com/alikitto/ad-dash/infrastructure/integrator/meta/domain"
	"github.com/alikitto/ad-dash/internal/config"
	"github.com/alikitto/ad-dash/internal/domain"
)

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks

type Client interface {
	GetAdsetInsightsByAccountID(accountID string, filters *domain.AdsetFilters) ([]metadomain.AdsetInsight, error)
	GetAdsetStatusesByAccountID(accountID string) (map[string]string, error)
	GetAdsetByID(adsetID string) (domain.RawRecord, error)
	GetActivitiesByObjectID(objectID string) ([]metadomain.Activity, error)
	GetAdsetDailyInsights(adsetID string, since, until time.Time) ([]metadomain.DailyInsight, string, string, error)
	UpdateAdset(adsetID string, fields map[string]string) error
	RefreshToken() error
	EnsureValidToken() error
	HandleResponse(resp *http.Response) ([]byte, error)
}

type MetaClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	client := &MetaClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
	}
	return client
}

// RefreshToken obtém um novo token de longa duração
func (c *MetaClient) RefreshToken() error {
	return c.TokenManager.RefreshToken()
}

// EnsureValidToken verifica se o token atual é válido e tenta renová-lo se necessário
func (c *MetaClient) EnsureValidToken() error {
	return c.TokenManager.EnsureValidToken()
}

// HandleResponse manipula a resposta HTTP e verifica erros de token expirado
func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	return c.TokenManager.HandleResponse(resp)
}
