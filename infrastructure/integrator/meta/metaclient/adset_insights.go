package metaclient

import (
	"fmt"
	"net/url"
	"time"

	metadomain "github.com/alikitto/ad-dash/infrastructure/integrator/meta/domain"
	"github.com/alikitto/ad-dash/internal/domain"
	"github.com/sirupsen/logrus"
)

type ResponseAdsetInsights struct {
	Data   []metadomain.AdsetInsight `json:"data"`
	Paging metadomain.Paging         `json:"paging"`
}

// GetAdsetInsightsByAccountID retorna as linhas de resumo dos conjuntos de uma
// conta, agregadas no período dos filtros
func (c *MetaClient) GetAdsetInsightsByAccountID(accountID string, filters *domain.AdsetFilters) ([]metadomain.AdsetInsight, error) {
	params := url.Values{}
	params.Add("level", "adset")
	params.Add("fields", "account_id,account_name,adset_id,adset_name,campaign_id,campaign_name,objective,spend,impressions,frequency,ctr,inline_link_clicks,actions")
	params.Add("limit", "500")

	if filters != nil && filters.StartDate != nil && filters.EndDate != nil {
		timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}",
			filters.StartDate.Format(time.DateOnly),
			filters.EndDate.Format(time.DateOnly),
		)
		params.Add("time_range", timeRange)
	} else {
		params.Add("date_preset", "maximum")
	}

	body, err := c.getJSON(fmt.Sprintf("act_%s/insights", accountID), params)
	if err != nil {
		return nil, err
	}

	var response ResponseAdsetInsights
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}
