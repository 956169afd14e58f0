package metaclient

import (
	"net/url"

	"github.com/alikitto/ad-dash/internal/domain"
	"github.com/sirupsen/logrus"
)

// Campos pedidos no registro de detalhes de um conjunto. O resultado é
// decodificado como mapa solto: as chaves variam entre versões da API e a
// resolução de orçamento/cronograma trabalha sobre cadeias de candidatos, não
// sobre um struct fixo.
const adsetDetailFields = "id,name,status,effective_status,campaign_id,daily_budget,lifetime_budget,budget_remaining,bid_strategy,optimization_goal,start_time,end_time,created_time,updated_time,targeting"

// GetAdsetByID retorna o registro de detalhes bruto de um conjunto
func (c *MetaClient) GetAdsetByID(adsetID string) (domain.RawRecord, error) {
	params := url.Values{}
	params.Add("fields", adsetDetailFields)

	body, err := c.getJSON(adsetID, params)
	if err != nil {
		return nil, err
	}

	var record domain.RawRecord
	if err := json.Unmarshal(body, &record); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return record, nil
}
