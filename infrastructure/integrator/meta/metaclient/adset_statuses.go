package metaclient

import (
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
)

type adsetStatusRecord struct {
	ID              string `json:"id"`
	Status          string `json:"status"`
	EffectiveStatus string `json:"effective_status"`
}

type ResponseAdsetStatuses struct {
	Data []adsetStatusRecord `json:"data"`
}

// GetAdsetStatusesByAccountID retorna o estado de veiculação de cada conjunto
// da conta, indexado pelo id. O endpoint de insights não expõe status; o
// botão de pausar/ativar da listagem depende desta consulta.
func (c *MetaClient) GetAdsetStatusesByAccountID(accountID string) (map[string]string, error) {
	params := url.Values{}
	params.Add("fields", "id,status,effective_status")
	params.Add("limit", "500")

	body, err := c.getJSON(fmt.Sprintf("act_%s/adsets", accountID), params)
	if err != nil {
		return nil, err
	}

	var response ResponseAdsetStatuses
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	statuses := make(map[string]string, len(response.Data))
	for _, record := range response.Data {
		// effective_status reflete pausas herdadas da campanha; status é o
		// valor configurado no próprio conjunto
		status := record.EffectiveStatus
		if status == "" {
			status = record.Status
		}
		statuses[record.ID] = status
	}

	return statuses, nil
}
