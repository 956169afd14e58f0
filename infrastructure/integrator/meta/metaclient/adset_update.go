package metaclient

import (
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
)

// UpdateAdset aplica uma mutação de campos sobre um conjunto (status,
// orçamento, datas). Os valores vão como vieram do chamador: a API espera
// orçamentos em unidades menores inteiras e datas em ISO-8601.
func (c *MetaClient) UpdateAdset(adsetID string, fields map[string]string) error {
	if len(fields) == 0 {
		return fmt.Errorf("nenhum campo para atualizar no conjunto %s", adsetID)
	}

	form := url.Values{}
	for key, value := range fields {
		form.Set(key, value)
	}

	body, err := c.postForm(adsetID, form)
	if err != nil {
		return err
	}

	var result struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return err
	}

	if !result.Success {
		return fmt.Errorf("a API da Meta não confirmou a atualização do conjunto %s", adsetID)
	}

	return nil
}
