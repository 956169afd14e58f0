package metaclient

import (
	"fmt"
	"net/url"
	"time"

	metadomain "github.com/alikitto/ad-dash/infrastructure/integrator/meta/domain"
	"github.com/sirupsen/logrus"
)

type ResponseAdsetDailyInsights struct {
	Data   []metadomain.DailyInsight `json:"data"`
	Paging metadomain.Paging         `json:"paging"`
}

// GetAdsetDailyInsights retorna a série de gasto diário de um conjunto no
// intervalo pedido, junto com o date_range efetivo reportado pela API
func (c *MetaClient) GetAdsetDailyInsights(adsetID string, since, until time.Time) ([]metadomain.DailyInsight, string, string, error) {
	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}",
		since.Format(time.DateOnly),
		until.Format(time.DateOnly),
	)

	params := url.Values{}
	params.Add("fields", "spend")
	params.Add("time_increment", "1")
	params.Add("time_range", timeRange)

	body, err := c.getJSON(adsetID+"/insights", params)
	if err != nil {
		return nil, "", "", err
	}

	var response ResponseAdsetDailyInsights
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, "", "", err
	}

	if len(response.Data) == 0 {
		return nil, "", "", nil
	}

	first := response.Data[0]
	last := response.Data[len(response.Data)-1]

	return response.Data, first.DateStart, last.DateStop, nil
}
