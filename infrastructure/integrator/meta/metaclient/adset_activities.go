package metaclient

import (
	"net/url"

	metadomain "github.com/alikitto/ad-dash/infrastructure/integrator/meta/domain"
	"github.com/sirupsen/logrus"
)

// GetActivitiesByObjectID retorna o log de alterações de um objeto de anúncio
// (conjunto ou campanha). O formato do corpo varia conforme a versão da API:
// lista direta ou envelope com "data"/"items"; os três formatos são aceitos.
func (c *MetaClient) GetActivitiesByObjectID(objectID string) ([]metadomain.Activity, error) {
	params := url.Values{}
	params.Add("fields", "event_time,event_type,translated_event_type,actor_name,extra_data,object_id,object_name")
	params.Add("limit", "200")

	body, err := c.getJSON(objectID+"/activities", params)
	if err != nil {
		return nil, err
	}

	activities, err := decodeActivities(body)
	if err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return activities, nil
}

func decodeActivities(body []byte) ([]metadomain.Activity, error) {
	var direct []metadomain.Activity
	if err := json.Unmarshal(body, &direct); err == nil {
		return direct, nil
	}

	var wrapped struct {
		Data  []metadomain.Activity `json:"data"`
		Items []metadomain.Activity `json:"items"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, err
	}

	if wrapped.Data != nil {
		return wrapped.Data, nil
	}

	return wrapped.Items, nil
}
