package metaclient

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const tokenRenewedMessage = "token expirado e renovado, por favor tente novamente"

var httpClient = &http.Client{
	Timeout: 30 * time.Second,
}

// getJSON executa um GET autenticado na Graph API com uma única repetição
// caso o token expire e seja renovado no meio da requisição
func (c *MetaClient) getJSON(path string, params url.Values) ([]byte, error) {
	body, err := c.doGet(path, params)
	if err != nil && err.Error() == tokenRenewedMessage {
		return c.doGet(path, params)
	}

	return body, err
}

func (c *MetaClient) doGet(path string, params url.Values) ([]byte, error) {
	// Garantir que o token seja válido antes de fazer a requisição
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	params.Set("access_token", c.Cfg.Meta.AccessToken)

	requestURL := fmt.Sprintf("%s/%s?%s", c.Cfg.Meta.URL, path, params.Encode())

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	return c.HandleResponse(resp)
}

// postForm executa um POST autenticado na Graph API (mutação de objetos)
func (c *MetaClient) postForm(path string, form url.Values) ([]byte, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	form.Set("access_token", c.Cfg.Meta.AccessToken)

	requestURL := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, path)

	resp, err := httpClient.PostForm(requestURL, form)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição de mutação")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil && strings.Contains(err.Error(), tokenRenewedMessage) {
		form.Set("access_token", c.Cfg.Meta.AccessToken)

		resp, retryErr := httpClient.PostForm(requestURL, form)
		if retryErr != nil {
			return nil, retryErr
		}
		defer resp.Body.Close()
		return c.HandleResponse(resp)
	}

	return body, err
}
