package metaclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-extractor/internal/domain"
)

// TokenResponse representa a resposta da API do Meta ao trocar um token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ExchangeToken troca o token atual por um novo token de longa duração.
// Só o status 500 é repetido; qualquer outra falha encerra na hora.
func (c *MetaClient) ExchangeToken(ctx context.Context, clientID, clientSecret, token string) (string, error) {
	params := url.Values{}
	params.Add("grant_type", "fb_exchange_token")
	params.Add("client_id", clientID)
	params.Add("client_secret", clientSecret)
	params.Add("fb_exchange_token", token)

	maxAttempts := c.Cfg.Retry.TokenRefreshMaxAttempts
	var lastBody []byte

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		status, body, err := c.get(ctx, c.tokenEndpoint(), params)
		if err != nil {
			return "", domain.NewRefreshError(domain.CodeRefreshRejected, "erro na requisição de troca de token", err)
		}

		if status == http.StatusInternalServerError {
			lastBody = body
			logrus.WithFields(logrus.Fields{
				"attempt":      attempt,
				"max_attempts": maxAttempts,
			}).Warnf("Erro de servidor ao renovar token, aguardando %ds", c.Cfg.Retry.TokenRefreshRetryDelaySeconds)

			if attempt == maxAttempts {
				break
			}
			if err := c.wait(ctx, c.Cfg.Retry.TokenRefreshRetryDelaySeconds); err != nil {
				return "", domain.NewRefreshError(domain.CodeRefreshRejected, "espera interrompida", err)
			}
			continue
		}

		if status != http.StatusOK {
			logrus.Errorf("Erro obtendo token longa duração. Status: %d, Resposta: %s", status, string(body))
			return "", domain.NewRefreshError(domain.CodeRefreshRejected, httpDetails(status, body), nil)
		}

		var tokenResp TokenResponse
		if err := json.Unmarshal(body, &tokenResp); err != nil {
			return "", domain.NewRefreshError(domain.CodeRefreshRejected, "erro ao decodificar resposta", err)
		}
		if tokenResp.AccessToken == "" {
			return "", domain.NewRefreshError(domain.CodeRefreshRejected, "token retornado pela API é vazio", nil)
		}

		return tokenResp.AccessToken, nil
	}

	return "", domain.NewRefreshError(domain.CodeRefreshExhausted, httpDetails(http.StatusInternalServerError, lastBody), nil)
}
