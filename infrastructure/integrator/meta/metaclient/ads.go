package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-ads-extractor/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-extractor/internal/domain"
)

// GetAdsPage busca uma página de anúncios. Na primeira página params traz
// fields, limit, access_token e filtering; nas seguintes pageURL é o
// paging.next devolvido pela API e params vem vazio.
// Um 400 de limite temporário é repetido com os mesmos parâmetros.
func (c *MetaClient) GetAdsPage(ctx context.Context, accountID, pageURL string, params url.Values) (*metadomain.AdsPage, error) {
	maxAttempts := c.Cfg.Retry.FetchMaxAttempts
	var lastBody []byte

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		status, body, err := c.get(ctx, pageURL, params)
		if err != nil {
			return nil, domain.NewFetchError(domain.CodeFetchTransport, accountID, "erro na requisição", err)
		}

		if status == http.StatusBadRequest && isTransient(body) {
			lastBody = body
			logrus.WithFields(logrus.Fields{
				"account_id":   accountID,
				"attempt":      attempt,
				"max_attempts": maxAttempts,
			}).Warnf("Limite da API atingido, aguardando %ds", c.Cfg.Retry.FetchRetryDelaySeconds)

			if attempt == maxAttempts {
				break
			}
			if err := c.wait(ctx, c.Cfg.Retry.FetchRetryDelaySeconds); err != nil {
				return nil, domain.NewFetchError(domain.CodeFetchTransport, accountID, "espera interrompida", err)
			}
			continue
		}

		if status < 200 || status > 299 {
			logrus.WithField("account_id", accountID).Errorf("Erro ao carregar anúncios da conta: %s", string(body))
			if errorResp, parseErr := ParseErrorResponse(body); parseErr == nil && errorResp.IsTokenExpired() {
				logrus.WithField("account_id", accountID).Warn("Token rejeitado pela API, execute novamente com FORCE_REFRESH=true")
			}
			return nil, domain.NewFetchError(domain.CodeFetchRejected, accountID, httpDetails(status, body), nil)
		}

		var page metadomain.AdsPage
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, domain.NewFetchError(domain.CodeFetchDecode, accountID, "erro ao decodificar página", err)
		}
		return &page, nil
	}

	return nil, domain.NewRetriesExhaustedError(accountID, maxAttempts, string(lastBody))
}

// isTransient reconhece os erros de limite da Meta. Corpos que não são JSON
// ainda contam quando trazem o marcador #80004.
func isTransient(body []byte) bool {
	errorResp, err := ParseErrorResponse(body)
	if err != nil {
		return strings.Contains(string(body), "#80004")
	}
	return errorResp.IsTransient()
}

func httpDetails(status int, body []byte) string {
	return fmt.Sprintf("status %d: %s", status, string(body))
}
