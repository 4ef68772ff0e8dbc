package metaclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	metadomain "github.com/vfg2006/meta-ads-extractor/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-extractor/internal/config"
	"github.com/vfg2006/meta-ads-extractor/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	ExchangeToken(ctx context.Context, clientID, clientSecret, token string) (string, error)
	GetAdsPage(ctx context.Context, accountID, pageURL string, params url.Values) (*metadomain.AdsPage, error)
	AdsEndpoint(accountID string) string
}

type MetaClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
	Sleep      utils.SleepFunc
}

func NewClient(cfg *config.Config) *MetaClient {
	return &MetaClient{
		Cfg:        cfg,
		HTTPClient: &http.Client{Timeout: utils.Seconds(cfg.Meta.HTTPTimeoutSeconds)},
		Sleep:      utils.Sleep,
	}
}

// AdsEndpoint monta a URL base da listagem de anúncios da conta
func (c *MetaClient) AdsEndpoint(accountID string) string {
	return fmt.Sprintf("%s/%s/%s/ads", strings.TrimRight(c.Cfg.Meta.BaseURL, "/"), c.Cfg.Meta.AdsVersion, accountID)
}

func (c *MetaClient) tokenEndpoint() string {
	return fmt.Sprintf("%s/%s/oauth/access_token", strings.TrimRight(c.Cfg.Meta.BaseURL, "/"), c.Cfg.Meta.TokenVersion)
}

// get faz um GET e devolve status e corpo. Parâmetros vazios mantêm a URL intacta.
func (c *MetaClient) get(ctx context.Context, rawURL string, params url.Values) (int, []byte, error) {
	requestURL := rawURL
	if len(params) > 0 {
		requestURL = rawURL + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return 0, nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	return resp.StatusCode, body, nil
}

func (c *MetaClient) wait(ctx context.Context, seconds int) error {
	sleep := c.Sleep
	if sleep == nil {
		sleep = utils.Sleep
	}
	return sleep(ctx, time.Duration(seconds)*time.Second)
}

// ParseErrorResponse tenta parsear um erro da API do Meta
func ParseErrorResponse(body []byte) (*metadomain.ErrorResponse, error) {
	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil {
		return nil, err
	}
	return &errorResp, nil
}
