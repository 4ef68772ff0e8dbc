package meta

import (
	"context"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-extractor/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-extractor/internal/config"
	"github.com/vfg2006/meta-ads-extractor/internal/domain"
)

// AdsQuery são os parâmetros da primeira página de cada conta
type AdsQuery struct {
	Fields      string
	Filtering   string
	AccessToken string
}

type AdsIntegrator interface {
	FetchAccountAds(ctx context.Context, accountID string, query AdsQuery) ([]domain.RawAd, error)
}

type pageState int

const (
	firstPage pageState = iota
	nextPage
	done
)

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// FetchAccountAds percorre todas as páginas da conta seguindo paging.next.
// Qualquer erro de página aborta a conta; nada parcial é devolvido.
func (s *MetaIntegrator) FetchAccountAds(ctx context.Context, accountID string, query AdsQuery) ([]domain.RawAd, error) {
	ads := make([]domain.RawAd, 0)

	state := firstPage
	pageURL := s.Client.AdsEndpoint(accountID)
	pages := 0

	for state != done {
		var params url.Values
		if state == firstPage {
			params = s.firstPageParams(query)
		}

		page, err := s.Client.GetAdsPage(ctx, accountID, pageURL, params)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"page":       pages + 1,
				"error":      err.Error(),
			}).Error("ads: failed to get ads page from API")
			return nil, err
		}
		pages++

		for _, payload := range page.Data {
			ad := domain.RawAd{AccountID: accountID, Payload: payload}
			ads = append(ads, ad)
			logrus.WithField("account_id", accountID).Infof("Anúncio: %s", ad.ID())
		}

		if page.HasNext() {
			state = nextPage
			pageURL = page.Paging.Next
		} else {
			state = done
		}
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"pages":      pages,
		"ads":        len(ads),
	}).Debug("ads: account drained")

	return ads, nil
}

func (s *MetaIntegrator) firstPageParams(query AdsQuery) url.Values {
	params := url.Values{}
	params.Set("fields", query.Fields)
	params.Set("limit", strconv.Itoa(s.cfg.Meta.PageLimit))
	params.Set("access_token", query.AccessToken)
	if query.Filtering != "" {
		params.Set("filtering", query.Filtering)
	}
	return params
}
