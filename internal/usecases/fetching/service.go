package fetching

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/meta-ads-extractor/infrastructure/integrator/meta"
	"github.com/vfg2006/meta-ads-extractor/internal/config"
	"github.com/vfg2006/meta-ads-extractor/internal/domain"
	"github.com/vfg2006/meta-ads-extractor/pkg/log"
	"github.com/vfg2006/meta-ads-extractor/pkg/utils"
)

var banner = strings.Repeat("━", 40)

type FetchService interface {
	FetchAll(ctx context.Context, accountIDs []string, query meta.AdsQuery) ([]domain.RawAd, error)
}

type Service struct {
	integrator meta.AdsIntegrator
	cfg        *config.Config
	Sleep      utils.SleepFunc
}

func NewService(integrator meta.AdsIntegrator, cfg *config.Config) *Service {
	return &Service{
		integrator: integrator,
		cfg:        cfg,
		Sleep:      utils.Sleep,
	}
}

// FetchAll busca os anúncios de cada conta na ordem recebida e concatena o
// resultado. A primeira conta com erro interrompe toda a extração.
func (s *Service) FetchAll(ctx context.Context, accountIDs []string, query meta.AdsQuery) ([]domain.RawAd, error) {
	logger := log.ForContext(ctx)
	all := make([]domain.RawAd, 0)

	for _, accountID := range accountIDs {
		logger.Info(banner)
		logger.Infof("Conta: %s", accountID)
		logger.Infof("Usando access token iniciado por: %s", utils.MaskToken(query.AccessToken))
		logger.Info(banner)

		if err := s.Sleep(ctx, utils.Seconds(s.cfg.Retry.AccountPacingSeconds)); err != nil {
			return nil, domain.NewFetchError(domain.CodeFetchTransport, accountID, "espera interrompida", err)
		}

		ads, err := s.integrator.FetchAccountAds(ctx, accountID, query)
		if err != nil {
			return nil, errors.Wrapf(err, "falha ao buscar anúncios da conta %s", accountID)
		}

		logger.WithFields(log.Fields{
			"account_id": accountID,
			"ads":        len(ads),
		}).Info("Conta processada")

		all = append(all, ads...)
	}

	return all, nil
}
