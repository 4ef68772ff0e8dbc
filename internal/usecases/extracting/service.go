package extracting

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/meta-ads-extractor/infrastructure/integrator/meta"
	"github.com/vfg2006/meta-ads-extractor/infrastructure/repository"
	"github.com/vfg2006/meta-ads-extractor/internal/config"
	"github.com/vfg2006/meta-ads-extractor/internal/domain"
	"github.com/vfg2006/meta-ads-extractor/internal/usecases/credentialing"
	"github.com/vfg2006/meta-ads-extractor/internal/usecases/fetching"
	"github.com/vfg2006/meta-ads-extractor/pkg/log"
)

// Summary resume uma execução concluída
type Summary struct {
	RunID      string
	Accounts   int
	Ads        int
	OutputPath string
	Duration   time.Duration
}

type ExtractionService interface {
	Run(ctx context.Context) (*Summary, error)
}

type Service struct {
	cfg               *config.Config
	credentialService credentialing.CredentialService
	fetchService      fetching.FetchService
	adRowWriter       repository.AdRowWriter
	now               func() time.Time

	// FORCE_REFRESH vale até a primeira renovação bem sucedida do processo
	forcedRefreshDone atomic.Bool
}

func NewService(
	cfg *config.Config,
	credentialService credentialing.CredentialService,
	fetchService fetching.FetchService,
	adRowWriter repository.AdRowWriter,
) *Service {
	return &Service{
		cfg:               cfg,
		credentialService: credentialService,
		fetchService:      fetchService,
		adRowWriter:       adRowWriter,
		now:               time.Now,
	}
}

// Run executa credencial, paginação, normalização e escrita, nessa ordem.
// O arquivo de saída só é gravado depois que todas as contas terminaram.
func (s *Service) Run(ctx context.Context) (*Summary, error) {
	start := s.now()
	logger := log.ForContext(ctx)

	forceRefresh := s.cfg.Credential.ForceRefresh && !s.forcedRefreshDone.Load()

	credential, err := s.credentialService.ObtainValidCredential(ctx, start, forceRefresh, s.cfg.Credential.MaxAgeDays)
	if err != nil {
		return nil, err
	}
	if forceRefresh {
		s.forcedRefreshDone.Store(true)
	}

	// O corte de __LAST_N_DAYS__ acompanha o início de cada execução
	filtering, err := config.BuildFiltering(s.cfg.Extraction.FilteringRaw, s.cfg.Extraction.DaysBack, start)
	if err != nil {
		return nil, err
	}

	query := meta.AdsQuery{
		Fields:      s.cfg.Extraction.Fields,
		Filtering:   filtering,
		AccessToken: credential.AccessToken,
	}

	ads, err := s.fetchService.FetchAll(ctx, s.cfg.Extraction.AccountIDs, query)
	if err != nil {
		return nil, err
	}

	rows := domain.NormalizeAds(ads)
	if err := s.adRowWriter.WriteRows(ctx, rows); err != nil {
		return nil, errors.Wrapf(err, "falha ao gravar %s", s.cfg.Extraction.OutputPath)
	}

	summary := &Summary{
		RunID:      log.GetRunID(ctx),
		Accounts:   len(s.cfg.Extraction.AccountIDs),
		Ads:        len(rows),
		OutputPath: s.cfg.Extraction.OutputPath,
		Duration:   s.now().Sub(start),
	}

	logger.WithFields(log.Fields{
		"accounts": summary.Accounts,
		"ads":      summary.Ads,
		"path":     summary.OutputPath,
		"duration": summary.Duration.String(),
	}).Info("Extração concluída")

	return summary, nil
}
