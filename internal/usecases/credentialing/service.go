package credentialing

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/meta-ads-extractor/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-extractor/infrastructure/repository"
	"github.com/vfg2006/meta-ads-extractor/internal/config"
	"github.com/vfg2006/meta-ads-extractor/internal/domain"
	"github.com/vfg2006/meta-ads-extractor/pkg/log"
	"github.com/vfg2006/meta-ads-extractor/pkg/utils"
)

type CredentialService interface {
	ObtainValidCredential(ctx context.Context, now time.Time, forceRefresh bool, maxAgeDays int) (*domain.Credential, error)
}

type Service struct {
	credentialRepository repository.CredentialRepository
	metaClient           metaclient.Client
	secretStorage        config.SecretStorage
	cfg                  *config.Config
}

// NewService cria o serviço de credenciais. secretStorage pode ser nil
// quando o espelhamento do token não está configurado.
func NewService(
	credentialRepository repository.CredentialRepository,
	metaClient metaclient.Client,
	secretStorage config.SecretStorage,
	cfg *config.Config,
) *Service {
	return &Service{
		credentialRepository: credentialRepository,
		metaClient:           metaClient,
		secretStorage:        secretStorage,
		cfg:                  cfg,
	}
}

// ObtainValidCredential devolve uma credencial utilizável nesta execução,
// renovando e persistindo o token quando Decide pede. Uma falha na
// renovação nunca cai de volta para o token antigo.
func (s *Service) ObtainValidCredential(ctx context.Context, now time.Time, forceRefresh bool, maxAgeDays int) (*domain.Credential, error) {
	logger := log.ForContext(ctx)

	credential, err := s.credentialRepository.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao carregar credencial")
	}
	if err := credential.Validate(); err != nil {
		return nil, err
	}

	decision := Decide(credential, now, forceRefresh, maxAgeDays)
	if !decision.Refresh {
		logger.Info("Token ainda válido, renovação não necessária")
		return credential, nil
	}

	logger.WithField("reason", decision.Reason).Info("Renovando token de acesso")

	token, err := s.metaClient.ExchangeToken(ctx, credential.ClientID, credential.ClientSecret, credential.AccessToken)
	if err != nil {
		logger.WithError(err).Error("Falha ao renovar token")
		return nil, errors.Wrap(err, "falha ao renovar token")
	}

	refreshed := credential.Refreshed(token, now)
	if err := s.credentialRepository.Save(ctx, refreshed); err != nil {
		return nil, domain.NewRefreshError(domain.CodeRefreshPersist, "token renovado não pôde ser salvo", err)
	}

	logger.WithFields(log.Fields{
		"refreshed_at": refreshed.RefreshedAt,
		"token":        utils.MaskToken(token),
	}).Info("Token renovado com sucesso")

	s.mirrorToken(ctx, token)

	return refreshed, nil
}

func (s *Service) mirrorToken(ctx context.Context, token string) {
	if s.secretStorage == nil {
		return
	}

	err := s.secretStorage.AddOrUpdateSecret(ctx, s.cfg.Render.ServiceID, s.cfg.Render.SecretName, token)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Não foi possível atualizar o token no Render")
		return
	}

	log.ForContext(ctx).WithField("secret_name", s.cfg.Render.SecretName).Info("Token atualizado no Render")
}
