package credentialing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metamocks "github.com/vfg2006/meta-ads-extractor/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/meta-ads-extractor/infrastructure/repository/mocks"
	"github.com/vfg2006/meta-ads-extractor/internal/config"
	configmocks "github.com/vfg2006/meta-ads-extractor/internal/config/mocks"
	"github.com/vfg2006/meta-ads-extractor/internal/domain"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local)

func credentialAged(d time.Duration) *domain.Credential {
	return &domain.Credential{
		AccessToken:  "EAAantigo-0123456789",
		ClientID:     "app-1",
		ClientSecret: "secret-1",
		RefreshedAt:  testNow.Add(-d).Format(domain.RefreshedAtLayout),
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Render: config.Render{APIKey: "rnd", ServiceID: "srv-1", SecretName: "meta_access_token"},
	}
}

func TestObtainValidCredential(t *testing.T) {
	tests := []struct {
		name          string
		force         bool
		setup         func(repo *mocks.MockCredentialRepository, client *metamocks.MockClient, secrets *configmocks.MockSecretStorage)
		expectedToken string
		expectedErr   error
		expectedCode  string
	}{
		{
			name: "Token com 41 dias é renovado uma vez",
			setup: func(repo *mocks.MockCredentialRepository, client *metamocks.MockClient, secrets *configmocks.MockSecretStorage) {
				repo.EXPECT().Load(gomock.Any()).Return(credentialAged(41*24*time.Hour), nil)
				client.EXPECT().ExchangeToken(gomock.Any(), "app-1", "secret-1", "EAAantigo-0123456789").Return("EAAnovo-0123456789", nil).Times(1)
				repo.EXPECT().Save(gomock.Any(), &domain.Credential{
					AccessToken:  "EAAnovo-0123456789",
					ClientID:     "app-1",
					ClientSecret: "secret-1",
					RefreshedAt:  "2024-03-01 12:00:00",
				}).Return(nil).Times(1)
				secrets.EXPECT().AddOrUpdateSecret(gomock.Any(), "srv-1", "meta_access_token", "EAAnovo-0123456789").Return(nil)
			},
			expectedToken: "EAAnovo-0123456789",
		},
		{
			name: "Token com 10 dias não é renovado",
			setup: func(repo *mocks.MockCredentialRepository, client *metamocks.MockClient, secrets *configmocks.MockSecretStorage) {
				repo.EXPECT().Load(gomock.Any()).Return(credentialAged(10*24*time.Hour), nil)
			},
			expectedToken: "EAAantigo-0123456789",
		},
		{
			name:  "Force renova token recente",
			force: true,
			setup: func(repo *mocks.MockCredentialRepository, client *metamocks.MockClient, secrets *configmocks.MockSecretStorage) {
				repo.EXPECT().Load(gomock.Any()).Return(credentialAged(time.Hour), nil)
				client.EXPECT().ExchangeToken(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("EAAnovo-0123456789", nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				secrets.EXPECT().AddOrUpdateSecret(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedToken: "EAAnovo-0123456789",
		},
		{
			name: "Falha no espelhamento apenas avisa",
			setup: func(repo *mocks.MockCredentialRepository, client *metamocks.MockClient, secrets *configmocks.MockSecretStorage) {
				cred := credentialAged(0)
				cred.RefreshedAt = ""
				repo.EXPECT().Load(gomock.Any()).Return(cred, nil)
				client.EXPECT().ExchangeToken(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("EAAnovo-0123456789", nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				secrets.EXPECT().AddOrUpdateSecret(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("unauthorized"))
			},
			expectedToken: "EAAnovo-0123456789",
		},
		{
			name: "Erro na troca não usa o token antigo",
			setup: func(repo *mocks.MockCredentialRepository, client *metamocks.MockClient, secrets *configmocks.MockSecretStorage) {
				repo.EXPECT().Load(gomock.Any()).Return(credentialAged(50*24*time.Hour), nil)
				client.EXPECT().ExchangeToken(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", domain.NewRefreshError(domain.CodeRefreshExhausted, "status 500", nil))
			},
			expectedErr:  domain.ErrRefresh,
			expectedCode: domain.CodeRefreshExhausted,
		},
		{
			name: "Erro ao salvar o token novo",
			setup: func(repo *mocks.MockCredentialRepository, client *metamocks.MockClient, secrets *configmocks.MockSecretStorage) {
				repo.EXPECT().Load(gomock.Any()).Return(credentialAged(50*24*time.Hour), nil)
				client.EXPECT().ExchangeToken(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("EAAnovo-0123456789", nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("read-only file system"))
			},
			expectedErr:  domain.ErrRefresh,
			expectedCode: domain.CodeRefreshPersist,
		},
		{
			name: "Credencial ausente falha sem chamada de rede",
			setup: func(repo *mocks.MockCredentialRepository, client *metamocks.MockClient, secrets *configmocks.MockSecretStorage) {
				repo.EXPECT().Load(gomock.Any()).Return(nil, domain.NewConfigurationError(domain.CodeCredentialMissing, "arquivo de token não encontrado"))
			},
			expectedErr:  domain.ErrConfiguration,
			expectedCode: domain.CodeCredentialMissing,
		},
		{
			name: "Credencial incompleta falha sem chamada de rede",
			setup: func(repo *mocks.MockCredentialRepository, client *metamocks.MockClient, secrets *configmocks.MockSecretStorage) {
				cred := credentialAged(50 * 24 * time.Hour)
				cred.ClientSecret = " "
				repo.EXPECT().Load(gomock.Any()).Return(cred, nil)
			},
			expectedErr:  domain.ErrConfiguration,
			expectedCode: domain.CodeCredentialIncomplete,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockCredentialRepository(ctrl)
			client := metamocks.NewMockClient(ctrl)
			secrets := configmocks.NewMockSecretStorage(ctrl)
			tt.setup(repo, client, secrets)

			service := NewService(repo, client, secrets, testConfig())
			credential, err := service.ObtainValidCredential(context.Background(), testNow, tt.force, 40)

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				var extErr *domain.ExtractionError
				require.ErrorAs(t, err, &extErr)
				assert.Equal(t, tt.expectedCode, extErr.Code)
				assert.Nil(t, credential)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedToken, credential.AccessToken)
		})
	}
}

func TestObtainValidCredentialWithoutSecretStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCredentialRepository(ctrl)
	client := metamocks.NewMockClient(ctrl)

	repo.EXPECT().Load(gomock.Any()).Return(credentialAged(60*24*time.Hour), nil)
	client.EXPECT().ExchangeToken(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("EAAnovo-0123456789", nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	service := NewService(repo, client, nil, testConfig())
	credential, err := service.ObtainValidCredential(context.Background(), testNow, false, 40)

	require.NoError(t, err)
	assert.Equal(t, "2024-03-01 12:00:00", credential.RefreshedAt)
}
