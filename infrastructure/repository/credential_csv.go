package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-extractor/internal/domain"
	"github.com/vfg2006/meta-ads-extractor/pkg/utils"
)

// O token dá acesso às contas de anúncio, só o dono lê o arquivo
const credentialFileMode = 0o600

var credentialHeader = []string{"access_token", "client_id", "client_secret", "refreshed_at"}

type credentialCSVRepository struct {
	path string
}

func NewCredentialCSVRepository(path string) CredentialRepository {
	return &credentialCSVRepository{path: path}
}

// Load lê a primeira linha de dados. As colunas são localizadas pelo cabeçalho.
func (r *credentialCSVRepository) Load(_ context.Context) (*domain.Credential, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.NewConfigurationError(domain.CodeCredentialMissing, fmt.Sprintf("arquivo de token não encontrado: %s", r.path))
		}
		return nil, domain.NewConfigurationError(domain.CodeCredentialMissing, fmt.Sprintf("erro ao abrir %s: %v", r.path, err))
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.NewConfigurationError(domain.CodeCredentialEmpty, fmt.Sprintf("arquivo de token vazio: %s", r.path))
		}
		return nil, domain.NewConfigurationError(domain.CodeCredentialEmpty, fmt.Sprintf("erro ao ler cabeçalho de %s: %v", r.path, err))
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}

	record, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.NewConfigurationError(domain.CodeCredentialEmpty, fmt.Sprintf("arquivo de token sem linha de dados: %s", r.path))
		}
		return nil, domain.NewConfigurationError(domain.CodeCredentialEmpty, fmt.Sprintf("erro ao ler %s: %v", r.path, err))
	}

	value := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	credential := &domain.Credential{
		AccessToken:  value("access_token"),
		ClientID:     value("client_id"),
		ClientSecret: value("client_secret"),
		RefreshedAt:  value("refreshed_at"),
	}

	if err := credential.Validate(); err != nil {
		return nil, err
	}

	logrus.WithField("path", r.path).Debug("Credencial carregada do CSV")

	return credential, nil
}

// Save substitui o arquivo inteiro por cabeçalho e uma linha
func (r *credentialCSVRepository) Save(_ context.Context, credential *domain.Credential) error {
	return utils.WriteFileAtomic(r.path, credentialFileMode, func(w io.Writer) error {
		writer := csv.NewWriter(w)
		if err := writer.Write(credentialHeader); err != nil {
			return err
		}
		if err := writer.Write([]string{
			credential.AccessToken,
			credential.ClientID,
			credential.ClientSecret,
			credential.RefreshedAt,
		}); err != nil {
			return err
		}
		writer.Flush()
		return writer.Error()
	})
}
