package repository

import (
	"context"

	"github.com/vfg2006/meta-ads-extractor/internal/domain"
)

// CredentialRepository guarda uma única credencial da Meta
type CredentialRepository interface {
	Load(ctx context.Context) (*domain.Credential, error)
	Save(ctx context.Context, credential *domain.Credential) error
}
