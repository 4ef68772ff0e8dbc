package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-extractor/infrastructure/database/postgres"
	"github.com/vfg2006/meta-ads-extractor/internal/domain"
)

const credentialsTable = "meta_credentials"

type credentialPostgresRepository struct {
	conn postgres.Conn
}

func NewCredentialPostgresRepository(conn postgres.Conn) CredentialRepository {
	return &credentialPostgresRepository{
		conn: conn,
	}
}

// Load devolve a linha mais recente da tabela
func (r *credentialPostgresRepository) Load(ctx context.Context) (*domain.Credential, error) {
	query, args, err := squirrel.
		Select("access_token", "client_id", "client_secret", "refreshed_at").
		From(credentialsTable).
		OrderBy("id DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var (
		credential  domain.Credential
		refreshedAt sql.NullTime
	)

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&credential.AccessToken,
		&credential.ClientID,
		&credential.ClientSecret,
		&refreshedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewConfigurationError(domain.CodeCredentialEmpty, fmt.Sprintf("tabela %s sem credencial", credentialsTable))
		}
		return nil, domain.NewConfigurationError(domain.CodeCredentialMissing, fmt.Sprintf("erro ao ler %s: %v", credentialsTable, err))
	}

	if refreshedAt.Valid {
		credential.RefreshedAt = wallClock(refreshedAt.Time).Format(domain.RefreshedAtLayout)
	}

	if err := credential.Validate(); err != nil {
		return nil, err
	}

	return &credential, nil
}

// wallClock reinterpreta o horário lido de uma coluna TIMESTAMP, que o driver
// devolve com offset zero, como horário local sem converter o fuso.
func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.Local)
}

// Save troca todas as linhas pela credencial informada em uma transação
func (r *credentialPostgresRepository) Save(ctx context.Context, credential *domain.Credential) error {
	var refreshedAt sql.NullTime
	if at, err := credential.LastRefresh(); err == nil {
		refreshedAt = sql.NullTime{Time: at, Valid: true}
	} else if !errors.Is(err, domain.ErrNeverRefreshed) {
		return fmt.Errorf("refreshed_at inválido: %w", err)
	}

	deleteSQL, deleteArgs, err := squirrel.
		Delete(credentialsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	insertSQL, insertArgs, err := squirrel.
		Insert(credentialsTable).
		Columns("access_token", "client_id", "client_secret", "refreshed_at").
		Values(credential.AccessToken, credential.ClientID, credential.ClientSecret, refreshedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, insertSQL, insertArgs...)
		return err
	})
	if err != nil {
		logrus.WithError(err).Error("Erro ao salvar credencial no banco")
		return err
	}

	return nil
}

const createCredentialsTableSQL = `CREATE TABLE IF NOT EXISTS meta_credentials (
	id SERIAL PRIMARY KEY,
	access_token TEXT NOT NULL,
	client_id TEXT NOT NULL,
	client_secret TEXT NOT NULL,
	refreshed_at TIMESTAMP NULL
)`

// CreateCredentialsTable cria a tabela de credenciais caso ainda não exista
func CreateCredentialsTable(ctx context.Context, q postgres.Queryer) error {
	if _, err := q.ExecContext(ctx, createCredentialsTableSQL); err != nil {
		return fmt.Errorf("erro ao criar tabela %s: %w", credentialsTable, err)
	}
	return nil
}
