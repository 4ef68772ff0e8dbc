package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-extractor/infrastructure/database/postgres"
	"github.com/vfg2006/meta-ads-extractor/infrastructure/repository"
	"github.com/vfg2006/meta-ads-extractor/internal/config"
	"github.com/vfg2006/meta-ads-extractor/pkg/log"
)

// Cria a tabela meta_credentials e copia para ela a credencial do CSV em TOKEN_PATH.
// Usado uma vez ao trocar CREDENTIAL_STORE de csv para postgres.
func main() {
	if err := run(); err != nil {
		logrus.WithError(err).Error("Migração falhou")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("erro ao carregar configuração: %w", err)
	}
	log.Configure(cfg.App.LogLevel)

	logrus.Info("Iniciando script de migração...")
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
	}
	defer conn.Close()

	return migrateCredential(ctx, conn, repository.NewCredentialCSVRepository(cfg.Credential.TokenPath), startTime)
}

// migrateCredential cria a tabela e grava nela a credencial lida de source
func migrateCredential(ctx context.Context, conn postgres.Conn, source repository.CredentialRepository, startTime time.Time) error {
	if err := repository.CreateCredentialsTable(ctx, conn); err != nil {
		return err
	}
	logrus.Info("Tabela meta_credentials pronta")

	credential, err := source.Load(ctx)
	if err != nil {
		return fmt.Errorf("erro ao ler credencial de origem: %w", err)
	}

	if err := repository.NewCredentialPostgresRepository(conn).Save(ctx, credential); err != nil {
		return fmt.Errorf("erro ao gravar credencial no PostgreSQL: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"refreshed_at": credential.RefreshedAt,
		"duration":     time.Since(startTime).String(),
	}).Info("Migração concluída com sucesso")
	return nil
}
