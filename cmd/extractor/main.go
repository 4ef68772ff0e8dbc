package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-extractor/infrastructure/database/postgres"
	"github.com/vfg2006/meta-ads-extractor/infrastructure/integrator/meta"
	"github.com/vfg2006/meta-ads-extractor/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-extractor/infrastructure/repository"
	"github.com/vfg2006/meta-ads-extractor/internal/api"
	"github.com/vfg2006/meta-ads-extractor/internal/config"
	"github.com/vfg2006/meta-ads-extractor/internal/domain"
	"github.com/vfg2006/meta-ads-extractor/internal/scheduler"
	"github.com/vfg2006/meta-ads-extractor/internal/usecases/credentialing"
	"github.com/vfg2006/meta-ads-extractor/internal/usecases/extracting"
	"github.com/vfg2006/meta-ads-extractor/internal/usecases/fetching"
	"github.com/vfg2006/meta-ads-extractor/pkg/log"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar configuração")
		return exitConfiguration
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	if err := cfg.Validate(time.Now()); err != nil {
		logrus.WithError(err).Error("Configuração inválida")
		return exitCode(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	credentialRepo, closeStore, err := credentialRepository(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Error("Erro ao abrir armazenamento de credencial")
		return exitCode(err)
	}
	defer closeStore()

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	// O espelhamento no Render é opcional
	var secretStorage config.SecretStorage
	if cfg.Render.Enabled() {
		secretStorage = config.NewRenderClient(cfg)
	}

	credentialService := credentialing.NewService(credentialRepo, metaClient, secretStorage, cfg)
	fetchService := fetching.NewService(metaIntegrator, cfg)
	adWriter := repository.NewAdCSVWriter(cfg.Extraction.OutputPath)
	extractionService := extracting.NewService(cfg, credentialService, fetchService, adWriter)

	if cfg.Schedule.Cron == "" {
		return runOnce(ctx, extractionService)
	}

	return runScheduled(ctx, cfg, extractionService)
}

func runOnce(ctx context.Context, extractionService extracting.ExtractionService) int {
	ctx, _ = log.WithRunID(ctx)
	log.ForContext(ctx).Info("Iniciando extração de anúncios")

	summary, err := extractionService.Run(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Extração falhou")
		return exitCode(err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"ads":  summary.Ads,
		"path": summary.OutputPath,
	}).Info("Extração finalizada com sucesso")
	return exitOK
}

func runScheduled(ctx context.Context, cfg *config.Config, extractionService extracting.ExtractionService) int {
	if cfg.Credential.ForceRefresh {
		logrus.Warn("FORCE_REFRESH com EXTRACT_CRON: o token é renovado só na primeira execução, as seguintes seguem TOKEN_MAX_AGE_DAYS")
	}

	syncService := scheduler.NewExtractionSyncService(extractionService, cfg)
	if err := syncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de extração")
		return exitConfiguration
	}
	logrus.WithField("next_run", syncService.NextRun()).Info("Agendador de extração iniciado com sucesso")

	if cfg.Server.Enabled() {
		server := api.New(cfg, syncService)
		if err := server.Run(ctx); err != nil {
			logrus.WithError(err).Error("Servidor de status encerrado com erro")
			return exitFailure
		}
		return exitOK
	}

	<-ctx.Done()
	logrus.Info("Sinal de interrupção recebido, encerrando")
	return exitOK
}

// credentialRepository escolhe o armazenamento conforme CREDENTIAL_STORE
func credentialRepository(ctx context.Context, cfg *config.Config) (repository.CredentialRepository, func(), error) {
	if cfg.Credential.Store != config.CredentialStorePostgres {
		return repository.NewCredentialCSVRepository(cfg.Credential.TokenPath), func() {}, nil
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, nil, domain.NewConfigurationError(domain.CodeCredentialMissing, fmt.Sprintf("erro ao conectar ao PostgreSQL: %v", err))
	}
	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")

	return repository.NewCredentialPostgresRepository(conn), func() { conn.Close() }, nil
}
