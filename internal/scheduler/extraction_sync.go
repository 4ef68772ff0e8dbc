package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-extractor/internal/config"
	"github.com/vfg2006/meta-ads-extractor/internal/usecases/extracting"
	"github.com/vfg2006/meta-ads-extractor/pkg/log"
)

// ExtractionSyncService agenda execuções periódicas da extração
type ExtractionSyncService struct {
	scheduler           *gocron.Scheduler
	cronSchedule        string
	extractionService   extracting.ExtractionService
	ctx                 context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncErr         error
}

func NewExtractionSyncService(
	extractionService extracting.ExtractionService,
	appConfig *config.Config,
) *ExtractionSyncService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithField("cron_schedule", appConfig.Schedule.Cron).Info("Configuração do agendador de extração carregada")

	return &ExtractionSyncService{
		scheduler:         scheduler,
		cronSchedule:      appConfig.Schedule.Cron,
		extractionService: extractionService,
	}
}

// Start agenda a extração e para o agendador quando ctx for cancelado
func (s *ExtractionSyncService) Start(ctx context.Context) error {
	logrus.WithField("cron", s.cronSchedule).Info("Iniciando agendador de extração")
	s.ctx = ctx

	_, err := s.scheduler.Cron(s.cronSchedule).SingletonMode().Do(func() {
		s.runExtraction(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar extração: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de extração")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara uma extração fora do agendamento.
// Retorna false quando já existe uma execução em andamento.
func (s *ExtractionSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Extração já em andamento, ignorando solicitação manual")
		return false
	}
	s.markStarted()
	s.syncMutex.Unlock()

	ctx := s.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	logrus.Info("Iniciando extração manual")
	go s.execute(ctx)
	return true
}

// GetStatus retorna o status atual do agendador
func (s *ExtractionSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_cron":              s.cronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   formatTime(s.lastSyncStartedAt),
		"last_sync_completed_at": formatTime(s.lastSyncCompletedAt),
		"next_run":               formatTime(s.NextRun()),
		"last_sync_error":        "",
	}
	if s.lastSyncErr != nil {
		status["last_sync_error"] = s.lastSyncErr.Error()
	}
	return status
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// NextRun devolve o horário da próxima execução agendada
func (s *ExtractionSyncService) NextRun() time.Time {
	_, next := s.scheduler.NextRun()
	return next
}

// LastError devolve o erro da última execução concluída, se houver
func (s *ExtractionSyncService) LastError() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.lastSyncErr
}

func (s *ExtractionSyncService) runExtraction(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Extração já em andamento, ignorando")
		return
	}
	s.markStarted()
	s.syncMutex.Unlock()

	s.execute(ctx)
}

// markStarted exige syncMutex travado
func (s *ExtractionSyncService) markStarted() {
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
}

func (s *ExtractionSyncService) execute(ctx context.Context) {
	runCtx, runID := log.WithRunID(ctx)
	logger := log.ForContext(runCtx)
	logger.Info("Iniciando extração agendada")

	summary, err := s.extractionService.Run(runCtx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncErr = err
	duration := s.lastSyncCompletedAt.Sub(s.lastSyncStartedAt)
	s.syncMutex.Unlock()

	if err != nil {
		logger.WithError(err).Error("Extração agendada falhou")
		return
	}

	logger.WithFields(log.Fields{
		"run_id":   runID,
		"ads":      summary.Ads,
		"duration": duration.String(),
	}).Info("Extração agendada concluída")
}
