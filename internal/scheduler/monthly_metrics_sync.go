package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/growthdesk/growthdesk-api/internal/config"
	"github.com/growthdesk/growthdesk-api/internal/domain"
	"github.com/growthdesk/growthdesk-api/internal/usecases/reporting"
	"github.com/sirupsen/logrus"
)

// MonthlyMetricsSyncConfig representa a configuração do agendador de métricas mensais
type MonthlyMetricsSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// MonthlyMetricsSyncService gerencia o agendamento e execução da agregação mensal de métricas
type MonthlyMetricsSyncService struct {
	scheduler           *gocron.Scheduler
	config              MonthlyMetricsSyncConfig
	reportingService    reporting.ReportingService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *domain.BatchResult
}

// NewMonthlyMetricsSyncService cria uma nova instância do serviço de agregação mensal de métricas
func NewMonthlyMetricsSyncService(
	reportingService reporting.ReportingService,
	appConfig *config.Config,
) *MonthlyMetricsSyncService {
	syncConfig := MonthlyMetricsSyncConfig{
		CronSchedule:      appConfig.MonthlyMetricsSync.CronSchedule,
		MaxConcurrentJobs: appConfig.MonthlyMetricsSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.MonthlyMetricsSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de métricas mensais carregada")

	return &MonthlyMetricsSyncService{
		scheduler:        scheduler,
		config:           syncConfig,
		reportingService: reportingService,
		syncRunning:      false,
	}
}

// Start inicia o agendador
func (s *MonthlyMetricsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Agregação mensal de métricas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de agregação mensal de métricas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncMonthlyMetrics(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar agregação mensal de métricas: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de agregação mensal de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncMonthlyMetrics executa a agregação para todos os tenants ativos
func (s *MonthlyMetricsSyncService) syncMonthlyMetrics(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Agregação mensal de métricas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	result, err := s.reportingService.AggregateAllTenants(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao executar agregação mensal de métricas")
		return
	}

	s.syncMutex.Lock()
	s.lastResult = result
	s.syncMutex.Unlock()

	if !result.AllSucceeded() {
		logrus.WithFields(logrus.Fields{
			"processed": result.Processed,
			"failed":    len(result.Failed),
		}).Warn("Agregação mensal de métricas concluída com falhas")
	}
}

// TriggerManualSync inicia manualmente uma agregação mensal de métricas
func (s *MonthlyMetricsSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Agregação mensal de métricas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando agregação manual de métricas mensais")
	go s.syncMonthlyMetrics(context.Background())
}

// GetStatus retorna o status atual da agregação
func (s *MonthlyMetricsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastResult != nil {
		status["last_result"] = s.lastResult
	}

	return status
}
