package handler

import (
	"encoding/json"
	"net/http"

	"github.com/growthdesk/growthdesk-api/internal/scheduler"
	"github.com/growthdesk/growthdesk-api/pkg/apiErrors"
	"github.com/growthdesk/growthdesk-api/pkg/log"
	"github.com/julienschmidt/httprouter"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeMonthlyMetrics = "monthly-metrics"
	CronJobTypeAll            = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	MonthlyMetricsSyncService *scheduler.MonthlyMetricsSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeMonthlyMetrics:
			if services.MonthlyMetricsSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de agregação mensal não disponível", nil)
				return
			}
			services.MonthlyMetricsSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.MonthlyMetricsSyncService != nil {
				services.MonthlyMetricsSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: monthly-metrics, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - GetCronStatus")

		status := map[string]any{
			"monthly-metrics": services.MonthlyMetricsSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}

// GetMetricsSyncStatus retorna o status do agendador da agregação mensal
func GetMetricsSyncStatus(syncService *scheduler.MonthlyMetricsSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(syncService.GetStatus()); err != nil {
			logger.WithError(err).Error("metrics-status: erro ao codificar resposta")
		}
	})
}
