package handler

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/growthdesk/growthdesk-api/internal/config"
	"github.com/growthdesk/growthdesk-api/internal/usecases/reporting"
	"github.com/growthdesk/growthdesk-api/pkg/apiErrors"
	"github.com/growthdesk/growthdesk-api/pkg/log"
	"github.com/growthdesk/growthdesk-api/pkg/middleware"
	"github.com/growthdesk/growthdesk-api/pkg/utils"
)

const defaultMetricsLimit = 12

// RefreshMetrics dispara a agregação mensal para todos os tenants ativos.
// A rota é pública para permitir o disparo por agendadores externos e é
// protegida por um segredo compartilhado no query string. A agregação roda
// de forma síncrona: a resposta só volta com o resultado do lote.
func RefreshMetrics(service reporting.ReportingService, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		secret := r.URL.Query().Get("secret")
		if subtle.ConstantTimeCompare([]byte(secret), []byte(cfg.MetricsRefresh.Secret)) != 1 {
			logger.Warn("metrics-refresh: tentativa de disparo com segredo inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRefreshSecret, "Segredo de disparo inválido", nil)
			return
		}

		logger.Info("metrics-refresh: iniciando agregação mensal de métricas")

		result, err := service.AggregateAllTenants(r.Context())
		if err != nil {
			logger.WithError(err).Error("metrics-refresh: erro ao executar agregação mensal")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao executar agregação mensal", nil)
			return
		}

		logger.Debugf("metrics-refresh: resultado do lote: %s", utils.PrettyJson(result))

		if !result.AllSucceeded() {
			logger.WithFields(log.Fields{
				"processed": result.Processed,
				"failed":    len(result.Failed),
			}).Error("metrics-refresh: agregação concluída com falhas")

			apiErrors.WriteError(w, apiErrors.ErrPartialFailure, "Agregação concluída com falhas", result)
			return
		}

		logger.WithFields(log.Fields{
			"processed": result.Processed,
			"duration":  result.Duration,
		}).Info("metrics-refresh: agregação mensal concluída com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("metrics-refresh: erro ao codificar resposta")
		}
	})
}

// ListMetrics retorna as linhas de métricas mensais do tenant autenticado,
// da mais recente para a mais antiga
func ListMetrics(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		limit := uint64(defaultMetricsLimit)
		if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
			parsed, err := strconv.ParseUint(limitParam, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		metrics, err := service.ListMetrics(r.Context(), claims.TenantID, limit)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"tenant_id": claims.TenantID,
			}).Error("metrics: erro ao listar métricas mensais")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar métricas mensais", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(metrics); err != nil {
			logger.WithError(err).Error("metrics: erro ao codificar resposta")
		}
	})
}
