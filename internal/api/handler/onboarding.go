package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/growthdesk/growthdesk-api/internal/domain"
	"github.com/growthdesk/growthdesk-api/internal/usecases/onboarding"
	"github.com/growthdesk/growthdesk-api/pkg/apiErrors"
	"github.com/growthdesk/growthdesk-api/pkg/log"
	"github.com/growthdesk/growthdesk-api/pkg/middleware"
)

// UpdateOnboarding atualiza o perfil de onboarding do tenant autenticado e
// retorna o perfil atualizado
func UpdateOnboarding(service onboarding.OnboardingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var request domain.UpdateOnboardingRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		tenant, err := service.UpdateProfile(r.Context(), claims.TenantID, &request)
		if err != nil {
			if errors.Is(err, onboarding.ErrTenantNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Tenant não encontrado", nil)
				return
			}

			logger.WithError(err).WithFields(log.Fields{
				"tenant_id": claims.TenantID,
			}).Error("onboarding: erro ao atualizar perfil")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar perfil de onboarding", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(tenant); err != nil {
			logger.WithError(err).Error("onboarding: erro ao codificar resposta")
		}
	})
}
