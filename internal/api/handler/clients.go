package handler

import (
	"encoding/json"
	"net/http"

	"github.com/growthdesk/growthdesk-api/internal/domain"
	"github.com/growthdesk/growthdesk-api/internal/usecases/clienting"
	"github.com/growthdesk/growthdesk-api/pkg/apiErrors"
	"github.com/growthdesk/growthdesk-api/pkg/log"
	"github.com/growthdesk/growthdesk-api/pkg/middleware"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

// writeClientError traduz erros do caso de uso de clientes para a resposta da API
func writeClientError(w http.ResponseWriter, err error) {
	var clientErr *clienting.ClientError
	if errors.As(err, &clientErr) {
		apiErrors.WriteError(w, clientErr.Code, clientErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
}

// ListClients retorna os clientes do tenant autenticado
func ListClients(service clienting.ClientingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		clients, err := service.ListClients(r.Context(), claims.TenantID)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"tenant_id": claims.TenantID,
			}).Error("clients: erro ao listar clientes")
			writeClientError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(clients); err != nil {
			logger.WithError(err).Error("clients: erro ao codificar resposta")
		}
	})
}

// GetClient retorna um cliente do tenant autenticado
func GetClient(service clienting.ClientingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		client, err := service.GetClient(r.Context(), claims.TenantID, clientID)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"tenant_id": claims.TenantID,
				"client_id": clientID,
			}).Error("clients: erro ao buscar cliente")
			writeClientError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(client); err != nil {
			logger.WithError(err).Error("clients: erro ao codificar resposta")
		}
	})
}

// CreateClient cria um cliente para o tenant autenticado
func CreateClient(service clienting.ClientingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var request domain.CreateClientRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		client, err := service.CreateClient(r.Context(), claims.TenantID, &request)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"tenant_id": claims.TenantID,
			}).Error("clients: erro ao criar cliente")
			writeClientError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(client); err != nil {
			logger.WithError(err).Error("clients: erro ao codificar resposta")
		}
	})
}

// UpdateClient atualiza um cliente do tenant autenticado
func UpdateClient(service clienting.ClientingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var request domain.UpdateClientRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		// O ID da rota prevalece sobre qualquer ID do corpo
		request.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.UpdateClient(r.Context(), claims.TenantID, &request); err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"tenant_id": claims.TenantID,
				"client_id": request.ID,
			}).Error("clients: erro ao atualizar cliente")
			writeClientError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// DeleteClient remove um cliente do tenant autenticado
func DeleteClient(service clienting.ClientingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteClient(r.Context(), claims.TenantID, clientID); err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"tenant_id": claims.TenantID,
				"client_id": clientID,
			}).Error("clients: erro ao remover cliente")
			writeClientError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
