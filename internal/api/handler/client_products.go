package handler

import (
	"encoding/json"
	"net/http"

	"github.com/growthdesk/growthdesk-api/internal/domain"
	"github.com/growthdesk/growthdesk-api/internal/usecases/cataloging"
	"github.com/growthdesk/growthdesk-api/pkg/apiErrors"
	"github.com/growthdesk/growthdesk-api/pkg/log"
	"github.com/growthdesk/growthdesk-api/pkg/middleware"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

// writeCatalogingError traduz erros do caso de uso de catálogo para a resposta da API
func writeCatalogingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cataloging.ErrClientNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Cliente não encontrado para o tenant", nil)
	case errors.Is(err, cataloging.ErrProductNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Produto não encontrado para o tenant", nil)
	case errors.Is(err, cataloging.ErrActivationMissing):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Ativação não encontrada", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar o banco de dados", nil)
	}
}

// ListClientProducts retorna as ativações de produto de um cliente
func ListClientProducts(service cataloging.CatalogingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		activations, err := service.ListClientProducts(r.Context(), claims.TenantID, clientID)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"tenant_id": claims.TenantID,
				"client_id": clientID,
			}).Error("client-products: erro ao listar ativações")
			writeCatalogingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(activations); err != nil {
			logger.WithError(err).Error("client-products: erro ao codificar resposta")
		}
	})
}

// ActivateProduct ativa um produto para um cliente. Reativações atualizam o
// preço acordado e a data de ativação.
func ActivateProduct(service cataloging.CatalogingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var request domain.ActivateProductRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if request.ProductID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do produto não informado", nil)
			return
		}

		activation, err := service.ActivateProduct(r.Context(), claims.TenantID, clientID, &request)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"tenant_id":  claims.TenantID,
				"client_id":  clientID,
				"product_id": request.ProductID,
			}).Error("client-products: erro ao ativar produto")
			writeCatalogingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(activation); err != nil {
			logger.WithError(err).Error("client-products: erro ao codificar resposta")
		}
	})
}

// DeactivateProduct desativa um produto de um cliente. A linha é mantida
// como histórico; apenas is_active muda.
func DeactivateProduct(service cataloging.CatalogingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		params := httprouter.ParamsFromContext(r.Context())
		clientID := params.ByName("id")
		productID := params.ByName("product_id")

		if err := service.DeactivateProduct(r.Context(), claims.TenantID, clientID, productID); err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"tenant_id":  claims.TenantID,
				"client_id":  clientID,
				"product_id": productID,
			}).Error("client-products: erro ao desativar produto")
			writeCatalogingError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
