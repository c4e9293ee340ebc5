package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/growthdesk/growthdesk-api/internal/domain"
	"github.com/growthdesk/growthdesk-api/internal/usecases/cataloging"
	"github.com/growthdesk/growthdesk-api/pkg/apiErrors"
	"github.com/growthdesk/growthdesk-api/pkg/log"
	"github.com/growthdesk/growthdesk-api/pkg/middleware"
)

// ListProducts retorna o catálogo de produtos ativos do tenant autenticado
func ListProducts(service cataloging.CatalogingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		products, err := service.ListProducts(r.Context(), claims.TenantID)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"tenant_id": claims.TenantID,
			}).Error("products: erro ao listar produtos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar produtos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(products); err != nil {
			logger.WithError(err).Error("products: erro ao codificar resposta")
		}
	})
}

// CreateProduct adiciona um produto ao catálogo do tenant autenticado
func CreateProduct(service cataloging.CatalogingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var request domain.CreateProductRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		product, err := service.CreateProduct(r.Context(), claims.TenantID, &request)
		if err != nil {
			if errors.Is(err, cataloging.ErrProductNameEmpty) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do produto não informado", nil)
				return
			}

			logger.WithError(err).WithFields(log.Fields{
				"tenant_id": claims.TenantID,
			}).Error("products: erro ao criar produto")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar produto", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(product); err != nil {
			logger.WithError(err).Error("products: erro ao codificar resposta")
		}
	})
}
