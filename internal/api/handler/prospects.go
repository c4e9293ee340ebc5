package handler

import (
	"encoding/json"
	"net/http"

	"github.com/growthdesk/growthdesk-api/internal/domain"
	"github.com/growthdesk/growthdesk-api/internal/usecases/scoring"
	"github.com/growthdesk/growthdesk-api/pkg/apiErrors"
	"github.com/growthdesk/growthdesk-api/pkg/log"
)

// ScoreProspects anota cada resultado de busca enviado pelo frontend com o
// score de oportunidade. Listings sem rating ou contagem de avaliações
// voltam com opportunity nulo — dados insuficientes, não ausência de
// oportunidade.
func ScoreProspects(service scoring.ScoringService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request domain.ScoreListingsRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if len(request.Listings) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhum listing informado para pontuação", nil)
			return
		}

		scored := service.ScoreListings(request.Listings)

		logger.WithFields(log.Fields{
			"listings": len(scored),
		}).Info("prospects: listings pontuados")

		response := domain.ScoreListingsResponse{Listings: scored}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("prospects: erro ao codificar resposta")
		}
	})
}
