package scoring

import (
	"fmt"
	"math"

	"github.com/growthdesk/growthdesk-api/internal/domain"
	"github.com/growthdesk/growthdesk-api/pkg/utils"
)

const (
	minRating = 1.0
	maxRating = 5.0

	// Componente de melhoria: quanto pior a avaliação dentro da janela,
	// maior o espaço para a agência melhorar a reputação do prospect
	improvementFloor   = 3.5
	improvementCeiling = 4.7
	improvementMax     = 50.0

	// Componente de crescimento: boa avaliação com poucas reviews indica
	// negócio subdivulgado
	growthRatingThreshold = 4.5
	growthReviewCeiling   = 250.0
	growthMax             = 40.0

	bonusPoints        = 10.0
	bonusReviewCeiling = 50

	lowRatingBonusThreshold  = 4.0
	highRatingBonusThreshold = 4.8

	// Saturação: avaliação quase perfeita com alto volume de reviews não
	// deixa espaço de atuação
	saturationRating      = 4.9
	saturationReviewCount = 100

	tierHighValueThreshold = 70
	tierPromisingThreshold = 50
	tierNotableThreshold   = 30
)

// ScoringService calcula o score de oportunidade de prospects a partir do
// rating e do volume de avaliações públicas. Função pura, sem I/O.
type ScoringService interface {
	ScoreListing(listing *domain.BusinessListing) *domain.OpportunityScore
	ScoreListings(listings []domain.BusinessListing) []domain.ScoredListing
}

type OpportunityScoringService struct{}

func NewOpportunityScoringService() ScoringService {
	return &OpportunityScoringService{}
}

// ScoreListing retorna nil quando rating ou review_count estão ausentes —
// sem sinal suficiente, o que é diferente de "sem oportunidade"
func (s *OpportunityScoringService) ScoreListing(listing *domain.BusinessListing) *domain.OpportunityScore {
	if listing == nil || listing.Rating == nil || listing.ReviewCount == nil {
		return nil
	}

	rating := utils.Clamp(*listing.Rating, minRating, maxRating)
	reviewCount := *listing.ReviewCount
	if reviewCount < 0 {
		reviewCount = 0
	}

	if rating >= saturationRating && reviewCount >= saturationReviewCount {
		return &domain.OpportunityScore{
			Score:       0,
			Tier:        domain.OpportunityTierEstablished,
			Description: describeTier(domain.OpportunityTierEstablished, rating, reviewCount),
		}
	}

	var total float64

	if rating < improvementCeiling {
		clampedRating := utils.Clamp(rating, improvementFloor, improvementCeiling)
		total += improvementMax * (improvementCeiling - clampedRating) / (improvementCeiling - improvementFloor)
	}

	if rating >= growthRatingThreshold {
		clampedCount := math.Min(float64(reviewCount), growthReviewCeiling)
		total += growthMax * (growthReviewCeiling - clampedCount) / growthReviewCeiling
	}

	if rating < lowRatingBonusThreshold && reviewCount < bonusReviewCeiling {
		total += bonusPoints
	}

	if rating >= highRatingBonusThreshold && reviewCount < bonusReviewCeiling {
		total += bonusPoints
	}

	// Arredonda apenas a soma final, nunca os componentes individuais
	score := int(math.Round(total))
	tier := tierForScore(score)

	return &domain.OpportunityScore{
		Score:       score,
		Tier:        tier,
		Description: describeTier(tier, rating, reviewCount),
	}
}

func (s *OpportunityScoringService) ScoreListings(listings []domain.BusinessListing) []domain.ScoredListing {
	scored := make([]domain.ScoredListing, 0, len(listings))

	for _, listing := range listings {
		scored = append(scored, domain.ScoredListing{
			BusinessListing: listing,
			Opportunity:     s.ScoreListing(&listing),
		})
	}

	return scored
}

func tierForScore(score int) domain.OpportunityTier {
	switch {
	case score >= tierHighValueThreshold:
		return domain.OpportunityTierHighValue
	case score >= tierPromisingThreshold:
		return domain.OpportunityTierPromising
	case score >= tierNotableThreshold:
		return domain.OpportunityTierNotable
	default:
		return domain.OpportunityTierEstablished
	}
}

func describeTier(tier domain.OpportunityTier, rating float64, reviewCount int) string {
	switch tier {
	case domain.OpportunityTierHighValue:
		return fmt.Sprintf("Alta oportunidade: avaliação %.1f com %d avaliações, grande espaço para crescimento", rating, reviewCount)
	case domain.OpportunityTierPromising:
		return fmt.Sprintf("Oportunidade promissora: avaliação %.1f com %d avaliações", rating, reviewCount)
	case domain.OpportunityTierNotable:
		return fmt.Sprintf("Oportunidade moderada: avaliação %.1f com %d avaliações", rating, reviewCount)
	default:
		return fmt.Sprintf("Negócio consolidado: avaliação %.1f com %d avaliações, pouco espaço de atuação", rating, reviewCount)
	}
}
