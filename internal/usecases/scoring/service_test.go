package scoring

import (
	"testing"

	"github.com/growthdesk/growthdesk-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

func intPtr(v int) *int {
	return &v
}

func TestScoreListing(t *testing.T) {
	service := NewOpportunityScoringService()

	tests := []struct {
		name          string
		rating        *float64
		reviewCount   *int
		expectedScore int
		expectedTier  domain.OpportunityTier
		expectNil     bool
	}{
		{
			name:        "sem rating retorna nil",
			rating:      nil,
			reviewCount: intPtr(30),
			expectNil:   true,
		},
		{
			name:        "sem contagem de avaliações retorna nil",
			rating:      floatPtr(4.2),
			reviewCount: nil,
			expectNil:   true,
		},
		{
			name:          "rating baixo com poucas avaliações soma melhoria e bônus",
			rating:        floatPtr(3.8),
			reviewCount:   intPtr(30),
			expectedScore: 48, // melhoria 37.5 + bônus 10, arredondado no final
			expectedTier:  domain.OpportunityTierNotable,
		},
		{
			name:          "rating alto com poucas avaliações soma crescimento e bônus",
			rating:        floatPtr(4.9),
			reviewCount:   intPtr(20),
			expectedScore: 47, // crescimento 36.8 + bônus 10
			expectedTier:  domain.OpportunityTierNotable,
		},
		{
			name:          "mercado saturado zera o score",
			rating:        floatPtr(4.9),
			reviewCount:   intPtr(100),
			expectedScore: 0,
			expectedTier:  domain.OpportunityTierEstablished,
		},
		{
			name:          "rating acima do domínio é clampado antes da saturação",
			rating:        floatPtr(6.0),
			reviewCount:   intPtr(150),
			expectedScore: 0,
			expectedTier:  domain.OpportunityTierEstablished,
		},
		{
			name:          "melhoria saturada sem bônus por volume de avaliações",
			rating:        floatPtr(3.2),
			reviewCount:   intPtr(300),
			expectedScore: 50,
			expectedTier:  domain.OpportunityTierPromising,
		},
		{
			name:          "rating mínimo com poucas avaliações",
			rating:        floatPtr(1.0),
			reviewCount:   intPtr(10),
			expectedScore: 60, // melhoria 50 + bônus 10
			expectedTier:  domain.OpportunityTierPromising,
		},
		{
			name:          "fronteira 4.7 zera a melhoria e mantém o crescimento",
			rating:        floatPtr(4.7),
			reviewCount:   intPtr(0),
			expectedScore: 40,
			expectedTier:  domain.OpportunityTierNotable,
		},
		{
			name:          "fronteira 4.5 com teto de avaliações zera o crescimento",
			rating:        floatPtr(4.5),
			reviewCount:   intPtr(250),
			expectedScore: 8, // apenas melhoria 8.33
			expectedTier:  domain.OpportunityTierEstablished,
		},
		{
			name:          "fronteira 4.5 sem avaliações soma melhoria e crescimento",
			rating:        floatPtr(4.5),
			reviewCount:   intPtr(0),
			expectedScore: 48, // melhoria 8.33 + crescimento 40
			expectedTier:  domain.OpportunityTierNotable,
		},
		{
			name:          "bônus de rating alto exige menos de 50 avaliações",
			rating:        floatPtr(4.8),
			reviewCount:   intPtr(10),
			expectedScore: 48, // crescimento 38.4 + bônus 10
			expectedTier:  domain.OpportunityTierNotable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listing := &domain.BusinessListing{
				Name:        "Ótica Central",
				Rating:      tt.rating,
				ReviewCount: tt.reviewCount,
			}

			result := service.ScoreListing(listing)

			if tt.expectNil {
				assert.Nil(t, result)
				return
			}

			require.NotNil(t, result)
			assert.Equal(t, tt.expectedScore, result.Score)
			assert.Equal(t, tt.expectedTier, result.Tier)
			assert.NotEmpty(t, result.Description)
			assert.GreaterOrEqual(t, result.Score, 0)
			assert.LessOrEqual(t, result.Score, 100)
		})
	}
}

func TestScoreListingNilListing(t *testing.T) {
	service := NewOpportunityScoringService()

	assert.Nil(t, service.ScoreListing(nil))
}

// Com rating fixo acima de 4.5, mais avaliações nunca aumentam o score
func TestScoreListingMonotonicInReviewCount(t *testing.T) {
	service := NewOpportunityScoringService()

	rating := 4.6
	previousScore := 101

	for _, count := range []int{0, 10, 50, 100, 200, 250, 400} {
		listing := &domain.BusinessListing{
			Name:        "Loja Exemplo",
			Rating:      &rating,
			ReviewCount: &count,
		}

		result := service.ScoreListing(listing)
		require.NotNil(t, result)
		assert.LessOrEqual(t, result.Score, previousScore, "score subiu com mais avaliações (count=%d)", count)

		previousScore = result.Score
	}
}

func TestScoreListings(t *testing.T) {
	service := NewOpportunityScoringService()

	listings := []domain.BusinessListing{
		{
			Name:        "Ótica Central",
			Rating:      floatPtr(3.8),
			ReviewCount: intPtr(30),
		},
		{
			Name:        "Estabelecimento sem avaliações",
			Rating:      nil,
			ReviewCount: nil,
		},
	}

	scored := service.ScoreListings(listings)

	require.Len(t, scored, 2)

	require.NotNil(t, scored[0].Opportunity)
	assert.Equal(t, 48, scored[0].Opportunity.Score)
	assert.Equal(t, "Ótica Central", scored[0].Name)

	assert.Nil(t, scored[1].Opportunity)
}
