package domain

// BusinessListing é um resultado de busca de prospecção vindo do frontend.
// Rating e ReviewCount podem estar ausentes quando o estabelecimento ainda
// não tem avaliações públicas.
type BusinessListing struct {
	Name        string   `json:"name"`
	Address     *string  `json:"address,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Rating      *float64 `json:"rating"`
	ReviewCount *int     `json:"review_count"`
}

type OpportunityTier string

const (
	OpportunityTierEstablished OpportunityTier = "ESTABLISHED"
	OpportunityTierNotable     OpportunityTier = "NOTABLE"
	OpportunityTierPromising   OpportunityTier = "PROMISING"
	OpportunityTierHighValue   OpportunityTier = "HIGH_VALUE"
)

// OpportunityScore é o sinal qualitativo derivado de rating e volume de
// avaliações. Nunca é persistido: é recalculado a cada leitura.
type OpportunityScore struct {
	Score       int             `json:"score"`
	Tier        OpportunityTier `json:"tier"`
	Description string          `json:"description"`
}

type ScoreListingsRequest struct {
	Listings []BusinessListing `json:"listings"`
}

// ScoredListing anexa o score de oportunidade a um resultado de busca.
// Opportunity é nulo quando não há sinal suficiente (rating ou review_count
// ausentes) — o frontend trata como "dados insuficientes", não como
// "sem oportunidade".
type ScoredListing struct {
	BusinessListing
	Opportunity *OpportunityScore `json:"opportunity"`
}

type ScoreListingsResponse struct {
	Listings []ScoredListing `json:"listings"`
}
