package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID             string           `json:"id"`
	TenantID       string           `json:"tenant_id"`
	Name           string           `json:"name"`
	Description    *string          `json:"description"`
	SuggestedPrice *decimal.Decimal `json:"suggested_price"`
	Active         bool             `json:"active"`
	CreatedAt      time.Time        `json:"created_at"`
}

type CreateProductRequest struct {
	Name           string           `json:"name"`
	Description    *string          `json:"description,omitempty"`
	SuggestedPrice *decimal.Decimal `json:"suggested_price,omitempty"`
}
