package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClientProduct representa a ativação de um produto para um cliente
type ClientProduct struct {
	ID          string           `json:"id"`
	ClientID    string           `json:"client_id"`
	ProductID   string           `json:"product_id"`
	IsActive    bool             `json:"is_active"`
	Price       *decimal.Decimal `json:"price"`
	ActivatedAt time.Time        `json:"activated_at"`
}

// ActivationEntry é uma ativação com o preço sugerido do produto vinculado,
// usada pela agregação de receita mensal
type ActivationEntry struct {
	ClientID       string           `json:"client_id"`
	ProductID      string           `json:"product_id"`
	ProductName    string           `json:"product_name"`
	Price          *decimal.Decimal `json:"price"`
	SuggestedPrice *decimal.Decimal `json:"suggested_price"`
}

// MonthlyRevenue retorna a contribuição mensal efetiva da ativação:
// o preço acordado quando definido, senão o preço sugerido do produto, senão zero
func (a *ActivationEntry) MonthlyRevenue() decimal.Decimal {
	if a.Price != nil {
		return *a.Price
	}

	if a.SuggestedPrice != nil {
		return *a.SuggestedPrice
	}

	return decimal.Zero
}

type ActivateProductRequest struct {
	ProductID string           `json:"product_id"`
	Price     *decimal.Decimal `json:"price,omitempty"`
}
