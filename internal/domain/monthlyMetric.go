package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyMetric representa a linha de métricas mensais de um tenant.
// Existe no máximo uma linha por (tenant_id, year, month); a escrita é
// sempre um upsert feito pela agregação mensal.
type MonthlyMetric struct {
	ID                  int64           `json:"id"`
	TenantID            string          `json:"tenant_id"`
	Year                int             `json:"year"`
	Month               int             `json:"month"`
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	NewCustomers        int             `json:"new_customers"`
	ChurnedCustomers    int             `json:"churned_customers"`
	TotalCustomers      int             `json:"total_customers"`
	TotalActiveProducts int             `json:"total_active_products"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// TenantFailure registra a falha de agregação de um tenant dentro de um lote
type TenantFailure struct {
	TenantID string `json:"tenant_id"`
	Reason   string `json:"reason"`
}

// BatchResult é o resumo de uma execução da agregação mensal sobre todos os
// tenants ativos. A falha de um tenant não interrompe o lote: ela entra em
// Failed e os demais tenants seguem sendo processados.
type BatchResult struct {
	Processed int             `json:"processed"`
	Succeeded int             `json:"succeeded"`
	Failed    []TenantFailure `json:"failed"`
	Duration  string          `json:"duration"`
}

// AllSucceeded indica se nenhum tenant falhou no lote
func (b *BatchResult) AllSucceeded() bool {
	return len(b.Failed) == 0
}
