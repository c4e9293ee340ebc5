package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/growthdesk/growthdesk-api/infrastructure/database/postgres"
	"github.com/growthdesk/growthdesk-api/internal/domain"
	"github.com/lib/pq"
)

const (
	monthlyMetricsTable = "monthly_metrics mm"
)

type MonthlyMetricRepository interface {
	GetByTenantAndPeriod(ctx context.Context, tenantID string, year, month int) (*domain.MonthlyMetric, error)
	ListByTenant(ctx context.Context, tenantID string, limit uint64) ([]*domain.MonthlyMetric, error)
	SaveOrUpdate(ctx context.Context, metric *domain.MonthlyMetric) error
}

type monthlyMetricRepository struct {
	conn *postgres.Connection
}

func NewMonthlyMetricRepository(conn *postgres.Connection) MonthlyMetricRepository {
	return &monthlyMetricRepository{
		conn: conn,
	}
}

func (r *monthlyMetricRepository) GetByTenantAndPeriod(ctx context.Context, tenantID string, year, month int) (*domain.MonthlyMetric, error) {
	query, args, err := squirrel.
		Select("mm.id, mm.tenant_id, mm.year, mm.month, mm.total_revenue, mm.new_customers, mm.churned_customers, mm.total_customers, mm.total_active_products, mm.created_at, mm.updated_at").
		From(monthlyMetricsTable).
		Where(squirrel.Eq{"mm.tenant_id": tenantID, "mm.year": year, "mm.month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)

	metric, err := r.scanMetric(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear métrica mensal: %w", err)
	}

	return metric, nil
}

func (r *monthlyMetricRepository) ListByTenant(ctx context.Context, tenantID string, limit uint64) ([]*domain.MonthlyMetric, error) {
	queryBuilder := squirrel.
		Select("mm.id, mm.tenant_id, mm.year, mm.month, mm.total_revenue, mm.new_customers, mm.churned_customers, mm.total_customers, mm.total_active_products, mm.created_at, mm.updated_at").
		From(monthlyMetricsTable).
		Where(squirrel.Eq{"mm.tenant_id": tenantID}).
		OrderBy("mm.year DESC", "mm.month DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(limit)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	metrics := make([]*domain.MonthlyMetric, 0)
	for rows.Next() {
		metric := &domain.MonthlyMetric{}
		if err := rows.Scan(
			&metric.ID,
			&metric.TenantID,
			&metric.Year,
			&metric.Month,
			&metric.TotalRevenue,
			&metric.NewCustomers,
			&metric.ChurnedCustomers,
			&metric.TotalCustomers,
			&metric.TotalActiveProducts,
			&metric.CreatedAt,
			&metric.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear métrica mensal: %w", err)
		}

		metrics = append(metrics, metric)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metrics, nil
}

// SaveOrUpdate grava a linha de métricas do período. A chave de conflito
// (tenant_id, year, month) garante no máximo uma linha por tenant por mês
// e torna reexecuções da agregação idempotentes.
func (r *monthlyMetricRepository) SaveOrUpdate(ctx context.Context, metric *domain.MonthlyMetric) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("monthly_metrics").
		Columns("tenant_id", "year", "month", "total_revenue", "new_customers", "churned_customers", "total_customers", "total_active_products").
		Values(
			metric.TenantID,
			metric.Year,
			metric.Month,
			metric.TotalRevenue,
			metric.NewCustomers,
			metric.ChurnedCustomers,
			metric.TotalCustomers,
			metric.TotalActiveProducts,
		).
		Suffix(`
			ON CONFLICT (tenant_id, year, month) DO UPDATE SET
				total_revenue = EXCLUDED.total_revenue,
				new_customers = EXCLUDED.new_customers,
				churned_customers = EXCLUDED.churned_customers,
				total_customers = EXCLUDED.total_customers,
				total_active_products = EXCLUDED.total_active_products,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *monthlyMetricRepository) scanMetric(row *sql.Row) (*domain.MonthlyMetric, error) {
	metric := &domain.MonthlyMetric{}

	if err := row.Scan(
		&metric.ID,
		&metric.TenantID,
		&metric.Year,
		&metric.Month,
		&metric.TotalRevenue,
		&metric.NewCustomers,
		&metric.ChurnedCustomers,
		&metric.TotalCustomers,
		&metric.TotalActiveProducts,
		&metric.CreatedAt,
		&metric.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return metric, nil
}
