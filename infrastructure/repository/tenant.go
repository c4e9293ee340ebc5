package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/growthdesk/growthdesk-api/infrastructure/database/postgres"
	"github.com/growthdesk/growthdesk-api/internal/domain"
	"github.com/lib/pq"
)

const (
	tenantsTable = "tenants t"
)

type TenantRepository interface {
	GetByID(ctx context.Context, tenantID string) (*domain.Tenant, error)
	ListTenants(ctx context.Context, availableStatus []domain.TenantStatus) ([]*domain.Tenant, error)
	UpdateOnboarding(ctx context.Context, tenantID string, request *domain.UpdateOnboardingRequest) error
}

type tenantRepository struct {
	conn *postgres.Connection
}

func NewTenantRepository(conn *postgres.Connection) TenantRepository {
	return &tenantRepository{
		conn: conn,
	}
}

func (r *tenantRepository) GetByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	query, args, err := squirrel.
		Select("t.id, t.name, t.status, t.company_name, t.website, t.phone, t.onboarding_completed, t.created_at, t.updated_at").
		From(tenantsTable).
		Where(squirrel.Eq{"t.id": tenantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)

	tenant := &domain.Tenant{}
	if err := row.Scan(
		&tenant.ID,
		&tenant.Name,
		&tenant.Status,
		&tenant.CompanyName,
		&tenant.Website,
		&tenant.Phone,
		&tenant.OnboardingCompleted,
		&tenant.CreatedAt,
		&tenant.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear tenant: %w", err)
	}

	return tenant, nil
}

func (r *tenantRepository) ListTenants(ctx context.Context, availableStatus []domain.TenantStatus) ([]*domain.Tenant, error) {
	queryBuilder := squirrel.
		Select("t.id, t.name, t.status, t.company_name, t.website, t.phone, t.onboarding_completed, t.created_at, t.updated_at").
		From(tenantsTable).
		OrderBy("t.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"t.status": availableStatus})
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

	tenants := make([]*domain.Tenant, 0)
	for rows.Next() {
		tenant := &domain.Tenant{}
		if err := rows.Scan(
			&tenant.ID,
			&tenant.Name,
			&tenant.Status,
			&tenant.CompanyName,
			&tenant.Website,
			&tenant.Phone,
			&tenant.OnboardingCompleted,
			&tenant.CreatedAt,
			&tenant.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear tenant: %w", err)
		}

		tenants = append(tenants, tenant)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return tenants, nil
}

func (r *tenantRepository) UpdateOnboarding(ctx context.Context, tenantID string, request *domain.UpdateOnboardingRequest) error {
	if tenantID == "" {
		return errors.New("tenant ID is required")
	}

	queryBuilder := squirrel.
		Update("tenants").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": tenantID}).
		PlaceholderFormat(squirrel.Dollar)

	if request.CompanyName != nil {
		queryBuilder = queryBuilder.Set("company_name", *request.CompanyName)
	}

	if request.Website != nil {
		queryBuilder = queryBuilder.Set("website", *request.Website)
	}

	if request.Phone != nil {
		queryBuilder = queryBuilder.Set("phone", *request.Phone)
	}

	if request.OnboardingCompleted != nil {
		queryBuilder = queryBuilder.Set("onboarding_completed", *request.OnboardingCompleted)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("tenant not found")
	}

	return nil
}
