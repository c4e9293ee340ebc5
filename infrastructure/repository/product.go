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
	productsTable = "products p"
)

type ProductRepository interface {
	GetByID(ctx context.Context, tenantID, productID string) (*domain.Product, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) error
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) GetByID(ctx context.Context, tenantID, productID string) (*domain.Product, error) {
	query, args, err := squirrel.
		Select("p.id, p.tenant_id, p.name, p.description, p.suggested_price, p.active, p.created_at").
		From(productsTable).
		Where(squirrel.Eq{"p.id": productID, "p.tenant_id": tenantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)

	product := &domain.Product{}
	if err := row.Scan(
		&product.ID,
		&product.TenantID,
		&product.Name,
		&product.Description,
		&product.SuggestedPrice,
		&product.Active,
		&product.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear produto: %w", err)
	}

	return product, nil
}

func (r *productRepository) ListByTenant(ctx context.Context, tenantID string) ([]*domain.Product, error) {
	query, args, err := squirrel.
		Select("p.id, p.tenant_id, p.name, p.description, p.suggested_price, p.active, p.created_at").
		From(productsTable).
		Where(squirrel.Eq{"p.tenant_id": tenantID, "p.active": true}).
		OrderBy("p.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
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

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product := &domain.Product{}
		if err := rows.Scan(
			&product.ID,
			&product.TenantID,
			&product.Name,
			&product.Description,
			&product.SuggestedPrice,
			&product.Active,
			&product.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}

		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("products").
		Columns("id", "tenant_id", "name", "description", "suggested_price", "active").
		Values(
			product.ID,
			product.TenantID,
			product.Name,
			product.Description,
			product.SuggestedPrice,
			product.Active,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}
