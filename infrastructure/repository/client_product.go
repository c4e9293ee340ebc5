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
	clientProductsTable = "client_products cp"
)

type ClientProductRepository interface {
	ListByClient(ctx context.Context, clientID string) ([]*domain.ClientProduct, error)
	ListActiveByTenant(ctx context.Context, tenantID string) ([]*domain.ActivationEntry, error)
	Activate(ctx context.Context, activation *domain.ClientProduct) error
	Deactivate(ctx context.Context, clientID, productID string) error
}

type clientProductRepository struct {
	conn *postgres.Connection
}

func NewClientProductRepository(conn *postgres.Connection) ClientProductRepository {
	return &clientProductRepository{
		conn: conn,
	}
}

func (r *clientProductRepository) ListByClient(ctx context.Context, clientID string) ([]*domain.ClientProduct, error) {
	query, args, err := squirrel.
		Select("cp.id, cp.client_id, cp.product_id, cp.is_active, cp.price, cp.activated_at").
		From(clientProductsTable).
		Where(squirrel.Eq{"cp.client_id": clientID}).
		OrderBy("cp.activated_at DESC").
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

	activations := make([]*domain.ClientProduct, 0)
	for rows.Next() {
		activation := &domain.ClientProduct{}
		if err := rows.Scan(
			&activation.ID,
			&activation.ClientID,
			&activation.ProductID,
			&activation.IsActive,
			&activation.Price,
			&activation.ActivatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear ativação: %w", err)
		}

		activations = append(activations, activation)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return activations, nil
}

// ListActiveByTenant retorna as ativações ativas de todos os clientes do
// tenant, com o preço sugerido do produto vinculado para o fallback de
// receita da agregação mensal
func (r *clientProductRepository) ListActiveByTenant(ctx context.Context, tenantID string) ([]*domain.ActivationEntry, error) {
	query, args, err := squirrel.
		Select("cp.client_id, cp.product_id, p.name, cp.price, p.suggested_price").
		From(clientProductsTable).
		Join("clients c ON cp.client_id = c.id").
		Join("products p ON cp.product_id = p.id").
		Where(squirrel.Eq{"c.tenant_id": tenantID, "cp.is_active": true}).
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

	entries := make([]*domain.ActivationEntry, 0)
	for rows.Next() {
		entry := &domain.ActivationEntry{}
		if err := rows.Scan(
			&entry.ClientID,
			&entry.ProductID,
			&entry.ProductName,
			&entry.Price,
			&entry.SuggestedPrice,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear ativação: %w", err)
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *clientProductRepository) Activate(ctx context.Context, activation *domain.ClientProduct) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("client_products").
		Columns("id", "client_id", "product_id", "is_active", "price").
		Values(
			activation.ID,
			activation.ClientID,
			activation.ProductID,
			true,
			activation.Price,
		).
		Suffix(`
			ON CONFLICT (client_id, product_id) DO UPDATE SET
				is_active = TRUE,
				price = EXCLUDED.price,
				activated_at = NOW()
		`).
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

func (r *clientProductRepository) Deactivate(ctx context.Context, clientID, productID string) error {
	query, args, err := squirrel.
		Update("client_products").
		Set("is_active", false).
		Where(squirrel.Eq{"client_id": clientID, "product_id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("activation not found")
	}

	return nil
}
