package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/growthdesk/growthdesk-api/infrastructure/database/postgres"
	"github.com/growthdesk/growthdesk-api/internal/domain"
	"github.com/lib/pq"
)

const (
	clientsTable = "clients c"
)

type ClientRepository interface {
	GetByID(ctx context.Context, tenantID, clientID string) (*domain.Client, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*domain.Client, error)
	Create(ctx context.Context, client *domain.Client) error
	Update(ctx context.Context, tenantID string, request *domain.UpdateClientRequest) error
	Delete(ctx context.Context, tenantID, clientID string) error
	CountByTenant(ctx context.Context, tenantID string) (int, error)
	CountActiveCreatedBefore(ctx context.Context, tenantID string, cutoff time.Time) (int, error)
	CountCreatedBetween(ctx context.Context, tenantID string, start, end time.Time) (int, error)
}

type clientRepository struct {
	conn *postgres.Connection
}

func NewClientRepository(conn *postgres.Connection) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

func (r *clientRepository) GetByID(ctx context.Context, tenantID, clientID string) (*domain.Client, error) {
	query, args, err := squirrel.
		Select("c.id, c.tenant_id, c.name, c.email, c.phone, c.status, c.created_at, c.updated_at").
		From(clientsTable).
		Where(squirrel.Eq{"c.id": clientID, "c.tenant_id": tenantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)

	client, err := r.scanClient(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
	}

	return client, nil
}

func (r *clientRepository) ListByTenant(ctx context.Context, tenantID string) ([]*domain.Client, error) {
	query, args, err := squirrel.
		Select("c.id, c.tenant_id, c.name, c.email, c.phone, c.status, c.created_at, c.updated_at").
		From(clientsTable).
		Where(squirrel.Eq{"c.tenant_id": tenantID}).
		OrderBy("c.name ASC").
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

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		client := &domain.Client{}
		if err := rows.Scan(
			&client.ID,
			&client.TenantID,
			&client.Name,
			&client.Email,
			&client.Phone,
			&client.Status,
			&client.CreatedAt,
			&client.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}

		clients = append(clients, client)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return clients, nil
}

func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("clients").
		Columns("id", "tenant_id", "name", "email", "phone", "status").
		Values(
			client.ID,
			client.TenantID,
			client.Name,
			client.Email,
			client.Phone,
			client.Status,
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

func (r *clientRepository) Update(ctx context.Context, tenantID string, request *domain.UpdateClientRequest) error {
	if request.ID == "" {
		return errors.New("ID is required")
	}

	queryBuilder := squirrel.
		Update("clients").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": request.ID, "tenant_id": tenantID}).
		PlaceholderFormat(squirrel.Dollar)

	// Adiciona os campos que foram fornecidos para atualização
	if request.Name != nil {
		queryBuilder = queryBuilder.Set("name", *request.Name)
	}

	if request.Email != nil {
		queryBuilder = queryBuilder.Set("email", *request.Email)
	}

	if request.Phone != nil {
		queryBuilder = queryBuilder.Set("phone", *request.Phone)
	}

	if request.Status != nil {
		queryBuilder = queryBuilder.Set("status", *request.Status)
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
		return errors.New("client not found")
	}

	return nil
}

func (r *clientRepository) Delete(ctx context.Context, tenantID, clientID string) error {
	query, args, err := squirrel.
		Delete("clients").
		Where(squirrel.Eq{"id": clientID, "tenant_id": tenantID}).
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
		return errors.New("client not found")
	}

	return nil
}

func (r *clientRepository) CountByTenant(ctx context.Context, tenantID string) (int, error) {
	return r.count(ctx, squirrel.Eq{"c.tenant_id": tenantID})
}

// CountActiveCreatedBefore conta os clientes ativos criados estritamente
// antes da data de corte — usado como base de comparação de churn
func (r *clientRepository) CountActiveCreatedBefore(ctx context.Context, tenantID string, cutoff time.Time) (int, error) {
	return r.count(ctx, squirrel.And{
		squirrel.Eq{"c.tenant_id": tenantID, "c.status": domain.ClientStatusActive},
		squirrel.Lt{"c.created_at": cutoff},
	})
}

func (r *clientRepository) CountCreatedBetween(ctx context.Context, tenantID string, start, end time.Time) (int, error) {
	return r.count(ctx, squirrel.And{
		squirrel.Eq{"c.tenant_id": tenantID},
		squirrel.GtOrEq{"c.created_at": start},
		squirrel.Lt{"c.created_at": end},
	})
}

func (r *clientRepository) count(ctx context.Context, whereClause squirrel.Sqlizer) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(clientsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return total, nil
}

func (r *clientRepository) scanClient(row *sql.Row) (*domain.Client, error) {
	client := &domain.Client{}

	if err := row.Scan(
		&client.ID,
		&client.TenantID,
		&client.Name,
		&client.Email,
		&client.Phone,
		&client.Status,
		&client.CreatedAt,
		&client.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return client, nil
}
