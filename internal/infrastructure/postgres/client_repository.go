package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agenciaflow/agencia-api/internal/domain"
	"github.com/agenciaflow/agencia-api/internal/domain/entity"
	"github.com/agenciaflow/agencia-api/internal/domain/repository"
	"github.com/agenciaflow/agencia-api/pkg/textutil"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

const clientColumns = `id, name, name_normalized, email, phone, type, requires_invoice, tax_id, payment_method, status, plan, created_at, updated_at`

// ClientRepo implementación del puerto ClientRepository sobre PostgreSQL (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador de persistencia para clientes. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un cliente nuevo. name_normalized se deriva del nombre para
// que la búsqueda ignore tildes y mayúsculas.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name, textutil.Normalize(client.Name), client.Email, client.Phone,
		client.Type, client.RequiresInvoice, client.TaxID, client.PaymentMethod,
		client.Status, client.Plan, client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	c, err := scanClient(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// Update actualiza todos los campos editables del cliente.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients
		SET name = $2, name_normalized = $3, email = $4, phone = $5, type = $6,
		    requires_invoice = $7, tax_id = $8, payment_method = $9, status = $10,
		    plan = $11, updated_at = $12
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name, textutil.Normalize(client.Name), client.Email, client.Phone,
		client.Type, client.RequiresInvoice, client.TaxID, client.PaymentMethod,
		client.Status, client.Plan, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista clientes ordenados por nombre.
func (r *ClientRepo) List(limit, offset int) ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	return collectClients(rows)
}

// Search filtra por nombre normalizado: "Café" encuentra "cafe" y viceversa.
func (r *ClientRepo) Search(q string, limit, offset int) ([]*entity.Client, error) {
	query := `
		SELECT ` + clientColumns + ` FROM clients
		WHERE name_normalized LIKE '%' || $1 || '%'
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, textutil.Normalize(q), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search clients: %w", err)
	}
	defer rows.Close()
	return collectClients(rows)
}

// Delete elimina un cliente.
func (r *ClientRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	var normalized string
	err := row.Scan(
		&c.ID, &c.Name, &normalized, &c.Email, &c.Phone, &c.Type, &c.RequiresInvoice,
		&c.TaxID, &c.PaymentMethod, &c.Status, &c.Plan, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func collectClients(rows pgx.Rows) ([]*entity.Client, error) {
	var clients []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}
