package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agenciaflow/agencia-api/internal/domain"
	"github.com/agenciaflow/agencia-api/internal/domain/entity"
	"github.com/agenciaflow/agencia-api/internal/domain/repository"
)

var _ repository.ContractRepository = (*ContractRepo)(nil)

const contractColumns = `id, client_id, brand_id, title, description, monthly_amount, status, start_date, end_date, signed_at, created_by, created_at, updated_at`

// ContractRepo implementación del puerto ContractRepository sobre PostgreSQL (usable con pool o tx).
type ContractRepo struct {
	q Querier
}

// NewContractRepository construye el adaptador de persistencia para contratos. Pasar pool o tx (Querier).
func NewContractRepository(q Querier) *ContractRepo {
	return &ContractRepo{q: q}
}

// Create persiste un contrato nuevo.
func (r *ContractRepo) Create(contract *entity.Contract) error {
	query := `
		INSERT INTO contracts (` + contractColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		contract.ID, contract.ClientID, nullIfEmpty(contract.BrandID), contract.Title,
		contract.Description, contract.MonthlyAmount, contract.Status, contract.StartDate,
		contract.EndDate, contract.SignedAt, contract.CreatedBy, contract.CreatedAt, contract.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert contract: %w", err)
	}
	return nil
}

// GetByID obtiene un contrato por ID.
func (r *ContractRepo) GetByID(id string) (*entity.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE id = $1`
	c, err := scanContract(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contract: %w", err)
	}
	return c, nil
}

// Update actualiza los campos editables del contrato.
func (r *ContractRepo) Update(contract *entity.Contract) error {
	query := `
		UPDATE contracts
		SET title = $2, description = $3, monthly_amount = $4, status = $5,
		    start_date = $6, end_date = $7, signed_at = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		contract.ID, contract.Title, contract.Description, contract.MonthlyAmount,
		contract.Status, contract.StartDate, contract.EndDate, contract.SignedAt, contract.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update contract: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByClient lista contratos de un cliente.
func (r *ContractRepo) ListByClient(clientID string, limit, offset int) ([]*entity.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE client_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, clientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list contracts by client: %w", err)
	}
	defer rows.Close()
	return collectContracts(rows)
}

// List lista todos los contratos.
func (r *ContractRepo) List(limit, offset int) ([]*entity.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()
	return collectContracts(rows)
}

// Delete elimina un contrato.
func (r *ContractRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM contracts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contract: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanContract(row pgx.Row) (*entity.Contract, error) {
	var c entity.Contract
	var brandID *string
	err := row.Scan(
		&c.ID, &c.ClientID, &brandID, &c.Title, &c.Description, &c.MonthlyAmount,
		&c.Status, &c.StartDate, &c.EndDate, &c.SignedAt, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if brandID != nil {
		c.BrandID = *brandID
	}
	return &c, nil
}

func collectContracts(rows pgx.Rows) ([]*entity.Contract, error) {
	var contracts []*entity.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		contracts = append(contracts, c)
	}
	return contracts, rows.Err()
}
