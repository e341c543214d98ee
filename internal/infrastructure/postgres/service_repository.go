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

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

const serviceColumns = `id, name, description, category, base_price, active, created_at, updated_at`

// ServiceRepo implementación del puerto ServiceRepository sobre PostgreSQL (usable con pool o tx).
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository construye el adaptador de persistencia del catálogo. Pasar pool o tx (Querier).
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

// Create persiste un servicio del catálogo.
func (r *ServiceRepo) Create(service *entity.Service) error {
	query := `
		INSERT INTO services (` + serviceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		service.ID, service.Name, service.Description, service.Category,
		service.BasePrice, service.Active, service.CreatedAt, service.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// GetByID obtiene un servicio por ID.
func (r *ServiceRepo) GetByID(id string) (*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`
	var s entity.Service
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.Description, &s.Category, &s.BasePrice, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &s, nil
}

// Update actualiza un servicio del catálogo.
func (r *ServiceRepo) Update(service *entity.Service) error {
	query := `
		UPDATE services
		SET name = $2, description = $3, category = $4, base_price = $5, active = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		service.ID, service.Name, service.Description, service.Category,
		service.BasePrice, service.Active, service.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista el catálogo; con onlyActive filtra servicios desactivados.
func (r *ServiceRepo) List(onlyActive bool, limit, offset int) ([]*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE ($1 = false OR active) ORDER BY category, name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, onlyActive, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var services []*entity.Service
	for rows.Next() {
		var s entity.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Category, &s.BasePrice, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		services = append(services, &s)
	}
	return services, rows.Err()
}

// Delete elimina un servicio del catálogo.
func (r *ServiceRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
