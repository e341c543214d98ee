package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/agenciaflow/agencia-api/internal/domain"
	"github.com/agenciaflow/agencia-api/internal/domain/entity"
	"github.com/agenciaflow/agencia-api/internal/domain/repository"
)

var _ repository.CollaboratorRepository = (*CollaboratorRepo)(nil)

const collaboratorColumns = `id, name, email, password_hash, role, status, has_system_access, is_active, super_admin, compensation_mode, weekly_salary, base_activity_rate, created_at, updated_at`

// CollaboratorRepo implementación del puerto CollaboratorRepository sobre PostgreSQL.
type CollaboratorRepo struct {
	q Querier
}

// NewCollaboratorRepository construye el adaptador de persistencia para colaboradores. Pasar pool o tx (Querier).
func NewCollaboratorRepository(q Querier) *CollaboratorRepo {
	return &CollaboratorRepo{q: q}
}

// Create persiste un colaborador nuevo. El email tiene constraint único.
func (r *CollaboratorRepo) Create(c *entity.Collaborator) error {
	query := `
		INSERT INTO collaborators (` + collaboratorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Email, c.PasswordHash, c.Role, c.Status, c.HasSystemAccess,
		c.IsActive, c.SuperAdmin, c.CompensationMode, c.WeeklySalary, c.BaseActivityRate,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert collaborator: %w", err)
	}
	return nil
}

// GetByID obtiene un colaborador por ID.
func (r *CollaboratorRepo) GetByID(id string) (*entity.Collaborator, error) {
	query := `SELECT ` + collaboratorColumns + ` FROM collaborators WHERE id = $1`
	c, err := scanCollaborator(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get collaborator: %w", err)
	}
	return c, nil
}

// GetByEmail obtiene un colaborador por email (login).
func (r *CollaboratorRepo) GetByEmail(email string) (*entity.Collaborator, error) {
	query := `SELECT ` + collaboratorColumns + ` FROM collaborators WHERE LOWER(email) = LOWER($1)`
	c, err := scanCollaborator(r.q.QueryRow(context.Background(), query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get collaborator by email: %w", err)
	}
	return c, nil
}

// Update actualiza el colaborador completo salvo el hash de contraseña,
// que solo cambia por UpdatePasswordHash.
func (r *CollaboratorRepo) Update(c *entity.Collaborator) error {
	query := `
		UPDATE collaborators
		SET name = $2, email = $3, role = $4, status = $5, has_system_access = $6,
		    is_active = $7, super_admin = $8, compensation_mode = $9,
		    weekly_salary = $10, base_activity_rate = $11, updated_at = $12
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Email, c.Role, c.Status, c.HasSystemAccess,
		c.IsActive, c.SuperAdmin, c.CompensationMode, c.WeeklySalary, c.BaseActivityRate,
		c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update collaborator: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdatePasswordHash cambia el hash de contraseña (cambio directo de dirección).
func (r *CollaboratorRepo) UpdatePasswordHash(id, passwordHash string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE collaborators SET password_hash = $2, updated_at = $3 WHERE id = $1`,
		id, passwordHash, time.Now())
	if err != nil {
		return fmt.Errorf("update password hash: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista colaboradores.
func (r *CollaboratorRepo) List(limit, offset int) ([]*entity.Collaborator, error) {
	query := `SELECT ` + collaboratorColumns + ` FROM collaborators ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list collaborators: %w", err)
	}
	defer rows.Close()
	return collectCollaborators(rows)
}

// ListByStatus lista colaboradores por estado (panel de aprobaciones pendientes).
func (r *CollaboratorRepo) ListByStatus(status string, limit, offset int) ([]*entity.Collaborator, error) {
	query := `SELECT ` + collaboratorColumns + ` FROM collaborators WHERE status = $1 ORDER BY created_at LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list collaborators by status: %w", err)
	}
	defer rows.Close()
	return collectCollaborators(rows)
}

// Delete elimina un colaborador.
func (r *CollaboratorRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM collaborators WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete collaborator: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanCollaborator(row pgx.Row) (*entity.Collaborator, error) {
	var c entity.Collaborator
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.PasswordHash, &c.Role, &c.Status, &c.HasSystemAccess,
		&c.IsActive, &c.SuperAdmin, &c.CompensationMode, &c.WeeklySalary, &c.BaseActivityRate,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func collectCollaborators(rows pgx.Rows) ([]*entity.Collaborator, error) {
	var collaborators []*entity.Collaborator
	for rows.Next() {
		c, err := scanCollaborator(rows)
		if err != nil {
			return nil, fmt.Errorf("scan collaborator: %w", err)
		}
		collaborators = append(collaborators, c)
	}
	return collaborators, rows.Err()
}
