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

var _ repository.ResourceRepository = (*ResourceRepo)(nil)

const resourceColumns = `id, task_id, brand_id, name, type, status, uploaded_by, review_notes, file_url, file_path, external_url, platform, description, created_at, updated_at`

// ResourceRepo implementación del puerto ResourceRepository sobre PostgreSQL (usable con pool o tx).
type ResourceRepo struct {
	q Querier
}

// NewResourceRepository construye el adaptador de persistencia para recursos. Pasar pool o tx (Querier).
func NewResourceRepository(q Querier) *ResourceRepo {
	return &ResourceRepo{q: q}
}

// Create persiste un recurso nuevo.
func (r *ResourceRepo) Create(res *entity.Resource) error {
	query := `
		INSERT INTO resources (` + resourceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		res.ID, nullIfEmpty(res.TaskID), res.BrandID, res.Name, res.Type, res.Status,
		res.UploadedBy, res.ReviewNotes, res.FileURL, res.FilePath, res.ExternalURL,
		res.Platform, res.Description, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert resource: %w", err)
	}
	return nil
}

// GetByID obtiene un recurso por ID.
func (r *ResourceRepo) GetByID(id string) (*entity.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE id = $1`
	res, err := scanResource(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get resource: %w", err)
	}
	return res, nil
}

// UpdateReview actualiza estado y observaciones de revisión en una sola escritura.
func (r *ResourceRepo) UpdateReview(id, status, notes string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE resources SET status = $2, review_notes = $3, updated_at = $4 WHERE id = $1`,
		id, status, notes, time.Now())
	if err != nil {
		return fmt.Errorf("update resource review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByTask lista los recursos de una tarea.
func (r *ResourceRepo) ListByTask(taskID string) ([]*entity.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE task_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, taskID)
	if err != nil {
		return nil, fmt.Errorf("list resources by task: %w", err)
	}
	defer rows.Close()
	return collectResources(rows)
}

// ListByBrand lista los recursos de una marca, los más recientes primero.
func (r *ResourceRepo) ListByBrand(brandID string, limit, offset int) ([]*entity.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE brand_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, brandID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list resources by brand: %w", err)
	}
	defer rows.Close()
	return collectResources(rows)
}

// ListByStatus lista recursos por estado de revisión (cola de pendientes).
func (r *ResourceRepo) ListByStatus(status string, limit, offset int) ([]*entity.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE status = $1 ORDER BY created_at LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list resources by status: %w", err)
	}
	defer rows.Close()
	return collectResources(rows)
}

// Delete elimina un recurso. El historial de revisión se conserva (sin FK cascade).
func (r *ResourceRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete resource: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanResource(row pgx.Row) (*entity.Resource, error) {
	var res entity.Resource
	var taskID *string
	err := row.Scan(
		&res.ID, &taskID, &res.BrandID, &res.Name, &res.Type, &res.Status,
		&res.UploadedBy, &res.ReviewNotes, &res.FileURL, &res.FilePath, &res.ExternalURL,
		&res.Platform, &res.Description, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if taskID != nil {
		res.TaskID = *taskID
	}
	return &res, nil
}

func collectResources(rows pgx.Rows) ([]*entity.Resource, error) {
	var resources []*entity.Resource
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("scan resource: %w", err)
		}
		resources = append(resources, res)
	}
	return resources, rows.Err()
}
