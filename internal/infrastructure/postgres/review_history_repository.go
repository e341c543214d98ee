package postgres

import (
	"context"
	"fmt"

	"github.com/agenciaflow/agencia-api/internal/domain/entity"
	"github.com/agenciaflow/agencia-api/internal/domain/repository"
)

var _ repository.ReviewHistoryRepository = (*ReviewHistoryRepo)(nil)

// ReviewHistoryRepo implementación del puerto ReviewHistoryRepository sobre PostgreSQL.
// La tabla es append-only: no existe Update ni Delete.
type ReviewHistoryRepo struct {
	q Querier
}

// NewReviewHistoryRepository construye el adaptador del historial de revisión. Pasar pool o tx (Querier).
func NewReviewHistoryRepository(q Querier) *ReviewHistoryRepo {
	return &ReviewHistoryRepo{q: q}
}

// Create inserta una entrada de historial.
func (r *ReviewHistoryRepo) Create(entry *entity.ResourceReviewHistory) error {
	query := `
		INSERT INTO resource_review_history (id, resource_id, old_status, new_status, notes, reviewed_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ResourceID, entry.OldStatus, entry.NewStatus,
		entry.Notes, entry.ReviewedBy, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert review history: %w", err)
	}
	return nil
}

// ListByResource lista el historial de un recurso en orden cronológico.
func (r *ReviewHistoryRepo) ListByResource(resourceID string) ([]*entity.ResourceReviewHistory, error) {
	query := `
		SELECT id, resource_id, old_status, new_status, notes, reviewed_by, created_at
		FROM resource_review_history WHERE resource_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, resourceID)
	if err != nil {
		return nil, fmt.Errorf("list review history: %w", err)
	}
	defer rows.Close()

	var entries []*entity.ResourceReviewHistory
	for rows.Next() {
		var e entity.ResourceReviewHistory
		if err := rows.Scan(&e.ID, &e.ResourceID, &e.OldStatus, &e.NewStatus, &e.Notes, &e.ReviewedBy, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review history: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
