package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agenciaflow/agencia-api/internal/application/review"
	"github.com/agenciaflow/agencia-api/internal/application/tasks"
	"github.com/agenciaflow/agencia-api/internal/domain/repository"
)

// Ensure TxRunner implements tasks.TxRunner and review.TxRunner.
var _ tasks.TxRunner = (*TxRunner)(nil)
var _ review.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunTasks inicia una transacción con el repo de tareas atado a la tx
// (creación masiva: o se insertan todas o ninguna).
func (r *TxRunner) RunTasks(ctx context.Context, fn func(taskRepo repository.TaskRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	taskRepo := NewTaskRepository(tx)

	if err := fn(taskRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunReview inicia una transacción con los repos de la acción de revisión:
// recurso, historial y tarea de corrección viven o mueren juntos.
func (r *TxRunner) RunReview(ctx context.Context, fn func(
	resourceRepo repository.ResourceRepository,
	historyRepo repository.ReviewHistoryRepository,
	taskRepo repository.TaskRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	resourceRepo := NewResourceRepository(tx)
	historyRepo := NewReviewHistoryRepository(tx)
	taskRepo := NewTaskRepository(tx)

	if err := fn(resourceRepo, historyRepo, taskRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
