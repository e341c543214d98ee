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

var _ repository.TaskRepository = (*TaskRepo)(nil)

const taskColumns = `id, client_id, brand_id, service_id, title, description, status, priority, request_date, due_date, assigned_to, price, custom_price, created_by, created_at, updated_at`

// TaskRepo implementación del puerto TaskRepository sobre PostgreSQL (usable con pool o tx).
type TaskRepo struct {
	q Querier
}

// NewTaskRepository construye el adaptador de persistencia para tareas. Pasar pool o tx (Querier).
func NewTaskRepository(q Querier) *TaskRepo {
	return &TaskRepo{q: q}
}

// Create persiste una tarea nueva.
func (r *TaskRepo) Create(task *entity.Task) error {
	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		task.ID, task.ClientID, task.BrandID, task.ServiceID, task.Title, task.Description,
		task.Status, task.Priority, task.RequestDate, task.DueDate, nullIfEmpty(task.AssignedTo),
		task.Price, task.CustomPrice, task.CreatedBy, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID obtiene una tarea por ID.
func (r *TaskRepo) GetByID(id string) (*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	t, err := scanTask(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// Update actualiza los campos editables de la tarea. El estado se cambia
// únicamente vía UpdateStatus para que pase por la máquina de estados.
func (r *TaskRepo) Update(task *entity.Task) error {
	query := `
		UPDATE tasks
		SET title = $2, description = $3, priority = $4, due_date = $5,
		    assigned_to = $6, price = $7, custom_price = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		task.ID, task.Title, task.Description, task.Priority, task.DueDate,
		nullIfEmpty(task.AssignedTo), task.Price, task.CustomPrice, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus cambia solo el estado de la tarea.
func (r *TaskRepo) UpdateStatus(id, status string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE tasks SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, time.Now())
	if err != nil {
		return fmt.Errorf("update task status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByBrand lista tareas de una marca, urgentes primero y por fecha de entrega.
func (r *TaskRepo) ListByBrand(brandID string, limit, offset int) ([]*entity.Task, error) {
	query := `
		SELECT ` + taskColumns + ` FROM tasks WHERE brand_id = $1
		ORDER BY CASE priority WHEN 'urgente' THEN 0 WHEN 'alta' THEN 1 ELSE 2 END, due_date
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, brandID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tasks by brand: %w", err)
	}
	defer rows.Close()
	return collectTasks(rows)
}

// ListByStatus lista tareas por estado (columnas del tablero).
func (r *TaskRepo) ListByStatus(status string, limit, offset int) ([]*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE status = $1 ORDER BY due_date LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tasks by status: %w", err)
	}
	defer rows.Close()
	return collectTasks(rows)
}

// ListByAssignee lista tareas asignadas a un colaborador.
func (r *TaskRepo) ListByAssignee(collaboratorID string, limit, offset int) ([]*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE assigned_to = $1 ORDER BY due_date LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, collaboratorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tasks by assignee: %w", err)
	}
	defer rows.Close()
	return collectTasks(rows)
}

// CountActiveByBrand cuenta tareas de la marca en estados no terminales.
func (r *TaskRepo) CountActiveByBrand(brandID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM tasks WHERE brand_id = $1 AND status <> $2`,
		brandID, entity.TaskStatusEntregado).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active tasks: %w", err)
	}
	return count, nil
}

// Delete elimina una tarea.
func (r *TaskRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanTask(row pgx.Row) (*entity.Task, error) {
	var t entity.Task
	var assignedTo *string
	err := row.Scan(
		&t.ID, &t.ClientID, &t.BrandID, &t.ServiceID, &t.Title, &t.Description,
		&t.Status, &t.Priority, &t.RequestDate, &t.DueDate, &assignedTo,
		&t.Price, &t.CustomPrice, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if assignedTo != nil {
		t.AssignedTo = *assignedTo
	}
	return &t, nil
}

func collectTasks(rows pgx.Rows) ([]*entity.Task, error) {
	var tasks []*entity.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// nullIfEmpty convierte "" en NULL para columnas FK opcionales.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
