package tasks

import (
	"context"

	"github.com/agenciaflow/agencia-api/internal/domain/repository"
)

// TxRunner ejecuta la creación masiva de tareas dentro de una transacción:
// o se crean todas o ninguna.
type TxRunner interface {
	RunTasks(ctx context.Context, fn func(taskRepo repository.TaskRepository) error) error
}
