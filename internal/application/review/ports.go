package review

import (
	"context"

	"github.com/agenciaflow/agencia-api/internal/domain/repository"
)

// TxRunner ejecuta la acción de revisión (actualizar recurso + historial +
// tarea de corrección) dentro de una sola transacción: si la tarea de
// corrección no puede crearse, el cambio de estado tampoco queda.
type TxRunner interface {
	RunReview(ctx context.Context, fn func(
		resourceRepo repository.ResourceRepository,
		historyRepo repository.ReviewHistoryRepository,
		taskRepo repository.TaskRepository,
	) error) error
}

// Notifier recibe avisos de resultado para el usuario. Fire-and-forget: el
// caso de uso no espera respuesta ni falla si el aviso falla.
type Notifier interface {
	Notify(ctx context.Context, event, message string)
}
