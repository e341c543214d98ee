package tasks

import (
	"context"
	"fmt"

	"github.com/agenciaflow/agencia-api/internal/application/dto"
	"github.com/agenciaflow/agencia-api/internal/domain"
	"github.com/agenciaflow/agencia-api/internal/domain/permission"
	"github.com/agenciaflow/agencia-api/internal/domain/repository"
	"github.com/agenciaflow/agencia-api/internal/domain/workflow"
)

// AdvanceStatusUseCase mueve una tarea por su máquina de estados. Las
// transiciones permitidas están en la tabla explícita de workflow; el panel
// solo propone transiciones válidas, pero el backend también las exige.
type AdvanceStatusUseCase struct {
	taskRepo repository.TaskRepository
	perm     *permission.Checker
}

// NewAdvanceStatusUseCase construye el caso de uso.
func NewAdvanceStatusUseCase(taskRepo repository.TaskRepository, perm *permission.Checker) *AdvanceStatusUseCase {
	return &AdvanceStatusUseCase{taskRepo: taskRepo, perm: perm}
}

// AdvanceStatus cambia el estado de la tarea si el actor tiene editAll y la
// transición está permitida por la tabla.
func (uc *AdvanceStatusUseCase) AdvanceStatus(ctx context.Context, actor dto.Actor, taskID, newStatus string) (*dto.TaskResponse, error) {
	if !uc.perm.HasPermission(permission.Role(actor.Role), permission.EditAll, subjectOf(actor)) {
		return nil, domain.ErrForbidden
	}
	if !workflow.IsTaskStatus(newStatus) {
		ve := domain.NewValidationError()
		ve.Add("status", "estado de tarea desconocido")
		return nil, ve
	}

	task, err := uc.taskRepo.GetByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	if !workflow.CanTransitionTask(task.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s → %s", domain.ErrInvalidTransition, task.Status, newStatus)
	}

	if err := uc.taskRepo.UpdateStatus(taskID, newStatus); err != nil {
		return nil, fmt.Errorf("actualizar estado: %w", err)
	}
	task.Status = newStatus
	return ToTaskResponse(task), nil
}
