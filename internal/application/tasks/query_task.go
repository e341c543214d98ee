package tasks

import (
	"github.com/agenciaflow/agencia-api/internal/application/dto"
	"github.com/agenciaflow/agencia-api/internal/domain/entity"
	"github.com/agenciaflow/agencia-api/internal/domain/repository"
)

// TaskQueryUseCase lecturas de tareas para los paneles.
type TaskQueryUseCase struct {
	taskRepo repository.TaskRepository
}

// NewTaskQueryUseCase construye el caso de uso de consulta.
func NewTaskQueryUseCase(taskRepo repository.TaskRepository) *TaskQueryUseCase {
	return &TaskQueryUseCase{taskRepo: taskRepo}
}

// GetByID obtiene una tarea por ID.
func (uc *TaskQueryUseCase) GetByID(id string) (*dto.TaskResponse, error) {
	task, err := uc.taskRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, nil
	}
	return ToTaskResponse(task), nil
}

// ListByBrand lista tareas de una marca.
func (uc *TaskQueryUseCase) ListByBrand(brandID string, limit, offset int) (*dto.TaskListResponse, error) {
	tasks, err := uc.taskRepo.ListByBrand(brandID, limit, offset)
	if err != nil {
		return nil, err
	}
	return taskList(tasks, limit, offset), nil
}

// ListByStatus lista tareas por estado.
func (uc *TaskQueryUseCase) ListByStatus(status string, limit, offset int) (*dto.TaskListResponse, error) {
	tasks, err := uc.taskRepo.ListByStatus(status, limit, offset)
	if err != nil {
		return nil, err
	}
	return taskList(tasks, limit, offset), nil
}

// ListByAssignee lista tareas asignadas a un colaborador (panel freelance).
func (uc *TaskQueryUseCase) ListByAssignee(collaboratorID string, limit, offset int) (*dto.TaskListResponse, error) {
	tasks, err := uc.taskRepo.ListByAssignee(collaboratorID, limit, offset)
	if err != nil {
		return nil, err
	}
	return taskList(tasks, limit, offset), nil
}

// Delete elimina una tarea.
func (uc *TaskQueryUseCase) Delete(id string) error {
	return uc.taskRepo.Delete(id)
}

func taskList(tasks []*entity.Task, limit, offset int) *dto.TaskListResponse {
	items := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, *ToTaskResponse(t))
	}
	return &dto.TaskListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}
