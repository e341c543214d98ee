package repository

import "github.com/agenciaflow/agencia-api/internal/domain/entity"

// TaskRepository puerto de persistencia para tareas.
type TaskRepository interface {
	Create(task *entity.Task) error
	GetByID(id string) (*entity.Task, error)
	Update(task *entity.Task) error
	UpdateStatus(id, status string) error
	ListByBrand(brandID string, limit, offset int) ([]*entity.Task, error)
	ListByStatus(status string, limit, offset int) ([]*entity.Task, error)
	ListByAssignee(collaboratorID string, limit, offset int) ([]*entity.Task, error)
	// CountActiveByBrand cuenta tareas de la marca en estados no terminales
	// (todo excepto entregado). Se usa para el límite de tareas del plan.
	CountActiveByBrand(brandID string) (int, error)
	Delete(id string) error
}
