package repository

import "github.com/agenciaflow/agencia-api/internal/domain/entity"

// ResourceRepository puerto de persistencia para recursos.
type ResourceRepository interface {
	Create(resource *entity.Resource) error
	GetByID(id string) (*entity.Resource, error)
	// UpdateReview actualiza estado y observaciones de revisión en una sola escritura.
	UpdateReview(id, status, notes string) error
	ListByTask(taskID string) ([]*entity.Resource, error)
	ListByBrand(brandID string, limit, offset int) ([]*entity.Resource, error)
	ListByStatus(status string, limit, offset int) ([]*entity.Resource, error)
	Delete(id string) error
}

// ReviewHistoryRepository puerto para el historial de revisión (append-only:
// solo Create y lecturas; no existe Update ni Delete por diseño).
type ReviewHistoryRepository interface {
	Create(entry *entity.ResourceReviewHistory) error
	ListByResource(resourceID string) ([]*entity.ResourceReviewHistory, error)
}
