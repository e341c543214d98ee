package repository

import "github.com/agenciaflow/agencia-api/internal/domain/entity"

// CollaboratorRepository puerto de persistencia para colaboradores.
type CollaboratorRepository interface {
	Create(collaborator *entity.Collaborator) error
	GetByID(id string) (*entity.Collaborator, error)
	GetByEmail(email string) (*entity.Collaborator, error)
	Update(collaborator *entity.Collaborator) error
	UpdatePasswordHash(id, passwordHash string) error
	List(limit, offset int) ([]*entity.Collaborator, error)
	ListByStatus(status string, limit, offset int) ([]*entity.Collaborator, error)
	Delete(id string) error
}
