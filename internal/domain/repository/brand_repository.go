package repository

import "github.com/agenciaflow/agencia-api/internal/domain/entity"

// BrandRepository puerto de persistencia para marcas.
type BrandRepository interface {
	Create(brand *entity.Brand) error
	GetByID(id string) (*entity.Brand, error)
	Update(brand *entity.Brand) error
	ListByClient(clientID string, limit, offset int) ([]*entity.Brand, error)
	List(limit, offset int) ([]*entity.Brand, error)
	Delete(id string) error
}
