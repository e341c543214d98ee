package repository

import "github.com/agenciaflow/agencia-api/internal/domain/entity"

// ServiceRepository puerto de persistencia para el catálogo de servicios.
type ServiceRepository interface {
	Create(service *entity.Service) error
	GetByID(id string) (*entity.Service, error)
	Update(service *entity.Service) error
	List(onlyActive bool, limit, offset int) ([]*entity.Service, error)
	Delete(id string) error
}

// PriceOverrideRepository puerto para precios pactados por cliente.
type PriceOverrideRepository interface {
	Upsert(override *entity.PriceOverride) error
	// GetByClientAndService devuelve (nil, nil) si el cliente no tiene precio pactado.
	GetByClientAndService(clientID, serviceID string) (*entity.PriceOverride, error)
	ListByClient(clientID string) ([]*entity.PriceOverride, error)
	Delete(clientID, serviceID string) error
}
