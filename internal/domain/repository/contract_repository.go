package repository

import "github.com/agenciaflow/agencia-api/internal/domain/entity"

// ContractRepository puerto de persistencia para contratos.
type ContractRepository interface {
	Create(contract *entity.Contract) error
	GetByID(id string) (*entity.Contract, error)
	Update(contract *entity.Contract) error
	ListByClient(clientID string, limit, offset int) ([]*entity.Contract, error)
	List(limit, offset int) ([]*entity.Contract, error)
	Delete(id string) error
}
