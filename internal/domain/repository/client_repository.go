package repository

import "github.com/agenciaflow/agencia-api/internal/domain/entity"

// ClientRepository puerto de persistencia para clientes.
// Las búsquedas devuelven (nil, nil) cuando no existe el registro.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	Update(client *entity.Client) error
	List(limit, offset int) ([]*entity.Client, error)
	// Search filtra por nombre normalizado (sin tildes, sin mayúsculas).
	Search(query string, limit, offset int) ([]*entity.Client, error)
	Delete(id string) error
}
