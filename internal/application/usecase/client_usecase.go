package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agenciaflow/agencia-api/internal/application/dto"
	"github.com/agenciaflow/agencia-api/internal/domain"
	"github.com/agenciaflow/agencia-api/internal/domain/entity"
	"github.com/agenciaflow/agencia-api/internal/domain/repository"
)

// ClientUseCase aplica reglas de negocio para clientes.
// Invariante central: si requires_invoice es true, tax_id no puede estar vacío.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso con el puerto de persistencia.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create valida y persiste un cliente nuevo.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	ve := domain.NewValidationError()
	if strings.TrimSpace(in.Name) == "" {
		ve.Add("name", "name es requerido")
	}
	if in.Type != entity.ClientTypeEmpresa && in.Type != entity.ClientTypePersona {
		ve.Add("type", "type debe ser empresa o persona")
	}
	if in.RequiresInvoice && strings.TrimSpace(in.TaxID) == "" {
		ve.Add("tax_id", "tax_id es obligatorio cuando requires_invoice es true")
	}
	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	plan := in.Plan
	if plan == "" {
		plan = entity.PlanBasic
	}
	now := time.Now()
	client := &entity.Client{
		ID:              uuid.New().String(),
		Name:            strings.TrimSpace(in.Name),
		Email:           in.Email,
		Phone:           in.Phone,
		Type:            in.Type,
		RequiresInvoice: in.RequiresInvoice,
		TaxID:           strings.TrimSpace(in.TaxID),
		PaymentMethod:   in.PaymentMethod,
		Status:          entity.ClientStatusActivo,
		Plan:            plan,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	return toClientResponse(client), nil
}

// Update aplica un parche al cliente manteniendo el invariante de facturación.
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}

	if in.Name != nil {
		client.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.RequiresInvoice != nil {
		client.RequiresInvoice = *in.RequiresInvoice
	}
	if in.TaxID != nil {
		client.TaxID = strings.TrimSpace(*in.TaxID)
	}
	if in.PaymentMethod != nil {
		client.PaymentMethod = *in.PaymentMethod
	}
	if in.Status != nil {
		client.Status = *in.Status
	}
	if in.Plan != nil {
		client.Plan = *in.Plan
	}

	ve := domain.NewValidationError()
	if client.Name == "" {
		ve.Add("name", "name no puede quedar vacío")
	}
	if client.RequiresInvoice && client.TaxID == "" {
		ve.Add("tax_id", "tax_id es obligatorio cuando requires_invoice es true")
	}
	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List lista clientes con paginación; si query no está vacío filtra por nombre
// normalizado (sin tildes).
func (uc *ClientUseCase) List(query string, limit, offset int) (*dto.ClientListResponse, error) {
	var (
		clients []*entity.Client
		err     error
	)
	if strings.TrimSpace(query) != "" {
		clients, err = uc.repo.Search(query, limit, offset)
	} else {
		clients, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		items = append(items, *toClientResponse(c))
	}
	return &dto.ClientListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un cliente.
func (uc *ClientUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:              c.ID,
		Name:            c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		Type:            c.Type,
		RequiresInvoice: c.RequiresInvoice,
		TaxID:           c.TaxID,
		PaymentMethod:   c.PaymentMethod,
		Status:          c.Status,
		Plan:            c.Plan,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
