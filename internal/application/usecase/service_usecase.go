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

// ServiceUseCase gestiona el catálogo de servicios y los precios pactados por
// cliente.
type ServiceUseCase struct {
	repo         repository.ServiceRepository
	overrideRepo repository.PriceOverrideRepository
	clientRepo   repository.ClientRepository
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(
	repo repository.ServiceRepository,
	overrideRepo repository.PriceOverrideRepository,
	clientRepo repository.ClientRepository,
) *ServiceUseCase {
	return &ServiceUseCase{repo: repo, overrideRepo: overrideRepo, clientRepo: clientRepo}
}

// Create da de alta un servicio en el catálogo.
func (uc *ServiceUseCase) Create(in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	ve := domain.NewValidationError()
	if strings.TrimSpace(in.Name) == "" {
		ve.Add("name", "name es requerido")
	}
	if in.BasePrice.IsNegative() {
		ve.Add("base_price", "base_price no puede ser negativo")
	}
	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	now := time.Now()
	service := &entity.Service{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Category:    in.Category,
		BasePrice:   in.BasePrice,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// GetByID obtiene un servicio por ID.
func (uc *ServiceUseCase) GetByID(id string) (*dto.ServiceResponse, error) {
	service, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, nil
	}
	return toServiceResponse(service), nil
}

// Update aplica un parche al servicio.
func (uc *ServiceUseCase) Update(id string, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	service, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, nil
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		service.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		service.Description = *in.Description
	}
	if in.Category != nil {
		service.Category = *in.Category
	}
	if in.BasePrice != nil {
		if in.BasePrice.IsNegative() {
			ve := domain.NewValidationError()
			ve.Add("base_price", "base_price no puede ser negativo")
			return nil, ve
		}
		service.BasePrice = *in.BasePrice
	}
	if in.Active != nil {
		service.Active = *in.Active
	}
	service.UpdatedAt = time.Now()
	if err := uc.repo.Update(service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// List lista servicios del catálogo.
func (uc *ServiceUseCase) List(onlyActive bool, limit, offset int) (*dto.ServiceListResponse, error) {
	services, err := uc.repo.List(onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		items = append(items, *toServiceResponse(s))
	}
	return &dto.ServiceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un servicio del catálogo.
func (uc *ServiceUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// SetOverride fija el precio pactado cliente × servicio (upsert).
func (uc *ServiceUseCase) SetOverride(in dto.SetPriceOverrideRequest) (*dto.PriceOverrideResponse, error) {
	ve := domain.NewValidationError()
	if in.ClientID == "" {
		ve.Add("client_id", "client_id es requerido")
	}
	if in.ServiceID == "" {
		ve.Add("service_id", "service_id es requerido")
	}
	if in.Price.IsNegative() {
		ve.Add("price", "price no puede ser negativo")
	}
	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	service, err := uc.repo.GetByID(in.ServiceID)
	if err != nil {
		return nil, err
	}
	if client == nil || service == nil {
		return nil, domain.ErrNotFound
	}

	override := &entity.PriceOverride{
		ID:        uuid.New().String(),
		ClientID:  in.ClientID,
		ServiceID: in.ServiceID,
		Price:     in.Price,
		CreatedAt: time.Now(),
	}
	if err := uc.overrideRepo.Upsert(override); err != nil {
		return nil, err
	}
	return &dto.PriceOverrideResponse{
		ClientID:  override.ClientID,
		ServiceID: override.ServiceID,
		Price:     override.Price,
	}, nil
}

// ListOverrides lista los precios pactados de un cliente.
func (uc *ServiceUseCase) ListOverrides(clientID string) ([]dto.PriceOverrideResponse, error) {
	overrides, err := uc.overrideRepo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PriceOverrideResponse, 0, len(overrides))
	for _, o := range overrides {
		out = append(out, dto.PriceOverrideResponse{
			ClientID:  o.ClientID,
			ServiceID: o.ServiceID,
			Price:     o.Price,
		})
	}
	return out, nil
}

// DeleteOverride elimina el precio pactado de un cliente para un servicio.
func (uc *ServiceUseCase) DeleteOverride(clientID, serviceID string) error {
	return uc.overrideRepo.Delete(clientID, serviceID)
}

func toServiceResponse(s *entity.Service) *dto.ServiceResponse {
	if s == nil {
		return nil
	}
	return &dto.ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Category:    s.Category,
		BasePrice:   s.BasePrice,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
