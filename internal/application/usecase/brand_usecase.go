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

// BrandUseCase aplica reglas de negocio para marcas.
type BrandUseCase struct {
	repo       repository.BrandRepository
	clientRepo repository.ClientRepository
}

// NewBrandUseCase construye el caso de uso.
func NewBrandUseCase(repo repository.BrandRepository, clientRepo repository.ClientRepository) *BrandUseCase {
	return &BrandUseCase{repo: repo, clientRepo: clientRepo}
}

// Create valida que el cliente exista y persiste la marca.
func (uc *BrandUseCase) Create(in dto.CreateBrandRequest) (*dto.BrandResponse, error) {
	ve := domain.NewValidationError()
	if in.ClientID == "" {
		ve.Add("client_id", "client_id es requerido")
	}
	if strings.TrimSpace(in.Name) == "" {
		ve.Add("name", "name es requerido")
	}
	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	brand := &entity.Brand{
		ID:                 uuid.New().String(),
		ClientID:           in.ClientID,
		Name:               strings.TrimSpace(in.Name),
		Industry:           in.Industry,
		Website:            in.Website,
		ManagesSocialMedia: in.ManagesSocialMedia,
		SocialNetworks:     in.SocialNetworks,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(brand); err != nil {
		return nil, err
	}
	return toBrandResponse(brand), nil
}

// GetByID obtiene una marca por ID.
func (uc *BrandUseCase) GetByID(id string) (*dto.BrandResponse, error) {
	brand, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, nil
	}
	return toBrandResponse(brand), nil
}

// Update aplica un parche a la marca.
func (uc *BrandUseCase) Update(id string, in dto.UpdateBrandRequest) (*dto.BrandResponse, error) {
	brand, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, nil
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		brand.Name = strings.TrimSpace(*in.Name)
	}
	if in.Industry != nil {
		brand.Industry = *in.Industry
	}
	if in.Website != nil {
		brand.Website = *in.Website
	}
	if in.ManagesSocialMedia != nil {
		brand.ManagesSocialMedia = *in.ManagesSocialMedia
	}
	if in.SocialNetworks != nil {
		brand.SocialNetworks = *in.SocialNetworks
	}
	brand.UpdatedAt = time.Now()
	if err := uc.repo.Update(brand); err != nil {
		return nil, err
	}
	return toBrandResponse(brand), nil
}

// ListByClient lista las marcas de un cliente.
func (uc *BrandUseCase) ListByClient(clientID string, limit, offset int) (*dto.BrandListResponse, error) {
	brands, err := uc.repo.ListByClient(clientID, limit, offset)
	if err != nil {
		return nil, err
	}
	return brandList(brands, limit, offset), nil
}

// List lista todas las marcas.
func (uc *BrandUseCase) List(limit, offset int) (*dto.BrandListResponse, error) {
	brands, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return brandList(brands, limit, offset), nil
}

// Delete elimina una marca.
func (uc *BrandUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func brandList(brands []*entity.Brand, limit, offset int) *dto.BrandListResponse {
	items := make([]dto.BrandResponse, 0, len(brands))
	for _, b := range brands {
		items = append(items, *toBrandResponse(b))
	}
	return &dto.BrandListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

func toBrandResponse(b *entity.Brand) *dto.BrandResponse {
	if b == nil {
		return nil
	}
	return &dto.BrandResponse{
		ID:                 b.ID,
		ClientID:           b.ClientID,
		Name:               b.Name,
		Industry:           b.Industry,
		Website:            b.Website,
		ManagesSocialMedia: b.ManagesSocialMedia,
		SocialNetworks:     b.SocialNetworks,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}
