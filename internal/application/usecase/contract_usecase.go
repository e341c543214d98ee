package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agenciaflow/agencia-api/internal/application/dto"
	"github.com/agenciaflow/agencia-api/internal/domain"
	"github.com/agenciaflow/agencia-api/internal/domain/entity"
	"github.com/agenciaflow/agencia-api/internal/domain/repository"
)

// ContractPDFGenerator genera la representación PDF de un contrato.
// La implementación vive en infrastructure/pdf (Maroto).
type ContractPDFGenerator interface {
	GenerateContractPDF(ctx context.Context, contract *entity.Contract, client *entity.Client) ([]byte, error)
}

// ContractUseCase gestiona contratos comerciales y su exportación a PDF.
type ContractUseCase struct {
	repo       repository.ContractRepository
	clientRepo repository.ClientRepository
	pdfGen     ContractPDFGenerator
}

// NewContractUseCase construye el caso de uso. pdfGen puede ser nil si la
// exportación PDF no está habilitada.
func NewContractUseCase(
	repo repository.ContractRepository,
	clientRepo repository.ClientRepository,
	pdfGen ContractPDFGenerator,
) *ContractUseCase {
	return &ContractUseCase{repo: repo, clientRepo: clientRepo, pdfGen: pdfGen}
}

// Create valida y persiste un contrato en estado borrador.
func (uc *ContractUseCase) Create(actor dto.Actor, in dto.CreateContractRequest) (*dto.ContractResponse, error) {
	ve := domain.NewValidationError()
	if in.ClientID == "" {
		ve.Add("client_id", "client_id es requerido")
	}
	if strings.TrimSpace(in.Title) == "" {
		ve.Add("title", "title es requerido")
	}
	if in.MonthlyAmount.IsNegative() {
		ve.Add("monthly_amount", "monthly_amount no puede ser negativo")
	}
	if !in.EndDate.IsZero() && !in.StartDate.IsZero() && !in.EndDate.After(in.StartDate) {
		ve.Add("end_date", "end_date debe ser posterior a start_date")
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
	contract := &entity.Contract{
		ID:            uuid.New().String(),
		ClientID:      in.ClientID,
		BrandID:       in.BrandID,
		Title:         strings.TrimSpace(in.Title),
		Description:   in.Description,
		MonthlyAmount: in.MonthlyAmount,
		Status:        entity.ContractStatusBorrador,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		CreatedBy:     actor.ID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(contract); err != nil {
		return nil, err
	}
	return toContractResponse(contract), nil
}

// GetByID obtiene un contrato por ID.
func (uc *ContractUseCase) GetByID(id string) (*dto.ContractResponse, error) {
	contract, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, nil
	}
	return toContractResponse(contract), nil
}

// Update aplica un parche al contrato. Marcarlo firmado fija SignedAt.
func (uc *ContractUseCase) Update(id string, in dto.UpdateContractRequest) (*dto.ContractResponse, error) {
	contract, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, nil
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) != "" {
		contract.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		contract.Description = *in.Description
	}
	if in.MonthlyAmount != nil {
		contract.MonthlyAmount = *in.MonthlyAmount
	}
	if in.EndDate != nil {
		contract.EndDate = *in.EndDate
	}
	if in.Status != nil && *in.Status != contract.Status {
		contract.Status = *in.Status
		if *in.Status == entity.ContractStatusFirmado {
			now := time.Now()
			contract.SignedAt = &now
		}
	}
	contract.UpdatedAt = time.Now()
	if err := uc.repo.Update(contract); err != nil {
		return nil, err
	}
	return toContractResponse(contract), nil
}

// List lista contratos; clientID opcional filtra por cliente.
func (uc *ContractUseCase) List(clientID string, limit, offset int) (*dto.ContractListResponse, error) {
	var (
		contracts []*entity.Contract
		err       error
	)
	if clientID != "" {
		contracts, err = uc.repo.ListByClient(clientID, limit, offset)
	} else {
		contracts, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		items = append(items, *toContractResponse(c))
	}
	return &dto.ContractListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un contrato.
func (uc *ContractUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// GeneratePDF genera el PDF del contrato con los datos del cliente.
func (uc *ContractUseCase) GeneratePDF(ctx context.Context, id string) ([]byte, error) {
	if uc.pdfGen == nil {
		return nil, domain.ErrConflict
	}
	contract, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, domain.ErrNotFound
	}
	client, err := uc.clientRepo.GetByID(contract.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdfGen.GenerateContractPDF(ctx, contract, client)
}

func toContractResponse(c *entity.Contract) *dto.ContractResponse {
	if c == nil {
		return nil
	}
	return &dto.ContractResponse{
		ID:            c.ID,
		ClientID:      c.ClientID,
		BrandID:       c.BrandID,
		Title:         c.Title,
		Description:   c.Description,
		MonthlyAmount: c.MonthlyAmount,
		Status:        c.Status,
		StartDate:     c.StartDate,
		EndDate:       c.EndDate,
		SignedAt:      c.SignedAt,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
