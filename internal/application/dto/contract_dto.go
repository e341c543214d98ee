package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateContractRequest alta de contrato.
type CreateContractRequest struct {
	ClientID      string          `json:"client_id"`
	BrandID       string          `json:"brand_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	MonthlyAmount decimal.Decimal `json:"monthly_amount"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
}

// UpdateContractRequest actualización parcial de contrato.
type UpdateContractRequest struct {
	Title         *string          `json:"title"`
	Description   *string          `json:"description"`
	MonthlyAmount *decimal.Decimal `json:"monthly_amount"`
	Status        *string          `json:"status"`
	EndDate       *time.Time       `json:"end_date"`
}

// ContractResponse representación de un contrato.
type ContractResponse struct {
	ID            string          `json:"id"`
	ClientID      string          `json:"client_id"`
	BrandID       string          `json:"brand_id,omitempty"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	MonthlyAmount decimal.Decimal `json:"monthly_amount"`
	Status        string          `json:"status"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
	SignedAt      *time.Time      `json:"signed_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ContractListResponse listado paginado.
type ContractListResponse struct {
	Items []ContractResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
