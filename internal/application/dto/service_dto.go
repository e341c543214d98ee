package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateServiceRequest alta de servicio en el catálogo.
type CreateServiceRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	BasePrice   decimal.Decimal `json:"base_price"`
}

// UpdateServiceRequest actualización parcial de servicio.
type UpdateServiceRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	BasePrice   *decimal.Decimal `json:"base_price"`
	Active      *bool            `json:"active"`
}

// ServiceResponse representación de un servicio.
type ServiceResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	BasePrice   decimal.Decimal `json:"base_price"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ServiceListResponse listado paginado.
type ServiceListResponse struct {
	Items []ServiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// SetPriceOverrideRequest fija el precio pactado cliente × servicio.
type SetPriceOverrideRequest struct {
	ClientID  string          `json:"client_id"`
	ServiceID string          `json:"service_id"`
	Price     decimal.Decimal `json:"price"`
}

// PriceOverrideResponse precio pactado de un cliente para un servicio.
type PriceOverrideResponse struct {
	ClientID  string          `json:"client_id"`
	ServiceID string          `json:"service_id"`
	Price     decimal.Decimal `json:"price"`
}
