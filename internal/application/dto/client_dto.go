package dto

import "time"

// CreateClientRequest alta de cliente.
type CreateClientRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Type            string `json:"type"` // empresa, persona
	RequiresInvoice bool   `json:"requires_invoice"`
	TaxID           string `json:"tax_id"`
	PaymentMethod   string `json:"payment_method"`
	Plan            string `json:"plan"`
}

// UpdateClientRequest actualización parcial de cliente.
type UpdateClientRequest struct {
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	RequiresInvoice *bool   `json:"requires_invoice"`
	TaxID           *string `json:"tax_id"`
	PaymentMethod   *string `json:"payment_method"`
	Status          *string `json:"status"`
	Plan            *string `json:"plan"`
}

// ClientResponse representación de un cliente.
type ClientResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Type            string    `json:"type"`
	RequiresInvoice bool      `json:"requires_invoice"`
	TaxID           string    `json:"tax_id,omitempty"`
	PaymentMethod   string    `json:"payment_method"`
	Status          string    `json:"status"`
	Plan            string    `json:"plan"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ClientListResponse listado paginado.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
