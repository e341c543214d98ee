package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de contrato.
const (
	ContractStatusBorrador  = "borrador"
	ContractStatusEnviado   = "enviado"
	ContractStatusFirmado   = "firmado"
	ContractStatusCancelado = "cancelado"
)

// Contract es un acuerdo comercial con un cliente: servicios pactados,
// monto mensual y vigencia. Puede exportarse como PDF.
type Contract struct {
	ID            string
	ClientID      string
	BrandID       string // opcional: contrato ligado a una marca específica
	Title         string
	Description   string
	MonthlyAmount decimal.Decimal
	Status        string // borrador, enviado, firmado, cancelado
	StartDate     time.Time
	EndDate       time.Time
	SignedAt      *time.Time
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
