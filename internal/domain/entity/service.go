package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service es un ítem del catálogo de servicios de la agencia con precio base.
type Service struct {
	ID          string
	Name        string
	Description string
	Category    string // diseño, audiovisual, social-media, web...
	BasePrice   decimal.Decimal
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PriceOverride es un precio pactado por cliente para un servicio del catálogo.
// Tiene prioridad sobre Service.BasePrice al resolver el precio de una tarea.
type PriceOverride struct {
	ID        string
	ClientID  string
	ServiceID string
	Price     decimal.Decimal
	CreatedAt time.Time
}
