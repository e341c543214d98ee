package entity

import "time"

// Tipos de cliente.
const (
	ClientTypeEmpresa = "empresa"
	ClientTypePersona = "persona"
)

// Estados de cliente.
const (
	ClientStatusActivo     = "activo"
	ClientStatusPausado    = "pausado"
	ClientStatusSuspendido = "suspendido"
)

// Planes contratables. El plan determina el límite de tareas activas por marca.
const (
	PlanBasic      = "basic"
	PlanPremium    = "premium"
	PlanEnterprise = "enterprise"
)

// Client representa un cliente de la agencia (empresa o persona natural).
// Invariante: si RequiresInvoice es true, TaxID no puede estar vacío.
type Client struct {
	ID              string
	Name            string
	Email           string
	Phone           string
	Type            string // empresa, persona
	RequiresInvoice bool
	TaxID           string // NIT o cédula; obligatorio si RequiresInvoice
	PaymentMethod   string
	Status          string // activo, pausado, suspendido
	Plan            string // basic, premium, enterprise
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsActive indica si el cliente puede recibir nuevas tareas.
func (c *Client) IsActive() bool { return c.Status == ClientStatusActivo }
