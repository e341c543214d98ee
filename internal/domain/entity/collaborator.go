package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles válidos para Collaborator.
const (
	RoleDirector      = "director"
	RoleAdministrador = "administrador"
	RoleOperador      = "operador"
	RoleFreelance     = "freelance"
)

// Estados del ciclo de vida de un colaborador.
const (
	CollaboratorPendingEmail    = "pending_email_confirmation"
	CollaboratorPendingApproval = "pending_approval"
	CollaboratorApproved        = "approved"
	CollaboratorRejected        = "rejected"
)

// Modos de compensación.
const (
	CompensationInternal   = "internal"   // salario semanal fijo
	CompensationFreelancer = "freelancer" // tarifa base por actividad
)

// Collaborator es un trabajador interno o freelance de la agencia.
// El acceso al sistema (HasSystemAccess) solo puede otorgarse cuando
// Status == approved; la aprobación la hace un usuario con canManageUsers.
type Collaborator struct {
	ID               string
	Name             string
	Email            string
	PasswordHash     string // bcrypt, nunca en claro después de persistir
	Role             string // director, administrador, operador, freelance
	Status           string // pending_email_confirmation, pending_approval, approved, rejected
	HasSystemAccess  bool
	IsActive         bool
	SuperAdmin       bool   // bandera de metadata para el bypass de permisos
	CompensationMode string // internal, freelancer
	WeeklySalary     decimal.Decimal
	BaseActivityRate decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CanLogin indica si el colaborador puede iniciar sesión.
func (c *Collaborator) CanLogin() bool {
	return c.Status == CollaboratorApproved && c.HasSystemAccess && c.IsActive
}
