package tasks

import "github.com/agenciaflow/agencia-api/internal/domain/entity"

// PlanResolver traduce el plan de un cliente al límite de tareas activas por
// marca. Es inyectable para poder cambiar la política sin tocar el caso de uso.
type PlanResolver func(plan string) int

// Límites de tareas activas por marca según plan.
const (
	basicTaskLimit      = 50
	premiumTaskLimit    = 100
	enterpriseTaskLimit = 250
)

// DefaultPlanLimits resuelve el límite según el plan del cliente.
// Un plan desconocido o vacío resuelve al límite del plan basic.
func DefaultPlanLimits(plan string) int {
	switch plan {
	case entity.PlanPremium:
		return premiumTaskLimit
	case entity.PlanEnterprise:
		return enterpriseTaskLimit
	default:
		return basicTaskLimit
	}
}
