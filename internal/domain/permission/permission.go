// Package permission implementa el modelo de permisos por rol de la agencia.
//
// La decisión es una función pura sobre (rol, permiso, sujeto): no consulta la
// base de datos ni tiene efectos secundarios, y cualquier entrada ausente o
// desconocida degrada a "denegado" en lugar de fallar.
package permission

import "strings"

// Role es el rol asignado a un colaborador.
type Role string

const (
	RoleDirector      Role = "director"
	RoleAdministrador Role = "administrador"
	RoleOperador      Role = "operador"
	RoleFreelance     Role = "freelance"
)

// Key es una capacidad concreta consultable en la matriz de permisos.
type Key string

const (
	CanManageUsers             Key = "canManageUsers"
	EditAll                    Key = "editAll"
	EditBranding               Key = "editBranding"
	CreateTasks                Key = "createTasks"
	CanChangePasswordsDirectly Key = "canChangePasswordsDirectly"
)

// AllKeys enumera todas las claves de la matriz, en orden estable (para tests y seeds).
var AllKeys = []Key{CanManageUsers, EditAll, EditBranding, CreateTasks, CanChangePasswordsDirectly}

// Subject es la identidad mínima que necesita el checker para decidir:
// el email (para la allow-list) y la bandera de metadata de super admin.
type Subject struct {
	Email      string
	SuperAdmin bool
}

// Matrix es la tabla rol → permiso → permitido. Inmutable después de construirse.
type Matrix map[Role]map[Key]bool

// DefaultMatrix devuelve la matriz contractual de la agencia:
//
//	director:      todo permitido
//	administrador: todo permitido excepto canChangePasswordsDirectly
//	operador:      todo denegado
//	freelance:     todo denegado
//
// Otros componentes dependen de esta tabla exacta; los tests la verifican celda a celda.
func DefaultMatrix() Matrix {
	return Matrix{
		RoleDirector: {
			CanManageUsers:             true,
			EditAll:                    true,
			EditBranding:               true,
			CreateTasks:                true,
			CanChangePasswordsDirectly: true,
		},
		RoleAdministrador: {
			CanManageUsers:             true,
			EditAll:                    true,
			EditBranding:               true,
			CreateTasks:                true,
			CanChangePasswordsDirectly: false,
		},
		RoleOperador: {
			CanManageUsers:             false,
			EditAll:                    false,
			EditBranding:               false,
			CreateTasks:                false,
			CanChangePasswordsDirectly: false,
		},
		RoleFreelance: {
			CanManageUsers:             false,
			EditAll:                    false,
			EditBranding:               false,
			CreateTasks:                false,
			CanChangePasswordsDirectly: false,
		},
	}
}

// Checker evalúa permisos contra una matriz fija y una allow-list de super admins.
// Se construye una vez en el arranque y se inyecta donde haga falta.
type Checker struct {
	matrix           Matrix
	superAdminEmails map[string]struct{}
}

// NewChecker construye el checker. La allow-list viene de configuración
// (AUTH_SUPER_ADMIN_EMAILS); los emails se comparan sin distinguir mayúsculas.
func NewChecker(matrix Matrix, superAdminEmails []string) *Checker {
	allow := make(map[string]struct{}, len(superAdminEmails))
	for _, e := range superAdminEmails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			allow[e] = struct{}{}
		}
	}
	return &Checker{matrix: matrix, superAdminEmails: allow}
}

// HasPermission decide si el sujeto con el rol dado tiene el permiso pedido.
//
// Orden de evaluación:
//  1. Bypass de super admin: bandera de metadata O email en la allow-list
//     (OR lógico de dos predicados independientes). Concede incondicionalmente.
//  2. Rol ausente o desconocido → false.
//  3. Celda de la matriz; clave ausente → false.
func (c *Checker) HasPermission(role Role, key Key, subject Subject) bool {
	if c.isSuperAdmin(subject) {
		return true
	}
	perms, ok := c.matrix[role]
	if !ok {
		return false
	}
	return perms[key]
}

func (c *Checker) isSuperAdmin(subject Subject) bool {
	if subject.SuperAdmin {
		return true
	}
	_, ok := c.superAdminEmails[strings.ToLower(strings.TrimSpace(subject.Email))]
	return ok
}
