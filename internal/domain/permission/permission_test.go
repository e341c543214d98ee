package permission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agenciaflow/agencia-api/internal/domain/permission"
)

// ──────────────────────────────────────────────────────────────────────────────
// La matriz por defecto es contractual: el frontend y los guards de rutas
// dependen de estas celdas exactas, así que se verifican una por una.
// ──────────────────────────────────────────────────────────────────────────────

func TestDefaultMatrix_CeldaPorCelda(t *testing.T) {
	checker := permission.NewChecker(permission.DefaultMatrix(), nil)
	nadie := permission.Subject{}

	cases := []struct {
		role permission.Role
		key  permission.Key
		want bool
	}{
		{permission.RoleDirector, permission.CanManageUsers, true},
		{permission.RoleDirector, permission.EditAll, true},
		{permission.RoleDirector, permission.EditBranding, true},
		{permission.RoleDirector, permission.CreateTasks, true},
		{permission.RoleDirector, permission.CanChangePasswordsDirectly, true},

		{permission.RoleAdministrador, permission.CanManageUsers, true},
		{permission.RoleAdministrador, permission.EditAll, true},
		{permission.RoleAdministrador, permission.EditBranding, true},
		{permission.RoleAdministrador, permission.CreateTasks, true},
		{permission.RoleAdministrador, permission.CanChangePasswordsDirectly, false},

		{permission.RoleOperador, permission.CanManageUsers, false},
		{permission.RoleOperador, permission.EditAll, false},
		{permission.RoleOperador, permission.EditBranding, false},
		{permission.RoleOperador, permission.CreateTasks, false},
		{permission.RoleOperador, permission.CanChangePasswordsDirectly, false},

		{permission.RoleFreelance, permission.CanManageUsers, false},
		{permission.RoleFreelance, permission.EditAll, false},
		{permission.RoleFreelance, permission.EditBranding, false},
		{permission.RoleFreelance, permission.CreateTasks, false},
		{permission.RoleFreelance, permission.CanChangePasswordsDirectly, false},
	}

	for _, tc := range cases {
		got := checker.HasPermission(tc.role, tc.key, nadie)
		assert.Equal(t, tc.want, got, "rol %s, permiso %s", tc.role, tc.key)
	}
}

func TestHasPermission_BypassPorBandera(t *testing.T) {
	checker := permission.NewChecker(permission.DefaultMatrix(), nil)
	flagged := permission.Subject{Email: "freelance@agencia.co", SuperAdmin: true}

	// La bandera de metadata concede todo, incluso con el rol más restringido.
	for _, key := range permission.AllKeys {
		assert.True(t, checker.HasPermission(permission.RoleFreelance, key, flagged),
			"la bandera super_admin debe conceder %s", key)
	}
}

func TestHasPermission_BypassPorAllowList(t *testing.T) {
	checker := permission.NewChecker(permission.DefaultMatrix(), []string{"Direccion@Agencia.co"})

	// El email se compara sin distinguir mayúsculas ni espacios.
	listed := permission.Subject{Email: "  direccion@agencia.co "}
	for _, key := range permission.AllKeys {
		assert.True(t, checker.HasPermission(permission.RoleOperador, key, listed),
			"la allow-list debe conceder %s", key)
	}

	otro := permission.Subject{Email: "otro@agencia.co"}
	assert.False(t, checker.HasPermission(permission.RoleOperador, permission.EditAll, otro),
		"un email fuera de la allow-list no recibe bypass")
}

func TestHasPermission_EntradasDesconocidasDenegadas(t *testing.T) {
	checker := permission.NewChecker(permission.DefaultMatrix(), nil)
	nadie := permission.Subject{}

	assert.False(t, checker.HasPermission("becario", permission.EditAll, nadie),
		"rol desconocido degrada a denegado")
	assert.False(t, checker.HasPermission(permission.RoleDirector, "volar", nadie),
		"permiso desconocido degrada a denegado")
	assert.False(t, checker.HasPermission("", "", nadie),
		"entradas vacías degradan a denegado")
}

func TestHasPermission_MatrizParcialNoRevienta(t *testing.T) {
	// Una matriz sin filas para un rol se comporta como todo denegado.
	parcial := permission.Matrix{
		permission.RoleDirector: {permission.EditAll: true},
	}
	checker := permission.NewChecker(parcial, nil)
	nadie := permission.Subject{}

	assert.True(t, checker.HasPermission(permission.RoleDirector, permission.EditAll, nadie))
	assert.False(t, checker.HasPermission(permission.RoleDirector, permission.CreateTasks, nadie),
		"clave ausente en la fila → denegado")
	assert.False(t, checker.HasPermission(permission.RoleOperador, permission.EditAll, nadie),
		"rol ausente en la matriz → denegado")
}
