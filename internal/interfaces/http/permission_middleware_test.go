package http_test

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenciaflow/agencia-api/internal/application/dto"
	"github.com/agenciaflow/agencia-api/internal/domain/permission"
	apihttp "github.com/agenciaflow/agencia-api/internal/interfaces/http"
	"github.com/agenciaflow/agencia-api/pkg/jwt"
)

// newGuardedApp protege una ruta con auth + el permiso indicado.
func newGuardedApp(key permission.Key) *fiber.App {
	checker := permission.NewChecker(permission.DefaultMatrix(), []string{"direccion@agencia.co"})
	app := fiber.New()
	app.Post("/guarded",
		apihttp.AuthMiddleware(testSecret),
		apihttp.RequirePermission(checker, key),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	return app
}

func guardedRequest(t *testing.T, app *fiber.App, data jwt.TokenData) *nethttp.Response {
	t.Helper()
	token, err := jwt.Generate(testSecret, data, "agencia", 30)
	require.NoError(t, err)
	req := httptest.NewRequest(nethttp.MethodPost, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestRequirePermission_RolConPermiso(t *testing.T) {
	app := newGuardedApp(permission.CreateTasks)

	resp := guardedRequest(t, app, jwt.TokenData{UserID: "co-1", Role: "administrador"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequirePermission_RolSinPermiso(t *testing.T) {
	app := newGuardedApp(permission.CreateTasks)

	resp := guardedRequest(t, app, jwt.TokenData{UserID: "co-1", Role: "freelance"})
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var errResp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	resp.Body.Close()
	assert.Equal(t, "FORBIDDEN", errResp.Code)
	assert.Contains(t, errResp.Message, "freelance")
	assert.Contains(t, errResp.Message, "createTasks")
}

func TestRequirePermission_AdministradorNoCambiaContrasenas(t *testing.T) {
	app := newGuardedApp(permission.CanChangePasswordsDirectly)

	resp := guardedRequest(t, app, jwt.TokenData{UserID: "co-1", Role: "administrador"})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequirePermission_BypassDeSuperAdmin(t *testing.T) {
	app := newGuardedApp(permission.CanManageUsers)

	// Por bandera en el token.
	resp := guardedRequest(t, app, jwt.TokenData{UserID: "co-1", Role: "freelance", SuperAdmin: true})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Por email en la allow-list de configuración.
	resp = guardedRequest(t, app, jwt.TokenData{UserID: "co-2", Role: "operador", Email: "Direccion@Agencia.co"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
