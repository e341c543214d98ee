package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agenciaflow/agencia-api/internal/application/dto"
	"github.com/agenciaflow/agencia-api/internal/domain/permission"
)

// RequirePermission devuelve un middleware Fiber que verifica el permiso del
// rol del token contra la matriz. Debe usarse DESPUÉS de AuthMiddleware.
//
// Es un guard de rutas grueso: los casos de uso vuelven a verificar el permiso
// que les corresponde, así un refactor de rutas no abre agujeros.
func RequirePermission(checker *permission.Checker, key permission.Key) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := GetActor(c)
		if actor.ID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "identidad no encontrada en el token",
			})
		}
		subject := permission.Subject{Email: actor.Email, SuperAdmin: actor.SuperAdmin}
		if !checker.HasPermission(permission.Role(actor.Role), key, subject) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "el rol '" + actor.Role + "' no tiene el permiso '" + string(key) + "'",
			})
		}
		return c.Next()
	}
}
