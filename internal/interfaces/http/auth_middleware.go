package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/agenciaflow/agencia-api/internal/application/dto"
	"github.com/agenciaflow/agencia-api/pkg/jwt"
)

// Locals keys para la identidad del colaborador en Fiber.
const (
	LocalUserID     = "user_id"
	LocalEmail      = "email"
	LocalRole       = "role"
	LocalSuperAdmin = "super_admin"
)

// AuthMiddleware valida el Bearer Token JWT y extrae la identidad a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		data, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, data.UserID)
		c.Locals(LocalEmail, data.Email)
		c.Locals(LocalRole, data.Role)
		c.Locals(LocalSuperAdmin, data.SuperAdmin)
		return c.Next()
	}
}

// GetActor devuelve la identidad del colaborador autenticado (después del
// middleware de auth). Actor.ID vacío significa sin autenticar.
func GetActor(c *fiber.Ctx) dto.Actor {
	actor := dto.Actor{}
	if v, ok := c.Locals(LocalUserID).(string); ok {
		actor.ID = v
	}
	if v, ok := c.Locals(LocalEmail).(string); ok {
		actor.Email = v
	}
	if v, ok := c.Locals(LocalRole).(string); ok {
		actor.Role = v
	}
	if v, ok := c.Locals(LocalSuperAdmin).(bool); ok {
		actor.SuperAdmin = v
	}
	return actor
}
