package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/solnascente/frontdesk-api/internal/application/dto"
)

// RequireRole devuelve un middleware Fiber que exige uno de los roles dados.
// Debe usarse DESPUÉS de AuthMiddleware (necesita LocalRole).
//
// Comportamiento:
//   - 403 Forbidden → el rol del token no está en la lista.
//   - Si no hay rol en el contexto, responde 401 (el AuthMiddleware debería haberlo puesto).
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_ROLE",
				Message: "rol no encontrado en el token",
			})
		}

		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "el rol '" + role + "' no tiene acceso a este recurso",
		})
	}
}
