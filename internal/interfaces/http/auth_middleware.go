package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/inventario-stock/internal/application/dto"
	"github.com/tu-usuario/inventario-stock/pkg/jwt"
)

// Local key para el UserID autenticado en Fiber.
const LocalUserID = "user_id"

// AuthMiddleware valida el Bearer Token JWT y deja el UserID en c.Locals.
// Los cuatro modos de fallo (ausente, malformado, expirado, firma inválida) devuelven
// el mismo cuerpo genérico; la distinción solo se registra en el log interno.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			log.Warn().Str("path", c.Path()).Msg("auth: header Authorization ausente")
			return unauthorized(c)
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			log.Warn().Str("path", c.Path()).Msg("auth: header Authorization malformado")
			return unauthorized(c)
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			log.Warn().Str("path", c.Path()).Msg("auth: token vacío")
			return unauthorized(c)
		}
		userID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			log.Warn().Str("path", c.Path()).Err(err).Msg("auth: token rechazado")
			return unauthorized(c)
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Code: "UNAUTHORIZED", Message: "token ausente o inválido",
	})
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
