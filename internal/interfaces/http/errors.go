package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/inventario-stock/internal/application/dto"
)

// internalError responde 500 con mensaje legible y el detalle técnico en `error`.
// El eco del detalle es aceptable en una herramienta interna (ver notas de diseño).
func internalError(c *fiber.Ctx, err error) error {
	log.Error().Str("path", c.Path()).Err(err).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNAL",
		Message: "error del servidor",
		Error:   err.Error(),
	})
}
