package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-stock/internal/application/analytics"
)

// DashboardHandler maneja GET /inventory/dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve alertas de stock bajo, valor total del inventario y conteos.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(summary)
}
