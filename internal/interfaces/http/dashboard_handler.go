package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/solnascente/frontdesk-api/internal/application/dashboard"
)

// DashboardHandler sirve la vista del panel de recepción.
type DashboardHandler struct {
	uc *dashboard.UseCase
}

// NewDashboardHandler construye el handler del panel.
func NewDashboardHandler(uc *dashboard.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Overview godoc
// @Summary      Panel de habitaciones
// @Description  Habitaciones en orden numérico con estado resuelto
// @Description  (mantenimiento > ocupada > pre > libre) y sus camas.
// @Tags         dashboard
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado (MAINTENANCE, OCCUPIED, PRE, FREE)"
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	out, err := h.uc.Overview()
	if err != nil {
		return respondDomainError(c, err)
	}
	if status := c.Query("status"); status != "" {
		out = dashboard.FilterByStatus(out, status)
	}
	return c.JSON(out)
}
