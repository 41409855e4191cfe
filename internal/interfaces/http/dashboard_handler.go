package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/groundnut-admin/internal/application/reports"
)

// DashboardHandler resumen y analítica del panel.
type DashboardHandler struct {
	reports *reports.Service
}

// NewDashboardHandler construye el handler del panel.
func NewDashboardHandler(svc *reports.Service) *DashboardHandler {
	return &DashboardHandler{reports: svc}
}

// Summary agregados del panel principal sobre el snapshot actual.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.reports.Summary())
}

// Regional desempeño por región.
func (h *DashboardHandler) Regional(c *fiber.Ctx) error {
	return c.JSON(h.reports.Regional())
}
