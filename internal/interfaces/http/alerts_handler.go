package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/groundnut-admin/internal/application/dto"
	"github.com/tu-usuario/groundnut-admin/internal/domain/entity"
	"github.com/tu-usuario/groundnut-admin/internal/domain/metrics"
	"github.com/tu-usuario/groundnut-admin/internal/store"
)

// AlertHandler feed de alertas del sistema.
type AlertHandler struct {
	store *store.Store
}

// NewAlertHandler construye el handler de alertas.
func NewAlertHandler(s *store.Store) *AlertHandler {
	return &AlertHandler{store: s}
}

// List devuelve el feed visible: sin resolver, ventana de 10 días, tope 25,
// más recientes primero. Con ?all=true devuelve la colección completa.
func (h *AlertHandler) List(c *fiber.Ctx) error {
	alerts := h.store.Alerts()
	if c.QueryBool("all") {
		return c.JSON(alerts)
	}
	return c.JSON(metrics.VisibleAlerts(alerts, time.Now()))
}

// Create agrega una alerta manual (origen user).
func (h *AlertHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAlertRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	alertType := entity.AlertType(in.Type)
	switch alertType {
	case entity.AlertWarning, entity.AlertError, entity.AlertInfo:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser warning, error o info"})
	}
	if in.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "message es requerido"})
	}
	alerts := h.store.AddAlert(entity.SystemAlert{Type: alertType, Message: in.Message})
	return c.Status(fiber.StatusCreated).JSON(alerts[len(alerts)-1])
}

// Resolve marca una alerta como resuelta (transición monótona).
func (h *AlertHandler) Resolve(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	h.store.ResolveAlert(id)
	return c.SendStatus(fiber.StatusNoContent)
}
