package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/groundnut-admin/internal/application/dto"
	"github.com/tu-usuario/groundnut-admin/internal/domain/metrics"
	"github.com/tu-usuario/groundnut-admin/internal/store"
)

// ActivityHandler registro de actividad reciente.
type ActivityHandler struct {
	store *store.Store
}

// NewActivityHandler construye el handler de actividad.
func NewActivityHandler(s *store.Store) *ActivityHandler {
	return &ActivityHandler{store: s}
}

// List devuelve el registro con la marca relativa formateada.
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	now := time.Now()
	activities := h.store.Activities()
	out := make([]dto.ActivityDTO, 0, len(activities))
	for _, a := range activities {
		out = append(out, dto.ActivityDTO{
			ID:       a.ID,
			Category: string(a.Category),
			Message:  a.Message,
			Status:   string(a.Status),
			TimeAgo:  metrics.TimeAgo(a.CreatedAt, now),
		})
	}
	return c.JSON(out)
}
