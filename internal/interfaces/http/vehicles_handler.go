package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/groundnut-admin/internal/application/dto"
	"github.com/tu-usuario/groundnut-admin/internal/domain"
	"github.com/tu-usuario/groundnut-admin/internal/domain/entity"
	"github.com/tu-usuario/groundnut-admin/internal/store"
)

// VehicleHandler CRUD de vehículos de carga.
type VehicleHandler struct {
	store *store.Store
}

// NewVehicleHandler construye el handler de vehículos.
func NewVehicleHandler(s *store.Store) *VehicleHandler {
	return &VehicleHandler{store: s}
}

// List devuelve todos los vehículos.
func (h *VehicleHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.store.Vehicles())
}

// Create agrega un vehículo; si nace inactivo queda pendiente de aprobación.
func (h *VehicleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVehicleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	vehicles, err := h.store.AddVehicle(entity.Vehicle{
		Number:    in.Number,
		CompanyID: in.CompanyID,
		Status:    in.Status,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingReference) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "MISSING_REFERENCE", Message: "la empresa referenciada no existe"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(vehicles[len(vehicles)-1])
}

// Update aplica un patch parcial; un cambio de status dispara la alerta de
// transición correspondiente.
func (h *VehicleHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	var in dto.UpdateVehicleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	h.store.UpdateVehicle(id, store.VehiclePatch{
		Number:    in.Number,
		CompanyID: in.CompanyID,
		Status:    in.Status,
	})
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete elimina por id.
func (h *VehicleHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	h.store.DeleteVehicle(id)
	return c.SendStatus(fiber.StatusNoContent)
}
