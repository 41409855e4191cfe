package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/groundnut-admin/internal/application/dto"
	"github.com/tu-usuario/groundnut-admin/internal/domain/entity"
	"github.com/tu-usuario/groundnut-admin/internal/store"
)

// CityHandler CRUD de ciudades/regiones.
type CityHandler struct {
	store *store.Store
}

// NewCityHandler construye el handler de ciudades.
func NewCityHandler(s *store.Store) *CityHandler {
	return &CityHandler{store: s}
}

// List devuelve todas las ciudades.
func (h *CityHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.store.Cities())
}

// Create agrega una ciudad.
func (h *CityHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cities, err := h.store.AddCity(entity.City{Name: in.Name, Status: in.Status})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	return c.Status(fiber.StatusCreated).JSON(cities[len(cities)-1])
}

// Update aplica un patch parcial; el rename se propaga a las empresas.
func (h *CityHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	var in dto.UpdateCityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	h.store.UpdateCity(id, store.CityPatch{Name: in.Name, Status: in.Status})
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete elimina por id y anula las referencias de las empresas.
func (h *CityHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	h.store.DeleteCity(id)
	return c.SendStatus(fiber.StatusNoContent)
}
