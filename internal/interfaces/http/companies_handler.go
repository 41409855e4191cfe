package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/groundnut-admin/internal/application/dto"
	"github.com/tu-usuario/groundnut-admin/internal/domain"
	"github.com/tu-usuario/groundnut-admin/internal/domain/entity"
	"github.com/tu-usuario/groundnut-admin/internal/store"
)

// CompanyHandler CRUD de empresas comercializadoras.
type CompanyHandler struct {
	store *store.Store
}

// NewCompanyHandler construye el handler de empresas.
func NewCompanyHandler(s *store.Store) *CompanyHandler {
	return &CompanyHandler{store: s}
}

// List devuelve todas las empresas.
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.store.Companies())
}

// Create agrega una empresa.
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	companies, err := h.store.AddCompany(entity.Company{
		Name:       in.Name,
		LocationID: in.LocationID,
		Status:     in.Status,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingReference) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "MISSING_REFERENCE", Message: "la ciudad referenciada no existe"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(companies[len(companies)-1])
}

// Update aplica un patch parcial.
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	h.store.UpdateCompany(id, store.CompanyPatch{
		Name:       in.Name,
		LocationID: in.LocationID,
		Status:     in.Status,
	})
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete elimina por id.
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	h.store.DeleteCompany(id)
	return c.SendStatus(fiber.StatusNoContent)
}
