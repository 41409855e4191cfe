package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/groundnut-admin/internal/application/dto"
	"github.com/tu-usuario/groundnut-admin/internal/domain"
	"github.com/tu-usuario/groundnut-admin/internal/domain/entity"
	"github.com/tu-usuario/groundnut-admin/internal/store"
)

// ProductHandler CRUD de lotes de maní.
type ProductHandler struct {
	store *store.Store
}

// NewProductHandler construye el handler de lotes.
func NewProductHandler(s *store.Store) *ProductHandler {
	return &ProductHandler{store: s}
}

// List devuelve todos los lotes.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.store.Products())
}

// Create registra un lote recibido con todos sus efectos derivados.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	products, err := h.store.AddProduct(entity.Product{
		CompanyID:    in.CompanyID,
		VehicleID:    in.VehicleID,
		SlipNumber:   in.SlipNumber,
		PurchaseDate: in.PurchaseDate,
		Bag:          in.Bag,
		Price:        in.Price,
		Weight:       in.Weight,
		NetWeight:    in.NetWeight,
		TotalPrice:   in.TotalPrice,
		FinalPrice:   in.FinalPrice,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingReference) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "MISSING_REFERENCE", Message: "empresa o vehículo referenciado no existe"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(products[len(products)-1])
}

// Update aplica un patch parcial.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	h.store.UpdateProduct(id, store.ProductPatch{
		CompanyID:    in.CompanyID,
		VehicleID:    in.VehicleID,
		SlipNumber:   in.SlipNumber,
		PurchaseDate: in.PurchaseDate,
		Bag:          in.Bag,
		Price:        in.Price,
		Weight:       in.Weight,
		NetWeight:    in.NetWeight,
		TotalPrice:   in.TotalPrice,
		FinalPrice:   in.FinalPrice,
	})
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete elimina por id; las transacciones asociadas permanecen.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	h.store.DeleteProduct(id)
	return c.SendStatus(fiber.StatusNoContent)
}
