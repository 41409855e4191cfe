package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/groundnut-admin/internal/application/dto"
	"github.com/tu-usuario/groundnut-admin/internal/domain"
	"github.com/tu-usuario/groundnut-admin/internal/domain/entity"
	"github.com/tu-usuario/groundnut-admin/internal/store"
)

// OrderHandler CRUD de pedidos y alta de transacciones manuales.
type OrderHandler struct {
	store *store.Store
}

// NewOrderHandler construye el handler de pedidos.
func NewOrderHandler(s *store.Store) *OrderHandler {
	return &OrderHandler{store: s}
}

// List devuelve todos los pedidos.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.store.Orders())
}

// Create registra un pedido sobre un lote existente.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	orders, err := h.store.AddOrder(entity.Order{
		ProductID: in.ProductID,
		Status:    entity.OrderStatus(in.Status),
		Amount:    in.Amount,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingReference) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "MISSING_REFERENCE", Message: "el lote referenciado no existe"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(orders[len(orders)-1])
}

// Update aplica un patch parcial.
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	patch := store.OrderPatch{ProductID: in.ProductID, Amount: in.Amount}
	if in.Status != nil {
		status := entity.OrderStatus(*in.Status)
		patch.Status = &status
	}
	h.store.UpdateOrder(id, patch)
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete elimina por id.
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	h.store.DeleteOrder(id)
	return c.SendStatus(fiber.StatusNoContent)
}

// ListTransactions devuelve los movimientos financieros.
func (h *OrderHandler) ListTransactions(c *fiber.Ctx) error {
	return c.JSON(h.store.Transactions())
}

// CreateTransaction registra un movimiento manual.
func (h *OrderHandler) CreateTransaction(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	txs, err := h.store.AddTransaction(entity.Transaction{
		Type:        entity.TransactionType(in.Type),
		Amount:      in.Amount,
		Description: in.Description,
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo de transacción inválido"})
	}
	return c.Status(fiber.StatusCreated).JSON(txs[len(txs)-1])
}
