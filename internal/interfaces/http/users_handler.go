package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/groundnut-admin/internal/application/dto"
	"github.com/tu-usuario/groundnut-admin/internal/domain"
	"github.com/tu-usuario/groundnut-admin/internal/domain/entity"
	"github.com/tu-usuario/groundnut-admin/internal/store"
)

// UserHandler CRUD de usuarios del panel.
type UserHandler struct {
	store *store.Store
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(s *store.Store) *UserHandler {
	return &UserHandler{store: s}
}

// List devuelve todos los usuarios (sin el hash de password).
func (h *UserHandler) List(c *fiber.Ctx) error {
	users := h.store.Users()
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserResponse{
			ID:       u.ID,
			UserName: u.UserName,
			Email:    u.Email,
			Role:     string(u.Role),
			Status:   u.Status,
		})
	}
	return c.JSON(out)
}

// Create registra un usuario nuevo; el password se almacena como hash bcrypt.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password es requerido"})
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	users, err := h.store.AddUser(entity.User{
		UserName:     in.UserName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entity.Role(in.Role),
		CountryCode:  in.CountryCode,
		Mobile:       in.Mobile,
		Status:       in.Status,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	created := users[len(users)-1]
	return c.Status(fiber.StatusCreated).JSON(dto.UserResponse{
		ID:       created.ID,
		UserName: created.UserName,
		Email:    created.Email,
		Role:     string(created.Role),
		Status:   created.Status,
	})
}

// Update aplica un patch parcial.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	patch := store.UserPatch{
		UserName:    in.UserName,
		Email:       in.Email,
		CountryCode: in.CountryCode,
		Mobile:      in.Mobile,
		Status:      in.Status,
	}
	if in.Role != nil {
		role := entity.Role(*in.Role)
		patch.Role = &role
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		hashed := string(hash)
		patch.PasswordHash = &hashed
	}
	h.store.UpdateUser(id, patch)
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete elimina por id.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	h.store.DeleteUser(id)
	return c.SendStatus(fiber.StatusNoContent)
}

// parseID extrae el :id numérico de la ruta.
func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
