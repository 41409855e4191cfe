package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/groundnut-admin/internal/application/dto"
	"github.com/tu-usuario/groundnut-admin/internal/store"
	"github.com/tu-usuario/groundnut-admin/pkg/jwt"
)

// AuthHandler maneja el login contra los usuarios del store.
type AuthHandler struct {
	store      *store.Store
	jwtSecret  string
	jwtIssuer  string
	jwtExpMins int
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(s *store.Store, secret, issuer string, expMinutes int) *AuthHandler {
	return &AuthHandler{store: s, jwtSecret: secret, jwtIssuer: issuer, jwtExpMins: expMinutes}
}

// Login valida credenciales con bcrypt y devuelve el token firmado.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}

	for _, u := range h.store.Users() {
		if !strings.EqualFold(u.Email, in.Email) {
			continue
		}
		if !u.Status {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "cuenta inactiva"})
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
			break
		}
		token, err := jwt.Generate(h.jwtSecret, u.ID, string(u.Role), h.jwtIssuer, h.jwtExpMins)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(dto.LoginResponse{
			Token: token,
			User: dto.UserResponse{
				ID:       u.ID,
				UserName: u.UserName,
				Email:    u.Email,
				Role:     string(u.Role),
				Status:   u.Status,
			},
		})
	}
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
}
