package dto

// LoginRequest credenciales de acceso al panel.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token firmado más el perfil del usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse perfil público de un usuario (nunca incluye el hash).
type UserResponse struct {
	ID       int64  `json:"id"`
	UserName string `json:"user_name"`
	Email    string `json:"email_address"`
	Role     string `json:"type"`
	Status   bool   `json:"status"`
}
