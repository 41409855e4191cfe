package entity

import "time"

// Role rol de un usuario del panel.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// User usuario administrador u operador del panel. Único por email.
// PasswordHash es bcrypt; nunca se serializa hacia las respuestas HTTP.
type User struct {
	ID           int64     `json:"id"`
	RemoteID     string    `json:"remote_id,omitempty"` // UUID del datastore remoto, si proviene de un import
	UserName     string    `json:"user_name"`
	Email        string    `json:"email_address"`
	PasswordHash string    `json:"password"`
	Role         Role      `json:"type"`
	CountryCode  string    `json:"country_code"`
	Mobile       string    `json:"mobile_number"`
	Status       bool      `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
