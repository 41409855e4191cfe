package entity

import "time"

// AlertType severidad de una alerta.
type AlertType string

const (
	AlertWarning AlertType = "warning"
	AlertError   AlertType = "error"
	AlertInfo    AlertType = "info"
)

// AlertOrigin procedencia de una alerta. Reemplaza la convención por rangos de
// id: la regeneración reactiva solo toca las de origen auto y preserva las de
// usuario e importadas.
type AlertOrigin string

const (
	OriginUser     AlertOrigin = "user"
	OriginImported AlertOrigin = "imported"
	OriginAuto     AlertOrigin = "auto"
)

// SystemAlert alerta del sistema. Única entidad con requisito de sincronización
// entre contextos. Resolved solo transiciona false -> true.
type SystemAlert struct {
	ID        int64       `json:"id"`
	Type      AlertType   `json:"type"`
	Message   string      `json:"message"`
	Origin    AlertOrigin `json:"origin"`
	Resolved  bool        `json:"resolved"`
	CreatedAt time.Time   `json:"created_at"`
}
