package entity

import "time"

// Vehicle vehículo de carga de una empresa. Status activo/inactivo: las
// transiciones de estado generan alertas (ver internal/domain/alerting).
type Vehicle struct {
	ID          int64     `json:"id"`
	RemoteID    string    `json:"remote_id,omitempty"`
	Number      string    `json:"number"` // placa
	CompanyID   int64     `json:"company_id"`
	CompanyName string    `json:"company_name,omitempty"`
	Status      bool      `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
