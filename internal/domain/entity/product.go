package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product lote de maní recibido (identificado por número de remisión).
// Pesos en kilogramos y montos en rupias; ambos con decimal para evitar
// errores de flotante en las agregaciones.
type Product struct {
	ID            int64           `json:"id"`
	RemoteID      string          `json:"remote_id,omitempty"`
	CompanyID     int64           `json:"company_id"`
	CompanyName   string          `json:"company_name,omitempty"`
	VehicleID     int64           `json:"vehicle_id"`
	VehicleNumber string          `json:"vehicle_number,omitempty"`
	SlipNumber    string          `json:"slip_number"` // identificador de negocio, único
	PurchaseDate  string          `json:"purchase_date"`
	Bag           int             `json:"bag"`
	Price         decimal.Decimal `json:"price"`      // precio unitario
	Weight        decimal.Decimal `json:"weight"`     // peso bruto (kg)
	NetWeight     decimal.Decimal `json:"net_weight"` // peso neto (kg)
	TotalPrice    decimal.Decimal `json:"total_price"`
	FinalPrice    decimal.Decimal `json:"final_price"`
	CreatedAt     time.Time       `json:"created_at"`
}
