package entity

import "time"

// ActivityCategory categoría de una entrada del registro de actividad.
type ActivityCategory string

const (
	ActivityProduct ActivityCategory = "product"
	ActivityCompany ActivityCategory = "company"
	ActivityVehicle ActivityCategory = "vehicle"
	ActivityUser    ActivityCategory = "user"
	ActivityAlert   ActivityCategory = "alert"
)

// ActivityStatus resultado asociado a la entrada.
type ActivityStatus string

const (
	ActivitySuccess ActivityStatus = "success"
	ActivityWarning ActivityStatus = "warning"
	ActivityInfo    ActivityStatus = "info"
	ActivityErr     ActivityStatus = "error"
)

// Activity entrada del registro de auditoría (append-only). El store retiene
// solo las de los últimos 10 días, con un tope de 20 entradas.
type Activity struct {
	ID        string           `json:"id"` // UUID
	Category  ActivityCategory `json:"type"`
	Message   string           `json:"message"`
	Status    ActivityStatus   `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
}
