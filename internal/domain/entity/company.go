package entity

import "time"

// Company empresa comercializadora de maní. LocationID referencia a una City;
// al eliminar la ciudad la referencia se anula (limpieza referencial, no cascada).
type Company struct {
	ID           int64     `json:"id"`
	RemoteID     string    `json:"remote_id,omitempty"`
	Name         string    `json:"name"`
	LocationID   *int64    `json:"location_id"`
	LocationName string    `json:"location_name,omitempty"`
	Status       bool      `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
