package entity

import "time"

// City ciudad/región. Referenciada por Company; base de la agregación regional.
type City struct {
	ID        int64     `json:"id"`
	RemoteID  string    `json:"remote_id,omitempty"`
	Name      string    `json:"name"`
	Status    bool      `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
