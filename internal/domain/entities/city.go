package entities

import "time"

// City is a catalog city. State is a two-letter region code (SP, RJ, ...).
type City struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
}
