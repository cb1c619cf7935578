package entities

import "time"

// Client belongs to at most one City.
//
// CityID is nil while no city is linked. When set it must point to an existing City.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CityID    *string   `json:"city_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// InCity reports whether the client is linked to cityID.
func (c Client) InCity(cityID string) bool {
	return c.CityID != nil && *c.CityID == cityID
}
