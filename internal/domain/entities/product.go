package entities

import "time"

// AddOn is an optional extra sold with a Product.
type AddOn struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"product_id"`
	Name            string    `json:"name"`
	AdditionalPrice float64   `json:"additional_price"`
	CreatedAt       time.Time `json:"created_at"`
}

// Product is a sellable item. It owns an ordered list of add-ons.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	BasePrice   float64   `json:"base_price"`
	Description string    `json:"description"`
	AddOns      []AddOn   `json:"add_ons"`
	CreatedAt   time.Time `json:"created_at"`
}

// AddOnByID returns the add-on with the given id, if the product owns one.
func (p Product) AddOnByID(id string) (AddOn, bool) {
	for _, a := range p.AddOns {
		if a.ID == id {
			return a, true
		}
	}
	return AddOn{}, false
}
