package response

import (
	"time"

	"proposal_catalog/internal/domain/entities"
)

type CityResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	State       string    `json:"state"`
	ClientCount int       `json:"client_count"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromCity(c entities.City, clientCount int) CityResponse {
	return CityResponse{
		ID:          c.ID,
		Name:        c.Name,
		State:       c.State,
		ClientCount: clientCount,
		CreatedAt:   c.CreatedAt,
	}
}

type ClientResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	CityID        *string   `json:"city_id"`
	ProposalCount int       `json:"proposal_count"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromClient(c entities.Client, proposalCount int) ClientResponse {
	return ClientResponse{
		ID:            c.ID,
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		CityID:        c.CityID,
		ProposalCount: proposalCount,
		CreatedAt:     c.CreatedAt,
	}
}

type AddOnResponse struct {
	ID              string  `json:"id"`
	ProductID       string  `json:"product_id"`
	Name            string  `json:"name"`
	AdditionalPrice float64 `json:"additional_price"`
}

func FromAddOn(a entities.AddOn) AddOnResponse {
	return AddOnResponse{
		ID:              a.ID,
		ProductID:       a.ProductID,
		Name:            a.Name,
		AdditionalPrice: a.AdditionalPrice,
	}
}

type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	BasePrice   float64         `json:"base_price"`
	Description string          `json:"description"`
	AddOns      []AddOnResponse `json:"add_ons"`
	CreatedAt   time.Time       `json:"created_at"`
}

func FromProduct(p entities.Product) ProductResponse {
	out := ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		BasePrice:   p.BasePrice,
		Description: p.Description,
		AddOns:      make([]AddOnResponse, 0, len(p.AddOns)),
		CreatedAt:   p.CreatedAt,
	}
	for _, a := range p.AddOns {
		out.AddOns = append(out.AddOns, FromAddOn(a))
	}
	return out
}

func FromProducts(ps []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProduct(p))
	}
	return out
}

// CatalogResponse is the full reference-data snapshot used to render the console.
type CatalogResponse struct {
	Cities   []CityResponse    `json:"cities"`
	Clients  []ClientResponse  `json:"clients"`
	Products []ProductResponse `json:"products"`
}

// FromCatalog attaches per-city client counts. proposalCounts may be nil.
func FromCatalog(c entities.Catalog, proposalCounts map[string]int) CatalogResponse {
	clientCounts := c.ClientCountByCity()
	out := CatalogResponse{
		Cities:   make([]CityResponse, 0, len(c.Cities)),
		Clients:  make([]ClientResponse, 0, len(c.Clients)),
		Products: FromProducts(c.Products),
	}
	for _, city := range c.Cities {
		out.Cities = append(out.Cities, FromCity(city, clientCounts[city.ID]))
	}
	for _, client := range c.Clients {
		out.Clients = append(out.Clients, FromClient(client, proposalCounts[client.ID]))
	}
	return out
}
