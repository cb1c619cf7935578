package request

import (
	"strings"

	"proposal_catalog/internal/usecase"
)

type CityRequest struct {
	Name  string `json:"name" binding:"required"`
	State string `json:"state" binding:"required"`
}

// ClientRequest carries the selected city in CityID; the handler refuses the
// request when no city is selected.
type ClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address"`
	CityID  string `json:"city_id"`
}

func (r ClientRequest) ToInput() usecase.ClientInput {
	return usecase.ClientInput{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
		CityID:  strings.TrimSpace(r.CityID),
	}
}

type AddOnRequest struct {
	Name            string  `json:"name" binding:"required"`
	AdditionalPrice float64 `json:"additional_price"`
}

func (r AddOnRequest) ToInput() usecase.AddOnInput {
	return usecase.AddOnInput{Name: r.Name, AdditionalPrice: r.AdditionalPrice}
}

type ProductRequest struct {
	Name        string         `json:"name" binding:"required"`
	BasePrice   float64        `json:"base_price"`
	Description string         `json:"description"`
	AddOns      []AddOnRequest `json:"add_ons"`
}

// ToInput drops add-on rows left completely blank by the form.
func (r ProductRequest) ToInput() usecase.ProductInput {
	in := usecase.ProductInput{
		Name:        r.Name,
		BasePrice:   r.BasePrice,
		Description: r.Description,
		AddOns:      make([]usecase.AddOnInput, 0, len(r.AddOns)),
	}
	for _, a := range r.AddOns {
		if strings.TrimSpace(a.Name) == "" && a.AdditionalPrice == 0 {
			continue
		}
		in.AddOns = append(in.AddOns, a.ToInput())
	}
	return in
}
