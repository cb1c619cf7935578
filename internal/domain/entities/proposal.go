package entities

import "time"

// ProposalStatus represents the lifecycle of a commercial proposal (proposta).
type ProposalStatus string

const (
	ProposalStatusPendente  ProposalStatus = "pendente"
	ProposalStatusAprovada  ProposalStatus = "aprovada"
	ProposalStatusRejeitada ProposalStatus = "rejeitada"
)

// StartDateLayout is the only accepted start date format.
// Dates are compared as strings, so they must stay fixed-width.
const StartDateLayout = "2006-01-02"

// Proposal links a Client to a Product with a quantity and a set of add-ons.
//
// Total is derived by the pricing engine when the proposal is created and is
// never edited directly.
type Proposal struct {
	ID               string         `json:"id"`
	ClientID         string         `json:"client_id"`
	ProductID        string         `json:"product_id"`
	Quantity         int            `json:"quantity"`
	StartDate        string         `json:"start_date"`
	SelectedAddOnIDs []string       `json:"selected_add_on_ids"`
	Total            float64        `json:"total"`
	Status           ProposalStatus `json:"status"`
	Notes            string         `json:"notes"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}
