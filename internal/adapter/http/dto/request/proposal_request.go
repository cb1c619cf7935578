package request

import (
	"strings"

	"proposal_catalog/internal/domain/filtering"
	"proposal_catalog/internal/usecase"
)

type QuoteRequest struct {
	ProductID string   `json:"product_id" binding:"required"`
	Quantity  int      `json:"quantity"`
	AddOnIDs  []string `json:"add_on_ids"`
}

type ProposalRequest struct {
	ClientID         string   `json:"client_id"`
	ProductID        string   `json:"product_id" binding:"required"`
	Quantity         int      `json:"quantity"`
	StartDate        string   `json:"start_date" binding:"required"`
	SelectedAddOnIDs []string `json:"selected_add_on_ids"`
	Notes            string   `json:"notes"`
}

func (r ProposalRequest) ToInput() usecase.ProposalInput {
	return usecase.ProposalInput{
		ClientID:         strings.TrimSpace(r.ClientID),
		ProductID:        strings.TrimSpace(r.ProductID),
		Quantity:         r.Quantity,
		StartDate:        strings.TrimSpace(r.StartDate),
		SelectedAddOnIDs: r.SelectedAddOnIDs,
		Notes:            r.Notes,
	}
}

// ProposalListQuery is bound from the query string of GET /v1/proposals.
type ProposalListQuery struct {
	StartDateFrom string `form:"start_date_from"`
	ClientName    string `form:"client_name"`
	Page          int    `form:"page"`
}

func (q ProposalListQuery) Criteria() filtering.Criteria {
	return filtering.Criteria{
		StartDateFrom: strings.TrimSpace(q.StartDateFrom),
		ClientName:    strings.TrimSpace(q.ClientName),
	}
}
