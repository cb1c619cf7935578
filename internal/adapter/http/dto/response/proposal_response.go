package response

import (
	"time"

	"proposal_catalog/internal/domain/console"
	"proposal_catalog/internal/domain/entities"
	"proposal_catalog/internal/domain/filtering"
)

type ProposalResponse struct {
	ID               string    `json:"id"`
	ClientID         string    `json:"client_id"`
	ProductID        string    `json:"product_id"`
	Quantity         int       `json:"quantity"`
	StartDate        string    `json:"start_date"`
	SelectedAddOnIDs []string  `json:"selected_add_on_ids"`
	Total            float64   `json:"total"`
	Status           string    `json:"status"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	ids := p.SelectedAddOnIDs
	if ids == nil {
		ids = []string{}
	}
	return ProposalResponse{
		ID:               p.ID,
		ClientID:         p.ClientID,
		ProductID:        p.ProductID,
		Quantity:         p.Quantity,
		StartDate:        p.StartDate,
		SelectedAddOnIDs: ids,
		Total:            p.Total,
		Status:           string(p.Status),
		Notes:            p.Notes,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// ProposalPageResponse is one page of the filtered proposal list plus the
// state of the previous/next controls.
type ProposalPageResponse struct {
	Items      []ProposalResponse `json:"items"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalItems int                `json:"total_items"`
	TotalPages int                `json:"total_pages"`
	HasPrev    bool               `json:"has_prev"`
	HasNext    bool               `json:"has_next"`
}

func FromProposalPage(pg filtering.Page) ProposalPageResponse {
	nav := console.Navigation(pg.Number, pg.TotalPages)
	out := ProposalPageResponse{
		Items:      make([]ProposalResponse, 0, len(pg.Items)),
		Page:       pg.Number,
		PageSize:   pg.Size,
		TotalItems: pg.TotalItems,
		TotalPages: pg.TotalPages,
		HasPrev:    nav.HasPrev,
		HasNext:    nav.HasNext,
	}
	for _, p := range pg.Items {
		out.Items = append(out.Items, FromProposal(p))
	}
	return out
}

type QuoteResponse struct {
	ProductID string   `json:"product_id"`
	Quantity  int      `json:"quantity"`
	AddOnIDs  []string `json:"add_on_ids"`
	Total     float64  `json:"total"`
}
