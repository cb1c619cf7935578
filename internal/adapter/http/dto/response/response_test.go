package response

import (
	"testing"
	"time"

	"proposal_catalog/internal/domain/entities"
	"proposal_catalog/internal/domain/filtering"
)

func strPtr(s string) *string { return &s }

func TestFromCatalog(t *testing.T) {
	c := entities.Catalog{
		Cities: []entities.City{{ID: "1", Name: "São Paulo", State: "SP"}, {ID: "2", Name: "Rio de Janeiro", State: "RJ"}},
		Clients: []entities.Client{
			{ID: "c1", Name: "Acme", CityID: strPtr("1")},
			{ID: "c2", Name: "Beta", CityID: strPtr("1")},
		},
		Products: []entities.Product{{ID: "p1", Name: "Website Básico", BasePrice: 2500}},
	}

	out := FromCatalog(c, map[string]int{"c2": 3})
	if out.Cities[0].ClientCount != 2 || out.Cities[1].ClientCount != 0 {
		t.Fatalf("unexpected city counts: %+v", out.Cities)
	}
	if out.Clients[0].ProposalCount != 0 || out.Clients[1].ProposalCount != 3 {
		t.Fatalf("unexpected proposal counts: %+v", out.Clients)
	}
	if out.Products[0].AddOns == nil {
		t.Fatalf("expected non-nil add-ons")
	}

	empty := FromCatalog(entities.Catalog{}, nil)
	if empty.Cities == nil || empty.Clients == nil || empty.Products == nil {
		t.Fatalf("expected empty slices, got %+v", empty)
	}
}

func TestFromProduct(t *testing.T) {
	p := entities.Product{
		ID:        "1",
		Name:      "E-commerce",
		BasePrice: 5000,
		AddOns: []entities.AddOn{
			{ID: "4", ProductID: "1", Name: "Gateway de pagamento", AdditionalPrice: 1000},
		},
	}
	out := FromProduct(p)
	if len(out.AddOns) != 1 || out.AddOns[0].AdditionalPrice != 1000 || out.AddOns[0].ProductID != "1" {
		t.Fatalf("unexpected product: %+v", out)
	}
}

func TestFromProposalPage(t *testing.T) {
	now := time.Now().UTC()
	items := make([]entities.Proposal, 0, 65)
	for i := 0; i < 65; i++ {
		items = append(items, entities.Proposal{ID: string(rune('a' + i%26)), Status: entities.ProposalStatusPendente, CreatedAt: now})
	}

	first := FromProposalPage(filtering.Paginate(items, 1, filtering.PageSize))
	if len(first.Items) != 30 || first.TotalPages != 3 || first.HasPrev || !first.HasNext {
		t.Fatalf("unexpected first page: %+v", first)
	}
	last := FromProposalPage(filtering.Paginate(items, 3, filtering.PageSize))
	if len(last.Items) != 5 || !last.HasPrev || last.HasNext {
		t.Fatalf("unexpected last page: items=%d prev=%v next=%v", len(last.Items), last.HasPrev, last.HasNext)
	}

	none := FromProposalPage(filtering.Paginate(nil, 1, filtering.PageSize))
	if none.Items == nil || none.TotalPages != 0 || none.HasPrev || none.HasNext {
		t.Fatalf("unexpected empty page: %+v", none)
	}
	if first.Items[0].SelectedAddOnIDs == nil {
		t.Fatalf("expected non-nil add-on ids")
	}
}
