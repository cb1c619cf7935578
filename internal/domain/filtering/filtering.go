// Package filtering selects and paginates the visible proposals.
package filtering

import (
	"strings"

	"proposal_catalog/internal/domain/entities"
)

// PageSize is the fixed number of proposals per page.
const PageSize = 30

// Criteria holds the optional list filters. An empty field always matches.
type Criteria struct {
	// StartDateFrom is a YYYY-MM-DD lower bound (inclusive) on Proposal.StartDate.
	StartDateFrom string
	// ClientName is a case-insensitive substring of the client's name.
	ClientName string
}

// ClientLookup resolves a client by id. entities.Catalog satisfies it.
type ClientLookup interface {
	ClientByID(id string) (entities.Client, bool)
}

// Filter returns the proposals matching both predicates, in input order.
func Filter(proposals []entities.Proposal, clients ClientLookup, c Criteria) []entities.Proposal {
	term := strings.ToLower(c.ClientName)
	out := make([]entities.Proposal, 0, len(proposals))
	for _, p := range proposals {
		if c.StartDateFrom != "" && p.StartDate < c.StartDateFrom {
			continue
		}
		if term != "" {
			client, ok := clients.ClientByID(p.ClientID)
			if !ok || !strings.Contains(strings.ToLower(client.Name), term) {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// Page is one slice of a filtered list.
type Page struct {
	Items      []entities.Proposal
	Number     int
	Size       int
	TotalItems int
	TotalPages int
}

// Paginate returns page number (1-based) of items.
//
// The page is not clamped: a number past the last page, or below 1, yields no
// items. An empty list has zero pages.
func Paginate(items []entities.Proposal, number, size int) Page {
	if size <= 0 {
		size = PageSize
	}
	pg := Page{
		Items:      []entities.Proposal{},
		Number:     number,
		Size:       size,
		TotalItems: len(items),
		TotalPages: (len(items) + size - 1) / size,
	}
	if number < 1 {
		return pg
	}
	start := (number - 1) * size
	if start >= len(items) {
		return pg
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	pg.Items = items[start:end]
	return pg
}

// CountByClient counts proposals per client id.
func CountByClient(proposals []entities.Proposal) map[string]int {
	counts := make(map[string]int)
	for _, p := range proposals {
		counts[p.ClientID]++
	}
	return counts
}

// Clients adapts a plain slice to ClientLookup.
type Clients []entities.Client

func (cs Clients) ClientByID(id string) (entities.Client, bool) {
	for _, c := range cs {
		if c.ID == id {
			return c, true
		}
	}
	return entities.Client{}, false
}
