package filtering

import (
	"fmt"
	"testing"

	"proposal_catalog/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleClients() Clients {
	return Clients{
		{ID: "c1", Name: "Padaria Central"},
		{ID: "c2", Name: "Oficina do João"},
		{ID: "c3", Name: "CENTRAL Imóveis"},
	}
}

func sampleProposals() []entities.Proposal {
	return []entities.Proposal{
		{ID: "p1", ClientID: "c1", StartDate: "2024-01-10"},
		{ID: "p2", ClientID: "c2", StartDate: "2024-03-01"},
		{ID: "p3", ClientID: "c3", StartDate: "2023-12-31"},
		{ID: "p4", ClientID: "c1", StartDate: "2024-03-01"},
		{ID: "p5", ClientID: "ghost", StartDate: "2024-06-01"},
	}
}

func ids(ps []entities.Proposal) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	cases := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{name: "no filters keeps everything in order", criteria: Criteria{}, want: []string{"p1", "p2", "p3", "p4", "p5"}},
		{name: "date lower bound is inclusive", criteria: Criteria{StartDateFrom: "2024-03-01"}, want: []string{"p2", "p4", "p5"}},
		{name: "name is case insensitive", criteria: Criteria{ClientName: "central"}, want: []string{"p1", "p3", "p4"}},
		{name: "accented substring", criteria: Criteria{ClientName: "JOÃO"}, want: []string{"p2"}},
		{name: "conjunctive", criteria: Criteria{StartDateFrom: "2024-02-01", ClientName: "Central"}, want: []string{"p4"}},
		{name: "unresolved client never matches a term", criteria: Criteria{ClientName: "g"}, want: []string{}},
		{name: "no match", criteria: Criteria{StartDateFrom: "2030-01-01"}, want: []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Filter(sampleProposals(), sampleClients(), tc.criteria)
			assert.Equal(t, tc.want, ids(got))
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	criteria := []Criteria{{}, {StartDateFrom: "2024-01-01"}, {ClientName: "central"}, {StartDateFrom: "2024-02-01", ClientName: "o"}}
	for _, c := range criteria {
		once := Filter(sampleProposals(), sampleClients(), c)
		twice := Filter(once, sampleClients(), c)
		assert.Equal(t, once, twice, "criteria %+v", c)
	}
}

func makeProposals(n int) []entities.Proposal {
	out := make([]entities.Proposal, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, entities.Proposal{ID: fmt.Sprintf("p%02d", i), ClientID: "c1", StartDate: "2024-01-01"})
	}
	return out
}

func TestPaginate_SixtyFive(t *testing.T) {
	all := Filter(makeProposals(65), sampleClients(), Criteria{})

	first := Paginate(all, 1, PageSize)
	assert.Len(t, first.Items, 30)
	assert.Equal(t, 3, first.TotalPages)
	assert.Equal(t, 65, first.TotalItems)

	assert.Len(t, Paginate(all, 2, PageSize).Items, 30)

	last := Paginate(all, 3, PageSize)
	require.Len(t, last.Items, 5)
	assert.Equal(t, "p60", last.Items[0].ID)
}

func TestPaginate_ConcatenationRebuildsList(t *testing.T) {
	for _, n := range []int{0, 1, 29, 30, 31, 60, 61, 95} {
		all := makeProposals(n)
		pg := Paginate(all, 1, PageSize)
		assert.Equal(t, (n+PageSize-1)/PageSize, pg.TotalPages, "n=%d", n)

		var rebuilt []entities.Proposal
		for i := 1; i <= pg.TotalPages; i++ {
			rebuilt = append(rebuilt, Paginate(all, i, PageSize).Items...)
		}
		assert.Equal(t, ids(all), ids(rebuilt), "n=%d", n)
	}
}

func TestPaginate_Edges(t *testing.T) {
	empty := Paginate(nil, 1, PageSize)
	assert.Empty(t, empty.Items)
	assert.NotNil(t, empty.Items)
	assert.Equal(t, 0, empty.TotalPages)

	all := makeProposals(10)
	assert.Empty(t, Paginate(all, 2, PageSize).Items, "past the end is not clamped")
	assert.Empty(t, Paginate(all, 0, PageSize).Items)

	small := Paginate(all, 2, 4)
	assert.Equal(t, []string{"p04", "p05", "p06", "p07"}, ids(small.Items))
	assert.Equal(t, 3, small.TotalPages)

	assert.Equal(t, PageSize, Paginate(all, 1, 0).Size)
}

func TestCountByClient(t *testing.T) {
	counts := CountByClient(sampleProposals())
	assert.Equal(t, map[string]int{"c1": 2, "c2": 1, "c3": 1, "ghost": 1}, counts)
}
