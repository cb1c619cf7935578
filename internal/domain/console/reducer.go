package console

// Action is a user event applied by Reduce.
type Action interface {
	apply(State) State
}

type SwitchTab struct{ Tab Tab }

// SelectCity focuses a city and moves to its clients. The client selection is cleared.
type SelectCity struct{ CityID string }

// SelectClient focuses a client and moves to its proposals.
type SelectClient struct{ ClientID string }

type SetDateFilter struct{ Date string }

type SetSearch struct{ Term string }

// GoToPage jumps to Page, clamped to [1, TotalPages].
type GoToPage struct {
	Page       int
	TotalPages int
}

type NextPage struct{ TotalPages int }

type PrevPage struct{}

func (a SwitchTab) apply(s State) State {
	s.ActiveTab = a.Tab
	return s
}

func (a SelectCity) apply(s State) State {
	s.SelectedCity = Some(a.CityID)
	s.SelectedClient = None()
	s.ActiveTab = TabClients
	return s
}

func (a SelectClient) apply(s State) State {
	s.SelectedClient = Some(a.ClientID)
	s.ActiveTab = TabProposals
	s.Page = 1
	return s
}

func (a SetDateFilter) apply(s State) State {
	s.DateFilter = a.Date
	s.Page = 1
	return s
}

func (a SetSearch) apply(s State) State {
	s.Search = a.Term
	s.Page = 1
	return s
}

func (a GoToPage) apply(s State) State {
	s.Page = clampPage(a.Page, a.TotalPages)
	return s
}

func (a NextPage) apply(s State) State {
	s.Page = clampPage(s.Page+1, a.TotalPages)
	return s
}

func (PrevPage) apply(s State) State {
	s.Page = clampPage(s.Page-1, s.Page)
	return s
}

// Reduce applies actions in order and returns the resulting state.
func Reduce(s State, actions ...Action) State {
	for _, a := range actions {
		s = a.apply(s)
	}
	return s
}

func clampPage(page, totalPages int) int {
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Nav tells which page controls are enabled.
type Nav struct {
	HasPrev bool
	HasNext bool
}

func Navigation(page, totalPages int) Nav {
	return Nav{
		HasPrev: page > 1,
		HasNext: page < totalPages,
	}
}
