// Package console models the admin console's UI state as a plain value with a
// pure reducer: every user action produces a new State.
package console

// Tab is one of the console sections.
type Tab string

const (
	TabCities    Tab = "cidades"
	TabClients   Tab = "clientes"
	TabProposals Tab = "propostas"
	TabProducts  Tab = "produtos"
)

// Ref is an optional reference to an entity id.
type Ref struct {
	id  string
	set bool
}

func None() Ref { return Ref{} }

// Some returns a set reference. An empty id is treated as None.
func Some(id string) Ref {
	if id == "" {
		return Ref{}
	}
	return Ref{id: id, set: true}
}

func (r Ref) Get() (string, bool) { return r.id, r.set }

func (r Ref) IsSet() bool { return r.set }

// State is the whole console state.
type State struct {
	ActiveTab      Tab
	SelectedCity   Ref
	SelectedClient Ref
	DateFilter     string
	Search         string
	Page           int
}

// Initial is the state of a fresh console.
func Initial() State {
	return State{ActiveTab: TabCities, Page: 1}
}

// CanCreateClient reports whether a city has been selected.
func (s State) CanCreateClient() bool { return s.SelectedCity.IsSet() }

// CanCreateProposal reports whether a client has been selected.
func (s State) CanCreateProposal() bool { return s.SelectedClient.IsSet() }
