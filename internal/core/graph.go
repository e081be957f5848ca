// Package core provides the SKU selection graph and the interpreter that walks it.
// The graph is built once from a catalog snapshot and is immutable afterwards; the
// interpreter holds the single active state and applies selection actions to it.
package core

import (
	"sort"

	"github.com/comalice/skuselect/internal/primitives"
)

// DefaultGraphID names graphs built without WithGraphID.
const DefaultGraphID = "SKUSelector"

// PriceAggregate summarises the prices of the available items merged into a state.
// Value is the lowest price seen; NotUnique is set once two different prices were seen
// and never resets.
type PriceAggregate struct {
	Value     float64 `json:"value" yaml:"value"`
	NotUnique bool    `json:"notUnique" yaml:"notUnique"`
}

// GraphState is one partial-selection state of the graph.
type GraphState struct {
	Key       primitives.Key                    `json:"key" yaml:"key"`
	Selection primitives.Selection              `json:"selection" yaml:"selection"`
	ItemID    string                            `json:"itemId,omitempty" yaml:"itemId,omitempty"`
	Available bool                              `json:"available" yaml:"available"`
	Images    []primitives.Image                `json:"images,omitempty" yaml:"images,omitempty"`
	Price     *PriceAggregate                   `json:"price,omitempty" yaml:"price,omitempty"`
	Edges     map[primitives.Key]primitives.Key `json:"edges" yaml:"edges"`
}

// Target returns the state reached from s by actionKey.
func (s *GraphState) Target(actionKey primitives.Key) (primitives.Key, bool) {
	to, ok := s.Edges[actionKey]
	return to, ok
}

// HasItem reports whether an item is bound to the state.
func (s *GraphState) HasItem() bool {
	return s.ItemID != ""
}

// Graph is the full set of states and action-labelled edges for one catalog snapshot.
// A Graph is never modified after Build returns and may be shared freely for reading;
// callers must not mutate the states it hands out.
type Graph struct {
	id          string
	dimensions  []primitives.Dimension
	visual      []string
	standard    []string
	states      map[primitives.Key]*GraphState
	order       []primitives.Key
	actions     map[primitives.Key]primitives.Action
	initial     primitives.Key
	preselected bool
	edges       int
}

// ID returns the graph id.
func (g *Graph) ID() string { return g.id }

// Initial returns the key the interpreter starts from. It may be absent from the state table
// when a preselection matched no catalog item.
func (g *Graph) Initial() primitives.Key { return g.initial }

// Preselected reports whether the initial key came from a preselection.
func (g *Graph) Preselected() bool { return g.preselected }

// Dimensions returns the declared dimensions in order.
func (g *Graph) Dimensions() []primitives.Dimension {
	return append([]primitives.Dimension(nil), g.dimensions...)
}

// VisualDimensions returns the names of the dimensions pinned to item values.
func (g *Graph) VisualDimensions() []string {
	return append([]string(nil), g.visual...)
}

// StandardDimensions returns the names of the dimensions that may be unset.
func (g *Graph) StandardDimensions() []string {
	return append([]string(nil), g.standard...)
}

// State looks up a state by key.
func (g *Graph) State(key primitives.Key) (*GraphState, bool) {
	s, ok := g.states[key]
	return s, ok
}

// Action looks up an action by key.
func (g *Graph) Action(key primitives.Key) (primitives.Action, bool) {
	a, ok := g.actions[key]
	return a, ok
}

// Keys returns the state keys in the order the builder first produced them.
func (g *Graph) Keys() []primitives.Key {
	return append([]primitives.Key(nil), g.order...)
}

// ActionKeys returns every action key, sorted.
func (g *Graph) ActionKeys() []primitives.Key {
	keys := make([]primitives.Key, 0, len(g.actions))
	for k := range g.actions {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Len returns the number of states.
func (g *Graph) Len() int { return len(g.order) }

// EdgeCount returns the number of edges across all states.
func (g *Graph) EdgeCount() int { return g.edges }

// Lookup finds the state holding the given selection. Dimensions missing from sel are
// read as Unset; a set dimension the graph does not declare matches nothing.
func (g *Graph) Lookup(sel primitives.Selection) (*GraphState, bool) {
	for dim, value := range sel {
		if value != primitives.Unset && !g.declares(dim) {
			return nil, false
		}
	}
	return g.State(primitives.HashSelection(primitives.Project(sel, g.dimensions)))
}

func (g *Graph) declares(dim string) bool {
	for _, d := range g.dimensions {
		if d.Name == dim {
			return true
		}
	}
	return false
}
