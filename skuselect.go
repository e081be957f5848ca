// Package skuselect precomputes the selection graph of a product catalog and walks it.
//
// Build enumerates, for every catalog item, each subset of its standard (non-visual)
// dimension values left unset, merges items landing on the same combination and links
// every pair of combinations that differ in exactly one dimension. An Interpreter then
// holds the active combination and moves along those links as the user picks or clears
// values; it never consults the catalog again.
//
//	g := skuselect.Build(items, dims)
//	it := skuselect.NewInterpreter(g)
//	it.OnTransition(func(s *skuselect.GraphState) { render(s) })
//	if err := it.Start(); err != nil { ... }
//	it.Select("Size", "M")
package skuselect

import (
	"github.com/comalice/skuselect/internal/core"
	"github.com/comalice/skuselect/internal/primitives"
)

type (
	Dimension   = primitives.Dimension
	CatalogItem = primitives.CatalogItem
	Offer       = primitives.Offer
	Image       = primitives.Image
	Selection   = primitives.Selection
	Action      = primitives.Action
	Key         = primitives.Key
	Classifier  = primitives.Classifier

	Graph          = core.Graph
	GraphState     = core.GraphState
	PriceAggregate = core.PriceAggregate
	Interpreter    = core.Interpreter
	Listener       = core.Listener
	BuildOption    = core.BuildOption
	Option         = core.Option
)

// Unset marks a dimension with no value selected.
const Unset = primitives.Unset

var (
	ErrInvalidInitialState = core.ErrInvalidInitialState
	ErrNotStarted          = core.ErrNotStarted
	ErrStopped             = core.ErrStopped
)

// Build options.
var (
	WithGraphID         = core.WithGraphID
	WithClassifier      = core.WithClassifier
	WithPreselection    = core.WithPreselection
	WithPreselectedItem = core.WithPreselectedItem
	WithBuildLogger     = core.WithBuildLogger
	WithBuildRecorder   = core.WithBuildRecorder
)

// Interpreter options.
var (
	WithLogger            = core.WithLogger
	WithPublisher         = core.WithPublisher
	WithRecorder          = core.WithRecorder
	WithSelectionCallback = core.WithSelectionCallback
)

// NewDimension declares a dimension and its legal values in display order.
func NewDimension(name string, values ...string) Dimension {
	return primitives.NewDimension(name, values...)
}

// NameSet returns a classifier treating the given dimension names as visual.
func NameSet(names ...string) Classifier {
	return primitives.NameSet(names...)
}

// Build precomputes the selection graph for items over dims.
func Build(items []CatalogItem, dims []Dimension, opts ...BuildOption) *Graph {
	return core.Build(items, dims, opts...)
}

// NewInterpreter binds an interpreter to g.
func NewInterpreter(g *Graph, opts ...Option) *Interpreter {
	return core.NewInterpreter(g, opts...)
}

// HashSelection returns the order-independent key of s.
func HashSelection(s Selection) Key {
	return primitives.HashSelection(s)
}

// HashAction returns the key of a.
func HashAction(a Action) Key {
	return primitives.HashAction(a)
}
