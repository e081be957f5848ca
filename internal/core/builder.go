package core

import (
	"time"

	"go.uber.org/zap"

	"github.com/comalice/skuselect/internal/primitives"
)

// maxStandardDimensions bounds the subset enumeration; the mask is a uint64.
const maxStandardDimensions = 63

// Build enumerates every partial-selection state reachable from items over dims and links
// states differing in exactly one dimension. It always returns a complete graph.
//
// Enumeration is O(items * 2^k) for k standard dimensions and edge resolution is quadratic
// in the state count; both are meant for small catalogs.
func Build(items []primitives.CatalogItem, dims []primitives.Dimension, opts ...BuildOption) *Graph {
	cfg := newBuildConfig(opts)
	start := time.Now()

	visual, standard := primitives.Partition(dims, cfg.classifier)
	g := &Graph{
		id:         cfg.id,
		dimensions: append([]primitives.Dimension(nil), dims...),
		visual:     primitives.Names(visual),
		standard:   primitives.Names(standard),
		states:     make(map[primitives.Key]*GraphState),
		actions:    make(map[primitives.Key]primitives.Action),
	}

	if len(standard) > maxStandardDimensions {
		cfg.logger.Warn("too many standard dimensions, extra dimensions are treated as visual",
			zap.Int("standard", len(standard)),
			zap.Int("max", maxStandardDimensions))
		visual = append(visual, standard[maxStandardDimensions:]...)
		standard = standard[:maxStandardDimensions]
		g.visual = primitives.Names(visual)
		g.standard = primitives.Names(standard)
	}

	cfg.logger.Debug("partitioned dimensions",
		zap.String("graph", g.id),
		zap.Strings("visual", g.visual),
		zap.Strings("standard", g.standard))

	g.enumerate(items, visual, standard)
	g.resolveTransitions()

	if cfg.hasPreselection {
		g.initial = primitives.HashSelection(primitives.Project(cfg.preselection, dims))
		g.preselected = true
		if _, ok := g.states[g.initial]; !ok {
			cfg.logger.Debug("preselection matches no state",
				zap.String("graph", g.id),
				zap.String("initial", string(g.initial)))
		}
	}

	stats := BuildStats{
		GraphID:  g.id,
		Items:    len(items),
		States:   len(g.order),
		Edges:    g.edges,
		Duration: time.Since(start),
	}
	cfg.recorder.ObserveBuild(stats)
	cfg.logger.Debug("built graph",
		zap.String("graph", g.id),
		zap.Int("items", stats.Items),
		zap.Int("states", stats.States),
		zap.Int("edges", stats.Edges),
		zap.Duration("duration", stats.Duration))

	return g
}

// enumerate materializes one state per item and subset of standard dimensions and folds
// availability and price into it.
func (g *Graph) enumerate(items []primitives.CatalogItem, visual, standard []primitives.Dimension) {
	limit := uint64(1) << uint(len(standard))
	for idx, item := range items {
		available := item.Available()
		for mask := uint64(0); mask < limit; mask++ {
			sel := make(primitives.Selection, len(visual)+len(standard))
			for _, d := range visual {
				sel[d.Name] = item.Value(d.Name)
			}
			for bit, d := range standard {
				if mask&(uint64(1)<<uint(bit)) != 0 {
					sel[d.Name] = item.Value(d.Name)
				} else {
					sel[d.Name] = primitives.Unset
				}
			}
			key := primitives.HashSelection(sel)

			if idx == 0 && mask == 0 {
				g.initial = key
			}

			state, exists := g.states[key]
			if !exists {
				state = &GraphState{Key: key}
				g.states[key] = state
				g.order = append(g.order, key)
			}
			// An available item replaces an unavailable occupant; otherwise the first item wins.
			if !exists || (!state.Available && available) {
				state.Selection = sel
				state.ItemID = item.ID
				state.Available = available
				state.Images = item.Images
			}

			if available {
				foldPrice(state, item.Offer.Price)
			}
		}
	}
}

func foldPrice(state *GraphState, price float64) {
	if state.Price == nil {
		state.Price = &PriceAggregate{Value: price}
		return
	}
	state.Price.NotUnique = state.Price.NotUnique || price != state.Price.Value
	if price < state.Price.Value {
		state.Price.Value = price
	}
}

// resolveTransitions adds an edge A -> B for every ordered pair of states whose selections
// differ in exactly one dimension, labelled with B's value for that dimension.
func (g *Graph) resolveTransitions() {
	for _, keyA := range g.order {
		a := g.states[keyA]
		a.Edges = make(map[primitives.Key]primitives.Key)
		for _, keyB := range g.order {
			if keyA == keyB {
				continue
			}
			b := g.states[keyB]
			dim, n := a.Selection.Diff(b.Selection)
			if n != 1 {
				continue
			}
			action := primitives.Action{Dimension: dim, Value: b.Selection.Get(dim)}
			actionKey := action.Key()
			g.actions[actionKey] = action
			a.Edges[actionKey] = keyB
			g.edges++
		}
	}
}
