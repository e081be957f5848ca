// Package selector derives the per-option view a variation picker renders for the active
// state: which values to offer, which one is selected, whether picking it leads to an
// available state, and which action key the pick sends.
package selector

import (
	"github.com/comalice/skuselect/internal/core"
	"github.com/comalice/skuselect/internal/primitives"
)

// Option is one clickable value of a dimension.
type Option struct {
	Label     string             `json:"label" yaml:"label"`
	Selected  bool               `json:"selected" yaml:"selected"`
	Available bool               `json:"available" yaml:"available"`
	Images    []primitives.Image `json:"images,omitempty" yaml:"images,omitempty"`
	// ActionKey is what a click sends: the deselection for a selected option.
	ActionKey primitives.Key `json:"actionKey" yaml:"actionKey"`
	// Target is the state the click leads to; empty for a selected option whose
	// deselection has no edge.
	Target primitives.Key `json:"target,omitempty" yaml:"target,omitempty"`
}

// Variation groups the options of one dimension.
type Variation struct {
	Name     string   `json:"name" yaml:"name"`
	Visual   bool     `json:"visual" yaml:"visual"`
	Selected string   `json:"selected,omitempty" yaml:"selected,omitempty"`
	Options  []Option `json:"options" yaml:"options"`
}

// Variations lists, for every dimension of g in declared order, the values that are
// either selected in state or reachable from it by one edge. Values follow the
// dimension's declared order; unreachable values are left out.
func Variations(g *core.Graph, state *core.GraphState) []Variation {
	visual := make(map[string]bool)
	for _, name := range g.VisualDimensions() {
		visual[name] = true
	}

	dims := g.Dimensions()
	out := make([]Variation, 0, len(dims))
	for _, d := range dims {
		current := state.Selection.Get(d.Name)
		v := Variation{Name: d.Name, Visual: visual[d.Name], Selected: current}
		for _, label := range d.Values {
			selected := current == label
			action := primitives.Action{Dimension: d.Name, Value: label}
			if selected {
				action = primitives.Deselect(d.Name)
			}
			actionKey := action.Key()
			target, hasEdge := state.Target(actionKey)
			if !hasEdge && !selected {
				continue
			}

			opt := Option{Label: label, Selected: selected, ActionKey: actionKey}
			if hasEdge {
				opt.Target = target
			}
			if selected {
				opt.Available = state.Available
				opt.Images = state.Images
			} else {
				next, _ := g.State(target)
				opt.Available = next.Available
				opt.Images = next.Images
			}
			v.Options = append(v.Options, opt)
		}
		out = append(out, v)
	}
	return out
}

// Find returns the option for label in dimension, if offered.
func Find(variations []Variation, dimension, label string) (Option, bool) {
	for _, v := range variations {
		if v.Name != dimension {
			continue
		}
		for _, o := range v.Options {
			if o.Label == label {
				return o, true
			}
		}
	}
	return Option{}, false
}
