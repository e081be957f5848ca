// Package benchmarks measures graph construction and interpreter throughput on generated catalogs.
package benchmarks

import (
	"fmt"

	"github.com/comalice/skuselect/internal/core"
	"github.com/comalice/skuselect/internal/primitives"
)

// Shape is one generated catalog size: colors x sizes x fits items.
type Shape struct {
	Colors, Sizes, Fits int
}

func (s Shape) String() string {
	return fmt.Sprintf("%dx%dx%d", s.Colors, s.Sizes, s.Fits)
}

// Shapes are the catalog sizes every build benchmark runs over.
var Shapes = []Shape{
	{2, 3, 1},
	{4, 6, 2},
	{8, 10, 3},
	{12, 16, 4},
}

// RoundTrip returns two action keys that leave the initial state of g and return to it.
// ok is false when the initial state has no outgoing edge.
func RoundTrip(g *core.Graph) (out, back primitives.Key, ok bool) {
	initial, found := g.State(g.Initial())
	if !found {
		return "", "", false
	}
	for _, actionKey := range g.ActionKeys() {
		target, has := initial.Target(actionKey)
		if !has {
			continue
		}
		next, _ := g.State(target)
		for backKey, to := range next.Edges {
			if to == initial.Key {
				return actionKey, backKey, true
			}
		}
	}
	return "", "", false
}
