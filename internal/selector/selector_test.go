package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/skuselect/internal/core"
	"github.com/comalice/skuselect/internal/primitives"
	"github.com/comalice/skuselect/testutil"
)

func labels(v Variation) []string {
	var out []string
	for _, o := range v.Options {
		out = append(out, o.Label)
	}
	return out
}

func TestVariations_Initial(t *testing.T) {
	items, dims := testutil.ApparelCatalog()
	g := core.Build(items, dims)
	state, ok := g.State(g.Initial())
	require.True(t, ok)

	vars := Variations(g, state)
	require.Len(t, vars, 2)

	color := vars[0]
	assert.Equal(t, "Color", color.Name)
	assert.True(t, color.Visual)
	assert.Equal(t, "Red", color.Selected)
	assert.Equal(t, []string{"Red", "Blue"}, labels(color))

	red, _ := Find(vars, "Color", "Red")
	assert.True(t, red.Selected)
	assert.True(t, red.Available)
	assert.Equal(t, primitives.Deselect("Color").Key(), red.ActionKey)
	assert.Empty(t, red.Target, "visual dimensions are never cleared")

	blue, _ := Find(vars, "Color", "Blue")
	assert.False(t, blue.Selected)
	assert.True(t, blue.Available)
	assert.Equal(t, items[4].Images, blue.Images)

	size := vars[1]
	assert.False(t, size.Visual)
	assert.Equal(t, primitives.Unset, size.Selected)
	assert.Equal(t, []string{"S", "M", "L"}, labels(size))

	m, _ := Find(vars, "Size", "M")
	assert.False(t, m.Available, "Red/M is out of stock")
	s, _ := Find(vars, "Size", "S")
	assert.True(t, s.Available)
	target, _ := g.State(s.Target)
	assert.Equal(t, "r-s", target.ItemID)
}

func TestVariations_FollowsInterpreter(t *testing.T) {
	items, dims := testutil.ApparelCatalog()
	g := core.Build(items, dims)
	i := core.NewInterpreter(g)

	var vars []Variation
	i.OnTransition(func(s *core.GraphState) { vars = Variations(g, s) })
	require.NoError(t, i.Start())
	require.True(t, i.Select("Color", "Blue"))

	assert.Equal(t, []string{"S", "M"}, labels(vars[1]), "no Blue/L")

	m, ok := Find(vars, "Size", "M")
	require.True(t, ok)
	require.True(t, i.Send(m.ActionKey))

	sizeM, ok := Find(vars, "Size", "M")
	require.True(t, ok)
	assert.True(t, sizeM.Selected)
	assert.True(t, sizeM.Available)

	// Clicking the selected option clears it.
	require.True(t, i.Send(sizeM.ActionKey))
	state, _ := i.Current()
	assert.Equal(t, primitives.Unset, state.Selection.Get("Size"))

	_, ok = Find(vars, "Size", "XL")
	assert.False(t, ok)
	_, ok = Find(vars, "Fit", "Slim")
	assert.False(t, ok)
}
