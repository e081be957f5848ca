package benchmarks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/skuselect/internal/core"
	"github.com/comalice/skuselect/testutil"
)

func TestRoundTrip(t *testing.T) {
	items, dims := testutil.GenCatalog(2, 3, 1)
	g := core.Build(items, dims)
	out, back, ok := RoundTrip(g)
	require.True(t, ok)

	it := core.NewInterpreter(g)
	require.NoError(t, it.Start())
	require.True(t, it.Send(out))
	assert.NotEqual(t, g.Initial(), it.CurrentKey())
	require.True(t, it.Send(back))
	assert.Equal(t, g.Initial(), it.CurrentKey())

	_, _, ok = RoundTrip(core.Build(nil, nil))
	assert.False(t, ok)
}
