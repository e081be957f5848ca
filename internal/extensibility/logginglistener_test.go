package extensibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/comalice/skuselect/internal/core"
	"github.com/comalice/skuselect/testutil"
)

func TestLoggingListener(t *testing.T) {
	obs, logs := observer.New(zap.InfoLevel)
	items, dims := testutil.ScenarioCatalog()
	i := core.NewInterpreter(core.Build(items, dims))
	i.OnTransition(NewLoggingListener(zap.New(obs)))

	require.NoError(t, i.Start())
	require.True(t, i.Select("Size", "L"))

	entries := logs.FilterMessage("selection state").All()
	require.Len(t, entries, 2)
	first := entries[0].ContextMap()
	assert.Equal(t, "A", first["item"])
	assert.Equal(t, 10.0, first["price"])
	second := entries[1].ContextMap()
	assert.Equal(t, "B", second["item"])
	assert.Equal(t, false, second["available"])
	_, hasPrice := second["price"]
	assert.False(t, hasPrice)
}
