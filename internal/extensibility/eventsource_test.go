package extensibility

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/skuselect/internal/core"
	"github.com/comalice/skuselect/internal/primitives"
	"github.com/comalice/skuselect/testutil"
)

func TestChannelActionSource(t *testing.T) {
	ch := make(chan primitives.Key, 1)
	s := NewChannelActionSource(ch)
	s.Actions() <- "k"
	assert.Equal(t, primitives.Key("k"), <-ch)
}

func TestChannelActionSource_RunAppliesInOrder(t *testing.T) {
	items, dims := testutil.ApparelCatalog()
	i := core.NewInterpreter(core.Build(items, dims))

	var mu sync.Mutex
	var seen []string
	i.OnTransition(func(s *core.GraphState) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, s.ItemID)
	})
	require.NoError(t, i.Start())

	ch := make(chan primitives.Key, 4)
	ch <- primitives.Action{Dimension: "Size", Value: "L"}.Key()
	ch <- primitives.Action{Dimension: "Color", Value: "Blue"}.Key() // no Blue/L: ignored
	ch <- primitives.Action{Dimension: "Size", Value: "S"}.Key()
	ch <- primitives.Action{Dimension: "Color", Value: "Blue"}.Key()
	close(ch)

	err := NewChannelActionSource(ch).Run(context.Background(), i)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"r-s", "r-l", "r-s", "b-s"}, seen)
}

func TestChannelActionSource_RunCancelled(t *testing.T) {
	items, dims := testutil.ScenarioCatalog()
	i := core.NewInterpreter(core.Build(items, dims))
	require.NoError(t, i.Start())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewChannelActionSource(make(chan primitives.Key)).Run(ctx, i) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
