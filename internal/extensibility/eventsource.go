// Package extensibility provides optional plumbing around the interpreter: a channel-fed
// action source that serializes sends, and a logging listener.
package extensibility

import (
	"context"

	"github.com/comalice/skuselect/internal/core"
	"github.com/comalice/skuselect/internal/primitives"
)

// ChannelActionSource feeds action keys from a channel into one interpreter.
// Any number of goroutines may write to the channel; Run applies the keys one at a time,
// which is the only ordering guarantee the interpreter needs.
type ChannelActionSource struct {
	ch chan primitives.Key
}

// NewChannelActionSource creates a source backed by ch.
// The channel should be buffered if producers must not block on a slow listener.
func NewChannelActionSource(ch chan primitives.Key) *ChannelActionSource {
	return &ChannelActionSource{ch: ch}
}

// Actions returns the send side for producers.
func (s *ChannelActionSource) Actions() chan<- primitives.Key {
	return s.ch
}

// Run sends every received key to i until the channel is closed or ctx is done.
// It returns ctx.Err() on cancellation and nil when the channel was closed.
func (s *ChannelActionSource) Run(ctx context.Context, i *core.Interpreter) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case key, ok := <-s.ch:
			if !ok {
				return nil
			}
			i.Send(key)
		}
	}
}
