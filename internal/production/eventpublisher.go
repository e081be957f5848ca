package production

import (
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/comalice/skuselect/internal/core"
)

// ErrPublisherClosed is returned by Publish once the publisher was closed.
var ErrPublisherClosed = errors.New("publisher closed")

// ChannelPublisher forwards transition records to a Go channel.
// Non-blocking publish with drop on backpressure. A closed publisher rejects records
// instead of sending, so it may still be handed to an interpreter after an earlier one
// stopped.
type ChannelPublisher struct {
	ch      chan<- core.TransitionRecord
	mu      sync.Mutex
	closed  bool
	dropped uint64
}

// NewChannelPublisher creates a ChannelPublisher with the given output channel.
func NewChannelPublisher(ch chan<- core.TransitionRecord) *ChannelPublisher {
	return &ChannelPublisher{ch: ch}
}

func (p *ChannelPublisher) Publish(record core.TransitionRecord) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPublisherClosed
	}
	select {
	case p.ch <- record:
	default:
		p.dropped++
	}
	return nil
}

// Dropped returns how many records were discarded because the channel was full.
func (p *ChannelPublisher) Dropped() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dropped
}

// Close closes the output channel. Further calls are no-ops.
func (p *ChannelPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.ch)
	}
	return nil
}
