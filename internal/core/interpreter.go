package core

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/comalice/skuselect/internal/primitives"
)

// Listener receives the active state after every transition, including the one made by Start.
type Listener func(state *GraphState)

type subscription struct {
	id uint64
	fn Listener
}

// Interpreter holds the active state of one Graph and applies actions to it.
//
// The interpreter is not synchronized: callers must serialize Start, Send and Select
// (see extensibility.ChannelActionSource). Listeners run synchronously inside Send and
// must not call Send themselves. When the catalog changes, Stop the old interpreter before
// starting the one bound to the rebuilt graph.
type Interpreter struct {
	id      string
	graph   *Graph
	current primitives.Key
	started bool
	stopped bool

	listeners []subscription
	nextSub   uint64

	logger     *zap.Logger
	publisher  Publisher
	recorder   Recorder
	onSelected func(itemID string)
}

// NewInterpreter binds an interpreter to g. Call Start before sending actions.
func NewInterpreter(g *Graph, opts ...Option) *Interpreter {
	i := &Interpreter{
		id:       uuid.NewString(),
		graph:    g,
		logger:   zap.NewNop(),
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(i)
	}
	i.logger = i.logger.With(zap.String("interpreter", i.id), zap.String("graph", g.ID()))
	return i
}

// ID returns the interpreter instance id.
func (i *Interpreter) ID() string { return i.id }

// Graph returns the bound graph.
func (i *Interpreter) Graph() *Graph { return i.graph }

// Start moves to the graph's initial state and notifies every listener once with it.
// Calling Start again resets to the initial state.
func (i *Interpreter) Start() error {
	if i.stopped {
		return ErrStopped
	}
	initial := i.graph.Initial()
	state, ok := i.graph.State(initial)
	if !ok {
		i.logger.Warn("initial state not in graph", zap.String("initial", string(initial)))
		err := errors.WithSafeDetails(ErrInvalidInitialState, "initial key %s", errors.Safe(string(initial)))
		err = errors.WithHint(err, "the preselection matches no catalog item")
		return errors.Wrapf(err, "start graph %q", i.graph.ID())
	}
	i.current = initial
	i.started = true
	i.notify(state, TransitionRecord{To: initial})
	return nil
}

// Send applies the action labelled actionKey to the active state. It reports whether a
// transition happened; an action with no edge from the active state is ignored without
// notifying anyone.
func (i *Interpreter) Send(actionKey primitives.Key) bool {
	if !i.started || i.stopped {
		return false
	}
	from, _ := i.graph.State(i.current)
	to, ok := from.Target(actionKey)
	i.recorder.ObserveSend(i.graph.ID(), ok)
	if !ok {
		i.logger.Debug("no edge for action", zap.String("state", string(i.current)), zap.String("action", string(actionKey)))
		return false
	}
	state, _ := i.graph.State(to)
	action, _ := i.graph.Action(actionKey)

	i.current = to
	i.logger.Debug("transition",
		zap.String("from", string(from.Key)),
		zap.String("to", string(to)),
		zap.Stringer("action", action))
	i.notify(state, TransitionRecord{From: from.Key, To: to, ActionKey: actionKey, Action: action})
	return true
}

// SendAction is Send for an action value.
func (i *Interpreter) SendAction(a primitives.Action) bool {
	return i.Send(a.Key())
}

// Select picks value for dimension. Picking the value that is already selected clears the
// dimension instead.
func (i *Interpreter) Select(dimension, value string) bool {
	state, ok := i.Current()
	if !ok {
		return false
	}
	if value != primitives.Unset && state.Selection.Get(dimension) == value {
		return i.SendAction(primitives.Deselect(dimension))
	}
	return i.SendAction(primitives.Action{Dimension: dimension, Value: value})
}

// OnTransition registers l for future transitions and returns a function detaching it.
// Past transitions are not replayed.
func (i *Interpreter) OnTransition(l Listener) (unsubscribe func()) {
	i.nextSub++
	id := i.nextSub
	i.listeners = append(i.listeners, subscription{id: id, fn: l})
	return func() {
		for n, s := range i.listeners {
			if s.id == id {
				i.listeners = append(i.listeners[:n:n], i.listeners[n+1:]...)
				return
			}
		}
	}
}

// Current returns the active state.
func (i *Interpreter) Current() (*GraphState, bool) {
	if !i.started {
		return nil, false
	}
	return i.graph.State(i.current)
}

// CurrentState is Current with ErrNotStarted for callers that need an error.
func (i *Interpreter) CurrentState() (*GraphState, error) {
	state, ok := i.Current()
	if !ok {
		return nil, ErrNotStarted
	}
	return state, nil
}

// CurrentKey returns the active state key, empty before Start.
func (i *Interpreter) CurrentKey() primitives.Key {
	return i.current
}

// Stop detaches every listener and closes the publisher. Further sends are ignored.
// Safe to call multiple times.
func (i *Interpreter) Stop() error {
	if i.stopped {
		return nil
	}
	i.stopped = true
	i.listeners = nil
	if i.publisher != nil {
		if err := i.publisher.Close(); err != nil {
			return errors.Wrap(err, "close publisher")
		}
	}
	return nil
}

func (i *Interpreter) notify(state *GraphState, rec TransitionRecord) {
	// Listeners may unsubscribe while being notified.
	subs := append([]subscription(nil), i.listeners...)
	for _, s := range subs {
		s.fn(state)
	}

	if i.onSelected != nil && i.graph.Preselected() && state.HasItem() {
		i.onSelected(state.ItemID)
	}

	if i.publisher != nil {
		rec.InterpreterID = i.id
		rec.GraphID = i.graph.ID()
		rec.ItemID = state.ItemID
		rec.Timestamp = time.Now()
		if err := i.publisher.Publish(rec); err != nil {
			i.logger.Warn("publish transition", zap.Error(err))
		}
	}
}
