package core

import (
	"time"

	"github.com/comalice/skuselect/internal/primitives"
)

// Pluggable observers. Implementations live in internal/production.

// BuildStats describes one completed Build.
type BuildStats struct {
	GraphID  string
	Items    int
	States   int
	Edges    int
	Duration time.Duration
}

// Recorder receives build and transition measurements.
type Recorder interface {
	ObserveBuild(stats BuildStats)
	// ObserveSend is called for every Send; applied is false when no edge matched.
	ObserveSend(graphID string, applied bool)
}

// TransitionRecord describes one notified transition. From is empty for the
// notification produced by Start.
type TransitionRecord struct {
	InterpreterID string            `json:"interpreterId" yaml:"interpreterId"`
	GraphID       string            `json:"graphId" yaml:"graphId"`
	From          primitives.Key    `json:"from,omitempty" yaml:"from,omitempty"`
	To            primitives.Key    `json:"to" yaml:"to"`
	ActionKey     primitives.Key    `json:"actionKey,omitempty" yaml:"actionKey,omitempty"`
	Action        primitives.Action `json:"action" yaml:"action"`
	ItemID        string            `json:"itemId,omitempty" yaml:"itemId,omitempty"`
	Timestamp     time.Time         `json:"timestamp" yaml:"timestamp"`
}

// Publisher forwards transition records outside the process-local listeners.
type Publisher interface {
	Publish(record TransitionRecord) error
	Close() error
}

type nopRecorder struct{}

func (nopRecorder) ObserveBuild(BuildStats)  {}
func (nopRecorder) ObserveSend(string, bool) {}
