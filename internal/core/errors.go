package core

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidInitialState is returned by Start when the graph's initial key names no state.
	// This happens when a preselection projects to a combination no catalog item produced.
	ErrInvalidInitialState = errors.New("invalid initial state")
	// ErrNotStarted is returned by accessors that need an active state before Start succeeded.
	ErrNotStarted = errors.New("interpreter not started")
	// ErrStopped is returned by Start once the interpreter was stopped.
	ErrStopped = errors.New("interpreter stopped")
)
