package flow

import "github.com/google/uuid"

// State exposes the scheduling state of a task runner.
type State[T any] interface {
	// ID identifies the runner
	ID() uuid.UUID
	// Running reports whether a drain loop is active
	Running() bool
	// LastResult returns the result of the most recently completed batch
	LastResult() T
}
