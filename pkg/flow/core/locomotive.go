package core

import (
	"sync"

	"github.com/ib-77/seqflow/pkg/flow"
)

// Locomotive drives a continuation-passing loop starting from seed.
//
// step receives the current value and a continuation. It returns true when
// it handed the continuation to a task and false when the loop is over.
// A continuation called before step returns makes Locomotive loop instead of
// recursing, so long runs of synchronous tasks use constant stack. A
// continuation called later resumes the loop on the caller's goroutine.
// Only the first call of each continuation is honored.
func Locomotive[T any](seed T, step func(in T, next flow.Continuation[T]) bool) {
	in := seed
	for {
		h := &hop[T]{}
		if !step(in, h.continuation(step)) {
			return
		}
		v, fired := h.leave()
		if !fired {
			return
		}
		in = v
	}
}

// hop is the hand-off between one step and the next.
type hop[T any] struct {
	mu       sync.Mutex
	returned bool
	fired    bool
	value    T
}

func (h *hop[T]) continuation(step func(T, flow.Continuation[T]) bool) flow.Continuation[T] {
	return func(v T) {
		h.mu.Lock()
		if h.fired {
			h.mu.Unlock()
			return
		}
		h.fired = true
		if !h.returned {
			h.value = v
			h.mu.Unlock()
			return
		}
		h.mu.Unlock()

		Locomotive(v, step)
	}
}

func (h *hop[T]) leave() (T, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.returned = true
	return h.value, h.fired
}
