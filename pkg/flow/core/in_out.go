package core

import (
	"context"
	"sync"

	"github.com/ib-77/seqflow/pkg/flow"
)

// ToChan calls start with a continuation and returns a channel that receives
// the first value passed to it. The channel is buffered, so a continuation
// fired with nobody listening never blocks.
func ToChan[T any](start func(done flow.Continuation[T])) <-chan T {
	out := make(chan T, 1)
	var once sync.Once

	start(func(v T) {
		once.Do(func() {
			out <- v
			close(out)
		})
	})

	return out
}

// Signal is ToChan for zero-argument completion callbacks.
func Signal(start func(done func())) <-chan struct{} {
	return ToChan(func(done flow.Continuation[struct{}]) {
		start(func() { done(struct{}{}) })
	})
}

// Await calls start and blocks until its continuation fires or ctx is done.
// A done ctx only stops the wait; the work keeps going.
func Await[T any](ctx context.Context, start func(done flow.Continuation[T])) (T, error) {
	select {
	case v := <-ToChan(start):
		return v, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
