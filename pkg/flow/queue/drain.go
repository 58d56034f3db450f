package queue

import (
	"github.com/ib-77/seqflow/pkg/flow"
	"github.com/ib-77/seqflow/pkg/flow/core"
)

// Drain consumes q front to back. Each task receives the result its
// predecessor passed to the continuation; the first one receives the zero
// value. When q is found empty, onComplete gets the last result.
func Drain[T any](q *Queue[flow.Task[T]], onComplete flow.Continuation[T]) {
	var zero T
	DrainFrom(q, zero, onComplete)
}

// DrainFrom is Drain with seed handed to the first task.
func DrainFrom[T any](q *Queue[flow.Task[T]], seed T, onComplete flow.Continuation[T]) {
	core.Locomotive(seed, func(result T, next flow.Continuation[T]) bool {
		task, ok := q.Shift()
		if !ok {
			flow.Invoke(onComplete, result)
			return false
		}
		task(next, result)
		return true
	})
}
