package qr

import (
	"time"

	"github.com/ib-77/seqflow/pkg/flow"
	"github.com/ib-77/seqflow/pkg/flow/iter"
	"github.com/ib-77/seqflow/pkg/flow/tasks"
)

// Sync appends a task that runs fn and continues with its input unchanged.
func (r *Runner[T]) Sync(fn func()) *Runner[T] {
	return r.Exec(tasks.Sync[T](fn))
}

// Log appends a task that prints msg.
func (r *Runner[T]) Log(msg any) *Runner[T] {
	return r.Exec(tasks.Log[T](r.opts.out, msg))
}

// Print appends a task that prints the threaded result.
func (r *Runner[T]) Print() *Runner[T] {
	return r.Exec(tasks.Print[T](r.opts.out))
}

// LogFunc appends a task that prints fn applied to the threaded result.
func (r *Runner[T]) LogFunc(fn func(result T) any) *Runner[T] {
	return r.Exec(tasks.Format[T](r.opts.out, fn))
}

// Ts appends a task that prints the current time.
func (r *Runner[T]) Ts() *Runner[T] {
	return r.Exec(tasks.Timestamp[T](r.opts.out, r.opts.clock, r.opts.timeLayout))
}

// Delay appends a task that runs fn and then waits for period, or for the
// default delay when period is omitted.
func (r *Runner[T]) Delay(fn func(), period ...time.Duration) *Runner[T] {
	return r.Exec(tasks.Delayed[T](r.opts.scheduler, fn, r.period(period)))
}

// Wait appends a pure delay.
func (r *Runner[T]) Wait(period ...time.Duration) *Runner[T] {
	return r.Exec(tasks.Sleep[T](r.opts.scheduler, r.period(period)))
}

// Sleep is an alias of Wait.
func (r *Runner[T]) Sleep(period ...time.Duration) *Runner[T] {
	return r.Wait(period...)
}

// RepeatWhen appends a task that runs step until until reports true,
// checking after every run. step runs at least once. The threaded result
// passes through unchanged.
func (r *Runner[T]) RepeatWhen(step flow.Step, until func() bool) *Runner[T] {
	if step == nil || until == nil {
		return r
	}
	return r.Exec(func(next flow.Continuation[T], prev T) {
		iter.RepeatUntil(step, until, func() { next(prev) })
	})
}

func (r *Runner[T]) period(p []time.Duration) time.Duration {
	if len(p) == 0 {
		return r.opts.defaultDelay
	}
	return p[0]
}
