package qr

import (
	"sync"

	"github.com/google/uuid"

	"github.com/ib-77/seqflow/pkg/flow"
	"github.com/ib-77/seqflow/pkg/flow/queue"
)

// Runner owns one task queue and threads results across it.
// The zero value is not usable; create Runners with New.
type Runner[T any] struct {
	id   uuid.UUID
	opts options

	mu         sync.Mutex
	running    bool
	lastResult T
	batch      flow.Batch
	queue      *queue.Queue[flow.Task[T]]
}

var _ flow.State[int] = (*Runner[int])(nil)

// New returns an idle Runner with an empty queue.
func New[T any](opts ...Option) *Runner[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Runner[T]{
		id:    uuid.New(),
		opts:  o,
		queue: queue.New[flow.Task[T]](),
	}
}

func (r *Runner[T]) ID() uuid.UUID {
	return r.id
}

// Running reports whether a batch is being drained.
func (r *Runner[T]) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// LastResult returns the result of the most recently completed batch.
func (r *Runner[T]) LastResult() T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastResult
}

// Exec appends task and returns r. When r is idle, task starts a new batch
// and receives LastResult as its input at the time it runs; otherwise it
// joins the current batch. A nil task is ignored.
func (r *Runner[T]) Exec(task flow.Task[T]) *Runner[T] {
	if task == nil {
		return r
	}

	r.mu.Lock()
	if r.running {
		r.queue.Push(task)
		r.batch.Tasks++
		r.mu.Unlock()
		return r
	}

	r.running = true
	r.batch = flow.OpenBatch(r.id, r.opts.clock())
	r.batch.Tasks = 1
	batchID := r.batch.ID
	r.queue.Push(func(next flow.Continuation[T], _ T) {
		task(next, r.LastResult())
	})
	r.mu.Unlock()

	r.opts.logger.Debug("batch started",
		"runner_id", r.id.String(),
		"batch_id", batchID.String(),
	)

	queue.Drain(r.queue, r.drained)
	return r
}

// drained runs when the drain loop finds the queue empty.
func (r *Runner[T]) drained(result T) {
	r.mu.Lock()
	if r.queue.Len() > 0 {
		// An append raced with the drain loop seeing the queue empty.
		r.mu.Unlock()
		queue.DrainFrom(r.queue, result, r.drained)
		return
	}

	r.running = false
	r.lastResult = result
	b := r.batch.Close(r.opts.clock())
	r.mu.Unlock()

	r.opts.logger.Debug("batch finished",
		"runner_id", r.id.String(),
		"batch_id", b.ID.String(),
		"tasks", b.Tasks,
		"elapsed", b.Elapsed(),
	)

	if r.opts.onBatch != nil {
		r.opts.onBatch(b)
	}
}
