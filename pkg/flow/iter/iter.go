package iter

import (
	"github.com/ib-77/seqflow/pkg/flow"
	"github.com/ib-77/seqflow/pkg/flow/core"
)

// Each calls fn with items[0], items[1], ... in order. Each call must invoke
// advance to move on. onComplete is called once after the last item.
func Each[E any](fn func(item E, advance func()), items []E, onComplete func()) {
	n := len(items)
	i := 0

	core.Locomotive(struct{}{}, func(_ struct{}, next flow.Continuation[struct{}]) bool {
		if i >= n {
			flow.Call(onComplete)
			return false
		}
		item := items[i]
		i++
		fn(item, func() { next(struct{}{}) })
		return true
	})
}

// Sequence runs steps in order, then calls onComplete.
func Sequence(steps []flow.Step, onComplete func()) {
	Each(func(step flow.Step, advance func()) {
		step(advance)
	}, steps, onComplete)
}

// Series runs the given steps in order.
func Series(steps ...flow.Step) {
	Sequence(steps, nil)
}

// RepeatUntil runs step, and after every completion checks until. It stops
// at the first true and calls onComplete. step always runs at least once;
// if until never holds the loop never ends.
func RepeatUntil(step flow.Step, until func() bool, onComplete func()) {
	started := false

	core.Locomotive(struct{}{}, func(_ struct{}, next flow.Continuation[struct{}]) bool {
		if started && until() {
			flow.Call(onComplete)
			return false
		}
		started = true
		step(func() { next(struct{}{}) })
		return true
	})
}

// RepeatWhile runs task while while(result) holds, starting from seed and
// feeding each task the previous one's result. The condition is checked
// before every run, so task may not run at all. The final result goes to
// onComplete.
func RepeatWhile[T any](task flow.Task[T], while func(result T) bool, onComplete flow.Continuation[T], seed T) {
	core.Locomotive(seed, func(result T, next flow.Continuation[T]) bool {
		if !while(result) {
			flow.Invoke(onComplete, result)
			return false
		}
		task(next, result)
		return true
	})
}
