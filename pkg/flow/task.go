package flow

// Continuation is called by a Task to signal completion with its result.
type Continuation[T any] func(result T)

// Task is a schedulable unit of work. prev holds the previous task's result
// (the zero value when there is none). next must be called exactly once.
type Task[T any] func(next Continuation[T], prev T)

// Step is the non-threading shape of a Task used by fixed sequences and
// repeat loops: advance moves to the next step.
type Step func(advance func())

// Invoke calls fn with v when fn is set. A nil continuation is a no-op, so
// every optional completion callback can be omitted.
func Invoke[T any](fn Continuation[T], v T) {
	if fn != nil {
		fn(v)
	}
}

// Call calls fn when it is set.
func Call(fn func()) {
	if fn != nil {
		fn()
	}
}

// Through returns a Task that runs fn and then continues with the input
// result unchanged.
func Through[T any](fn func(prev T)) Task[T] {
	return func(next Continuation[T], prev T) {
		if fn != nil {
			fn(prev)
		}
		next(prev)
	}
}
