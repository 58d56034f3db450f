package tasks

import (
	"fmt"
	"io"
	"time"

	"github.com/ib-77/seqflow/pkg/flow"
)

// DefaultTimeLayout is the layout Timestamp uses when none is given.
const DefaultTimeLayout = "2006-01-02 15:04:05.000"

// Sync wraps fn in a task that runs it and continues immediately.
func Sync[T any](fn func()) flow.Task[T] {
	return flow.Through(func(T) {
		flow.Call(fn)
	})
}

// Log prints msg on its own line.
func Log[T any](w io.Writer, msg any) flow.Task[T] {
	return flow.Through(func(T) {
		_, _ = fmt.Fprintln(w, msg)
	})
}

// Print prints the threaded result.
func Print[T any](w io.Writer) flow.Task[T] {
	return Format[T](w, nil)
}

// Format prints fn applied to the threaded result. A nil fn prints the
// result itself.
func Format[T any](w io.Writer, fn func(result T) any) flow.Task[T] {
	return func(next flow.Continuation[T], prev T) {
		var out any = prev
		if fn != nil {
			out = fn(prev)
		}
		_, _ = fmt.Fprintln(w, out)
		next(prev)
	}
}

// Timestamp prints the time reported by clock, formatted with layout.
func Timestamp[T any](w io.Writer, clock func() time.Time, layout string) flow.Task[T] {
	if clock == nil {
		clock = time.Now
	}
	if layout == "" {
		layout = DefaultTimeLayout
	}
	return func(next flow.Continuation[T], prev T) {
		_, _ = fmt.Fprintln(w, clock().Format(layout))
		next(prev)
	}
}

// Delayed runs fn (if set) and then suspends for d before continuing.
func Delayed[T any](s Scheduler, fn func(), d time.Duration) flow.Task[T] {
	if s == nil {
		s = TimerScheduler{}
	}
	return func(next flow.Continuation[T], prev T) {
		flow.Call(fn)
		s.AfterFunc(d, func() {
			next(prev)
		})
	}
}

// Sleep is Delayed without a function.
func Sleep[T any](s Scheduler, d time.Duration) flow.Task[T] {
	return Delayed[T](s, nil, d)
}
