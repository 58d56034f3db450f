package tasks

import "time"

// DefaultPeriod is the delay used when none is given.
const DefaultPeriod = time.Second

// Scheduler runs f once, no earlier than d from now. Exact timing is not
// guaranteed.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// SchedulerFunc adapts a function to a Scheduler.
type SchedulerFunc func(d time.Duration, f func())

func (fn SchedulerFunc) AfterFunc(d time.Duration, f func()) {
	fn(d, f)
}

// TimerScheduler schedules with time.AfterFunc; f runs on its own goroutine.
type TimerScheduler struct{}

func (TimerScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}
