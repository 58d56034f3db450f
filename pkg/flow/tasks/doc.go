// Package tasks contains ready-made task producers: synchronous wrappers,
// printing, timestamps and delays. Every producer returns a flow.Task that
// threads its input result through unchanged, except Format-style printers
// which only change what is printed, never the result.
//
// Delays go through a Scheduler, an injected deferred-invocation primitive.
// TimerScheduler is the default and is backed by the runtime timers.
package tasks
