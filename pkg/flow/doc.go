// Package flow defines the task contract shared by the seqflow packages.
//
// A Task is a unit of work that receives a completion continuation and the
// result of the previous task. It signals completion by calling the
// continuation exactly once, synchronously or later from any goroutine,
// with the result handed to the next task.
//
// A task that never calls its continuation stalls whatever is driving it.
// This is the task author's obligation: the engine has no failure channel,
// no timeout and no cancellation.
//
// Related packages:
// - iter: fixed-length iteration (Each, Sequence, Series, RepeatUntil, RepeatWhile)
// - queue: a mutable FIFO of tasks and the Drain loop that consumes it
// - qr: the Runner that serializes appended tasks into resumable batches
// - tasks: ready-made task producers (sync, print, timestamp, delay)
package flow
