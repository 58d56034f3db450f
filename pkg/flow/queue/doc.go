// Package queue implements the dynamic task queue and the drain loop that
// consumes it.
//
// Unlike the fixed sequences in package iter, a Queue is read destructively
// from the front and its length is checked again before every step, so
// tasks pushed while a drain is in flight are still processed before the
// drain reports completion.
package queue
