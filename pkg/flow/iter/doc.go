// Package iter provides fixed-length iteration over tasks.
//
// The length of the iterated slice is captured once, before the first step;
// mutating the slice afterwards has no defined effect on the iteration.
//
// Key operations:
// - Each: call a function for every item, one at a time
// - Sequence/Series: run a literal list of steps in order
// - RepeatUntil: run a step until a condition holds (checked after each run)
// - RepeatWhile: thread a result through a task while a condition holds (checked before each run)
package iter
