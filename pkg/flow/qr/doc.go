// Package qr provides Runner, a fluent queue runner that serializes tasks.
//
// Tasks appended to one Runner execute strictly in append order, one at a
// time, each receiving the result its predecessor passed to the
// continuation. Appends may happen at any moment: before a chain starts,
// from inside a running task, or from other goroutines while the runner is
// draining. Independent Runners have no ordering relationship.
//
// A Runner alternates between two states:
//   - idle: the next append starts a new batch, whose first task receives the
//     result of the previous batch (read when that task executes)
//   - draining: appends join the in-flight batch and receive the live result
//
// Key operations:
// - Exec: append any flow.Task
// - Sync/Log/Print/LogFunc/Ts: synchronous side effects
// - Delay/Wait/Sleep: suspend for an interval via the configured scheduler
// - RepeatWhen: repeat a step until a condition holds
package qr
