// Package core contains the plumbing shared by the iteration and queue
// packages: the locomotive that drives continuation-passing loops, and
// helpers that bridge continuations to channels and blocking waits. It does
// not define scheduling policy itself.
package core
