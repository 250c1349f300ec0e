// Package reactor implements a synchronous, run-to-completion reactive value
// graph: writable source cells, derived memo cells recomputed from an
// explicit, statically-typed list of inputs, and deferred side effects
// flushed in the order they were queued.
//
// A write to a Source propagates immediately and exhaustively: every memo
// transitively downstream is recomputed before Write returns, using an
// iterative work stack rather than recursion, so propagation depth does not
// grow the call stack. A cell whose recomputed value compares equal to its
// previous one cuts the cascade there; nothing further downstream reruns.
//
// The graph is eventually consistent, not glitch-free: a join that reads two
// inputs sharing a common ancestor can be popped and recomputed against one
// input's new value while the other is still stale, before a later pop
// settles it again against both updated values. An effect attached to such a
// join observes every one of those intermediate recomputations, not just the
// final one — each counts as a distinct "change" under the same diffing rule
// that governs everything else.
//
// There is no ambient dependency tracking. A memo's inputs are fixed at
// construction time (NewMemo1 through NewMemo6, one per arity); nothing is
// inferred from which cells a closure happens to read.
//
// Effects are not ambient either: NewEffect attaches one deferred thunk to a
// single observed cell, and FlushEffects drains every thunk queued since the
// previous flush, each against the value that queued it.
//
// Every operation takes an explicit *ReactiveContext; there is no global or
// goroutine-local registry, and a context is not safe for concurrent use.
package reactor
