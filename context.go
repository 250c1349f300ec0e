package reactor

import "github.com/flowgraph/reactor/internal/engine"

// ReactiveContext is the single facade of spec.md section 2, component 6: it
// owns one cell store and one deferred-effect queue, and is the only thing
// every operation in this package (new_source/new_memo/new_effect, read,
// write, flush_effects) takes as an argument. Unlike the teacher's
// goroutine-keyed global runtime registry, there is no ambient lookup: callers
// construct one explicitly and thread it through, the way bevy_rx threads a
// `&mut ReactiveContext` (itself an ECS resource wrapping a `World`).
//
// A *ReactiveContext is not safe for concurrent use; spec.md section 5 assumes
// a single logical executor holds exclusive access for the duration of any one
// operation.
type ReactiveContext struct {
	eng *engine.Engine
}

// NewReactiveContext creates an empty reactive graph: no cells, no queued
// effects.
func NewReactiveContext() *ReactiveContext {
	return &ReactiveContext{eng: engine.New()}
}

// Retire removes h's cell from the graph and unsubscribes it from every cell it
// currently depends on (SPEC_FULL.md section D.2; spec.md section 9's open
// question about cell deletion). Retiring a cell that still has live
// subscribers is a programmer error: a later read or recompute through the
// dangling subscription surfaces as MissingCell.
func Retire[T any](ctx *ReactiveContext, h Observable[T]) {
	ctx.eng.Retire(h.cellID())
}
