package reactor

import "github.com/flowgraph/reactor/internal/engine"

// EffectHandle names a deferred side effect registered against one observed
// cell (spec.md section 4.2/4.5). It carries no value of its own; it exists
// so the caller has something to hold onto, the way the teacher's
// `sig.Effect` handle does, even though disposing an effect is out of scope
// here (DESIGN.md, internal/owner.go not carried forward — no Owner tree to
// dispose into).
type EffectHandle struct {
	id engine.CellID
}

// NewEffect registers fn to run, deferred, every time observed's value changes
// (spec.md section 4.5). fn receives the ReactiveContext — so it may itself
// read other cells — and a pointer to the caller-owned external state Ext
// (spec.md section 4.5's "arbitrary host-owned state", e.g. a log, a UI
// widget, a socket). The triggering value is not passed as a parameter; fn
// recovers it with EffectValue[T](ctx), matching bevy_rx's ambient
// EffectData<T> resource (spec.md section 4.5 step 3, internal/engine/effects.go).
func NewEffect[T comparable, Ext any](ctx *ReactiveContext, observed Observable[T], fn func(ctx *ReactiveContext, ext *Ext)) EffectHandle {
	id := observed.cellID()
	bind := func(value any) engine.EffectThunk {
		return func(e *engine.Engine, rawExt any) {
			ext := rawExt.(*Ext)
			e.SetEffectSlot(value)
			defer e.ClearEffectSlot()
			fn(ctx, ext)
		}
	}
	ctx.eng.AttachEffect(id, bind)
	return EffectHandle{id: id}
}

// EffectValue recovers the value that triggered the effect thunk currently
// running, from the ambient slot internal/engine/effects.go's
// SetEffectSlot/EffectSlot maintain. Calling it outside a running thunk
// panics with a type assertion failure, the same as reading any other
// ambient slot that was never populated.
func EffectValue[T any](ctx *ReactiveContext) T {
	return ctx.eng.EffectSlot().(T)
}

// FlushEffects drains every effect queued since the last flush, in the order
// they were queued, passing ext to each (spec.md section 4.5/6, `flush_effects`).
// Ext is supplied once per flush and shared by every thunk that runs during it.
func FlushEffects[Ext any](ctx *ReactiveContext, ext *Ext) {
	ctx.eng.Flush(ext)
}
