package reactor

import "github.com/flowgraph/reactor/internal/engine"

// Memo is a cell whose value is produced by a compute closure over other
// cells, kept current by propagation and cached between writes (spec.md
// section 3/4.2). Memo does not expose Write: its value can only change as a
// consequence of a write to one of its declared inputs.
type Memo[T comparable] struct {
	id engine.CellID
}

// Read returns the current, already-up-to-date value (spec.md section 6,
// `read<T>(h)`). Memos are eager, not lazy (spec.md section 1 Non-goals): the
// value here always reflects the most recent propagation, never a pending
// recomputation.
func (m Memo[T]) Read(ctx *ReactiveContext) T {
	return readValue[T](ctx.eng, m.id)
}

// cellID implements Observable[T].
func (m Memo[T]) cellID() engine.CellID { return m.id }

var _ Observable[int] = Memo[int]{}

func newMemo[T comparable](ctx *ReactiveContext, compute engine.ComputeFunc) Memo[T] {
	id := ctx.eng.Alloc()
	ctx.eng.InstallMemo(id, compute)
	ctx.eng.Recompute(id)
	return Memo[T]{id: id}
}

// NewMemo1 declares a memo over a single input cell. The compute function is
// the closed, statically-typed dependency set of spec.md section 4.3: it reads
// exactly this one input, every run, by construction.
func NewMemo1[A, T comparable](ctx *ReactiveContext, a Observable[A], fn func(A) T) Memo[T] {
	compute := func(e *engine.Engine, self engine.CellID) any {
		av := readAndSubscribe[A](e, a.cellID(), self)
		return fn(av)
	}
	return newMemo[T](ctx, compute)
}

// NewMemo2 declares a memo over two input cells (spec.md S1 "two-button lock",
// S2 "diamond").
func NewMemo2[A, B, T comparable](ctx *ReactiveContext, a Observable[A], b Observable[B], fn func(A, B) T) Memo[T] {
	compute := func(e *engine.Engine, self engine.CellID) any {
		av := readAndSubscribe[A](e, a.cellID(), self)
		bv := readAndSubscribe[B](e, b.cellID(), self)
		return fn(av, bv)
	}
	return newMemo[T](ctx, compute)
}

// NewMemo3 declares a memo over three input cells.
func NewMemo3[A, B, C, T comparable](ctx *ReactiveContext, a Observable[A], b Observable[B], c Observable[C], fn func(A, B, C) T) Memo[T] {
	compute := func(e *engine.Engine, self engine.CellID) any {
		av := readAndSubscribe[A](e, a.cellID(), self)
		bv := readAndSubscribe[B](e, b.cellID(), self)
		cv := readAndSubscribe[C](e, c.cellID(), self)
		return fn(av, bv, cv)
	}
	return newMemo[T](ctx, compute)
}

// NewMemo4 declares a memo over four input cells.
func NewMemo4[A, B, C, D, T comparable](ctx *ReactiveContext, a Observable[A], b Observable[B], c Observable[C], d Observable[D], fn func(A, B, C, D) T) Memo[T] {
	compute := func(e *engine.Engine, self engine.CellID) any {
		av := readAndSubscribe[A](e, a.cellID(), self)
		bv := readAndSubscribe[B](e, b.cellID(), self)
		cv := readAndSubscribe[C](e, c.cellID(), self)
		dv := readAndSubscribe[D](e, d.cellID(), self)
		return fn(av, bv, cv, dv)
	}
	return newMemo[T](ctx, compute)
}

// NewMemo5 declares a memo over five input cells.
func NewMemo5[A, B, C, D, E, T comparable](ctx *ReactiveContext, a Observable[A], b Observable[B], c Observable[C], d Observable[D], e Observable[E], fn func(A, B, C, D, E) T) Memo[T] {
	compute := func(eng *engine.Engine, self engine.CellID) any {
		av := readAndSubscribe[A](eng, a.cellID(), self)
		bv := readAndSubscribe[B](eng, b.cellID(), self)
		cv := readAndSubscribe[C](eng, c.cellID(), self)
		dv := readAndSubscribe[D](eng, d.cellID(), self)
		ev := readAndSubscribe[E](eng, e.cellID(), self)
		return fn(av, bv, cv, dv, ev)
	}
	return newMemo[T](ctx, compute)
}

// NewMemo6 declares a memo over six input cells. spec.md section 4.3 allows the
// recorder to generalize "up to an implementation-defined maximum, e.g., 32";
// six is this module's bound (SPEC_FULL.md section D.1) — Go has no variadic
// generics to expand the arity automatically the way the original source's
// `all_tuples_with_size!` macro does, so each arity is hand-written and the
// list stops where real call sites stop needing more.
func NewMemo6[A, B, C, D, E, F, T comparable](ctx *ReactiveContext, a Observable[A], b Observable[B], c Observable[C], d Observable[D], e Observable[E], f Observable[F], fn func(A, B, C, D, E, F) T) Memo[T] {
	compute := func(eng *engine.Engine, self engine.CellID) any {
		av := readAndSubscribe[A](eng, a.cellID(), self)
		bv := readAndSubscribe[B](eng, b.cellID(), self)
		cv := readAndSubscribe[C](eng, c.cellID(), self)
		dv := readAndSubscribe[D](eng, d.cellID(), self)
		ev := readAndSubscribe[E](eng, e.cellID(), self)
		fv := readAndSubscribe[F](eng, f.cellID(), self)
		return fn(av, bv, cv, dv, ev, fv)
	}
	return newMemo[T](ctx, compute)
}
