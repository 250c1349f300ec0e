package reactor

import "github.com/flowgraph/reactor/internal/engine"

// Source is a directly writable cell: a lightweight handle (one cell id, zero
// size otherwise) naming a value the caller controls (spec.md section 3/4.2).
// It is unconditionally copyable and carries no compute closure.
type Source[T comparable] struct {
	id engine.CellID
}

// NewSource inserts a cell holding initial with no subscribers (spec.md
// section 6, new_source). T must be comparable, the Go expression of spec.md's
// `T: Eq` requirement: every write is diffed against the current value.
func NewSource[T comparable](ctx *ReactiveContext, initial T) Source[T] {
	id := ctx.eng.Alloc()
	ctx.eng.InstallSource(id, initial)
	return Source[T]{id: id}
}

// Read returns the current value (spec.md section 6, `read<T>(h)`).
func (s Source[T]) Read(ctx *ReactiveContext) T {
	return readValue[T](ctx.eng, s.id)
}

// Write stores value and runs propagation to completion (spec.md section 4.4,
// section 6 `write<T>(s, v)`). Writing the value the cell already holds is a
// no-op: diff-suppression cuts the cascade before it starts.
func (s Source[T]) Write(ctx *ReactiveContext, value T) {
	ctx.eng.Write(s.id, value)
}

// cellID implements Observable[T].
func (s Source[T]) cellID() engine.CellID { return s.id }

var _ Observable[int] = Source[int]{}
