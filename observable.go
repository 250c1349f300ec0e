package reactor

import "github.com/flowgraph/reactor/internal/engine"

// Observable is the internal capability every handle carries: a cell id plus a
// compile-time type witness T (spec.md section 4.2). It is the parameter type
// NewMemoN and NewEffect accept for their inputs, so both Source[T] and Memo[T]
// can be used interchangeably as a dependency.
type Observable[T any] interface {
	cellID() engine.CellID
}

// readValue resolves h's current boxed value and downcasts it to T, panicking
// with a CellError if the cell is absent or holds a different type. This is the
// one place outside the dependency recorder that crosses the any/T boundary for
// a plain read (spec.md section 6, `read<T>(h)`).
func readValue[T any](eng *engine.Engine, id engine.CellID) T {
	raw, ok := eng.Value(id)
	if !ok {
		panic(&engine.CellError{Kind: engine.ErrMissingCell, Cell: id, Msg: "read: cell does not exist"})
	}
	value, ok := raw.(T)
	if !ok {
		panic(&engine.CellError{Kind: engine.ErrMissingCell, Cell: id, Msg: "read: cell holds a different type"})
	}
	return value
}

// readAndSubscribe is the dependency-recorder contract of spec.md section 4.3:
// resolve the input cell, add the reading memo as a subscriber (step 2), then
// read its current value (step 3). It is called once per declared input, every
// time a memo's compute closure runs.
func readAndSubscribe[T any](eng *engine.Engine, dep, sub engine.CellID) T {
	eng.AddSubscriber(dep, sub)
	return readValue[T](eng, dep)
}
