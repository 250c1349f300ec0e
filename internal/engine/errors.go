package engine

import "fmt"

// ErrorKind distinguishes the fatal error taxonomy of spec.md section 7.
type ErrorKind int

const (
	// ErrMissingCell indicates a handle referred to a cell that is absent from the
	// store, or whose stored value does not match the type the caller asked for.
	// AttachEffect also raises it when the cell already carries an effect.
	ErrMissingCell ErrorKind = iota
	// ErrStaleEffect indicates a deferred effect thunk fired for a cell that was
	// retired before the flush reached it.
	ErrStaleEffect
)

func (k ErrorKind) String() string {
	switch k {
	case ErrMissingCell:
		return "missing cell"
	case ErrStaleEffect:
		return "stale effect"
	default:
		return "unknown"
	}
}

// CellError reports a programmer error against the cell store: a dangling or
// mistyped handle, or a flush racing a retired cell. Per spec.md section 7 these are
// fatal and are not retried or silently recovered; callers let them panic.
type CellError struct {
	Kind ErrorKind
	Cell CellID
	Msg  string
}

func (e *CellError) Error() string {
	return fmt.Sprintf("engine: %s (cell %d): %s", e.Kind, e.Cell, e.Msg)
}

func missingCell(id CellID, msg string) *CellError {
	return &CellError{Kind: ErrMissingCell, Cell: id, Msg: msg}
}

func staleEffect(id CellID, msg string) *CellError {
	return &CellError{Kind: ErrStaleEffect, Cell: id, Msg: msg}
}
