package reactor

import "github.com/flowgraph/reactor/internal/engine"

// CellError reports a fatal, programmer-facing failure against the cell store:
// a handle from a different context, a handle whose cell was retired, or a
// flush racing a retired cell's effect. spec.md section 7 treats every one of
// these as fatal; CellError is the panic value the public API raises for them.
type CellError = engine.CellError

// ErrorKind distinguishes why a CellError was raised.
type ErrorKind = engine.ErrorKind

const (
	// ErrMissingCell: a handle refers to a non-existent cell or the wrong value
	// type (spec.md section 6/7, "MissingCell"). NewEffect also raises it when
	// the observed cell already carries an effect.
	ErrMissingCell = engine.ErrMissingCell
	// ErrStaleEffect: an effect's cell was removed before FlushEffects reached it
	// (spec.md section 6/7, "StaleEffect").
	ErrStaleEffect = engine.ErrStaleEffect
)
