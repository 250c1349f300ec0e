package engine

// InstallSource inserts a new cell holding initial with an empty subscriber list
// (spec.md section 6, new_source). id must have come from Alloc and must not
// already be installed.
func (e *Engine) InstallSource(id CellID, initial any) {
	c := newCell()
	c.value = initial
	c.hasValue = true
	e.cells[id] = c
}

// InstallMemo inserts a new cell carrying compute, with no value yet. The caller
// (the reactor package's NewMemoN) must call Recompute(id) once immediately
// afterward to populate the value and install the initial subscriptions
// (spec.md section 6, new_memo: "immediately executes the compute once").
func (e *Engine) InstallMemo(id CellID, compute ComputeFunc) {
	c := newCell()
	c.compute = compute
	e.cells[id] = c
}

// Value returns the current boxed value of id, and whether id is present.
func (e *Engine) Value(id CellID) (any, bool) {
	c, ok := e.cells[id]
	if !ok || !c.hasValue {
		return nil, false
	}
	return c.value, true
}

// AddSubscriber records that sub reads dep as of the run currently executing:
// dep gains sub in its subscriber set (I3: set semantics, idempotent), and sub
// gains dep in its own reverse dependency set (used only by Retire). This is the
// install half of the dependency-recorder contract (spec.md section 4.3, steps 1-2).
func (e *Engine) AddSubscriber(dep, sub CellID) {
	depCell, ok := e.cells[dep]
	if !ok {
		panic(missingCell(dep, "subscribe: dependency does not exist"))
	}
	subCell, ok := e.cells[sub]
	if !ok {
		panic(missingCell(sub, "subscribe: subscriber does not exist"))
	}
	depCell.subscribers[sub] = struct{}{}
	subCell.deps[dep] = struct{}{}
}

// resetDeps clears id's recorded reverse-dependency set immediately before its
// compute closure runs, so the set reflects only what this run actually reads
// (mirrors the per-run rebuild the core applies to subscriber lists; see
// SPEC_FULL.md section D.2 on Retire).
func (e *Engine) resetDeps(id CellID) {
	c := e.cells[id]
	c.deps = make(map[CellID]struct{})
}

// Retire removes a cell from the store and unsubscribes it from every cell it
// currently depends on. This is the explicit deletion operation spec.md section 9
// leaves as an open, implementer's-choice extension (SPEC_FULL.md section D.2).
//
// Retiring a cell that still has live subscribers is a programmer error: any
// later attempt to read or recompute through a dangling subscription surfaces as
// MissingCell, per spec.md's fatal-error policy. Retire does not cascade.
func (e *Engine) Retire(id CellID) {
	c, ok := e.cells[id]
	if !ok {
		return
	}
	for dep := range c.deps {
		if depCell, ok := e.cells[dep]; ok {
			delete(depCell.subscribers, id)
		}
	}
	delete(e.cells, id)
}
