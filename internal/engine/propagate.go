package engine

// Write implements spec.md section 4.4 end to end: it is the only entry point
// into propagation. It is grounded directly on the original source's
// SignalData::send_signal (signal.rs) and ObservableData::update_value
// (observable.rs): diff, take-and-replace, push subscribers onto an explicit
// stack, and drain the stack with an iterative loop rather than recursion.
//
// This plain LIFO stack is run-to-completion, not glitch-free: a join cell
// with two inputs sharing a common ancestor can be popped and recomputed
// against a stale sibling input before that sibling's own update reaches the
// stack, producing a transient recompute that a later pop then corrects. This
// is inherited as-is from the grounding in signal.rs/observable.rs, which has
// the same property; see DESIGN.md.
func (e *Engine) Write(id CellID, value any) {
	var stack []CellID
	e.updateValue(id, value, &stack)
	e.drain(&stack)
}

// drain pops cells off the work stack and recomputes each one, in LIFO order
// (spec.md section 4.4, step 6; the tie-break called out there: "the order they
// are popped is the reverse of insertion"). Recomputing a cell may push further
// subscribers onto the same stack, so the loop continues until it is empty
// (step 5-6), with no recursion and therefore no call-stack depth proportional
// to graph depth (spec.md section 4.4 "Properties", section 9 "Iterative
// propagation").
func (e *Engine) drain(stack *[]CellID) {
	for len(*stack) > 0 {
		n := len(*stack) - 1
		next := (*stack)[n]
		*stack = (*stack)[:n]
		e.recompute(next, stack)
	}
}

// recompute runs one memo's compute closure and applies the result. The closure
// is moved out of the cell before being invoked and moved back in afterward
// (spec.md section 4.4 step 6b/6e; section 9 "move-out/move-back around
// callbacks"): a compute closure that tries to re-enter its own cell mid-run
// (a runtime cycle) observes a nil compute and a programmer-visible failure,
// rather than silently recursing forever.
func (e *Engine) recompute(id CellID, stack *[]CellID) {
	c, ok := e.cells[id]
	if !ok || c.compute == nil {
		panic(missingCell(id, "recompute: cell has no compute closure (removed, retired, or reentered during its own run)"))
	}

	e.resetDeps(id)

	fn := c.compute
	c.compute = nil
	value := fn(e, id)
	c.compute = fn

	e.updateValue(id, value, stack)
}

// Recompute runs a freshly installed memo's compute closure for the very first
// time, populating its value and initial subscriptions (spec.md section 6,
// new_memo). A brand-new memo has no subscribers of its own yet, so the local
// work stack this seeds ends up empty; it is drained anyway, through the same
// loop Write uses.
func (e *Engine) Recompute(id CellID) {
	var stack []CellID
	e.recompute(id, &stack)
	e.drain(&stack)
}

// updateValue applies the diff-suppression and cascade rules shared by Write and
// recompute (spec.md section 4.4 steps 1-4, and the "update_value" sub-algorithm
// referenced in step 6d). It is the single place that decides whether a change
// is real, and if so: replaces the value, hands the taken subscriber set to the
// caller's stack, and queues a deferred effect when the cell carries one.
func (e *Engine) updateValue(id CellID, value any, stack *[]CellID) {
	c, ok := e.cells[id]
	if !ok {
		// spec.md section 4.4 step 1: an absent cell is created with no
		// subscribers; nothing could yet be subscribed to it, so there is
		// nothing to propagate.
		nc := newCell()
		nc.value = value
		nc.hasValue = true
		e.cells[id] = nc
		return
	}

	if c.hasValue && isEqual(c.value, value) {
		return // step 2: diff-suppression, the whole point of the cascade cut.
	}

	c.value = value
	c.hasValue = true

	// step 3: take the subscriber list, leaving it empty. Subscribers that
	// re-read this cell on their own run will reinstall themselves
	// (spec.md invariant I4); this is what makes pruning automatic.
	subs := c.subscribers
	c.subscribers = make(map[CellID]struct{})
	for sub := range subs {
		*stack = append(*stack, sub)
	}

	// step 4: an effect-carrying cell whose value changed queues one thunk per
	// change, diff-suppressed exactly like everything else (spec.md section 8,
	// "Effect batching").
	if c.effect != nil {
		e.queue.enqueue(id, c.effect.bind(value))
	}
}

// isEqual compares two boxed values of the same concrete type. The reactor
// package only ever boxes types satisfying Go's comparable constraint (the
// translation of spec.md's `T: Eq`), so `==` on the interface values never hits
// Go's "comparison of uncomparable type" panic.
func isEqual(a, b any) bool {
	return a == b
}
