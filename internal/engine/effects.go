package engine

// EffectThunk is one queued, one-shot side effect: a closure over the exact
// value that triggered it, ready to run against whatever external state the
// caller passes to Flush (spec.md section 4.5).
type EffectThunk func(e *Engine, ext any)

// effectBinding is attached to a cell via AttachEffect. bind captures a specific
// changed value into a thunk at the moment the change is detected (updateValue),
// so that N distinct writes to the same effect-carrying cell produce N distinct
// queued snapshots rather than all observing whatever the cell holds by the time
// Flush eventually runs (spec.md section 8, "Effect batching": "writing to the
// same effect-annotated source N times with alternating values queues exactly N
// thunks").
type effectBinding struct {
	bind func(value any) EffectThunk
}

// AttachEffect annotates cell id with an effect. spec.md section 4.5 allows only
// one effect closure per cell; attaching a second is a programmer error.
func (e *Engine) AttachEffect(id CellID, bind func(value any) EffectThunk) {
	c, ok := e.cells[id]
	if !ok {
		panic(missingCell(id, "attach effect: cell does not exist"))
	}
	if c.effect != nil {
		panic(missingCell(id, "attach effect: cell already carries an effect"))
	}
	c.effect = &effectBinding{bind: bind}
}

// queuedEffect pairs a thunk with the cell id it was raised against, so Flush
// can detect a thunk whose owning cell was retired before the flush reached it
// (StaleEffect, spec.md section 6/7).
type queuedEffect struct {
	owner CellID
	thunk EffectThunk
}

// effectQueue is the FIFO deferred-effect queue of spec.md section 4.5. The
// take-clear-iterate shape is adapted from the teacher's batch flush
// (internal/batcher.go's Batch/onComplete pattern in AnatoleLucet/sig): collect
// everything pending, clear the slot first, then run — so effects queued while
// draining land in the queue fresh rather than being iterated over while they're
// still being appended to.
type effectQueue struct {
	pending []queuedEffect
}

func newEffectQueue() *effectQueue {
	return &effectQueue{}
}

func (q *effectQueue) enqueue(owner CellID, thunk EffectThunk) {
	q.pending = append(q.pending, queuedEffect{owner: owner, thunk: thunk})
}

// take moves the current pending list out and leaves the queue empty, mirroring
// the move-out/move-back discipline used throughout the propagation engine.
func (q *effectQueue) take() []queuedEffect {
	taken := q.pending
	q.pending = nil
	return taken
}

// Flush drains the deferred-effect queue in FIFO (insertion) order, per spec.md
// section 4.5/5. Per the open question in spec.md section 9, this
// implementation documents its choice: effects queued by a thunk that itself
// writes to the graph (a re-entrant write) are not appended to the list taken
// at the start of *this* Flush call — they land in a fresh queue and are only
// run by the *next* Flush call. This keeps one flush a
// bounded, single pass over the effects that were pending when it started,
// which is easier for a caller to reason about than a flush whose length can
// grow while it runs.
//
// Flush must not be called re-entrantly from within a thunk; doing so would
// observe (and drain) the fresh queue a re-entrant write populated, leaving
// nothing for the outer Flush's caller — see DESIGN.md.
func (e *Engine) Flush(ext any) {
	pending := e.queue.take()
	for _, qe := range pending {
		if _, ok := e.cells[qe.owner]; !ok {
			panic(staleEffect(qe.owner, "flush: effect's cell was retired before the flush reached it"))
		}
		qe.thunk(e, ext)
	}
}

// SetEffectSlot places value into the ambient EffectData<T> slot described in
// spec.md section 4.5 step 3, making it visible to the effect closure currently
// running without passing it as an explicit parameter (mirroring bevy_rx's
// `world.insert_resource(EffectData { value })`). Valid only for the duration of
// one thunk's execution.
func (e *Engine) SetEffectSlot(value any) {
	e.effectSlot = value
}

// EffectSlot reads back the value placed by SetEffectSlot.
func (e *Engine) EffectSlot() any {
	return e.effectSlot
}

// ClearEffectSlot empties the ambient slot once a thunk finishes, so a later,
// unrelated read of it (a bug) fails loudly instead of returning stale data.
func (e *Engine) ClearEffectSlot() {
	e.effectSlot = nil
}
