package reactor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flowgraph/reactor"
)

func TestReactiveContext(t *testing.T) {
	t.Run("new context holds a new source's initial value", func(t *testing.T) {
		ctx := reactor.NewReactiveContext()
		s := reactor.NewSource(ctx, 7)
		assert.Equal(t, 7, s.Read(ctx))
	})

	t.Run("retire removes a cell", func(t *testing.T) {
		ctx := reactor.NewReactiveContext()
		s := reactor.NewSource(ctx, 1)
		reactor.Retire(ctx, s)

		assert.Panics(t, func() {
			s.Read(ctx)
		})
	})

	t.Run("retire unsubscribes a memo from its inputs", func(t *testing.T) {
		ctx := reactor.NewReactiveContext()
		a := reactor.NewSource(ctx, 1)
		m := reactor.NewMemo1(ctx, a, func(v int) int { return v * 2 })
		reactor.Retire(ctx, m)

		// a no longer has m as a subscriber, so writing to it must not panic
		// trying to recompute a retired cell.
		assert.NotPanics(t, func() {
			a.Write(ctx, 2)
		})
	})
}
