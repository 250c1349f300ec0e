package reactor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flowgraph/reactor"
)

func TestSource(t *testing.T) {
	t.Run("read and write", func(t *testing.T) {
		ctx := reactor.NewReactiveContext()
		count := reactor.NewSource(ctx, 0)
		assert.Equal(t, 0, count.Read(ctx))

		count.Write(ctx, 10)
		assert.Equal(t, 10, count.Read(ctx))
	})

	t.Run("writing the same value is a no-op", func(t *testing.T) {
		ctx := reactor.NewReactiveContext()
		count := reactor.NewSource(ctx, 5)
		runs := 0

		reactor.NewMemo1(ctx, count, func(v int) int {
			runs++
			return v
		})
		assert.Equal(t, 1, runs)

		count.Write(ctx, 5)
		assert.Equal(t, 1, runs, "diff-suppression must cut the cascade before the memo reruns")
	})

	t.Run("zero values", func(t *testing.T) {
		ctx := reactor.NewReactiveContext()
		label := reactor.NewSource(ctx, "")
		assert.Equal(t, "", label.Read(ctx))

		label.Write(ctx, "ready")
		assert.Equal(t, "ready", label.Read(ctx))
	})
}
