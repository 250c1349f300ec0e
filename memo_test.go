package reactor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flowgraph/reactor"
)

func TestMemo(t *testing.T) {
	t.Run("single input", func(t *testing.T) {
		ctx := reactor.NewReactiveContext()
		count := reactor.NewSource(ctx, 3)
		double := reactor.NewMemo1(ctx, count, func(v int) int { return v * 2 })

		assert.Equal(t, 6, double.Read(ctx))

		count.Write(ctx, 5)
		assert.Equal(t, 10, double.Read(ctx))
	})

	// S1, "two-button lock": a door unlocks only while both buttons are held.
	// Each button is an independent source; the lock is a memo over both.
	t.Run("two-button lock", func(t *testing.T) {
		ctx := reactor.NewReactiveContext()
		left := reactor.NewSource(ctx, false)
		right := reactor.NewSource(ctx, false)
		unlocked := reactor.NewMemo2(ctx, left, right, func(l, r bool) bool { return l && r })

		assert.False(t, unlocked.Read(ctx))

		left.Write(ctx, true)
		assert.False(t, unlocked.Read(ctx))

		right.Write(ctx, true)
		assert.True(t, unlocked.Read(ctx))

		left.Write(ctx, false)
		assert.False(t, unlocked.Read(ctx))
	})

	// S2, "diamond": two memos derive from the same source, and a third memo
	// combines both; the combined value settles to the sum of both derived
	// values, after a transient recompute against one stale input.
	t.Run("diamond", func(t *testing.T) {
		ctx := reactor.NewReactiveContext()
		base := reactor.NewSource(ctx, 2)
		double := reactor.NewMemo1(ctx, base, func(v int) int { return v * 2 })
		quad := reactor.NewMemo1(ctx, base, func(v int) int { return v * 4 })

		runs := 0
		sum := reactor.NewMemo2(ctx, double, quad, func(a, b int) int {
			runs++
			return a + b
		})

		assert.Equal(t, 12, sum.Read(ctx))
		assert.Equal(t, 1, runs)

		base.Write(ctx, 3)
		assert.Equal(t, 18, sum.Read(ctx))
		assert.Equal(t, 3, runs, "the stack engine is not glitch-free: sum is popped and "+
			"recomputed against a stale input before the second input catches up, so it "+
			"reruns twice per write (once stale, once settled), on top of its initial run")
	})

	// S3: a long linear chain propagates without recursion, so a chain of
	// thousands of cells does not risk a stack overflow (spec.md section 4.4's
	// iterative, explicit-stack traversal).
	t.Run("long chain", func(t *testing.T) {
		ctx := reactor.NewReactiveContext()
		const depth = 1000

		head := reactor.NewSource(ctx, 0)
		var tail reactor.Observable[int] = head
		for i := 0; i < depth; i++ {
			tail = reactor.NewMemo1(ctx, tail, func(v int) int { return v + 1 })
		}

		last, ok := tail.(reactor.Memo[int])
		assert.True(t, ok)
		assert.Equal(t, depth, last.Read(ctx))

		head.Write(ctx, 10)
		assert.Equal(t, depth+10, last.Read(ctx))
	})

	// S5: diff-suppression cuts a cascade partway through a chain when an
	// intermediate memo's output does not actually change.
	t.Run("diff suppression across a chain", func(t *testing.T) {
		ctx := reactor.NewReactiveContext()
		count := reactor.NewSource(ctx, 0)

		evenRuns := 0
		isEven := reactor.NewMemo1(ctx, count, func(v int) bool {
			evenRuns++
			return v%2 == 0
		})

		labelRuns := 0
		label := reactor.NewMemo1(ctx, isEven, func(even bool) string {
			labelRuns++
			if even {
				return "even"
			}
			return "odd"
		})

		assert.Equal(t, "even", label.Read(ctx))
		assert.Equal(t, 1, evenRuns)
		assert.Equal(t, 1, labelRuns)

		count.Write(ctx, 2)
		assert.Equal(t, "even", label.Read(ctx))
		assert.Equal(t, 2, evenRuns, "isEven reruns on every write to count")
		assert.Equal(t, 1, labelRuns, "label must not rerun: isEven's output did not change")

		count.Write(ctx, 3)
		assert.Equal(t, "odd", label.Read(ctx))
		assert.Equal(t, 3, evenRuns)
		assert.Equal(t, 2, labelRuns)
	})
}
