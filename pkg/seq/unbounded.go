package seq

import (
	"iter"

	"github.com/zauguin/range-v3/pkg/seq/step"
)

// ============================================================================
// UNBOUNDED GENERATOR
// ============================================================================

// Unbounded is an infinite sequence of successive values. It has a single
// field — the current position — and no terminal state: Advance always
// succeeds and the sequence never ends.
//
// Unbounded is a value type. Copying one produces an independent position;
// advancing the copy does not move the original.
type Unbounded[T step.Steppable[T]] struct {
	cur T
}

// Peek returns the current value without advancing.
func (g *Unbounded[T]) Peek() T {
	return g.cur
}

// Advance moves the generator to the successor of the current value.
func (g *Unbounded[T]) Advance() {
	g.cur = g.cur.Next()
}

// All returns an infinite iterator starting at the current position. The
// generator itself is not advanced; each invocation of the returned sequence
// restarts from the same position. Consumers must break out themselves.
func (g *Unbounded[T]) All() iter.Seq[T] {
	start := g.cur
	return func(yield func(T) bool) {
		for v := start; ; v = v.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

func (g *Unbounded[T]) setPos(v T) {
	g.cur = v
}
