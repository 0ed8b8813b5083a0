package seq

import (
	"iter"

	"github.com/zauguin/range-v3/pkg/seq/step"
)

// ============================================================================
// CLOSED GENERATOR (EQUALITY-TERMINATED)
// ============================================================================

// Closed is an inclusive [from, to] sequence terminated by equality with the
// upper bound. The bound is emitted exactly once: Advance on a position equal
// to the bound marks the generator done instead of stepping further, so the
// minimum sequence length is 1 even when from == to.
//
// Termination relies on repeated stepping eventually producing a value equal
// to the bound. If it never does (for example a stride that skips the bound),
// the sequence never finishes. That is caller contract, not a checked
// condition.
type Closed[T step.ComparableSteppable[T]] struct {
	from, to T
	done     bool
}

// Peek returns the current value. It remains valid after the generator is
// done, still holding the bound that was last emitted.
func (c *Closed[T]) Peek() T {
	return c.from
}

// Advance steps toward the bound. Reaching a position equal to the bound
// finishes the sequence on the advance after the bound is emitted; advancing
// a finished generator is a no-op.
func (c *Closed[T]) Advance() {
	switch {
	case c.done:
	case c.from == c.to:
		c.done = true
	default:
		c.from = c.from.Next()
	}
}

// Done reports whether the bound has been consumed. Once true it stays true.
func (c *Closed[T]) Done() bool {
	return c.done
}

// Equal reports whether both generators sit at the same position. The done
// flag is deliberately ignored: equal positions mean equal sequences
// regardless of whether the bound was already consumed.
func (c *Closed[T]) Equal(other *Closed[T]) bool {
	return c.from == other.from
}

// All returns an iterator over the remaining values, bound included. Each
// invocation restarts from the generator's position at the time of the call.
func (c *Closed[T]) All() iter.Seq[T] {
	start := *c
	return func(yield func(T) bool) {
		cp := start
		for !cp.Done() {
			if !yield(cp.Peek()) {
				return
			}
			cp.Advance()
		}
	}
}

func (c *Closed[T]) setPos(v T) {
	c.from = v
}

// ============================================================================
// DELIMITED GENERATOR (PREDICATE BOUND)
// ============================================================================

// Delimited is the heterogeneous-bound variant of Closed: the upper bound is
// whatever the reached predicate recognizes, so the bound need not share the
// value's type or even be a single value. The termination policy is the same
// as Closed's — the delimiting value is emitted once, then the next Advance
// finishes the sequence.
type Delimited[T step.Steppable[T]] struct {
	cur     T
	reached func(T) bool
	done    bool
}

// Peek returns the current value.
func (d *Delimited[T]) Peek() T {
	return d.cur
}

// Advance steps forward, finishing the sequence on the advance after the
// delimiting value was emitted.
func (d *Delimited[T]) Advance() {
	switch {
	case d.done:
	case d.reached(d.cur):
		d.done = true
	default:
		d.cur = d.cur.Next()
	}
}

// Done reports whether the delimiting value has been consumed.
func (d *Delimited[T]) Done() bool {
	return d.done
}

// All returns an iterator over the remaining values, delimiter included.
func (d *Delimited[T]) All() iter.Seq[T] {
	start := *d
	return func(yield func(T) bool) {
		cp := start
		for !cp.Done() {
			if !yield(cp.Peek()) {
				return
			}
			cp.Advance()
		}
	}
}

func (d *Delimited[T]) setPos(v T) {
	d.cur = v
}
