package seq

import "github.com/zauguin/range-v3/pkg/seq/step"

// ============================================================================
// TIER-GATED OPERATIONS
// ============================================================================

// A method cannot demand more of its receiver's type parameter than the type
// itself does, so the operations that need a more refined tier than the
// generator's baseline live here as free functions. Their constraints are
// the gate: calling Retreat on a generator whose value type has no Prev does
// not compile.

// positioned is the read side every generator shape exposes.
type positioned[T any] interface {
	Peek() T
}

// repositioned adds the write side used by the mutating operations.
type repositioned[T any] interface {
	positioned[T]
	setPos(T)
}

// Equal reports whether two generators sit at the same position. Bound state
// is not part of the comparison.
func Equal[T comparable](a, b positioned[T]) bool {
	return a.Peek() == b.Peek()
}

// Retreat moves a generator one step back. For a closed generator this only
// moves the position; the bound bookkeeping is untouched and staying within
// range is the caller's responsibility.
func Retreat[T step.Reversible[T]](g repositioned[T]) {
	g.setPos(g.Peek().Prev())
}

// Seek jumps an unbounded generator n steps from its current position. n may
// be negative.
func Seek[T step.RandomAccess[T]](g *Unbounded[T], n int64) {
	g.cur = g.cur.Jump(n)
}

// SeekWithin jumps a closed generator n steps forward. The jump must not
// pass the upper bound: that is a programmer error and panics. The done flag
// is untouched; landing exactly on the bound leaves the bound still to be
// emitted.
func SeekWithin[T step.RandomAccess[T]](c *Closed[T], n int64) {
	if c.to.Sub(c.from) < n {
		panic("seq: SeekWithin past the upper bound of a Closed range")
	}
	c.from = c.from.Jump(n)
}

// Distance returns the number of steps from from's position to to's, so that
// Seek(from, Distance(from, to)) lands from on to's position.
func Distance[T step.RandomAccess[T]](from, to positioned[T]) int64 {
	return to.Peek().Sub(from.Peek())
}
