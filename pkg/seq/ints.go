package seq

import (
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/zauguin/range-v3/pkg/seq/step"
)

// ============================================================================
// INTEGER GENERATORS
// ============================================================================

// Built-in integers satisfy every capability tier through their operators
// rather than methods, so they get their own generator family with the full
// random-access surface attached directly.

// IntSeq is an unbounded generator over a built-in integer type. Unsigned
// types wrap around at their maximum; signed overflow follows Go's two's
// complement semantics.
type IntSeq[T constraints.Integer] struct {
	cur T
}

// Ints returns an unbounded integer sequence starting at start.
func Ints[T constraints.Integer](start T) IntSeq[T] {
	return IntSeq[T]{cur: start}
}

// Peek returns the current value without advancing.
func (g *IntSeq[T]) Peek() T {
	return g.cur
}

// Advance moves to the next integer.
func (g *IntSeq[T]) Advance() {
	g.cur++
}

// Retreat moves to the previous integer.
func (g *IntSeq[T]) Retreat() {
	g.cur--
}

// Seek jumps n steps from the current position. n may be negative.
func (g *IntSeq[T]) Seek(n int64) {
	g.cur = step.Jump(g.cur, n)
}

// Distance returns the number of steps from g's position to other's,
// so that g.Seek(g.Distance(other)) lands g on other's position.
func (g *IntSeq[T]) Distance(other IntSeq[T]) int64 {
	return step.Diff(other.cur, g.cur)
}

// Equal reports whether both generators sit at the same position.
func (g *IntSeq[T]) Equal(other IntSeq[T]) bool {
	return g.cur == other.cur
}

// All returns an infinite iterator starting at the current position.
func (g *IntSeq[T]) All() iter.Seq[T] {
	start := g.cur
	return func(yield func(T) bool) {
		for v := start; ; v++ {
			if !yield(v) {
				return
			}
		}
	}
}

// ============================================================================
// COUNTED INTEGER RANGE
// ============================================================================

// IntSpan is the counted bounded representation for integers: an IntSeq
// truncated to a pre-computed element count, with no equality test per
// advance.
type IntSpan[T constraints.Integer] struct {
	src  IntSeq[T]
	left int64
}

// IntRange returns the inclusive sequence [start, end]. The element count is
// the start→end distance plus one, computed with the wraparound rules of
// step.Diff: for unsigned types a "descending" range like IntRange(uint8(250),
// uint8(5)) wraps through the type's maximum and has 12 elements, while for
// signed types start > end clamps to an empty sequence.
func IntRange[T constraints.Integer](start, end T) IntSpan[T] {
	n := step.Diff(end, start) + 1
	if n < 0 {
		n = 0
	}
	return IntSpan[T]{src: Ints(start), left: n}
}

// Peek returns the current value. Valid only while Done is false.
func (s *IntSpan[T]) Peek() T {
	return s.src.Peek()
}

// Advance consumes the current element. Advancing a finished span is a
// no-op.
func (s *IntSpan[T]) Advance() {
	if s.left == 0 {
		return
	}
	s.src.Advance()
	s.left--
}

// Done reports whether all elements have been consumed.
func (s *IntSpan[T]) Done() bool {
	return s.left == 0
}

// Len returns the number of elements left to emit.
func (s *IntSpan[T]) Len() int64 {
	return s.left
}

// Seek jumps n steps forward within the span. Seeking past the last element
// is a programmer error and panics; use Len to stay inside. Negative n seeks
// backward and grows the remaining count accordingly.
func (s *IntSpan[T]) Seek(n int64) {
	if n > s.left-1 {
		panic("seq: Seek past the upper bound of an IntSpan")
	}
	s.src.Seek(n)
	s.left -= n
}

// All returns an iterator over the remaining elements.
func (s *IntSpan[T]) All() iter.Seq[T] {
	start := *s
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
