package seq

import (
	"iter"

	"github.com/zauguin/range-v3/pkg/seq/step"
)

// ============================================================================
// BOUNDED PREFIX (COUNTED REPRESENTATION)
// ============================================================================

// Prefix truncates an unbounded generator to a fixed element count. It is the
// representation Span uses for random-access bounds: the cost of the bound is
// paid once, as a count, instead of an equality test on every advance.
type Prefix[T step.Steppable[T]] struct {
	src  Unbounded[T]
	left int64
}

// Take returns a generator for the first n elements of src. Negative counts
// clamp to an empty sequence.
func Take[T step.Steppable[T]](src Unbounded[T], n int64) Prefix[T] {
	if n < 0 {
		n = 0
	}
	return Prefix[T]{src: src, left: n}
}

// Peek returns the current value. Valid only while Done is false.
func (p *Prefix[T]) Peek() T {
	return p.src.Peek()
}

// Advance consumes the current element. Advancing a finished prefix is a
// no-op.
func (p *Prefix[T]) Advance() {
	if p.left == 0 {
		return
	}
	p.src.Advance()
	p.left--
}

// Done reports whether all elements have been consumed.
func (p *Prefix[T]) Done() bool {
	return p.left == 0
}

// Len returns the number of elements left to emit.
func (p *Prefix[T]) Len() int64 {
	return p.left
}

// All returns an iterator over the remaining elements. Each invocation
// restarts from the prefix's position at the time of the call.
func (p *Prefix[T]) All() iter.Seq[T] {
	start := *p
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
