package seq

import "github.com/zauguin/range-v3/pkg/seq/step"

// ============================================================================
// ENTRY POINTS
// ============================================================================

// The bounded constructors pick the sequence representation by constraint,
// not by a runtime test: Span demands the random-access tier and builds the
// counted form, Range only needs equality and builds the form that tests the
// bound on every advance. Using Span with a type that lacks the tier is a
// compile error, which is the whole dispatch mechanism.

// Iota returns the unbounded sequence start, start.Next(), ... .
func Iota[T step.Steppable[T]](start T) Unbounded[T] {
	return Unbounded[T]{cur: start}
}

// Span returns the inclusive sequence [start, end] in the counted
// representation: the element count end−start+1 is computed up front via the
// value type's distance operation, so advancing never compares against the
// bound. A negative distance clamps to an empty sequence.
func Span[T step.RandomAccess[T]](start, end T) Prefix[T] {
	return Take(Iota(start), end.Sub(start)+1)
}

// Range returns the inclusive sequence [start, end] in the equality-terminated
// representation. It works for any comparable steppable type, at the cost of
// one equality test per advance, and never yields fewer than one element:
// Range(v, v) emits v once. See Closed for the termination contract.
func Range[T step.ComparableSteppable[T]](start, end T) Closed[T] {
	return Closed[T]{from: start, to: end}
}

// Until returns the sequence from start up to and including the first value
// the reached predicate recognizes. It is the bounded form to use when the
// bound is not a value of T itself.
func Until[T step.Steppable[T]](start T, reached func(T) bool) Delimited[T] {
	return Delimited[T]{cur: start, reached: reached}
}
