package step

// ============================================================================
// CAPABILITY TIERS
// ============================================================================

// Steppable is the minimal tier: a value that can produce its own successor.
// It is sufficient to drive an unbounded generator.
//
// Next must not mutate the receiver; generators rely on value semantics.
type Steppable[T any] interface {
	Next() T
}

// ComparableSteppable adds equality on top of Steppable. Equality is what
// lets a closed generator recognize its upper bound, so this is the minimum
// tier for any bounded sequence.
type ComparableSteppable[T any] interface {
	comparable
	Steppable[T]
}

// Reversible adds the predecessor operation, enabling backward movement.
type Reversible[T any] interface {
	ComparableSteppable[T]
	Prev() T
}

// RandomAccess is the most refined tier: the value supports jumping by an
// arbitrary signed distance and measuring the distance between two values.
// Bounded sequences over RandomAccess values use a pre-computed element
// count instead of testing equality on every advance.
//
// The two operations must agree: v.Jump(w.Sub(v)) == w for all v, w.
type RandomAccess[T any] interface {
	Reversible[T]

	// Jump returns the value n steps away. n may be negative.
	Jump(n int64) T

	// Sub returns the number of steps from other to the receiver,
	// i.e. receiver − other.
	Sub(other T) int64
}
