package seq_test

import "github.com/zauguin/range-v3/pkg/seq/step"

// ordinal is a custom value type carrying the full random-access tier.
type ordinal int

func (o ordinal) Next() ordinal           { return o + 1 }
func (o ordinal) Prev() ordinal           { return o - 1 }
func (o ordinal) Jump(n int64) ordinal    { return o + ordinal(n) }
func (o ordinal) Sub(other ordinal) int64 { return int64(o) - int64(other) }

// evenOrdinal steps by two: comparable and steppable, but nothing more. Used
// to exercise the equality-terminated form and its bound-skipping contract.
type evenOrdinal int

func (e evenOrdinal) Next() evenOrdinal { return e + 2 }

// Tier witnesses. The refined tiers embed comparable and are constraint-only
// interfaces, so membership is pinned by instantiating a constrained function
// rather than by interface assignment.
func isSteppable[T step.Steppable[T]]()                     {}
func isComparableSteppable[T step.ComparableSteppable[T]]() {}
func isReversible[T step.Reversible[T]]()                   {}
func isRandomAccess[T step.RandomAccess[T]]()               {}

var (
	_ = isSteppable[ordinal]
	_ = isComparableSteppable[ordinal]
	_ = isReversible[ordinal]
	_ = isRandomAccess[ordinal]

	_ = isSteppable[evenOrdinal]
	_ = isComparableSteppable[evenOrdinal]
)
