package seq

import (
	"context"
	"iter"
)

// ============================================================================
// TERMINALS (SINKS / FOLDS)
// ============================================================================

// Collect gathers every element of a sequence into a slice. The sequence must
// be finite.
func Collect[T any](s iter.Seq[T]) []T {
	var out []T
	for v := range s {
		out = append(out, v)
	}
	return out
}

// First gathers at most n elements of a sequence into a slice. Safe on
// unbounded sequences.
func First[T any](s iter.Seq[T], n int) []T {
	if n <= 0 {
		return nil
	}
	out := make([]T, 0, n)
	for v := range s {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}

// Reduce folds a sequence into a single accumulator, checking the context
// between elements so unbounded or slow sequences can be abandoned. It
// returns the accumulator as folded so far together with the context error,
// if any.
func Reduce[T, Acc any](ctx context.Context, s iter.Seq[T], init Acc, fn func(Acc, T) Acc) (Acc, error) {
	acc := init
	for v := range s {
		if err := ctx.Err(); err != nil {
			return acc, err
		}
		acc = fn(acc, v)
	}
	return acc, ctx.Err()
}
