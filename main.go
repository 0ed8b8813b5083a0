package main

import (
	"context"
	"fmt"
	"time"

	"github.com/zauguin/range-v3/pkg/seq"
	"github.com/zauguin/range-v3/pkg/seq/step"
)

// ============================================================================
// DOMAIN TYPES (EXAMPLE USAGE)
// ============================================================================

// Quarter is a fiscal quarter, stepped Q1→Q4 and across year boundaries.
// It carries the full random-access tier, so it works with every bounded
// representation.
type Quarter struct {
	Year int
	Q    int // 1..4
}

func (q Quarter) Next() Quarter {
	if q.Q == 4 {
		return Quarter{Year: q.Year + 1, Q: 1}
	}
	return Quarter{Year: q.Year, Q: q.Q + 1}
}

func (q Quarter) Prev() Quarter {
	if q.Q == 1 {
		return Quarter{Year: q.Year - 1, Q: 4}
	}
	return Quarter{Year: q.Year, Q: q.Q - 1}
}

func (q Quarter) Jump(n int64) Quarter {
	i := q.ordinal() + n
	y, r := i/4, i%4
	if r < 0 {
		y, r = y-1, r+4
	}
	return Quarter{Year: int(y), Q: int(r) + 1}
}

func (q Quarter) Sub(other Quarter) int64 {
	return q.ordinal() - other.ordinal()
}

func (q Quarter) ordinal() int64 {
	return int64(q.Year)*4 + int64(q.Q-1)
}

func (q Quarter) String() string {
	return fmt.Sprintf("%dQ%d", q.Year, q.Q)
}

// Compile-time tier check: RandomAccess embeds comparable, so membership is
// pinned by instantiation rather than interface assignment.
func isRandomAccess[T step.RandomAccess[T]]() {}

var _ = isRandomAccess[Quarter]

// ============================================================================
// DEMONSTRATION
// ============================================================================

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	startTime := time.Now()

	// 1. Counted integer range: sum of [1, 1_000_000].
	span := seq.IntRange(1, 1_000_000)
	sum, err := seq.Reduce(ctx, span.All(), 0, func(acc, v int) int { return acc + v })
	if err != nil {
		fmt.Printf("sum aborted: %v\n", err)
		return
	}
	fmt.Printf("sum(1..1e6) = %d\n", sum)

	// 2. Closed range over a custom ordinal type.
	quarters := seq.Range(Quarter{2024, 1}, Quarter{2025, 2})
	fmt.Printf("reporting periods: %v\n", seq.Collect(quarters.All()))

	// 3. Random-access span + seeking.
	fy := seq.Span(Quarter{2024, 1}, Quarter{2026, 4})
	fmt.Printf("planning horizon: %d quarters from %v\n", fy.Len(), fy.Peek())

	// 4. Concurrent consumption: merge independent finite ranges into one
	// channel; interleaving is non-deterministic.
	low := seq.IntRange(0, 4)
	high := seq.IntRange(100, 104)
	merged, g := seq.MergeChan(ctx, 64, low.All(), high.All())
	var interleaved []int
	for v := range merged {
		interleaved = append(interleaved, v)
	}
	if err := g.Wait(); err != nil {
		fmt.Printf("merge failed: %v\n", err)
		return
	}
	fmt.Printf("merged ticks: %v\n", interleaved)

	fmt.Printf("--- done in %s ---\n", time.Since(startTime))
}
