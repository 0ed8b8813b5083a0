package seq

import (
	"context"
	"iter"

	"golang.org/x/sync/errgroup"
)

// ============================================================================
// CHANNEL BRIDGES
// ============================================================================

// The generators themselves are single-threaded value types. These bridges
// are the hand-off point to concurrent consumers: a goroutine drives the
// sequence and pushes elements into a channel, with structured concurrency
// handling cancellation and shutdown.

// ToChan drives a sequence from a dedicated goroutine and delivers its
// elements on the returned channel. The channel is closed when the sequence
// ends or the context is cancelled; for unbounded sequences cancellation is
// the only way to stop the producer.
//
// Parameters:
//   ctx: The context bounding the producer goroutine.
//   s: The sequence to drain. It may be infinite.
//   buf: The channel buffer size (backpressure window).
//
// Returns:
//   <-chan T: The element channel.
//   *errgroup.Group: Wait on it after consuming to observe the producer's
//   exit status (nil, or the context error on cancellation).
func ToChan[T any](ctx context.Context, s iter.Seq[T], buf int) (<-chan T, *errgroup.Group) {
	out := make(chan T, buf)
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(out)
		for v := range s {
			select {
			case out <- v:
			case <-gCtx.Done():
				return gCtx.Err()
			}
		}
		return nil
	})

	return out, g
}

// MergeChan fans several sequences into a single channel, one producer
// goroutine per sequence. The interleaving is non-deterministic. The channel
// is closed once every producer has finished.
//
// Parameters:
//   ctx: The context bounding all producers.
//   buf: The channel buffer size.
//   seqs: The sequences to merge.
//
// Returns:
//   <-chan T: The merged element channel.
//   *errgroup.Group: Completed (and Wait-able) once the channel is closed.
func MergeChan[T any](ctx context.Context, buf int, seqs ...iter.Seq[T]) (<-chan T, *errgroup.Group) {
	out := make(chan T, buf)
	g, gCtx := errgroup.WithContext(ctx)

	for _, s := range seqs {
		g.Go(func() error {
			for v := range s {
				select {
				case out <- v:
				case <-gCtx.Done():
					return gCtx.Err()
				}
			}
			return nil
		})
	}

	// Close only after every producer is done, so consumers can simply
	// range over the channel.
	go func() {
		_ = g.Wait()
		close(out)
	}()

	return out, g
}
