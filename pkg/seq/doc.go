// Package seq provides lazy, allocation-free generators of successive values
// for any type that knows how to step forward.
//
// A generator is a small value-semantics object: copying one yields an
// independent sequence position, and no generator ever shares state with
// another. The available operations are tiered by what the value type
// supports (see pkg/seq/step): every type with a successor can drive an
// unbounded generator, equality enables closed ranges, and random-access
// types get counted ranges, seeking and distance measurement. Operations a
// type's tier does not support are absent at compile time, never runtime
// errors.
//
// Key entry points:
//   - Iota / Ints: unbounded sequences from a starting value.
//   - Range / IntRange / Span: inclusive [start, end] sequences.
//   - Until: sequences delimited by a caller-supplied bound predicate.
//
// Every generator exposes All() for range-over-func consumption, and the
// package includes channel bridges and folds for feeding concurrent
// consumers.
package seq
