package step

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// ============================================================================
// DISTANCE ARITHMETIC (INTEGER SPECIALIZATION)
// ============================================================================

// Built-in integers carry their random-access operations as operators rather
// than methods, so their distance arithmetic lives here instead of on the
// RandomAccess interface. Distances are always int64: wide enough for every
// operand width up to 64 bits, with two's-complement wraparound at exactly
// 64 bits.

// Diff returns to − from as a signed distance.
//
// For signed operands both sides are widened to int64 before subtracting, so
// the subtraction itself cannot overflow for sub-64-bit types. For unsigned
// operands the subtraction happens in the unsigned domain (modular), and the
// result's bit pattern is reinterpreted as signed at the operand's own width
// before sign-extending. That makes Diff well-defined for wraparound
// counters: Diff(uint8(5), uint8(250)) == 11.
//
// Both the signedness test and the width switch reduce to constants per
// instantiation; there is no runtime type inspection.
func Diff[T constraints.Integer](to, from T) int64 {
	if unsigned[T]() {
		d := to - from
		switch unsafe.Sizeof(d) {
		case 1:
			return int64(int8(d))
		case 2:
			return int64(int16(d))
		case 4:
			return int64(int32(d))
		}
		return int64(uint64(d))
	}
	return int64(to) - int64(from)
}

// Jump returns v moved n steps forward (backward for negative n). The
// conversion of n into T is modular, so negative jumps are correct for
// unsigned types as well.
func Jump[T constraints.Integer](v T, n int64) T {
	return v + T(n)
}

// unsigned reports whether T is an unsigned type. ^T(0) is the all-ones
// pattern: the maximum value for unsigned T, negative one for signed T.
func unsigned[T constraints.Integer]() bool {
	return ^T(0) > 0
}
