package step

import "testing"

func TestDiffSigned(t *testing.T) {
	if got := Diff(7, 3); got != 4 {
		t.Errorf("Diff(7, 3) = %d, want 4", got)
	}
	if got := Diff(3, 7); got != -4 {
		t.Errorf("Diff(3, 7) = %d, want -4", got)
	}

	// Full-width sub-64-bit difference must not overflow: operands widen
	// before subtracting.
	if got := Diff(int8(127), int8(-128)); got != 255 {
		t.Errorf("Diff(int8 max, int8 min) = %d, want 255", got)
	}
	if got := Diff(int32(2147483647), int32(-2147483648)); got != 4294967295 {
		t.Errorf("Diff(int32 max, int32 min) = %d, want 4294967295", got)
	}
}

func TestDiffUnsignedWraparound(t *testing.T) {
	// Subtraction happens in the unsigned domain, then the bit pattern is
	// read back as signed at the operand width.
	if got := Diff(uint8(5), uint8(250)); got != 11 {
		t.Errorf("Diff(u8 5, u8 250) = %d, want 11", got)
	}
	if got := Diff(uint8(250), uint8(5)); got != -11 {
		t.Errorf("Diff(u8 250, u8 5) = %d, want -11", got)
	}
	if got := Diff(uint16(2), uint16(65535)); got != 3 {
		t.Errorf("Diff(u16 2, u16 max) = %d, want 3", got)
	}
	if got := Diff(uint32(0), uint32(4294967295)); got != 1 {
		t.Errorf("Diff(u32 0, u32 max) = %d, want 1", got)
	}
	if got := Diff(uint64(0), ^uint64(0)); got != 1 {
		t.Errorf("Diff(u64 0, u64 max) = %d, want 1", got)
	}
	if got := Diff(uint(10), uint(3)); got != 7 {
		t.Errorf("Diff(uint 10, uint 3) = %d, want 7", got)
	}
}

func TestJumpRoundTrip(t *testing.T) {
	// Diff(Jump(v, n), v) == n, including negative jumps on unsigned types.
	for _, n := range []int64{0, 1, -1, 11, -11, 100, -100} {
		if got := Diff(Jump(uint8(250), n), uint8(250)); got != n {
			t.Errorf("u8 round trip for n=%d: got %d", n, got)
		}
		if got := Diff(Jump(int16(-300), n), int16(-300)); got != n {
			t.Errorf("i16 round trip for n=%d: got %d", n, got)
		}
		if got := Diff(Jump(int64(1<<40), n), int64(1<<40)); got != n {
			t.Errorf("i64 round trip for n=%d: got %d", n, got)
		}
	}
}

func TestSignednessDetection(t *testing.T) {
	if !unsigned[uint8]() || !unsigned[uint64]() || !unsigned[uintptr]() {
		t.Error("unsigned types not detected as unsigned")
	}
	if unsigned[int8]() || unsigned[int]() || unsigned[int64]() {
		t.Error("signed types detected as unsigned")
	}
}
