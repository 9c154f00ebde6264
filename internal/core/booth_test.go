package core

import (
	"math/bits"
	"testing"

	"boothmul/internal/util"
)

func TestRowCount(t *testing.T) {
	cases := []struct{ width, want int }{
		{4, 2}, {5, 3}, {6, 3}, {16, 8}, {18, 9}, {34, 17}, {66, 33},
	}
	for _, c := range cases {
		if got := RowCount(c.width); got != c.want {
			t.Errorf("RowCount(%d) = %d, want %d", c.width, got, c.want)
		}
	}
}

func TestBoothTableExhaustive(t *testing.T) {
	wantDigit := [8]int{0, 1, 1, 2, -2, -1, -1, 0}
	wantNeg := [8]uint8{0, 0, 0, 0, 0b10, 0b01, 0b01, 0}
	for w := 0; w < 8; w++ {
		d := boothTable[w]
		if got := d.Digit(); got != wantDigit[w] {
			t.Errorf("window %03b: digit %d, want %d", w, got, wantDigit[w])
		}
		if got := d.NegCode(); got != wantNeg[w] {
			t.Errorf("window %03b: neg code %02b, want %02b", w, got, wantNeg[w])
		}
		// Exactly one classification asserted, or none for the 0 digit.
		n := bits.OnesCount8(d.Selector())
		if n > 1 {
			t.Errorf("window %03b: selector %04b asserts %d classifications", w, d.Selector(), n)
		}
		if (n == 0) != (wantDigit[w] == 0) {
			t.Errorf("window %03b: selector %04b inconsistent with digit %d", w, d.Selector(), wantDigit[w])
		}
	}
}

// The recoded digits must reconstruct the multiplier: sum(d_i * 4^i) equals
// the operand under the requested interpretation (mod 2^64).
func TestEncodeReconstructsOperand(t *testing.T) {
	check := func(v uint64, width int, signed bool) {
		t.Helper()
		digits := EncodeMultiplier(v, width, signed)
		if len(digits) != RowCount(width+2) {
			t.Fatalf("width %d: got %d digits, want %d", width, len(digits), RowCount(width+2))
		}
		got := uint64(0)
		for i, d := range digits {
			got += uint64(int64(d.Digit())) << (2 * uint(i))
		}
		mask := ^uint64(0) >> (64 - width)
		want := v & mask
		if signed && want&(1<<(width-1)) != 0 {
			want |= ^mask
		}
		if got != want {
			t.Errorf("width=%d signed=%t v=%#x: digits sum to %#x, want %#x",
				width, signed, v, got, want)
		}
	}

	// Exhaustive at the minimum width.
	for v := uint64(0); v < 16; v++ {
		check(v, 4, false)
		check(v, 4, true)
	}

	// Randomized across the supported range.
	seed := util.RandomSeed()
	t.Logf("seed: %#x", seed)
	stream := util.NewOperandStream(seed)
	for width := MinWidth; width <= MaxWidth; width += 2 {
		for n := 0; n < 100; n++ {
			v := stream.Next()
			check(v, width, false)
			check(v, width, true)
		}
	}
}

// In unsigned mode the top window degenerates to the +1 correction row; in
// signed mode it is always the 0 digit.
func TestEncodeTopRow(t *testing.T) {
	const width = 8
	last := RowCount(width+2) - 1

	d := EncodeMultiplier(0x80, width, false)
	if got := d[last].Digit(); got != 1 {
		t.Errorf("unsigned, top bit set: last digit %d, want +1", got)
	}
	d = EncodeMultiplier(0x7F, width, false)
	if got := d[last].Digit(); got != 0 {
		t.Errorf("unsigned, top bit clear: last digit %d, want 0", got)
	}
	for _, v := range []uint64{0x80, 0xFF, 0x7F, 0x00} {
		d = EncodeMultiplier(v, width, true)
		if got := d[last].Digit(); got != 0 {
			t.Errorf("signed v=%#x: last digit %d, want 0", v, got)
		}
	}
}

func TestEncodeRejectsNarrowWidth(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("EncodeMultiplier below minimum width should panic")
		}
	}()
	EncodeMultiplier(1, 2, false)
}
