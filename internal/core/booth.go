package core

import "fmt"

// Selector bit positions for the one-hot digit classification. The candidate
// order matches the variant list built by the partial-product generator:
// {x, 2x, ~x, ~x<<1}. An all-zero selector is the ZERO digit.
const (
	selPos1 uint8 = 1 << 0
	selPos2 uint8 = 1 << 1
	selNeg1 uint8 = 1 << 2
	selNeg2 uint8 = 1 << 3
)

// Negation-compensation codes. A negated row is stored in one's complement;
// the missing increment (+1 for a -1 digit, +2 for a -2 digit) is injected as
// the two low bits of the next row up, at the same weight as this row.
const (
	negNone uint8 = 0b00
	negOne  uint8 = 0b01
	negTwo  uint8 = 0b10
)

// BoothDigit is one radix-4 recoded digit of the multiplier: a one-hot
// classification over {+1, +2, -1, -2} (all-zero for the 0 digit) plus the
// 2-bit negation-compensation code owed to the next row.
type BoothDigit struct {
	sel     uint8
	negCode uint8
}

// Selector returns the one-hot classification bits.
func (d BoothDigit) Selector() uint8 { return d.sel }

// NegCode returns the 2-bit negation-compensation code.
func (d BoothDigit) NegCode() uint8 { return d.negCode }

// Digit returns the signed digit value in {-2, -1, 0, +1, +2}.
func (d BoothDigit) Digit() int {
	switch d.sel {
	case 0:
		return 0
	case selPos1:
		return 1
	case selPos2:
		return 2
	case selNeg1:
		return -1
	case selNeg2:
		return -2
	}
	panic(fmt.Sprintf("BoothDigit: selector %#x is not one-hot", d.sel))
}

// boothTable maps a 3-bit overlapping window (bits [2i+1, 2i, 2i-1] of the
// extended multiplier) to its recoded digit.
var boothTable = [8]BoothDigit{
	0b000: {0, negNone},
	0b001: {selPos1, negNone},
	0b010: {selPos1, negNone},
	0b011: {selPos2, negNone},
	0b100: {selNeg2, negTwo},
	0b101: {selNeg1, negOne},
	0b110: {selNeg1, negOne},
	0b111: {0, negNone},
}

// RowCount returns the number of radix-4 digit rows needed to cover an
// operand of the given width: one row per 2-bit step.
func RowCount(width int) int {
	return (width + 1) / 2
}

// operandBit reads bit pos of an operand as seen after extension: negative
// positions read as 0, positions at or above the declared width read as the
// extension bit (the sign bit when signed, 0 when unsigned). This avoids
// materializing the width+2 extension, which would not fit a uint64 at the
// top supported width.
func operandBit(v uint64, width, pos int, signed bool) uint8 {
	if pos < 0 {
		return 0
	}
	if pos >= width {
		if signed {
			return uint8((v >> (width - 1)) & 1)
		}
		return 0
	}
	return uint8((v >> pos) & 1)
}

// EncodeMultiplier recodes the multiplier into RowCount(width+2) Booth
// digits. The operand is extended by two bits (sign-replicated when signed,
// zero when unsigned) before windowing, which makes both interpretations
// uniform: the top window of an unsigned operand degenerates to the
// {0, +1} correction row, and that of a signed operand to the 0 digit.
func EncodeMultiplier(v uint64, width int, signed bool) []BoothDigit {
	if width < 4 {
		panic(fmt.Sprintf("EncodeMultiplier: width %d below minimum of 4", width))
	}
	numRows := RowCount(width + 2)
	digits := make([]BoothDigit, numRows)
	for i := 0; i < numRows; i++ {
		w := operandBit(v, width, 2*i+1, signed)<<2 |
			operandBit(v, width, 2*i, signed)<<1 |
			operandBit(v, width, 2*i-1, signed)
		digits[i] = boothTable[w]
	}
	return digits
}
