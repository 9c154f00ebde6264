package core

import "fmt"

// Partial-product arrangement with Booth sign-extension compaction
// (Ercegovac, Digital Arithmetic ch. 4.2.1). Each row holds the selected
// multiplicand variant in one's complement for negative digits, and instead
// of sign-extending every row to the product width, only a short prefix is
// injected per row:
//
//	row 0:        [~s  s  s | u]
//	interior i:   [ 1 ~s | u | neg(i-1)]      shifted left 2 bits per row
//	last row:     [        u | neg(M-2)]
//
// where u is the low W-1 bits of the variant, s its top bit, and neg(i-1)
// the previous row's 2-bit negation-compensation code. Summed as unsigned
// binary numbers mod 2^(2N), the rows equal the true product.

// extendMultiplicand widens the multiplicand to width+2 bits, replicating
// the sign bit when signed and zero-filling when unsigned.
func extendMultiplicand(v uint64, width int, signed bool) *Vec {
	xe := NewVec(width + 2)
	for i := 0; i < width+2; i++ {
		if operandBit(v, width, i, signed) != 0 {
			xe.Set(i)
		}
	}
	return xe
}

// multiplicandVariants precomputes the four candidates a Booth digit selects
// among, in one-hot selector order: {x, 2x, ~x, ~x<<1}. The two negated
// variants are one's complements; their missing increments (+1 and +2) are
// the negation-compensation codes injected into the next row.
func multiplicandVariants(v uint64, width int, signed bool) []*Vec {
	xe := extendMultiplicand(v, width, signed)
	return []*Vec{
		xe,
		xe.ShiftLeft(1),
		xe.Not(),
		xe.Not().ShiftLeft(1),
	}
}

// RowOffset returns the bit position of the arranged field of row i: the
// first two rows start at bit 0 (row 1's field begins with row 0's
// compensation bits at the row-0 weight), later rows shift by 2 per row.
func RowOffset(i int) int {
	if i <= 1 {
		return 0
	}
	return 2*i - 2
}

// RowWidth returns the arranged field width of row i for the given operand
// width: width+4 for the first row, width+5 for interior rows, width+3 for
// the last.
func RowWidth(i, numRows, width int) int {
	if i < 0 || i >= numRows {
		panic(fmt.Sprintf("RowWidth: row %d out of range [0:%d]", i, numRows-1))
	}
	switch {
	case i == 0:
		return width + 4
	case i == numRows-1:
		return width + 3
	default:
		return width + 5
	}
}

// GeneratePartialProducts arranges one row per Booth digit, each a vector of
// the full 2*width product width with its field placed at RowOffset(i).
// Guard bits that fall past the product width are truncated; they only carry
// sign-extension weight that vanishes mod 2^(2*width).
func GeneratePartialProducts(multiplicand uint64, digits []BoothDigit, width int, signed bool) []*Vec {
	if len(digits) != RowCount(width+2) {
		panic(fmt.Sprintf("GeneratePartialProducts: %d digits for width %d, want %d",
			len(digits), width, RowCount(width+2)))
	}
	productWidth := 2 * width
	extWidth := width + 2
	variants := multiplicandVariants(multiplicand, width, signed)

	rows := make([]*Vec, len(digits))
	for i, d := range digits {
		v, err := SelectOneHot(uint64(d.Selector()), variants)
		if err != nil {
			panic("GeneratePartialProducts: " + err.Error())
		}
		if v == nil { // ZERO digit: all-zero row
			v = NewVec(extWidth)
		}
		s := v.Get(extWidth - 1)

		b := NewRowBuilder(productWidth, RowOffset(i))
		if i > 0 {
			b.AppendBits(uint64(digits[i-1].NegCode()), 2)
		}
		b.AppendVec(v, extWidth-1)
		switch {
		case i == 0:
			b.AppendBit(s)
			b.AppendBit(s)
			b.AppendBit(!s)
		case i < len(digits)-1:
			b.AppendBit(!s)
			b.AppendBit(true)
		}
		rows[i] = b.Vec()
	}
	return rows
}
