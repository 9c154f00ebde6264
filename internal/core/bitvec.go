package core

import (
	"fmt"
	"math/bits"
	"strings"
)

// Vec is a fixed-width bit vector used to hold partial-product rows and the
// carry-save intermediates of the compression tree. Bit 0 is the least
// significant bit. All operations that could produce bits at or above the
// declared width discard them, matching the modular arithmetic of a
// fixed-width product.
type Vec struct {
	words []uint64
	width int
}

// NewVec creates a zero vector of the given width in bits.
func NewVec(width int) *Vec {
	if width <= 0 {
		panic("NewVec: width must be positive")
	}
	numWords := (width + 63) / 64
	return &Vec{
		words: make([]uint64, numWords),
		width: width,
	}
}

// VecFromUint64 creates a vector of the given width holding the low bits of v.
func VecFromUint64(width int, v uint64) *Vec {
	vec := NewVec(width)
	vec.words[0] = v
	vec.trim()
	return vec
}

// Width returns the declared width in bits.
func (v *Vec) Width() int {
	return v.width
}

// Get returns true if the bit at the given position is 1.
func (v *Vec) Get(pos int) bool {
	if pos < 0 || pos >= v.width {
		panic("Vec.Get: position out of bounds")
	}
	return (v.words[pos/64]>>(pos%64))&1 != 0
}

// Set sets the bit at the given position to 1.
func (v *Vec) Set(pos int) {
	if pos < 0 || pos >= v.width {
		panic("Vec.Set: position out of bounds")
	}
	v.words[pos/64] |= 1 << (pos % 64)
}

// trim clears any storage bits at or above the declared width.
func (v *Vec) trim() {
	if rem := v.width % 64; rem != 0 {
		v.words[len(v.words)-1] &= (1 << rem) - 1
	}
}

func (v *Vec) sameShape(o *Vec) {
	if v.width != o.width {
		panic(fmt.Sprintf("Vec: width mismatch (%d != %d)", v.width, o.width))
	}
}

// Xor returns v ^ o. Both vectors must have the same width.
func (v *Vec) Xor(o *Vec) *Vec {
	v.sameShape(o)
	out := NewVec(v.width)
	for i := range v.words {
		out.words[i] = v.words[i] ^ o.words[i]
	}
	return out
}

// And returns v & o. Both vectors must have the same width.
func (v *Vec) And(o *Vec) *Vec {
	v.sameShape(o)
	out := NewVec(v.width)
	for i := range v.words {
		out.words[i] = v.words[i] & o.words[i]
	}
	return out
}

// Or returns v | o. Both vectors must have the same width.
func (v *Vec) Or(o *Vec) *Vec {
	v.sameShape(o)
	out := NewVec(v.width)
	for i := range v.words {
		out.words[i] = v.words[i] | o.words[i]
	}
	return out
}

// Not returns the bitwise complement of v within its width.
func (v *Vec) Not() *Vec {
	out := NewVec(v.width)
	for i := range v.words {
		out.words[i] = ^v.words[i]
	}
	out.trim()
	return out
}

// ShiftLeft returns v << n, dropping bits shifted past the width.
func (v *Vec) ShiftLeft(n int) *Vec {
	if n < 0 {
		panic("Vec.ShiftLeft: negative shift")
	}
	out := NewVec(v.width)
	wordShift := n / 64
	bitShift := n % 64
	for i := len(v.words) - 1; i >= wordShift; i-- {
		w := v.words[i-wordShift] << bitShift
		if bitShift != 0 && i-wordShift > 0 {
			w |= v.words[i-wordShift-1] >> (64 - bitShift)
		}
		out.words[i] = w
	}
	out.trim()
	return out
}

// Add returns v + o truncated to the common width.
func (v *Vec) Add(o *Vec) *Vec {
	v.sameShape(o)
	out := NewVec(v.width)
	carry := uint64(0)
	for i := range v.words {
		out.words[i], carry = bits.Add64(v.words[i], o.words[i], carry)
	}
	out.trim()
	return out
}

// Equal reports whether v and o have identical width and bits.
func (v *Vec) Equal(o *Vec) bool {
	if v.width != o.width {
		return false
	}
	for i := range v.words {
		if v.words[i] != o.words[i] {
			return false
		}
	}
	return true
}

// IsZero reports whether every bit is 0.
func (v *Vec) IsZero() bool {
	for _, w := range v.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Uint64 returns the value of a vector no wider than 64 bits.
func (v *Vec) Uint64() uint64 {
	if v.width > 64 {
		panic("Vec.Uint64: vector wider than 64 bits")
	}
	return v.words[0]
}

// Pair returns the value as a (high, low) pair of 64-bit words. The vector
// must be no wider than 128 bits.
func (v *Vec) Pair() (hi, lo uint64) {
	if v.width > 128 {
		panic("Vec.Pair: vector wider than 128 bits")
	}
	lo = v.words[0]
	if len(v.words) > 1 {
		hi = v.words[1]
	}
	return hi, lo
}

// String renders the vector MSB-first, for test failure messages.
func (v *Vec) String() string {
	var sb strings.Builder
	for i := v.width - 1; i >= 0; i-- {
		if v.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// RowBuilder assembles a row field by field, least significant first, into a
// vector of the full product width. Fields that extend past the product width
// are truncated, which is how rows near the top of the arrangement lose their
// out-of-range guard bits.
type RowBuilder struct {
	vec *Vec
	pos int
}

// NewRowBuilder starts a row of the given total width with the append cursor
// placed at the given bit offset.
func NewRowBuilder(width, offset int) *RowBuilder {
	if offset < 0 {
		panic("NewRowBuilder: negative offset")
	}
	return &RowBuilder{vec: NewVec(width), pos: offset}
}

// AppendBits appends the lowest numBits of val at the cursor.
func (b *RowBuilder) AppendBits(val uint64, numBits int) {
	if numBits < 0 || numBits > 64 {
		panic("RowBuilder.AppendBits: numBits must be in [0, 64]")
	}
	if numBits < 64 {
		val &= (1 << numBits) - 1
	}
	for i := 0; i < numBits; i++ {
		p := b.pos + i
		if p >= b.vec.width {
			break
		}
		if val&(1<<i) != 0 {
			b.vec.Set(p)
		}
	}
	b.pos += numBits
}

// AppendVec appends the low numBits of another vector at the cursor.
func (b *RowBuilder) AppendVec(v *Vec, numBits int) {
	if numBits < 0 || numBits > v.width {
		panic("RowBuilder.AppendVec: numBits out of range")
	}
	for i := 0; i < numBits; i++ {
		p := b.pos + i
		if p >= b.vec.width {
			break
		}
		if v.Get(i) {
			b.vec.Set(p)
		}
	}
	b.pos += numBits
}

// AppendBit appends a single bit at the cursor.
func (b *RowBuilder) AppendBit(bit bool) {
	if bit {
		b.AppendBits(1, 1)
	} else {
		b.AppendBits(0, 1)
	}
}

// Vec returns the assembled row.
func (b *RowBuilder) Vec() *Vec {
	return b.vec
}
