// Package multiplier implements a parameterized signed/unsigned integer
// multiplier structured the way the hardware computes it: a radix-4 Booth
// encoder, a sign-compacted partial-product generator, a Wallace-style
// carry-save compression tree and a final carry-propagate adder. The model
// is bit-accurate: every intermediate row exists and the final addition is
// the only carry propagation.
package multiplier

import (
	"fmt"

	"boothmul/internal/core"
	"boothmul/internal/util"
)

// Product is a 2N-bit product as a (high, low) pair of 64-bit words. For
// operand widths of 32 bits and below the whole product is in Lo.
type Product struct {
	Hi uint64
	Lo uint64
}

// String provides a string representation.
func (p Product) String() string {
	return fmt.Sprintf("{Hi: %#x, Lo: %#x}", p.Hi, p.Lo)
}

// Multiplier is one combinational multiplier instance. It holds no state
// across calls and is safe for concurrent use.
type Multiplier struct {
	cfg  core.Config
	mask uint64
	tree *core.Tree
}

// New validates the configuration and builds the reduction schedule.
func New(cfg core.Config) (*Multiplier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	numRows := core.RowCount(cfg.Width + 2)
	tree, err := core.NewTree(numRows, 2*cfg.Width)
	if err != nil {
		return nil, fmt.Errorf("building compression tree: %w", err)
	}
	util.Log(cfg.Verbose, "multiplier: width=%d rows=%d layers=%v",
		cfg.Width, numRows, tree.Layers())
	return &Multiplier{
		cfg:  cfg,
		mask: ^uint64(0) >> (64 - cfg.Width),
		tree: tree,
	}, nil
}

// Width returns the operand width in bits.
func (m *Multiplier) Width() int {
	return m.cfg.Width
}

// reduce runs encode, arrange and compress, returning the carry-save pair:
// the product equals sum + 2*carry mod 2^(2*width).
func (m *Multiplier) reduce(a, b uint64, signed bool) (sum, carry *core.Vec) {
	a &= m.mask
	b &= m.mask
	digits := core.EncodeMultiplier(b, m.cfg.Width, signed)
	rows := core.GeneratePartialProducts(a, digits, m.cfg.Width, signed)
	return m.tree.Reduce(rows)
}

// Multiply returns the 2N-bit product of two N-bit operands under the given
// interpretation. Operand bits above the configured width are ignored; a
// negative signed operand is passed as its N-bit two's-complement pattern.
func (m *Multiplier) Multiply(a, b uint64, signed bool) Product {
	sum, carry := m.reduce(a, b, signed)
	hi, lo := sum.Add(carry.ShiftLeft(1)).Pair()
	return Product{Hi: hi, Lo: lo}
}
