package core

import "fmt"

// Carry-save compressors, modeled word-parallel over whole rows: each call is
// one layer of bit-sliced reducer instances, one per column. Every output
// carry has weight 2 relative to its column; callers shift it left by one to
// keep all rows at absolute bit weight.

// HalfAdd is the 2:1 compressor: sum = a^b, carry = a&b.
func HalfAdd(a, b *Vec) (sum, carry *Vec) {
	return a.Xor(b), a.And(b)
}

// majority returns a&b | b&c | a&c per column.
func majority(a, b, c *Vec) *Vec {
	return a.And(b).Or(b.And(c)).Or(a.And(c))
}

// FullAdd is the 3:2 carry-save compressor: sum = a^b^c, carry = maj(a,b,c).
func FullAdd(a, b, c *Vec) (sum, carry *Vec) {
	return a.Xor(b).Xor(c), majority(a, b, c)
}

// Compress42 is the 4:2 compressor: two full adders chained, with the first
// adder's carry crossing into the adjacent column (the <<1) as the second
// adder's third input. a+b+c+d == sum + 2*carry over the vector width.
func Compress42(a, b, c, d *Vec) (sum, carry *Vec) {
	s1, c1 := FullAdd(a, b, c)
	return FullAdd(s1, d, c1.ShiftLeft(1))
}

// Tree reduces a fixed number of pre-aligned rows to a (sum, carry) pair in
// canonical carry-save form: the value of the inputs equals sum + 2*carry
// mod 2^width. The layer schedule is fixed at construction from the row
// count alone: each layer groups remaining rows into 4s (4:2), then a
// leftover 3 (3:2) or 2 (2:1), passing a lone row through, until two rows
// remain; a terminal half-adder merges those into the canonical pair.
type Tree struct {
	width   int
	numRows int
	layers  [][]int
}

// NewTree builds the reduction schedule for numRows rows of the given width.
func NewTree(numRows, width int) (*Tree, error) {
	if numRows < 3 {
		return nil, fmt.Errorf("compression tree needs at least 3 rows, got %d", numRows)
	}
	if width < 2 {
		return nil, fmt.Errorf("compression tree width %d too small", width)
	}
	t := &Tree{width: width, numRows: numRows}
	for n := numRows; n > 2; {
		var groups []int
		next := 0
		for n >= 4 {
			groups = append(groups, 4)
			next += 2
			n -= 4
		}
		if n > 0 {
			groups = append(groups, n)
			if n == 1 {
				next++
			} else {
				next += 2
			}
		}
		t.layers = append(t.layers, groups)
		n = next
	}
	return t, nil
}

// NumLayers returns the number of reduction layers before the terminal
// half-adder stage.
func (t *Tree) NumLayers() int {
	return len(t.layers)
}

// Layers returns the group sizes processed by each layer.
func (t *Tree) Layers() [][]int {
	out := make([][]int, len(t.layers))
	for i, l := range t.layers {
		out[i] = append([]int(nil), l...)
	}
	return out
}

// Reduce runs the schedule. The input must match the construction-time row
// count and width exactly.
func (t *Tree) Reduce(rows []*Vec) (sum, carry *Vec) {
	if len(rows) != t.numRows {
		panic(fmt.Sprintf("Tree.Reduce: got %d rows, tree built for %d", len(rows), t.numRows))
	}
	for i, r := range rows {
		if r.Width() != t.width {
			panic(fmt.Sprintf("Tree.Reduce: row %d width %d, tree built for %d", i, r.Width(), t.width))
		}
	}

	cur := append([]*Vec(nil), rows...)
	for _, groups := range t.layers {
		var next []*Vec
		for _, g := range groups {
			switch g {
			case 4:
				s, c := Compress42(cur[0], cur[1], cur[2], cur[3])
				next = append(next, s, c.ShiftLeft(1))
			case 3:
				s, c := FullAdd(cur[0], cur[1], cur[2])
				next = append(next, s, c.ShiftLeft(1))
			case 2:
				s, c := HalfAdd(cur[0], cur[1])
				next = append(next, s, c.ShiftLeft(1))
			case 1:
				next = append(next, cur[0])
			default:
				panic(fmt.Sprintf("Tree.Reduce: bad group size %d", g))
			}
			cur = cur[g:]
		}
		cur = next
	}
	return HalfAdd(cur[0], cur[1])
}
