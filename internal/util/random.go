package util

import (
	"encoding/binary"
	"math/rand"
	"time"

	"github.com/cespare/xxhash/v2"
)

// RandomSeed generates a seed for randomized sweeps.
func RandomSeed() uint64 {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return r.Uint64()
}

// OperandStream yields a deterministic pseudorandom sequence of 64-bit
// operands: the seeded xxhash of a little-endian counter. The same seed
// always reproduces the same sweep, so a failing operand pair can be
// replayed from the logged seed alone.
type OperandStream struct {
	seed    uint64
	counter uint64
}

// NewOperandStream creates a stream for the given seed.
func NewOperandStream(seed uint64) *OperandStream {
	return &OperandStream{seed: seed}
}

// Next returns the next operand in the sequence.
func (s *OperandStream) Next() uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], s.counter)
	s.counter++
	d := xxhash.NewWithSeed(s.seed)
	d.Write(buf[:])
	return d.Sum64()
}
