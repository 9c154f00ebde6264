package util

import "testing"

func TestOperandStreamDeterministic(t *testing.T) {
	a := NewOperandStream(42)
	b := NewOperandStream(42)
	for i := 0; i < 100; i++ {
		va, vb := a.Next(), b.Next()
		if va != vb {
			t.Fatalf("Same seed diverged at step %d: %#x != %#x", i, va, vb)
		}
	}
}

func TestOperandStreamSeedMatters(t *testing.T) {
	a := NewOperandStream(1)
	b := NewOperandStream(2)
	same := 0
	for i := 0; i < 100; i++ {
		if a.Next() == b.Next() {
			same++
		}
	}
	if same == 100 {
		t.Errorf("Different seeds produced identical sequences")
	}
}

func TestOperandStreamAdvances(t *testing.T) {
	s := NewOperandStream(7)
	seen := make(map[uint64]struct{})
	for i := 0; i < 1000; i++ {
		seen[s.Next()] = struct{}{}
	}
	if len(seen) < 990 {
		t.Errorf("Stream repeats suspiciously often: %d distinct of 1000", len(seen))
	}
}
