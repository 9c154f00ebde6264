package multiplier

import "boothmul/internal/core"

// Pipeline is the streaming variant of the multiplier: one register stage
// holds the carry-save pair and its valid flag ahead of the final adder, so
// an input presented at step t yields its product at step t+1. With
// pipelining disabled it degenerates to a combinational pass-through with
// zero-step latency.
//
// The register is the only state; a Pipeline must not be shared between
// concurrent call sequences.
type Pipeline struct {
	m        *Multiplier
	enabled  bool
	regSum   *core.Vec
	regCarry *core.Vec
	regValid bool
}

// NewPipeline builds a pipeline for the given configuration. The valid
// register starts in the known-invalid state.
func NewPipeline(cfg core.Config) (*Pipeline, error) {
	m, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return &Pipeline{m: m, enabled: cfg.Pipelined}, nil
}

// Step advances one discrete time step. With pipelining enabled the returned
// product and valid flag reflect the input of the previous step; the product
// is only meaningful when the flag is true. With pipelining disabled the
// input is computed and the valid flag forwarded unchanged.
func (p *Pipeline) Step(a, b uint64, signed, validIn bool) (Product, bool) {
	if !p.enabled {
		if !validIn {
			return Product{}, false
		}
		return p.m.Multiply(a, b, signed), true
	}

	var out Product
	outValid := p.regValid
	if p.regValid {
		hi, lo := p.regSum.Add(p.regCarry.ShiftLeft(1)).Pair()
		out = Product{Hi: hi, Lo: lo}
	}
	if validIn {
		p.regSum, p.regCarry = p.m.reduce(a, b, signed)
	} else {
		p.regSum, p.regCarry = nil, nil
	}
	p.regValid = validIn
	return out, outValid
}

// Reset synchronously clears the valid register: whatever has entered the
// pipeline, the next Step reports an invalid output.
func (p *Pipeline) Reset() {
	p.regSum, p.regCarry = nil, nil
	p.regValid = false
}
