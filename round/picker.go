package round

import (
	"math/rand/v2"
	"time"
)

// NoHole marks the absence of a previous pick
const NoHole = -1

// Picker supplies non-repeating hole selection and duration sampling
type Picker struct {
	rng *rand.Rand
}

// NewPicker creates a picker over rng
func NewPicker(rng *rand.Rand) *Picker {
	return &Picker{rng: rng}
}

// newRand seeds a PCG source, seed 0 draws a seed from the global source
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// PickHole returns a uniform index in [0, n) that differs from exclude whenever n > 1
func (p *Picker) PickHole(n, exclude int) int {
	if n <= 1 {
		return 0
	}
	for {
		idx := p.rng.IntN(n)
		if idx != exclude {
			return idx
		}
	}
}

// SampleDuration returns a uniform whole-millisecond duration in [w.Min, w.Max], never below 1ms
func (p *Picker) SampleDuration(w Window) time.Duration {
	lo := max(w.Min.Milliseconds(), 1)
	hi := w.Max.Milliseconds()
	if hi <= lo {
		return time.Duration(lo) * time.Millisecond
	}
	return time.Duration(lo+p.rng.Int64N(hi-lo+1)) * time.Millisecond
}

// Chance returns true with probability prob
func (p *Picker) Chance(prob float64) bool {
	return p.rng.Float64() < prob
}
