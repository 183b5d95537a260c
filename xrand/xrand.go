// Package xrand implements the 32-bit xorshift generator used for
// reproducible benchmark workloads.
package xrand

// A zero seed would pin the generator at zero forever.
const zeroSeedSubstitute = 0x9E3779B9

// Gen is a xorshift32 generator. The zero value is unusable; construct
// one with New.
type Gen struct {
	state uint32
}

// New returns a generator seeded with seed. A zero seed is replaced by a
// fixed non-zero constant.
func New(seed uint32) *Gen {
	if seed == 0 {
		seed = zeroSeedSubstitute
	}
	return &Gen{state: seed}
}

// Next advances the generator and returns the new state. The same seed
// always yields the same sequence.
func (g *Gen) Next() uint32 {
	x := g.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	g.state = x
	return x
}
