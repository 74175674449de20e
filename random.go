package grove

import "math/rand/v2"

// Source supplies the uniform [0, 1) draws used for tree placement and
// branch perturbation. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// seedStream is the fixed second PCG word; only the seed varies between runs.
const seedStream = 0x67726f7665

// NewSource returns a deterministic source. Two sources built from the same
// seed yield identical scenes.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seedStream))
}

// NewRandomSource returns a source seeded from the runtime's global
// generator, so every render differs.
func NewRandomSource() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
