// core/xorshift/xorshift.go
package xorshift

// Multiplier is the xorshift64* output scrambler.
const Multiplier uint64 = 0x2545F4914F6CDD1D

// DefaultSeed replaces a zero seed; zero is a fixed point of the shift steps.
const DefaultSeed uint64 = 123456789

// twoPow53Inv maps the top 53 bits of a draw onto [0,1).
const twoPow53Inv = 1.0 / 9007199254740992.0

// Rand is a xorshift64* generator. The whole state is one 64-bit word, so a
// value copy is an independent, restartable stream. Not safe for concurrent use.
type Rand struct {
	state uint64
}

// New returns a generator seeded with seed (0 is replaced by DefaultSeed).
func New(seed uint64) *Rand {
	r := &Rand{}
	r.Seed(seed)
	return r
}

// Seed resets the stream.
func (r *Rand) Seed(seed uint64) {
	if seed == 0 {
		seed = DefaultSeed
	}
	r.state = seed
}

// State returns the raw register (the last shifted value, before scrambling).
func (r *Rand) State() uint64 { return r.state }

// Uint64 advances the register and returns the scrambled draw.
func (r *Rand) Uint64() uint64 {
	x := r.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.state = x
	return x * Multiplier
}

// Float64 returns a uniform value in [0,1) built from the top 53 bits of a draw.
func (r *Rand) Float64() float64 {
	return float64(r.Uint64()>>11) * twoPow53Inv
}
