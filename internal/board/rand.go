package board

// PRNG is a xorshift64* generator. It seeds the Zobrist keys and drives the
// magic-number search, both of which must be reproducible.
type PRNG struct {
	state uint64
}

// NewPRNG returns a generator for seed. A zero seed would lock the generator
// at zero, so it is replaced by 1.
func NewPRNG(seed uint64) *PRNG {
	if seed == 0 {
		seed = 1
	}
	return &PRNG{state: seed}
}

// Next returns the next 64-bit value.
func (p *PRNG) Next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

// Sparse returns a value with roughly an eighth of its bits set, for
// magic-number candidates.
func (p *PRNG) Sparse() uint64 {
	return p.Next() & p.Next() & p.Next()
}
