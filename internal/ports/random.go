package ports

import "math/rand/v2"

// Random is the source of every random draw in the engine. Gates fire
// when Float64() < p.
type Random interface {
	Float64() float64
	IntN(n int) int
}

type SystemRandom struct{}

func (SystemRandom) Float64() float64 {
	return rand.Float64()
}

func (SystemRandom) IntN(n int) int {
	return rand.IntN(n)
}

// NewRandom returns a seeded source when seed is non-zero and the
// process-wide source otherwise.
func NewRandom(seed uint64) Random {
	if seed == 0 {
		return SystemRandom{}
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
