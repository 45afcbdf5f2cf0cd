package ports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRandomSeededIsReproducible(t *testing.T) {
	t.Parallel()

	a := NewRandom(42)
	b := NewRandom(42)
	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.IntN(100), b.IntN(100))
	}
}

func TestNewRandomZeroSeedUsesSystemSource(t *testing.T) {
	t.Parallel()

	rnd := NewRandom(0)
	assert.IsType(t, SystemRandom{}, rnd)

	value := rnd.Float64()
	assert.GreaterOrEqual(t, value, 0.0)
	assert.Less(t, value, 1.0)
	assert.Less(t, rnd.IntN(3), 3)
}
