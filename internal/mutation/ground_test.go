package mutation

import (
	"testing"

	"github.com/bnema/faulkner-machine/internal/ports"
	"github.com/bnema/faulkner-machine/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
)

func TestDevourEmptyLine(t *testing.T) {
	t.Parallel()

	rnd := mocks.NewScriptedRandom(t)
	assert.Empty(t, Devour(rnd, "   ", DefaultBiteSize, DefaultDropProbability))
	assert.Zero(t, rnd.FloatCalls)
}

func TestDevourAllDroppedFallsBackToEarthyToken(t *testing.T) {
	t.Parallel()

	rnd := mocks.NewScriptedRandom(t).Floats(0.1, 0.1, 0.1, 0.1).Ints(2)

	got := Devour(rnd, "a b c d", DefaultBiteSize, DefaultDropProbability)

	assert.Equal(t, "bone", got)
	assert.Contains(t, EarthyTokens(), got)
}

func TestDevourNeverReturnsEmptyForNonEmptyLine(t *testing.T) {
	t.Parallel()

	rnd := ports.NewRandom(99)
	for i := 0; i < 300; i++ {
		assert.NotEmpty(t, Devour(rnd, "the ground takes everything back", DefaultBiteSize, 0.95))
	}
}

func TestDevourStopsAfterBiteSizeSurvivors(t *testing.T) {
	t.Parallel()

	rnd := mocks.NewScriptedRandom(t)

	got := Devour(rnd, "one two three four five six", DefaultBiteSize, DefaultDropProbability)

	assert.Equal(t, "one two three four", got)
	assert.Equal(t, 5, rnd.FloatCalls)
}

func TestDevourContinuesIntoNextChunkWhenWordsRot(t *testing.T) {
	t.Parallel()

	rnd := mocks.NewScriptedRandom(t).Floats(0.1, 0.9, 0.1, 0.1, 0.9)

	got := Devour(rnd, "a b c d e f g h", 4, DefaultDropProbability)

	assert.Equal(t, "b e f g h", got)
}

func TestDevourMutatesOneWordPerChunk(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mutation float64
		want     string
	}{
		{name: "reverse", mutation: 0.2, want: "alpha ateb"},
		{name: "halve", mutation: 0.7, want: "alpha be"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rnd := mocks.NewScriptedRandom(t).Floats(0.9, 0.9, 0.1, tc.mutation).Ints(1)
			assert.Equal(t, tc.want, Devour(rnd, "alpha beta", DefaultBiteSize, DefaultDropProbability))
		})
	}
}

func TestDevourNonPositiveBiteSizeUsesDefault(t *testing.T) {
	t.Parallel()

	got := Devour(mocks.NewScriptedRandom(t), "one two three four five", 0, 0)

	assert.Equal(t, "one two three four", got)
}

func TestHalveRunesKeepsAtLeastOneRune(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "x", halveRunes("x"))
	assert.Equal(t, "bo", halveRunes("bone"))
	assert.Equal(t, "r", halveRunes("rot"))
	assert.Equal(t, "éà", reverseRunes("àé"))
}
