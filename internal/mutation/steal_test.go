package mutation

import (
	"strings"
	"testing"

	"github.com/bnema/faulkner-machine/internal/domain"
	"github.com/bnema/faulkner-machine/internal/ports"
	"github.com/bnema/faulkner-machine/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
)

func TestStealReturnsEmptyWhenOnlyExcludedPersonaHasHistory(t *testing.T) {
	t.Parallel()

	rnd := mocks.NewScriptedRandom(t)
	snapshot := domain.Snapshot{domain.PersonaCompson: {"the old house stood"}}

	assert.Empty(t, Steal(rnd, snapshot, domain.PersonaCompson))
	assert.Zero(t, rnd.IntCalls)
}

func TestStealReturnsEmptyForEmptySnapshot(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Steal(mocks.NewScriptedRandom(t), domain.Snapshot{}, domain.PersonaRosa))
	assert.Empty(t, Steal(mocks.NewScriptedRandom(t), nil, domain.PersonaRosa))
}

func TestStealTakesContiguousWindow(t *testing.T) {
	t.Parallel()

	rnd := mocks.NewScriptedRandom(t).Ints(0, 0, 2, 1)
	snapshot := domain.Snapshot{domain.PersonaRosa: {"one two three four five six"}}

	got := Steal(rnd, snapshot, domain.PersonaCompson)

	assert.Equal(t, "two three four five", got)
}

func TestStealPicksAmongEligiblePersonasInOrder(t *testing.T) {
	t.Parallel()

	rnd := mocks.NewScriptedRandom(t).Ints(1, 1, 0, 0)
	snapshot := domain.Snapshot{
		domain.PersonaCompson: {"compson line here"},
		domain.PersonaRosa:    {"rosa speaks"},
		domain.PersonaShreve:  {"first shreve line", "maybe it was"},
	}

	got := Steal(rnd, snapshot, domain.PersonaCompson)

	assert.Equal(t, "maybe it", got)
}

func TestStealShortLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "single token verbatim", line: "alone", want: "alone"},
		{name: "whitespace only", line: "   ", want: ""},
		{name: "empty", line: "", want: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rnd := mocks.NewScriptedRandom(t)
			snapshot := domain.Snapshot{domain.PersonaQuentin: {tc.line}}
			assert.Equal(t, tc.want, Steal(rnd, snapshot, domain.PersonaRosa))
		})
	}
}

func TestStealNeverReturnsExcludedPersonaFragment(t *testing.T) {
	t.Parallel()

	rnd := ports.NewRandom(7)
	snapshot := domain.Snapshot{
		domain.PersonaCompson: {"compson alpha beta gamma delta epsilon", "compson zeta eta"},
		domain.PersonaRosa:    {"rosa terrible monstrous damned unthinkable"},
		domain.PersonaQuentin: {"quentin yes no yes no"},
	}

	for i := 0; i < 500; i++ {
		fragment := Steal(rnd, snapshot, domain.PersonaCompson)
		words := strings.Fields(fragment)
		assert.GreaterOrEqual(t, len(words), 2)
		assert.LessOrEqual(t, len(words), 5)
		for _, word := range words {
			assert.NotContains(t, []string{"compson", "alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta"}, word)
		}
	}
}
