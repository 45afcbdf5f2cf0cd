package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePersona(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    Persona
		wantErr bool
	}{
		{name: "key", raw: "rosa", want: PersonaRosa},
		{name: "display name", raw: "Mr Compson", want: PersonaCompson},
		{name: "case and whitespace", raw: "  QUENTIN ", want: PersonaQuentin},
		{name: "unknown", raw: "caddy", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParsePersona(tc.raw)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrUnknownPersona)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPersonasAreExhaustiveAndOrdered(t *testing.T) {
	t.Parallel()

	personas := Personas()
	require.Len(t, personas, PersonaCount)
	for i, persona := range personas {
		assert.Equal(t, Persona(i), persona)
		assert.True(t, persona.Valid())
		assert.NotEmpty(t, persona.Key())
	}

	assert.Equal(t, "Shreve", PersonaShreve.String())
	assert.False(t, Persona(PersonaCount).Valid())
	assert.Equal(t, "Persona(4)", Persona(PersonaCount).String())
}

func TestStyleProfileValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, DefaultStyleProfiles().Validate())

	err := StyleProfile{Repetition: 1.5}.Validate()
	assert.ErrorIs(t, err, ErrInvalidProfile)
	assert.ErrorContains(t, err, "repetition")

	profiles := DefaultStyleProfiles()
	profiles[PersonaShreve].CrossStreamReference = -0.1
	err = profiles.Validate()
	assert.ErrorIs(t, err, ErrInvalidProfile)
	assert.ErrorContains(t, err, "shreve")
}

func TestFallbackCorpusHasFiveFragments(t *testing.T) {
	t.Parallel()

	corpus := FallbackCorpus()
	assert.Equal(t, Corpus{
		"as if the past were not a thing but a place",
		"the old haunted silence of the south",
		"a monstrous unholy betrayal",
		"like a ghost returning to a house long dead",
		"an inherited curse",
	}, corpus)

	corpus[0] = "mutated"
	assert.NotEqual(t, "mutated", FallbackCorpus()[0])
}

func TestPersonaTextRoundTrip(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(map[Persona]string{PersonaQuentin: "yes no"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"quentin":"yes no"}`, string(data))

	var decoded map[Persona]string
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "yes no", decoded[PersonaQuentin])

	_, err = json.Marshal(Persona(9))
	assert.Error(t, err)
}
