package pillars

import (
	"strings"
	"testing"

	"github.com/bnema/faulkner-machine/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFrame() domain.Frame {
	var frame domain.Frame
	frame.Cycle = 2
	frame.Depth = 7
	frame.Speaker = domain.PersonaRosa
	frame.Line = "newest rosa line"
	frame.Pillars[domain.PersonaCompson] = domain.Stream{Lines: []string{"the old house"}}
	frame.Pillars[domain.PersonaRosa] = domain.Stream{Lines: []string{"oldest rosa line", "newest rosa line"}}
	frame.Pillars[domain.PersonaQuentin] = domain.Stream{Lines: []string{"stood stood"}, Saturated: true}
	frame.Pillars[domain.PersonaShreve] = domain.Stream{Lines: []string{"maybe ?"}}
	frame.Ground = domain.Stream{Lines: []string{"house dirt", "bone"}}
	return frame
}

func TestRenderShowsPillarsAndGround(t *testing.T) {
	output, err := Render(sampleFrame(), RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "cycle: 2  depth: 7")
	for _, persona := range domain.Personas() {
		assert.Contains(t, output, persona.String())
	}
	assert.Contains(t, output, "Quentin "+cappedMarker)
	assert.NotContains(t, output, "Compson "+cappedMarker)
	assert.Contains(t, output, "GROUND")
	assert.Contains(t, output, "house dirt bone")
	assert.NotContains(t, output, "[done]")
}

func TestRenderPutsNewestLineOnTop(t *testing.T) {
	output, err := Render(sampleFrame(), RenderOptions{})

	require.NoError(t, err)
	newest := strings.Index(output, "newest rosa line")
	oldest := strings.Index(output, "oldest rosa line")
	require.NotEqual(t, -1, newest)
	require.NotEqual(t, -1, oldest)
	assert.Less(t, newest, oldest)
}

func TestRenderMarksFinalFrame(t *testing.T) {
	frame := sampleFrame()
	frame.Done = true

	output, err := Render(frame, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "[done]")
}

func TestRenderLimitsGroundRows(t *testing.T) {
	frame := sampleFrame()
	frame.Ground = domain.Stream{Lines: []string{strings.Repeat("dirt ", 200), "lastword"}}

	output, err := Render(frame, RenderOptions{ColumnWidth: 10, GroundRows: 1})

	require.NoError(t, err)
	assert.Contains(t, output, "lastword")
	assert.Equal(t, 1, strings.Count(output, "lastword"))
}

func TestWrap(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{name: "blank", text: "   ", width: 10, want: nil},
		{name: "fits", text: "the old house", width: 20, want: []string{"the old house"}},
		{name: "breaks on words", text: "the old house stood", width: 9, want: []string{"the old", "house", "stood"}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, wrap(tc.text, tc.width))
		})
	}
}
