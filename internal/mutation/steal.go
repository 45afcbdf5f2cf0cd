package mutation

import (
	"strings"

	"github.com/bnema/faulkner-machine/internal/domain"
	"github.com/bnema/faulkner-machine/internal/ports"
	"github.com/samber/lo"
)

const (
	minStolenWords = 2
	maxStolenWords = 5
)

// Steal returns a 2..5 word window from a random line of a random pillar
// other than exclude, or "" when no other pillar has spoken yet.
func Steal(rnd ports.Random, snapshot domain.Snapshot, exclude domain.Persona) string {
	sources := lo.Filter(domain.Personas(), func(persona domain.Persona, _ int) bool {
		return persona != exclude && len(snapshot[persona]) > 0
	})
	if len(sources) == 0 {
		return ""
	}

	history := snapshot[pick(rnd, sources)]
	line := pick(rnd, history)

	words := strings.Fields(line)
	if len(words) < minStolenWords {
		if len(words) == 0 {
			return ""
		}
		return line
	}

	upper := min(maxStolenWords, len(words))
	width := minStolenWords + rnd.IntN(upper-minStolenWords+1)
	start := rnd.IntN(len(words) - width + 1)

	return strings.Join(words[start:start+width], " ")
}
