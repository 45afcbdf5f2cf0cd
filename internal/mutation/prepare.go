package mutation

import (
	"slices"
	"strings"

	"github.com/bnema/faulkner-machine/internal/domain"
	"github.com/bnema/faulkner-machine/internal/ports"
)

const (
	minInjectedWords = 3
	maxInjectedWords = 10
)

// Prepare applies a persona's local mutations to seed before its voice
// transform runs: corpus injection (used only when the seed is empty),
// word repetition and corpus hallucination.
func Prepare(rnd ports.Random, seed string, profile domain.StyleProfile, corpus domain.Corpus) string {
	base := strings.TrimSpace(seed)

	var injection string
	if len(corpus) > 0 && rnd.Float64() < profile.CorpusInsertion {
		injection = corpusPrefix(rnd, pick(rnd, corpus))
	}

	words := strings.Fields(base)
	if len(words) > 0 && rnd.Float64() < profile.Repetition {
		idx := rnd.IntN(len(words))
		words = slices.Insert(words, idx, words[idx])
	}

	if len(words) > 0 && len(corpus) > 0 && rnd.Float64() < profile.Hallucination {
		idx := rnd.IntN(len(words))
		if replacement := strings.Fields(pick(rnd, corpus)); len(replacement) > 0 {
			words[idx] = replacement[0]
		}
	}

	if len(words) > 0 {
		return strings.Join(words, " ")
	}

	return injection
}

func corpusPrefix(rnd ports.Random, fragment string) string {
	words := strings.Fields(fragment)
	if len(words) == 0 {
		return ""
	}

	upper := min(maxInjectedWords, len(words))
	lower := min(minInjectedWords, upper)
	n := lower + rnd.IntN(upper-lower+1)

	return strings.Join(words[:n], " ")
}
