package mutation

import (
	"strings"

	"github.com/bnema/faulkner-machine/internal/ports"
)

const (
	DefaultBiteSize        = 4
	DefaultDropProbability = 0.28

	chunkMutationProbability = 0.22
)

var earthyTokens = []string{"dirt", "root", "bone", "rot"}

// EarthyTokens lists what the ground says when a bite leaves nothing.
func EarthyTokens() []string {
	return append([]string(nil), earthyTokens...)
}

// Devour chews line in chunks of biteSize words, dropping words and
// occasionally reversing or halving one survivor per chunk. Chewing stops
// once biteSize words have survived.
func Devour(rnd ports.Random, line string, biteSize int, dropProbability float64) string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return ""
	}
	if biteSize <= 0 {
		biteSize = DefaultBiteSize
	}

	devoured := make([]string, 0, biteSize)
	for start := 0; start < len(words) && len(devoured) < biteSize; start += biteSize {
		chunk := words[start:min(start+biteSize, len(words))]

		kept := make([]string, 0, len(chunk))
		for _, word := range chunk {
			if rnd.Float64() < dropProbability {
				continue
			}
			kept = append(kept, word)
		}

		if len(kept) > 0 && rnd.Float64() < chunkMutationProbability {
			idx := rnd.IntN(len(kept))
			if rnd.Float64() < 0.5 {
				kept[idx] = reverseRunes(kept[idx])
			} else {
				kept[idx] = halveRunes(kept[idx])
			}
		}

		devoured = append(devoured, kept...)
	}

	if len(devoured) == 0 {
		return pick(rnd, earthyTokens)
	}

	return strings.Join(devoured, " ")
}
