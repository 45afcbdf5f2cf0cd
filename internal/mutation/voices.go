package mutation

import (
	"strings"

	"github.com/bnema/faulkner-machine/internal/domain"
	"github.com/bnema/faulkner-machine/internal/ports"
)

// Turn carries everything a voice may read. Voices never write to it.
type Turn struct {
	Candidate string
	Snapshot  domain.Snapshot
	Self      domain.Persona
	Corpus    domain.Corpus
	Depth     int
}

type Transformer func(rnd ports.Random, turn Turn) string

var transformers = [domain.PersonaCount]Transformer{
	domain.PersonaCompson: CompsonEcho,
	domain.PersonaRosa:    RosaRhetorical,
	domain.PersonaQuentin: QuentinDecay,
	domain.PersonaShreve:  ShreveSpeculation,
}

// TransformerFor panics on an invalid persona; the set is closed.
func TransformerFor(persona domain.Persona) Transformer {
	return transformers[persona]
}

const (
	compsonQuoteProbability = 0.25
	compsonQuoteWords       = 6

	rosaStealProbability = 0.4

	quentinEllipsis            = " ... "
	quentinRefrain             = "yes no yes no"
	quentinRefrainMinDepth     = 2
	quentinRefrainBase         = 0.2
	quentinRefrainStep         = 0.12
	quentinRefrainCeiling      = 0.9
	quentinReversalProbability = 0.18
	quentinReversalWords       = 3

	shreveHedgeProbability    = 0.6
	shreveQuestionProbability = 0.35
	shreveStealProbability    = 0.5
)

var rosaTics = []string{"unthinkable", "terrible", "monstrous", "damned", "an inherited shame"}

var shreveHedges = []string{"perhaps", "it must have been", "surely he thought", "maybe"}

// CompsonEcho is the faithful voice: an occasional corpus quote and a
// borrowed phrase from another pillar.
func CompsonEcho(rnd ports.Random, turn Turn) string {
	text := turn.Candidate

	if len(turn.Corpus) > 0 && rnd.Float64() < compsonQuoteProbability {
		quote := strings.Fields(pick(rnd, turn.Corpus))
		text = joinWords(text, strings.Join(quote[:min(compsonQuoteWords, len(quote))], " "))
	}

	if fragment := Steal(rnd, turn.Snapshot, turn.Self); fragment != "" {
		text = joinWords(text, fragment)
	}

	return text
}

// RosaRhetorical always passes judgment.
func RosaRhetorical(rnd ports.Random, turn Turn) string {
	text := joinWords(turn.Candidate, pick(rnd, rosaTics))

	if rnd.Float64() < rosaStealProbability {
		if fragment := Steal(rnd, turn.Snapshot, turn.Self); fragment != "" {
			text = joinWords(fragment, text)
		}
	}

	return text
}

// QuentinDecay breaks the line after its first word and contradicts
// itself more often the deeper the session goes.
func QuentinDecay(rnd ports.Random, turn Turn) string {
	text := turn.Candidate

	if head, tail, ok := strings.Cut(text, " "); ok {
		text = head + quentinEllipsis + tail
	}

	if turn.Depth >= quentinRefrainMinDepth && rnd.Float64() < RefrainProbability(turn.Depth) {
		text = joinWords(text, quentinRefrain)
	}

	if rnd.Float64() < quentinReversalProbability {
		words := strings.Fields(text)
		if len(words) > quentinReversalWords {
			head := words[:quentinReversalWords]
			reordered := append([]string(nil), words[quentinReversalWords:]...)
			for i := len(head) - 1; i >= 0; i-- {
				reordered = append(reordered, head[i])
			}
			text = strings.Join(reordered, " ")
		}
	}

	if fragment := Steal(rnd, turn.Snapshot, turn.Self); fragment != "" {
		text = joinWords(text, fragment)
	}

	return text
}

func RefrainProbability(depth int) float64 {
	if depth < quentinRefrainMinDepth {
		return 0
	}
	return min(quentinRefrainCeiling, quentinRefrainBase+quentinRefrainStep*float64(depth))
}

// ShreveSpeculation hedges and asks.
func ShreveSpeculation(rnd ports.Random, turn Turn) string {
	text := turn.Candidate

	if rnd.Float64() < shreveHedgeProbability {
		text = joinWords(pick(rnd, shreveHedges), text)
	}

	if rnd.Float64() < shreveQuestionProbability {
		text = joinWords(text, "?")
	}

	if rnd.Float64() < shreveStealProbability {
		if fragment := Steal(rnd, turn.Snapshot, turn.Self); fragment != "" {
			text = joinWords(text, fragment+"?")
		}
	}

	return text
}

// Contaminate finishes a voice's line: whitespace is collapsed and, with
// the persona's cross-stream reference probability, a stolen fragment is
// pushed to the front.
func Contaminate(rnd ports.Random, line string, profile domain.StyleProfile, snapshot domain.Snapshot, self domain.Persona) string {
	line = squash(line)

	if rnd.Float64() < profile.CrossStreamReference {
		if fragment := Steal(rnd, snapshot, self); fragment != "" {
			line = joinWords(fragment, line)
		}
	}

	return line
}
