package domain

import "fmt"

type StyleProfile struct {
	Repetition           float64
	Hallucination        float64
	CorpusInsertion      float64
	CrossStreamReference float64
}

func (p StyleProfile) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{name: "repetition", value: p.Repetition},
		{name: "hallucination", value: p.Hallucination},
		{name: "corpus_insertion", value: p.CorpusInsertion},
		{name: "cross_stream_reference", value: p.CrossStreamReference},
	}

	for _, field := range fields {
		if field.value < 0 || field.value > 1 {
			return fmt.Errorf("%w: %s must be within [0, 1], got %v", ErrInvalidProfile, field.name, field.value)
		}
	}

	return nil
}

type StyleProfiles [PersonaCount]StyleProfile

func DefaultStyleProfiles() StyleProfiles {
	return StyleProfiles{
		PersonaCompson: {Repetition: 0.05, Hallucination: 0.05, CorpusInsertion: 0.20, CrossStreamReference: 0.18},
		PersonaRosa:    {Repetition: 0.18, Hallucination: 0.12, CorpusInsertion: 0.25, CrossStreamReference: 0.30},
		PersonaQuentin: {Repetition: 0.30, Hallucination: 0.22, CorpusInsertion: 0.20, CrossStreamReference: 0.22},
		PersonaShreve:  {Repetition: 0.08, Hallucination: 0.06, CorpusInsertion: 0.15, CrossStreamReference: 0.40},
	}
}

func (p StyleProfiles) Validate() error {
	for _, persona := range Personas() {
		if err := p[persona].Validate(); err != nil {
			return fmt.Errorf("%s: %w", persona.Key(), err)
		}
	}

	return nil
}
