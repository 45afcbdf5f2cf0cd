package toml

import (
	"fmt"

	"github.com/bnema/faulkner-machine/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Profiles []profileSchema `toml:"profiles"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported profiles schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type profileSchema struct {
	Persona              string   `toml:"persona"`
	Repetition           *float64 `toml:"repetition,omitempty"`
	Hallucination        *float64 `toml:"hallucination,omitempty"`
	CorpusInsertion      *float64 `toml:"corpus_insertion,omitempty"`
	CrossStreamReference *float64 `toml:"cross_stream_reference,omitempty"`
}

func toSchema(persona domain.Persona, profile domain.StyleProfile) profileSchema {
	return profileSchema{
		Persona:              persona.Key(),
		Repetition:           &profile.Repetition,
		Hallucination:        &profile.Hallucination,
		CorpusInsertion:      &profile.CorpusInsertion,
		CrossStreamReference: &profile.CrossStreamReference,
	}
}

// applyTo overrides only the fields present in the file.
func (s profileSchema) applyTo(profile domain.StyleProfile) domain.StyleProfile {
	if s.Repetition != nil {
		profile.Repetition = *s.Repetition
	}
	if s.Hallucination != nil {
		profile.Hallucination = *s.Hallucination
	}
	if s.CorpusInsertion != nil {
		profile.CorpusInsertion = *s.CorpusInsertion
	}
	if s.CrossStreamReference != nil {
		profile.CrossStreamReference = *s.CrossStreamReference
	}
	return profile
}
