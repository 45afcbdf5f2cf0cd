package domain

import (
	"fmt"
	"strings"
)

type Persona int

const (
	PersonaCompson Persona = iota
	PersonaRosa
	PersonaQuentin
	PersonaShreve

	PersonaCount = 4
)

var personaNames = [PersonaCount]string{
	PersonaCompson: "Mr Compson",
	PersonaRosa:    "Rosa",
	PersonaQuentin: "Quentin",
	PersonaShreve:  "Shreve",
}

var personaKeys = [PersonaCount]string{
	PersonaCompson: "compson",
	PersonaRosa:    "rosa",
	PersonaQuentin: "quentin",
	PersonaShreve:  "shreve",
}

// Personas returns every persona in speaking order.
func Personas() []Persona {
	return []Persona{PersonaCompson, PersonaRosa, PersonaQuentin, PersonaShreve}
}

func (p Persona) Valid() bool {
	return p >= 0 && p < PersonaCount
}

func (p Persona) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Persona(%d)", int(p))
	}
	return personaNames[p]
}

// Key is the stable identifier used in config files.
func (p Persona) Key() string {
	if !p.Valid() {
		return ""
	}
	return personaKeys[p]
}

func ParsePersona(raw string) (Persona, error) {
	needle := strings.ToLower(strings.TrimSpace(raw))
	for i, key := range personaKeys {
		if key == needle || strings.ToLower(personaNames[i]) == needle {
			return Persona(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownPersona, raw)
}

func (p Persona) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPersona, int(p))
	}
	return []byte(p.Key()), nil
}

func (p *Persona) UnmarshalText(text []byte) error {
	parsed, err := ParsePersona(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
