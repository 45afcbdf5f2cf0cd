package domain

// Frame is what the engine exposes to a renderer after each emitted line.
type Frame struct {
	Cycle   int                  `json:"cycle"`
	Depth   int                  `json:"depth"`
	Speaker Persona              `json:"speaker"`
	Line    string               `json:"line,omitempty"`
	Pillars [PersonaCount]Stream `json:"pillars"`
	Ground  Stream               `json:"ground"`
	Done    bool                 `json:"done"`
}

func (f Frame) AllSaturated() bool {
	if !f.Ground.Saturated {
		return false
	}
	for _, pillar := range f.Pillars {
		if !pillar.Saturated {
			return false
		}
	}
	return true
}
