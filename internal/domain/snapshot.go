package domain

import "slices"

// Snapshot is a read-only per-cycle copy of every pillar's history.
type Snapshot map[Persona][]string

func (s Snapshot) Clone() Snapshot {
	cloned := make(Snapshot, len(s))
	for persona, lines := range s {
		cloned[persona] = slices.Clone(lines)
	}
	return cloned
}
