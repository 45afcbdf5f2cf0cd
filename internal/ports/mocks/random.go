package mocks

import (
	"sync"
	"testing"
)

// ScriptedRandom replays queued values. Once a queue is exhausted it
// returns the configured default (Float64 defaults to 0.999 so gates stay
// closed, IntN defaults to 0).
type ScriptedRandom struct {
	t  testing.TB
	mu sync.Mutex

	floats []float64
	ints   []int

	FloatDefault float64
	IntDefault   int

	FloatCalls int
	IntCalls   int
}

func NewScriptedRandom(t testing.TB) *ScriptedRandom {
	t.Helper()
	return &ScriptedRandom{t: t, FloatDefault: 0.999}
}

func (r *ScriptedRandom) Floats(values ...float64) *ScriptedRandom {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.floats = append(r.floats, values...)
	return r
}

func (r *ScriptedRandom) Ints(values ...int) *ScriptedRandom {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ints = append(r.ints, values...)
	return r
}

func (r *ScriptedRandom) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.FloatCalls++
	if len(r.floats) == 0 {
		return r.FloatDefault
	}
	value := r.floats[0]
	r.floats = r.floats[1:]
	return value
}

func (r *ScriptedRandom) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.IntCalls++
	if n <= 0 {
		r.t.Fatalf("IntN called with non-positive bound %d", n)
	}

	value := r.IntDefault
	if len(r.ints) > 0 {
		value = r.ints[0]
		r.ints = r.ints[1:]
	}
	if value < 0 || value >= n {
		r.t.Fatalf("scripted IntN value %d out of range [0, %d)", value, n)
	}
	return value
}

// Remaining reports how many queued values were not consumed.
func (r *ScriptedRandom) Remaining() (floats, ints int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.floats), len(r.ints)
}
