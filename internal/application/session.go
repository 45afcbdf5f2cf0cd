package application

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/faulkner-machine/internal/domain"
	"github.com/bnema/faulkner-machine/internal/mutation"
	"github.com/bnema/faulkner-machine/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Emission struct {
	Persona domain.Persona
	Line    string
}

// Session drives the four pillars and the ground through bounded cycles.
// It is not safe for concurrent use; Run is the only loop that touches it.
type Session struct {
	id     string
	cfg    Config
	corpus domain.Corpus
	rnd    ports.Random
	logger *zap.Logger

	seed    string
	pillars [domain.PersonaCount]domain.Stream
	ground  domain.Stream
	depth   int
	cycle   int
}

func NewSession(seed string, cfg Config, corpus domain.Corpus, rnd ports.Random, logger *zap.Logger) *Session {
	if rnd == nil {
		rnd = ports.SystemRandom{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	id := uuid.NewString()

	return &Session{
		id:     id,
		cfg:    cfg,
		corpus: corpus.Clone(),
		rnd:    rnd,
		logger: logger.With(zap.String("session_id", id)),
		seed:   seed,
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Depth() int {
	return s.depth
}

func (s *Session) Cycles() int {
	return s.cycle
}

// Snapshot copies every pillar's history; callers may keep or modify it.
func (s *Session) Snapshot() domain.Snapshot {
	snapshot := make(domain.Snapshot, domain.PersonaCount)
	for _, persona := range domain.Personas() {
		snapshot[persona] = s.pillars[persona].Clone().Lines
	}
	return snapshot
}

func (s *Session) Frame(speaker domain.Persona, line string) domain.Frame {
	frame := domain.Frame{
		Cycle:   s.cycle,
		Depth:   s.depth,
		Speaker: speaker,
		Line:    line,
		Ground:  s.ground.Clone(),
	}
	for _, persona := range domain.Personas() {
		frame.Pillars[persona] = s.pillars[persona].Clone()
	}
	return frame
}

func (s *Session) Done() bool {
	if !s.ground.Saturated {
		return false
	}
	for _, pillar := range s.pillars {
		if !pillar.Saturated {
			return false
		}
	}
	return true
}

// Speak produces one line for persona. It reports false when the pillar is
// saturated and was skipped.
func (s *Session) Speak(persona domain.Persona) (string, bool) {
	pillar := &s.pillars[persona]
	if pillar.Saturated {
		return "", false
	}

	seed := pillar.Last()
	if seed == "" {
		seed = s.seed
	}
	if s.rnd.Float64() < s.cfg.SeedStealProbability {
		if fragment := mutation.Steal(s.rnd, s.Snapshot(), persona); fragment != "" {
			seed = fragment + " " + seed
		}
	}

	profile := s.cfg.Profiles[persona]
	snapshot := s.Snapshot()
	candidate := mutation.Prepare(s.rnd, seed, profile, s.corpus)
	line := mutation.TransformerFor(persona)(s.rnd, mutation.Turn{
		Candidate: candidate,
		Snapshot:  snapshot,
		Self:      persona,
		Corpus:    s.corpus,
		Depth:     s.depth,
	})
	line = mutation.Contaminate(s.rnd, line, profile, snapshot, persona)

	if pillar.Append(line, s.cfg.PillarCap) {
		s.logger.Info("pillar saturated",
			zap.String("persona", persona.Key()),
			zap.Int("cycle", s.cycle),
			zap.Int("cap", s.cfg.PillarCap),
		)
	}

	s.feedGround(line)

	return line, true
}

func (s *Session) feedGround(line string) {
	if s.ground.Saturated {
		return
	}

	digested := mutation.Devour(s.rnd, line, s.cfg.BiteSize, s.cfg.DropProbability)
	if digested == "" {
		return
	}

	if s.ground.Append(digested, s.cfg.GroundCap) {
		s.logger.Info("ground saturated", zap.Int("cycle", s.cycle), zap.Int("cap", s.cfg.GroundCap))
	}
}

// Cycle lets every persona speak once, in order, then deepens the session.
func (s *Session) Cycle() []Emission {
	emissions := make([]Emission, 0, domain.PersonaCount)
	_ = s.runCycle(func(persona domain.Persona, line string) error {
		emissions = append(emissions, Emission{Persona: persona, Line: line})
		return nil
	})
	return emissions
}

func (s *Session) runCycle(emit func(domain.Persona, string) error) error {
	for _, persona := range domain.Personas() {
		line, spoke := s.Speak(persona)
		if !spoke {
			continue
		}
		if err := emit(persona, line); err != nil {
			return err
		}
	}

	s.depth++
	s.cycle++
	return nil
}

// Run cycles until the configured count is reached or every stream is
// saturated, emitting a frame after each line and a final Done frame.
func (s *Session) Run(ctx context.Context, sink ports.FrameSink) error {
	s.logger.Info("session started",
		zap.Int("seed_len", len(s.seed)),
		zap.Int("corpus_size", len(s.corpus)),
		zap.Int("cycles", s.cfg.Cycles),
	)

	for s.cycle < s.cfg.Cycles && !s.Done() {
		err := s.runCycle(func(persona domain.Persona, line string) error {
			if err := sink.Emit(ctx, s.Frame(persona, line)); err != nil {
				return fmt.Errorf("emit frame: %w", err)
			}
			return s.pause(ctx)
		})
		if err != nil {
			return err
		}
	}

	final := s.Frame(domain.PersonaCompson, "")
	final.Done = true
	if err := sink.Emit(ctx, final); err != nil {
		return fmt.Errorf("emit final frame: %w", err)
	}

	s.logger.Info("session finished",
		zap.Int("cycles_run", s.cycle),
		zap.Bool("all_saturated", s.Done()),
		zap.Bool("ground_saturated", s.ground.Saturated),
	)

	return nil
}

func (s *Session) pause(ctx context.Context) error {
	if s.cfg.Delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.cfg.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
