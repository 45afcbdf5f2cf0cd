package application

import (
	"fmt"
	"time"

	"github.com/bnema/faulkner-machine/internal/domain"
	"github.com/bnema/faulkner-machine/internal/mutation"
)

const (
	DefaultPillarCap            = 1288
	DefaultGroundCap            = 1288
	DefaultCycles               = 24
	DefaultDelay                = 180 * time.Millisecond
	DefaultSeedStealProbability = 0.25
)

type Config struct {
	PillarCap            int
	GroundCap            int
	Cycles               int
	Delay                time.Duration
	SeedStealProbability float64
	BiteSize             int
	DropProbability      float64
	Profiles             domain.StyleProfiles
}

func DefaultConfig() Config {
	return Config{
		PillarCap:            DefaultPillarCap,
		GroundCap:            DefaultGroundCap,
		Cycles:               DefaultCycles,
		Delay:                DefaultDelay,
		SeedStealProbability: DefaultSeedStealProbability,
		BiteSize:             mutation.DefaultBiteSize,
		DropProbability:      mutation.DefaultDropProbability,
		Profiles:             domain.DefaultStyleProfiles(),
	}
}

func (c Config) Validate() error {
	if c.PillarCap <= 0 {
		return fmt.Errorf("pillar cap must be positive, got %d", c.PillarCap)
	}
	if c.GroundCap <= 0 {
		return fmt.Errorf("ground cap must be positive, got %d", c.GroundCap)
	}
	if c.Cycles < 0 {
		return fmt.Errorf("cycles must not be negative, got %d", c.Cycles)
	}
	if c.Delay < 0 {
		return fmt.Errorf("delay must not be negative, got %s", c.Delay)
	}
	if c.BiteSize <= 0 {
		return fmt.Errorf("ground bite size must be positive, got %d", c.BiteSize)
	}
	if err := checkProbability("seed steal probability", c.SeedStealProbability); err != nil {
		return err
	}
	if err := checkProbability("ground drop probability", c.DropProbability); err != nil {
		return err
	}

	return c.Profiles.Validate()
}

func checkProbability(name string, value float64) error {
	if value < 0 || value > 1 {
		return fmt.Errorf("%s must be within [0, 1], got %v", name, value)
	}
	return nil
}
