package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/faulkner-machine/internal/application"
	"github.com/bnema/faulkner-machine/internal/mutation"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".config/fm"
	envPrefix  = "FM"

	KeyPillarCap            = "pillar_cap"
	KeyGroundCap            = "ground_cap"
	KeyCycles               = "cycles"
	KeyDelay                = "delay"
	KeySeedStealProbability = "seed_steal_probability"
	KeyBiteSize             = "ground.bite_size"
	KeyDropProbability      = "ground.drop_probability"
	KeyCorpusPath           = "corpus.path"
	KeyProfilesPath         = "profiles.path"
	KeyRNGSeed              = "rng_seed"
	KeyLogLevel             = "log.level"
)

type Settings struct {
	Engine       application.Config
	CorpusPath   string
	ProfilesPath string
	RNGSeed      uint64
	LogLevel     string
}

// New prepares v with defaults, the config file search path and FM_*
// environment binding. Flags are bound by the caller.
func New(v *viper.Viper) (*viper.Viper, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	dir := filepath.Join(homeDir, configDir)

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(dir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyPillarCap, application.DefaultPillarCap)
	v.SetDefault(KeyGroundCap, application.DefaultGroundCap)
	v.SetDefault(KeyCycles, application.DefaultCycles)
	v.SetDefault(KeyDelay, application.DefaultDelay)
	v.SetDefault(KeySeedStealProbability, application.DefaultSeedStealProbability)
	v.SetDefault(KeyBiteSize, mutation.DefaultBiteSize)
	v.SetDefault(KeyDropProbability, mutation.DefaultDropProbability)
	v.SetDefault(KeyCorpusPath, "")
	v.SetDefault(KeyProfilesPath, filepath.Join(dir, "profiles.toml"))
	v.SetDefault(KeyRNGSeed, 0)
	v.SetDefault(KeyLogLevel, "warn")

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return v, nil
}

// Load resolves the settings. Style profiles are left at their defaults;
// the profiles file is read separately.
func Load(v *viper.Viper) (Settings, error) {
	engine := application.DefaultConfig()
	engine.PillarCap = v.GetInt(KeyPillarCap)
	engine.GroundCap = v.GetInt(KeyGroundCap)
	engine.Cycles = v.GetInt(KeyCycles)
	engine.Delay = v.GetDuration(KeyDelay)
	engine.SeedStealProbability = v.GetFloat64(KeySeedStealProbability)
	engine.BiteSize = v.GetInt(KeyBiteSize)
	engine.DropProbability = v.GetFloat64(KeyDropProbability)

	settings := Settings{
		Engine:       engine,
		CorpusPath:   strings.TrimSpace(v.GetString(KeyCorpusPath)),
		ProfilesPath: strings.TrimSpace(v.GetString(KeyProfilesPath)),
		RNGSeed:      v.GetUint64(KeyRNGSeed),
		LogLevel:     strings.TrimSpace(v.GetString(KeyLogLevel)),
	}

	if err := settings.Engine.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid configuration: %w", err)
	}
	if settings.ProfilesPath == "" {
		return Settings{}, errors.New("invalid configuration: profiles path is empty")
	}

	return settings, nil
}
