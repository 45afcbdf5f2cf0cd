package cmd

import (
	"fmt"
	"io"

	corpusfile "github.com/bnema/faulkner-machine/internal/adapters/corpus/file"
	tomlrepo "github.com/bnema/faulkner-machine/internal/adapters/repo/toml"
	"github.com/bnema/faulkner-machine/internal/config"
	"github.com/bnema/faulkner-machine/internal/logging"
	"github.com/bnema/faulkner-machine/internal/ports"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	v         *viper.Viper
	bindErr   error
	newRandom func(seed uint64) ports.Random
}

// runtime holds everything resolved after flags are parsed.
type runtime struct {
	settings config.Settings
	logger   *zap.Logger
	profiles *tomlrepo.ProfileRepository
	corpus   ports.CorpusProvider
	random   ports.Random
}

func wireApp() (*app, error) {
	v, err := config.New(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire configuration: %w", err)
	}

	return &app{
		v:         v,
		newRandom: ports.NewRandom,
	}, nil
}

func (a *app) bindFlag(key string, flag *pflag.Flag) {
	if err := a.v.BindPFlag(key, flag); err != nil && a.bindErr == nil {
		a.bindErr = fmt.Errorf("bind flag %q: %w", key, err)
	}
}

func (a *app) resolve(logOutput io.Writer) (*runtime, error) {
	if a.bindErr != nil {
		return nil, a.bindErr
	}

	settings, err := config.Load(a.v)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(settings.LogLevel, logOutput)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	profiles, err := tomlrepo.NewProfileRepository(settings.ProfilesPath)
	if err != nil {
		return nil, fmt.Errorf("wire profile repository: %w", err)
	}

	return &runtime{
		settings: settings,
		logger:   logger,
		profiles: profiles,
		corpus:   corpusfile.NewProvider(settings.CorpusPath, logger),
		random:   a.newRandom(settings.RNGSeed),
	}, nil
}
