package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/faulkner-machine/internal/adapters/render/pillars"
	"github.com/bnema/faulkner-machine/internal/application"
	"github.com/bnema/faulkner-machine/internal/config"
	"github.com/bnema/faulkner-machine/internal/mutation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const seedPrompt = "Enter a question, thought, memory, or dream (seed): "

func newRunCmd(app *app) *cobra.Command {
	var (
		seed       string
		plain      bool
		asJSON     bool
		everyFrame bool
		width      int
		groundRows int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Feed a seed to the four voices and watch the pillars grow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if everyFrame && !plain && !asJSON {
				return errors.New("--every-frame requires --plain or --json")
			}

			rt, err := app.resolve(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = rt.logger.Sync() }()

			if !cmd.Flags().Changed("seed") {
				seed, err = promptSeed(cmd.InOrStdin(), cmd.ErrOrStderr())
				if err != nil {
					return err
				}
			}

			profiles, err := rt.profiles.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load style profiles: %w", err)
			}

			engine := rt.settings.Engine
			engine.Profiles = profiles

			corpus := rt.corpus.Load(cmd.Context())
			session := application.NewSession(seed, engine, corpus, rt.random, rt.logger)
			rt.logger.Debug("session wired",
				zap.String("session_id", session.ID()),
				zap.String("profiles_path", rt.profiles.Path()),
				zap.Bool("plain", plain || asJSON),
			)

			opts := pillars.RenderOptions{ColumnWidth: width, GroundRows: groundRows}
			if plain || asJSON {
				sink := pillars.NewPlainSink(cmd.OutOrStdout(), opts, asJSON, everyFrame)
				return session.Run(cmd.Context(), sink)
			}

			live := pillars.NewLive(cmd.OutOrStdout(), cmd.InOrStdin(), opts)
			if _, err := live.Run(cmd.Context(), session.Run); err != nil {
				if errors.Is(err, pillars.ErrInterrupted) {
					return nil
				}
				return err
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&seed, "seed", "", "Seed phrase (prompted for when omitted)")
	flags.BoolVar(&plain, "plain", false, "Print the final frame without the live display")
	flags.BoolVar(&asJSON, "json", false, "Print the final frame as JSON")
	flags.BoolVar(&everyFrame, "every-frame", false, "With --plain or --json, print every frame")
	flags.IntVar(&width, "width", pillars.DefaultColumnWidth, "Column width of each pillar")
	flags.IntVar(&groundRows, "ground-rows", 0, "Rows of ground to show (0 shows all)")

	flags.Int("cycles", application.DefaultCycles, "Maximum number of cycles")
	flags.Int("pillar-cap", application.DefaultPillarCap, "Character cap of each pillar")
	flags.Int("ground-cap", application.DefaultGroundCap, "Character cap of the ground")
	flags.Duration("delay", application.DefaultDelay, "Pause between emitted lines")
	flags.Float64("seed-steal-probability", application.DefaultSeedStealProbability, "Chance a turn starts from a stolen fragment")
	flags.Int("bite-size", mutation.DefaultBiteSize, "Tokens per ground chunk")
	flags.Float64("drop-probability", mutation.DefaultDropProbability, "Chance the ground drops a token")
	flags.String("corpus", "", "Newline-delimited corpus file (built-in fragments when empty)")
	flags.Uint64("rng-seed", 0, "Seed for the random source (0 seeds from the system)")

	app.bindFlag(config.KeyCycles, flags.Lookup("cycles"))
	app.bindFlag(config.KeyPillarCap, flags.Lookup("pillar-cap"))
	app.bindFlag(config.KeyGroundCap, flags.Lookup("ground-cap"))
	app.bindFlag(config.KeyDelay, flags.Lookup("delay"))
	app.bindFlag(config.KeySeedStealProbability, flags.Lookup("seed-steal-probability"))
	app.bindFlag(config.KeyBiteSize, flags.Lookup("bite-size"))
	app.bindFlag(config.KeyDropProbability, flags.Lookup("drop-probability"))
	app.bindFlag(config.KeyCorpusPath, flags.Lookup("corpus"))
	app.bindFlag(config.KeyRNGSeed, flags.Lookup("rng-seed"))

	return cmd
}

func promptSeed(input io.Reader, prompt io.Writer) (string, error) {
	if _, err := fmt.Fprint(prompt, seedPrompt); err != nil {
		return "", err
	}

	line, err := bufio.NewReader(input).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read seed: %w", err)
	}

	return strings.TrimSpace(line), nil
}
