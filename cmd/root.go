package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/bnema/faulkner-machine/internal/config"
	"github.com/spf13/cobra"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fm",
		Short:         "Faulkner machine (fm): four voices mutating a seed into pillars",
		Long:          "fm (faulkner machine) feeds a seed phrase to four persona voices. Each voice mutates its own line, steals fragments from the others and grows a pillar until it is capped, while a ground stream digests everything they say.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentFlags().String("log-level", "warn", "Log level written to stderr (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("profiles", "", "Path to the style profiles file")
	app.bindFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	app.bindFlag(config.KeyProfilesPath, rootCmd.PersistentFlags().Lookup("profiles"))

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(app),
		newProfilesCmd(app),
	)

	return rootCmd
}
