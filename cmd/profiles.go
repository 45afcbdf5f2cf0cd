package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/bnema/faulkner-machine/internal/domain"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newProfilesCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Manage persona style profiles",
	}

	cmd.AddCommand(
		newProfilesInitCmd(app),
		newProfilesShowCmd(app),
	)

	return cmd
}

func newProfilesInitCmd(app *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default style profiles file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := app.resolve(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			err = rt.profiles.Save(cmd.Context(), domain.DefaultStyleProfiles(), force)
			if errors.Is(err, domain.ErrProfilesExist) {
				return fmt.Errorf("%w (use --force to overwrite)", err)
			}
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote default profiles to %s\n", rt.profiles.Path())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing profiles file")

	return cmd
}

type profileView struct {
	Persona              string  `json:"persona"`
	Name                 string  `json:"name"`
	Repetition           float64 `json:"repetition"`
	Hallucination        float64 `json:"hallucination"`
	CorpusInsertion      float64 `json:"corpus_insertion"`
	CrossStreamReference float64 `json:"cross_stream_reference"`
}

func profileViews(profiles domain.StyleProfiles) []profileView {
	return lo.Map(domain.Personas(), func(persona domain.Persona, _ int) profileView {
		profile := profiles[persona]
		return profileView{
			Persona:              persona.Key(),
			Name:                 persona.String(),
			Repetition:           profile.Repetition,
			Hallucination:        profile.Hallucination,
			CorpusInsertion:      profile.CorpusInsertion,
			CrossStreamReference: profile.CrossStreamReference,
		}
	})
}

func newProfilesShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective style profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := app.resolve(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			profiles, err := rt.profiles.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load style profiles: %w", err)
			}

			views := profileViews(profiles)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(views)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "PERSONA\tNAME\tREPETITION\tHALLUCINATION\tCORPUS\tCROSS-REF")
			for _, view := range views {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.2f\t%.2f\n",
					view.Persona, view.Name, view.Repetition, view.Hallucination, view.CorpusInsertion, view.CrossStreamReference)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output profiles as JSON")

	return cmd
}
