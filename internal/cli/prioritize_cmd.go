package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jplancaster/roadmapper/internal/cli/formatter"
	"github.com/jplancaster/roadmapper/internal/domain"
	"github.com/jplancaster/roadmapper/internal/importer"
	"github.com/spf13/cobra"
)

func newPrioritizeCmd(app *App) *cobra.Command {
	var (
		inputPath  string
		outputPath string
		timeline   string
		experience string
		scope      string
		explain    bool
	)

	cmd := &cobra.Command{
		Use:   "prioritize",
		Short: "Reorder a roadmap's phases and tasks by weighted heuristics",
		RunE: func(cmd *cobra.Command, args []string) error {
			roadmap, err := importer.LoadRoadmap(inputPath)
			if err != nil {
				return err
			}
			if errs := importer.ValidateRoadmap(roadmap); len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintf(cmd.ErrOrStderr(), "  %v\n", e)
				}
				return fmt.Errorf("roadmap failed validation with %d error(s)", len(errs))
			}

			constraints := &domain.UserConstraints{
				Timeline:   timeline,
				Experience: domain.ParseExperienceLevel(experience),
				Scope:      domain.ParseScope(scope),
			}

			result := app.Roadmaps.Prioritize(cmd.Context(), *roadmap, constraints)

			if explain {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatResult(result))
			}

			data, err := json.MarshalIndent(result.Roadmap, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding roadmap: %w", err)
			}
			if outputPath != "" {
				if err := os.WriteFile(outputPath, append(data, '\n'), 0644); err != nil {
					return fmt.Errorf("writing output: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Prioritized roadmap written to %s\n", outputPath)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "roadmap JSON file (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the prioritized roadmap to a file instead of stdout")
	cmd.Flags().StringVar(&timeline, "timeline", "", "overall timeline, free text (e.g. \"6 weeks\")")
	cmd.Flags().StringVar(&experience, "experience", "beginner", "experience level: beginner|intermediate|advanced|expert")
	cmd.Flags().StringVar(&scope, "scope", "mvp", "project scope: mvp|full-featured|enterprise-level")
	cmd.Flags().BoolVar(&explain, "explain", false, "print diagnostics and advisory dependency warnings")
	cmd.MarkFlagRequired("input")

	return cmd
}
