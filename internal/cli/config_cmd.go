package cli

import (
	"fmt"

	"github.com/jplancaster/roadmapper/internal/cli/formatter"
	"github.com/jplancaster/roadmapper/internal/importer"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and reload scoring configuration",
	}
	cmd.AddCommand(newConfigShowCmd(app), newConfigReloadCmd(app))
	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print effective weights; with a roadmap, the detected type and domain",
		RunE: func(cmd *cobra.Command, args []string) error {
			if inputPath == "" {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeightTables(app.Config))
				return nil
			}
			roadmap, err := importer.LoadRoadmap(inputPath)
			if err != nil {
				return err
			}
			projectType := app.Config.DetectProjectType(*roadmap)
			projectDomain := app.Config.DetectDomain(*roadmap)
			fmt.Fprintf(cmd.OutOrStdout(), "Detected project type: %s\n", projectType)
			fmt.Fprintf(cmd.OutOrStdout(), "Detected domain:       %s\n", projectDomain)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeights(app.Config.Weights(projectType)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "roadmap JSON file to run detection against")
	return cmd
}

func newConfigReloadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reload",
		Short: "Re-read the external configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Config.Reload()
			fmt.Fprintln(cmd.OutOrStdout(), "Configuration reloaded")
			return nil
		},
	}
}
