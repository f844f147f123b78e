package cli

import (
	"encoding/json"
	"fmt"

	"github.com/jplancaster/roadmapper/internal/cli/formatter"
	"github.com/jplancaster/roadmapper/internal/domain"
	"github.com/jplancaster/roadmapper/internal/importer"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage stored projects",
	}
	cmd.AddCommand(
		newProjectSaveCmd(app),
		newProjectGetCmd(app),
		newProjectListCmd(app),
		newProjectDeleteCmd(app),
	)
	return cmd
}

func newProjectSaveCmd(app *App) *cobra.Command {
	var (
		name        string
		description string
		inputPath   string
	)

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a roadmap as a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			roadmap, err := importer.LoadRoadmap(inputPath)
			if err != nil {
				return err
			}
			p := &domain.Project{
				Name:        name,
				Description: description,
				Roadmap:     *roadmap,
			}
			if err := app.Projects.Save(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved project %s (%s)\n", p.Name, p.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "project name (required)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "project description")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "roadmap JSON file (required)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("input")

	return cmd
}

func newProjectGetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Print a stored project's roadmap as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Projects.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(p.Roadmap, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding roadmap: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProjectList(projects))
			return nil
		},
	}
	return cmd
}

func newProjectDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Projects.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted project %s\n", args[0])
			return nil
		},
	}
	return cmd
}
