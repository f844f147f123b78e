package cli

import (
	"github.com/jplancaster/roadmapper/internal/config"
	"github.com/jplancaster/roadmapper/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects  service.ProjectService
	Roadmaps  service.RoadmapService
	Summaries service.SummaryService
	Config    *config.Provider
}

// NewRootCmd creates the top-level "roadmapper" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "roadmapper",
		Short: "Roadmap prioritization and document summarization engine",
	}

	root.AddCommand(
		newPrioritizeCmd(app),
		newSummarizeCmd(app),
		newProjectCmd(app),
		newConfigCmd(app),
	)

	return root
}
