package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexmoren/studyplan/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Classes  service.ClassService
	Tasks    service.TaskService
	Profile  service.ProfileService
	Workload service.WorkloadService
	Plans    service.PlanService

	// IsInteractive reports whether stdin is attached to a terminal;
	// interactive views and wizards are skipped when it returns false.
	IsInteractive func() bool
}

// Interactive reports whether interactive UI elements may be used.
func (a *App) Interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "studyplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "studyplan",
		Short: "Study schedule optimizer for classes, tasks, and deadlines",
	}

	root.AddCommand(
		newClassCmd(app),
		newTaskCmd(app),
		newProfileCmd(app),
		newWorkloadCmd(app),
		newPlanCmd(app),
		newImportCmd(app),
	)

	return root
}
