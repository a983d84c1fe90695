package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/splanner/internal/domain"
	"github.com/alexanderramin/splanner/internal/service"
)

// App holds references to all services used by CLI commands.
type App struct {
	// Lessons opens an editing session over plan.
	Lessons     func(plan domain.LessonPlan) service.LessonService
	Credentials service.CredentialService
	History     service.HistoryService
	Logger      *slog.Logger

	// Setup wires the services above from the --config path. It runs once
	// before any command; tests leave it nil and set the services directly.
	Setup func(configPath string) error

	// IsInteractive reports whether stdin is a terminal. Forms and the
	// compose TUI refuse to start without one.
	IsInteractive func() bool
}

var errNotInteractive = errors.New("this command needs an interactive terminal")

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "splanner" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "splanner",
		Short:         "Soạn kế hoạch bài dạy theo 5512/3456 với trợ lý AI",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Setup == nil {
				return nil
			}
			return app.Setup(configPath)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.splanner/config.yaml)")

	root.AddCommand(
		newNewCmd(app),
		newGenerateCmd(app),
		newEditCmd(app),
		newAddActivityCmd(app),
		newRemoveActivityCmd(app),
		newPreviewCmd(app),
		newExportCmd(app),
		newKeyCmd(app),
		newHistoryCmd(app),
		newComposeCmd(app),
	)

	return root
}
