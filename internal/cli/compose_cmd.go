package cli

import (
	"errors"
	"fmt"
	"io/fs"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/splanner/internal/cli/formatter"
	"github.com/alexanderramin/splanner/internal/domain"
	"github.com/alexanderramin/splanner/internal/planfile"
)

func newComposeCmd(app *App) *cobra.Command {
	var planPath string

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Mở trình soạn giáo án tương tác",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errNotInteractive
			}

			plan := domain.DefaultLessonPlan()
			if planPath != "" {
				loaded, err := planfile.Load(planPath)
				switch {
				case err == nil:
					plan = loaded
				case errors.Is(err, fs.ErrNotExist):
				default:
					return err
				}
			}

			lessons := app.Lessons(plan)
			prog := tea.NewProgram(newComposeModel(cmd.Context(), lessons, app.Credentials, planPath),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
			)
			// Observers run on the updating goroutine, which may be the
			// program's own; Send from a fresh one.
			lessons.Subscribe(func(domain.LessonPlan) {
				go prog.Send(planChangedMsg{})
			})
			final, err := prog.Run()
			if err != nil {
				return err
			}

			if fm, ok := final.(composeModel); ok && fm.saveErr != nil {
				return fm.saveErr
			}
			if planPath != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Đã lưu %s\n", formatter.StyleGreen.Render("✔"), planPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&planPath, "plan", "", "plan document to open and save on exit")

	return cmd
}
