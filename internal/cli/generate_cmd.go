package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/splanner/internal/cli/formatter"
	"github.com/alexanderramin/splanner/internal/generation"
)

func newGenerateCmd(app *App) *cobra.Command {
	var planPath, topic, grade, subject, out string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Tạo nội dung giáo án bằng AI",
		RunE: func(cmd *cobra.Command, args []string) error {
			lessons, err := openSession(app, planPath)
			if err != nil {
				return err
			}
			cur := lessons.Lesson()
			if grade == "" {
				grade = cur.Grade
			}
			if subject == "" {
				subject = cur.Subject
			}

			var stop func()
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), msgGenerating)
			}
			outcome, err := lessons.GenerateFor(cmd.Context(), topic, grade, subject)
			if stop != nil {
				stop()
			}
			if err != nil {
				return generationError(err)
			}

			if out == "" {
				out = planPath
			}
			if err := saveSession(out, lessons); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, formatter.FormatLessonSummary(outcome.Plan))
			fmt.Fprintf(w, "%s Đã lưu %s %s\n", formatter.StyleGreen.Render("✔"), out,
				formatter.Dim(fmt.Sprintf("(%s, %s)", outcome.Model, formatter.FormatLatency(outcome.LatencyMs))))
			return nil
		},
	}

	cmd.Flags().StringVar(&planPath, "plan", defaultPlanPath, "plan document")
	cmd.Flags().StringVarP(&topic, "topic", "t", "", "lesson topic")
	cmd.Flags().StringVar(&grade, "grade", "", "grade (default: the plan's)")
	cmd.Flags().StringVar(&subject, "subject", "", "subject (default: the plan's)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the result here instead of --plan")
	_ = cmd.MarkFlagRequired("topic")

	return cmd
}

// generationError turns a generation failure into the message shown to the
// user, keeping the cause for errors.Is.
func generationError(err error) error {
	if errors.Is(err, generation.ErrCredentialUnavailable) {
		return fmt.Errorf("%s (%w)", msgKeyUnavailable, err)
	}
	return fmt.Errorf("%s%w", msgGenerationFailed, err)
}
