package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/splanner/internal/cli/formatter"
	"github.com/alexanderramin/splanner/internal/domain"
	"github.com/alexanderramin/splanner/internal/planfile"
	"github.com/alexanderramin/splanner/internal/render"
	"github.com/alexanderramin/splanner/internal/service"
)

const defaultPlanPath = "lesson.json"

// openSession loads the plan at path and opens an editing session on it.
func openSession(app *App, path string) (service.LessonService, error) {
	plan, err := planfile.Load(path)
	if err != nil {
		return nil, err
	}
	return app.Lessons(plan), nil
}

func saveSession(path string, lessons service.LessonService) error {
	if err := planfile.Save(path, lessons.Lesson()); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

func newNewCmd(app *App) *cobra.Command {
	var (
		out   string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Tạo giáo án mẫu mới",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				if _, err := os.Stat(out); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", out)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return err
				}
			}
			if err := planfile.Save(out, domain.DefaultLessonPlan()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Đã tạo giáo án mẫu: %s\n", formatter.StyleGreen.Render("✔"), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", defaultPlanPath, "plan document to create")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}

func newAddActivityCmd(app *App) *cobra.Command {
	var planPath string

	cmd := &cobra.Command{
		Use:   "add-activity",
		Short: "Thêm một hoạt động hình thành kiến thức",
		RunE: func(cmd *cobra.Command, args []string) error {
			lessons, err := openSession(app, planPath)
			if err != nil {
				return err
			}
			act, err := lessons.AddFormationActivity()
			if err != nil {
				return err
			}
			if err := saveSession(planPath, lessons); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Đã thêm %s %s\n",
				formatter.StyleGreen.Render("✔"), act.Title, formatter.Dim("("+act.ID+")"))
			return nil
		},
	}

	cmd.Flags().StringVar(&planPath, "plan", defaultPlanPath, "plan document")

	return cmd
}

func newRemoveActivityCmd(app *App) *cobra.Command {
	var planPath, id string

	cmd := &cobra.Command{
		Use:   "remove-activity",
		Short: "Xóa một hoạt động hình thành kiến thức",
		RunE: func(cmd *cobra.Command, args []string) error {
			lessons, err := openSession(app, planPath)
			if err != nil {
				return err
			}
			if err := lessons.RemoveFormationActivity(id); err != nil {
				return err
			}
			if err := saveSession(planPath, lessons); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Đã xóa %s\n", formatter.StyleGreen.Render("✔"), id)
			return nil
		},
	}

	cmd.Flags().StringVar(&planPath, "plan", defaultPlanPath, "plan document")
	cmd.Flags().StringVar(&id, "id", "", "formation activity id")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newPreviewCmd(app *App) *cobra.Command {
	var (
		planPath string
		width    int
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Xem trước giáo án dạng văn bản",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := planfile.Load(planPath)
			if err != nil {
				return err
			}
			text := render.RenderText(plan, render.Options{Width: width})
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("Xem trước", text))
			return nil
		},
	}

	cmd.Flags().StringVar(&planPath, "plan", defaultPlanPath, "plan document")
	cmd.Flags().IntVar(&width, "width", render.DefaultWidth, "text width")

	return cmd
}
