package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/splanner/internal/cli/formatter"
	"github.com/alexanderramin/splanner/internal/domain"
)

// planEdit is an open form plus the function that applies its values.
type planEdit struct {
	form  *huh.Form
	apply func(domain.LessonPlan) (domain.LessonPlan, error)
}

// sectionEdit builds the form for one section of plan. id selects the
// formation activity for the "formation" section.
func sectionEdit(plan domain.LessonPlan, section, id string) (*planEdit, error) {
	switch section {
	case "info":
		d := newInfoDraft(plan)
		return &planEdit{form: d.form(), apply: d.apply}, nil
	case "goals":
		d := newGoalsDraft(plan)
		return &planEdit{form: d.form(), apply: d.apply}, nil
	}

	role, ok := sectionRole[section]
	if !ok {
		return nil, fmt.Errorf("unknown section %q (info, goals, startup, formation, practice, application)", section)
	}
	d, err := newActivityDraft(plan, role, id)
	if err != nil {
		return nil, err
	}
	return &planEdit{form: d.form(), apply: d.apply}, nil
}

func newEditCmd(app *App) *cobra.Command {
	var planPath, section, id string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Chỉnh sửa một phần của giáo án",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errNotInteractive
			}
			lessons, err := openSession(app, planPath)
			if err != nil {
				return err
			}
			plan := lessons.Lesson()

			if section == "formation" && id == "" {
				picker := formationPicker(plan, &id)
				if picker == nil {
					return fmt.Errorf("the plan has no formation activity; run add-activity first")
				}
				if err := picker.Run(); err != nil {
					return err
				}
			}

			edit, err := sectionEdit(plan, section, id)
			if err != nil {
				return err
			}
			if err := edit.form.Run(); err != nil {
				return err
			}
			if err := lessons.Edit(edit.apply); err != nil {
				return err
			}
			if err := saveSession(planPath, lessons); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Đã lưu %s\n", formatter.StyleGreen.Render("✔"), planPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&planPath, "plan", defaultPlanPath, "plan document")
	cmd.Flags().StringVar(&section, "section", "info", "info|goals|startup|formation|practice|application")
	cmd.Flags().StringVar(&id, "id", "", "formation activity id for --section formation")

	return cmd
}
