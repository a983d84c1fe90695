package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/alexanderramin/splanner/internal/domain"
)

// Drafts hold form values while a huh form is open. apply writes them back
// into a plan; nothing changes until the form completes.

type infoDraft struct {
	School      string
	Department  string
	TeacherName string
	LessonName  string
	Subject     string
	Grade       string
	Duration    string
}

func newInfoDraft(p domain.LessonPlan) *infoDraft {
	return &infoDraft{
		School:      p.School,
		Department:  p.Department,
		TeacherName: p.TeacherName,
		LessonName:  p.LessonName,
		Subject:     p.Subject,
		Grade:       p.Grade,
		Duration:    p.Duration,
	}
}

func (d *infoDraft) apply(p domain.LessonPlan) (domain.LessonPlan, error) {
	p.School = d.School
	p.Department = d.Department
	p.TeacherName = d.TeacherName
	p.LessonName = d.LessonName
	p.Subject = d.Subject
	p.Grade = d.Grade
	p.Duration = d.Duration
	return p, nil
}

func (d *infoDraft) form() *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewInput().Title("Trường").Value(&d.School),
			huh.NewInput().Title("Tổ chuyên môn").Value(&d.Department),
			huh.NewInput().Title("Giáo viên").Value(&d.TeacherName),
			huh.NewInput().Title("Tên bài học").Value(&d.LessonName),
		),
		huh.NewGroup(
			huh.NewInput().Title("Môn học").Value(&d.Subject),
			huh.NewInput().Title("Lớp").Value(&d.Grade),
			huh.NewInput().Title("Thời lượng (Số tiết)").Value(&d.Duration),
		),
	)
}

type goalsDraft struct {
	Knowledge string
	Math      string
	General   string
	Qualities string
	Equipment string
}

func newGoalsDraft(p domain.LessonPlan) *goalsDraft {
	return &goalsDraft{
		Knowledge: domain.KnowledgeText(p.Goals.Knowledge),
		Math:      p.Goals.Competencies.Math,
		General:   p.Goals.Competencies.General,
		Qualities: domain.QualitiesText(p.Goals.Qualities),
		Equipment: p.Equipment,
	}
}

func (d *goalsDraft) apply(p domain.LessonPlan) (domain.LessonPlan, error) {
	p = p.Clone()
	p.Goals.Knowledge = domain.ParseKnowledgeText(d.Knowledge)
	p.Goals.Competencies.Math = d.Math
	p.Goals.Competencies.General = d.General
	p.Goals.Qualities = domain.ParseQualitiesText(d.Qualities)
	p.Equipment = d.Equipment
	return p, nil
}

func (d *goalsDraft) form() *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewText().Title("1. Kiến thức").Description("Mỗi yêu cầu một dòng...").Lines(4).Value(&d.Knowledge),
			huh.NewText().Title("2. Năng lực chuyên môn").Lines(3).Value(&d.Math),
			huh.NewText().Title("Năng lực chung").Lines(2).Value(&d.General),
		),
		huh.NewGroup(
			huh.NewText().Title("3. Phẩm chất").Description("Phân cách bằng dấu phẩy").Lines(2).Value(&d.Qualities),
			huh.NewText().Title("Thiết bị dạy học và học liệu").Lines(3).Value(&d.Equipment),
		),
	)
}

type activityDraft struct {
	Role            domain.ActivityRole
	ID              string
	Title           string
	Objective       string
	Instruction     string
	Execution       string
	Discussion      string
	Conclusion      string
	ExpectedProduct string
}

func newActivityDraft(p domain.LessonPlan, role domain.ActivityRole, id string) (*activityDraft, error) {
	act, err := domain.ActivityFor(p, role, id)
	if err != nil {
		return nil, err
	}
	return &activityDraft{
		Role:            role,
		ID:              act.ID,
		Title:           act.Title,
		Objective:       act.Objective,
		Instruction:     act.Steps.Instruction,
		Execution:       act.Steps.Execution,
		Discussion:      act.Steps.Discussion,
		Conclusion:      act.Steps.Conclusion,
		ExpectedProduct: act.ExpectedProduct,
	}, nil
}

// apply re-reads the activity from p so fields the form does not show, such
// as Content and Product, are kept.
func (d *activityDraft) apply(p domain.LessonPlan) (domain.LessonPlan, error) {
	act, err := domain.ActivityFor(p, d.Role, d.ID)
	if err != nil {
		return p, err
	}
	act.Title = d.Title
	act.Objective = d.Objective
	act.Steps = domain.Steps{
		Instruction: d.Instruction,
		Execution:   d.Execution,
		Discussion:  d.Discussion,
		Conclusion:  d.Conclusion,
	}
	act.ExpectedProduct = d.ExpectedProduct
	return domain.ReplaceActivity(p, d.Role, act)
}

func (d *activityDraft) form() *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewInput().Title("Tên hoạt động").Value(&d.Title),
			huh.NewText().Title("Mục tiêu").Lines(2).Value(&d.Objective),
		),
		huh.NewGroup(
			huh.NewText().Title("Bước 1: Chuyển giao").Lines(3).Value(&d.Instruction),
			huh.NewText().Title("Bước 2: Thực hiện").Lines(2).Value(&d.Execution),
			huh.NewText().Title("Bước 3: Báo cáo").Lines(2).Value(&d.Discussion),
			huh.NewText().Title("Bước 4: Kết luận").Lines(2).Value(&d.Conclusion),
		),
		huh.NewGroup(
			huh.NewText().Title("Sản phẩm dự kiến").Lines(4).Value(&d.ExpectedProduct),
		),
	)
}

// formationPicker returns a form selecting one formation activity id, or nil
// when the plan has none.
func formationPicker(p domain.LessonPlan, result *string) *huh.Form {
	acts := p.Activities.KnowledgeFormation
	if len(acts) == 0 {
		return nil
	}
	options := make([]huh.Option[string], 0, len(acts))
	for i, a := range acts {
		options = append(options, huh.NewOption(fmt.Sprintf("%d. %s", i+1, a.Title), a.ID))
	}
	if *result == "" {
		*result = acts[0].ID
	}
	return newForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Chọn hoạt động").
				Options(options...).
				Value(result),
		),
	)
}

type keyDraft struct {
	Key   string
	Label string
}

func (d *keyDraft) form() *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewNote().Title(gateTitle).Description(gateBody+"\n\n"+gateBilling+"\n"+billingURL),
			huh.NewInput().
				Title("API Key").
				EchoMode(huh.EchoModePassword).
				Value(&d.Key).
				Validate(validateRequired),
			huh.NewInput().Title("Nhãn (tùy chọn)").Value(&d.Label),
		),
	)
}

// sectionRole maps an edit section name onto the activity it edits.
var sectionRole = map[string]domain.ActivityRole{
	"startup":     domain.RoleStartup,
	"formation":   domain.RoleFormation,
	"practice":    domain.RolePractice,
	"application": domain.RoleApplication,
}
