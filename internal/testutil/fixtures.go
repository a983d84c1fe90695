package testutil

import (
	"fmt"

	"github.com/alexanderramin/splanner/internal/domain"
)

// Str returns a pointer to s, for building generated-content fixtures.
func Str(s string) *string {
	return &s
}

// LessonOption customises a fixture lesson plan.
type LessonOption func(*domain.LessonPlan)

func WithLessonName(name string) LessonOption {
	return func(p *domain.LessonPlan) {
		p.LessonName = name
	}
}

func WithGradeSubject(grade, subject string) LessonOption {
	return func(p *domain.LessonPlan) {
		p.Grade = grade
		p.Subject = subject
	}
}

func WithKnowledge(items ...string) LessonOption {
	return func(p *domain.LessonPlan) {
		p.Goals.Knowledge = items
	}
}

func WithEquipment(eq string) LessonOption {
	return func(p *domain.LessonPlan) {
		p.Equipment = eq
	}
}

// WithFormationActivities appends n filled-in formation activities.
func WithFormationActivities(n int) LessonOption {
	return func(p *domain.LessonPlan) {
		for i := 0; i < n; i++ {
			p.Activities.KnowledgeFormation = append(p.Activities.KnowledgeFormation, domain.Activity{
				ID:        fmt.Sprintf("form-test-%d", i),
				Title:     fmt.Sprintf("Hoạt động %d", i+1),
				Objective: fmt.Sprintf("Mục tiêu %d", i+1),
				Steps: domain.Steps{
					Instruction: fmt.Sprintf("Giao nhiệm vụ %d", i+1),
					Execution:   domain.FormationSteps.Execution,
					Discussion:  domain.FormationSteps.Discussion,
					Conclusion:  domain.FormationSteps.Conclusion,
				},
				ExpectedProduct: fmt.Sprintf("Sản phẩm %d", i+1),
			})
		}
	}
}

func WithDigitalCompetency(code, name, action string) LessonOption {
	return func(p *domain.LessonPlan) {
		dc := p.Goals.Competencies.Digital
		p.Goals.Competencies.Digital = append(dc, domain.DigitalCompetency{
			ID:     fmt.Sprintf("dc-%d", len(dc)),
			Code:   code,
			Name:   name,
			Action: action,
		})
	}
}

// NewTestLessonPlan returns a filled-in lesson plan: the default template with
// a real school, teacher and lesson name, and the given options applied.
func NewTestLessonPlan(opts ...LessonOption) domain.LessonPlan {
	p := domain.DefaultLessonPlan()
	p.School = "THCS Nguyễn Du"
	p.Department = "Toán - Tin"
	p.TeacherName = "Nguyễn Văn A"
	p.LessonName = "Phân số"
	p.Goals.Knowledge = []string{"Nhận biết phân số", "So sánh hai phân số"}
	p.Goals.Competencies.Math = "Tư duy và lập luận toán học"
	p.Activities.Startup.Objective = "Tạo hứng thú"
	p.Activities.Startup.Steps.Instruction = "GV chiếu hình chiếc bánh"
	for _, opt := range opts {
		opt(&p)
	}
	return p
}
