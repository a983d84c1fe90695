package content

import (
	"fmt"

	"github.com/alexanderramin/splanner/internal/domain"
)

// MergeGenerated folds generated content into current and returns the new
// plan. current is never modified. lessonName, grade and subject always come
// from the caller; general competency, equipment (when nothing was generated)
// and the startup identity are kept from current. Formation activities are
// replaced wholesale, never appended.
func MergeGenerated(current domain.LessonPlan, generated *PartialContent, topic, grade, subject string) domain.LessonPlan {
	if generated == nil {
		generated = &PartialContent{}
	}
	out := current.Clone()
	out.Normalize()

	out.LessonName = topic
	out.Grade = grade
	out.Subject = subject

	out.Goals.Knowledge = copyStrings(generated.Knowledge)
	out.Goals.Qualities = copyStrings(generated.Qualities)
	out.Goals.Competencies.Math = domain.StrFromPtr(generated.MathCompetency)
	out.Goals.Competencies.Digital = mergeDigital(generated.DigitalCompetencies)

	out.Equipment = domain.CoalesceStr(domain.StrFromPtr(generated.Equipment), out.Equipment)

	out.Activities.Startup = mergeStartup(out.Activities.Startup, generated.Startup)
	out.Activities.KnowledgeFormation = mergeFormation(generated.Formation)
	out.Activities.Practice = mergePhase(out.Activities.Practice, generated.Practice, domain.PracticeSteps)
	out.Activities.Application = mergePhase(out.Activities.Application, generated.Application, domain.ApplicationSteps)

	return out
}

// FormationID is the id the merge assigns to the i-th generated formation activity.
func FormationID(i int) string {
	return fmt.Sprintf("form-%d", i)
}

// DigitalCompetencyID is the id the merge assigns to the i-th digital competency.
func DigitalCompetencyID(i int) string {
	return fmt.Sprintf("dc-%d", i)
}

func mergeDigital(in []DigitalCompetencyContent) []domain.DigitalCompetency {
	out := make([]domain.DigitalCompetency, 0, len(in))
	for i, dc := range in {
		out = append(out, domain.DigitalCompetency{
			ID:     DigitalCompetencyID(i),
			Code:   domain.StrFromPtr(dc.Code),
			Name:   domain.StrFromPtr(dc.Name),
			Action: domain.StrFromPtr(dc.Action),
		})
	}
	return out
}

func mergeStartup(cur domain.Activity, gen *StartupContent) domain.Activity {
	if gen == nil {
		gen = &StartupContent{}
	}
	cur.Objective = domain.StrFromPtr(gen.Objective)
	cur.Steps = domain.Steps{
		Instruction: domain.StrFromPtr(gen.Instruction),
		Execution:   domain.StrFromPtr(gen.Execution),
		Discussion:  domain.StrFromPtr(gen.Discussion),
		Conclusion:  domain.StrFromPtr(gen.Conclusion),
	}
	return cur
}

func mergeFormation(in []FormationContent) []domain.Activity {
	out := make([]domain.Activity, 0, len(in))
	for i, f := range in {
		steps := domain.FormationSteps
		steps.Instruction = domain.StrFromPtr(f.Instruction)
		out = append(out, domain.Activity{
			ID:              FormationID(i),
			Title:           domain.StrFromPtr(f.Title),
			Objective:       domain.StrFromPtr(f.Objective),
			Steps:           steps,
			ExpectedProduct: domain.StrFromPtr(f.ExpectedProduct),
		})
	}
	return out
}

func mergePhase(cur domain.Activity, gen *PhaseContent, canned domain.Steps) domain.Activity {
	if gen == nil {
		gen = &PhaseContent{}
	}
	steps := canned
	steps.Instruction = domain.StrFromPtr(gen.Instruction)
	cur.Objective = domain.StrFromPtr(gen.Objective)
	cur.Steps = steps
	cur.ExpectedProduct = domain.StrFromPtr(gen.ExpectedProduct)
	return cur
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
