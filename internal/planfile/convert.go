package planfile

import (
	"strings"

	"github.com/alexanderramin/splanner/internal/content"
	"github.com/alexanderramin/splanner/internal/domain"
)

// ToPlan converts a lesson document into a normalized plan. Singleton
// activities without an id get their fixed id.
func ToPlan(doc LessonDoc) domain.LessonPlan {
	plan := domain.LessonPlan{
		School:      doc.School,
		Department:  doc.Department,
		TeacherName: doc.TeacherName,
		LessonName:  doc.LessonName,
		Subject:     doc.Subject,
		Grade:       doc.Grade,
		Duration:    doc.Duration,
		Goals: domain.Goals{
			Knowledge: append([]string(nil), doc.Goals.Knowledge...),
			Competencies: domain.Competencies{
				Math:    doc.Goals.Competencies.Math,
				General: doc.Goals.Competencies.General,
			},
			Qualities: append([]string(nil), doc.Goals.Qualities...),
		},
		Equipment: doc.Equipment,
		Activities: domain.Activities{
			Startup:     toActivity(doc.Activities.Startup, domain.StartupID),
			Practice:    toActivity(doc.Activities.Practice, domain.PracticeID),
			Application: toActivity(doc.Activities.Application, domain.ApplicationID),
		},
	}

	for _, dc := range doc.Goals.Competencies.Digital {
		plan.Goals.Competencies.Digital = append(plan.Goals.Competencies.Digital, domain.DigitalCompetency{
			ID:     dc.ID,
			Code:   dc.Code,
			Name:   dc.Name,
			Action: dc.Action,
		})
	}
	for _, a := range doc.Activities.KnowledgeFormation {
		plan.Activities.KnowledgeFormation = append(plan.Activities.KnowledgeFormation, toActivity(a, ""))
	}

	plan.Normalize()
	return plan
}

// assignPositionalIDs gives id-less digital competencies and formation
// activities the ids the merge would have assigned them. Bare lessons saved
// straight from a generation carry none. An id already used explicitly is
// skipped for the next free position.
func assignPositionalIDs(doc *LessonDoc) {
	digital := doc.Goals.Competencies.Digital
	taken := make(map[string]bool, len(digital))
	for _, dc := range digital {
		taken[dc.ID] = true
	}
	for i := range digital {
		if strings.TrimSpace(digital[i].ID) == "" {
			digital[i].ID = nextFreeID(content.DigitalCompetencyID, i, taken)
		}
	}

	formation := doc.Activities.KnowledgeFormation
	taken = make(map[string]bool, len(formation))
	for _, a := range formation {
		taken[a.ID] = true
	}
	for i := range formation {
		if strings.TrimSpace(formation[i].ID) == "" {
			formation[i].ID = nextFreeID(content.FormationID, i, taken)
		}
	}
}

func nextFreeID(idAt func(int) string, i int, taken map[string]bool) string {
	id := idAt(i)
	for taken[id] {
		i++
		id = idAt(i)
	}
	taken[id] = true
	return id
}

func toActivity(a ActivityDoc, defaultID string) domain.Activity {
	id := a.ID
	if id == "" {
		id = defaultID
	}
	return domain.Activity{
		ID:        id,
		Title:     a.Title,
		Objective: a.Objective,
		Content:   a.Content,
		Product:   a.Product,
		Steps: domain.Steps{
			Instruction: a.Steps.Instruction,
			Execution:   a.Steps.Execution,
			Discussion:  a.Steps.Discussion,
			Conclusion:  a.Steps.Conclusion,
		},
		ExpectedProduct: a.ExpectedProduct,
	}
}

// FromPlan converts a plan into its document form. Sequences are always
// written as arrays, never null.
func FromPlan(plan domain.LessonPlan) LessonDoc {
	p := plan.Clone()
	p.Normalize()

	doc := LessonDoc{
		School:      p.School,
		Department:  p.Department,
		TeacherName: p.TeacherName,
		LessonName:  p.LessonName,
		Subject:     p.Subject,
		Grade:       p.Grade,
		Duration:    p.Duration,
		Goals: GoalsDoc{
			Knowledge: p.Goals.Knowledge,
			Competencies: CompetenciesDoc{
				Math:    p.Goals.Competencies.Math,
				General: p.Goals.Competencies.General,
				Digital: make([]DigitalCompetencyDoc, 0, len(p.Goals.Competencies.Digital)),
			},
			Qualities: p.Goals.Qualities,
		},
		Equipment: p.Equipment,
		Activities: ActivitiesDoc{
			Startup:            fromActivity(p.Activities.Startup),
			KnowledgeFormation: make([]ActivityDoc, 0, len(p.Activities.KnowledgeFormation)),
			Practice:           fromActivity(p.Activities.Practice),
			Application:        fromActivity(p.Activities.Application),
		},
	}
	for _, dc := range p.Goals.Competencies.Digital {
		doc.Goals.Competencies.Digital = append(doc.Goals.Competencies.Digital, DigitalCompetencyDoc(dc))
	}
	for _, a := range p.Activities.KnowledgeFormation {
		doc.Activities.KnowledgeFormation = append(doc.Activities.KnowledgeFormation, fromActivity(a))
	}
	return doc
}

func fromActivity(a domain.Activity) ActivityDoc {
	return ActivityDoc{
		ID:              a.ID,
		Title:           a.Title,
		Objective:       a.Objective,
		Content:         a.Content,
		Product:         a.Product,
		Steps:           StepsDoc(a.Steps),
		ExpectedProduct: a.ExpectedProduct,
	}
}
