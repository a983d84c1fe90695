package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidPlan is wrapped by Validate when a lesson plan breaks a structural invariant.
var ErrInvalidPlan = errors.New("invalid lesson plan")

// LessonPlan is the root aggregate of an authored lesson: identity fields,
// goals, equipment and the four teaching activities.
type LessonPlan struct {
	School      string
	Department  string
	TeacherName string
	LessonName  string
	Subject     string
	Grade       string
	Duration    string
	Goals       Goals
	Equipment   string
	Activities  Activities
}

type Goals struct {
	Knowledge    []string
	Competencies Competencies
	Qualities    []string
}

type Competencies struct {
	Math    string
	General string
	Digital []DigitalCompetency
}

// DigitalCompetency is one coded competency from the digital competency
// framework (Công văn 3456). Only the AI merge creates these.
type DigitalCompetency struct {
	ID     string
	Code   string
	Name   string
	Action string
}

// Steps are the four organisational steps every activity carries.
type Steps struct {
	Instruction string
	Execution   string
	Discussion  string
	Conclusion  string
}

type Activity struct {
	ID              string
	Title           string
	Objective       string
	Content         string
	Product         string
	Steps           Steps
	ExpectedProduct string
}

// Activities holds the four roles of the 5512 lesson structure. Startup,
// Practice and Application are singletons; KnowledgeFormation is ordered.
type Activities struct {
	Startup            Activity
	KnowledgeFormation []Activity
	Practice           Activity
	Application        Activity
}

// Normalize replaces nil sequences with empty ones so that a plan never
// carries a partially-constructed collection.
func (p *LessonPlan) Normalize() {
	p.Goals.Knowledge = StrsOrEmpty(p.Goals.Knowledge)
	p.Goals.Qualities = StrsOrEmpty(p.Goals.Qualities)
	if p.Goals.Competencies.Digital == nil {
		p.Goals.Competencies.Digital = []DigitalCompetency{}
	}
	if p.Activities.KnowledgeFormation == nil {
		p.Activities.KnowledgeFormation = []Activity{}
	}
}

// Validate checks the structural invariants of the plan. Content quality is
// not checked.
func (p LessonPlan) Validate() error {
	var errs []error
	for role, a := range map[ActivityRole]Activity{
		RoleStartup:     p.Activities.Startup,
		RolePractice:    p.Activities.Practice,
		RoleApplication: p.Activities.Application,
	} {
		if a.ID == "" {
			errs = append(errs, fmt.Errorf("%s activity has no id", role))
		}
	}

	seen := make(map[string]bool, len(p.Activities.KnowledgeFormation))
	for i, a := range p.Activities.KnowledgeFormation {
		if a.ID == "" {
			errs = append(errs, fmt.Errorf("formation activity %d has no id", i+1))
			continue
		}
		if seen[a.ID] {
			errs = append(errs, fmt.Errorf("formation activity id %q is duplicated", a.ID))
		}
		seen[a.ID] = true
	}

	for i, dc := range p.Goals.Competencies.Digital {
		if dc.ID == "" {
			errs = append(errs, fmt.Errorf("digital competency %d has no id", i+1))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidPlan, errors.Join(errs...))
}

// Clone returns a deep copy. Slices of the copy never alias the receiver's.
func (p LessonPlan) Clone() LessonPlan {
	out := p
	out.Goals.Knowledge = cloneStrings(p.Goals.Knowledge)
	out.Goals.Qualities = cloneStrings(p.Goals.Qualities)
	if p.Goals.Competencies.Digital != nil {
		out.Goals.Competencies.Digital = make([]DigitalCompetency, len(p.Goals.Competencies.Digital))
		copy(out.Goals.Competencies.Digital, p.Goals.Competencies.Digital)
	}
	if p.Activities.KnowledgeFormation != nil {
		out.Activities.KnowledgeFormation = make([]Activity, len(p.Activities.KnowledgeFormation))
		copy(out.Activities.KnowledgeFormation, p.Activities.KnowledgeFormation)
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
