package domain

import (
	"fmt"
	"strings"
)

// FormationTitle is the default title of the n-th (1-based) formation activity.
func FormationTitle(n int) string {
	return fmt.Sprintf("Hoạt động %d", n)
}

// AddFormationActivity returns a copy of plan with a blank formation activity
// appended under the given id.
func AddFormationActivity(plan LessonPlan, id string) LessonPlan {
	out := plan.Clone()
	out.Activities.KnowledgeFormation = append(out.Activities.KnowledgeFormation, Activity{
		ID:    id,
		Title: FormationTitle(len(plan.Activities.KnowledgeFormation) + 1),
	})
	return out
}

// RemoveFormationActivity returns a copy of plan without the formation
// activity identified by id. An unknown id is an error.
func RemoveFormationActivity(plan LessonPlan, id string) (LessonPlan, error) {
	out := plan.Clone()
	kept := make([]Activity, 0, len(out.Activities.KnowledgeFormation))
	found := false
	for _, a := range out.Activities.KnowledgeFormation {
		if a.ID == id {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	if !found {
		return plan, fmt.Errorf("formation activity %q not found", id)
	}
	out.Activities.KnowledgeFormation = kept
	return out, nil
}

// ActivityFor returns the activity holding role. For RoleFormation the id
// selects which one.
func ActivityFor(plan LessonPlan, role ActivityRole, id string) (Activity, error) {
	switch role {
	case RoleStartup:
		return plan.Activities.Startup, nil
	case RolePractice:
		return plan.Activities.Practice, nil
	case RoleApplication:
		return plan.Activities.Application, nil
	case RoleFormation:
		for _, a := range plan.Activities.KnowledgeFormation {
			if a.ID == id {
				return a, nil
			}
		}
		return Activity{}, fmt.Errorf("formation activity %q not found", id)
	default:
		return Activity{}, fmt.Errorf("unknown activity role %q", role)
	}
}

// ReplaceActivity returns a copy of plan with the activity holding role
// replaced. Singleton ids are kept whatever the replacement carries.
func ReplaceActivity(plan LessonPlan, role ActivityRole, act Activity) (LessonPlan, error) {
	out := plan.Clone()
	switch role {
	case RoleStartup:
		act.ID = out.Activities.Startup.ID
		out.Activities.Startup = act
	case RolePractice:
		act.ID = out.Activities.Practice.ID
		out.Activities.Practice = act
	case RoleApplication:
		act.ID = out.Activities.Application.ID
		out.Activities.Application = act
	case RoleFormation:
		for i, a := range out.Activities.KnowledgeFormation {
			if a.ID == act.ID {
				out.Activities.KnowledgeFormation[i] = act
				return out, nil
			}
		}
		return plan, fmt.Errorf("formation activity %q not found", act.ID)
	default:
		return plan, fmt.Errorf("unknown activity role %q", role)
	}
	return out, nil
}

// ParseKnowledgeText splits a multi-line text area into knowledge
// requirements, one per line. Blank lines are dropped.
func ParseKnowledgeText(text string) []string {
	out := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// KnowledgeText is the inverse of ParseKnowledgeText.
func KnowledgeText(knowledge []string) string {
	return strings.Join(knowledge, "\n")
}

// ParseQualitiesText splits a comma-separated list of qualities.
func ParseQualitiesText(text string) []string {
	out := []string{}
	for _, q := range strings.Split(text, ",") {
		q = strings.TrimSpace(q)
		if q != "" {
			out = append(out, q)
		}
	}
	return out
}

// QualitiesText is the inverse of ParseQualitiesText.
func QualitiesText(qualities []string) string {
	return strings.Join(qualities, ", ")
}
