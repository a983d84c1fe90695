package planfile

import (
	"fmt"
	"strings"
)

// ValidationError carries every problem found in a plan document.
type ValidationError struct {
	Errs []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid plan document (%d errors): %s", len(e.Errs), strings.Join(msgs, "; "))
}

func (e *ValidationError) Unwrap() []error {
	return e.Errs
}

// ValidateDocument checks the envelope and the structural invariants of the
// lesson. Returns a slice of all validation errors found.
func ValidateDocument(doc *Document) []error {
	var errs []error

	if doc.Format != Format {
		errs = append(errs, fmt.Errorf("format: expected %q, got %q", Format, doc.Format))
	}
	if doc.Version != Version {
		errs = append(errs, fmt.Errorf("version: unsupported version %d (expected %d)", doc.Version, Version))
	}

	errs = append(errs, validateFormation(doc.Lesson.Activities.KnowledgeFormation)...)

	for i, dc := range doc.Lesson.Goals.Competencies.Digital {
		if strings.TrimSpace(dc.ID) == "" {
			errs = append(errs, fmt.Errorf("goals.competencies.digital[%d].id is required", i))
		}
	}
	return errs
}

func validateFormation(acts []ActivityDoc) []error {
	var errs []error
	seen := make(map[string]int, len(acts))
	for i, a := range acts {
		if strings.TrimSpace(a.ID) == "" {
			errs = append(errs, fmt.Errorf("activities.knowledgeFormation[%d].id is required", i))
			continue
		}
		if prev, ok := seen[a.ID]; ok {
			errs = append(errs, fmt.Errorf("activities.knowledgeFormation[%d].id %q duplicates entry %d", i, a.ID, prev))
			continue
		}
		seen[a.ID] = i
	}
	return errs
}
