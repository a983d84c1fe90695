package planfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexanderramin/splanner/internal/domain"
)

// Load reads the plan document at path.
func Load(path string) (domain.LessonPlan, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.LessonPlan{}, err
	}
	defer f.Close()

	plan, err := Decode(f)
	if err != nil {
		return domain.LessonPlan{}, fmt.Errorf("loading %s: %w", path, err)
	}
	return plan, nil
}

// Decode parses a plan document. Both the versioned envelope and a bare
// lesson object are accepted; a bare lesson is read as the current version.
func Decode(r io.Reader) (domain.LessonPlan, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return domain.LessonPlan{}, fmt.Errorf("reading plan document: %w", err)
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return domain.LessonPlan{}, fmt.Errorf("parsing plan document: %w", err)
	}

	var doc Document
	if _, ok := probe["lesson"]; ok {
		if err := json.Unmarshal(data, &doc); err != nil {
			return domain.LessonPlan{}, fmt.Errorf("parsing plan document: %w", err)
		}
	} else {
		doc.Format, doc.Version = Format, Version
		if err := json.Unmarshal(data, &doc.Lesson); err != nil {
			return domain.LessonPlan{}, fmt.Errorf("parsing lesson: %w", err)
		}
		assignPositionalIDs(&doc.Lesson)
	}

	if errs := ValidateDocument(&doc); len(errs) > 0 {
		return domain.LessonPlan{}, &ValidationError{Errs: errs}
	}

	plan := ToPlan(doc.Lesson)
	if err := plan.Validate(); err != nil {
		return domain.LessonPlan{}, &ValidationError{Errs: []error{err}}
	}
	return plan, nil
}

// Encode writes plan as an indented plan document.
func Encode(w io.Writer, plan domain.LessonPlan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(Document{Format: Format, Version: Version, Lesson: FromPlan(plan)})
}

// Save writes plan to path. The document is written to a temporary file in
// the same directory and renamed over path.
func Save(path string, plan domain.LessonPlan) error {
	var buf bytes.Buffer
	if err := Encode(&buf, plan); err != nil {
		return fmt.Errorf("encoding plan document: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("writing plan document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing plan document: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("saving plan document: %w", err)
	}
	return nil
}
