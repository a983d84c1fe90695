package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/alexanderramin/splanner/internal/domain"
)

//go:embed templates/lesson.html.tmpl
var templateFS embed.FS

var lessonTemplate = template.Must(template.ParseFS(templateFS, "templates/lesson.html.tmpl"))

// RenderHTML renders the plan as a printable A4 HTML page.
func RenderHTML(plan domain.LessonPlan) ([]byte, error) {
	var buf bytes.Buffer
	if err := lessonTemplate.ExecuteTemplate(&buf, "lesson.html.tmpl", buildDocument(plan)); err != nil {
		return nil, fmt.Errorf("rendering lesson html: %w", err)
	}
	return buf.Bytes(), nil
}
