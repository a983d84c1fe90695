package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/alexanderramin/splanner/internal/domain"
)

// DefaultWidth is the text layout width used when Options.Width is unset.
const DefaultWidth = 80

const minWidth = 40

// Options controls the plain text layout.
type Options struct {
	Width int
}

// RenderText lays the plan out as plain text. The output carries no
// terminal escape codes.
func RenderText(plan domain.LessonPlan, opts Options) string {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	if width < minWidth {
		width = minWidth
	}

	d := buildDocument(plan)
	w := &textWriter{width: width}

	for _, line := range d.HeaderLeft {
		w.center(line)
	}
	for _, line := range d.HeaderRight {
		w.center(line)
	}
	w.blank()
	w.center(d.Title)
	for _, line := range d.Subtitle {
		w.center(line)
	}
	w.blank()

	w.line(sectionGoals)
	w.indented(1, "1. Kiến thức:")
	for _, k := range d.Knowledge {
		w.indented(2, "- "+k)
	}
	w.indented(1, "2. Năng lực:")
	w.indented(2, "- Năng lực riêng: "+d.Math)
	w.indented(2, "- Năng lực chung: "+d.General)
	w.indented(2, "- Năng lực số (CV 3456):")
	for _, dc := range d.Digital {
		w.indented(3, "- "+dc)
	}
	w.indented(1, "3. Phẩm chất:")
	w.indented(2, d.Qualities)
	w.blank()

	w.line(sectionEquipment)
	w.indented(1, d.Equipment)
	w.blank()

	w.line(sectionProcess)
	w.blank()
	w.line(headingStartup)
	w.indented(1, "a) Mục tiêu: "+d.StartupObjective)
	w.indented(1, "b) Nội dung: "+d.StartupContent)
	w.indented(1, "c) Sản phẩm: "+d.StartupProduct)
	w.indented(1, "d) Tổ chức thực hiện:")
	for _, s := range d.StartupSteps {
		w.indented(2, s.Label+": "+s.Text)
	}
	w.blank()

	w.line(headingFormation)
	for _, f := range d.Formation {
		w.indented(1, f.Heading)
		w.indented(1, "a) Mục tiêu: "+f.Objective)
		w.indented(1, "d) Tổ chức thực hiện:")
		w.grid(f.Table)
		w.blank()
	}
	if len(d.Formation) == 0 {
		w.blank()
	}

	w.line(headingPractice)
	w.grid(d.Practice)
	w.blank()

	w.line(headingApplication)
	w.grid(d.Application)
	w.blank()

	w.signatures(d.Signatures, d.SignHint)

	return w.String()
}

type textWriter struct {
	b     strings.Builder
	width int
}

func (w *textWriter) String() string {
	return strings.TrimRight(w.b.String(), "\n") + "\n"
}

func (w *textWriter) blank() {
	w.b.WriteString("\n")
}

func (w *textWriter) line(s string) {
	w.indented(0, s)
}

// indented writes s wrapped to the layout width, every line prefixed with
// level*2 spaces.
func (w *textWriter) indented(level int, s string) {
	pad := strings.Repeat("  ", level)
	for _, l := range strings.Split(fit(s, w.width-len(pad)), "\n") {
		w.b.WriteString(strings.TrimRight(pad+l, " "))
		w.b.WriteString("\n")
	}
}

func (w *textWriter) center(s string) {
	for _, l := range strings.Split(fit(s, w.width), "\n") {
		placed := lipgloss.PlaceHorizontal(w.width, lipgloss.Center, strings.TrimSpace(l))
		w.b.WriteString(strings.TrimRight(placed, " "))
		w.b.WriteString("\n")
	}
}

// grid writes a bordered two-column table. Cell text is wrapped before it
// reaches the table so both columns keep the same width.
func (w *textWriter) grid(tb grid) {
	// 3 border runes plus one space of padding on each side of each cell.
	col := (w.width - 7) / 2
	cell := lipgloss.NewStyle().Padding(0, 1).Width(col + 2)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(tb.Heads[0], tb.Heads[1]).
		Row(fit(stepsText(tb.Left), col), fit(tb.Right, col)).
		StyleFunc(func(_, _ int) lipgloss.Style { return cell })

	w.b.WriteString(t.Render())
	w.b.WriteString("\n")
}

func (w *textWriter) signatures(heads [2]string, hint string) {
	half := w.width / 2
	join := func(a, b string) {
		left := lipgloss.PlaceHorizontal(half, lipgloss.Center, a)
		right := lipgloss.PlaceHorizontal(w.width-half, lipgloss.Center, b)
		w.b.WriteString(strings.TrimRight(left+right, " "))
		w.b.WriteString("\n")
	}
	join(heads[0], heads[1])
	w.blank()
	w.blank()
	join(hint, hint)
}

// stepsText joins labelled steps into one cell body. Steps without a label
// are written as plain paragraphs.
func stepsText(steps []step) string {
	parts := make([]string, 0, len(steps))
	for _, s := range steps {
		if s.Label == "" {
			parts = append(parts, s.Text)
			continue
		}
		parts = append(parts, s.Label+": "+s.Text)
	}
	return strings.Join(parts, "\n")
}

// fit wraps s at word boundaries and then hard-breaks whatever still runs
// past width, such as a word longer than the line or trailing punctuation.
func fit(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wrap.String(wordwrap.String(s, width), width)
}
