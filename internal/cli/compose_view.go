package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/splanner/internal/cli/formatter"
)

var (
	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(formatter.ColorIndigo).
			Padding(0, 1)
	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(formatter.ColorDim).
				Padding(0, 1)
	alertStyle = lipgloss.NewStyle().Foreground(formatter.ColorRed).Bold(true)
	gateStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(formatter.ColorIndigo).
			Padding(1, 2)
)

func (m composeModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	switch {
	case !m.hasKey:
		b.WriteString(m.viewGate())
	case m.edit != nil:
		b.WriteString(formatter.Header(m.edit.title))
		b.WriteString("\n\n")
		b.WriteString(m.edit.form.View())
	case m.tab == tabPreview:
		b.WriteString(m.preview.View())
	default:
		b.WriteString(m.viewEditor())
	}

	b.WriteString("\n\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m composeModel) viewHeader() string {
	title := formatter.Header("S-Planner 5512/3456")
	edit, preview := tabInactiveStyle, tabInactiveStyle
	if m.tab == tabEdit {
		edit = tabActiveStyle
	} else {
		preview = tabActiveStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		title, "  ", edit.Render("Soạn thảo"), preview.Render("Xem trước"))
}

func (m composeModel) viewGate() string {
	var b strings.Builder
	b.WriteString(formatter.Bold(gateTitle))
	b.WriteString("\n\n")
	b.WriteString(gateBody)
	b.WriteString("\n\n")
	b.WriteString(m.keyInput.View())
	b.WriteString("\n\n")
	b.WriteString(formatter.Dim(gateStorage))
	b.WriteString("\n")
	b.WriteString(formatter.Dim(gateBilling))

	style := gateStyle
	if m.width > 8 {
		style = style.Width(min(m.width-4, 76))
	}
	// The URL stays outside the fixed-width box so it is never broken.
	return style.Render(b.String()) + "\n " + formatter.Dim(billingURL)
}

func (m composeModel) viewEditor() string {
	var b strings.Builder
	b.WriteString(formatter.Bold("Trợ lý AI Soạn giáo án"))
	b.WriteString("\n")
	b.WriteString(m.topic.View())
	b.WriteString("\n")
	if m.generating {
		b.WriteString(m.spinner.View() + " " + msgGenerating)
	} else {
		b.WriteString(formatter.Dim("enter để tạo giáo án"))
	}
	b.WriteString("\n\n")
	b.WriteString(formatter.FormatLessonSummary(m.lessons.Lesson()))
	return b.String()
}

func (m composeModel) viewFooter() string {
	var lines []string
	switch {
	case m.alert != "":
		lines = append(lines, alertStyle.Render(m.alert))
	case m.status != "":
		lines = append(lines, formatter.Dim(m.status))
	}
	if m.hasKey && m.edit == nil {
		h := help.New()
		h.Width = m.width
		lines = append(lines, h.View(m.keys))
	}
	return strings.Join(lines, "\n")
}
