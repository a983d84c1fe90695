package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorDim).
	Padding(1, 2)

// RenderBox frames body in a rounded border. A non-empty title is printed in
// capitals above the body.
func RenderBox(title, body string) string {
	if title == "" {
		return boxStyle.Render(body)
	}
	return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + body)
}

// HumanTimestampFrom describes t relative to now in Vietnamese ("5 phút
// trước"). Anything older than a day, or in the future, gets a full date.
func HumanTimestampFrom(t, now time.Time) string {
	switch age := now.Sub(t); {
	case age < 0 || age >= 24*time.Hour:
		return t.Local().Format("02/01/2006 15:04")
	case age >= time.Hour:
		return fmt.Sprintf("%d giờ trước", int(age.Hours()))
	case age >= time.Minute:
		return fmt.Sprintf("%d phút trước", int(age.Minutes()))
	default:
		return "Vừa xong"
	}
}

// FormatLatency prints a generation latency: "850ms" below a second, "12.4s"
// above.
func FormatLatency(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	if d < time.Second {
		return fmt.Sprintf("%dms", ms)
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
