package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/splanner/internal/domain"
)

// Indigo-accented color palette.
var (
	ColorGreen  = lipgloss.Color("#34d399")
	ColorYellow = lipgloss.Color("#fbbf24")
	ColorRed    = lipgloss.Color("#f87171")
	ColorBlue   = lipgloss.Color("#60a5fa")
	ColorIndigo = lipgloss.Color("#818cf8")
	ColorDim    = lipgloss.Color("#9ca3af")
	ColorFg     = lipgloss.Color("#e5e7eb")
	ColorHeader = lipgloss.Color("#a5b4fc")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleIndigo = lipgloss.NewStyle().Foreground(ColorIndigo)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusColor returns the style for a generation attempt status.
func StatusColor(status domain.GenerationStatus) lipgloss.Style {
	switch status {
	case domain.GenerationOK:
		return StyleGreen
	case domain.GenerationCredentialUnavailable, domain.GenerationFailed:
		return StyleRed
	case domain.GenerationEmptyResponse, domain.GenerationRejected:
		return StyleYellow
	default:
		return StyleDim
	}
}

// StatusPill returns a colored indicator such as "● ok".
func StatusPill(status domain.GenerationStatus) string {
	symbol := "●"
	if status != domain.GenerationOK {
		symbol = "✖"
	}
	return StatusColor(status).Render(symbol + " " + string(status))
}

// Header renders a section header with the header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
