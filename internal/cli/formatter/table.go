package formatter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const tableColGap = 2

// RenderTable lays rows out under headers with a rule below the header row.
// Short rows are padded with empty cells. The result ends in a newline.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}
	cols := len(headers)
	last := cols - 1

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(StyleDim).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(true).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle()
			if row == table.HeaderRow {
				s = StyleHeader
			}
			if col < last {
				s = s.PaddingRight(tableColGap)
			}
			return s
		})

	for _, row := range rows {
		cells := make([]string, cols)
		copy(cells, row)
		t.Row(cells...)
	}
	return t.Render() + "\n"
}
