package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// RenderTable builds a formatted table string using lipgloss. Cells are
// flattened onto one line first so multi-line values keep rows aligned.
// When color is true, headers are purple and the first column is bold.
// When color is false, a plain table is produced.
func RenderTable(headers []string, rows [][]string, color bool) string {
	flat := make([][]string, len(rows))
	for i, row := range rows {
		flat[i] = make([]string, len(row))
		for j, cell := range row {
			flat[i][j] = Snippet(cell, 0)
		}
	}

	t := table.New().
		Headers(headers...).
		Rows(flat...).
		Border(lipgloss.NormalBorder()).
		BorderRow(false).
		BorderColumn(true).
		BorderHeader(true)

	if color {
		headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7c3aed"))
		keyStyle := lipgloss.NewStyle().Bold(true)
		cellStyle := lipgloss.NewStyle()

		t.StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return keyStyle
			default:
				return cellStyle
			}
		})
	}

	return t.Render()
}
