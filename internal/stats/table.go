package stats

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// column describes one text table column. Numeric columns align right.
type column struct {
	title   string
	numeric bool
}

// formatTable lays rows out under cols, sizing each column to its widest
// cell in terminal cells. Missing cells render empty.
func formatTable(cols []column, rows [][]string) []string {
	if len(cols) == 0 {
		return nil
	}
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = runewidth.StringWidth(c.title)
	}
	for _, row := range rows {
		for i := range cols {
			if i < len(row) {
				widths[i] = max(widths[i], runewidth.StringWidth(row[i]))
			}
		}
	}

	titles := make([]string, len(cols))
	for i, c := range cols {
		titles[i] = c.title
	}
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, joinCells(cols, widths, titles))
	for _, row := range rows {
		lines = append(lines, joinCells(cols, widths, row))
	}
	return lines
}

func joinCells(cols []column, widths []int, row []string) string {
	cells := make([]string, len(cols))
	for i, c := range cols {
		value := ""
		if i < len(row) {
			value = row[i]
		}
		if c.numeric {
			cells[i] = runewidth.FillLeft(value, widths[i])
		} else {
			cells[i] = runewidth.FillRight(value, widths[i])
		}
	}
	return strings.Join(cells, " ")
}
