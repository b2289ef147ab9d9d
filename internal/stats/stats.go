// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/verte-zerg/keyheat/internal/heatmap"
	"github.com/verte-zerg/keyheat/internal/model"
)

const sparkChars = " .:-=+*#%@"

// SessionMetrics computes WPM, CPM, and accuracy for a session.
func SessionMetrics(correct, incorrect int, durationMs int64) (wpm, cpm, accuracy float64) {
	if durationMs <= 0 {
		return 0, 0, 0
	}
	minutes := float64(durationMs) / 60000.0
	if minutes <= 0 {
		return 0, 0, 0
	}
	wpm = (float64(correct) / 5.0) / minutes
	cpm = float64(correct) / minutes
	den := float64(correct + incorrect)
	if den > 0 {
		accuracy = float64(correct) / den
	}
	return wpm, cpm, accuracy
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints attempt totals and the WPM history.
func RenderSummary(w io.Writer, sum model.Summary, history []float64) error {
	if sum.Attempts == 0 {
		_, err := fmt.Fprintln(w, "No attempts recorded.")
		return err
	}
	lines := []string{
		"Summary",
		fmt.Sprintf("Attempts: %d", sum.Attempts),
		fmt.Sprintf("Avg WPM: %.0f", sum.AvgWPM),
		fmt.Sprintf("Best WPM: %.0f", sum.BestWPM),
	}
	if len(history) > 0 {
		lines = append(lines, fmt.Sprintf("History: [%s] last %.0f", Sparkline(history), history[len(history)-1]))
	}
	lines = append(lines, "")
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// SortByRate orders typed keys worst first and drops keys without hits.
func SortByRate(cells []heatmap.Cell) []heatmap.Cell {
	out := make([]heatmap.Cell, 0, len(cells))
	for _, c := range cells {
		if c.Band != heatmap.BandNone {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Rate == out[j].Rate {
			return out[i].Label < out[j].Label
		}
		return out[i].Rate > out[j].Rate
	})
	return out
}

// RenderKeyTable prints per-key counters, worst error rate first.
func RenderKeyTable(w io.Writer, cells []heatmap.Cell) error {
	rows := SortByRate(cells)
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No key stats found.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Per-Key"); err != nil {
		return err
	}

	cols := []column{
		{title: "Key"},
		{title: "Band"},
		{title: "Error Rate", numeric: true},
		{title: "Hits", numeric: true},
		{title: "Errors", numeric: true},
	}
	tableRows := make([][]string, 0, len(rows))
	for _, c := range rows {
		tableRows = append(tableRows, []string{
			c.Label,
			string(c.Band),
			fmt.Sprintf("%d%%", heatmap.Percent(c.Rate)),
			fmt.Sprintf("%d", c.Stats.Hits),
			fmt.Sprintf("%d", c.Stats.Errors),
		})
	}
	for _, line := range formatTable(cols, tableRows) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}
