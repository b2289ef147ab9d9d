package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/keyheat/internal/heatmap"
	"github.com/verte-zerg/keyheat/internal/keys"
)

// keyCap is the rendered state of one key. Keys that appear twice on the
// layout (Shift, Ctrl, ...) share a cap.
type keyCap struct {
	label   string
	active  bool
	band    heatmap.Band
	tooltip string
}

// keyboard is the virtual keyboard surface, addressed by label.
type keyboard struct {
	rows [][]string
	caps map[string]*keyCap
}

func newKeyboard(rows [][]string) *keyboard {
	kb := &keyboard{rows: rows, caps: map[string]*keyCap{}}
	for _, row := range rows {
		for _, label := range row {
			if _, ok := kb.caps[label]; !ok {
				kb.caps[label] = &keyCap{label: label, band: heatmap.BandNone, tooltip: label}
			}
		}
	}
	return kb
}

// lookup returns the cap for label. Labels off the layout are a miss.
func (kb *keyboard) lookup(label string) (*keyCap, bool) {
	c, ok := kb.caps[label]
	return c, ok
}

func (kb *keyboard) press(label string) bool {
	c, ok := kb.lookup(label)
	if ok {
		c.active = true
	}
	return ok
}

func (kb *keyboard) release(label string) {
	if c, ok := kb.lookup(label); ok {
		c.active = false
	}
}

func (kb *keyboard) applyHeatmap(cells []heatmap.Cell) {
	for _, cell := range cells {
		if c, ok := kb.lookup(cell.Label); ok {
			c.band = cell.Band
			c.tooltip = cell.Tooltip
		}
	}
}

func (kb *keyboard) activeLabels() []string {
	var out []string
	for _, label := range keys.Vocabulary() {
		if c, ok := kb.caps[label]; ok && c.active {
			out = append(out, label)
		}
	}
	return out
}

func (kb *keyboard) render(st styles, showHeat bool) string {
	lines := make([]string, 0, len(kb.rows))
	for _, row := range kb.rows {
		parts := make([]string, 0, len(row))
		for _, label := range row {
			parts = append(parts, kb.renderCap(kb.caps[label], st, showHeat))
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (kb *keyboard) renderCap(c *keyCap, st styles, showHeat bool) string {
	text := padCap(c.label)
	if c.active {
		return st.keyActive.Render(text)
	}
	style := st.keyCap
	if showHeat {
		if color, ok := bandColor(st.palette, c.band); ok {
			style = style.Underline(true).Foreground(color)
		}
	}
	return style.Render(text)
}

func bandColor(p palette, band heatmap.Band) (lipgloss.Color, bool) {
	switch band {
	case heatmap.BandOK:
		return p.ok, true
	case heatmap.BandMid:
		return p.mid, true
	case heatmap.BandHigh:
		return p.high, true
	default:
		return "", false
	}
}

// padCap centres a label in a cap at least three cells wide.
func padCap(label string) string {
	width := runewidth.StringWidth(label)
	if width >= 3 {
		return " " + label + " "
	}
	left := (3 - width) / 2
	right := 3 - width - left
	return strings.Repeat(" ", left+1) + label + strings.Repeat(" ", right+1)
}
