package tui

import "github.com/charmbracelet/lipgloss"

// Themes.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

type palette struct {
	text      lipgloss.Color
	muted     lipgloss.Color
	incorrect lipgloss.Color
	current   lipgloss.Color
	capBorder lipgloss.Color
	active    lipgloss.Color
	ok        lipgloss.Color
	mid       lipgloss.Color
	high      lipgloss.Color
}

var palettes = map[string]palette{
	ThemeDark: {
		text:      lipgloss.Color("#F0F0F0"),
		muted:     lipgloss.Color("#8C8C8C"),
		incorrect: lipgloss.Color("#FF4D4F"),
		current:   lipgloss.Color("#C89A3A"),
		capBorder: lipgloss.Color("#4A4A4A"),
		active:    lipgloss.Color("#3A7BD5"),
		ok:        lipgloss.Color("#52C41A"),
		mid:       lipgloss.Color("#FAAD14"),
		high:      lipgloss.Color("#FF4D4F"),
	},
	ThemeLight: {
		text:      lipgloss.Color("#1F1F1F"),
		muted:     lipgloss.Color("#8C8C8C"),
		incorrect: lipgloss.Color("#CF1322"),
		current:   lipgloss.Color("#AD6800"),
		capBorder: lipgloss.Color("#BFBFBF"),
		active:    lipgloss.Color("#1677FF"),
		ok:        lipgloss.Color("#389E0D"),
		mid:       lipgloss.Color("#D48806"),
		high:      lipgloss.Color("#CF1322"),
	},
}

type styles struct {
	correct     lipgloss.Style
	incorrect   lipgloss.Style
	pending     lipgloss.Style
	currentWord lipgloss.Style
	cursor      lipgloss.Style
	footer      lipgloss.Style
	keyCap      lipgloss.Style
	keyActive   lipgloss.Style
	palette     palette
}

func newStyles(theme string) styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[ThemeDark]
	}
	pending := lipgloss.NewStyle().Foreground(p.muted)
	return styles{
		correct:     lipgloss.NewStyle().Foreground(p.text),
		incorrect:   lipgloss.NewStyle().Foreground(p.incorrect),
		pending:     pending,
		currentWord: lipgloss.NewStyle().Foreground(p.current),
		cursor:      pending.Underline(true),
		footer:      lipgloss.NewStyle().Foreground(p.muted),
		keyCap:      lipgloss.NewStyle().Foreground(p.text),
		keyActive:   lipgloss.NewStyle().Foreground(p.text).Background(p.active).Bold(true),
		palette:     p,
	}
}

func nextTheme(theme string) string {
	if theme == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}
