package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/keyheat/internal/keys"
)

func TestRawEventNormalizesToLayout(t *testing.T) {
	cases := []struct {
		msg  tea.KeyMsg
		want string
	}{
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, "Space"},
		{tea.KeyMsg{Type: tea.KeyEnter}, "Enter"},
		{tea.KeyMsg{Type: tea.KeyEsc}, "Esc"},
		{tea.KeyMsg{Type: tea.KeyBackspace}, "Backspace"},
		{tea.KeyMsg{Type: tea.KeyLeft}, "←"},
		{tea.KeyMsg{Type: tea.KeyPgDown}, "PageDown"},
		{tea.KeyMsg{Type: tea.KeyF11}, "F11"},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, "Tab"},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, "Q"},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(";")}, ";"},
	}
	for _, tc := range cases {
		got := keys.Normalize(rawEvent(tc.msg))
		if got != tc.want {
			t.Fatalf("%v: expected %q, got %q", tc.msg, tc.want, got)
		}
	}
}

func TestRawEventPasteFallsBackToText(t *testing.T) {
	key, code := rawEvent(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hello")})
	if key != "hello" || code != "" {
		t.Fatalf("unexpected event %q %q", key, code)
	}
	if keys.InLayout(keys.Normalize(key, code)) {
		t.Fatalf("multi-rune paste should miss the layout")
	}
}
