package tui

import (
	"context"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/keyheat/internal/model"
	"github.com/verte-zerg/keyheat/internal/store"
	"github.com/verte-zerg/keyheat/internal/textbank"
)

func newTestModel(t *testing.T) (*Model, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "keyheat.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	cfg := model.Config{
		Mode:         model.ModeWords,
		Words:        1,
		ReleaseMs:    100,
		Theme:        ThemeDark,
		ShowKeyboard: true,
	}
	gen := textbank.NewWithSource([]string{"ab"}, rand.NewSource(1))
	return NewModel(cfg, st, gen), st
}

func typeRune(m *Model, r rune) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return cmd
}

func TestModelHighlightsAndReleases(t *testing.T) {
	m, _ := newTestModel(t)

	if cmd := typeRune(m, 'a'); cmd == nil {
		t.Fatalf("expected release command")
	}
	firstSeq := m.pressSeq["A"]
	if got := m.kb.activeLabels(); len(got) != 1 || got[0] != "A" {
		t.Fatalf("expected A active, got %v", got)
	}

	m.handleBackspace()
	typeRune(m, 'a')
	m.Update(releaseMsg{label: "A", seq: firstSeq})
	if len(m.kb.activeLabels()) != 1 {
		t.Fatalf("stale release should not clear a repeated press")
	}
	m.Update(releaseMsg{label: "A", seq: m.pressSeq["A"]})
	if len(m.kb.activeLabels()) != 0 {
		t.Fatalf("expected A released")
	}
}

func TestModelRecordsKeyStatsAndAttempt(t *testing.T) {
	m, st := newTestModel(t)
	ctx := context.Background()

	typeRune(m, 'a')
	typeRune(m, 'x')

	all, err := st.All(ctx)
	if err != nil {
		t.Fatalf("load stats: %v", err)
	}
	if all["A"] != (model.KeyStats{Hits: 1}) || all["B"] != (model.KeyStats{Errors: 1}) {
		t.Fatalf("unexpected key stats: %+v", all)
	}
	sum, err := st.Summary(ctx)
	if err != nil {
		t.Fatalf("load summary: %v", err)
	}
	if sum.Attempts != 1 || m.summary.Attempts != 1 || !m.hasLast {
		t.Fatalf("expected one attempt, got %+v", sum)
	}
	if len(m.inputRunes) != 0 || string(m.targetRunes) != "ab" {
		t.Fatalf("expected a fresh session")
	}
	a, _ := m.kb.lookup("A")
	if a.band != "ok" {
		t.Fatalf("expected A in ok band, got %q", a.band)
	}
	b, _ := m.kb.lookup("B")
	if b.band != "none" {
		t.Fatalf("expected B without hits to stay unbanded, got %q", b.band)
	}
}

func TestModelTogglesPersist(t *testing.T) {
	m, st := newTestModel(t)
	ctx := context.Background()

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlK})

	theme, _, err := st.Setting(ctx, store.SettingTheme)
	if err != nil || theme != ThemeLight {
		t.Fatalf("theme = %q, err = %v", theme, err)
	}
	visible, _, err := st.Setting(ctx, store.SettingKeyboard)
	if err != nil || visible != "false" {
		t.Fatalf("keyboard = %q, err = %v", visible, err)
	}

	gen := textbank.NewWithSource([]string{"ab"}, rand.NewSource(1))
	reopened := NewModel(model.Config{Mode: model.ModeWords, Words: 1, Theme: ThemeDark, ShowKeyboard: true}, st, gen)
	if reopened.theme != ThemeLight || reopened.showKeyboard {
		t.Fatalf("expected persisted settings, got theme %q keyboard %v", reopened.theme, reopened.showKeyboard)
	}
}

func TestModelViewAndFooter(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	typeRune(m, 'a')

	footer := m.renderFooter()
	if !strings.Contains(footer, "Progress 50%") {
		t.Fatalf("footer missing progress: %s", footer)
	}
	if !strings.Contains(footer, "A – errors: 0/1 (0%)") {
		t.Fatalf("footer missing key tooltip: %s", footer)
	}
	if m.View() == "" {
		t.Fatalf("expected view output")
	}
}
