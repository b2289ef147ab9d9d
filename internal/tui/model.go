// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/keyheat/internal/heatmap"
	"github.com/verte-zerg/keyheat/internal/keys"
	"github.com/verte-zerg/keyheat/internal/keystats"
	"github.com/verte-zerg/keyheat/internal/model"
	statsPkg "github.com/verte-zerg/keyheat/internal/stats"
	"github.com/verte-zerg/keyheat/internal/store"
	"github.com/verte-zerg/keyheat/internal/textbank"
)

const weakKeysShown = 5

// releaseMsg clears a highlighted key. Terminals report no key-up, so a
// press is released after the configured delay unless pressed again.
type releaseMsg struct {
	label string
	seq   int
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	config   model.Config
	store    *store.Store
	recorder *keystats.Recorder
	gen      *textbank.Generator
	kb       *keyboard
	styles   styles

	width  int
	height int

	targetRunes []rune
	inputRunes  []rune

	started   bool
	startedAt time.Time
	correct   int
	incorrect int

	pressSeq    map[string]int
	seq         int
	lastPressed string

	theme        string
	showKeyboard bool
	showHeat     bool

	lastWPM float64
	hasLast bool
	summary model.Summary
	weak    []string
}

// NewModel constructs a typing TUI model.
func NewModel(cfg model.Config, st *store.Store, gen *textbank.Generator) *Model {
	m := &Model{
		config:       cfg,
		store:        st,
		recorder:     keystats.NewRecorder(st),
		gen:          gen,
		kb:           newKeyboard(keys.Layout),
		pressSeq:     map[string]int{},
		theme:        cfg.Theme,
		showKeyboard: cfg.ShowKeyboard,
		showHeat:     true,
	}
	m.loadSettings()
	m.styles = newStyles(m.theme)
	m.resetSession()
	m.refreshSummary()
	m.refreshHeatmap()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case releaseMsg:
		if m.pressSeq[msg.label] == msg.seq {
			m.kb.release(msg.label)
			delete(m.pressSeq, msg.label)
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlT:
			m.toggleTheme()
			return m, nil
		case tea.KeyCtrlK:
			m.toggleKeyboard()
			return m, nil
		case tea.KeyCtrlO:
			m.showHeat = !m.showHeat
			return m, nil
		case tea.KeyCtrlR:
			m.resetSession()
			return m, nil
		}
		cmd := m.highlight(msg)
		switch msg.Type {
		case tea.KeyBackspace, tea.KeyDelete:
			m.handleBackspace()
		case tea.KeySpace:
			m.handleRunes([]rune{' '})
		case tea.KeyEnter:
			m.handleRunes([]rune{'\n'})
		case tea.KeyRunes:
			m.handleRunes(msg.Runes)
		}
		return m, cmd
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if len(m.targetRunes) == 0 {
		return ""
	}
	cursorIndex := -1
	if len(m.inputRunes) < len(m.targetRunes) {
		cursorIndex = len(m.inputRunes)
	}
	styledRunes := buildStyledRunes(m.styles, m.targetRunes, m.inputRunes, cursorIndex)
	if m.width == 0 || m.height == 0 {
		return renderStyledRunes(styledRunes)
	}
	contentWidth := int(float64(m.width) * 0.70)
	if contentWidth < 1 {
		contentWidth = 1
	}
	wrapped := wrapStyledRunes(styledRunes, contentWidth)
	content := lipgloss.NewStyle().Width(contentWidth).Render(wrapped)
	if m.showKeyboard {
		content = lipgloss.JoinVertical(lipgloss.Center, content, "", m.kb.render(m.styles, m.showHeat))
	}
	footer := m.renderFooter()
	if footer == "" || m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	bodyHeight := m.height - 1
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

// highlight marks the pressed key active and schedules its release.
func (m *Model) highlight(msg tea.KeyMsg) tea.Cmd {
	label := keys.Normalize(rawEvent(msg))
	if !m.kb.press(label) {
		return nil
	}
	m.lastPressed = label
	m.seq++
	seq := m.seq
	m.pressSeq[label] = seq
	delay := time.Duration(m.config.ReleaseMs) * time.Millisecond
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return releaseMsg{label: label, seq: seq}
	})
}

func (m *Model) handleBackspace() {
	if len(m.inputRunes) == 0 {
		return
	}
	m.inputRunes = m.inputRunes[:len(m.inputRunes)-1]
}

func (m *Model) handleRunes(runes []rune) {
	for _, r := range runes {
		if len(m.inputRunes) >= len(m.targetRunes) {
			return
		}
		if !m.started {
			m.started = true
			m.startedAt = time.Now()
		}
		pos := len(m.inputRunes)
		expected := m.targetRunes[pos]
		m.inputRunes = append(m.inputRunes, r)
		m.updateStats(expected, r)
		if len(m.inputRunes) == len(m.targetRunes) {
			m.finishSession()
			m.resetSession()
		}
	}
}

func (m *Model) updateStats(expected, typed rune) {
	if typed == expected {
		m.correct++
	} else {
		m.incorrect++
	}
	ctx := context.Background()
	if err := m.recorder.Record(ctx, expected, typed); err != nil {
		logErrf("failed to record key stats: %v\n", err)
		return
	}
	label := keys.CharLabel(expected)
	rec, err := m.store.Get(ctx, label)
	if err != nil {
		logErrf("failed to load key stats: %v\n", err)
		return
	}
	m.kb.applyHeatmap(heatmap.Score(map[string]model.KeyStats{label: rec}, []string{label}))
}

func (m *Model) resetSession() {
	m.inputRunes = nil
	m.started = false
	m.startedAt = time.Time{}
	m.correct = 0
	m.incorrect = 0
	m.targetRunes = []rune(m.gen.Text(m.config))
}

func (m *Model) finishSession() {
	if !m.started {
		return
	}
	endedAt := time.Now()
	durationMs := endedAt.Sub(m.startedAt).Milliseconds()
	wpm, _, _ := statsPkg.SessionMetrics(m.correct, m.incorrect, durationMs)
	attempt := model.Attempt{
		StartedAt:  m.startedAt,
		EndedAt:    endedAt,
		Mode:       m.config.Mode,
		WPM:        wpm,
		Correct:    m.correct,
		Incorrect:  m.incorrect,
		DurationMs: durationMs,
	}
	if _, err := m.store.RecordAttempt(context.Background(), attempt); err != nil {
		logErrf("failed to save attempt: %v\n", err)
	}
	m.lastWPM = wpm
	m.hasLast = true
	m.refreshSummary()
	m.refreshHeatmap()
}

func (m *Model) refreshSummary() {
	sum, err := m.store.Summary(context.Background())
	if err != nil {
		logErrf("failed to load summary: %v\n", err)
		return
	}
	m.summary = sum
}

func (m *Model) refreshHeatmap() {
	cells, err := heatmap.Build(context.Background(), m.store, keys.Vocabulary())
	if err != nil {
		logErrf("%v\n", err)
		return
	}
	m.kb.applyHeatmap(cells)
	m.weak = statsPkg.WeakKeys(cells, weakKeysShown)
}

func (m *Model) loadSettings() {
	ctx := context.Background()
	if theme, ok, err := m.store.Setting(ctx, store.SettingTheme); err != nil {
		logErrf("failed to load theme: %v\n", err)
	} else if ok {
		m.theme = theme
	}
	if visible, ok, err := m.store.Setting(ctx, store.SettingKeyboard); err != nil {
		logErrf("failed to load keyboard setting: %v\n", err)
	} else if ok {
		if v, perr := strconv.ParseBool(visible); perr == nil {
			m.showKeyboard = v
		}
	}
}

func (m *Model) toggleTheme() {
	m.theme = nextTheme(m.theme)
	m.styles = newStyles(m.theme)
	if err := m.store.SetSetting(context.Background(), store.SettingTheme, m.theme); err != nil {
		logErrf("failed to save theme: %v\n", err)
	}
}

func (m *Model) toggleKeyboard() {
	m.showKeyboard = !m.showKeyboard
	if err := m.store.SetSetting(context.Background(), store.SettingKeyboard, strconv.FormatBool(m.showKeyboard)); err != nil {
		logErrf("failed to save keyboard setting: %v\n", err)
	}
}

func (m *Model) renderFooter() string {
	if len(m.targetRunes) == 0 {
		return ""
	}
	progress := int(float64(len(m.inputRunes)) / float64(len(m.targetRunes)) * 100)
	segments := []string{fmt.Sprintf("Progress %d%%", progress)}
	if m.hasLast {
		segments = append(segments, fmt.Sprintf("Last %.0f WPM", m.lastWPM))
	}
	if m.summary.Attempts > 0 {
		segments = append(segments, fmt.Sprintf("Avg %.0f · Best %.0f WPM (%d runs)", m.summary.AvgWPM, m.summary.BestWPM, m.summary.Attempts))
	}
	if len(m.weak) > 0 {
		segments = append(segments, "Weak "+strings.Join(m.weak, " "))
	}
	if c, ok := m.kb.lookup(m.lastPressed); ok && m.showHeat {
		segments = append(segments, c.tooltip)
	}
	segments = append(segments, "^T theme ^K keys ^O heat ^R new Esc quit")
	return m.styles.footer.Render(strings.Join(segments, "  "))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
