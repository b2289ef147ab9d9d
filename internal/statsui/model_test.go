package statsui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/keyheat/internal/keystats"
	"github.com/verte-zerg/keyheat/internal/model"
)

type fakeSource struct {
	*keystats.Memory
	summary model.Summary
	history []float64
	err     error
}

func (f *fakeSource) Summary(context.Context) (model.Summary, error) {
	return f.summary, f.err
}

func (f *fakeSource) History(context.Context) ([]float64, error) {
	return f.history, nil
}

func newFakeSource(t *testing.T) *fakeSource {
	t.Helper()
	mem := keystats.NewMemory()
	ctx := context.Background()
	if err := mem.Set(ctx, "A", model.KeyStats{Hits: 10, Errors: 5}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := mem.Set(ctx, "S", model.KeyStats{Hits: 40, Errors: 1}); err != nil {
		t.Fatalf("set: %v", err)
	}
	return &fakeSource{
		Memory:  mem,
		summary: model.Summary{Attempts: 2, TotalWPM: 80, BestWPM: 45, AvgWPM: 40},
		history: []float64{35, 45},
	}
}

func TestKeyTableRowsSortedWorstFirst(t *testing.T) {
	m := NewModel(newFakeSource(t))
	rows := keyTableRows(m.report.Keys)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "A" || rows[0][1] != "high" || rows[0][2] != "50%" {
		t.Fatalf("unexpected first row: %v", rows[0])
	}
	if rows[1][0] != "S" || rows[1][1] != "ok" {
		t.Fatalf("unexpected second row: %v", rows[1])
	}
}

func TestViewRendersTabs(t *testing.T) {
	m := NewModel(newFakeSource(t))
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	out := m.View()
	for _, want := range []string{"Overview", "Heatmap", "Keys", "Avg WPM"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in view", want)
		}
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.activeTab != tabHeatmap {
		t.Fatalf("expected heatmap tab, got %d", m.activeTab)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.activeTab != tabKeys {
		t.Fatalf("expected wrap to keys tab, got %d", m.activeTab)
	}
}

func TestRefreshError(t *testing.T) {
	src := newFakeSource(t)
	src.err = errors.New("db locked")
	m := NewModel(src)
	if !strings.Contains(m.errMsg, "db locked") {
		t.Fatalf("expected error message, got %q", m.errMsg)
	}
}
