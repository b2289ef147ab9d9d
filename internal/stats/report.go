package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/keyheat/internal/heatmap"
	"github.com/verte-zerg/keyheat/internal/keys"
	"github.com/verte-zerg/keyheat/internal/model"
)

// Export formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// WeakKeyCount is how many weak keys a report lists.
const WeakKeyCount = 8

// Source supplies everything a report needs.
type Source interface {
	heatmap.Source
	Summary(ctx context.Context) (model.Summary, error)
	History(ctx context.Context) ([]float64, error)
}

// Report contains precomputed data for stats rendering.
type Report struct {
	Summary  model.Summary  `json:"summary" yaml:"summary"`
	History  []float64      `json:"history" yaml:"history"`
	Keys     []heatmap.Cell `json:"keys" yaml:"keys"`
	WeakKeys []string       `json:"weak_keys" yaml:"weak_keys"`
}

// BuildReport loads and prepares data for stats rendering.
func BuildReport(ctx context.Context, src Source) (Report, error) {
	sum, err := src.Summary(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("failed to load summary: %w", err)
	}
	history, err := src.History(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("failed to load history: %w", err)
	}
	cells, err := heatmap.Build(ctx, src, keys.Vocabulary())
	if err != nil {
		return Report{}, err
	}
	return Report{
		Summary:  sum,
		History:  history,
		Keys:     cells,
		WeakKeys: WeakKeys(cells, WeakKeyCount),
	}, nil
}

// Export writes the report in the requested format.
func Export(w io.Writer, r Report, format string, useColor bool) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		return RenderText(w, r, useColor)
	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", format, FormatText, FormatJSON, FormatYAML)
	}
}

// RenderText prints summary, heatmap and key table.
func RenderText(w io.Writer, r Report, useColor bool) error {
	if err := RenderSummary(w, r.Summary, r.History); err != nil {
		return err
	}
	if err := RenderHeatmap(w, r.Keys, useColor); err != nil {
		return err
	}
	if len(r.WeakKeys) > 0 {
		if _, err := fmt.Fprintf(w, "Weak keys: %v\n\n", r.WeakKeys); err != nil {
			return err
		}
	}
	return RenderKeyTable(w, r.Keys)
}
