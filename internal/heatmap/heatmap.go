// Package heatmap classifies per-key error rates into severity bands.
package heatmap

import (
	"context"
	"fmt"
	"math"

	"github.com/verte-zerg/keyheat/internal/model"
)

// Band is the severity of a key's error rate.
type Band string

// Severity bands, from no data to worst.
const (
	BandNone Band = "none"
	BandOK   Band = "ok"
	BandMid  Band = "mid"
	BandHigh Band = "high"
)

// Upper bounds (inclusive) of the ok and mid bands.
const (
	OKThreshold  = 0.05
	MidThreshold = 0.15
)

// Cell is the overlay entry for one label.
type Cell struct {
	Label   string         `json:"label" yaml:"label"`
	Band    Band           `json:"band" yaml:"band"`
	Rate    float64        `json:"rate" yaml:"rate"`
	Tooltip string         `json:"tooltip" yaml:"tooltip"`
	Stats   model.KeyStats `json:"stats" yaml:"stats"`
}

// Source supplies a snapshot of per-label counters.
type Source interface {
	All(ctx context.Context) (map[string]model.KeyStats, error)
}

// Rate returns errors/hits, or 0 when there are no hits.
func Rate(stats model.KeyStats) float64 {
	if stats.Hits == 0 {
		return 0
	}
	return float64(stats.Errors) / float64(stats.Hits)
}

// Classify returns the band for stats along with the rate that justifies it.
func Classify(stats model.KeyStats) (Band, float64) {
	if stats.Hits == 0 {
		return BandNone, 0
	}
	rate := Rate(stats)
	switch {
	case rate <= OKThreshold:
		return BandOK, rate
	case rate <= MidThreshold:
		return BandMid, rate
	default:
		return BandHigh, rate
	}
}

// Percent rounds rate*100 half-up to an integer.
func Percent(rate float64) int {
	return int(math.Floor(rate*100 + 0.5))
}

// Tooltip describes a key's record. Keys without hits show only the label.
func Tooltip(label string, stats model.KeyStats) string {
	if stats.Hits == 0 {
		return label
	}
	return fmt.Sprintf("%s – errors: %d/%d (%d%%)", label, stats.Errors, stats.Hits, Percent(Rate(stats)))
}

// Score builds one cell per label. Labels missing from stats count as
// never typed.
func Score(stats map[string]model.KeyStats, labels []string) []Cell {
	cells := make([]Cell, 0, len(labels))
	for _, label := range labels {
		rec := stats[label]
		band, rate := Classify(rec)
		cells = append(cells, Cell{
			Label:   label,
			Band:    band,
			Rate:    rate,
			Tooltip: Tooltip(label, rec),
			Stats:   rec,
		})
	}
	return cells
}

// Build scores labels against the current snapshot of src.
func Build(ctx context.Context, src Source, labels []string) ([]Cell, error) {
	stats, err := src.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load key stats: %w", err)
	}
	return Score(stats, labels), nil
}

// Index maps cells by label for lookup by a rendering surface.
func Index(cells []Cell) map[string]Cell {
	out := make(map[string]Cell, len(cells))
	for _, c := range cells {
		out[c.Label] = c
	}
	return out
}
