package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/verte-zerg/keyheat/internal/heatmap"
	"github.com/verte-zerg/keyheat/internal/keys"
)

// RenderHeatmap prints the reference layout with every key tinted by its
// band. Without colour, mid keys carry a * and high keys a !.
func RenderHeatmap(w io.Writer, cells []heatmap.Cell, useColor bool) error {
	idx := heatmap.Index(cells)
	if _, err := fmt.Fprintln(w, "Heatmap"); err != nil {
		return err
	}
	for _, row := range keys.Layout {
		parts := make([]string, 0, len(row))
		for _, label := range row {
			parts = append(parts, heatmapCap(label, idx[label].Band, useColor))
		}
		if _, err := fmt.Fprintln(w, strings.Join(parts, " ")); err != nil {
			return err
		}
	}
	legend := "Legend: ok <=5%  mid* <=15%  high! >15%"
	if useColor {
		legend = fmt.Sprintf("Legend: %sok%s <=5%%  %smid%s <=15%%  %shigh%s >15%%",
			bandColors[heatmap.BandOK], colorReset,
			bandColors[heatmap.BandMid], colorReset,
			bandColors[heatmap.BandHigh], colorReset)
	}
	if _, err := fmt.Fprintln(w, legend); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func heatmapCap(label string, band heatmap.Band, useColor bool) string {
	if band == "" {
		band = heatmap.BandNone
	}
	if useColor {
		return bandColors[band] + "[" + label + "]" + colorReset
	}
	return "[" + label + bandMarkers[band] + "]"
}
