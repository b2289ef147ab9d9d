package stats

import "github.com/verte-zerg/keyheat/internal/heatmap"

// WeakKeys returns up to top labels in the mid or high band, worst first.
// A non-positive top returns all of them.
func WeakKeys(cells []heatmap.Cell, top int) []string {
	var out []string
	for _, c := range SortByRate(cells) {
		if c.Band == heatmap.BandOK {
			continue
		}
		out = append(out, c.Label)
		if top > 0 && len(out) == top {
			break
		}
	}
	return out
}
