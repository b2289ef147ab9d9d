package stats

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/verte-zerg/keyheat/internal/heatmap"
)

const colorReset = "\x1b[0m"

var bandColors = map[heatmap.Band]string{
	heatmap.BandOK:   "\x1b[32m",
	heatmap.BandMid:  "\x1b[33m",
	heatmap.BandHigh: "\x1b[31m",
	heatmap.BandNone: "\x1b[2m",
}

// bandMarkers distinguish bands when colour is off.
var bandMarkers = map[heatmap.Band]string{
	heatmap.BandMid:  "*",
	heatmap.BandHigh: "!",
}

// ShouldUseColor reports whether w is a terminal and NO_COLOR is unset.
func ShouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
