// Package wordlist provides word list filtering helpers.
package wordlist

import "github.com/verte-zerg/keyheat/internal/keys"

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// Typeable keeps words whose every character maps to a key on the
// reference layout, so each keystroke lands on a heatmap cell.
func Typeable(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !keys.InLayout(keys.CharLabel(r)) {
			return false
		}
	}
	return true
}
