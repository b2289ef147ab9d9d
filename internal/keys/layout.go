// Package keys maps raw key events and typed characters to keyboard labels.
package keys

// Layout is the reference 104-key layout, one row per slice. Labels that
// appear more than once (Shift, Ctrl, NumpadEnter, ...) name the same key.
var Layout = [][]string{
	{"Esc", "F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12"},
	{"`", "1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "-", "=", "Backspace"},
	{"Tab", "Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P", "[", "]", "\\"},
	{"CapsLock", "A", "S", "D", "F", "G", "H", "J", "K", "L", ";", "'", "Enter"},
	{"Shift", "Z", "X", "C", "V", "B", "N", "M", ",", ".", "/", "Shift"},
	{"Ctrl", "Win", "Alt", "Space", "Alt", "Win", "Menu", "Ctrl"},
	{"PrtSc", "ScrLk", "Pause", "Insert", "Home", "PageUp", "Delete", "End", "PageDown"},
	{"←", "↑", "↓", "→"},
	{"NumLock", "Numpad/", "Numpad*", "Numpad-"},
	{"Numpad7", "Numpad8", "Numpad9", "Numpad+"},
	{"Numpad4", "Numpad5", "Numpad6", "Numpad+"},
	{"Numpad1", "Numpad2", "Numpad3", "NumpadEnter"},
	{"Numpad0", "Numpad.", "NumpadEnter"},
}

var vocabulary, vocabularySet = buildVocabulary(Layout)

func buildVocabulary(rows [][]string) ([]string, map[string]struct{}) {
	labels := []string{}
	set := map[string]struct{}{}
	for _, row := range rows {
		for _, label := range row {
			if _, ok := set[label]; ok {
				continue
			}
			set[label] = struct{}{}
			labels = append(labels, label)
		}
	}
	return labels, set
}

// Vocabulary returns every distinct layout label in layout order.
func Vocabulary() []string {
	out := make([]string, len(vocabulary))
	copy(out, vocabulary)
	return out
}

// InLayout reports whether label names a key on the reference layout.
func InLayout(label string) bool {
	_, ok := vocabularySet[label]
	return ok
}
