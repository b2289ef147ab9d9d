package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// namedKeyTypes gives the logical key value a browser would report for
// terminal key types.
var namedKeyTypes = map[tea.KeyType]string{
	tea.KeyEnter:     "Enter",
	tea.KeyTab:       "Tab",
	tea.KeyShiftTab:  "Tab",
	tea.KeyEsc:       "Escape",
	tea.KeyBackspace: "Backspace",
	tea.KeyDelete:    "Delete",
	tea.KeyInsert:    "Insert",
	tea.KeyHome:      "Home",
	tea.KeyEnd:       "End",
	tea.KeyPgUp:      "PageUp",
	tea.KeyPgDown:    "PageDown",
	tea.KeyUp:        "ArrowUp",
	tea.KeyDown:      "ArrowDown",
	tea.KeyLeft:      "ArrowLeft",
	tea.KeyRight:     "ArrowRight",
	tea.KeySpace:     " ",
	tea.KeyF1:        "F1",
	tea.KeyF2:        "F2",
	tea.KeyF3:        "F3",
	tea.KeyF4:        "F4",
	tea.KeyF5:        "F5",
	tea.KeyF6:        "F6",
	tea.KeyF7:        "F7",
	tea.KeyF8:        "F8",
	tea.KeyF9:        "F9",
	tea.KeyF10:       "F10",
	tea.KeyF11:       "F11",
	tea.KeyF12:       "F12",
}

// rawEvent converts a terminal key message into a logical key value and a
// physical code. Terminals do not report physical positions, so the code
// is always empty.
func rawEvent(msg tea.KeyMsg) (key, code string) {
	if name, ok := namedKeyTypes[msg.Type]; ok {
		return name, ""
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 {
		return string(msg.Runes), ""
	}
	return msg.String(), ""
}
