package keys

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const numpadPrefix = "Numpad"

// namedKeys covers every non-printable and modifier key, keyed by the
// lower-cased logical key value.
var namedKeys = map[string]string{
	" ":           "Space",
	"esc":         "Esc",
	"escape":      "Esc",
	"tab":         "Tab",
	"capslock":    "CapsLock",
	"shift":       "Shift",
	"control":     "Ctrl",
	"alt":         "Alt",
	"meta":        "Win",
	"contextmenu": "Menu",
	"enter":       "Enter",
	"backspace":   "Backspace",
	"insert":      "Insert",
	"delete":      "Delete",
	"home":        "Home",
	"end":         "End",
	"pageup":      "PageUp",
	"pagedown":    "PageDown",
	"scrolllock":  "ScrLk",
	"pause":       "Pause",
	"printscreen": "PrtSc",
	"arrowleft":   "←",
	"arrowright":  "→",
	"arrowup":     "↑",
	"arrowdown":   "↓",
	"numlock":     "NumLock",
}

var numpadOperators = map[string]string{
	"Divide":   "/",
	"Multiply": "*",
	"Subtract": "-",
	"Add":      "+",
	"Decimal":  ".",
}

// punctuationCodes resolves physical codes for keys whose logical value
// depends on the active keyboard layout.
var punctuationCodes = map[string]string{
	"Backquote":    "`",
	"Minus":        "-",
	"Equal":        "=",
	"BracketLeft":  "[",
	"BracketRight": "]",
	"Backslash":    "\\",
	"Semicolon":    ";",
	"Quote":        "'",
	"Comma":        ",",
	"Period":       ".",
	"Slash":        "/",
}

// stage resolves a raw event to a label or reports no match.
type stage func(key, code string) (string, bool)

// stages run in priority order; the first match wins.
var stages = []stage{
	matchNamed,
	matchFunction,
	matchNumpad,
	matchSingleChar,
	matchPunctuationCode,
}

// Normalize maps a logical key value and a physical key code to a layout
// label. Unmatched input is returned unchanged, so it never fails.
func Normalize(key, code string) string {
	for _, s := range stages {
		if label, ok := s(key, code); ok {
			return label
		}
	}
	return key
}

func matchNamed(key, code string) (string, bool) {
	label, ok := namedKeys[strings.ToLower(key)]
	if !ok {
		return "", false
	}
	// Enter on the keypad shares its logical value with the main Enter.
	if label == "Enter" && code == numpadPrefix+"Enter" {
		return "NumpadEnter", true
	}
	return label, true
}

func matchFunction(key, _ string) (string, bool) {
	lower := strings.ToLower(key)
	if len(lower) < 2 || len(lower) > 3 || lower[0] != 'f' {
		return "", false
	}
	n := 0
	for i := 1; i < len(lower); i++ {
		ch := lower[i]
		if ch < '0' || ch > '9' {
			return "", false
		}
		n = n*10 + int(ch-'0')
	}
	if lower[1] == '0' || n < 1 || n > 12 {
		return "", false
	}
	return strings.ToUpper(lower), true
}

func matchNumpad(_, code string) (string, bool) {
	tail, ok := strings.CutPrefix(code, numpadPrefix)
	if !ok {
		return "", false
	}
	if sym, ok := numpadOperators[tail]; ok {
		return numpadPrefix + sym, true
	}
	if tail == "Enter" {
		return numpadPrefix + "Enter", true
	}
	if len(tail) == 1 && tail[0] >= '0' && tail[0] <= '9' {
		return numpadPrefix + tail, true
	}
	return "", false
}

func matchSingleChar(key, _ string) (string, bool) {
	if utf8.RuneCountInString(key) != 1 {
		return "", false
	}
	r, _ := utf8.DecodeRuneInString(key)
	return upperLetter(r, key), true
}

func matchPunctuationCode(_, code string) (string, bool) {
	label, ok := punctuationCodes[code]
	return label, ok
}

// CharLabel maps a typed character to the label of the key that produces it.
func CharLabel(r rune) string {
	switch r {
	case '\n', '\r':
		return "Enter"
	case ' ':
		return "Space"
	}
	return upperLetter(r, string(r))
}

func upperLetter(r rune, fallback string) string {
	if !unicode.IsLetter(r) {
		return fallback
	}
	return string(unicode.ToUpper(r))
}
