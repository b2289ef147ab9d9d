package keys

import "testing"

func TestVocabularyUnique(t *testing.T) {
	labels := Vocabulary()
	seen := map[string]bool{}
	for _, label := range labels {
		if seen[label] {
			t.Fatalf("duplicate label %q", label)
		}
		seen[label] = true
	}
	if labels[0] != "Esc" {
		t.Fatalf("expected Esc first, got %q", labels[0])
	}
	for _, want := range []string{"Shift", "NumpadEnter", "Numpad+", "Space", "←"} {
		if !seen[want] {
			t.Fatalf("expected %q in vocabulary", want)
		}
	}
}

func TestVocabularyReturnsCopy(t *testing.T) {
	labels := Vocabulary()
	labels[0] = "changed"
	if Vocabulary()[0] != "Esc" {
		t.Fatalf("vocabulary mutated through returned slice")
	}
}

func TestInLayout(t *testing.T) {
	if !InLayout("F12") {
		t.Fatalf("expected F12 in layout")
	}
	if InLayout("F13") || InLayout("") {
		t.Fatalf("unexpected labels reported in layout")
	}
}
