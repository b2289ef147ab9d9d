package wordlist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTypeable(t *testing.T) {
	for _, word := range []string{"hello", "Hello", "co-op", "don't", "a;b"} {
		if !Typeable(word) {
			t.Fatalf("expected %q to be typeable", word)
		}
	}
	for _, word := range []string{"", "résumé", "naïve", "don’t", "a!"} {
		if Typeable(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}

func TestLoadWordsFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("alpha\n\n  beta  \nnaïve\n"), 0o644); err != nil {
		t.Fatalf("write words: %v", err)
	}
	words, err := LoadWords(path, Typeable)
	if err != nil {
		t.Fatalf("LoadWords failed: %v", err)
	}
	if len(words) != 2 || words[0] != "alpha" || words[1] != "beta" {
		t.Fatalf("unexpected words: %v", words)
	}
}

func TestLoadWordsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("ünï\n"), 0o644); err != nil {
		t.Fatalf("write words: %v", err)
	}
	if _, err := LoadWords(path, Typeable); err == nil {
		t.Fatalf("expected empty list error")
	}
}
