// Package model defines shared data structures.
package model

import "time"

// Practice modes.
const (
	ModeWords    = "words"
	ModeSentence = "sentence"
	ModeLevel    = "level"
	ModeLesson   = "lesson"
)

// Config defines practice settings.
type Config struct {
	Mode         string
	Words        int
	Level        string
	WordListPath string
	ReleaseMs    int
	Theme        string
	ShowKeyboard bool
}

// KeyStats holds the hit and error counters for one key label. The two
// counters are independent: hits count correct keystrokes, errors count
// mismatched ones.
type KeyStats struct {
	Hits   int `json:"hits" yaml:"hits"`
	Errors int `json:"errors" yaml:"errors"`
}

// Attempt captures a completed typing session.
type Attempt struct {
	StartedAt  time.Time
	EndedAt    time.Time
	Mode       string
	WPM        float64
	Correct    int
	Incorrect  int
	DurationMs int64
}

// Summary aggregates all recorded attempts.
type Summary struct {
	Attempts int     `json:"attempts" yaml:"attempts"`
	TotalWPM float64 `json:"total_wpm" yaml:"total_wpm"`
	BestWPM  float64 `json:"best_wpm" yaml:"best_wpm"`
	AvgWPM   float64 `json:"avg_wpm" yaml:"avg_wpm"`
}
