// Package textbank builds practice text.
package textbank

import (
	"math/rand"
	"strings"
	"time"

	"github.com/verte-zerg/keyheat/internal/model"
)

// Levels in increasing difficulty.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Words is the built-in word pool.
var Words = []string{
	"apple", "ocean", "brave", "delta", "quick", "brown", "fox", "jumps", "laser", "orbit",
	"syntax", "typing", "keyboard", "practice", "rhythm", "quiz", "jazz", "pizza", "matrix", "pixel",
	"alpha", "gamma", "sigma", "lambda", "rocket", "garden", "candle", "window", "violet", "zenith",
}

var sentences = []string{
	"Practice makes progress, not perfection.",
	"The quick brown fox jumps over the lazy dog.",
	"Typing fast requires accuracy first, speed later.",
	"Focus on rhythm; let the words flow naturally.",
	"Breathe, relax your shoulders, and keep a steady pace.",
}

var levels = map[string]string{
	LevelBeginner: "asdf jkl; asdf jkl; fj fj dk dk sl sl aa ss dd ff jj kk ll ;; fjfj dkd ksl slf",
	LevelIntermediate: "Business casual is an ambiguously defined dress code that has been adopted by many " +
		"professional and white-collar workplaces in Western countries. It entails neat yet casual attire " +
		"and is generally more casual than informal attire but more formal than casual or smart casual attire. " +
		"Casual Fridays preceded widespread acceptance of business casual attire in many offices.",
	LevelAdvanced: "Developing effective study habits is crucial for academic success. This involves creating " +
		"a dedicated study space that is free from distractions, setting aside regular study time, and using " +
		"active learning strategies to engage with the material. Experiment with different study techniques " +
		"to find what works best for you. Some students prefer to study alone, while others find group study " +
		"sessions more productive. Taking regular breaks during study sessions can help prevent burnout and " +
		"improve focus. Reviewing notes and summarizing key points after each class can help solidify your " +
		"understanding of the material.",
}

var lessons = map[string]string{
	LevelBeginner:     "Home row drills:\nffff jjjj fjfj fjfj asdf jkl; asdf jkl;\nfj dk sl ;'\nRepeat lines to build accuracy.",
	LevelIntermediate: "Words & punctuation:\nfast, faster, fastest. good, better, best.\nType smoothly; avoid overcorrecting.",
	LevelAdvanced:     "Complex sentences & symbols:\nTyping quickly and accurately requires consistent practice - focus & patience!\nTry: ! @ # $ % ^ & * ( ) and brackets [] {} <>.",
}

// IsLevel reports whether level names a built-in level.
func IsLevel(level string) bool {
	_, ok := levels[level]
	return ok
}

// LevelText returns the passage for level, falling back to beginner.
func LevelText(level string) string {
	if text, ok := levels[level]; ok {
		return text
	}
	return levels[LevelBeginner]
}

// Lesson returns the drill for level, falling back to beginner.
func Lesson(level string) string {
	if text, ok := lessons[level]; ok {
		return text
	}
	return lessons[LevelBeginner]
}

// Generator produces randomized practice text.
type Generator struct {
	rnd   *rand.Rand
	words []string
}

// New returns a Generator over words seeded with the current time. An empty
// list selects the built-in pool.
func New(words []string) *Generator {
	return NewWithSource(words, rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource returns a Generator using src for randomness.
func NewWithSource(words []string, src rand.Source) *Generator {
	if len(words) == 0 {
		words = Words
	}
	return &Generator{rnd: rand.New(src), words: words}
}

// RandomWords joins n uniformly chosen words with single spaces.
func (g *Generator) RandomWords(n int) string {
	result := make([]string, 0, n)
	for i := 0; i < n; i++ {
		result = append(result, g.words[g.rnd.Intn(len(g.words))])
	}
	return strings.Join(result, " ")
}

// RandomSentence returns one built-in sentence.
func (g *Generator) RandomSentence() string {
	return sentences[g.rnd.Intn(len(sentences))]
}

// Text produces practice text for cfg.Mode. Unknown modes produce words.
func (g *Generator) Text(cfg model.Config) string {
	switch cfg.Mode {
	case model.ModeSentence:
		return g.RandomSentence()
	case model.ModeLevel:
		return LevelText(cfg.Level)
	case model.ModeLesson:
		return Lesson(cfg.Level)
	default:
		return g.RandomWords(cfg.Words)
	}
}
