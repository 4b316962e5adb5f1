package chromacon

import (
	"github.com/nevware21/chromacon/terminal/capability"
	"github.com/nevware21/chromacon/terminal/parser"
	"github.com/nevware21/chromacon/terminal/sequences"
)

// Default is the process wide instance. Its level is detected from the
// process environment on first use.
var Default = New(Options{})

// SetLevel changes the level of Default.
func SetLevel(level capability.Level) {
	Default.SetLevel(level)
}

// GetLevel returns the level of Default.
func GetLevel() capability.Level {
	return Default.Level()
}

// Strip removes every control sequence from text.
func Strip(text string) string {
	return sequences.Strip(text)
}

// Match returns the control sequences found in text, in order.
func Match(text string) []string {
	return sequences.Match(text)
}

// Parse splits text into literal runs and control sequences.
func Parse(text string) []string {
	return sequences.Parse(text)
}

func ParseSegments(text string) []parser.Segment {
	return sequences.ParseSegments(text)
}

// Replace substitutes every control sequence of text with literal.
func Replace(text, literal string) string {
	return sequences.Replace(text, literal)
}

func ReplaceFunc(text string, fn sequences.Replacer) string {
	return sequences.ReplaceFunc(text, fn)
}

// Escape renders the control characters inside sequences as \xNN.
func Escape(text string) string {
	return sequences.Escape(text)
}

// VisibleWidth is the number of terminal cells text occupies once its
// control sequences are removed.
func VisibleWidth(text string) int {
	return sequences.VisibleWidth(text)
}
