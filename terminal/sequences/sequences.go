package sequences

import (
	"strings"

	"github.com/nevware21/chromacon/terminal/parser"
)

// Replacer computes the replacement of one matched sequence. offset is
// the byte offset of match in text.
type Replacer func(match string, offset int, text string) string

// Strip removes every control sequence from text.
func Strip(text string) string {
	segments := parser.Scan(text)
	if len(segments) == 1 && !segments[0].IsSequence() {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, seg := range segments {
		if !seg.IsSequence() {
			b.WriteString(seg.Value)
		}
	}
	return b.String()
}

// Match returns the control sequences of text in order. The result is
// never nil.
func Match(text string) []string {
	result := []string{}
	for _, seg := range parser.Scan(text) {
		if seg.IsSequence() {
			result = append(result, seg.Value)
		}
	}
	return result
}

// Parse returns literal runs and control sequences of text in order.
// Joining the result reproduces text.
func Parse(text string) []string {
	segments := parser.Scan(text)
	result := make([]string, 0, len(segments))
	for _, seg := range segments {
		result = append(result, seg.Value)
	}
	return result
}

// ParseSegments is Parse with positions and sequence families.
func ParseSegments(text string) []parser.Segment {
	return parser.Scan(text)
}

// Replace substitutes every control sequence of text with literal.
func Replace(text string, literal string) string {
	return ReplaceFunc(text, func(string, int, string) string {
		return literal
	})
}

// ReplaceFunc substitutes every control sequence of text with the result
// of fn. Literal runs are copied unchanged.
func ReplaceFunc(text string, fn Replacer) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, seg := range parser.Scan(text) {
		if seg.IsSequence() {
			b.WriteString(fn(seg.Value, seg.Offset, text))
		} else {
			b.WriteString(seg.Value)
		}
	}
	return b.String()
}
