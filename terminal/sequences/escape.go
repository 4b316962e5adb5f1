package sequences

import (
	"strings"
	"unicode/utf8"

	"github.com/nevware21/chromacon/terminal/ansi"
)

// Escape makes the control sequences of text readable: inside each
// sequence every C0, DEL and C1 character is rendered as \xNN. Literal text
// is left alone, so newlines and tabs outside sequences stay as they are.
func Escape(text string) string {
	return ReplaceFunc(text, func(match string, _ int, _ string) string {
		return escapeControls(match)
	})
}

func escapeControls(seq string) string {
	var b strings.Builder
	b.Grow(len(seq) * 2)
	for i := 0; i < len(seq); {
		r, size := utf8.DecodeRuneInString(seq[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			// raw 8-bit byte
			if c := seq[i]; ansi.IsC1(rune(c)) {
				b.WriteString(ansi.Hex(c))
			} else {
				b.WriteByte(c)
			}
		case ansi.IsC0(r) || ansi.IsC1(r):
			b.WriteString(ansi.Hex(uint8(r)))
		default:
			b.WriteString(seq[i : i+size])
		}
		i += size
	}
	return b.String()
}
