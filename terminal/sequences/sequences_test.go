package sequences

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrip(t *testing.T) {
	tcs := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "unicorn", expected: "unicorn"},
		{name: "empty", input: "", expected: ""},
		{name: "sgr", input: "\x1b[31municorn\x1b[39m", expected: "unicorn"},
		{
			name:     "hyperlink",
			input:    "\x1b]8;;https://github.com\x07Click\x1b]8;;\x07",
			expected: "Click",
		},
		{
			name:     "mixed sgr",
			input:    "\x1b[38;2;255;0;0mHello \x1b[0mDarkness \x1B[00;38;5;244m\x1B[m\x1B[00;38;5;33mmy \x1B[0mold",
			expected: "Hello Darkness my old",
		},
		{name: "8-bit", input: "\u009b31mred\u009b39m", expected: "red"},
		{name: "keeps newlines", input: "a\n\x1b[1mb\tc", expected: "a\nb\tc"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Strip(tc.input))
		})
	}
}

// Codes from the VT52, VT100 and URxvt reference lists. Stripping
// prefix + code + suffix must leave prefix + suffix.
var stripMatrix = map[string][]string{
	"vt52": {
		"\x1bA", "\x1bB", "\x1bC", "\x1bD", "\x1bH", "\x1bI", "\x1bJ", "\x1bK",
		"\x1bS", "\x1bT", "\x1bZ", "\x1b=", "\x1b>", "\x1b1", "\x1b2", "\x1b<",
		"\x1bs", "\x1bu",
	},
	"vt100": {
		"\x1b[20h", "\x1b[?1h", "\x1b[?3h", "\x1b[?4h", "\x1b[?5h", "\x1b[?6h",
		"\x1b[?7h", "\x1b[?8h", "\x1b[?9h", "\x1b[20l", "\x1b[?1l", "\x1b[?2l",
		"\x1b[?3l", "\x1b[?4l", "\x1b[?5l", "\x1b[?6l", "\x1b[?7l", "\x1b[?8l",
		"\x1b[?9l", "\x1b=", "\x1b>", "\x1b(A", "\x1b)A", "\x1b(B", "\x1b)B",
		"\x1b(0", "\x1b)0", "\x1b(1", "\x1b)1", "\x1b(2", "\x1b)2", "\x1bN",
		"\x1bO", "\x1b[m", "\x1b[0m", "\x1b[1m", "\x1b[2m", "\x1b[4m", "\x1b[5m",
		"\x1b[7m", "\x1b[8m", "\x1b[1;20r", "\x1b[1A", "\x1b[1B", "\x1b[1C",
		"\x1b[1D", "\x1b[H", "\x1b[;H", "\x1b[1;1H", "\x1b[1;1f", "\x1b[f",
		"\x1b[;f", "\x1bD", "\x1bM", "\x1bE", "\x1b7", "\x1b8", "\x1bH",
		"\x1b[g", "\x1b[0g", "\x1b[3g", "\x1b#3", "\x1b#4", "\x1b#5", "\x1b#6",
		"\x1b#8", "\x1b[K", "\x1b[0K", "\x1b[1K", "\x1b[2K", "\x1b[J", "\x1b[0J",
		"\x1b[1J", "\x1b[2J", "\x1b5n", "\x1b0n", "\x1b3n", "\x1b6n", "\x1b[c",
		"\x1b[0c", "\x1bZ", "\x1b[2;1y", "\x1bc", "\x1b[0q", "\x1b[1q",
	},
	"urxvt": {
		"\x1b[5~", "\x1b[3;1605;606t", "\x1b]710;9x15bold\x07",
	},
	"strings": {
		"\x1b]0;title\x07", "\x1b]0;title\x1b\\", "\x1b]0;title\u009c",
		"\u009d0;title\x07", "\x1bPq#0;2\x1b\\", "\u0090q#0\u009c",
		"\x1b_apc\x07", "\u009fapc\x1b\\", "\x1b^pm\x07", "\u009epm\u009c",
		"\x1bXsos\x07", "\u0098sos\u009c",
	},
	"fe": {
		"\u0084", "\u0085", "\u0088", "\u008d", "\u008e", "\u008f", "\u009c",
		"\x1bD", "\x1bE", "\x1bH", "\x1bM", "\x1bN", "\x1bO", "\x1bV", "\x1bW",
		"\x1b\\",
	},
}

func TestStripMatrix(t *testing.T) {
	for group, codes := range stripMatrix {
		for _, code := range codes {
			t.Run(group+" "+Escape(code), func(t *testing.T) {
				assert.Equal(t, "Hello Darkness", Strip("Hello "+code+"Darkness"))
				assert.Equal(t, []string{code}, Match("Hello "+code+"Darkness"))
			})
		}
	}
}

func TestStripIdempotent(t *testing.T) {
	inputs := []string{
		"\x1b\x1b[31m",
		"\x1b[\x1b[1m",
		"\u009b\u009b31m",
		"\x1b]\x1b]0;t\x07",
	}
	for _, input := range inputs {
		once := Strip(input)
		assert.Equal(t, once, Strip(once), Escape(input))
	}
}

func TestMatch(t *testing.T) {
	assert.Equal(t, []string{}, Match("plain"))
	assert.Equal(t,
		[]string{"\x1b[38;2;255;0;0m", "\x1b[0m", "\x1B[00;38;5;244m", "\x1B[m", "\x1B[00;38;5;33m", "\x1B[0m"},
		Match("\x1b[38;2;255;0;0mHello \x1b[0mDarkness \x1B[00;38;5;244m\x1B[m\x1B[00;38;5;33mmy \x1B[0mold"),
	)
}

func TestParse(t *testing.T) {
	input := "\x1b[31mHello\x1b[39m World\x1b]8;;x\x07"
	parts := Parse(input)
	assert.Equal(t, []string{"\x1b[31m", "Hello", "\x1b[39m", " World", "\x1b]8;;x\x07"}, parts)
	assert.Equal(t, input, strings.Join(parts, ""))
	assert.Equal(t, Strip(input), Strip(strings.Join(parts, "")))
	assert.Empty(t, Parse(""))
}

func TestParseSegments(t *testing.T) {
	segments := ParseSegments("ab\x1b[1mc")
	require.Len(t, segments, 3)
	assert.Equal(t, 2, segments[1].Offset)
	assert.True(t, segments[1].IsSGR())
}

func TestReplace(t *testing.T) {
	input := "\x1b[31mHello\x1b[39m"
	assert.Equal(t, "<>Hello<>", Replace(input, "<>"))

	var offsets []int
	out := ReplaceFunc(input, func(match string, offset int, text string) string {
		assert.Equal(t, input, text)
		assert.Equal(t, match, text[offset:offset+len(match)])
		offsets = append(offsets, offset)
		return match
	})
	assert.Equal(t, input, out)
	assert.Equal(t, []int{0, 10}, offsets)
}

func TestEscape(t *testing.T) {
	tcs := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "keeps literal newlines",
			input:    "\x1b[31mHello\nDarkness\x1b[0m",
			expected: "\\x1b[31mHello\nDarkness\\x1b[0m",
		},
		{
			name:     "hyperlink",
			input:    "\x1b]8;;https://github.com\x07Click\x1b]8;;\x07",
			expected: "\\x1b]8;;https://github.com\\x07Click\\x1b]8;;\\x07",
		},
		{name: "plain", input: "Hello World", expected: "Hello World"},
		{name: "8-bit csi", input: "\u009b2mdim", expected: "\\x9b2mdim"},
		{name: "raw 8-bit csi", input: "\x9b2mdim", expected: "\\x9b2mdim"},
		{name: "osc with tab", input: "\x1b]0;a\tb\x07", expected: "\\x1b]0;a\\x09b\\x07"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Escape(tc.input))
		})
	}
}

func TestVisibleWidth(t *testing.T) {
	assert.Equal(t, 5, VisibleWidth("\x1b[1mHello\x1b[22m"))
	assert.Equal(t, 4, VisibleWidth("\x1b[31m日本\x1b[39m"))
	assert.Equal(t, 0, VisibleWidth("\x1b]0;title\x07"))
}

func TestDecodeLegacy(t *testing.T) {
	t.Run("iso-8859-1 turns raw C1 bytes into code points", func(t *testing.T) {
		out, err := DecodeLegacy([]byte("\x9b31mred\x9b39m"), "iso-8859-1")
		require.NoError(t, err)
		assert.Equal(t, "\u009b31mred\u009b39m", out)
		assert.Equal(t, "red", Strip(out))
	})

	t.Run("cp437 box drawing", func(t *testing.T) {
		out, err := DecodeLegacy([]byte{0x1b, '[', '1', 'm', 0xC9, 0xCD}, "cp437")
		require.NoError(t, err)
		assert.Equal(t, "\x1b[1m╔═", out)
	})

	t.Run("utf-8 strips bom", func(t *testing.T) {
		out, err := DecodeLegacy([]byte("\xef\xbb\xbfhi"), "utf-8")
		require.NoError(t, err)
		assert.Equal(t, "hi", out)
	})

	t.Run("raw", func(t *testing.T) {
		out, err := DecodeLegacy([]byte("\x9bm"), "raw")
		require.NoError(t, err)
		assert.Equal(t, "\x9bm", out)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := DecodeLegacy([]byte("x"), "ebcdic")
		assert.ErrorIs(t, err, ErrUnknownEncoding)
	})
}
