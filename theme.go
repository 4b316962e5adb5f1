package chromacon

import (
	"github.com/nevware21/chromacon/terminal/color"
	"github.com/nevware21/chromacon/terminal/sgr"
	"github.com/nevware21/chromacon/terminal/style"
)

// Theme is the catalog of named styles.
type Theme struct {
	Reset                      *style.Formatter
	Bold                       *style.Formatter
	Dim                        *style.Formatter
	Normal                     *style.Formatter
	Italic                     *style.Formatter
	Underline                  *style.Formatter
	DoubleUnderline            *style.Formatter
	Blink                      *style.Formatter
	Inverse                    *style.Formatter
	Hidden                     *style.Formatter
	Strikethrough              *style.Formatter
	DisableProportionalSpacing *style.Formatter
	Framed                     *style.Formatter
	Encircled                  *style.Formatter
	Overlined                  *style.Formatter
	NotFramed                  *style.Formatter
	NotOverlined               *style.Formatter
	Superscript                *style.Formatter
	Subscript                  *style.Formatter

	Black   *style.Formatter
	Red     *style.Formatter
	Green   *style.Formatter
	Yellow  *style.Formatter
	Blue    *style.Formatter
	Magenta *style.Formatter
	Cyan    *style.Formatter
	White   *style.Formatter

	Gray          *style.Formatter
	Grey          *style.Formatter
	BrightRed     *style.Formatter
	BrightGreen   *style.Formatter
	BrightYellow  *style.Formatter
	BrightBlue    *style.Formatter
	BrightMagenta *style.Formatter
	BrightCyan    *style.Formatter
	BrightWhite   *style.Formatter

	BgBlack   *style.Formatter
	BgRed     *style.Formatter
	BgGreen   *style.Formatter
	BgYellow  *style.Formatter
	BgBlue    *style.Formatter
	BgMagenta *style.Formatter
	BgCyan    *style.Formatter
	BgWhite   *style.Formatter

	BgGray          *style.Formatter
	BgGrey          *style.Formatter
	BgBrightRed     *style.Formatter
	BgBrightGreen   *style.Formatter
	BgBrightYellow  *style.Formatter
	BgBrightBlue    *style.Formatter
	BgBrightMagenta *style.Formatter
	BgBrightCyan    *style.Formatter
	BgBrightWhite   *style.Formatter

	// UlColor and UlDefaultColor carry no color and emit nothing. Use
	// UnderlineRGB or UnderlineAnsi256.
	UlColor        *style.Formatter
	UlDefaultColor *style.Formatter
}

type styleFactory func(enable, disable sgr.Descriptor) *style.Formatter

func newTheme(newStyle styleFactory) Theme {
	attr := func(enable, disable sgr.Code) *style.Formatter {
		return newStyle(sgr.Attr(enable), sgr.Attr(disable))
	}
	fg := func(c color.BaseColor) *style.Formatter {
		return newStyle(sgr.Base(c, color.FgOffset), sgr.Attr(sgr.FgDefault))
	}
	bg := func(c color.BaseColor) *style.Formatter {
		return newStyle(sgr.Base(c, color.BgOffset), sgr.Attr(sgr.BgDefault))
	}

	return Theme{
		Reset:                      attr(sgr.Reset, sgr.Reset),
		Bold:                       attr(sgr.Bold, sgr.NormalIntensity),
		Dim:                        attr(sgr.Faint, sgr.NormalIntensity),
		Normal:                     attr(sgr.NormalIntensity, sgr.NormalIntensity),
		Italic:                     attr(sgr.Italic, sgr.NotItalic),
		Underline:                  attr(sgr.Underline, sgr.NotUnderline),
		DoubleUnderline:            attr(sgr.DoubleUnderline, sgr.NotUnderline),
		Blink:                      attr(sgr.Blink, sgr.NotBlink),
		Inverse:                    attr(sgr.Reverse, sgr.NotReverse),
		Hidden:                     attr(sgr.Conceal, sgr.NotConceal),
		Strikethrough:              attr(sgr.Strikethrough, sgr.NotStrikethrough),
		DisableProportionalSpacing: attr(sgr.DisableProportionalSpacing, sgr.Reset),
		Framed:                     attr(sgr.Framed, sgr.NotFramed),
		Encircled:                  attr(sgr.Encircled, sgr.Reset),
		Overlined:                  attr(sgr.Overlined, sgr.NotOverlined),
		NotFramed:                  attr(sgr.NotFramed, sgr.Reset),
		NotOverlined:               attr(sgr.NotOverlined, sgr.Reset),
		Superscript:                attr(sgr.Superscript, sgr.NotSuperSubscript),
		Subscript:                  attr(sgr.Subscript, sgr.NotSuperSubscript),

		Black:   fg(color.Black),
		Red:     fg(color.Red),
		Green:   fg(color.Green),
		Yellow:  fg(color.Yellow),
		Blue:    fg(color.Blue),
		Magenta: fg(color.Magenta),
		Cyan:    fg(color.Cyan),
		White:   fg(color.White),

		Gray:          fg(color.Gray),
		Grey:          fg(color.Grey),
		BrightRed:     fg(color.BrightRed),
		BrightGreen:   fg(color.BrightGreen),
		BrightYellow:  fg(color.BrightYellow),
		BrightBlue:    fg(color.BrightBlue),
		BrightMagenta: fg(color.BrightMagenta),
		BrightCyan:    fg(color.BrightCyan),
		BrightWhite:   fg(color.BrightWhite),

		BgBlack:   bg(color.Black),
		BgRed:     bg(color.Red),
		BgGreen:   bg(color.Green),
		BgYellow:  bg(color.Yellow),
		BgBlue:    bg(color.Blue),
		BgMagenta: bg(color.Magenta),
		BgCyan:    bg(color.Cyan),
		BgWhite:   bg(color.White),

		BgGray:          bg(color.Gray),
		BgGrey:          bg(color.Grey),
		BgBrightRed:     bg(color.BrightRed),
		BgBrightGreen:   bg(color.BrightGreen),
		BgBrightYellow:  bg(color.BrightYellow),
		BgBrightBlue:    bg(color.BrightBlue),
		BgBrightMagenta: bg(color.BrightMagenta),
		BgBrightCyan:    bg(color.BrightCyan),
		BgBrightWhite:   bg(color.BrightWhite),

		UlColor:        attr(sgr.UlColor, sgr.UlDefaultColor),
		UlDefaultColor: attr(sgr.UlDefaultColor, sgr.UlDefaultColor),
	}
}

// Named returns the styles of t by name, e.g. "bold", "brightRed" or
// "bgGrey".
func (t *Theme) Named() map[string]*style.Formatter {
	return map[string]*style.Formatter{
		"reset":                      t.Reset,
		"bold":                       t.Bold,
		"dim":                        t.Dim,
		"normal":                     t.Normal,
		"italic":                     t.Italic,
		"underline":                  t.Underline,
		"doubleUnderline":            t.DoubleUnderline,
		"blink":                      t.Blink,
		"inverse":                    t.Inverse,
		"hidden":                     t.Hidden,
		"strikethrough":              t.Strikethrough,
		"disableProportionalSpacing": t.DisableProportionalSpacing,
		"framed":                     t.Framed,
		"encircled":                  t.Encircled,
		"overlined":                  t.Overlined,
		"notFramed":                  t.NotFramed,
		"notOverlined":               t.NotOverlined,
		"superscript":                t.Superscript,
		"subscript":                  t.Subscript,

		"black":   t.Black,
		"red":     t.Red,
		"green":   t.Green,
		"yellow":  t.Yellow,
		"blue":    t.Blue,
		"magenta": t.Magenta,
		"cyan":    t.Cyan,
		"white":   t.White,

		"gray":          t.Gray,
		"grey":          t.Grey,
		"brightRed":     t.BrightRed,
		"brightGreen":   t.BrightGreen,
		"brightYellow":  t.BrightYellow,
		"brightBlue":    t.BrightBlue,
		"brightMagenta": t.BrightMagenta,
		"brightCyan":    t.BrightCyan,
		"brightWhite":   t.BrightWhite,

		"bgBlack":   t.BgBlack,
		"bgRed":     t.BgRed,
		"bgGreen":   t.BgGreen,
		"bgYellow":  t.BgYellow,
		"bgBlue":    t.BgBlue,
		"bgMagenta": t.BgMagenta,
		"bgCyan":    t.BgCyan,
		"bgWhite":   t.BgWhite,

		"bgGray":          t.BgGray,
		"bgGrey":          t.BgGrey,
		"bgBrightRed":     t.BgBrightRed,
		"bgBrightGreen":   t.BgBrightGreen,
		"bgBrightYellow":  t.BgBrightYellow,
		"bgBrightBlue":    t.BgBrightBlue,
		"bgBrightMagenta": t.BgBrightMagenta,
		"bgBrightCyan":    t.BgBrightCyan,
		"bgBrightWhite":   t.BgBrightWhite,

		"ulColor":        t.UlColor,
		"ulDefaultColor": t.UlDefaultColor,
	}
}
