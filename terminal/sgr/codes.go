package sgr

import "strconv"

// Code is an SGR parameter.
type Code uint16

const (
	Reset               Code = 0
	Bold                Code = 1
	Faint               Code = 2
	Italic              Code = 3
	Underline           Code = 4
	Blink               Code = 5
	RapidBlink          Code = 6
	Reverse             Code = 7
	Conceal             Code = 8
	Strikethrough       Code = 9
	PrimaryFont         Code = 10
	AltFont1            Code = 11
	AltFont2            Code = 12
	AltFont3            Code = 13
	AltFont4            Code = 14
	AltFont5            Code = 15
	AltFont6            Code = 16
	AltFont7            Code = 17
	AltFont8            Code = 18
	AltFont9            Code = 19
	Fraktur             Code = 20
	DoubleUnderline     Code = 21
	NormalIntensity     Code = 22
	NotItalic           Code = 23
	NotUnderline        Code = 24
	NotBlink            Code = 25
	ProportionalSpacing Code = 26
	NotReverse          Code = 27
	NotConceal          Code = 28
	NotStrikethrough    Code = 29

	FgColor   Code = 38
	FgDefault Code = 39
	BgColor   Code = 48
	BgDefault Code = 49

	DisableProportionalSpacing Code = 50
	Framed                     Code = 51
	Encircled                  Code = 52
	Overlined                  Code = 53
	NotFramed                  Code = 54
	NotOverlined               Code = 55

	UlColor        Code = 58
	UlDefaultColor Code = 59

	Superscript       Code = 73
	Subscript         Code = 74
	NotSuperSubscript Code = 75
)

// IsColorMarker reports whether c introduces an extended color:
// 38 (foreground), 48 (background) or 58 (underline).
func (c Code) IsColorMarker() bool {
	return c == FgColor || c == BgColor || c == UlColor
}

func (c Code) String() string {
	return strconv.Itoa(int(c))
}

// Sequence wraps SGR parameters into a complete 7-bit sequence. Empty
// params give an empty string, not a reset.
func Sequence(params string) string {
	if params == "" {
		return ""
	}
	return "\x1b[" + params + "m"
}
