package ansi

type c0 struct {
	NUL uint8 // NUL is the null character (Caret: ^@, Char: \0).
	BEL uint8 // BEL is the bell character (Caret: ^G, Char: \a).
	BS  uint8 // BS is the backspace character (Caret: ^H, Char: \b).
	HT  uint8 // HT is the horizontal tab character (Caret: ^I, Char: \t).
	LF  uint8 // LF is the line feed character (Caret: ^J, Char: \n).
	VT  uint8 // VT is the vertical tab character (Caret: ^K, Char: \v).
	FF  uint8 // FF is the form feed character (Caret: ^L, Char: \f).
	CR  uint8 // CR is the carriage return character (Caret: ^M, Char: \r).
	ESC uint8 // ESC is the Escape character (Caret: ^[).
	US  uint8 // US is the unit separator, the last C0 code (Caret: ^_).
	DEL uint8 // DEL is the delete character (Caret: ^?).
}

// C0 (7-bit) control characters referenced by the sequence grammar.
//
// see chapter 3 for detail information about control characters:
// https://vt100.net/docs/vt100-ug/chapter3.html#S3.2
var C0 = c0{
	NUL: 0x00,
	BEL: 0x07,
	BS:  0x08,
	HT:  0x09,
	LF:  0x0A,
	VT:  0x0B,
	FF:  0x0C,
	CR:  0x0D,
	ESC: 0x1B,
	US:  0x1F,
	DEL: 0x7F,
}

// IsC0 reports whether c is a C0 control character or DEL.
func IsC0(c rune) bool {
	return (c >= rune(C0.NUL) && c <= rune(C0.US)) || c == rune(C0.DEL)
}
