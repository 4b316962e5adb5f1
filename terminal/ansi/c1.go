package ansi

type c1 struct {
	PAD uint8 // PAD is the padding character.
	IND uint8 // IND is the index control.
	NEL uint8 // NEL is the next line control.
	DCS uint8 // DCS is the device control string introducer.
	SOS uint8 // SOS is the start of string introducer.
	CSI uint8 // CSI is the control sequence introducer.
	ST  uint8 // ST is the string terminator.
	OSC uint8 // OSC is the operating system command introducer.
	PM  uint8 // PM is the privacy message introducer.
	APC uint8 // APC is the application program command introducer.
}

// C1 (8-bit) control characters. Each one is the single code equivalent of
// ESC followed by the code minus 0x40, e.g. CSI (0x9B) is ESC [.
//
// see https://vt100.net/docs/vt510-rm/chapter4.html
var C1 = c1{
	PAD: 0x80,
	IND: 0x84,
	NEL: 0x85,
	DCS: 0x90,
	SOS: 0x98,
	CSI: 0x9B,
	ST:  0x9C,
	OSC: 0x9D,
	PM:  0x9E,
	APC: 0x9F,
}

// IsC1 reports whether c is in the C1 control range 0x80-0x9F.
func IsC1(c rune) bool {
	return c >= rune(C1.PAD) && c <= rune(C1.APC)
}

// Detail describes one control code.
type Detail struct {
	Abbr string
	Name string
}

var c1Table = map[uint8]Detail{
	0x80: {"PAD", "Padding Character"},
	0x81: {"HOP", "High Octet Preset"},
	0x82: {"BPH", "Break Permitted Here"},
	0x83: {"NBH", "No Break Here"},
	0x84: {"IND", "Index"},
	0x85: {"NEL", "Next Line"},
	0x86: {"SSA", "Start of Selected Area"},
	0x87: {"ESA", "End of Selected Area"},
	0x88: {"HTS", "Horizontal Tabulation Set"},
	0x89: {"HTJ", "Horizontal Tabulation with Justification"},
	0x8A: {"VTS", "Vertical Tabulation Set"},
	0x8B: {"PLD", "Partial Line Down"},
	0x8C: {"PLU", "Partial Line Up"},
	0x8D: {"RI", "Reverse Line Feed"},
	0x8E: {"SS2", "Single Shift Two"},
	0x8F: {"SS3", "Single Shift Three"},
	0x90: {"DCS", "Device Control String"},
	0x91: {"PU1", "Private Use One"},
	0x92: {"PU2", "Private Use Two"},
	0x93: {"STS", "Set Transmit State"},
	0x94: {"CCH", "Cancel Character"},
	0x95: {"MW", "Message Waiting"},
	0x96: {"SPA", "Start of Protected Area"},
	0x97: {"EPA", "End of Protected Area"},
	0x98: {"SOS", "Start of String"},
	0x99: {"SGCI", "Single Graphic Character Introducer"},
	0x9A: {"SCI", "Single Character Introducer"},
	0x9B: {"CSI", "Control Sequence Introducer"},
	0x9C: {"ST", "String Terminator"},
	0x9D: {"OSC", "Operating System Command"},
	0x9E: {"PM", "Privacy Message"},
	0x9F: {"APC", "Application Program Command"},
}

// C1Detail returns the abbreviation and name of the C1 code c.
func C1Detail(c uint8) (Detail, bool) {
	d, ok := c1Table[c]
	return d, ok
}

// FeCode returns the C1 code equivalent to the two byte sequence ESC final,
// for finals in 0x40-0x5F.
func FeCode(final uint8) (uint8, bool) {
	if final < 0x40 || final > 0x5F {
		return 0, false
	}
	return final + 0x40, true
}
