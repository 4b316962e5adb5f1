package parser

import "unicode/utf8"

type Kind uint8

const (
	KindText Kind = iota
	KindSequence
)

// Family is the shape of a recognized control sequence.
type Family uint8

const (
	FamilyText Family = iota
	// CSI parameterized sequence, SGR included.
	FamilyCSI
	// SOS start of string.
	FamilySOS
	// OSC operating system command.
	FamilyOSC
	// DCS device control string.
	FamilyDCS
	// APC application program command.
	FamilyAPC
	// PM privacy message.
	FamilyPM
	// nF: ESC, intermediates, final (charset selection and friends).
	FamilyNF
	// VT100 device status report: ESC 0/3/5/6, optional n.
	FamilyStatusReport
	// Fp/Fe/Fs two character escapes.
	FamilyEscape
	// Single 8-bit C1 code.
	FamilyC1
)

func (f Family) String() string {
	switch f {
	case FamilyText:
		return "text"
	case FamilyCSI:
		return "csi"
	case FamilySOS:
		return "sos"
	case FamilyOSC:
		return "osc"
	case FamilyDCS:
		return "dcs"
	case FamilyAPC:
		return "apc"
	case FamilyPM:
		return "pm"
	case FamilyNF:
		return "nf"
	case FamilyStatusReport:
		return "dsr"
	case FamilyEscape:
		return "esc"
	case FamilyC1:
		return "c1"
	default:
		return "unknown"
	}
}

// Segment is one piece of scanned text: either a literal run or a single
// control sequence. Offset is the byte offset of Value in the scanned text.
type Segment struct {
	Kind   Kind
	Family Family
	Offset int
	Value  string
}

func (s Segment) IsSequence() bool {
	return s.Kind == KindSequence
}

// IsSGR reports whether s is a CSI sequence with the final byte 'm'.
func (s Segment) IsSGR() bool {
	return s.Family == FamilyCSI && s.Value[len(s.Value)-1] == 'm'
}

// Params returns the parameter bytes of a CSI sequence, i.e. everything
// between the introducer and the final byte. It returns "" for any other
// segment.
func (s Segment) Params() string {
	if s.Family != FamilyCSI {
		return ""
	}
	return s.Value[s.introducerLen() : len(s.Value)-1]
}

// Final returns the final byte of a CSI sequence.
func (s Segment) Final() uint8 {
	if s.Family != FamilyCSI {
		return 0
	}
	return s.Value[len(s.Value)-1]
}

func (s Segment) introducerLen() int {
	if s.Value[0] == 0x1B {
		return 2
	}
	// U+009B is two bytes in UTF-8, a raw 0x9B byte is one.
	_, size := utf8.DecodeRuneInString(s.Value)
	return size
}
