package parser

import (
	"unicode/utf8"

	"github.com/nevware21/chromacon/terminal/ansi"
)

// Scanner splits text into literal runs and control sequences.
//
// It walks the text once through the transition table. A sequence
// candidate that cannot complete leaves its introducer as literal text and
// scanning resumes at the next character, so a failed candidate never
// swallows input.
//
// A Scanner is not safe for concurrent use; Scan creates one per call.
type Scanner struct {
	State State

	// family of the open candidate
	family Family
	table  scanTable
}

func NewScanner() *Scanner {
	return &Scanner{
		State: StateGround,
		table: defaultTable,
	}
}

// Scan splits text into ordered segments. Concatenating the values of the
// returned segments reproduces text exactly.
func Scan(text string) []Segment {
	return NewScanner().Scan(text)
}

// Next consumes the input class c and returns the transition taken.
func (s *Scanner) Next(c uint8) Transition {
	effect := s.table[c][s.State]
	if effect.family != FamilyText {
		s.family = effect.family
	}
	s.State = effect.state
	return effect
}

func (s *Scanner) Scan(text string) []Segment {
	var segments []Segment
	literal := 0
	flush := func(end int) {
		if literal < end {
			segments = append(segments, Segment{
				Kind:   KindText,
				Family: FamilyText,
				Offset: literal,
				Value:  text[literal:end],
			})
		}
	}

	for i := 0; i < len(text); {
		c, size := classify(text, i)
		s.State = StateGround
		s.family = FamilyText

		switch effect := s.Next(c); effect.action {
		case ActionExecute:
			flush(i)
			segments = append(segments, s.sequence(text, i, i+size))
			i += size
			literal = i
		case ActionStart:
			end, ok := s.candidate(text, i+size)
			if !ok && c == ansi.C1.SOS {
				// An unterminated 8-bit SOS is still a single C1 code.
				s.family, end, ok = FamilyC1, i+size, true
			}
			if !ok {
				i += size
				continue
			}
			flush(i)
			segments = append(segments, s.sequence(text, i, end))
			i = end
			literal = i
		default:
			i += size
		}
	}
	flush(len(text))
	s.State = StateGround
	return segments
}

// candidate runs the open sequence from offset i and returns the offset
// just past its end.
func (s *Scanner) candidate(text string, i int) (end int, ok bool) {
	for i < len(text) {
		c, size := classify(text, i)
		switch s.Next(c).action {
		case ActionCollect:
			i += size
		case ActionDispatch:
			return i + size, true
		case ActionDispatchBefore:
			return i, true
		default:
			return 0, false
		}
	}
	// end of input: only the status report may stop short of its
	// optional final character.
	if s.State == StateStatusReport {
		return i, true
	}
	return 0, false
}

func (s *Scanner) sequence(text string, start, end int) Segment {
	return Segment{
		Kind:   KindSequence,
		Family: s.family,
		Offset: start,
		Value:  text[start:end],
	}
}

// classify returns the input class of the character at text[i] and its
// size in bytes.
//
// Characters below U+00A0 are their own class. A raw byte that is not
// valid UTF-8 is its own class when it falls in the C1 range, so 8-bit
// streams are scanned like their decoded form. Everything else is
// classOther.
func classify(text string, i int) (uint8, int) {
	b := text[i]
	if b < utf8.RuneSelf {
		return b, 1
	}
	r, size := utf8.DecodeRuneInString(text[i:])
	if r == utf8.RuneError && size == 1 {
		if ansi.IsC1(rune(b)) {
			return b, 1
		}
		return classOther, 1
	}
	if r < 0xA0 {
		return uint8(r), size
	}
	return classOther, size
}
