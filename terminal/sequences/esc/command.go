package esc

import (
	"fmt"

	"github.com/nevware21/chromacon/terminal/parser"
)

type Command struct {
	// Intermediates of an nF escape, e.g. '(' in ESC ( B.
	Intermediates []uint8
	Final         uint8
}

func (c Command) String() string {
	return fmt.Sprintf("ESC %v %v", c.Intermediates, c.Final)
}

// Parse splits a two character or nF escape segment into its
// intermediates and final.
func Parse(seg parser.Segment) (*Command, bool) {
	if seg.Family != parser.FamilyEscape && seg.Family != parser.FamilyNF {
		return nil, false
	}
	v := seg.Value
	if len(v) < 2 || v[0] != 0x1B {
		return nil, false
	}
	cmd := &Command{Final: v[len(v)-1]}
	if len(v) > 2 {
		cmd.Intermediates = []uint8(v[1 : len(v)-1])
	}
	return cmd, true
}

// Fp and Fs escapes that carry a well known meaning.
var names = map[uint8]string{
	'6': "DECBI back index",
	'7': "DECSC save cursor",
	'8': "DECRC restore cursor",
	'9': "DECFI forward index",
	'=': "DECKPAM application keypad",
	'>': "DECKPNM normal keypad",
	'c': "RIS full reset",
	'n': "LS2 locking shift two",
	'o': "LS3 locking shift three",
}

// designators names the character set slot selected by an nF intermediate.
var designators = map[uint8]string{
	'(': "G0",
	')': "G1",
	'*': "G2",
	'+': "G3",
	'-': "G1",
	'.': "G2",
	'/': "G3",
}

// Name describes c, or returns "" when it has no well known meaning.
func (c Command) Name() string {
	if len(c.Intermediates) == 0 {
		return names[c.Final]
	}
	switch first := c.Intermediates[0]; {
	case first == '#' && c.Final == '8':
		return "DECALN screen alignment test"
	case first == ' ':
		return "announce code structure"
	default:
		if slot, ok := designators[first]; ok {
			return fmt.Sprintf("designate %s character set %c", slot, c.Final)
		}
	}
	return ""
}
