package parser

import "math"

// classOther is the input class of every code point above the C1 range and
// of raw bytes that are neither ASCII nor C1.
const classOther uint8 = 0xFF

// scanTable is the state transition table of the sequence grammar, indexed
// by input class and state.
//
// The layout follows the vt100.net state machine
// (https://vt100.net/emu/dec_ansi_parser) but the families and their
// bodies are the strict ECMA-48 shapes: a character that does not fit the
// open candidate aborts it instead of being ignored.
type scanTable map[uint8]map[State]Transition

type Transition struct {
	state  State
	action ActionType
	// family of the open candidate from this transition on; FamilyText
	// keeps the current one.
	family Family
}

var defaultTable = newScanTable()

// Function to generate the full state transition table
func newScanTable() scanTable {
	var t scanTable = make(map[uint8]map[State]Transition)

	// init table: every character aborts an open candidate and prints in
	// ground.
	for ch := 0; ch <= math.MaxUint8; ch++ {
		t[uint8(ch)] = make(map[State]Transition)
		for s := range stateCount {
			t[uint8(ch)][s] = Transition{StateGround, ActionAbort, FamilyText}
		}
		t[uint8(ch)][StateGround] = Transition{StateGround, ActionPrint, FamilyText}
	}

	// ground
	{
		source := StateGround

		// => escape
		t.addSingle(0x1B, source, StateEscape, ActionStart, FamilyEscape)

		// 8-bit introducers
		t.addSingle(0x9B, source, StateCSIParam, ActionStart, FamilyCSI)
		t.addSingle(0x98, source, StateSOSString, ActionStart, FamilySOS)
		t.addSingle(0x90, source, StateCommandString, ActionStart, FamilyDCS)
		t.addSingle(0x9D, source, StateCommandString, ActionStart, FamilyOSC)
		t.addSingle(0x9E, source, StateCommandString, ActionStart, FamilyPM)
		t.addSingle(0x9F, source, StateCommandString, ActionStart, FamilyAPC)

		// single C1 codes
		t.addRange(0x80, 0x8F, source, source, ActionExecute, FamilyC1)
		t.addRange(0x91, 0x97, source, source, ActionExecute, FamilyC1)
		t.addSingle(0x99, source, source, ActionExecute, FamilyC1)
		t.addSingle(0x9A, source, source, ActionExecute, FamilyC1)
		t.addSingle(0x9C, source, source, ActionExecute, FamilyC1)
	}

	// escape
	{
		source := StateEscape

		// => csiParam
		t.addSingle('[', source, StateCSIParam, ActionCollect, FamilyCSI)

		// => sosString
		t.addSingle('X', source, StateSOSString, ActionCollect, FamilySOS)

		// => commandString
		t.addSingle(']', source, StateCommandString, ActionCollect, FamilyOSC)
		t.addSingle('P', source, StateCommandString, ActionCollect, FamilyDCS)
		t.addSingle('^', source, StateCommandString, ActionCollect, FamilyPM)
		t.addSingle('_', source, StateCommandString, ActionCollect, FamilyAPC)

		// => escapeIntermediate
		t.addRange(0x20, 0x2F, source, StateEscapeIntermediate, ActionCollect, FamilyNF)

		// => statusReport
		for _, c := range []uint8{'0', '3', '5', '6'} {
			t.addSingle(c, source, StateStatusReport, ActionCollect, FamilyStatusReport)
		}

		// => ground, Fp/Fe/Fs two character sequences
		for _, c := range []uint8{'1', '2', '4', 'Y', 'Z', '\\'} {
			t.addSingle(c, source, StateGround, ActionDispatch, FamilyText)
		}
		t.addRange(0x37, 0x4F, source, StateGround, ActionDispatch, FamilyText)
		t.addRange(0x51, 0x57, source, StateGround, ActionDispatch, FamilyText)
		t.addRange(0x60, 0x7E, source, StateGround, ActionDispatch, FamilyText)
	}

	// escapeIntermediate
	{
		source := StateEscapeIntermediate
		t.addRange(0x20, 0x2F, source, source, ActionCollect, FamilyText)

		// => ground
		t.addRange(0x30, 0x7E, source, StateGround, ActionDispatch, FamilyText)
	}

	// statusReport
	{
		source := StateStatusReport
		// the trailing 'n' is optional, anything else ends the sequence
		// before it.
		for ch := 0; ch <= math.MaxUint8; ch++ {
			t.addSingle(uint8(ch), source, StateGround, ActionDispatchBefore, FamilyText)
		}
		t.addSingle('n', source, StateGround, ActionDispatch, FamilyText)
	}

	// csiParam
	{
		source := StateCSIParam
		t.addRange(0x30, 0x3F, source, source, ActionCollect, FamilyText)

		// => ground
		t.addRange(0x40, 0x7E, source, StateGround, ActionDispatch, FamilyText)
	}

	// sosString
	{
		source := StateSOSString
		for ch := 0; ch <= math.MaxUint8; ch++ {
			t.addSingle(uint8(ch), source, source, ActionCollect, FamilyText)
		}
		t.addSingle(0x98, source, StateGround, ActionAbort, FamilyText)

		// => ground
		t.addSingle(0x07, source, StateGround, ActionDispatch, FamilyText)
		t.addSingle(0x9C, source, StateGround, ActionDispatch, FamilyText)

		// => sosStringEscape
		t.addSingle(0x1B, source, StateSOSStringEscape, ActionCollect, FamilyText)
	}

	// sosStringEscape
	{
		t.addSingle('\\', StateSOSStringEscape, StateGround, ActionDispatch, FamilyText)
	}

	// commandString (OSC, DCS, PM, APC)
	{
		source := StateCommandString
		t.addRange(0x08, 0x0D, source, source, ActionCollect, FamilyText)
		t.addRange(0x20, 0x7E, source, source, ActionCollect, FamilyText)

		// => ground
		t.addSingle(0x07, source, StateGround, ActionDispatch, FamilyText)
		t.addSingle(0x9C, source, StateGround, ActionDispatch, FamilyText)

		// => commandStringEscape
		t.addSingle(0x1B, source, StateCommandStringEscape, ActionCollect, FamilyText)
	}

	// commandStringEscape
	{
		t.addSingle('\\', StateCommandStringEscape, StateGround, ActionDispatch, FamilyText)
	}

	return t
}

func (t scanTable) addSingle(
	c uint8,
	source, dest State,
	action ActionType,
	family Family,
) {
	t[c][source] = Transition{dest, action, family}
}

func (t scanTable) addRange(
	from, to uint8,
	source, dest State,
	action ActionType,
	family Family,
) {
	for c := int(from); c <= int(to); c++ {
		t.addSingle(uint8(c), source, dest, action, family)
	}
}
