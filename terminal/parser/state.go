package parser

// State for the state machine
type State int

const (
	StateGround State = iota
	StateEscape
	StateEscapeIntermediate
	StateStatusReport
	StateCSIParam
	StateSOSString
	StateSOSStringEscape
	StateCommandString
	StateCommandStringEscape

	stateCount
)

func (s State) String() string {
	switch s {
	case StateGround:
		return "Ground"
	case StateEscape:
		return "Escape"
	case StateEscapeIntermediate:
		return "EscapeIntermediate"
	case StateStatusReport:
		return "StatusReport"
	case StateCSIParam:
		return "CSIParam"
	case StateSOSString:
		return "SOSString"
	case StateSOSStringEscape:
		return "SOSStringEscape"
	case StateCommandString:
		return "CommandString"
	case StateCommandStringEscape:
		return "CommandStringEscape"
	default:
		return "Unknown"
	}
}
