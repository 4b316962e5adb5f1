package parser

// ActionType is an action that taked when event or
// state transition occurs
type ActionType int

const (
	ActionNone ActionType = iota
	// Literal character in the ground state.
	ActionPrint
	// Character opens a sequence candidate.
	ActionStart
	// Character belongs to the open candidate.
	ActionCollect
	// Character completes the open candidate.
	ActionDispatch
	// The candidate is complete without this character, which is scanned
	// again from the ground state.
	ActionDispatchBefore
	// Character is a complete single code sequence on its own.
	ActionExecute
	// The candidate cannot complete. Its introducer is literal text.
	ActionAbort
)

func (a ActionType) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPrint:
		return "Print"
	case ActionStart:
		return "Start"
	case ActionCollect:
		return "Collect"
	case ActionDispatch:
		return "Dispatch"
	case ActionDispatchBefore:
		return "DispatchBefore"
	case ActionExecute:
		return "Execute"
	case ActionAbort:
		return "Abort"
	default:
		return "Unknown"
	}
}
