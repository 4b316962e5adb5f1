package capability

import (
	"strconv"
	"strings"
)

// Level is the amount of color a terminal renders. The zero value is
// AutoDetect, so an unset Level resolves from the environment.
type Level int

const (
	// AutoDetect asks for a fresh detection; it is never a usable level.
	AutoDetect Level = iota
	None
	Basic
	Ansi256
	TrueColor
)

// Valid reports whether l is a usable level.
func (l Level) Valid() bool {
	return l >= None && l <= TrueColor
}

func (l Level) String() string {
	switch l {
	case AutoDetect:
		return "auto"
	case None:
		return "none"
	case Basic:
		return "basic"
	case Ansi256:
		return "ansi256"
	case TrueColor:
		return "truecolor"
	default:
		return "unknown"
	}
}

// ParseLevel maps a user supplied value, as found in FORCE_COLOR or a
// --color flag, to a Level. Empty and unknown values map to def.
//
// Numbers 0-3 are the levels themselves, larger numbers are read as a
// count of colors.
func ParseLevel(value string, def Level) Level {
	switch value = strings.ToLower(strings.TrimSpace(value)); value {
	case "":
		return def
	case "false", "never", "none":
		return None
	case "true", "basic", "ansi", "ansi16", "always":
		return Basic
	case "16m", "truecolor", "full":
		return TrueColor
	case "8bit", "ansi256":
		return Ansi256
	}

	if !isDigits(value) {
		return def
	}
	num, err := strconv.Atoi(value)
	if err != nil {
		// too large for an int
		return TrueColor
	}
	switch {
	case num <= 3:
		return Level(num) + None
	case num > 256:
		return TrueColor
	case num > 16:
		return Ansi256
	default:
		return Basic
	}
}

func isDigits(value string) bool {
	for _, c := range value {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
