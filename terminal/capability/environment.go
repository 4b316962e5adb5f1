package capability

import (
	"os"

	"golang.org/x/term"
)

// Environment is everything detection looks at. Nil functions read as
// "not available".
type Environment struct {
	LookupEnv func(key string) (string, bool)
	// Args are the command line arguments without the program name.
	Args []string
	// WindowsVersion returns "major.minor.build" on Windows and "" on any
	// other platform.
	WindowsVersion func() string
	// IsTerminal reports whether output goes to a terminal.
	IsTerminal func() bool
}

// OSEnvironment binds detection to the running process: its environment,
// its arguments and whether stdout is a terminal.
func OSEnvironment() Environment {
	var args []string
	if len(os.Args) > 1 {
		args = os.Args[1:]
	}
	return Environment{
		LookupEnv:      os.LookupEnv,
		Args:           args,
		WindowsVersion: windowsVersion,
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
	}
}

// MapEnvironment is an Environment backed by a fixed set of variables.
func MapEnvironment(vars map[string]string, args ...string) Environment {
	return Environment{
		LookupEnv: func(key string) (string, bool) {
			v, ok := vars[key]
			return v, ok
		},
		Args: args,
	}
}

func (e Environment) lookup(key string) (string, bool) {
	if e.LookupEnv == nil {
		return "", false
	}
	return e.LookupEnv(key)
}

func (e Environment) getenv(key string) string {
	v, _ := e.lookup(key)
	return v
}

func (e Environment) has(key string) bool {
	_, ok := e.lookup(key)
	return ok
}
