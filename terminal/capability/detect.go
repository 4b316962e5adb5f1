package capability

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	teamCityPattern = regexp.MustCompile(`^(9\.(0*[1-9]\d*)\.|\d{2,}\.)`)
	term256Pattern  = regexp.MustCompile(`(?i)-256(color)?$`)
	termBasic       = regexp.MustCompile(`(?i)^screen|^xterm|^vt100|^rxvt|color|ansi|cygwin|linux`)
)

// ciLevels lists the CI services that render more than basic colors, in
// the order they are checked.
var ciLevels = []struct {
	level Level
	names []string
}{
	{TrueColor, []string{"GITHUB_ACTIONS", "GITEA_ACTIONS"}},
	{Ansi256, []string{"TRAVIS", "CIRCLECI", "APPVEYOR", "GITLAB_CI", "BUILDKITE", "DRONE"}},
}

const (
	// first Windows 10 builds rendering 256 colors and 24-bit colors
	win256Build       = 10586
	winTrueColorBuild = 14931
)

// Detect infers the color level of env. Explicit settings win over
// inferred ones: FORCE_COLOR, then --color/--no-color flags, then
// NO_COLOR, then CI and terminal identification.
func Detect(env Environment) Level {
	if force, ok := env.lookup("FORCE_COLOR"); ok {
		return ParseLevel(force, Basic)
	}

	flag, disabled := colorFlags(env.Args)
	if disabled {
		return None
	}

	if env.getenv("NO_COLOR") != "" {
		return None
	}

	if env.has("TF_BUILD") && env.has("AGENT_NAME") {
		return Basic
	}

	term := env.getenv("TERM")
	if term == "dumb" {
		return orNone(flag)
	}

	if env.has("CI") {
		for _, ci := range ciLevels {
			for _, name := range ci.names {
				if env.has(name) {
					return ci.level
				}
			}
		}
		if env.getenv("CI_NAME") == "codeship" {
			return Basic
		}
		return orNone(flag)
	}

	if env.IsTerminal != nil && !env.IsTerminal() {
		return None
	}

	level := flag
	if env.WindowsVersion != nil {
		if version := env.WindowsVersion(); version != "" {
			level = windowsLevel(version)
		}
	}

	if teamCity := env.getenv("TEAMCITY_VERSION"); teamCity != "" {
		if teamCityPattern.MatchString(teamCity) {
			return Basic
		}
		return None
	}

	colorTerm := env.getenv("COLORTERM")
	if colorTerm == "truecolor" || colorTerm == "24bit" {
		return TrueColor
	}

	if term == "xterm-kitty" {
		return TrueColor
	}

	switch env.getenv("TERM_PROGRAM") {
	case "Apple_Terminal":
		return Basic
	case "iTerm.app":
		major, _, _ := strings.Cut(env.getenv("TERM_PROGRAM_VERSION"), ".")
		if v, err := strconv.Atoi(major); err == nil && v >= 3 {
			return TrueColor
		}
		return Ansi256
	}

	if term256Pattern.MatchString(term) {
		return Ansi256
	}

	if termBasic.MatchString(term) || colorTerm != "" {
		return Basic
	}

	return orNone(level)
}

// colorFlags scans args up to "--" for --color, --colors, --no-color and
// --no-colors. It returns the requested level, AutoDetect when none was
// given, and whether colors were turned off.
func colorFlags(args []string) (Level, bool) {
	level := argFlag(args, "color", Basic)
	if level == AutoDetect {
		level = argFlag(args, "colors", Basic)
	}
	if level == None {
		return None, true
	}
	if argFlag(args, "no-color", None) != AutoDetect || argFlag(args, "no-colors", None) != AutoDetect {
		return None, true
	}
	return level, false
}

// argFlag returns def for a bare --name, the parsed value of --name=value
// and AutoDetect when the flag is absent.
func argFlag(args []string, name string, def Level) Level {
	flag := "--" + name
	for _, arg := range args {
		switch {
		case arg == "--":
			return AutoDetect
		case arg == flag:
			return def
		case strings.HasPrefix(arg, flag+"="):
			return ParseLevel(arg[len(flag)+1:], Basic)
		}
	}
	return AutoDetect
}

// windowsLevel maps a "major.minor.build" version to the level of its
// console.
func windowsLevel(version string) Level {
	parts := strings.Split(version, ".")
	if len(parts) < 3 {
		return Basic
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil || major < 10 {
		return Basic
	}
	build, err := strconv.Atoi(parts[2])
	switch {
	case err != nil:
		return Basic
	case build >= winTrueColorBuild:
		return TrueColor
	case build >= win256Build:
		return Ansi256
	default:
		return Basic
	}
}

func orNone(l Level) Level {
	if l.Valid() {
		return l
	}
	return None
}
