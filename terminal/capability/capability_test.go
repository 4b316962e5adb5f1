package capability

import (
	"bytes"
	"testing"

	"github.com/nevware21/chromacon/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tcs := []struct {
		value    string
		expected Level
	}{
		{"", Ansi256},
		{"  ", Ansi256},
		{"false", None},
		{"Never", None},
		{"none", None},
		{"true", Basic},
		{"BASIC", Basic},
		{"ansi", Basic},
		{"ansi16", Basic},
		{"always", Basic},
		{" 16m ", TrueColor},
		{"truecolor", TrueColor},
		{"full", TrueColor},
		{"8bit", Ansi256},
		{"ansi256", Ansi256},
		{"0", None},
		{"1", Basic},
		{"2", Ansi256},
		{"3", TrueColor},
		{"4", Basic},
		{"16", Basic},
		{"17", Ansi256},
		{"256", Ansi256},
		{"257", TrueColor},
		{"16777216", TrueColor},
		{"99999999999999999999999", TrueColor},
		{"-1", Ansi256},
		{"yes", Ansi256},
	}
	for _, tc := range tcs {
		t.Run(tc.value, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseLevel(tc.value, Ansi256))
		})
	}
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "auto", AutoDetect.String())
	assert.Equal(t, "truecolor", TrueColor.String())
	assert.False(t, AutoDetect.Valid())
	assert.True(t, None.Valid())
	assert.False(t, Level(42).Valid())
}

func TestDetect(t *testing.T) {
	tcs := []struct {
		name     string
		env      map[string]string
		args     []string
		windows  string
		terminal *bool
		expected Level
	}{
		{name: "nothing", expected: None},
		{name: "force color empty", env: map[string]string{"FORCE_COLOR": ""}, expected: Basic},
		{name: "force color 3", env: map[string]string{"FORCE_COLOR": "3"}, expected: TrueColor},
		{name: "force color false", env: map[string]string{"FORCE_COLOR": "false", "COLORTERM": "truecolor"}, expected: None},
		{name: "force color beats flags", env: map[string]string{"FORCE_COLOR": "1"}, args: []string{"--no-color"}, expected: Basic},
		{name: "color flag", args: []string{"--color"}, expected: Basic},
		{name: "color flag with value", args: []string{"--color=256"}, env: map[string]string{"TERM": "dumb"}, expected: Ansi256},
		{name: "colors flag", args: []string{"--colors=16m"}, env: map[string]string{"TERM": "dumb"}, expected: TrueColor},
		{name: "color flag false", args: []string{"--color=false"}, env: map[string]string{"COLORTERM": "truecolor"}, expected: None},
		{name: "no color flag", args: []string{"--no-color"}, env: map[string]string{"COLORTERM": "truecolor"}, expected: None},
		{name: "no colors flag", args: []string{"--no-colors"}, env: map[string]string{"COLORTERM": "truecolor"}, expected: None},
		{name: "flags after double dash", args: []string{"--", "--no-color"}, env: map[string]string{"COLORTERM": "truecolor"}, expected: TrueColor},
		{name: "no color env", env: map[string]string{"NO_COLOR": "1", "COLORTERM": "truecolor"}, expected: None},
		{name: "empty no color env", env: map[string]string{"NO_COLOR": "", "COLORTERM": "truecolor"}, expected: TrueColor},
		{name: "azure devops", env: map[string]string{"TF_BUILD": "", "AGENT_NAME": "x"}, expected: Basic},
		{name: "dumb", env: map[string]string{"TERM": "dumb", "COLORTERM": "truecolor"}, expected: None},
		{name: "dumb with flag", env: map[string]string{"TERM": "dumb"}, args: []string{"--color"}, expected: Basic},
		{name: "github actions", env: map[string]string{"CI": "true", "GITHUB_ACTIONS": "true"}, expected: TrueColor},
		{name: "gitea actions", env: map[string]string{"CI": "true", "GITEA_ACTIONS": "true"}, expected: TrueColor},
		{name: "travis", env: map[string]string{"CI": "true", "TRAVIS": "1"}, expected: Ansi256},
		{name: "gitlab", env: map[string]string{"CI": "", "GITLAB_CI": ""}, expected: Ansi256},
		{name: "codeship", env: map[string]string{"CI": "true", "CI_NAME": "codeship"}, expected: Basic},
		{name: "unknown ci", env: map[string]string{"CI": "true", "COLORTERM": "truecolor"}, expected: None},
		{name: "unknown ci with flag", env: map[string]string{"CI": "true"}, args: []string{"--color=ansi256"}, expected: Ansi256},
		{name: "ci when piped", env: map[string]string{"CI": "true", "GITHUB_ACTIONS": "true"}, terminal: ptr(false), expected: TrueColor},
		{name: "piped", env: map[string]string{"COLORTERM": "truecolor"}, terminal: ptr(false), expected: None},
		{name: "terminal", env: map[string]string{"COLORTERM": "truecolor"}, terminal: ptr(true), expected: TrueColor},
		{name: "windows 7", windows: "6.1.7601", expected: Basic},
		{name: "windows 10 early", windows: "10.0.10240", expected: Basic},
		{name: "windows 10 256", windows: "10.0.10586", expected: Ansi256},
		{name: "windows 10 truecolor", windows: "10.0.14931", expected: TrueColor},
		{name: "windows 11", windows: "10.0.22631", expected: TrueColor},
		{name: "windows malformed", windows: "10", expected: Basic},
		{name: "windows then term", windows: "10.0.10586", env: map[string]string{"TERM": "xterm-kitty"}, expected: TrueColor},
		{name: "teamcity new", env: map[string]string{"TEAMCITY_VERSION": "2017.1.2"}, expected: Basic},
		{name: "teamcity 9.1", env: map[string]string{"TEAMCITY_VERSION": "9.1.0"}, expected: Basic},
		{name: "teamcity old", env: map[string]string{"TEAMCITY_VERSION": "9.0.5", "COLORTERM": "truecolor"}, expected: None},
		{name: "colorterm truecolor", env: map[string]string{"COLORTERM": "truecolor"}, expected: TrueColor},
		{name: "colorterm 24bit", env: map[string]string{"COLORTERM": "24bit"}, expected: TrueColor},
		{name: "kitty", env: map[string]string{"TERM": "xterm-kitty"}, expected: TrueColor},
		{name: "apple terminal", env: map[string]string{"TERM_PROGRAM": "Apple_Terminal", "TERM": "xterm-256color"}, expected: Basic},
		{name: "iterm 3", env: map[string]string{"TERM_PROGRAM": "iTerm.app", "TERM_PROGRAM_VERSION": "3.4.1"}, expected: TrueColor},
		{name: "iterm 2", env: map[string]string{"TERM_PROGRAM": "iTerm.app", "TERM_PROGRAM_VERSION": "2.9"}, expected: Ansi256},
		{name: "iterm no version", env: map[string]string{"TERM_PROGRAM": "iTerm.app"}, expected: Ansi256},
		{name: "xterm 256", env: map[string]string{"TERM": "xterm-256color"}, expected: Ansi256},
		{name: "screen 256 upper", env: map[string]string{"TERM": "SCREEN-256"}, expected: Ansi256},
		{name: "xterm", env: map[string]string{"TERM": "xterm"}, expected: Basic},
		{name: "linux", env: map[string]string{"TERM": "linux"}, expected: Basic},
		{name: "cygwin", env: map[string]string{"TERM": "cygwin"}, expected: Basic},
		{name: "colorterm any", env: map[string]string{"COLORTERM": "yes"}, expected: Basic},
		{name: "unknown term", env: map[string]string{"TERM": "foo"}, expected: None},
		{name: "unknown term with flag", env: map[string]string{"TERM": "foo"}, args: []string{"--color=16m"}, expected: TrueColor},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			env := MapEnvironment(tc.env, tc.args...)
			if tc.windows != "" {
				env.WindowsVersion = func() string { return tc.windows }
			}
			if tc.terminal != nil {
				isTerminal := *tc.terminal
				env.IsTerminal = func() bool { return isTerminal }
			}
			assert.Equal(t, tc.expected, Detect(env))
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}

func newTestNegotiator(opts Options, vars map[string]string) *Negotiator {
	env := MapEnvironment(vars)
	opts.Environment = &env
	return NewNegotiator(opts)
}

func TestNegotiatorLevel(t *testing.T) {
	t.Run("detects on first use and notifies", func(t *testing.T) {
		n := newTestNegotiator(Options{}, map[string]string{"TERM": "xterm-256color"})
		var got []Level
		n.OnChange(func(l Level) { got = append(got, l) })

		assert.Equal(t, Ansi256, n.Level())
		assert.Equal(t, Ansi256, n.Level())
		assert.Equal(t, []Level{Ansi256}, got)
		assert.True(t, n.IsColorSupported())
		assert.True(t, n.IsAnsi256Supported())
		assert.False(t, n.IsTrueColorSupported())
	})

	t.Run("initial level skips detection", func(t *testing.T) {
		n := newTestNegotiator(Options{Level: None}, map[string]string{"COLORTERM": "truecolor"})
		assert.Equal(t, None, n.Level())
		assert.False(t, n.IsColorSupported())
	})

	t.Run("max level clamps detection", func(t *testing.T) {
		n := newTestNegotiator(Options{MaxLevel: Basic}, map[string]string{"COLORTERM": "truecolor"})
		assert.Equal(t, Basic, n.Level())
	})

	t.Run("max level clamps initial level", func(t *testing.T) {
		n := newTestNegotiator(Options{Level: TrueColor, MaxLevel: Ansi256}, nil)
		assert.Equal(t, Ansi256, n.Level())
	})
}

func TestNegotiatorSetLevel(t *testing.T) {
	n := newTestNegotiator(Options{Level: Basic}, map[string]string{"COLORTERM": "truecolor"})
	var got []Level
	unsubscribe := n.OnChange(func(l Level) { got = append(got, l) })

	n.SetLevel(Basic)
	assert.Empty(t, got, "unchanged level does not notify")

	n.SetLevel(TrueColor)
	n.SetLevel(None)
	assert.Equal(t, []Level{TrueColor, None}, got)

	n.SetLevel(AutoDetect)
	assert.Equal(t, TrueColor, n.Level())

	n.SetLevel(Level(99))
	assert.Equal(t, TrueColor, n.Level(), "invalid level detects")

	n.SetMaxLevel(Ansi256)
	assert.Equal(t, Ansi256, n.Level())
	n.SetLevel(TrueColor)
	assert.Equal(t, Ansi256, n.Level())

	unsubscribe()
	unsubscribe()
	n.SetLevel(None)
	assert.Equal(t, []Level{TrueColor, None, TrueColor, Ansi256}, got)
}

func TestNegotiatorDetector(t *testing.T) {
	n := newTestNegotiator(Options{Detector: func() Level { return Ansi256 }}, map[string]string{"COLORTERM": "truecolor"})
	assert.Equal(t, Ansi256, n.Level())

	n.SetDetector(func() Level { return AutoDetect })
	n.SetLevel(AutoDetect)
	assert.Equal(t, TrueColor, n.Level(), "invalid detector result falls back")

	n.SetDetector(func() Level { panic("boom") })
	n.SetLevel(None)
	n.SetLevel(AutoDetect)
	assert.Equal(t, TrueColor, n.Level(), "panicking detector falls back")

	n.SetDetector(func() Level { return Basic })
	n.SetLevel(AutoDetect)
	assert.Equal(t, Basic, n.Level())

	n.SetDetector(nil)
	n.SetLevel(AutoDetect)
	assert.Equal(t, TrueColor, n.Level())
}

func TestNegotiatorListenerPanic(t *testing.T) {
	var buf bytes.Buffer
	env := MapEnvironment(nil)
	n := NewNegotiator(Options{
		Level:       None,
		Environment: &env,
		Logger:      logger.New(logger.Options{Buffer: &buf, Level: logger.WarnLevel}),
	})

	var second []Level
	n.OnChange(func(Level) { panic("listener failed") })
	n.OnChange(func(l Level) { second = append(second, l) })

	require.NotPanics(t, func() { n.SetLevel(Basic) })
	assert.Equal(t, []Level{Basic}, second)
	assert.Contains(t, buf.String(), "listener panicked")
}

func TestNegotiatorUnsubscribeDuringNotify(t *testing.T) {
	env := MapEnvironment(nil)
	n := NewNegotiator(Options{Level: None, Environment: &env})

	calls := 0
	var unsubscribe func()
	unsubscribe = n.OnChange(func(Level) {
		calls++
		unsubscribe()
	})

	n.SetLevel(Basic)
	n.SetLevel(Ansi256)
	assert.Equal(t, 1, calls)
}
