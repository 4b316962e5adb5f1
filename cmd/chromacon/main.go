package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nevware21/chromacon"
	"github.com/nevware21/chromacon/internal/config"
	"github.com/nevware21/chromacon/logger"
	"github.com/nevware21/chromacon/terminal/capability"
	"github.com/nevware21/chromacon/terminal/sequences"
)

// Set via ldflags at build time.
var version = "dev"

// app is the state shared by the subcommands once flags are parsed.
type app struct {
	cfg    *config.Config
	log    logger.Logger
	colors *chromacon.Chromacon
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		flags      = config.Default()
		a          = &app{}
	)

	root := &cobra.Command{
		Use:          "chromacon",
		Short:        "Inspect and style ANSI escape sequences",
		Version:      version,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML configuration file")
	pf.StringVar(&flags.Level, "level", flags.Level, "Color level: auto, none, basic, ansi256, truecolor or 0-3")
	pf.StringVar(&flags.Encoding, "encoding", flags.Encoding, "Input encoding: "+strings.Join(sequences.Encodings, ", "))
	pf.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")
	pf.StringVar(&flags.LogFormat, "log-format", flags.LogFormat, "Log format: text or json")
	pf.BoolVar(&flags.Escape, "escape", flags.Escape, "Print control characters of sequences as \\xNN")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		overrideChanged(cmd, cfg, flags)

		a.cfg = cfg
		a.log = logger.New(logger.Options{
			Buffer: cmd.ErrOrStderr(),
			Level:  logger.ParseLevel(cfg.LogLevel),
			Type:   logger.ParseType(cfg.LogFormat),
		})
		a.log.Debug("configuration loaded", "path", configPath, "level", cfg.Level, "encoding", cfg.Encoding)

		level, err := parseLevel(cfg.Level)
		if err != nil {
			return err
		}
		a.colors = chromacon.New(chromacon.Options{Level: level, Logger: a.log})
		return nil
	}

	root.AddCommand(cmdStrip(a))
	root.AddCommand(cmdMatch(a))
	root.AddCommand(cmdParse(a))
	root.AddCommand(cmdEscape(a))
	root.AddCommand(cmdDescribe(a))
	root.AddCommand(cmdWidth(a))
	root.AddCommand(cmdLevel(a))
	root.AddCommand(cmdPaint(a))
	return root
}

// overrideChanged copies the flags given on the command line over the
// values loaded from the configuration file.
func overrideChanged(cmd *cobra.Command, cfg, flags *config.Config) {
	changed := cmd.Flags().Changed
	if changed("level") {
		cfg.Level = flags.Level
	}
	if changed("encoding") {
		cfg.Encoding = flags.Encoding
	}
	if changed("log-level") {
		cfg.LogLevel = flags.LogLevel
	}
	if changed("log-format") {
		cfg.LogFormat = flags.LogFormat
	}
	if changed("escape") {
		cfg.Escape = flags.Escape
	}
}

func parseLevel(value string) (capability.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return capability.AutoDetect, nil
	}
	level := capability.ParseLevel(value, capability.AutoDetect)
	if level == capability.AutoDetect {
		return level, fmt.Errorf("unknown color level %q", value)
	}
	return level, nil
}

// input returns the joined args, or stdin decoded with the configured
// encoding when there are none.
func (a *app) input(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text, err := sequences.DecodeLegacy(data, a.cfg.Encoding)
	if err != nil {
		return "", err
	}
	a.log.Debug("input decoded", "encoding", a.cfg.Encoding, "bytes", len(data))
	return text, nil
}

// show renders one sequence for printing.
func (a *app) show(seq string) string {
	if a.cfg.Escape {
		return sequences.Escape(seq)
	}
	return fmt.Sprintf("%q", seq)
}
