package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nevware21/chromacon"
	"github.com/nevware21/chromacon/terminal/style"
)

func cmdStrip(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "strip [text...]",
		Short: "Remove every control sequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.input(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), chromacon.Strip(text))
			return nil
		},
	}
}

func cmdMatch(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "match [text...]",
		Short: "List the control sequences, one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.input(cmd, args)
			if err != nil {
				return err
			}
			for _, seq := range chromacon.Match(text) {
				fmt.Fprintln(cmd.OutOrStdout(), a.show(seq))
			}
			return nil
		},
	}
}

func cmdParse(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [text...]",
		Short: "Split into literal runs and control sequences, one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.input(cmd, args)
			if err != nil {
				return err
			}
			for _, seg := range chromacon.ParseSegments(text) {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", seg.Offset, a.show(seg.Value))
			}
			return nil
		},
	}
}

func cmdEscape(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "escape [text...]",
		Short: "Print control characters inside sequences as \\xNN",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.input(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), chromacon.Escape(text))
			return nil
		},
	}
}

func cmdDescribe(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe [text...]",
		Short: "Explain every segment: offset, family, value and meaning",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.input(cmd, args)
			if err != nil {
				return err
			}
			for _, line := range chromacon.Describe(text) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}

func cmdWidth(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "width [text...]",
		Short: "Print the number of terminal cells of the visible text",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.input(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), chromacon.VisibleWidth(text))
			return nil
		},
	}
}

func cmdLevel(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "level",
		Short: "Print the negotiated color level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := a.colors.Level()
			a.log.Debug("color level resolved", "level", level.String())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "level: %s\n", level)
			fmt.Fprintf(out, "color: %t\n", a.colors.IsColorSupported())
			fmt.Fprintf(out, "ansi256: %t\n", a.colors.IsAnsi256Supported())
			fmt.Fprintf(out, "truecolor: %t\n", a.colors.IsTrueColorSupported())
			return nil
		},
	}
}

func cmdPaint(a *app) *cobra.Command {
	var (
		styles    []string
		fg, bg    string
		nearest   bool
		showCodes bool
	)

	cmd := &cobra.Command{
		Use:   "paint [text...]",
		Short: "Style text; the first style is the outermost",
		Example: "  chromacon paint --style bold,red Hello\n" +
			"  chromacon paint --fg 255,128,0 --nearest --level basic Hello",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatters, err := a.formatters(styles, fg, bg, nearest)
			if err != nil {
				return err
			}
			text, err := a.input(cmd, args)
			if err != nil {
				return err
			}

			for _, f := range slices.Backward(formatters) {
				text = f.Apply(text)
			}
			if showCodes {
				text = a.show(text)
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&styles, "style", "s", nil, "Named styles, e.g. bold,brightRed,bgBlue")
	cmd.Flags().StringVar(&fg, "fg", "", "Foreground color: r,g,b or a 256 color index")
	cmd.Flags().StringVar(&bg, "bg", "", "Background color: r,g,b or a 256 color index")
	cmd.Flags().BoolVar(&nearest, "nearest", false, "Approximate --fg r,g,b for the current level")
	cmd.Flags().BoolVar(&showCodes, "show", false, "Print the result quoted")
	return cmd
}

// formatters resolves the paint flags, outermost first.
func (a *app) formatters(names []string, fg, bg string, nearest bool) ([]*style.Formatter, error) {
	named := a.colors.Named()

	var result []*style.Formatter
	for _, name := range names {
		f, ok := named[strings.TrimSpace(name)]
		if !ok {
			return nil, fmt.Errorf("unknown style %q", name)
		}
		result = append(result, f)
	}

	if fg != "" {
		f, err := a.colorFormatter(fg, nearest, a.colors.RGB, a.colors.Ansi256)
		if err != nil {
			return nil, fmt.Errorf("--fg: %w", err)
		}
		result = append(result, f)
	}
	if bg != "" {
		f, err := a.colorFormatter(bg, false, a.colors.BgRGB, a.colors.BgAnsi256)
		if err != nil {
			return nil, fmt.Errorf("--bg: %w", err)
		}
		result = append(result, f)
	}
	return result, nil
}

type (
	rgbStyle     func(r, g, b uint8) *style.Formatter
	indexedStyle func(index uint8) *style.Formatter
)

func (a *app) colorFormatter(value string, nearest bool, rgb rgbStyle, indexed indexedStyle) (*style.Formatter, error) {
	parts := strings.Split(value, ",")
	channels := make([]uint8, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid color %q: %w", value, err)
		}
		channels = append(channels, uint8(v))
	}

	switch len(channels) {
	case 1:
		return indexed(channels[0]), nil
	case 3:
		if nearest {
			return a.colors.Nearest(channels[0], channels[1], channels[2]), nil
		}
		return rgb(channels[0], channels[1], channels[2]), nil
	default:
		return nil, fmt.Errorf("invalid color %q: want r,g,b or an index", value)
	}
}
