package chromacon

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/nevware21/chromacon/terminal/ansi"
	"github.com/nevware21/chromacon/terminal/parser"
	"github.com/nevware21/chromacon/terminal/sequences/csi"
	"github.com/nevware21/chromacon/terminal/sequences/esc"
	"github.com/nevware21/chromacon/terminal/sgr"
)

// introducers maps the string families to their C1 introducer.
var introducers = map[parser.Family]uint8{
	parser.FamilySOS: ansi.C1.SOS,
	parser.FamilyOSC: ansi.C1.OSC,
	parser.FamilyDCS: ansi.C1.DCS,
	parser.FamilyAPC: ansi.C1.APC,
	parser.FamilyPM:  ansi.C1.PM,
}

// Describe explains text one segment per line: the byte offset, the
// family, the quoted value and, for control sequences, what they do.
//
//	0	csi	"\x1b[1;31m"	bold, fg red
//	7	text	"Hello"
func Describe(text string) []string {
	segments := parser.Scan(text)
	lines := make([]string, 0, len(segments))
	for _, seg := range segments {
		line := fmt.Sprintf("%d\t%s\t%q", seg.Offset, seg.Family, seg.Value)
		if detail := describeSegment(seg); detail != "" {
			line += "\t" + detail
		}
		lines = append(lines, line)
	}
	return lines
}

func describeSegment(seg parser.Segment) string {
	switch seg.Family {
	case parser.FamilyCSI:
		return describeCSI(seg)
	case parser.FamilyC1:
		return describeC1(c1Code(seg.Value))
	case parser.FamilyEscape, parser.FamilyNF:
		cmd, ok := esc.Parse(seg)
		if !ok {
			return ""
		}
		if code, ok := ansi.FeCode(cmd.Final); ok && len(cmd.Intermediates) == 0 {
			return describeC1(code)
		}
		return cmd.Name()
	case parser.FamilyStatusReport:
		return "vt100 status report"
	default:
		if code, ok := introducers[seg.Family]; ok {
			return describeC1(code)
		}
		return ""
	}
}

func describeCSI(seg parser.Segment) string {
	cmd, ok := csi.Parse(seg)
	if !ok {
		return "too many parameters"
	}
	if !cmd.IsSGR() {
		return fmt.Sprintf("final %c params %v", cmd.Final, cmd.Params)
	}

	p := sgr.Parser{Params: cmd.Params, ParamsSep: cmd.ParamsSet}
	var attrs []string
	for attr := range p.Iter() {
		attrs = append(attrs, attr.String())
	}
	return strings.Join(attrs, ", ")
}

func describeC1(code uint8) string {
	d, ok := ansi.C1Detail(code)
	if !ok {
		return ""
	}
	return d.Abbr + " " + d.Name
}

// c1Code returns the control code of a single C1 segment, encoded either
// as a rune or as a raw byte.
func c1Code(value string) uint8 {
	r, size := utf8.DecodeRuneInString(value)
	if r == utf8.RuneError && size == 1 {
		return value[0]
	}
	return uint8(r)
}
