package sgr

import (
	"fmt"
	"strconv"

	"github.com/mitchellh/hashstructure/v2"
	"github.com/nevware21/chromacon/terminal/capability"
	"github.com/nevware21/chromacon/terminal/color"
	"github.com/nevware21/chromacon/terminal/utils"
)

// Descriptor describes one half of a style: the code switching it on or
// the code switching it off. A Color without a Code sets the color
// directly, a Code that is a color marker (38, 48, 58) applies Color
// through the extended form.
type Descriptor struct {
	Color *color.Spec
	Code  *Code
}

// ResetDescriptor is the default disable half of a style.
var ResetDescriptor = Attr(Reset)

func Attr(code Code) Descriptor {
	return Descriptor{Code: &code}
}

// Base sets a basic color directly, e.g. 31 for a red foreground.
func Base(c color.BaseColor, offset color.Offset) Descriptor {
	spec := color.NewBase(c, offset)
	return Descriptor{Color: &spec}
}

// Extended applies spec through marker, e.g. 38;5;196.
func Extended(marker Code, spec color.Spec) Descriptor {
	return Descriptor{Color: &spec, Code: &marker}
}

// IsReset reports whether d is the full reset.
func (d Descriptor) IsReset() bool {
	return d.Color == nil && d.Code != nil && *d.Code == Reset
}

// Key identifies d by value. Equal descriptors have equal keys.
func (d Descriptor) Key() uint64 {
	hashed, err := hashstructure.Hash(d, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash descriptor: %v", err))
	return hashed
}

func (d Descriptor) String() string {
	switch {
	case d.Code != nil && d.Color != nil:
		return fmt.Sprintf("%s(%s)", *d.Code, *d.Color)
	case d.Code != nil:
		return d.Code.String()
	case d.Color != nil:
		return d.Color.String()
	default:
		return "none"
	}
}

// Emit returns the SGR parameters enabling d at level, or "" when d has no
// effect at that level. Colors are never converted: a 24-bit color below
// TrueColor and a 256 color below Ansi256 emit nothing.
func Emit(d Descriptor, level capability.Level) string {
	if !level.Valid() || level == capability.None {
		return ""
	}

	var colorType capability.Level
	var params string
	if d.Color != nil {
		switch spec := *d.Color; spec.Type {
		case color.SpecTypeBase:
			colorType = capability.Basic
			params = strconv.Itoa(int(spec.Base) + int(spec.Offset))
		case color.SpecTypeRGB:
			if level == capability.TrueColor {
				colorType = capability.TrueColor
				params = fmt.Sprintf("2;%d;%d;%d", spec.RGB.R, spec.RGB.G, spec.RGB.B)
			}
		case color.SpecTypeIndexed:
			if level >= capability.Ansi256 {
				colorType = capability.Ansi256
				params = "5;" + strconv.Itoa(int(spec.Index))
			}
		}
	}

	if d.Code == nil {
		return params
	}
	if !d.Code.IsColorMarker() {
		return d.Code.String()
	}
	if colorType >= capability.Ansi256 {
		return d.Code.String() + ";" + params
	}
	return ""
}

// Degrade approximates the color of d with one level renders. Without a
// color, or when level already renders it, d is returned unchanged.
//
// Foreground and background colors fall back to basic colors at Basic;
// underline colors have no basic form and stay as they are.
func (d Descriptor) Degrade(level capability.Level) Descriptor {
	if d.Color == nil || !level.Valid() || level == capability.None {
		return d
	}

	spec := *d.Color
	if spec.Type == color.SpecTypeRGB && level < capability.TrueColor {
		spec = color.NewIndexed(color.RGBTo256(spec.RGB))
	}
	if spec.Type == color.SpecTypeIndexed && level < capability.Ansi256 {
		if d.Code == nil {
			return d
		}
		var offset color.Offset
		switch *d.Code {
		case FgColor:
			offset = color.FgOffset
		case BgColor:
			offset = color.BgOffset
		default:
			return d
		}
		return Base(color.Index256ToBase(spec.Index), offset)
	}

	d.Color = &spec
	return d
}
