// SGR (Selective Graphic Rendition) attribute parsing and types
//
// This is implemented based on: https://vt100.net/docs/vt510-rm/SGR.html
package sgr

import (
	"fmt"
	"iter"
	"math"

	"github.com/nevware21/chromacon/terminal/color"
	"github.com/nevware21/chromacon/terminal/utils"
)

type AttributeType uint16

const (
	AttributeTypeUnset AttributeType = iota
	// Bold the text.
	AttributeTypeBold
	// Neither bold nor faint.
	AttributeTypeResetBold

	// Italic the text.
	AttributeTypeItalic
	AttributeTypeResetItalic

	// Faint/dim text.
	AttributeTypeFaint

	// Underline the text.
	AttributeTypeUnderline
	AttributeTypeResetUnderline
	AttributeTypeUnderlineColor
	AttributeTypeResetUnderlineColor

	// Overline the text.
	AttributeTypeOverline
	AttributeTypeResetOverline

	// Blink the text.
	AttributeTypeBlink
	AttributeTypeResetBlink

	// Invert fg/bg colors.
	AttributeTypeInverse
	AttributeTypeResetInverse

	// Invisible text.
	AttributeTypeInvisible
	AttributeTypeResetInvisible

	// Strikethrough the text.
	AttributeTypeStrikethrough
	AttributeTypeResetStrikethrough

	// Fonts: primary, alternative 1-9 and fraktur.
	AttributeTypeFont
	AttributeTypeFraktur

	AttributeTypeProportionalSpacing
	AttributeTypeResetProportionalSpacing

	// Framed and encircled share their reset.
	AttributeTypeFramed
	AttributeTypeEncircled
	AttributeTypeResetFramed

	AttributeTypeSuperscript
	AttributeTypeSubscript
	AttributeTypeResetSuperSubscript

	AttributeTypeFg
	AttributeTypeResetFg
	AttributeTypeBg
	AttributeTypeResetBg

	// Unkown
	AttributeTypeUnknown
)

var attributeNames = map[AttributeType]string{
	AttributeTypeUnset:                    "reset",
	AttributeTypeBold:                     "bold",
	AttributeTypeResetBold:                "normal intensity",
	AttributeTypeItalic:                   "italic",
	AttributeTypeResetItalic:              "not italic",
	AttributeTypeFaint:                    "faint",
	AttributeTypeUnderline:                "underline",
	AttributeTypeResetUnderline:           "not underlined",
	AttributeTypeUnderlineColor:           "underline color",
	AttributeTypeResetUnderlineColor:      "default underline color",
	AttributeTypeOverline:                 "overline",
	AttributeTypeResetOverline:            "not overlined",
	AttributeTypeBlink:                    "blink",
	AttributeTypeResetBlink:               "not blinking",
	AttributeTypeInverse:                  "inverse",
	AttributeTypeResetInverse:             "not inverse",
	AttributeTypeInvisible:                "invisible",
	AttributeTypeResetInvisible:           "visible",
	AttributeTypeStrikethrough:            "strikethrough",
	AttributeTypeResetStrikethrough:       "not strikethrough",
	AttributeTypeFont:                     "font",
	AttributeTypeFraktur:                  "fraktur",
	AttributeTypeProportionalSpacing:      "proportional spacing",
	AttributeTypeResetProportionalSpacing: "no proportional spacing",
	AttributeTypeFramed:                   "framed",
	AttributeTypeEncircled:                "encircled",
	AttributeTypeResetFramed:              "not framed",
	AttributeTypeSuperscript:              "superscript",
	AttributeTypeSubscript:                "subscript",
	AttributeTypeResetSuperSubscript:      "not super/subscript",
	AttributeTypeFg:                       "fg",
	AttributeTypeResetFg:                  "default fg",
	AttributeTypeBg:                       "bg",
	AttributeTypeResetBg:                  "default bg",
	AttributeTypeUnknown:                  "unknown",
}

func (t AttributeType) String() string {
	if name, ok := attributeNames[t]; ok {
		return name
	}
	return "unknown"
}

type UnderlineType uint8

const (
	UnderlineTypeNone UnderlineType = iota
	UnderlineTypeSingle
	UnderlineTypeDouble
	UnderlineTypeCurly
	UnderlineTypeDotted
	UnderlineTypeDashed
)

func (u UnderlineType) String() string {
	switch u {
	case UnderlineTypeSingle:
		return "single"
	case UnderlineTypeDouble:
		return "double"
	case UnderlineTypeCurly:
		return "curly"
	case UnderlineTypeDotted:
		return "dotted"
	case UnderlineTypeDashed:
		return "dashed"
	default:
		return "none"
	}
}

type Attribute struct {
	Type      AttributeType
	Underline UnderlineType
	// Color of the fg, bg and underline color attributes.
	Color color.Spec
	// Font number, 0 is the primary font.
	Font uint16
	// Params of an unknown attribute.
	Unknown []uint16
}

func (a Attribute) String() string {
	switch a.Type {
	case AttributeTypeUnderline:
		return fmt.Sprintf("%s %s", a.Type, a.Underline)
	case AttributeTypeFg, AttributeTypeBg, AttributeTypeUnderlineColor:
		if a.Color.Type == color.SpecTypeBase {
			return fmt.Sprintf("%s %s", a.Type, a.Color.Base)
		}
		return fmt.Sprintf("%s %s", a.Type, a.Color)
	case AttributeTypeFont:
		return fmt.Sprintf("%s %d", a.Type, a.Font)
	case AttributeTypeUnknown:
		return fmt.Sprintf("%s %v", a.Type, a.Unknown)
	default:
		return a.Type.String()
	}
}

// Parser turns the parameters of one SGR sequence into attributes.
type Parser struct {
	Params []uint16
	// ParamsSep marks the params followed by a colon.
	ParamsSep *utils.StaticBitSet
	idx       int
}

// next return pull function that could be used to get attr parsed by this
// parser. ok is false once the params are exhausted.
func (p *Parser) next() func() (attr Attribute, ok bool) {
	p.idx = 0
	return func() (Attribute, bool) {
		if p.idx >= len(p.Params) {
			// If we are at the index zero, it means we must have an empty
			// list and an empty list implicitly means a reset.
			if p.idx == 0 && len(p.Params) == 0 {
				p.idx += 1
				return Attribute{Type: AttributeTypeUnset}, true
			}
			return Attribute{}, false
		}
		start := p.idx
		slice := p.Params[p.idx:]
		colon := p.isColon()
		p.idx += 1
		if colon {
			switch slice[0] {
			// Underline style and extended colors take sub parameters.
			case 4, 38, 48, 58:
				return p.parseSubParams(start), true
			default:
				// otherwise, consume all the colon separated values.
				p.consumeUnknownColon()
				return p.unknown(start), true
			}
		}

		// Based on: https://en.wikipedia.org/wiki/ANSI_escape_code
		switch code := slice[0]; {
		case code == 0:
			return Attribute{Type: AttributeTypeUnset}, true
		case code == 1:
			return Attribute{Type: AttributeTypeBold}, true
		case code == 2:
			return Attribute{Type: AttributeTypeFaint}, true
		case code == 3:
			return Attribute{Type: AttributeTypeItalic}, true
		case code == 4:
			return Attribute{Type: AttributeTypeUnderline, Underline: UnderlineTypeSingle}, true
		case code == 5, code == 6:
			return Attribute{Type: AttributeTypeBlink}, true
		case code == 7:
			return Attribute{Type: AttributeTypeInverse}, true
		case code == 8:
			return Attribute{Type: AttributeTypeInvisible}, true
		case code == 9:
			return Attribute{Type: AttributeTypeStrikethrough}, true
		case code >= 10 && code <= 19:
			return Attribute{Type: AttributeTypeFont, Font: code - 10}, true
		case code == 20:
			return Attribute{Type: AttributeTypeFraktur}, true
		case code == 21:
			return Attribute{Type: AttributeTypeUnderline, Underline: UnderlineTypeDouble}, true
		case code == 22:
			return Attribute{Type: AttributeTypeResetBold}, true
		case code == 23:
			return Attribute{Type: AttributeTypeResetItalic}, true
		case code == 24:
			return Attribute{Type: AttributeTypeResetUnderline}, true
		case code == 25:
			return Attribute{Type: AttributeTypeResetBlink}, true
		case code == 26:
			return Attribute{Type: AttributeTypeProportionalSpacing}, true
		case code == 27:
			return Attribute{Type: AttributeTypeResetInverse}, true
		case code == 28:
			return Attribute{Type: AttributeTypeResetInvisible}, true
		case code == 29:
			return Attribute{Type: AttributeTypeResetStrikethrough}, true
		case code >= 30 && code <= 37:
			return baseColor(AttributeTypeFg, color.BaseColor(code-30), color.FgOffset), true
		case code == 39:
			return Attribute{Type: AttributeTypeResetFg}, true
		case code >= 40 && code <= 47:
			return baseColor(AttributeTypeBg, color.BaseColor(code-40), color.BgOffset), true
		case code == 49:
			return Attribute{Type: AttributeTypeResetBg}, true
		case code == 50:
			return Attribute{Type: AttributeTypeResetProportionalSpacing}, true
		case code == 51:
			return Attribute{Type: AttributeTypeFramed}, true
		case code == 52:
			return Attribute{Type: AttributeTypeEncircled}, true
		case code == 53:
			return Attribute{Type: AttributeTypeOverline}, true
		case code == 54:
			return Attribute{Type: AttributeTypeResetFramed}, true
		case code == 55:
			return Attribute{Type: AttributeTypeResetOverline}, true
		case code == 38, code == 48, code == 58:
			return p.parseExtendedColor(start), true
		case code == 59:
			return Attribute{Type: AttributeTypeResetUnderlineColor}, true
		case code == 73:
			return Attribute{Type: AttributeTypeSuperscript}, true
		case code == 74:
			return Attribute{Type: AttributeTypeSubscript}, true
		case code == 75:
			return Attribute{Type: AttributeTypeResetSuperSubscript}, true
		case code >= 90 && code <= 97:
			return baseColor(AttributeTypeFg, color.BaseColor(code-90)+color.BrightDelta, color.FgOffset), true
		case code >= 100 && code <= 107:
			return baseColor(AttributeTypeBg, color.BaseColor(code-100)+color.BrightDelta, color.BgOffset), true
		}
		return p.unknown(start), true
	}
}

// Iter returns an iterator over the attributes of the params.
func (p *Parser) Iter() iter.Seq[Attribute] {
	return func(yield func(Attribute) bool) {
		next := p.next()
		for {
			attr, ok := next()
			if !ok || !yield(attr) {
				return
			}
		}
	}
}

func baseColor(t AttributeType, c color.BaseColor, offset color.Offset) Attribute {
	return Attribute{Type: t, Color: color.NewBase(c, offset)}
}

func colorType(code uint16) AttributeType {
	switch code {
	case 38:
		return AttributeTypeFg
	case 48:
		return AttributeTypeBg
	default:
		return AttributeTypeUnderlineColor
	}
}

// parseSubParams handles the colon form: 4:N, 38:5:N, 38:2:R:G:B and
// 38:2:CS:R:G:B where CS is an ignored color space id.
func (p *Parser) parseSubParams(start int) Attribute {
	p.consumeUnknownColon()
	group := p.Params[start:p.idx]

	if group[0] == 4 {
		// based on: https://gitlab.com/gnachman/iterm2/-/issues/6382
		if len(group) != 2 {
			return p.unknown(start)
		}
		switch group[1] {
		case 0:
			return Attribute{Type: AttributeTypeResetUnderline}
		case 2:
			return Attribute{Type: AttributeTypeUnderline, Underline: UnderlineTypeDouble}
		case 3:
			return Attribute{Type: AttributeTypeUnderline, Underline: UnderlineTypeCurly}
		case 4:
			return Attribute{Type: AttributeTypeUnderline, Underline: UnderlineTypeDotted}
		case 5:
			return Attribute{Type: AttributeTypeUnderline, Underline: UnderlineTypeDashed}
		default:
			// For unknown underline styles, just render
			// a single underline.
			return Attribute{Type: AttributeTypeUnderline, Underline: UnderlineTypeSingle}
		}
	}

	t := colorType(group[0])
	switch {
	case len(group) == 3 && group[1] == 5:
		return Attribute{Type: t, Color: color.NewIndexed(clamp(group[2]))}
	case len(group) == 5 && group[1] == 2:
		return Attribute{Type: t, Color: rgb(group[2:5])}
	case len(group) == 6 && group[1] == 2:
		return Attribute{Type: t, Color: rgb(group[3:6])}
	default:
		return p.unknown(start)
	}
}

// parseExtendedColor handles the semicolon form: 38;5;N and 38;2;R;G;B.
// An incomplete color consumes the rest of the params.
func (p *Parser) parseExtendedColor(start int) Attribute {
	slice := p.Params[start:]
	t := colorType(slice[0])
	if len(slice) >= 3 && slice[1] == 5 {
		p.idx += 2
		return Attribute{Type: t, Color: color.NewIndexed(clamp(slice[2]))}
	}
	if len(slice) >= 5 && slice[1] == 2 {
		p.idx += 4
		return Attribute{Type: t, Color: rgb(slice[2:5])}
	}
	p.idx = len(p.Params)
	return p.unknown(start)
}

func (p *Parser) unknown(start int) Attribute {
	return Attribute{
		Type:    AttributeTypeUnknown,
		Unknown: p.Params[start:p.idx],
	}
}

// perform truncate data as we are working with uint16 the value should be 0
// to 255, we don't know the behavior of term if the value is out of range.
func clamp(v uint16) uint8 {
	return uint8(min(math.MaxUint8, v))
}

func rgb(values []uint16) color.Spec {
	return color.NewRGB(clamp(values[0]), clamp(values[1]), clamp(values[2]))
}

// Returns true if the present position has a colon separator.
// This always returns false for the last value since it has no
// separator.
func (p *Parser) isColon() bool {
	return p.isColonAt(p.idx)
}

func (p *Parser) isColonAt(idx int) bool {
	// The `- 1` here is because the last value has no separator.
	if p.ParamsSep == nil || idx < 0 || idx >= len(p.Params)-1 || idx >= p.ParamsSep.Len() {
		return false
	}
	return p.ParamsSep.IsSet(idx)
}

// Consumes all the remaining parameters joined by a colon to the one
// before the current position.
func (p *Parser) consumeUnknownColon() {
	for p.isColonAt(p.idx - 1) {
		p.idx += 1
	}
}
