package color

import "fmt"

type SpecType uint8

const (
	SpecTypeBase SpecType = iota
	SpecTypeIndexed
	SpecTypeRGB
)

// Spec is one color choice: a basic color with its fg/bg offset, an entry
// of the 256 color palette or a 24-bit value. Only the fields of Type are
// meaningful.
type Spec struct {
	Type   SpecType
	Base   BaseColor
	Offset Offset
	Index  uint8
	RGB    RGB
}

func NewBase(c BaseColor, offset Offset) Spec {
	return Spec{Type: SpecTypeBase, Base: c, Offset: offset}
}

func NewIndexed(index uint8) Spec {
	return Spec{Type: SpecTypeIndexed, Index: index}
}

func NewRGB(r, g, b uint8) Spec {
	return Spec{Type: SpecTypeRGB, RGB: RGB{r, g, b}}
}

func (s Spec) String() string {
	switch s.Type {
	case SpecTypeBase:
		return fmt.Sprintf("%s+%d", s.Base, s.Offset)
	case SpecTypeIndexed:
		return fmt.Sprintf("256:%d", s.Index)
	case SpecTypeRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", s.RGB.R, s.RGB.G, s.RGB.B)
	default:
		return "unknown"
	}
}
