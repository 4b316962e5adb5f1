package color

import "github.com/nevware21/chromacon/terminal/utils"

// BaseColor is an index into the 16 basic terminal colors. The bright
// variants sit BrightDelta above their normal counterpart so that
// offset + BaseColor is the SGR parameter: 30 + Red = 31,
// 30 + BrightRed = 91.
type BaseColor uint8

const (
	Black BaseColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

const BrightDelta = 60

const (
	Gray BaseColor = iota + BrightDelta
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite

	Grey = Gray
)

// Offset turns a BaseColor into a foreground or background parameter.
type Offset uint8

const (
	FgOffset Offset = 30
	BgOffset Offset = 40
)

// IsBright reports whether c is one of the bright variants.
func (c BaseColor) IsBright() bool {
	return c >= Gray && c <= BrightWhite
}

// Valid reports whether c names one of the 16 basic colors.
func (c BaseColor) Valid() bool {
	return c <= White || c.IsBright()
}

// Index256 returns the position of c in the 256 color palette.
func (c BaseColor) Index256() uint8 {
	if c.IsBright() {
		return uint8(c-BrightDelta) + 8
	}
	return uint8(c)
}

var baseNames = map[BaseColor]string{
	Black:         "black",
	Red:           "red",
	Green:         "green",
	Yellow:        "yellow",
	Blue:          "blue",
	Magenta:       "magenta",
	Cyan:          "cyan",
	White:         "white",
	Gray:          "gray",
	BrightRed:     "brightRed",
	BrightGreen:   "brightGreen",
	BrightYellow:  "brightYellow",
	BrightBlue:    "brightBlue",
	BrightMagenta: "brightMagenta",
	BrightCyan:    "brightCyan",
	BrightWhite:   "brightWhite",
}

func (c BaseColor) String() string {
	if name, ok := baseNames[c]; ok {
		return name
	}
	return "unknown"
}

// RGB is a struct that represents an RGB color.
type RGB struct {
	R, G, B uint8
}

// Palette is the 256 color palette.
type Palette [256]RGB

// DefaultPalette is the xterm palette: 16 named colors, the 6x6x6 cube and
// the 24 step gray ramp.
var DefaultPalette = func() Palette {
	var result Palette

	// Named values:
	var i int
	for ; i < 16; i++ {
		result[i] = namedRGB[i]
	}
	// Cube
	utils.Assert(i == 16)

	var r, g, b uint8
	for r = range 6 {
		for g = range 6 {
			for b = range 6 {
				result[i] = RGB{cubeLevel(r), cubeLevel(g), cubeLevel(b)}
				i++
			}
		}
	}
	// Gray ramp
	utils.Assert(i == 232) // 16+6*6*6
	for ; i < len(result); i++ {
		value := uint8((i-232)*10 + 8)
		result[i] = RGB{value, value, value}
	}

	return result
}()

var namedRGB = [16]RGB{
	{0x00, 0x00, 0x00},
	{0xCD, 0x00, 0x00},
	{0x00, 0xCD, 0x00},
	{0xCD, 0xCD, 0x00},
	{0x00, 0x00, 0xEE},
	{0xCD, 0x00, 0xCD},
	{0x00, 0xCD, 0xCD},
	{0xE5, 0xE5, 0xE5},
	{0x7F, 0x7F, 0x7F},
	{0xFF, 0x00, 0x00},
	{0x00, 0xFF, 0x00},
	{0xFF, 0xFF, 0x00},
	{0x5C, 0x5C, 0xFF},
	{0xFF, 0x00, 0xFF},
	{0x00, 0xFF, 0xFF},
	{0xFF, 0xFF, 0xFF},
}

func cubeLevel(v uint8) uint8 {
	if v == 0 {
		return 0
	}
	return v*40 + 55
}
