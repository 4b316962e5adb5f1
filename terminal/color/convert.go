package color

import "math"

// RGBTo256 approximates c with the closest entry of the 6x6x6 cube or, for
// grays, of the gray ramp.
func RGBTo256(c RGB) uint8 {
	if c.R == c.G && c.G == c.B {
		switch {
		case c.R < 8:
			return 16
		case c.R > 248:
			return 231
		}
		return uint8(math.Round(float64(c.R-8)/247*24)) + 232
	}

	return 16 +
		36*scale(c.R) +
		6*scale(c.G) +
		scale(c.B)
}

func scale(v uint8) uint8 {
	return uint8(math.Round(float64(v) / 255 * 5))
}

// Index256ToBase approximates a 256 palette entry with one of the 16 basic
// colors.
func Index256ToBase(index uint8) BaseColor {
	switch {
	case index <= 7:
		return BaseColor(index)
	case index <= 15:
		return BaseColor(index-8) + BrightDelta
	}

	var r, g, b float64
	if index >= 232 {
		r = (float64(index-232)*10 + 8) / 255
		g, b = r, r
	} else {
		code := int(index) - 16
		rem := code % 36
		r = float64(code/36) / 5
		g = float64(rem/6) / 5
		b = float64(rem%6) / 5
	}

	value := max(r, g, b) * 2
	if value == 0 {
		return Black
	}

	result := BaseColor(int(math.Round(b))<<2 | int(math.Round(g))<<1 | int(math.Round(r)))
	if value == 2 {
		return result + BrightDelta
	}
	return result
}

// RGBToBase approximates c with one of the 16 basic colors.
func RGBToBase(c RGB) BaseColor {
	return Index256ToBase(RGBTo256(c))
}
