package cssom

import (
	"image/color"
	"strings"
)

// ParseHexColor parses a color in hash notation, e.g. "#fff" or "#ff000080".
// The leading '#' is optional.
func ParseHexColor(s string) (color.RGBA, bool) {
	s = strings.TrimPrefix(s, "#")
	var digits [8]uint8
	switch len(s) {
	case 3, 4:
		for i := 0; i < len(s); i++ {
			d, ok := hexDigit(s[i])
			if !ok {
				return color.RGBA{}, false
			}
			digits[2*i], digits[2*i+1] = d, d
		}
	case 6, 8:
		for i := 0; i < len(s); i++ {
			d, ok := hexDigit(s[i])
			if !ok {
				return color.RGBA{}, false
			}
			digits[i] = d
		}
	default:
		return color.RGBA{}, false
	}
	c := color.RGBA{
		R: digits[0]<<4 | digits[1],
		G: digits[2]<<4 | digits[3],
		B: digits[4]<<4 | digits[5],
		A: 0xff,
	}
	if len(s) == 4 || len(s) == 8 {
		c.A = digits[6]<<4 | digits[7]
	}
	return c, true
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case '0' <= b && b <= '9':
		return b - '0', true
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10, true
	case 'A' <= b && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
