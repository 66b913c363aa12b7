// Package colorutil provides shared color utilities for the twin editor.
package colorutil

import (
	"image/color"
	"strconv"
	"strings"
)

// Common colors used by the canvas overlays.
var (
	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Blue   = color.RGBA{R: 0x1E, G: 0x88, B: 0xE5, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

// ParseHex parses "#rgb" and "#rrggbb" color strings.
func ParseHex(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, false
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, true
}

// FormatHex renders a color as "#rrggbb", discarding alpha.
func FormatHex(c color.RGBA) string {
	const digits = "0123456789abcdef"
	return string([]byte{
		'#',
		digits[c.R>>4], digits[c.R&0xf],
		digits[c.G>>4], digits[c.G&0xf],
		digits[c.B>>4], digits[c.B&0xf],
	})
}
