package vtscreen

import (
	"errors"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidFormat is returned by [ParseRGB] for any malformed color
// string. spec.md §4.3 deliberately collapses every parse failure mode
// into one error kind.
var ErrInvalidFormat = errors.New("vtscreen: invalid color format")

// ParseRGB parses an X resource color string in one of four forms:
//
//   - "rgb:h/h/h" — 1 to 4 hex digits per channel, scaled to 8 bits via
//     floor(value * 255 / (16^n - 1)).
//   - "rgbi:f/f/f" — floating point channels in [0.0, 1.0], scaled by 255.
//   - "#hex" — 3, 6, 9, or 12 hex digits total, channels split evenly.
//   - an X11 color name (case-insensitive, whitespace-trimmed).
func ParseRGB(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "rgb:"):
		return parseRGBColon(s[len("rgb:"):])
	case strings.HasPrefix(s, "rgbi:"):
		return parseRGBIColon(s[len("rgbi:"):])
	case strings.HasPrefix(s, "#"):
		return parseHexColor(s[1:])
	default:
		return lookupX11Color(s)
	}
}

func parseRGBColon(s string) (color.RGBA, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return color.RGBA{}, ErrInvalidFormat
	}
	var out [3]uint8
	for i, p := range parts {
		if len(p) < 1 || len(p) > 4 {
			return color.RGBA{}, ErrInvalidFormat
		}
		v, err := strconv.ParseUint(p, 16, 32)
		if err != nil {
			return color.RGBA{}, ErrInvalidFormat
		}
		maxVal := uint64(1)<<(4*len(p)) - 1
		out[i] = uint8((uint64(v) * 255) / maxVal)
	}
	return color.RGBA{R: out[0], G: out[1], B: out[2], A: 255}, nil
}

func parseRGBIColon(s string) (color.RGBA, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return color.RGBA{}, ErrInvalidFormat
	}
	var out [3]uint8
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil || f < 0 || f > 1 {
			return color.RGBA{}, ErrInvalidFormat
		}
		out[i] = uint8(f*255 + 0.5)
	}
	return color.RGBA{R: out[0], G: out[1], B: out[2], A: 255}, nil
}

func parseHexColor(s string) (color.RGBA, error) {
	n := len(s)
	if n != 3 && n != 6 && n != 9 && n != 12 {
		return color.RGBA{}, ErrInvalidFormat
	}
	if n%3 != 0 {
		return color.RGBA{}, ErrInvalidFormat
	}
	chunk := n / 3
	var out [3]uint8
	for i := 0; i < 3; i++ {
		piece := s[i*chunk : (i+1)*chunk]
		v, err := strconv.ParseUint(piece, 16, 32)
		if err != nil {
			return color.RGBA{}, ErrInvalidFormat
		}
		maxVal := uint64(1)<<(4*chunk) - 1
		out[i] = uint8((uint64(v) * 255) / maxVal)
	}
	return color.RGBA{R: out[0], G: out[1], B: out[2], A: 255}, nil
}

// FormatHex renders c as "#RRGGBB", the canonical round-trip form required
// by spec.md §8 (RGB parse round trip).
func FormatHex(c color.RGBA) string {
	cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	return cf.Hex()
}
