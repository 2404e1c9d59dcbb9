package vtscreen

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// srgbToLinear applies the sRGB electro-optical transfer function to one
// channel in [0,1]. go-colorful's Color type stores sRGB-encoded
// components directly (it does the inverse transform internally for its
// own Lab/Luv conversions), so the transform is written out here rather
// than relied upon indirectly — it's the one place the WCAG formula's
// exact constants have to be spelled out rather than borrowed.
func srgbToLinear(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// RelativeLuminance computes the WCAG 2.0 relative luminance of c using
// the sRGB component transform and the 0.2126/0.7152/0.0722 coefficients
// (spec.md §4.3).
func RelativeLuminance(c color.RGBA) float64 {
	cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	r := srgbToLinear(cf.R)
	g := srgbToLinear(cf.G)
	b := srgbToLinear(cf.B)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio computes the WCAG contrast ratio between two colors:
// (L_light + 0.05) / (L_dark + 0.05).
func ContrastRatio(a, b color.RGBA) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	lighter, darker := la, lb
	if lb > la {
		lighter, darker = lb, la
	}
	return (lighter + 0.05) / (darker + 0.05)
}

// PerceivedLuminance computes the simpler W3C AERT luminance using
// coefficients 0.299/0.587/0.114, used for quick "is this color light or
// dark" decisions (e.g. reverse-video defaults) where the full WCAG
// formula's gamma correction is unnecessary.
func PerceivedLuminance(c color.RGBA) float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}
