package vtscreen

import "image/color"

// DefaultPalette is the standard 256-color palette: 16 named colors (0-15),
// a 6x6x6 color cube (16-231), and a 24-step grayscale ramp (232-255).
var DefaultPalette = [256]color.RGBA{
	// Standard colors (0-7)
	{0, 0, 0, 255},
	{205, 49, 49, 255},
	{13, 188, 121, 255},
	{229, 229, 16, 255},
	{36, 114, 200, 255},
	{188, 63, 188, 255},
	{17, 168, 205, 255},
	{229, 229, 229, 255},

	// Bright colors (8-15)
	{102, 102, 102, 255},
	{241, 76, 76, 255},
	{35, 209, 139, 255},
	{245, 245, 67, 255},
	{59, 142, 234, 255},
	{214, 112, 214, 255},
	{41, 184, 219, 255},
	{255, 255, 255, 255},
}

func init() {
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				DefaultPalette[i] = color.RGBA{R: uint8(r * 51), G: uint8(g * 51), B: uint8(b * 51), A: 255}
				i++
			}
		}
	}
	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		DefaultPalette[232+j] = color.RGBA{gray, gray, gray, 255}
	}
}

// DefaultForeground is the default text color.
var DefaultForeground = color.RGBA{229, 229, 229, 255}

// DefaultBackground is the default background color.
var DefaultBackground = color.RGBA{0, 0, 0, 255}

// DefaultCursorColor is the default cursor rendering color.
var DefaultCursorColor = color.RGBA{229, 229, 229, 255}

// ColorKind distinguishes how a [Color] resolves to RGB. Stable ordinal
// values per spec.md §6 since ColorKind crosses the formatter/render-state
// boundary.
type ColorKind uint8

const (
	ColorDefault ColorKind = 0
	ColorPalette ColorKind = 1
	ColorRGB     ColorKind = 2
)

// Color is a small value type representing "default", a palette index, or
// a truecolor RGB value. It is comparable with ==, which backs the
// formatter's "only re-emit SGR on style change" rule (spec.md §4.5).
type Color struct {
	Kind    ColorKind
	Palette uint8
	RGB     color.RGBA
}

// DefaultColor is the unset/"use terminal default" color.
var DefaultColor = Color{Kind: ColorDefault}

// PaletteColor constructs a palette-indexed color.
func PaletteColor(idx uint8) Color {
	return Color{Kind: ColorPalette, Palette: idx}
}

// RGBColor constructs a truecolor value.
func RGBColor(c color.RGBA) Color {
	return Color{Kind: ColorRGB, RGB: c}
}

// Resolve converts a Color to a concrete RGBA using the given palette and
// default fallback, matching the teacher's resolveDefaultColor/
// resolveNamedColor split (colors.go) generalized to the new Color sum
// type.
func (c Color) Resolve(palette *Palette, fallback color.RGBA) color.RGBA {
	switch c.Kind {
	case ColorPalette:
		return palette.At(c.Palette)
	case ColorRGB:
		return c.RGB
	default:
		return fallback
	}
}

// Palette is a mutable 256-entry RGB table, the basis for [DynamicPalette].
type Palette struct {
	entries [256]color.RGBA
}

// NewPalette returns a palette initialized to [DefaultPalette].
func NewPalette() *Palette {
	p := &Palette{}
	p.entries = DefaultPalette
	return p
}

// At returns the color at index i.
func (p *Palette) At(i uint8) color.RGBA {
	return p.entries[i]
}

// Set replaces the color at index i.
func (p *Palette) Set(i uint8, c color.RGBA) {
	p.entries[i] = c
}

// Entries returns a copy of the full 256-entry table, used by
// [RenderState.Update] which must own an independent snapshot.
func (p *Palette) Entries() [256]color.RGBA {
	return p.entries
}

// DynamicPalette tracks which palette indices have been overridden via
// OSC 4, so that [DynamicPalette.ChangeDefault] (OSC 104's counterpart,
// the default-theme swap) can preserve user overrides while resetting
// everything else — spec.md §4.3/§8.
type DynamicPalette struct {
	current     [256]color.RGBA
	original    [256]color.RGBA
	changedMask [256]bool
}

// NewDynamicPalette seeds both current and original from def.
func NewDynamicPalette(def [256]color.RGBA) *DynamicPalette {
	return &DynamicPalette{current: def, original: def}
}

// Current returns the color currently in effect at index i.
func (d *DynamicPalette) Current(i uint8) color.RGBA {
	return d.current[i]
}

// Set overrides index i (OSC 4 set).
func (d *DynamicPalette) Set(i uint8, c color.RGBA) {
	d.current[i] = c
	d.changedMask[i] = true
}

// Reset restores index i to its original value (OSC 104 with an index).
func (d *DynamicPalette) Reset(i uint8) {
	d.current[i] = d.original[i]
	d.changedMask[i] = false
}

// ResetAll restores every index to its original value (bare OSC 104).
func (d *DynamicPalette) ResetAll() {
	d.current = d.original
	d.changedMask = [256]bool{}
}

// ChangeDefault replaces the underlying default theme. Indices the caller
// never overrode adopt newDefault[i]; indices present in the changed mask
// keep their current, overridden value. This is the exact rule spec.md
// §4.3 and §8 require for DynamicPalette.changeDefault.
func (d *DynamicPalette) ChangeDefault(newDefault [256]color.RGBA) {
	for i := 0; i < 256; i++ {
		d.original[i] = newDefault[i]
		if !d.changedMask[i] {
			d.current[i] = newDefault[i]
		}
	}
}

// ChangedMask reports which indices carry a live override.
func (d *DynamicPalette) ChangedMask() [256]bool {
	return d.changedMask
}

// DynamicRGB stores an optional override over an optional default, used
// for single-slot colors like foreground/background/cursor (OSC 10/11/12).
type DynamicRGB struct {
	Override *color.RGBA
	Default  *color.RGBA
}

// Resolve returns the override if set, else the default, else fallback.
func (d *DynamicRGB) Resolve(fallback color.RGBA) color.RGBA {
	if d.Override != nil {
		return *d.Override
	}
	if d.Default != nil {
		return *d.Default
	}
	return fallback
}

// SetOverride sets an explicit override (OSC 10/11/12 set).
func (d *DynamicRGB) SetOverride(c color.RGBA) {
	cp := c
	d.Override = &cp
}

// ResetOverride clears the override (OSC 110/111/112).
func (d *DynamicRGB) ResetOverride() {
	d.Override = nil
}
