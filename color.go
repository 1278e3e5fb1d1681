package charatlas

import (
	"image/color"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// colorKind discriminates the three ways a cell can reference a color.
type colorKind uint8

const (
	colorDefault colorKind = iota
	colorIndexed
	colorInverted
)

// ColorRef references a color without naming concrete channel values.
// A cell's attributes carry ColorRefs; the Theme resolves them at
// rasterization time. The zero value is the plain theme default.
//
// The closed three-way split (default / indexed / inverted default)
// replaces the sentinel integer ranges terminal screen buffers typically
// use, so resolution is exhaustive rather than range-based.
type ColorRef struct {
	kind  colorKind
	index uint8
}

// DefaultColor references the theme's plain default foreground or
// background, depending on which channel it is used for.
func DefaultColor() ColorRef { return ColorRef{} }

// Indexed references entry i of the 256-color ANSI palette.
func Indexed(i uint8) ColorRef { return ColorRef{kind: colorIndexed, index: i} }

// InvertedDefault references the theme default with foreground and
// background swapped. Screen buffers use it for cursor and reverse-video
// cells.
func InvertedDefault() ColorRef { return ColorRef{kind: colorInverted} }

// String returns a compact textual form used in cache key encodings:
// "d" for default, "x" for inverted default, the decimal index otherwise.
// None of the forms can contain the key field separator.
func (c ColorRef) String() string {
	switch c.kind {
	case colorIndexed:
		return strconv.Itoa(int(c.index))
	case colorInverted:
		return "x"
	default:
		return "d"
	}
}

// Theme holds the resolved colors a rasterizer draws with: the default
// foreground/background pair and the 256-entry indexed ANSI palette.
type Theme struct {
	Foreground color.NRGBA
	Background color.NRGBA
	ANSI       [256]color.NRGBA
}

// ResolveForeground maps a foreground ColorRef to a concrete color:
// inverted default selects the theme background, an index selects the
// palette entry, and everything else the theme foreground.
func (t *Theme) ResolveForeground(ref ColorRef) color.NRGBA {
	switch ref.kind {
	case colorInverted:
		return t.Background
	case colorIndexed:
		return t.ANSI[ref.index]
	default:
		return t.Foreground
	}
}

// ResolveBackground maps a background ColorRef to a concrete color.
// The inverted-default case selects the theme foreground, mirroring
// ResolveForeground.
func (t *Theme) ResolveBackground(ref ColorRef) color.NRGBA {
	switch ref.kind {
	case colorInverted:
		return t.Foreground
	case colorIndexed:
		return t.ANSI[ref.index]
	default:
		return t.Background
	}
}

// base16 holds the standard entries 0-15 (normal and bright variants).
var base16 = [16]color.NRGBA{
	{0x00, 0x00, 0x00, 0xff}, // black
	{0xcd, 0x31, 0x31, 0xff}, // red
	{0x0d, 0xbc, 0x79, 0xff}, // green
	{0xe5, 0xe5, 0x10, 0xff}, // yellow
	{0x24, 0x72, 0xc8, 0xff}, // blue
	{0xbc, 0x3f, 0xbc, 0xff}, // magenta
	{0x11, 0xa8, 0xcd, 0xff}, // cyan
	{0xe5, 0xe5, 0xe5, 0xff}, // white
	{0x66, 0x66, 0x66, 0xff}, // bright black
	{0xf1, 0x4c, 0x4c, 0xff}, // bright red
	{0x23, 0xd1, 0x8b, 0xff}, // bright green
	{0xf5, 0xf5, 0x43, 0xff}, // bright yellow
	{0x3b, 0x8e, 0xea, 0xff}, // bright blue
	{0xd6, 0x70, 0xd6, 0xff}, // bright magenta
	{0x29, 0xb8, 0xdb, 0xff}, // bright cyan
	{0xe5, 0xe5, 0xe5, 0xff}, // bright white
}

// DefaultTheme returns a dark theme with the standard xterm 256-color
// palette: 16 named colors, a 6x6x6 color cube (entries 16-231), and a
// 24-step grayscale ramp (entries 232-255).
func DefaultTheme() Theme {
	t := Theme{
		Foreground: color.NRGBA{0xff, 0xff, 0xff, 0xff},
		Background: color.NRGBA{0x00, 0x00, 0x00, 0xff},
	}
	copy(t.ANSI[:16], base16[:])

	// Color cube: channel level v in 0..5 maps to 0 for v==0, else 55+40v.
	level := func(v int) float64 {
		if v == 0 {
			return 0
		}
		return float64(55+40*v) / 255
	}
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				c := colorful.Color{R: level(r), G: level(g), B: level(b)}
				cr, cg, cb := c.RGB255()
				t.ANSI[i] = color.NRGBA{cr, cg, cb, 0xff}
				i++
			}
		}
	}

	// Grayscale ramp: 8, 18, 28, ... 238.
	for s := 0; s < 24; s++ {
		v := float64(8+10*s) / 255
		c := colorful.Color{R: v, G: v, B: v}
		cr, cg, cb := c.RGB255()
		t.ANSI[i] = color.NRGBA{cr, cg, cb, 0xff}
		i++
	}

	return t
}
