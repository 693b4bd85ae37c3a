package yuletree

import (
	"fmt"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at surface submission time.
type Color struct {
	R, G, B, A float64
}

// Common colors.
var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

// RGB returns an opaque color from a 0xRRGGBB value.
func RGB(hex uint32) Color {
	return Color{
		R: float64(hex>>16&0xff) / 255,
		G: float64(hex>>8&0xff) / 255,
		B: float64(hex&0xff) / 255,
		A: 1,
	}
}

// ParseHex parses a "#rrggbb" or "#rgb" string into an opaque Color.
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// MustParseHex is like ParseHex but panics on malformed input. Intended for
// package-level palette tables.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic("yuletree: " + err.Error())
	}
	return c
}

// Hex returns the color formatted as "#rrggbb". Alpha is dropped.
func (c Color) Hex() string {
	return c.toColorful().Clamped().Hex()
}

// Lerp blends c toward to by t in RGB space. Alpha is interpolated linearly.
func (c Color) Lerp(to Color, t float64) Color {
	m := c.toColorful().BlendRgb(to.toColorful(), t)
	return Color{R: m.R, G: m.G, B: m.B, A: c.A + (to.A-c.A)*t}
}

// Scale multiplies the RGB components by s, leaving alpha unchanged.
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s, c.A}
}

// Clamped returns c with every component clamped to [0, 1].
func (c Color) Clamped() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.A)}
}

// RGBA8 returns the clamped color as 8-bit straight-alpha components.
func (c Color) RGBA8() (r, g, b, a uint8) {
	k := c.Clamped()
	return uint8(k.R*255 + 0.5), uint8(k.G*255 + 0.5), uint8(k.B*255 + 0.5), uint8(k.A*255 + 0.5)
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Range is a general-purpose min/max range.
// Used by the bulb scatter and the particle field generator.
type Range struct {
	Min, Max float64
}

// Sample returns a uniformly distributed value in [Min, Max) drawn from rng.
func (r Range) Sample(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeGroup  NodeType = iota // container with no visual output
	NodeTypeMesh                   // renders indexed triangles with a standard material
	NodeTypePoints                 // renders a particle field as screen-aligned squares
)

func (t NodeType) String() string {
	switch t {
	case NodeTypeGroup:
		return "group"
	case NodeTypeMesh:
		return "mesh"
	case NodeTypePoints:
		return "points"
	default:
		return fmt.Sprintf("NodeType(%d)", uint8(t))
	}
}
