package term

import (
	"image"
	"image/color"
	"math"

	"github.com/phanxgames/yuletree"
)

// Framebuffer is a software yuletree.Surface. Every terminal cell holds two
// vertically stacked pixels, so a W×H cell grid needs a W×2H framebuffer.
type Framebuffer struct {
	Width, Height int
	pix           []yuletree.Color
	frames        int
}

var _ yuletree.Surface = (*Framebuffer)(nil)

// NewFramebuffer allocates a framebuffer of w×h pixels.
func NewFramebuffer(w, h int) *Framebuffer {
	fb := &Framebuffer{}
	fb.SetSize(w, h)
	return fb
}

func (fb *Framebuffer) Size() (int, int) { return fb.Width, fb.Height }

func (fb *Framebuffer) SetSize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	fb.Width, fb.Height = w, h
	if n := w * h; cap(fb.pix) >= n {
		fb.pix = fb.pix[:n]
	} else {
		fb.pix = make([]yuletree.Color, n)
	}
}

func (fb *Framebuffer) Clear(c yuletree.Color) {
	if len(fb.pix) == 0 {
		return
	}
	// copy-doubling fill
	fb.pix[0] = c
	for i := 1; i < len(fb.pix); i *= 2 {
		copy(fb.pix[i:], fb.pix[:i])
	}
}

// At returns the pixel at (x, y), or the zero color outside the buffer.
func (fb *Framebuffer) At(x, y int) yuletree.Color {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return yuletree.Color{}
	}
	return fb.pix[y*fb.Width+x]
}

func (fb *Framebuffer) set(x, y int, c yuletree.Color) {
	fb.pix[y*fb.Width+x] = c
}

// FillTriangle fills every pixel whose center lies inside the triangle.
// Winding does not matter; culling happened upstream.
func (fb *Framebuffer) FillTriangle(a, b, c yuletree.Vec2, col yuletree.Color) {
	minX := int(math.Max(0, math.Floor(min3(a.X(), b.X(), c.X()))))
	maxX := int(math.Min(float64(fb.Width-1), math.Ceil(max3(a.X(), b.X(), c.X()))))
	minY := int(math.Max(0, math.Floor(min3(a.Y(), b.Y(), c.Y()))))
	maxY := int(math.Min(float64(fb.Height-1), math.Ceil(max3(a.Y(), b.Y(), c.Y()))))
	if minX > maxX || minY > maxY {
		return
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			u, v, w, ok := barycentric(a, b, c, px, py)
			if !ok {
				return // degenerate
			}
			if u < 0 || v < 0 || w < 0 {
				continue
			}
			fb.set(x, y, col)
		}
	}
}

// FillPoint fills a size×size square centered on p, at least one pixel.
func (fb *Framebuffer) FillPoint(p yuletree.Vec2, size float64, col yuletree.Color) {
	half := max(size, 1) / 2
	x0 := max(int(math.Floor(p.X()-half+0.5)), 0)
	x1 := min(int(math.Floor(p.X()+half-0.5)), fb.Width-1)
	y0 := max(int(math.Floor(p.Y()-half+0.5)), 0)
	y1 := min(int(math.Floor(p.Y()+half-0.5)), fb.Height-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			fb.set(x, y, col)
		}
	}
}

func (fb *Framebuffer) Present() {
	fb.frames++
}

// Frames returns the number of presented frames.
func (fb *Framebuffer) Frames() int { return fb.frames }

// Image copies the framebuffer into an NRGBA image for screenshots.
func (fb *Framebuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b, a := fb.At(x, y).RGBA8()
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: a})
		}
	}
	return img
}

// barycentric returns the weights of p relative to a, b and c. ok is false
// for zero-area triangles.
func barycentric(a, b, c yuletree.Vec2, px, py float64) (u, v, w float64, ok bool) {
	v0x, v0y := c.X()-a.X(), c.Y()-a.Y()
	v1x, v1y := b.X()-a.X(), b.Y()-a.Y()
	v2x, v2y := px-a.X(), py-a.Y()

	dot00 := v0x*v0x + v0y*v0y
	dot01 := v0x*v1x + v0y*v1y
	dot02 := v0x*v2x + v0y*v2y
	dot11 := v1x*v1x + v1y*v1y
	dot12 := v1x*v2x + v1y*v2y

	denom := dot00*dot11 - dot01*dot01
	if denom == 0 {
		return 0, 0, 0, false
	}
	inv := 1 / denom
	w = (dot11*dot02 - dot01*dot12) * inv
	v = (dot00*dot12 - dot01*dot02) * inv
	return 1 - v - w, v, w, true
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
