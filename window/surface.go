package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/yuletree"
)

// Surface collects a frame of solid triangles and points into one vertex
// batch. Flush draws the batch with a single DrawTriangles32 call.
type Surface struct {
	w, h       int
	background yuletree.Color
	verts      []ebiten.Vertex
	inds       []uint32
	presented  bool
}

var _ yuletree.Surface = (*Surface)(nil)

// NewSurface returns a surface of the given size.
func NewSurface(w, h int) *Surface {
	return &Surface{
		w:     w,
		h:     h,
		verts: make([]ebiten.Vertex, 0, 4096),
		inds:  make([]uint32, 0, 6144),
	}
}

func (s *Surface) Size() (int, int) { return s.w, s.h }

func (s *Surface) SetSize(w, h int) {
	s.w, s.h = w, h
}

func (s *Surface) Clear(c yuletree.Color) {
	s.background = c
	s.verts = s.verts[:0]
	s.inds = s.inds[:0]
	s.presented = false
}

func (s *Surface) FillTriangle(a, b, c yuletree.Vec2, col yuletree.Color) {
	base := uint32(len(s.verts))
	s.appendVertex(a, col)
	s.appendVertex(b, col)
	s.appendVertex(c, col)
	s.inds = append(s.inds, base, base+1, base+2)
}

// FillPoint draws a square. Points smaller than a pixel are drawn one pixel
// wide so distant flakes stay visible.
func (s *Surface) FillPoint(p yuletree.Vec2, size float64, col yuletree.Color) {
	half := max(size, 1) / 2
	base := uint32(len(s.verts))
	s.appendVertex(yuletree.Vec2{p.X() - half, p.Y() - half}, col)
	s.appendVertex(yuletree.Vec2{p.X() + half, p.Y() - half}, col)
	s.appendVertex(yuletree.Vec2{p.X() - half, p.Y() + half}, col)
	s.appendVertex(yuletree.Vec2{p.X() + half, p.Y() + half}, col)
	// Two triangles: TL-TR-BL, TR-BR-BL
	s.inds = append(s.inds,
		base+0, base+1, base+2,
		base+1, base+3, base+2,
	)
}

func (s *Surface) Present() {
	s.presented = true
}

// appendVertex adds a vertex sampling the center of the white pixel with a
// premultiplied color.
func (s *Surface) appendVertex(p yuletree.Vec2, col yuletree.Color) {
	c := col.Clamped()
	a := float32(c.A)
	s.verts = append(s.verts, ebiten.Vertex{
		DstX:   float32(p.X()),
		DstY:   float32(p.Y()),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(c.R) * a,
		ColorG: float32(c.G) * a,
		ColorB: float32(c.B) * a,
		ColorA: a,
	})
}

// Flush fills target with the background and draws the presented batch.
// A frame that was never presented draws nothing but the background.
func (s *Surface) Flush(target *ebiten.Image) {
	r, g, b, a := s.background.RGBA8()
	target.Fill(color.RGBA{R: r, G: g, B: b, A: a})
	if !s.presented || len(s.inds) == 0 {
		return
	}
	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	target.DrawTriangles32(s.verts, s.inds, ensureWhitePixel(), &op)
}

// VertexCount returns the number of vertices queued for the current frame.
func (s *Surface) VertexCount() int { return len(s.verts) }

// --- White pixel singleton (single-threaded, no sync.Once) ---

var whiteImage, whitePixel *ebiten.Image

// ensureWhitePixel returns a 1x1 white sub-image at (1,1) of a 3x3 image so
// sampling never bleeds past the edge.
func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whitePixel = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}

// capture reads back target as a straight-alpha image for screenshots.
func capture(target *ebiten.Image) *image.NRGBA {
	bounds := target.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	target.ReadPixels(pixels)

	// Convert premultiplied RGBA to straight-alpha NRGBA.
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}
