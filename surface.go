package yuletree

// Surface is the drawing target a Renderer submits frames to. The host
// backend owns it; the core never creates one.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (w, h int)
	// SetSize resizes the surface.
	SetSize(w, h int)
	// Clear fills the whole surface with c. Called once at the start of a frame.
	Clear(c Color)
	// FillTriangle draws a solid triangle in pixel coordinates.
	FillTriangle(a, b, c Vec2, col Color)
	// FillPoint draws a solid square of edge size centered on p.
	FillPoint(p Vec2, size float64, col Color)
	// Present finishes the frame.
	Present()
}

// RecordedTriangle is a FillTriangle call captured by a RecordingSurface.
type RecordedTriangle struct {
	A, B, C Vec2
	Color   Color
}

// RecordedPoint is a FillPoint call captured by a RecordingSurface.
type RecordedPoint struct {
	P     Vec2
	Size  float64
	Color Color
}

// RecordingSurface is a Surface that keeps the calls of the last frame in
// memory. Useful for headless runs and tests.
type RecordingSurface struct {
	Width, Height int
	ClearColor    Color
	Triangles     []RecordedTriangle
	Points        []RecordedPoint
	Frames        int
	// Order holds 't' or 'p' for every fill call, in submission order.
	Order []byte
}

// NewRecordingSurface returns a recording surface of the given size.
func NewRecordingSurface(w, h int) *RecordingSurface {
	return &RecordingSurface{Width: w, Height: h}
}

func (s *RecordingSurface) Size() (int, int) { return s.Width, s.Height }

func (s *RecordingSurface) SetSize(w, h int) {
	s.Width, s.Height = w, h
}

func (s *RecordingSurface) Clear(c Color) {
	s.ClearColor = c
	s.Triangles = s.Triangles[:0]
	s.Points = s.Points[:0]
	s.Order = s.Order[:0]
}

func (s *RecordingSurface) FillTriangle(a, b, c Vec2, col Color) {
	s.Triangles = append(s.Triangles, RecordedTriangle{a, b, c, col})
	s.Order = append(s.Order, 't')
}

func (s *RecordingSurface) FillPoint(p Vec2, size float64, col Color) {
	s.Points = append(s.Points, RecordedPoint{p, size, col})
	s.Order = append(s.Order, 'p')
}

func (s *RecordingSurface) Present() {
	s.Frames++
}
