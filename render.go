package yuletree

import "time"

// CommandType identifies the kind of render command.
type CommandType uint8

const (
	CommandTriangle CommandType = iota // FillTriangle
	CommandPoint                       // FillPoint
)

// RenderCommand is a single draw instruction emitted during scene traversal.
type RenderCommand struct {
	Type   CommandType
	Points [3]Vec2 // CommandPoint uses Points[0] only
	Size   float64 // CommandPoint edge length in pixels
	Color  Color
	// Depth is the distance in front of the camera; larger draws first.
	Depth     float64
	treeOrder int // assigned during traversal for stable sort
}

const defaultCommandCap = 4096

// Renderer projects a scene through a camera into depth-sorted render
// commands and submits them to a Surface.
type Renderer struct {
	surface  Surface
	commands []RenderCommand
	sortBuf  []RenderCommand
	debug    bool

	// stats from the last frame, kept for tests and overlays
	last debugStats
}

// NewRenderer creates a renderer drawing to surface.
func NewRenderer(surface Surface) *Renderer {
	if surface == nil {
		panic("yuletree: nil surface")
	}
	return &Renderer{
		surface:  surface,
		commands: make([]RenderCommand, 0, defaultCommandCap),
		sortBuf:  make([]RenderCommand, 0, defaultCommandCap),
	}
}

// Surface returns the renderer's drawing target.
func (r *Renderer) Surface() Surface {
	return r.surface
}

// SetSize resizes the drawing target.
func (r *Renderer) SetSize(w, h int) {
	r.surface.SetSize(w, h)
}

// Size returns the drawing target's size.
func (r *Renderer) Size() (int, int) {
	return r.surface.Size()
}

// SetDebugMode enables per-frame timing and command count logging.
func (r *Renderer) SetDebugMode(enabled bool) {
	r.debug = enabled
}

// Commands returns the sorted commands of the last frame. The returned
// slice MUST NOT be mutated and is only valid until the next Render.
func (r *Renderer) Commands() []RenderCommand {
	return r.commands
}

// Render draws one frame of scene as seen by cam.
func (r *Renderer) Render(scene *Scene, cam *Camera) {
	var stats debugStats
	t0 := time.Now()

	w, h := r.surface.Size()
	r.commands = r.commands[:0]
	scene.UpdateWorldMatrices()
	if w > 0 && h > 0 {
		treeOrder := 0
		r.traverse(scene.root, scene.lights, cam, w, h, &treeOrder, &stats)
	}
	stats.projectTime = time.Since(t0)

	t0 = time.Now()
	r.mergeSort()
	stats.sortTime = time.Since(t0)

	t0 = time.Now()
	r.submit(scene.Background)
	stats.submitTime = time.Since(t0)
	stats.commandCount = len(r.commands)

	r.last = stats
	r.debugLog(stats)
}

// traverse walks the node tree depth-first and emits commands for visible
// mesh and points nodes. Invisible nodes hide their whole subtree.
func (r *Renderer) traverse(root *Node, lights []*Light, cam *Camera, w, h int, treeOrder *int, stats *debugStats) {
	root.Walk(func(n *Node) bool {
		if !n.Visible {
			return false
		}
		switch n.Type {
		case NodeTypeMesh:
			if n.Geometry != nil && n.Material != nil {
				r.emitMesh(n, lights, cam, w, h, treeOrder, stats)
			}
		case NodeTypePoints:
			if n.Field != nil && n.Material != nil {
				r.emitPoints(n, cam, w, h, treeOrder, stats)
			}
		}
		return true
	})
}

// emitMesh emits one flat-shaded triangle command per front-facing
// triangle that lies fully between the near and far planes.
func (r *Renderer) emitMesh(n *Node, lights []*Light, cam *Camera, w, h int, treeOrder *int, stats *debugStats) {
	world := n.worldMatrix
	view := cam.ViewMatrix()
	g := n.Geometry
	for i := 0; i < g.TriangleCount(); i++ {
		la, lb, lc := g.Triangle(i)
		a := transformPoint(world, la)
		b := transformPoint(world, lb)
		c := transformPoint(world, lc)

		normal := b.Sub(a).Cross(c.Sub(a))
		if normal.Dot(cam.Position.Sub(a)) <= 0 {
			stats.culled++
			continue
		}

		va, vb, vc := transformPoint(view, a), transformPoint(view, b), transformPoint(view, c)
		if !cam.inDepthRange(va) || !cam.inDepthRange(vb) || !cam.inDepthRange(vc) {
			stats.culled++
			continue
		}

		center := a.Add(b).Add(c).Mul(1.0 / 3)
		*treeOrder++
		r.commands = append(r.commands, RenderCommand{
			Type: CommandTriangle,
			Points: [3]Vec2{
				cam.projectView(va, w, h),
				cam.projectView(vb, w, h),
				cam.projectView(vc, w, h),
			},
			Color:     shade(n.Material, center, normalize(normal), cam.Position, lights),
			Depth:     -(va.Z() + vb.Z() + vc.Z()) / 3,
			treeOrder: *treeOrder,
		})
		stats.triangles++
	}
}

// emitPoints emits one square per particle in front of the camera. Point
// size shrinks with distance: size·(h/2)/depth pixels.
func (r *Renderer) emitPoints(n *Node, cam *Camera, w, h int, treeOrder *int, stats *debugStats) {
	world := n.worldMatrix
	view := cam.ViewMatrix()
	col := shade(n.Material, Vec3{}, Vec3{}, cam.Position, nil)
	for _, p := range n.Field.Positions {
		v := transformPoint(view, transformPoint(world, p))
		if !cam.inDepthRange(v) {
			stats.culled++
			continue
		}
		depth := -v.Z()
		*treeOrder++
		r.commands = append(r.commands, RenderCommand{
			Type:      CommandPoint,
			Points:    [3]Vec2{cam.projectView(v, w, h)},
			Size:      n.Material.Size * float64(h) / 2 / depth,
			Color:     col,
			Depth:     depth,
			treeOrder: *treeOrder,
		})
		stats.points++
	}
	n.Field.NeedsUpdate = false
}

// inDepthRange reports whether a view-space point lies between the clip planes.
func (c *Camera) inDepthRange(v Vec3) bool {
	d := -v.Z()
	return d >= c.Near && d <= c.Far
}

// submit clears the surface and replays the sorted commands.
func (r *Renderer) submit(background Color) {
	s := r.surface
	s.Clear(background)
	for i := range r.commands {
		cmd := &r.commands[i]
		switch cmd.Type {
		case CommandTriangle:
			s.FillTriangle(cmd.Points[0], cmd.Points[1], cmd.Points[2], cmd.Color)
		case CommandPoint:
			s.FillPoint(cmd.Points[0], cmd.Size, cmd.Color)
		}
	}
	s.Present()
}

// --- Merge sort ---

// commandLessOrEqual returns true if a should be drawn before or at the same
// position as b: farther first, then traversal order.
// Using <= for treeOrder ensures stability.
func commandLessOrEqual(a, b *RenderCommand) bool {
	if a.Depth != b.Depth {
		return a.Depth > b.Depth
	}
	return a.treeOrder <= b.treeOrder
}

// mergeSort sorts r.commands in-place using r.sortBuf as scratch space.
// Bottom-up merge sort: zero allocations after the sort buffer reaches high-water mark.
func (r *Renderer) mergeSort() {
	n := len(r.commands)
	if n <= 1 {
		return
	}
	if cap(r.sortBuf) < n {
		r.sortBuf = make([]RenderCommand, n)
	}
	r.sortBuf = r.sortBuf[:n]

	a := r.commands
	b := r.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(r.commands, r.sortBuf)
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []RenderCommand, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if commandLessOrEqual(&src[i], &src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}
