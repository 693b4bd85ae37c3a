package yuletree

import "math"

// Geometry is an indexed triangle list in local space. Triangles wind
// counter-clockwise when seen from outside, so (b-a)×(c-a) points outward.
type Geometry struct {
	Positions []Vec3
	Indices   []uint32
}

// TriangleCount returns the number of triangles in g.
func (g *Geometry) TriangleCount() int {
	return len(g.Indices) / 3
}

// Triangle returns the local-space corners of triangle i.
func (g *Geometry) Triangle(i int) (a, b, c Vec3) {
	return g.Positions[g.Indices[i*3]], g.Positions[g.Indices[i*3+1]], g.Positions[g.Indices[i*3+2]]
}

// Bounds returns the axis-aligned min and max corners of g.
func (g *Geometry) Bounds() (lo, hi Vec3) {
	if len(g.Positions) == 0 {
		return Vec3{}, Vec3{}
	}
	lo, hi = g.Positions[0], g.Positions[0]
	for _, p := range g.Positions[1:] {
		for k := range p {
			lo[k] = math.Min(lo[k], p[k])
			hi[k] = math.Max(hi[k], p[k])
		}
	}
	return lo, hi
}

func (g *Geometry) addVertex(p Vec3) uint32 {
	g.Positions = append(g.Positions, p)
	return uint32(len(g.Positions) - 1)
}

func (g *Geometry) addTriangle(a, b, c uint32) {
	g.Indices = append(g.Indices, a, b, c)
}

// --- Cylinder / Cone ---

// NewCylinderGeometry builds a capped cylinder centered on the origin with
// its axis along Y. radiusTop may be zero, which yields a cone.
// radialSegments below 3 are raised to 3.
func NewCylinderGeometry(radiusTop, radiusBottom, height float64, radialSegments int) *Geometry {
	if radialSegments < 3 {
		radialSegments = 3
	}
	half := height / 2
	g := &Geometry{
		Positions: make([]Vec3, 0, radialSegments*2+2),
		Indices:   make([]uint32, 0, radialSegments*12),
	}

	top := make([]uint32, radialSegments)
	bottom := make([]uint32, radialSegments)
	for i := 0; i < radialSegments; i++ {
		theta := float64(i) / float64(radialSegments) * 2 * math.Pi
		sin, cos := math.Sincos(theta)
		bottom[i] = g.addVertex(Vec3{radiusBottom * sin, -half, radiusBottom * cos})
		if radiusTop > 0 {
			top[i] = g.addVertex(Vec3{radiusTop * sin, half, radiusTop * cos})
		}
	}

	apex := uint32(0)
	if radiusTop <= 0 {
		apex = g.addVertex(Vec3{0, half, 0})
	}

	// Sides.
	for i := 0; i < radialSegments; i++ {
		j := (i + 1) % radialSegments
		if radiusTop <= 0 {
			g.addTriangle(bottom[i], bottom[j], apex)
			continue
		}
		g.addTriangle(bottom[i], bottom[j], top[j])
		if radiusBottom > 0 {
			g.addTriangle(bottom[i], top[j], top[i])
		}
	}

	// Caps.
	if radiusTop > 0 {
		center := g.addVertex(Vec3{0, half, 0})
		for i := 0; i < radialSegments; i++ {
			g.addTriangle(center, top[i], top[(i+1)%radialSegments])
		}
	}
	if radiusBottom > 0 {
		center := g.addVertex(Vec3{0, -half, 0})
		for i := 0; i < radialSegments; i++ {
			g.addTriangle(center, bottom[(i+1)%radialSegments], bottom[i])
		}
	}
	return g
}

// NewConeGeometry builds a capped cone centered on the origin, apex up.
func NewConeGeometry(radius, height float64, radialSegments int) *Geometry {
	return NewCylinderGeometry(0, radius, height, radialSegments)
}

// --- Octahedron ---

var octahedronVertices = [6]Vec3{
	{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1},
}

var octahedronFaces = [8][3]int{
	{0, 2, 4}, {0, 4, 3}, {0, 3, 5}, {0, 5, 2},
	{1, 2, 5}, {1, 5, 3}, {1, 3, 4}, {1, 4, 2},
}

// NewOctahedronGeometry builds an octahedron of the given circumradius.
// Each face is split into (detail+1)² triangles whose corners are pushed
// onto the sphere, so higher detail approaches a sphere. Faces do not share
// vertices, which keeps them flat shaded.
func NewOctahedronGeometry(radius float64, detail int) *Geometry {
	if detail < 0 {
		detail = 0
	}
	n := detail + 1
	g := &Geometry{}
	for _, f := range octahedronFaces {
		a, b, c := octahedronVertices[f[0]], octahedronVertices[f[1]], octahedronVertices[f[2]]
		at := func(i, j int) Vec3 {
			u := float64(i) / float64(n)
			w := float64(j) / float64(n)
			p := a.Add(b.Sub(a).Mul(u)).Add(c.Sub(a).Mul(w))
			return p.Normalize().Mul(radius)
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n-i; j++ {
				p0 := g.addVertex(at(i, j))
				p1 := g.addVertex(at(i+1, j))
				p2 := g.addVertex(at(i, j+1))
				g.addTriangle(p0, p1, p2)
				if j < n-1-i {
					q0 := g.addVertex(at(i+1, j))
					q1 := g.addVertex(at(i+1, j+1))
					q2 := g.addVertex(at(i, j+1))
					g.addTriangle(q0, q1, q2)
				}
			}
		}
	}
	return g
}

// --- Sphere ---

// NewSphereGeometry builds a UV sphere centered on the origin.
// widthSegments below 3 and heightSegments below 2 are raised to those minimums.
func NewSphereGeometry(radius float64, widthSegments, heightSegments int) *Geometry {
	if widthSegments < 3 {
		widthSegments = 3
	}
	if heightSegments < 2 {
		heightSegments = 2
	}
	g := &Geometry{
		Positions: make([]Vec3, 0, (widthSegments+1)*(heightSegments+1)),
	}
	grid := make([][]uint32, heightSegments+1)
	for iy := 0; iy <= heightSegments; iy++ {
		v := float64(iy) / float64(heightSegments)
		sinT, cosT := math.Sincos(v * math.Pi)
		row := make([]uint32, widthSegments+1)
		for ix := 0; ix <= widthSegments; ix++ {
			u := float64(ix) / float64(widthSegments)
			sinP, cosP := math.Sincos(u * 2 * math.Pi)
			row[ix] = g.addVertex(Vec3{-radius * cosP * sinT, radius * cosT, radius * sinP * sinT})
		}
		grid[iy] = row
	}
	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]
			if iy != 0 {
				g.addTriangle(a, b, d)
			}
			if iy != heightSegments-1 {
				g.addTriangle(b, c, d)
			}
		}
	}
	return g
}
