package yuletree

import (
	"math"
	"testing"
)

func TestGeometryTriangleCounts(t *testing.T) {
	tests := []struct {
		name string
		geo  *Geometry
		want int
	}{
		{"cone 32", NewConeGeometry(2, 2.2, 32), 64},
		{"cylinder 16", NewCylinderGeometry(0.3, 0.3, 1.2, 16), 64},
		{"octahedron detail 0", NewOctahedronGeometry(1, 0), 8},
		{"octahedron detail 1", NewOctahedronGeometry(0.4, 1), 32},
		{"sphere 12x12", NewSphereGeometry(0.05, 12, 12), 264},
		{"cylinder clamps segments", NewCylinderGeometry(1, 1, 1, 1), 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.geo.TriangleCount(); got != tt.want {
				t.Errorf("TriangleCount = %d, want %d", got, tt.want)
			}
			for _, idx := range tt.geo.Indices {
				if int(idx) >= len(tt.geo.Positions) {
					t.Fatalf("index %d out of range (%d positions)", idx, len(tt.geo.Positions))
				}
			}
		})
	}
}

// Every generator builds convex solids around the origin, so each face
// normal must point away from it.
func TestGeometryFacesPointOutward(t *testing.T) {
	geos := map[string]*Geometry{
		"cone":       NewConeGeometry(1.5, 2, 32),
		"cylinder":   NewCylinderGeometry(0.3, 0.3, 1.2, 16),
		"octahedron": NewOctahedronGeometry(0.4, 1),
		"sphere":     NewSphereGeometry(1, 12, 12),
	}
	for name, g := range geos {
		for i := 0; i < g.TriangleCount(); i++ {
			a, b, c := g.Triangle(i)
			n := b.Sub(a).Cross(c.Sub(a))
			if n.Dot(a) <= 0 {
				t.Errorf("%s: triangle %d faces inward (%v %v %v)", name, i, a, b, c)
				break
			}
		}
	}
}

func TestGeometryBounds(t *testing.T) {
	lo, hi := NewConeGeometry(2, 2.2, 32).Bounds()
	assertNear(t, "min y", lo.Y(), -1.1)
	assertNear(t, "max y", hi.Y(), 1.1)
	assertNear(t, "max x", hi.X(), 2)
	assertNear(t, "min z", lo.Z(), -2)
}

func TestOctahedronVerticesOnSphere(t *testing.T) {
	g := NewOctahedronGeometry(0.4, 1)
	for i, p := range g.Positions {
		if math.Abs(p.Len()-0.4) > epsilon {
			t.Fatalf("vertex %d at distance %v, want 0.4", i, p.Len())
		}
	}
}

func TestSphereVerticesOnSphere(t *testing.T) {
	g := NewSphereGeometry(0.05, 12, 12)
	for i, p := range g.Positions {
		if math.Abs(p.Len()-0.05) > epsilon {
			t.Fatalf("vertex %d at distance %v, want 0.05", i, p.Len())
		}
	}
}
