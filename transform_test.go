package yuletree

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec(t *testing.T, name string, got, want Vec3) {
	t.Helper()
	if !got.ApproxEqualThreshold(want, epsilon) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestNormalize(t *testing.T) {
	assertVec(t, "unit", normalize(Vec3{0, 0, 9}), Vec3{0, 0, 1})
	assertVec(t, "zero", normalize(Vec3{}), Vec3{})
}

func TestTransformPoint(t *testing.T) {
	p := Vec3{1, -2, 3}
	assertVec(t, "identity", transformPoint(identityMatrix, p), p)
}

// --- Local matrix composition ---

func TestComputeLocalMatrixRotations(t *testing.T) {
	tests := []struct {
		name     string
		rotation Vec3
		in       Vec3
		want     Vec3
	}{
		{"X90 y->z", Vec3{math.Pi / 2, 0, 0}, Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"Y90 z->x", Vec3{0, math.Pi / 2, 0}, Vec3{0, 0, 1}, Vec3{1, 0, 0}},
		{"Y90 x->-z", Vec3{0, math.Pi / 2, 0}, Vec3{1, 0, 0}, Vec3{0, 0, -1}},
		{"Z90 x->y", Vec3{0, 0, math.Pi / 2}, Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		{"Y full turn", Vec3{0, 2 * math.Pi, 0}, Vec3{1, 2, 3}, Vec3{1, 2, 3}},
		// X is applied last: Ry(90) takes x to -z, then Rx(90) takes -z to y.
		{"XY order", Vec3{math.Pi / 2, math.Pi / 2, 0}, Vec3{1, 0, 0}, Vec3{0, 1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewGroup("n")
			n.SetRotation(tt.rotation.Elem())
			assertVec(t, "point", transformPoint(computeLocalMatrix(n), tt.in), tt.want)
		})
	}
}

func TestComputeLocalMatrixScale(t *testing.T) {
	n := NewGroup("n")
	n.SetScale(2, 3, 4)
	n.SetPosition(1, 1, 1)
	assertVec(t, "scaled", transformPoint(computeLocalMatrix(n), Vec3{1, 1, 1}), Vec3{3, 4, 5})
}

// --- Node transforms ---

func TestWorldMatrixPropagates(t *testing.T) {
	parent := NewGroup("parent")
	parent.SetPosition(10, 0, 0)
	child := NewGroup("child")
	child.SetPosition(0, 0, 1)
	parent.AddChild(child)

	updateWorldMatrix(parent, identityMatrix, false)
	assertVec(t, "child origin", child.LocalToWorld(Vec3{}), Vec3{10, 0, 1})

	parent.SetRotation(0, math.Pi/2, 0)
	updateWorldMatrix(parent, identityMatrix, false)
	assertVec(t, "rotated child origin", child.LocalToWorld(Vec3{}), Vec3{11, 0, 0})
	assertVec(t, "WorldPosition", child.WorldPosition(), Vec3{11, 0, 0})
}

func TestWorldMatrixSkipsCleanNodes(t *testing.T) {
	n := NewGroup("n")
	updateWorldMatrix(n, identityMatrix, false)
	n.Position = Vec3{5, 5, 5} // no dirty flag
	updateWorldMatrix(n, identityMatrix, false)
	assertVec(t, "stale", n.WorldPosition(), Vec3{})

	n.MarkDirty()
	updateWorldMatrix(n, identityMatrix, false)
	assertVec(t, "refreshed", n.WorldPosition(), Vec3{5, 5, 5})
}

func TestRotateAccumulatesWithoutWrapping(t *testing.T) {
	n := NewGroup("n")
	for i := 0; i < 1000; i++ {
		n.Rotate(0, 0.01, 0)
	}
	if n.Rotation.Y() < 2*math.Pi {
		t.Errorf("Rotation.Y = %v, want > 2π (no modulo)", n.Rotation.Y())
	}
	assertNear(t, "Rotation.Y", math.Round(n.Rotation.Y()*1e6)/1e6, 10)
	if !n.transformDirty {
		t.Error("Rotate did not mark the node dirty")
	}
}
