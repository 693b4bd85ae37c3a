package yuletree

import "github.com/go-gl/mathgl/mgl64"

// Vec2 is a screen-space position in pixels.
type Vec2 = mgl64.Vec2

// Vec3 is used for positions, directions and Euler angles.
type Vec3 = mgl64.Vec3

// Mat4 is a column-major 4x4 matrix.
type Mat4 = mgl64.Mat4

// identityMatrix is the 4x4 identity.
var identityMatrix = mgl64.Ident4()

var unitScale = Vec3{1, 1, 1}

// transformPoint transforms p as a position (w = 1) and drops w.
func transformPoint(m Mat4, p Vec3) Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func normalize(v Vec3) Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// computeLocalMatrix builds the local matrix of a node.
//
// Composition order: Translate(Position) * Rx * Ry * Rz * Scale,
// i.e. Euler angles applied in XYZ order.
func computeLocalMatrix(n *Node) Mat4 {
	m := mgl64.Translate3D(n.Position.Elem())
	if n.Rotation.X() != 0 {
		m = m.Mul4(mgl64.HomogRotate3DX(n.Rotation.X()))
	}
	if n.Rotation.Y() != 0 {
		m = m.Mul4(mgl64.HomogRotate3DY(n.Rotation.Y()))
	}
	if n.Rotation.Z() != 0 {
		m = m.Mul4(mgl64.HomogRotate3DZ(n.Rotation.Z()))
	}
	if n.Scale != unitScale {
		m = m.Mul4(mgl64.Scale3D(n.Scale.Elem()))
	}
	return m
}

// updateWorldMatrix recomputes a node's world matrix. parentRecomputed
// forces recomputation of this node even if it is not dirty.
func updateWorldMatrix(n *Node, parent Mat4, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldMatrix = parent.Mul4(computeLocalMatrix(n))
		n.transformDirty = false
	}
	for _, child := range n.children {
		updateWorldMatrix(child, n.worldMatrix, recompute)
	}
}

// --- Transform property setters ---

// SetPosition sets the node's local position and marks it dirty.
func (n *Node) SetPosition(x, y, z float64) {
	n.Position = Vec3{x, y, z}
	n.transformDirty = true
}

// SetRotation sets the node's Euler rotation (radians) and marks it dirty.
func (n *Node) SetRotation(x, y, z float64) {
	n.Rotation = Vec3{x, y, z}
	n.transformDirty = true
}

// Rotate adds the given Euler increments to the node's rotation and marks
// it dirty. Angles are never reduced modulo a full turn.
func (n *Node) Rotate(dx, dy, dz float64) {
	n.Rotation = n.Rotation.Add(Vec3{dx, dy, dz})
	n.transformDirty = true
}

// SetScale sets the node's scale and marks it dirty.
func (n *Node) SetScale(x, y, z float64) {
	n.Scale = Vec3{x, y, z}
	n.transformDirty = true
}

// MarkDirty marks the node's transform as dirty, forcing recomputation
// on the next frame. Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// WorldMatrix returns the world matrix computed during the last update.
func (n *Node) WorldMatrix() Mat4 {
	return n.worldMatrix
}

// WorldPosition returns the node's origin in world space as of the last
// update.
func (n *Node) WorldPosition() Vec3 {
	return n.worldMatrix.Col(3).Vec3()
}

// LocalToWorld converts a local-space point to world space using the
// world matrix from the last update.
func (n *Node) LocalToWorld(p Vec3) Vec3 {
	return transformPoint(n.worldMatrix, p)
}
