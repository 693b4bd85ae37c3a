package yuletree

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// dollyAnim holds an active dolly tween along the camera's Z axis.
type dollyAnim struct {
	tween *gween.Tween
}

// Camera is a perspective camera with the default orientation: it sits at
// Position and looks down -Z with +Y up.
type Camera struct {
	// FOV is the vertical field of view in degrees.
	FOV float64
	// Aspect is the viewport width divided by its height.
	Aspect float64
	// Near and Far are the clip plane distances.
	Near, Far float64
	// Position is the camera's world-space position.
	Position Vec3

	projection Mat4
	dolly      *dollyAnim
}

// NewCamera creates a camera and computes its projection matrix.
func NewCamera(fov, aspect, near, far float64) *Camera {
	c := &Camera{FOV: fov, Aspect: aspect, Near: near, Far: far}
	c.UpdateProjectionMatrix()
	return c
}

// UpdateProjectionMatrix recomputes the projection matrix from FOV,
// Aspect, Near and Far. Call it after changing any of them.
func (c *Camera) UpdateProjectionMatrix() {
	c.projection = mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// ProjectionMatrix returns the matrix computed by the last
// UpdateProjectionMatrix call.
func (c *Camera) ProjectionMatrix() Mat4 {
	return c.projection
}

var (
	cameraForward = Vec3{0, 0, -1}
	cameraUp      = Vec3{0, 1, 0}
)

// ViewMatrix returns the world-to-view transform.
func (c *Camera) ViewMatrix() Mat4 {
	return mgl64.LookAtV(c.Position, c.Position.Add(cameraForward), cameraUp)
}

// Project maps a world-space point to surface pixels for a w×h surface.
// depth is the distance in front of the camera along -Z. ok is false when
// the point lies outside the near/far range.
func (c *Camera) Project(p Vec3, w, h int) (screen Vec2, depth float64, ok bool) {
	view := transformPoint(c.ViewMatrix(), p)
	depth = -view.Z()
	if depth < c.Near || depth > c.Far {
		return Vec2{}, depth, false
	}
	return c.projectView(view, w, h), depth, true
}

// projectView maps a view-space point in front of the camera to pixels.
func (c *Camera) projectView(view Vec3, w, h int) Vec2 {
	clip := c.projection.Mul4x1(view.Vec4(1))
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	return Vec2{
		(ndcX + 1) * 0.5 * float64(w),
		(1 - ndcY) * 0.5 * float64(h),
	}
}

// DollyTo animates the camera's Z position to z over duration seconds.
func (c *Camera) DollyTo(z float64, duration float32, easeFn ease.TweenFunc) {
	c.dolly = &dollyAnim{
		tween: gween.New(float32(c.Position.Z()), float32(z), duration, easeFn),
	}
}

// IsDollying reports whether a dolly animation is in progress.
func (c *Camera) IsDollying() bool {
	return c.dolly != nil
}

// update advances the dolly tween by dt seconds.
func (c *Camera) update(dt float32) {
	if c.dolly == nil {
		return
	}
	val, done := c.dolly.tween.Update(dt)
	c.Position[2] = float64(val)
	if done {
		c.dolly = nil
	}
}
