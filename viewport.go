package yuletree

// Resize adapts the camera and drawing surface to a new viewport size.
// Calls with a non-positive height are ignored so the aspect ratio never
// divides by zero. Repeated calls with the same size are idempotent.
func (a *App) Resize(w, h int) {
	if h <= 0 {
		return
	}
	a.camera.Aspect = float64(w) / float64(h)
	a.camera.UpdateProjectionMatrix()
	a.renderer.SetSize(w, h)
	if a.cfg.Debug {
		Logf("resize %dx%d aspect=%.3f", w, h, a.camera.Aspect)
	}
}
