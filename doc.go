// Package yuletree renders an animated 3D Christmas tree: a trunk, three
// stacked cones, a spinning star with its own light, randomly placed bulbs
// and a field of falling snow.
//
// The package is backend-neutral. It owns the scene graph, a small
// software 3D pipeline (perspective projection, flat shading, back-face
// culling and far-to-near sorting) and the per-frame scheduler. Pixels are
// produced by a [Surface] implementation supplied by the host:
//
//   - yuletree/window draws with [Ebitengine] in a resizable window.
//   - yuletree/term draws half-block characters in a terminal via tcell.
//   - [RecordingSurface] keeps draw calls in memory for tests and headless runs.
//
// # Quick start
//
//	cfg := yuletree.DefaultConfig()
//	surface := yuletree.NewRecordingSurface(cfg.Width, cfg.Height)
//	app, err := yuletree.NewApp(cfg, surface)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for range 60 {
//		app.Tick()
//	}
//
// # Frame loop
//
// [App.Update] advances the scheduler by one tick. Tasks run in a fixed
// order: "tree" spins the tree group (bulbs follow because they are its
// children), "star" spins and tilts the star, "snow" moves every flake
// down and wraps flakes that fall below the floor back to the ceiling, and
// "camera" advances the optional intro dolly. [App.Draw] projects and
// submits the frame. [App.Resize] keeps the camera aspect in step with
// the surface.
//
// # Determinism
//
// All randomness comes from one PCG generator seeded by [Config.Seed].
// Two apps built from the same non-zero seed place identical bulbs and
// flakes.
//
// [Ebitengine]: https://ebitengine.org
package yuletree
