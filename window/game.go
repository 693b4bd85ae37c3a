// Package window runs a yuletree scene in a resizable Ebitengine window.
package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/yuletree"
)

// Options configures the window beyond the scene Config.
type Options struct {
	Title   string
	ShowFPS bool
	// Script, when set, drives the app frame by frame.
	Script *yuletree.TestRunner
}

// Game implements ebiten.Game around an App.
type Game struct {
	app     *yuletree.App
	surface *Surface
	fps     *fpsOverlay
	w, h    int
}

// NewGame builds the app on a fresh window surface.
func NewGame(cfg yuletree.Config, opts Options) (*Game, error) {
	surface := NewSurface(cfg.Width, cfg.Height)
	app, err := yuletree.NewApp(cfg, surface)
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}
	if opts.Script != nil {
		app.SetTestRunner(opts.Script)
	}
	return &Game{
		app:     app,
		surface: surface,
		fps:     newFPSOverlay(opts.ShowFPS),
		w:       cfg.Width,
		h:       cfg.Height,
	}, nil
}

// App returns the running app.
func (g *Game) App() *yuletree.App { return g.app }

func (g *Game) Update() error {
	for _, a := range pressedActions() {
		if !g.apply(a) {
			return ebiten.Termination
		}
	}
	g.app.Update()
	g.fps.update(1/float64(ebiten.TPS()), g.app)
	if g.app.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.app.Draw()
	g.surface.Flush(screen)
	if g.app.PendingScreenshots() {
		g.app.FlushScreenshots(capture(screen))
	}
	g.fps.draw(screen)
}

// Layout follows the outside size so the scene fills a resized window. A
// collapsed size (minimized window) keeps the last valid layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.w, g.h
	}
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.app.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and blocks until it is closed or a quit key is hit.
func Run(cfg yuletree.Config, opts Options) error {
	g, err := NewGame(cfg, opts)
	if err != nil {
		return err
	}
	title := opts.Title
	if title == "" {
		title = "yuletree"
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	return ebiten.RunGame(g)
}
