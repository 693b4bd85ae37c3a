// Package term runs a yuletree scene in a terminal. Each character cell
// shows two pixels using the upper half block: the foreground colors the
// top pixel and the background colors the bottom one.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/yuletree"
)

const halfBlock = '▀'

// Options configures the terminal runner beyond the scene Config.
type Options struct {
	// FPS is the redraw rate. It replaces the scene's TPS so animation
	// time follows the ticker. Zero keeps the scene's TPS.
	FPS int
	// Chime plays a tone every time the tree completes a turn.
	Chime bool
	// Script, when set, drives the app frame by frame.
	Script *yuletree.TestRunner
}

// Runner drives an App on a tcell screen.
type Runner struct {
	screen tcell.Screen
	app    *yuletree.App
	fb     *Framebuffer
	chime  *Chime
	fps    int
}

// New builds the app sized to the screen. The screen must already be
// initialized; the caller keeps ownership and calls Fini.
func New(screen tcell.Screen, cfg yuletree.Config, opts Options) (*Runner, error) {
	if opts.FPS > 0 {
		cfg.TPS = opts.FPS
	}
	cols, rows := screen.Size()
	fb := NewFramebuffer(cols, rows*2)
	app, err := yuletree.NewApp(cfg, fb)
	if err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	if opts.Script != nil {
		app.SetTestRunner(opts.Script)
	}

	r := &Runner{screen: screen, app: app, fb: fb, fps: cfg.TPS}
	if opts.Chime {
		chime, err := NewChime()
		if err != nil {
			// Non-fatal, the tree runs without sound
			yuletree.Logf("audio initialization failed: %v", err)
		}
		r.chime = chime
		app.OnTurn = r.chime.Play
	}
	return r, nil
}

// App returns the running app.
func (r *Runner) App() *yuletree.App { return r.app }

// Run loops until ctx is done, a quit key is pressed or a script asks to
// quit.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(r.fps))
	defer ticker.Stop()
	defer r.chime.Close()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-eventChan:
			if !r.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			r.frame()
			if r.app.QuitRequested() {
				return nil
			}
		}
	}
}

// handleEvent reacts to one terminal event. It reports false on quit.
func (r *Runner) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		r.app.Resize(cols, rows*2)
		r.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case ' ':
				r.app.TogglePause()
			case 's', 'S':
				r.app.Screenshot("key")
			}
		}
	}
	return true
}

// frame advances the app one tick and shows the result.
func (r *Runner) frame() {
	r.app.Tick()
	r.blit()
	r.screen.Show()
	if r.app.PendingScreenshots() {
		r.app.FlushScreenshots(r.fb.Image())
	}
}

// blit copies pixel pairs from the framebuffer into screen cells.
func (r *Runner) blit() {
	cols, rows := r.screen.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := cellColor(r.fb.At(x, 2*y))
			bottom := cellColor(r.fb.At(x, 2*y+1))
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			r.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
}

func cellColor(c yuletree.Color) tcell.Color {
	red, green, blue, _ := c.RGBA8()
	return tcell.NewRGBColor(int32(red), int32(green), int32(blue))
}

// Run opens the terminal, runs the scene until quit and restores the
// terminal on return.
func Run(ctx context.Context, cfg yuletree.Config, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	r, err := New(screen, cfg, opts)
	if err != nil {
		return err
	}
	return r.Run(ctx)
}
