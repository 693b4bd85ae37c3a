package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/yuletree"
)

const fpsRefresh = 0.5 // seconds

// fpsOverlay shows FPS, TPS and frame stats in the top-left corner. The
// text is re-rendered about twice a second into its own small image.
type fpsOverlay struct {
	visible bool
	img     *ebiten.Image
	elapsed float64
	text    string
}

func newFPSOverlay(visible bool) *fpsOverlay {
	return &fpsOverlay{visible: visible, elapsed: fpsRefresh}
}

func (o *fpsOverlay) update(dt float64, app *yuletree.App) {
	o.elapsed += dt
	if o.elapsed < fpsRefresh {
		return
	}
	o.elapsed = 0
	o.text = overlayText(ebiten.ActualFPS(), ebiten.ActualTPS(), app)
}

func overlayText(fps, tps float64, app *yuletree.App) string {
	s := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\ncmds: %d\nturns: %d",
		fps, tps, len(app.Renderer().Commands()), app.Turns())
	if app.Paused() {
		s += "\npaused"
	}
	return s
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	if !o.visible || o.text == "" {
		return
	}
	if o.img == nil {
		o.img = ebiten.NewImage(120, 80)
	}
	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, o.text)

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(4, 4)
	screen.DrawImage(o.img, &op)
}
