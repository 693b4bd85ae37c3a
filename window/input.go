package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// action is something a key press does to the running app.
type action uint8

const (
	actionNone action = iota
	actionPause
	actionScreenshot
	actionToggleFPS
	actionQuit
)

var keyActions = map[ebiten.Key]action{
	ebiten.KeySpace:  actionPause,
	ebiten.KeyS:      actionScreenshot,
	ebiten.KeyF:      actionToggleFPS,
	ebiten.KeyQ:      actionQuit,
	ebiten.KeyEscape: actionQuit,
}

// pressedActions returns the actions for keys pressed this tick.
func pressedActions() []action {
	var out []action
	for k, a := range keyActions {
		if inpututil.IsKeyJustPressed(k) {
			out = append(out, a)
		}
	}
	return out
}

// apply performs a on g. It reports false when the game should stop.
func (g *Game) apply(a action) bool {
	switch a {
	case actionPause:
		g.app.TogglePause()
	case actionScreenshot:
		g.app.Screenshot("key")
	case actionToggleFPS:
		g.fps.visible = !g.fps.visible
	case actionQuit:
		return false
	}
	return true
}
