package term

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	chimeRate   = beep.SampleRate(44100)
	chimeLength = 120 * time.Millisecond
)

// chimeNotes cycle with each completed turn: C6, E6, G6.
var chimeNotes = [...]int{1047, 1319, 1568}

// Chime plays a short tone through the system speaker. A nil or
// uninitialized Chime is silent.
type Chime struct {
	ready bool
}

// NewChime opens the speaker. The returned Chime is usable even when err
// is non-nil; it just stays quiet.
func NewChime() (*Chime, error) {
	if err := speaker.Init(chimeRate, chimeRate.N(time.Second/10)); err != nil {
		return &Chime{}, err
	}
	return &Chime{ready: true}, nil
}

// Play sounds the note for the given turn number.
func (c *Chime) Play(turn int) {
	if c == nil || !c.ready {
		return
	}
	tone, err := generators.SineTone(chimeRate, chimeNote(turn))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(chimeRate.N(chimeLength), tone))
}

// Close releases the speaker.
func (c *Chime) Close() {
	if c == nil || !c.ready {
		return
	}
	speaker.Close()
	c.ready = false
}

func chimeNote(turn int) float64 {
	if turn < 1 {
		turn = 1
	}
	return float64(chimeNotes[(turn-1)%len(chimeNotes)])
}
