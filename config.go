package yuletree

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every tunable of the scene. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// Seed feeds the random generator used for bulbs and snow. Zero picks
	// a seed from the clock.
	Seed uint64
	// Width and Height are the initial surface size requested by a backend.
	Width, Height int
	// TPS is the number of scheduler ticks per second.
	TPS int

	// Camera.
	FOV            float64 // vertical, degrees
	Near, Far      float64
	CameraPosition Vec3

	// Per-tick angular increments in radians.
	TreeSpin float64
	StarSpin float64
	StarTilt float64

	// Bulbs scattered on the tree, in tree-local polar coordinates.
	BulbCount  int
	BulbRadius Range
	BulbHeight Range

	Snow SnowConfig

	// Intro dollies the camera in from IntroFromZ over IntroSeconds.
	Intro        bool
	IntroFromZ   float64
	IntroSeconds float32

	// Debug enables per-frame render stats and node checks.
	Debug bool
	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir string
}

// DefaultConfig returns the stock scene: 60 bulbs, 600 flakes, camera at
// (0, 1, 6) with a 75° field of view.
func DefaultConfig() Config {
	return Config{
		Width:          1024,
		Height:         768,
		TPS:            60,
		FOV:            75,
		Near:           0.1,
		Far:            1000,
		CameraPosition: Vec3{0, 1, 6},
		TreeSpin:       0.01,
		StarSpin:       0.02,
		StarTilt:       0.01,
		BulbCount:      60,
		BulbRadius:     Range{0.5, 2.5},
		BulbHeight:     Range{-0.5, 2.0},
		Snow:           DefaultSnowConfig(),
		IntroFromZ:     14,
		IntroSeconds:   3,
		ScreenshotDir:  "screenshots",
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.TPS <= 0:
		return fmt.Errorf("config: tps must be positive, got %d", c.TPS)
	case c.FOV <= 0 || c.FOV >= 180:
		return fmt.Errorf("config: fov must be in (0, 180), got %g", c.FOV)
	case c.Near <= 0 || c.Near >= c.Far:
		return fmt.Errorf("config: need 0 < near < far, got near=%g far=%g", c.Near, c.Far)
	case c.BulbCount < 0:
		return fmt.Errorf("config: bulb count must not be negative, got %d", c.BulbCount)
	case c.Snow.Count < 0:
		return fmt.Errorf("config: snow count must not be negative, got %d", c.Snow.Count)
	case c.Snow.Floor >= c.Snow.Ceiling:
		return fmt.Errorf("config: snow floor %g must be below ceiling %g", c.Snow.Floor, c.Snow.Ceiling)
	case c.BulbRadius.Min > c.BulbRadius.Max || c.BulbHeight.Min > c.BulbHeight.Max:
		return errors.New("config: bulb ranges must have min <= max")
	case c.Intro && c.IntroSeconds <= 0:
		return fmt.Errorf("config: intro duration must be positive, got %g", c.IntroSeconds)
	}
	return nil
}

// Environment variables read by ApplyEnv.
const (
	EnvSeed   = "YULETREE_SEED"
	EnvWidth  = "YULETREE_WIDTH"
	EnvHeight = "YULETREE_HEIGHT"
	EnvIntro  = "YULETREE_INTRO"
	EnvDebug  = "YULETREE_DEBUG"
)

// LoadDotEnv loads KEY=VALUE pairs from the given files (".env" when none
// are given) into the process environment. Missing files are ignored;
// variables already set are not overwritten.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load env file %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overrides fields of c from YULETREE_* variables found by lookup
// (os.LookupEnv when nil).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(EnvSeed); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = n
	}
	for _, f := range []struct {
		key string
		dst *int
	}{{EnvWidth, &c.Width}, {EnvHeight, &c.Height}} {
		if v, ok := lookup(f.key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", f.key, err)
			}
			*f.dst = n
		}
	}
	for _, f := range []struct {
		key string
		dst *bool
	}{{EnvIntro, &c.Intro}, {EnvDebug, &c.Debug}} {
		if v, ok := lookup(f.key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s: %w", f.key, err)
			}
			*f.dst = b
		}
	}
	return nil
}
