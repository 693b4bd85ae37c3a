package yuletree

import "math/rand/v2"

// SnowConfig controls how a particle field is generated and how it falls.
type SnowConfig struct {
	// Count is the number of particles. Fixed for the field's lifetime.
	Count int
	// SpreadX and SpreadZ are the horizontal spawn ranges.
	SpreadX Range
	SpreadZ Range
	// Height is the initial vertical spawn range.
	Height Range
	// FallSpeed is subtracted from every particle's Y on each Step.
	FallSpeed float64
	// Floor is the lowest allowed Y. A particle that drops below it is
	// reset to Ceiling.
	Floor float64
	// Ceiling is the Y a particle is reset to after crossing Floor.
	Ceiling float64
	// Size is the rendered point size in world units.
	Size float64
}

// DefaultSnowConfig returns 600 flakes over a 20×20 area, 0..10 high,
// falling 0.02 per tick and wrapping from -2 back to 10.
func DefaultSnowConfig() SnowConfig {
	return SnowConfig{
		Count:     600,
		SpreadX:   Range{-10, 10},
		SpreadZ:   Range{-10, 10},
		Height:    Range{0, 10},
		FallSpeed: 0.02,
		Floor:     -2,
		Ceiling:   10,
		Size:      0.05,
	}
}

// ParticleField is a fixed-size set of positions animated in place.
// Only Y changes after creation.
type ParticleField struct {
	Positions []Vec3
	// NeedsUpdate is set by Step and cleared by the renderer once it has
	// consumed the new positions.
	NeedsUpdate bool

	fallSpeed float64
	floor     float64
	ceiling   float64
	resets    uint64
}

// NewParticleField allocates cfg.Count particles with X, Z and Y drawn
// uniformly from the configured ranges.
func NewParticleField(cfg SnowConfig, rng *rand.Rand) *ParticleField {
	count := cfg.Count
	if count < 0 {
		count = 0
	}
	f := &ParticleField{
		Positions: make([]Vec3, count),
		fallSpeed: cfg.FallSpeed,
		floor:     cfg.Floor,
		ceiling:   cfg.Ceiling,
	}
	for i := range f.Positions {
		f.Positions[i] = Vec3{
			cfg.SpreadX.Sample(rng),
			cfg.Height.Sample(rng),
			cfg.SpreadZ.Sample(rng),
		}
	}
	return f
}

// Len returns the number of particles.
func (f *ParticleField) Len() int {
	return len(f.Positions)
}

// Step lowers every particle by the fall speed. A particle whose Y drops
// below the floor snaps to the ceiling; the overshoot is discarded.
func (f *ParticleField) Step() {
	for i := range f.Positions {
		p := &f.Positions[i]
		p[1] -= f.fallSpeed
		if p[1] < f.floor {
			p[1] = f.ceiling
			f.resets++
		}
	}
	f.NeedsUpdate = true
}

// Resets returns how many times any particle has wrapped to the ceiling.
func (f *ParticleField) Resets() uint64 {
	return f.resets
}
