package yuletree

import (
	"math/rand/v2"
	"testing"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestNewParticleFieldBounds(t *testing.T) {
	cfg := DefaultSnowConfig()
	f := NewParticleField(cfg, newTestRand())
	if f.Len() != 600 {
		t.Fatalf("Len = %d, want 600", f.Len())
	}
	for i, p := range f.Positions {
		if p.X() < -10 || p.X() > 10 || p.Z() < -10 || p.Z() > 10 {
			t.Errorf("particle %d: x/z out of range: %v", i, p)
		}
		if p.Y() < 0 || p.Y() > 10 {
			t.Errorf("particle %d: y = %v, want [0, 10]", i, p.Y())
		}
	}
}

func TestNewParticleFieldNegativeCount(t *testing.T) {
	f := NewParticleField(SnowConfig{Count: -5}, newTestRand())
	if f.Len() != 0 {
		t.Errorf("Len = %d, want 0", f.Len())
	}
}

func TestStepFallsAndWraps(t *testing.T) {
	f := NewParticleField(DefaultSnowConfig(), newTestRand())
	f.Positions = f.Positions[:3]
	f.Positions[0][1] = 0.01
	f.Positions[1][1] = -1.99
	f.Positions[2][1] = -1.98

	f.Step()

	assertNear(t, "no reset", f.Positions[0].Y(), -0.01)
	if f.Positions[1].Y() != 10 {
		t.Errorf("below floor: Y = %v, want exactly 10", f.Positions[1].Y())
	}
	assertNear(t, "at floor", f.Positions[2].Y(), -2)
	if f.Resets() != 1 {
		t.Errorf("Resets = %d, want 1", f.Resets())
	}
	if !f.NeedsUpdate {
		t.Error("NeedsUpdate not set by Step")
	}
}

func TestStepKeepsInvariantForever(t *testing.T) {
	f := NewParticleField(DefaultSnowConfig(), newTestRand())
	before := make([]Vec3, f.Len())
	copy(before, f.Positions)

	for tick := 0; tick < 2000; tick++ {
		f.Step()
		for i, p := range f.Positions {
			if p.Y() < -2 || p.Y() > 10 {
				t.Fatalf("tick %d particle %d: Y = %v outside [-2, 10]", tick, i, p.Y())
			}
		}
	}
	for i, p := range f.Positions {
		if p.X() != before[i].X() || p.Z() != before[i].Z() {
			t.Fatalf("particle %d moved horizontally: %v -> %v", i, before[i], p)
		}
	}
	if f.Resets() == 0 {
		t.Error("no particle ever wrapped in 2000 ticks")
	}
}

func TestParticleFieldDeterministic(t *testing.T) {
	a := NewParticleField(DefaultSnowConfig(), newTestRand())
	b := NewParticleField(DefaultSnowConfig(), newTestRand())
	for i := range a.Positions {
		if a.Positions[i] != b.Positions[i] {
			t.Fatalf("particle %d differs: %v vs %v", i, a.Positions[i], b.Positions[i])
		}
	}
}
