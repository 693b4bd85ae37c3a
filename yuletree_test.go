package yuletree

import (
	"testing"
)

func TestRGB(t *testing.T) {
	c := RGB(0x8b4513)
	if r, g, b, a := c.RGBA8(); r != 0x8b || g != 0x45 || b != 0x13 || a != 255 {
		t.Errorf("RGBA8 = %d,%d,%d,%d", r, g, b, a)
	}
	if got := c.Hex(); got != "#8b4513" {
		t.Errorf("Hex = %s, want #8b4513", got)
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ffe700")
	if err != nil {
		t.Fatal(err)
	}
	if c != RGB(0xffe700) {
		t.Errorf("ParseHex = %v, want %v", c, RGB(0xffe700))
	}
	if _, err := ParseHex("yellow"); err == nil {
		t.Error("expected error for non-hex color")
	}
	expectPanic(t, "MustParseHex", func() { MustParseHex("#zz") })
}

func TestBulbPalette(t *testing.T) {
	want := []string{"#ff0000", "#00ff00", "#00ffff", "#ff00ff", "#ffff00"}
	if len(BulbPalette) != len(want) {
		t.Fatalf("palette has %d colors, want %d", len(BulbPalette), len(want))
	}
	for i, c := range BulbPalette {
		if c.Hex() != want[i] {
			t.Errorf("palette[%d] = %s, want %s", i, c.Hex(), want[i])
		}
	}
}

func TestColorLerp(t *testing.T) {
	a := Color{0, 0, 0, 0}
	b := Color{1, 0.5, 0.25, 1}
	if got := a.Lerp(b, 0); !colorNear(got, a) {
		t.Errorf("Lerp 0 = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); !colorNear(got, b) {
		t.Errorf("Lerp 1 = %v, want %v", got, b)
	}
	if got := a.Lerp(b, 0.5); !colorNear(got, Color{0.5, 0.25, 0.125, 0.5}) {
		t.Errorf("Lerp 0.5 = %v", got)
	}
}

func TestColorScaleAndClamp(t *testing.T) {
	c := Color{0.5, 0.8, 1, 0.5}.Scale(2)
	if c != (Color{1, 1.6, 2, 0.5}) {
		t.Errorf("Scale = %v", c)
	}
	if got := c.Clamped(); got != (Color{1, 1, 1, 0.5}) {
		t.Errorf("Clamped = %v", got)
	}
	if got := (Color{-1, 0, 0, 2}).Clamped(); got != (Color{0, 0, 0, 1}) {
		t.Errorf("Clamped negative = %v", got)
	}
}

func TestRangeSample(t *testing.T) {
	rng := newTestRand()
	r := Range{0.5, 2.5}
	for i := 0; i < 1000; i++ {
		v := r.Sample(rng)
		if v < 0.5 || v >= 2.5 {
			t.Fatalf("Sample = %v outside [0.5, 2.5)", v)
		}
	}
	if got := (Range{3, 3}).Sample(rng); got != 3 {
		t.Errorf("degenerate Sample = %v, want 3", got)
	}
	if !r.Contains(2.5) || r.Contains(2.6) {
		t.Error("Contains bounds wrong")
	}
}

func TestNodeTypeString(t *testing.T) {
	tests := []struct {
		t    NodeType
		want string
	}{
		{NodeTypeGroup, "group"},
		{NodeTypeMesh, "mesh"},
		{NodeTypePoints, "points"},
		{NodeType(9), "NodeType(9)"},
	}
	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
