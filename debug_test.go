package yuletree

import (
	"bytes"
	"strings"
	"testing"
)

func captureDebug(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := debugOut
	debugOut = &buf
	t.Cleanup(func() { debugOut = old })
	return &buf
}

func TestRendererDebugLog(t *testing.T) {
	buf := captureDebug(t)
	r, _, cam := newTestRenderer(200, 100)
	scene := NewScene()
	scene.Add(NewMesh("tri", facingTriangle(), NewEmissiveMaterial(ColorWhite, 1)))

	r.Render(scene, cam)
	if buf.Len() != 0 {
		t.Fatalf("logged without debug mode: %q", buf.String())
	}

	r.SetDebugMode(true)
	r.Render(scene, cam)
	out := buf.String()
	for _, want := range []string{"[yuletree] project:", "commands: 1", "triangles: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("debug output %q missing %q", out, want)
		}
	}
}

func TestLogfPrefix(t *testing.T) {
	buf := captureDebug(t)
	Logf("hello %d", 3)
	if got := buf.String(); got != "[yuletree] hello 3\n" {
		t.Errorf("Logf wrote %q", got)
	}
}

func TestDebugCheckTreeDepthWarns(t *testing.T) {
	buf := captureDebug(t)
	scene := NewScene()
	scene.SetDebugMode(true)
	defer scene.SetDebugMode(false)

	n := scene.Root()
	for i := 0; i < debugMaxTreeDepth; i++ {
		child := NewGroup("deep")
		n.AddChild(child)
		n = child
	}
	if !strings.Contains(buf.String(), "warning: tree depth 33 exceeds 32") {
		t.Errorf("no depth warning in %q", buf.String())
	}
}

func TestDebugCheckChildCountWarns(t *testing.T) {
	buf := captureDebug(t)
	scene := NewScene()
	scene.SetDebugMode(true)
	defer scene.SetDebugMode(false)

	parent := NewGroup("busy")
	for i := 0; i <= debugMaxChildCount; i++ {
		parent.AddChild(NewGroup("c"))
	}
	if !strings.Contains(buf.String(), `node "busy" has`) {
		t.Errorf("no child count warning in %q", buf.String())
	}
}
