package yuletree

import "testing"

func TestLoadTestScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{"steps": [`},
		{"no steps", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "click"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadTestScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestTestRunnerSequence(t *testing.T) {
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "spin"},
		{"action": "resize", "width": 400, "height": 100},
		{"action": "pause"},
		{"action": "resume"},
		{"action": "quit"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	app, _ := newTestApp(t)
	app.SetTestRunner(runner)

	// wait: 3 frames including the one that reads it
	for range 3 {
		app.Update()
	}
	if app.PendingScreenshots() {
		t.Fatal("screenshot taken before wait elapsed")
	}

	app.Update()
	if !app.PendingScreenshots() || app.screenshotQueue[0] != "spin" {
		t.Fatalf("screenshot queue = %v, want [spin]", app.screenshotQueue)
	}

	app.Update()
	assertNear(t, "aspect", app.Camera().Aspect, 4)

	app.Update()
	if !app.Paused() {
		t.Error("pause step did not pause")
	}
	frame := app.Frame()

	app.Update()
	if app.Paused() {
		t.Error("resume step did not resume")
	}
	if app.Frame() != frame+1 {
		t.Errorf("Frame = %d, want %d", app.Frame(), frame+1)
	}

	app.Update()
	if !app.QuitRequested() {
		t.Error("quit step did not request quit")
	}
	if !runner.Done() {
		t.Error("runner not done after last step")
	}
}

func TestTestRunnerDoneIsSticky(t *testing.T) {
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "pause"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	app, _ := newTestApp(t)
	app.SetTestRunner(runner)
	app.Update()
	app.SetPaused(false)
	app.Update()
	if !runner.Done() || app.Paused() {
		t.Errorf("done=%v paused=%v, want done and not re-paused", runner.Done(), app.Paused())
	}
}
