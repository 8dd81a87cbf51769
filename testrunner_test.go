package softwillow

import (
	"os"
	"strings"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "event", "event": "toggle-filled"},
			{"action": "wait", "frames": 3},
			{"action": "quit"}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.events[1] != EventToggleFilled {
		t.Errorf("step 1: expected toggle-filled, got %v", runner.events[1])
	}
	if runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if runner.events[3] != EventQuit {
		t.Errorf("step 3: expected quit, got %v", runner.events[3])
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	cases := map[string]string{
		"not json":      `not json`,
		"empty":         `{"steps": []}`,
		"unknown event": `{"steps": [{"action": "event", "event": "jump"}]}`,
		"unknown step":  `{"steps": [{"action": "click"}]}`,
	}
	for name, data := range cases {
		if _, err := LoadTestScript([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestRunnerDrivesRenderer(t *testing.T) {
	r := newTestRenderer(t, 8, RenderOptions{})
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "event", "event": "toggle-filled"},
		{"action": "wait", "frames": 2},
		{"action": "quit"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	r.SetTestRunner(runner)

	for i := 0; i < 20 && r.Frame(); i++ {
	}

	if r.Running() {
		t.Fatal("quit step should stop the renderer")
	}
	if !r.Options().Filled {
		t.Error("event step should toggle filled")
	}
	// event, wait x2, quit
	if r.FrameCount() != 4 {
		t.Errorf("expected 4 frames, got %d", r.FrameCount())
	}
}

func TestRunnerWaitsForInjectedEvents(t *testing.T) {
	r := newTestRenderer(t, 8, RenderOptions{})
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "event", "event": "toggle-grid"},
		{"action": "event", "event": "toggle-grid"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	r.InjectEvents(EventToggleFilled, EventToggleWireframe)
	r.SetTestRunner(runner)

	r.Frame()
	r.Frame()
	if r.Options().Grid {
		t.Fatal("runner should not inject while the queue is busy")
	}
	r.Frame()
	if !r.Options().Grid {
		t.Fatal("first grid toggle expected on frame 3")
	}
	r.Frame()
	if r.Options().Grid {
		t.Fatal("second grid toggle expected on frame 4")
	}
	r.Frame()
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerScreenshot(t *testing.T) {
	r := newTestRenderer(t, 8, DefaultRenderOptions())
	r.ScreenshotDir = t.TempDir()
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "screenshot", "label": "first frame"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	r.SetTestRunner(runner)
	r.Frame()

	if !runner.Done() {
		t.Error("single-step runner should be done after one frame")
	}
	entries, err := os.ReadDir(r.ScreenshotDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 screenshot, got %d", len(entries))
	}
	if name := entries[0].Name(); !strings.HasSuffix(name, "_000000_first_frame.png") {
		t.Errorf("unexpected file name %q", name)
	}
}
