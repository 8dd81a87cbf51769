package softwillow

import (
	"encoding/json"
	"fmt"
)

// testStep is a single action in a test script.
type testStep struct {
	Action string `json:"action"`
	Event  string `json:"event,omitempty"`
	Label  string `json:"label,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input events and screenshots across frames
// for automated headless runs. Attach to a Renderer via SetTestRunner.
//
// Supported actions:
//
//	{"action": "event", "event": "toggle-filled"}
//	{"action": "wait", "frames": 3}
//	{"action": "screenshot", "label": "filled"}
//	{"action": "quit"}
type TestRunner struct {
	steps     []testStep
	events    []Event
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner.
// Unknown actions and event names are rejected up front.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	events := make([]Event, len(script.Steps))
	for i, st := range script.Steps {
		switch st.Action {
		case "event":
			ev, err := ParseEvent(st.Event)
			if err != nil {
				return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
			}
			events[i] = ev
		case "quit":
			events[i] = EventQuit
		case "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps, events: events}, nil
}

// SetTestRunner attaches a TestRunner. Its step method runs at the start of
// every Frame, before input is processed.
func (r *Renderer) SetTestRunner(runner *TestRunner) {
	r.testRunner = runner
}

// Done reports whether all steps have been executed.
func (t *TestRunner) Done() bool {
	return t.done
}

// step advances the runner by one frame.
func (t *TestRunner) step(r *Renderer) {
	if t.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(r.injectQueue) > 0 {
		return
	}
	if t.waitCount > 0 {
		t.waitCount--
		return
	}
	if t.cursor >= len(t.steps) {
		t.done = true
		return
	}

	st := t.steps[t.cursor]
	ev := t.events[t.cursor]
	t.cursor++

	switch st.Action {
	case "screenshot":
		r.Screenshot(st.Label)
	case "event", "quit":
		r.InjectEvent(ev)
	case "wait":
		if st.Frames > 0 {
			t.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if t.cursor >= len(t.steps) && t.waitCount == 0 && len(r.injectQueue) == 0 {
		t.done = true
	}
}
