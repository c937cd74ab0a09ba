package glide

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action    string  `json:"action"`
	Label     string  `json:"label,omitempty"`
	DY        float64 `json:"dy,omitempty"`
	Y         float64 `json:"y,omitempty"`
	FromY     float64 `json:"fromY,omitempty"`
	ToY       float64 `json:"toY,omitempty"`
	Frames    int     `json:"frames,omitempty"`
	Value     bool    `json:"value,omitempty"`
	Immediate bool    `json:"immediate,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"wheel": true, "swipe": true, "wait": true, "scroll-to": true,
	"reduce-motion": true, "coarse-pointer": true, "snapshot": true,
}

// TestRunner sequences injected input, signal changes and state snapshots
// across frames for automated scroll testing. Attach to a Host via
// SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	snapshots map[string]ScrollState
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Host via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps, snapshots: make(map[string]ScrollState)}, nil
}

// SetTestRunner attaches a TestRunner to the host. The runner's step method
// is called at the start of every Host frame.
func (h *Host) SetTestRunner(runner *TestRunner) {
	h.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Snapshot returns the controller state recorded under label.
func (r *TestRunner) Snapshot(label string) (ScrollState, bool) {
	s, ok := r.snapshots[label]
	return s, ok
}

// step advances the test runner by one frame. Called from Host.step.
func (r *TestRunner) step(h *Host) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(h.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "snapshot":
		r.snapshots[st.Label] = h.Controller.State()
	case "wheel":
		h.InjectWheel(st.DY)
	case "swipe":
		h.InjectSwipe(st.FromY, st.ToY, st.Frames)
	case "scroll-to":
		if e := h.Controller.Engine(); e != nil {
			e.ScrollTo(st.Y, ScrollToOptions{Immediate: st.Immediate})
		}
	case "reduce-motion":
		h.SetReducedMotion(st.Value)
	case "coarse-pointer":
		h.SetCoarsePointer(st.Value)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(h.injectQueue) == 0 {
		r.done = true
	}
}
