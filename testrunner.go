package willowui

import (
	"encoding/json"
	"fmt"
)

// testStep is one scripted action. Coordinates are in root space; Frames is
// the hold length for "hold" and the pause length for "wait".
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the document shape: {"steps": [...]}.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// scriptActions maps each action name to what it does to the scene.
var scriptActions = map[string]func(r *TestRunner, s *Scene, st testStep){
	"click":      func(_ *TestRunner, s *Scene, st testStep) { s.InjectClick(st.X, st.Y) },
	"hold":       func(_ *TestRunner, s *Scene, st testStep) { s.InjectHold(st.X, st.Y, st.Frames) },
	"hover":      func(_ *TestRunner, s *Scene, st testStep) { s.InjectHover(st.X, st.Y) },
	"wheel":      func(_ *TestRunner, s *Scene, st testStep) { s.InjectWheel(st.X, st.Y, st.DY) },
	"screenshot": func(_ *TestRunner, s *Scene, st testStep) { s.Screenshot(st.Label) },
	"wait": func(r *TestRunner, _ *Scene, st testStep) {
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // the current frame is the first
		}
	},
}

// TestRunner plays a scripted UI session: pointer clicks, holds that drive
// repeat buttons, hovers, wheel steps over scroll viewers, pauses and labeled
// screenshots. A step starts only after the injected events of the previous
// one have all been consumed.
//
// Actions and their fields: "click" (x, y), "hold" (x, y, frames),
// "hover" (x, y), "wheel" (x, y, dy), "wait" (frames), "screenshot" (label).
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON script. An empty script or an unknown action
// is an error.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if _, ok := scriptActions[st.Action]; !ok {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner makes runner drive the scene's input. It steps at the start
// of each Update so an injected event is seen in the same frame.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether the last step has run and its input was consumed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step runs at most one action per frame.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// A hold or click is still playing out.
	if len(s.injectQueue) > 0 {
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

	scriptActions[st.Action](r, s, st)

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
