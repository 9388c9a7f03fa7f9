package bough

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmptyScript is returned by LoadTestScript for a script with no steps.
var ErrEmptyScript = errors.New("no steps")

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Key    string  `json:"key,omitempty"`
	Text   string  `json:"text,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// Snapshotter captures the current surface contents under a label.
type Snapshotter interface {
	Snapshot(label string) error
}

// TestRunner replays a scripted sequence of input and snapshots against a
// Driver for automated visual testing.
//
// Input actions (click, press, release, move, hover, drag, key, type) only
// queue events; "tick" drains once and "wait" drains frames times. A
// "snapshot" step drains any pending events before capturing.
type TestRunner struct {
	steps  []testStep
	cursor int
	done   bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: %w", ErrEmptyScript)
	}
	for i, st := range script.Steps {
		if !knownAction(st.Action) {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func knownAction(a string) bool {
	switch a {
	case "click", "press", "release", "move", "hover", "drag", "key", "type",
		"tick", "wait", "snapshot", "screenshot":
		return true
	}
	return false
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Len returns the number of steps in the script.
func (r *TestRunner) Len() int {
	return len(r.steps)
}

// Step executes the next step. snap may be nil when the script takes no
// snapshots.
func (r *TestRunner) Step(d *Driver, snap Snapshotter) error {
	if r.done {
		return nil
	}
	st := r.steps[r.cursor]
	r.cursor++
	if r.cursor >= len(r.steps) {
		r.done = true
	}

	switch st.Action {
	case "click":
		d.InjectClick(st.X, st.Y)
	case "press":
		d.InjectPress(st.X, st.Y)
	case "release":
		d.InjectRelease(st.X, st.Y)
	case "move":
		d.InjectMove(st.X, st.Y)
	case "hover":
		d.InjectHover(st.X, st.Y)
	case "drag":
		d.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "key":
		d.InjectKey(st.Key)
	case "type":
		d.InjectText(st.Text)
	case "tick":
		d.Tick()
	case "wait":
		for i := 0; i < max(st.Frames, 1); i++ {
			d.Tick()
		}
	case "snapshot", "screenshot":
		settle(d)
		if snap == nil {
			return fmt.Errorf("step %d: snapshot %q: no snapshotter", r.cursor-1, st.Label)
		}
		if err := snap.Snapshot(st.Label); err != nil {
			return fmt.Errorf("step %d: %w", r.cursor-1, err)
		}
	}
	return nil
}

// Run executes every remaining step and drains any events left queued at the
// end. It stops at the first snapshot error.
func (r *TestRunner) Run(d *Driver, snap Snapshotter) error {
	for !r.done {
		if err := r.Step(d, snap); err != nil {
			return err
		}
	}
	settle(d)
	return nil
}

// maxSettleTicks bounds settle for listeners that keep queueing events.
const maxSettleTicks = 8

// settle ticks until the queue is empty, so repaints requested by listeners
// during one drain land before a snapshot.
func settle(d *Driver) {
	for i := 0; i < maxSettleTicks && d.Pending() > 0; i++ {
		d.Tick()
	}
}
