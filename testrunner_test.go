package bough

import (
	"errors"
	"strings"
	"testing"
)

type fakeSnapshotter struct {
	labels []string
	err    error
}

func (f *fakeSnapshotter) Snapshot(label string) error {
	if f.err != nil {
		return f.err
	}
	f.labels = append(f.labels, label)
	return nil
}

func TestLoadTestScript(t *testing.T) {
	r, err := LoadTestScript([]byte(`{"steps": [
		{"action": "click", "x": 20, "y": 20},
		{"action": "snapshot", "label": "after"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	if r.Len() != 2 || r.Done() {
		t.Errorf("Len = %d Done = %v", r.Len(), r.Done())
	}
}

func TestLoadTestScriptErrors(t *testing.T) {
	tests := []struct {
		name, src, want string
	}{
		{"bad json", `{"steps": [`, "parse test script"},
		{"empty", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "teleport"}]}`, `unknown action "teleport"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTestScript([]byte(tt.src))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
	if _, err := LoadTestScript([]byte(`{"steps": []}`)); !errors.Is(err, ErrEmptyScript) {
		t.Errorf("err = %v, want ErrEmptyScript", err)
	}
}

func TestTestRunnerRun(t *testing.T) {
	d, field := newFieldTree(t)
	_ = d.SetFocus(nil)

	r, err := LoadTestScript([]byte(`{"steps": [
		{"action": "click", "x": 20, "y": 10},
		{"action": "type", "text": "hey"},
		{"action": "key", "key": "Backspace"},
		{"action": "snapshot", "label": "typed"},
		{"action": "wait", "frames": 2}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	surface := d.Surface().(*recordSurface)
	surface.reset()
	snap := &fakeSnapshotter{}
	var textAtSnap string
	var paintedAtSnap []string
	snapWrap := snapshotFunc(func(label string) error {
		textAtSnap = field.Text()
		for _, op := range surface.opsOf("text") {
			paintedAtSnap = append(paintedAtSnap, op.Text)
		}
		return snap.Snapshot(label)
	})

	if err := r.Run(d, snapWrap); err != nil {
		t.Fatal(err)
	}
	if !r.Done() {
		t.Error("runner should be done")
	}
	if textAtSnap != "he" {
		t.Errorf("text at snapshot = %q, want queued input drained first", textAtSnap)
	}
	if n := len(paintedAtSnap); n == 0 || paintedAtSnap[n-1] != "he" {
		t.Errorf("text painted before snapshot = %q, want last %q", paintedAtSnap, "he")
	}
	if len(snap.labels) != 1 || snap.labels[0] != "typed" {
		t.Errorf("labels = %v", snap.labels)
	}
	if d.Focus() != field {
		t.Error("click should have focused the field")
	}
	if err := r.Step(d, nil); err != nil {
		t.Errorf("Step after done = %v", err)
	}
}

func TestTestRunnerSnapshotErrors(t *testing.T) {
	root, _, _ := twoBoxTree()
	d := newTestDriver(t, root)

	r, _ := LoadTestScript([]byte(`{"steps": [{"action": "snapshot", "label": "x"}]}`))
	if err := r.Run(d, nil); err == nil || !strings.Contains(err.Error(), "no snapshotter") {
		t.Errorf("nil snapshotter err = %v", err)
	}

	r, _ = LoadTestScript([]byte(`{"steps": [{"action": "screenshot", "label": "x"}, {"action": "tick"}]}`))
	boom := errors.New("disk full")
	if err := r.Run(d, &fakeSnapshotter{err: boom}); !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapping boom", err)
	}
	if r.Done() {
		t.Error("runner should stop at the failing step")
	}
}

func TestTestRunnerInputActionsOnlyQueue(t *testing.T) {
	root, a, _ := twoBoxTree()
	d := newTestDriver(t, root)
	rec := &recorder{}
	rec.watch(a, EventPointerDown, EventPointerUp, EventPointerMove)

	r, _ := LoadTestScript([]byte(`{"steps": [
		{"action": "press", "x": 20, "y": 20},
		{"action": "move", "x": 22, "y": 20},
		{"action": "release", "x": 22, "y": 20},
		{"action": "tick"}
	]}`))
	for i := 0; i < 3; i++ {
		_ = r.Step(d, nil)
	}
	if len(rec.log) != 0 || d.Pending() != 3 {
		t.Fatalf("log=%v pending=%d before tick", rec.log, d.Pending())
	}
	_ = r.Step(d, nil)
	assertLog(t, rec.log, "a:pointerDown", "a:pointerMove", "a:pointerUp")
}

type snapshotFunc func(string) error

func (f snapshotFunc) Snapshot(label string) error { return f(label) }
