package bough

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newDebugDriver(t *testing.T, root *Node) (*Driver, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	d, err := NewDriver(newRecordSurface(), root, DriverConfig{Debug: true, Logger: &logger, Clock: newFakeClock().Now})
	if err != nil {
		t.Fatal(err)
	}
	return d, &buf
}

func TestDebugModeLogsTicks(t *testing.T) {
	root, a, _ := twoBoxTree()
	d, buf := newDebugDriver(t, root)

	a.Invalidate()
	d.Tick()

	out := buf.String()
	if !strings.Contains(out, `"message":"tick"`) || !strings.Contains(out, `"repainted":true`) {
		t.Errorf("debug log = %s", out)
	}
	if !strings.Contains(out, `"component":"driver"`) {
		t.Errorf("missing component field: %s", out)
	}
}

func TestDebugModeWarnsOnCycle(t *testing.T) {
	root, a, _ := twoBoxTree()
	_, buf := newDebugDriver(t, root)

	a.AddChild(root)
	if !strings.Contains(buf.String(), "child is an ancestor") {
		t.Errorf("expected ancestor warning, got: %s", buf.String())
	}
}

func TestDebugModeWarnsOnDeepTree(t *testing.T) {
	root := NewView("root")
	_, buf := newDebugDriver(t, root)

	n := root
	for i := 0; i < debugMaxTreeDepth+1; i++ {
		c := NewView("deep")
		n.AddChild(c)
		n = c
	}
	if !strings.Contains(buf.String(), "tree depth exceeds threshold") {
		t.Errorf("expected depth warning, got: %s", buf.String())
	}
}

func TestDebugModeOffIsQuiet(t *testing.T) {
	root, a, _ := twoBoxTree()
	d, buf := newDebugDriver(t, root)
	d.SetDebugMode(false)
	buf.Reset()

	a.AddChild(root)
	a.Invalidate()
	d.Tick()
	if buf.Len() != 0 {
		t.Errorf("log should be empty with debug off: %s", buf.String())
	}
}

func TestDebugModeIsPerDriver(t *testing.T) {
	quietRoot, qa, _ := twoBoxTree()
	var quietBuf bytes.Buffer
	quietLog := zerolog.New(&quietBuf)
	if _, err := NewDriver(newRecordSurface(), quietRoot, DriverConfig{Logger: &quietLog}); err != nil {
		t.Fatal(err)
	}
	loudRoot, la, _ := twoBoxTree()
	_, loudBuf := newDebugDriver(t, loudRoot)

	// A driver created later in normal mode must not switch the first off.
	otherRoot, _, _ := twoBoxTree()
	if _, err := NewDriver(newRecordSurface(), otherRoot, DriverConfig{}); err != nil {
		t.Fatal(err)
	}

	qa.AddChild(quietRoot)
	la.AddChild(loudRoot)
	if quietBuf.Len() != 0 {
		t.Errorf("quiet driver logged: %s", quietBuf.String())
	}
	if !strings.Contains(loudBuf.String(), "child is an ancestor") {
		t.Errorf("debug driver did not warn: %s", loudBuf.String())
	}
}

func TestListenerFailureIsLogged(t *testing.T) {
	root, a, _ := twoBoxTree()
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	d, err := NewDriver(newRecordSurface(), root, DriverConfig{Logger: &logger})
	if err != nil {
		t.Fatal(err)
	}
	a.On(EventPointerDown, func(Event) { panic("boom") })

	d.InjectPress(20, 20)
	d.Tick()
	out := buf.String()
	if !strings.Contains(out, `"level":"error"`) || !strings.Contains(out, "boom") || !strings.Contains(out, `"event":"pointerDown"`) {
		t.Errorf("error log = %s", out)
	}
}
