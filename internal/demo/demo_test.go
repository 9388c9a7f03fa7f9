package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/bough"
	"github.com/phanxgames/bough/raster"
)

func newDriven(t *testing.T) (*Scene, *bough.Driver) {
	t.Helper()
	s := Build(400, 300)
	d, err := bough.NewDriver(raster.NewCanvas(400, 300), s.Root, bough.DriverConfig{})
	require.NoError(t, err)
	s.Attach(d)
	d.Start()
	return s, d
}

func TestBuildLayout(t *testing.T) {
	s := Build(400, 300)

	require.Len(t, s.Buttons, gridRows*gridCols)
	assert.Equal(t, bough.NewRect(margin, margin, 360, 260), s.Panel.Bounds())
	assert.Equal(t, bough.NewRect(0, 0, 360, rowHeight), s.Title.Bounds())
	assert.Equal(t, s.Root, s.Status.Root())
	assert.Equal(t, "click a button", s.Status.Text())
}

func TestClickUpdatesStatusAndCount(t *testing.T) {
	s, d := newDriven(t)

	first := s.Buttons[0].AbsoluteBounds()
	d.InjectClick(first.X+5, first.Y+5)
	d.Tick()
	assert.Equal(t, "clicked button1 at 5,5", s.Status.Text())

	// A second click inside the double-click interval counts as a click too.
	d.InjectClick(first.X+6, first.Y+6)
	d.Tick()
	assert.Equal(t, "double-clicked button1", s.Status.Text())
	assert.Equal(t, map[string]int{"button1": 2}, s.Clicks())

	second := s.Buttons[1].AbsoluteBounds()
	d.InjectClick(second.X+1, second.Y+1)
	d.Tick()
	assert.Equal(t, "button1=2 button2=1", s.FormatClicks())
}

func TestClicksBeforeAttach(t *testing.T) {
	s := Build(400, 300)
	assert.Empty(t, s.Clicks())
	assert.Equal(t, "none", s.FormatClicks())
}

func TestAttachTwiceIsNoop(t *testing.T) {
	s, d := newDriven(t)
	world := s.World
	s.Attach(d)
	assert.Same(t, world, s.World)

	b := s.Buttons[2].AbsoluteBounds()
	d.InjectClick(b.X+2, b.Y+2)
	d.Tick()
	assert.Equal(t, map[string]int{"button3": 1}, s.Clicks())
}

func TestInputFocusStatus(t *testing.T) {
	s, d := newDriven(t)

	in := s.Input.AbsoluteBounds()
	d.InjectClick(in.X+4, in.Y+4)
	d.Tick()
	assert.Equal(t, "typing", s.Status.Text())

	d.InjectText("hi")
	b := s.Buttons[0].AbsoluteBounds()
	d.InjectClick(b.X+1, b.Y+1)
	d.Tick()
	assert.Equal(t, "hi", s.Input.Text())
	assert.Equal(t, `entered "hi"`, s.Status.Text())
}
