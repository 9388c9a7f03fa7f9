// Package demo builds the sample tree shown by the bough command.
package demo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yohamta/donburi"

	"github.com/phanxgames/bough"
	"github.com/phanxgames/bough/ecs"
)

var (
	colorBackground = bough.MustParseHexColor("#23202d")
	colorPanel      = bough.MustParseHexColor("#f2f0f5")
	colorButton     = bough.MustParseHexColor("#4db4ff")
	colorButtonAlt  = bough.MustParseHexColor("#ffb333")
	colorBorder     = bough.MustParseHexColor("#3a3548")
	colorFocus      = bough.MustParseHexColor("#e64d4d")
	colorHover      = bough.MustParseHexColor("#ffffff")
)

const (
	margin    = 20
	rowHeight = 40
	gridRows  = 2
	gridCols  = 3
)

// Scene holds the nodes of the demo tree that callers and tests address.
type Scene struct {
	Root    *bough.Node
	Panel   *bough.Stack
	Title   *bough.Node
	Grid    *bough.Grid
	Buttons []*bough.Node
	Input   *bough.Node
	Status  *bough.Node

	World  donburi.World
	bridge *ecs.Bridge
}

// ClickCount is the per-button component counted from bridged click events.
type ClickCount struct {
	N int
}

var clickCount = donburi.NewComponentType[ClickCount]()

// Build creates the demo tree sized to w × h. It is a stack holding a title,
// a grid of buttons, a text field, and a status line that reports clicks and
// focus changes.
func Build(w, h float64) *Scene {
	s := &Scene{}

	s.Root = bough.NewView("root")
	s.Root.ID = "root"
	s.Root.SetBounds(bough.NewRect(0, 0, w, h))
	s.Root.SetBackgroundColor(colorBackground)

	s.Panel = bough.NewStack("panel", bough.StackVertical)
	s.Panel.ID = "panel"
	s.Panel.SetBackgroundColor(colorPanel)
	s.Panel.SetBorderColor(colorBorder)
	s.Panel.SetBorderLineWidth(2)
	s.Panel.SetBorderRounded(8)
	s.Panel.SetPadding(10)
	s.Panel.SetBounds(bough.NewRect(margin, margin, w-2*margin, h-2*margin))
	s.Root.AddChild(s.Panel.Node)

	s.Title = bough.NewLabel("title", "bough demo")
	s.Title.ID = "title"
	s.Title.SetBounds(bough.NewRect(0, 0, 0, rowHeight))
	s.Panel.AddChild(s.Title)

	s.Grid = bough.NewGrid("buttons", gridRows, gridCols)
	s.Grid.ID = "buttons"
	s.Grid.SetBounds(bough.NewRect(0, 0, 0, gridRows*rowHeight*1.5))
	s.Panel.AddChild(s.Grid.Node)

	for i := 0; i < gridRows*gridCols; i++ {
		b := s.newButton(i)
		s.Grid.AddChild(b, i/gridCols, i%gridCols, 1, 1)
		s.Buttons = append(s.Buttons, b)
	}

	s.Input = bough.NewTextField("input")
	s.Input.ID = "input"
	s.Input.SetBackgroundColor(bough.ColorWhite)
	s.Input.SetBorderColor(colorBorder)
	s.Input.SetBorderLineWidth(1)
	s.Input.SetBounds(bough.NewRect(0, 0, 0, rowHeight))
	s.Input.On(bough.EventGotFocus, func(bough.Event) {
		s.Input.SetBorderColor(colorFocus)
		s.setStatus("typing")
	})
	s.Input.On(bough.EventLostFocus, func(bough.Event) {
		s.Input.SetBorderColor(colorBorder)
		s.setStatus(fmt.Sprintf("entered %q", s.Input.Text()))
	})
	s.Panel.AddChild(s.Input)

	s.Status = bough.NewLabel("status", "click a button")
	s.Status.ID = "status"
	s.Status.SetBounds(bough.NewRect(0, 0, 0, rowHeight))
	s.Panel.AddChild(s.Status)

	return s
}

// Attach binds the buttons to the scene's world and flushes bridged events at
// the end of every tick of d. Calling it twice has no further effect.
func (s *Scene) Attach(d *bough.Driver) {
	if s.bridge != nil {
		return
	}
	s.World = donburi.NewWorld()
	s.bridge = ecs.NewBridge(s.World)
	for _, b := range s.Buttons {
		e := s.bridge.Bind(b, bough.EventClick)
		entry := s.World.Entry(e)
		entry.AddComponent(clickCount)
		clickCount.SetValue(entry, ClickCount{})
	}
	ecs.NodeEventType.Subscribe(s.World, func(w donburi.World, ev ecs.NodeEvent) {
		if ev.Type != bough.EventClick || !w.Valid(ev.Entity) {
			return
		}
		entry := w.Entry(ev.Entity)
		if entry.HasComponent(clickCount) {
			clickCount.Get(entry).N++
		}
	})
	s.bridge.Attach(d)
}

// Clicks returns the click count of every button clicked at least once.
func (s *Scene) Clicks() map[string]int {
	counts := make(map[string]int)
	if s.bridge == nil {
		return counts
	}
	for _, b := range s.Buttons {
		e, ok := s.bridge.Entity(b)
		if !ok {
			continue
		}
		if n := clickCount.Get(s.World.Entry(e)).N; n > 0 {
			counts[b.Name] = n
		}
	}
	return counts
}

// FormatClicks renders Clicks as "name=n" pairs sorted by name, or "none".
func (s *Scene) FormatClicks() string {
	counts := s.Clicks()
	if len(counts) == 0 {
		return "none"
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%d", name, counts[name])
	}
	return strings.Join(parts, " ")
}

func (s *Scene) newButton(i int) *bough.Node {
	name := fmt.Sprintf("button%d", i+1)
	b := bough.NewButton(name, fmt.Sprintf("Button %d", i+1))
	b.ID = name
	b.SetBackgroundColor(colorButton)
	b.SetBorderColor(colorBorder)
	b.SetBorderLineWidth(2)
	b.SetBorderRounded(6)

	toggled := false
	b.On(bough.EventClick, func(ev bough.Event) {
		s.setStatus(fmt.Sprintf("clicked %s at %.0f,%.0f", name, ev.Pointer.X, ev.Pointer.Y))
	})
	b.On(bough.EventDoubleClick, func(bough.Event) {
		toggled = !toggled
		if toggled {
			b.SetBackgroundColor(colorButtonAlt)
		} else {
			b.SetBackgroundColor(colorButton)
		}
		s.setStatus("double-clicked " + name)
	})
	b.On(bough.EventPointerEnter, func(bough.Event) { b.SetBorderColor(colorHover) })
	b.On(bough.EventPointerLeave, func(bough.Event) { b.SetBorderColor(colorBorder) })
	return b
}

func (s *Scene) setStatus(text string) {
	if s.Status != nil {
		s.Status.SetText(text)
	}
}
