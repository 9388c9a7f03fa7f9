package bough

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to a Surface.
type Color struct {
	R, G, B, A float64
}

// ColorTransparent is the zero color; decorations using it paint nothing.
var ColorTransparent = Color{}

// ColorWhite and ColorBlack are the default fill and text colors.
var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

var _ color.Color = Color{}

// RGBA implements color.Color with alpha-premultiplied 16-bit components.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(clamp01(c.A)*0xffff + 0.5)
	r = uint32(clamp01(c.R)*clamp01(c.A)*0xffff + 0.5)
	g = uint32(clamp01(c.G)*clamp01(c.A)*0xffff + 0.5)
	b = uint32(clamp01(c.B)*clamp01(c.A)*0xffff + 0.5)
	return r, g, b, a
}

// Transparent reports whether painting with c has no visible effect.
func (c Color) Transparent() bool {
	return c.A <= 0
}

// Lerp blends c toward other by t in [0, 1].
func (c Color) Lerp(other Color, t float64) Color {
	t = clamp01(t)
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// ParseHexColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return Color{}, fmt.Errorf("parse color %q: want #rgb, #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// MustParseHexColor is like ParseHexColor but panics on malformed input.
// Intended for package-level color literals.
func MustParseHexColor(s string) Color {
	c, err := ParseHexColor(s)
	if err != nil {
		panic("bough: " + err.Error())
	}
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// NodeType distinguishes the built-in node flavours. All share the Node struct.
type NodeType uint8

const (
	NodeTypeView      NodeType = iota // plain node with background and border
	NodeTypeGrid                      // rows x cols layout panel
	NodeTypeStack                     // vertical or horizontal flow panel
	NodeTypeButton                    // view with centered text and press highlight
	NodeTypeLabel                     // view with left-aligned text
	NodeTypeTextField                 // label that edits its text on key input
)

var nodeTypeNames = [...]string{"view", "grid", "stack", "button", "label", "textfield"}

func (t NodeType) String() string {
	if int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return "NodeType(" + strconv.Itoa(int(t)) + ")"
}

// EventType identifies a kind of event. The set is closed; listeners are keyed by it.
type EventType uint8

const (
	EventPaint        EventType = iota // damage notification, coalesced by the driver
	EventPointerMove                   // pointer moved over a node
	EventPointerDown                   // pointer button pressed
	EventPointerUp                     // pointer button released
	EventKeyDown                       // key pressed while the node has focus
	EventKeyUp                         // key released while the node has focus
	EventClick                         // down/up pair within the move threshold
	EventDoubleClick                   // second click on the same node within the interval
	EventPointerEnter                  // pointer started hovering the node
	EventPointerLeave                  // pointer stopped hovering the node
	EventGotFocus                      // node received keyboard focus
	EventLostFocus                     // node lost keyboard focus

	numEventTypes
)

var eventTypeNames = [...]string{
	"paint", "pointerMove", "pointerDown", "pointerUp", "keyDown", "keyUp",
	"click", "doubleClick", "pointerEnter", "pointerLeave", "gotFocus", "lostFocus",
}

func (t EventType) String() string {
	if t < numEventTypes {
		return eventTypeNames[t]
	}
	return "EventType(" + strconv.Itoa(int(t)) + ")"
}

// MouseButton identifies the pressed pointer button.
type MouseButton uint8

const (
	ButtonNone      MouseButton = iota // no button held
	ButtonPrimary                      // primary (left) button
	ButtonSecondary                    // secondary (right) button
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// StackStyle selects the primary axis of a stack panel.
type StackStyle uint8

const (
	StackVertical   StackStyle = iota // children flow top to bottom
	StackHorizontal                   // children flow left to right
)

// ParseStackStyle maps "vertical" and "horizontal"; anything else is vertical.
func ParseStackStyle(s string) StackStyle {
	if strings.EqualFold(s, "horizontal") {
		return StackHorizontal
	}
	return StackVertical
}

// TextAlign controls horizontal placement of text relative to its anchor.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // anchor is the left edge
	TextAlignCenter                  // anchor is the horizontal center
	TextAlignRight                   // anchor is the right edge
)

// TextBaseline controls vertical placement of text relative to its anchor.
type TextBaseline uint8

const (
	BaselineMiddle     TextBaseline = iota // anchor is the vertical middle
	BaselineTop                            // anchor is the top of the line
	BaselineAlphabetic                     // anchor is the glyph baseline
)
