package bough

import (
	"math"

	"golang.org/x/image/font"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa is the control point distance for approximating a quarter circle
// with a cubic Bézier curve.
const kappa = 0.5522847498307936

// Background fills a rectangle with a solid color, optionally with rounded corners.
type Background struct {
	Bounds  Rect
	Color   Color
	Rounded float64
}

// Paint fills the background. Transparent colors and empty bounds paint nothing.
func (b *Background) Paint(s Surface, _ Rect) {
	if b.Color.Transparent() || !b.Bounds.Paintable() {
		return
	}
	s.FillPath(RoundedRectPath(b.Bounds, b.Rounded), b.Color)
}

// Border strokes the outline of a rectangle. The stroke is inset by half the
// line width so it stays inside Bounds.
type Border struct {
	Bounds    Rect
	Color     Color
	LineWidth float64
	Rounded   float64
}

// Paint strokes the border.
func (b *Border) Paint(s Surface, _ Rect) {
	if b.Color.Transparent() || b.LineWidth <= 0 {
		return
	}
	r := b.Bounds.Inset(b.LineWidth / 2)
	if !r.Paintable() {
		return
	}
	radius := math.Max(0, b.Rounded-b.LineWidth/2)
	s.StrokePath(RoundedRectPath(r, radius), b.LineWidth, b.Color)
}

// Text draws a single line of text anchored at (X, Y).
type Text struct {
	Content  string
	X, Y     float64
	Color    Color
	Align    TextAlign
	Baseline TextBaseline
	Font     font.Face
}

// Paint draws the text. Empty strings paint nothing.
func (t *Text) Paint(s Surface, _ Rect) {
	if t.Content == "" || t.Color.Transparent() {
		return
	}
	s.FillText(t.Content, t.X, t.Y, TextStyle{
		Color:    t.Color,
		Align:    t.Align,
		Baseline: t.Baseline,
		Font:     t.Font,
	})
}

// RoundedRectPath returns a closed path tracing r clockwise (in a Y-down
// space) with corners of the given radius. The radius is clamped to half the
// shorter side; a radius of zero yields a plain rectangle.
func RoundedRectPath(r Rect, radius float64) *path.Data {
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.W, r.Y+r.H
	radius = math.Min(radius, math.Min(r.W, r.H)/2)
	if radius <= 0 {
		return (&path.Data{}).
			MoveTo(vec.Vec2{X: x0, Y: y0}).
			LineTo(vec.Vec2{X: x1, Y: y0}).
			LineTo(vec.Vec2{X: x1, Y: y1}).
			LineTo(vec.Vec2{X: x0, Y: y1}).
			Close()
	}
	k := radius * kappa
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0 + radius, Y: y0}).
		LineTo(vec.Vec2{X: x1 - radius, Y: y0}).
		CubeTo(vec.Vec2{X: x1 - radius + k, Y: y0}, vec.Vec2{X: x1, Y: y0 + radius - k}, vec.Vec2{X: x1, Y: y0 + radius}).
		LineTo(vec.Vec2{X: x1, Y: y1 - radius}).
		CubeTo(vec.Vec2{X: x1, Y: y1 - radius + k}, vec.Vec2{X: x1 - radius + k, Y: y1}, vec.Vec2{X: x1 - radius, Y: y1}).
		LineTo(vec.Vec2{X: x0 + radius, Y: y1}).
		CubeTo(vec.Vec2{X: x0 + radius - k, Y: y1}, vec.Vec2{X: x0, Y: y1 - radius + k}, vec.Vec2{X: x0, Y: y1 - radius}).
		LineTo(vec.Vec2{X: x0, Y: y0 + radius}).
		CubeTo(vec.Vec2{X: x0, Y: y0 + radius - k}, vec.Vec2{X: x0 + radius - k, Y: y0}, vec.Vec2{X: x0 + radius, Y: y0}).
		Close()
}

// --- Node decoration accessors ---

// fitDecorations sizes the border to the node's local bounds, the background
// to the area inside the border's center line, and re-anchors the text
// according to the node type.
func (n *Node) fitDecorations() {
	local := n.bounds.Local()
	n.border.Bounds = local
	n.background.Bounds = local.Inset(n.border.LineWidth / 2)
	if n.text == nil {
		return
	}
	switch n.Type {
	case NodeTypeButton:
		n.text.X, n.text.Y = local.W/2, local.H/2
	default:
		n.text.X, n.text.Y = labelTextInset, local.H/2
	}
}

// BackgroundColor returns the background fill color.
func (n *Node) BackgroundColor() Color { return n.background.Color }

// SetBackgroundColor sets the background fill color and invalidates the node.
func (n *Node) SetBackgroundColor(c Color) {
	n.background.Color = c
	n.Invalidate()
}

// BorderColor returns the border stroke color.
func (n *Node) BorderColor() Color { return n.border.Color }

// SetBorderColor sets the border stroke color and invalidates the node.
func (n *Node) SetBorderColor(c Color) {
	n.border.Color = c
	n.Invalidate()
}

// BorderLineWidth returns the border stroke width.
func (n *Node) BorderLineWidth() float64 { return n.border.LineWidth }

// SetBorderLineWidth sets the border stroke width and invalidates the node.
func (n *Node) SetBorderLineWidth(w float64) {
	n.border.LineWidth = math.Max(0, w)
	n.fitDecorations()
	n.Invalidate()
}

// SetBorderRounded sets the corner radius shared by background and border.
func (n *Node) SetBorderRounded(radius float64) {
	radius = math.Max(0, radius)
	n.border.Rounded = radius
	n.background.Rounded = radius
	n.Invalidate()
}

// Text returns the node's text, or "" when it has none.
func (n *Node) Text() string {
	if n.text == nil {
		return ""
	}
	return n.text.Content
}

// SetText replaces the node's text, creating a left-aligned text decoration
// if the node has none yet.
func (n *Node) SetText(s string) {
	n.ensureText().Content = s
	n.Invalidate()
}

// SetTextColor sets the text color.
func (n *Node) SetTextColor(c Color) {
	n.ensureText().Color = c
	n.Invalidate()
}

// SetFont sets the font face used for the node's text. nil selects the
// surface default.
func (n *Node) SetFont(face font.Face) {
	n.ensureText().Font = face
	n.Invalidate()
}

func (n *Node) ensureText() *Text {
	if n.text == nil {
		n.text = &Text{Color: ColorBlack, Baseline: BaselineMiddle}
		if n.Type == NodeTypeButton {
			n.text.Align = TextAlignCenter
		}
		n.fitDecorations()
	}
	return n.text
}
