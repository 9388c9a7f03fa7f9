package bough

import (
	"image"
	"math"
)

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
//
// A rectangle with a negative width or height is empty. EmptyRect is the
// canonical empty value and is the identity element of Union.
type Rect struct {
	X, Y, W, H float64
}

// EmptyRect contains no points and is ignored by Union.
var EmptyRect = Rect{0, 0, -1, -1}

// NewRect is shorthand for Rect{X: x, Y: y, W: w, H: h}.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// IsEmpty reports whether r is an empty rectangle (negative width or height).
func (r Rect) IsEmpty() bool {
	return r.W < 0 || r.H < 0
}

// Paintable reports whether r has positive area.
func (r Rect) Paintable() bool {
	return r.W > 0 && r.H > 0
}

// Intersection returns the largest rectangle contained in both r and o.
// Disjoint operands produce a rectangle with non-positive width or height,
// which is still representable but never paintable.
func (r Rect) Intersection(o Rect) Rect {
	if r.IsEmpty() || o.IsEmpty() {
		return EmptyRect
	}
	x1 := math.Max(r.X, o.X)
	y1 := math.Max(r.Y, o.Y)
	x2 := math.Min(r.X+r.W, o.X+o.W)
	y2 := math.Min(r.Y+r.H, o.Y+o.H)
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Union returns the smallest rectangle containing both r and o.
// If either operand is empty the other is returned unchanged.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		if o.IsEmpty() {
			return EmptyRect
		}
		return o
	}
	if o.IsEmpty() {
		return r
	}
	x1 := math.Min(r.X, o.X)
	y1 := math.Min(r.Y, o.Y)
	x2 := math.Max(r.X+r.W, o.X+o.W)
	y2 := math.Max(r.Y+r.H, o.Y+o.H)
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Contains reports whether the point (px, py) lies inside the rectangle.
// The left and top edges are inside, the right and bottom edges are not.
// Empty rectangles contain nothing.
func (r Rect) Contains(px, py float64) bool {
	if r.IsEmpty() {
		return false
	}
	return px >= r.X && px < r.X+r.W &&
		py >= r.Y && py < r.Y+r.H
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Local returns a rectangle of the same size positioned at the origin.
func (r Rect) Local() Rect {
	return Rect{W: r.W, H: r.H}
}

// Inset shrinks r by d on every side. The result may become empty.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// ToImage converts r to an integer rectangle, rounding outward so that every
// pixel touched by r is included. Non-paintable rectangles map to image.Rectangle{}.
func (r Rect) ToImage() image.Rectangle {
	if !r.Paintable() {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.W)), int(math.Ceil(r.Y+r.H)),
	)
}

// RectFromImage converts an integer rectangle to a Rect.
func RectFromImage(ir image.Rectangle) Rect {
	return Rect{
		X: float64(ir.Min.X), Y: float64(ir.Min.Y),
		W: float64(ir.Dx()), H: float64(ir.Dy()),
	}
}
