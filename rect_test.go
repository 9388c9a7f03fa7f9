package bough

import (
	"image"
	"testing"
)

func TestRectIntersection(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), NewRect(5, 5, 5, 5)},
		{"contained", NewRect(0, 0, 100, 100), NewRect(10, 20, 30, 40), NewRect(10, 20, 30, 40)},
		{"identical", NewRect(1, 2, 3, 4), NewRect(1, 2, 3, 4), NewRect(1, 2, 3, 4)},
		{"edge touching", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), NewRect(10, 0, 0, 10)},
		{"disjoint", NewRect(0, 0, 10, 10), NewRect(20, 20, 5, 5), NewRect(20, 20, -10, -10)},
		{"empty left", EmptyRect, NewRect(0, 0, 10, 10), EmptyRect},
		{"empty right", NewRect(0, 0, 10, 10), EmptyRect, EmptyRect},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersection(tt.b); got != tt.want {
				t.Errorf("Intersection = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersection(tt.a); got != tt.want {
				t.Errorf("reversed Intersection = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectIntersectionNeverPaintableWhenDisjoint(t *testing.T) {
	r := NewRect(0, 0, 10, 10).Intersection(NewRect(10, 10, 10, 10))
	if r.Paintable() {
		t.Errorf("%v should not be paintable", r)
	}
}

func TestRectUnion(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"disjoint", NewRect(0, 0, 10, 10), NewRect(20, 30, 5, 5), NewRect(0, 0, 25, 35)},
		{"contained", NewRect(0, 0, 100, 100), NewRect(10, 10, 5, 5), NewRect(0, 0, 100, 100)},
		{"empty identity", EmptyRect, NewRect(3, 4, 5, 6), NewRect(3, 4, 5, 6)},
		{"both empty", EmptyRect, Rect{5, 5, -2, -2}, EmptyRect},
		{"zero area counts", NewRect(0, 0, 0, 0), NewRect(10, 10, 10, 10), NewRect(0, 0, 20, 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.want {
				t.Errorf("Union = %v, want %v", got, tt.want)
			}
			if got := tt.b.Union(tt.a); got != tt.want {
				t.Errorf("reversed Union = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectUnionContainsOperands(t *testing.T) {
	a := NewRect(-5, 2, 7, 3)
	b := NewRect(4, -8, 2, 20)
	u := a.Union(b)
	for _, r := range []Rect{a, b} {
		if r.Intersection(u) != r {
			t.Errorf("union %v does not contain %v", u, r)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	tests := []struct {
		x, y float64
		want bool
	}{
		// Left and top edges are inside, right and bottom edges are not.
		{10, 20, true},
		{39.9, 59.9, true},
		{40, 30, false},
		{20, 60, false},
		{9.9, 30, false},
		{25, 19.9, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if EmptyRect.Contains(0, 0) {
		t.Error("EmptyRect should contain nothing")
	}
}

func TestRectPredicates(t *testing.T) {
	if !EmptyRect.IsEmpty() || EmptyRect.Paintable() {
		t.Error("EmptyRect should be empty and not paintable")
	}
	zero := NewRect(5, 5, 0, 10)
	if zero.IsEmpty() {
		t.Error("zero width is not empty")
	}
	if zero.Paintable() {
		t.Error("zero width is not paintable")
	}
	if !NewRect(0, 0, 1, 1).Paintable() {
		t.Error("unit rect should be paintable")
	}
}

func TestRectTranslateLocalInset(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	if got := r.Translate(-10, 5); got != NewRect(0, 25, 30, 40) {
		t.Errorf("Translate = %v", got)
	}
	if got := r.Local(); got != NewRect(0, 0, 30, 40) {
		t.Errorf("Local = %v", got)
	}
	if got := r.Inset(5); got != NewRect(15, 25, 20, 30) {
		t.Errorf("Inset = %v", got)
	}
	if got := NewRect(0, 0, 4, 4).Inset(3); !got.IsEmpty() {
		t.Errorf("over-inset = %v, want empty", got)
	}
}

func TestRectToImage(t *testing.T) {
	if got := NewRect(1.5, 2.2, 3, 3).ToImage(); got != image.Rect(1, 2, 5, 6) {
		t.Errorf("ToImage = %v, want rounded outward", got)
	}
	if got := EmptyRect.ToImage(); got != (image.Rectangle{}) {
		t.Errorf("empty ToImage = %v", got)
	}
	ir := image.Rect(3, 4, 10, 20)
	if got := RectFromImage(ir); got != NewRect(3, 4, 7, 16) {
		t.Errorf("RectFromImage = %v", got)
	}
}
