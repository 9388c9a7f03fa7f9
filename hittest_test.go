package bough

import "testing"

func hitTree() (root, panel, a, b *Node) {
	root = NewView("root")
	root.SetBounds(NewRect(0, 0, 300, 200))
	panel = NewView("panel")
	panel.SetBounds(NewRect(100, 50, 150, 100))
	a = NewView("a")
	a.SetBounds(NewRect(10, 10, 50, 50))
	b = NewView("b")
	b.SetBounds(NewRect(40, 40, 50, 50)) // overlaps a, added later
	root.AddChild(panel)
	panel.AddChild(a)
	panel.AddChild(b)
	return
}

func TestTunnel(t *testing.T) {
	root, panel, a, b := hitTree()
	tests := []struct {
		name           string
		x, y           float64
		want           *Node
		localX, localY float64
	}{
		{"root only", 5, 5, root, 5, 5},
		{"panel gap", 105, 55, panel, 5, 5},
		{"a", 115, 65, a, 5, 5},
		{"overlap picks later sibling", 145, 95, b, 5, 5},
		{"b only", 185, 135, b, 45, 45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ok := Tunnel(root, tt.x, tt.y, 0, 0)
			if !ok {
				t.Fatal("expected a hit")
			}
			if h.Node != tt.want {
				t.Errorf("hit %s, want %s", h.Node.Name, tt.want.Name)
			}
			if h.LocalX != tt.localX || h.LocalY != tt.localY {
				t.Errorf("local = (%v, %v), want (%v, %v)", h.LocalX, h.LocalY, tt.localX, tt.localY)
			}
			if !h.Node.Bounds().Local().Contains(h.LocalX, h.LocalY) {
				t.Error("local point must lie inside the hit node")
			}
		})
	}
}

func TestTunnelMiss(t *testing.T) {
	root, _, _, _ := hitTree()
	if _, ok := Tunnel(root, 300, 10, 0, 0); ok {
		t.Error("right edge is outside the root")
	}
	if _, ok := Tunnel(root, -1, 10, 0, 0); ok {
		t.Error("negative x is outside the root")
	}
	if _, ok := Tunnel(nil, 0, 0, 0, 0); ok {
		t.Error("nil node cannot be hit")
	}
}

func TestTunnelPrunesOverflowingChildren(t *testing.T) {
	root := NewView("root")
	root.SetBounds(NewRect(0, 0, 100, 100))
	parent := NewView("parent")
	parent.SetBounds(NewRect(0, 0, 50, 50))
	child := NewView("child")
	child.SetBounds(NewRect(40, 40, 40, 40)) // spills past parent
	root.AddChild(parent)
	parent.AddChild(child)

	if got := root.HitTest(70, 70); got != root {
		t.Errorf("HitTest = %s, want root: children outside their parent are unreachable", got.Name)
	}
	if got := root.HitTest(45, 45); got != child {
		t.Errorf("HitTest = %s, want child", got.Name)
	}
}

func TestTunnelIsIdempotent(t *testing.T) {
	root, _, _, _ := hitTree()
	h1, _ := Tunnel(root, 145, 95, 0, 0)
	h2, _ := Tunnel(root, 145, 95, 0, 0)
	if h1 != h2 {
		t.Errorf("repeated queries differ: %+v vs %+v", h1, h2)
	}
}

func TestTunnelWithOffset(t *testing.T) {
	_, panel, a, _ := hitTree()
	// Start below the root; the root origin is zero so offsets stay 0,0.
	h, ok := Tunnel(panel, 115, 65, 0, 0)
	if !ok || h.Node != a {
		t.Fatalf("Tunnel(panel) = %+v, %v", h, ok)
	}
	if h.LocalX != 5 || h.LocalY != 5 {
		t.Errorf("local = (%v, %v)", h.LocalX, h.LocalY)
	}
	if got := panel.HitTest(0, 0); got != nil {
		t.Errorf("HitTest outside = %v, want nil", got)
	}
}
