package bough

// Hit is the result of a successful hit test.
type Hit struct {
	Node *Node
	// LocalX and LocalY are the query point in Node's local coordinate space.
	LocalX, LocalY float64
}

// Tunnel finds the deepest node under (px, py). offX and offY are the
// absolute origin of node's parent, so the query for a whole tree starts with
// Tunnel(root, px, py, 0, 0).
//
// A node whose absolute bounds do not contain the point prunes its whole
// subtree; children cannot be hit outside their parent. Among matching
// siblings the last one in child order wins, since it is drawn on top.
func Tunnel(node *Node, px, py, offX, offY float64) (Hit, bool) {
	if node == nil {
		return Hit{}, false
	}
	abs := node.bounds.Translate(offX, offY)
	if !abs.Contains(px, py) {
		return Hit{}, false
	}
	best := Hit{Node: node, LocalX: px - abs.X, LocalY: py - abs.Y}
	for _, child := range node.children {
		if h, ok := Tunnel(child, px, py, abs.X, abs.Y); ok {
			best = h
		}
	}
	return best, true
}

// HitTest is a convenience for Tunnel(n, x, y, 0, 0) that returns only the
// node, or nil when the point misses n.
func (n *Node) HitTest(x, y float64) *Node {
	h, ok := Tunnel(n, x, y, 0, 0)
	if !ok {
		return nil
	}
	return h.Node
}
