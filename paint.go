package bough

// Paint draws the node and its subtree onto s. region is the area to repaint
// in the node's local coordinates; drawing is clipped to region ∩ the node's
// local bounds. Decorations paint first (background, border, text), then each
// child in order with the surface translated to the child's origin. Children
// whose bounds do not overlap region with positive area are skipped.
func (n *Node) Paint(s Surface, region Rect) {
	r := region.Intersection(n.bounds.Local())
	if !r.Paintable() {
		return
	}

	s.Save()
	s.ClipRect(r.X, r.Y, r.W, r.H)

	n.paintDecorations(s, r)

	for _, child := range n.children {
		cr := child.bounds.Intersection(r)
		if !cr.Paintable() {
			continue
		}
		s.Save()
		s.Translate(child.bounds.X, child.bounds.Y)
		child.Paint(s, cr.Translate(-child.bounds.X, -child.bounds.Y))
		s.Restore()
	}

	s.Restore()
}

func (n *Node) paintDecorations(s Surface, clip Rect) {
	if n.highlight > 0 {
		bg := n.background
		bg.Color = bg.Color.Lerp(n.highlightColor, n.highlight)
		bg.Paint(s, clip)
	} else {
		n.background.Paint(s, clip)
	}
	n.border.Paint(s, clip)
	if n.text != nil {
		n.text.Paint(s, clip)
	}
}
