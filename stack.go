package bough

// Stack lays its children out one after another along a primary axis. Each
// child keeps its own primary-axis size and is stretched across the cross axis.
type Stack struct {
	*Node
	style   StackStyle
	padding float64
}

// NewStack creates a stack panel with the given flow direction.
func NewStack(name string, style StackStyle) *Stack {
	s := &Stack{Node: newNode(name, NodeTypeStack), style: style}
	s.Node.layout = s
	return s
}

// AsStack returns the Stack that owns n, if n was created by NewStack.
func AsStack(n *Node) (*Stack, bool) {
	if n == nil || n.Type != NodeTypeStack {
		return nil, false
	}
	s, ok := n.layout.(*Stack)
	return s, ok
}

// Style returns the flow direction.
func (s *Stack) Style() StackStyle { return s.style }

// SetStyle changes the flow direction and lays the children out again.
func (s *Stack) SetStyle(style StackStyle) {
	s.style = style
	s.UpdateBounds()
}

// Padding returns the gap inserted between consecutive children.
func (s *Stack) Padding() float64 { return s.padding }

// SetPadding changes the gap between children and lays them out again.
func (s *Stack) SetPadding(p float64) {
	s.padding = p
	s.UpdateBounds()
}

// UpdateBounds places the children at the running offset along the primary
// axis. The offset advances by each child's primary size plus the padding.
func (s *Stack) UpdateBounds() {
	next := 0.0
	for _, c := range s.children {
		b := c.bounds
		switch s.style {
		case StackHorizontal:
			c.SetBounds(Rect{X: next, Y: 0, W: b.W, H: s.bounds.H})
			next += b.W + s.padding
		default:
			c.SetBounds(Rect{X: 0, Y: next, W: s.bounds.W, H: b.H})
			next += b.H + s.padding
		}
	}
}
