package bough

// --- Serial counter ---

// nodeSerialCounter is a plain counter; trees are single-threaded.
var nodeSerialCounter uint32

func nextNodeSerial() uint32 {
	nodeSerialCounter++
	return nodeSerialCounter
}

// layouter is implemented by panels that compute their children's geometry.
// UpdateBounds is called after every mutation that affects layout.
type layouter interface {
	UpdateBounds()
}

// Node is the fundamental scene graph element. A single flat struct is used for
// all node types; panels attach a layouter and widgets attach a text decoration.
//
// Bounds are expressed in the parent's coordinate space. A node never draws
// outside its own bounds.
type Node struct {
	// Identity
	ID     string // optional key, unique within a tree by convention
	Name   string
	Type   NodeType
	serial uint32

	// Hierarchy. parent is a non-owning back-reference; ownership flows
	// strictly through children.
	parent   *Node
	children []*Node
	driver   *Driver // set only on the root of a driven tree

	// Geometry
	bounds Rect

	// Decorations, painted in this order before children.
	background Background
	border     Border
	text       *Text

	// Layout
	layout layouter
	cell   GridCell // placement when the parent is a grid

	// Events
	listeners      [numEventTypes][]listenerEntry
	nextListenerID uint32

	// Button press feedback (NodeTypeButton)
	highlight      float64
	highlightColor Color

	// Metadata
	UserData any
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.serial = nextNodeSerial()
	n.background.Color = ColorTransparent
	n.border.Color = ColorTransparent
}

func newNode(name string, typ NodeType) *Node {
	n := &Node{Name: name, Type: typ}
	nodeDefaults(n)
	return n
}

// NewView creates a plain node with a transparent background and no border.
func NewView(name string) *Node {
	return newNode(name, NodeTypeView)
}

// Serial returns the process-unique number assigned at construction.
func (n *Node) Serial() uint32 {
	return n.serial
}

// --- Geometry ---

// Bounds returns the node's rectangle in its parent's coordinate space.
func (n *Node) Bounds() Rect {
	return n.bounds
}

// SetBounds replaces the node's geometry. Decorations are re-fitted and, for
// panels, children are laid out again. The node is not invalidated; call
// Invalidate on the parent when the old area must be repainted.
func (n *Node) SetBounds(r Rect) {
	n.bounds = r
	n.fitDecorations()
	if n.layout != nil {
		n.layout.UpdateBounds()
	}
}

// AbsoluteBounds returns the node's rectangle in the coordinate space of the
// tree root's parent (the surface, for a driven tree).
func (n *Node) AbsoluteBounds() Rect {
	r := n.bounds
	for p := n.parent; p != nil; p = p.parent {
		r = r.Translate(p.bounds.X, p.bounds.Y)
	}
	return r
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first and the
// old parent lays out its remaining children again.
// A nil child, the node itself, or one of its ancestors is ignored.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	if isAncestor(child, n) {
		debugWarn(n, "AddChild ignored: child is an ancestor")
		return
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	if d := debugDriverOf(n); d != nil {
		d.debugCheckTreeDepth(child)
		d.debugCheckChildCount(n)
	}
	if n.layout != nil {
		n.layout.UpdateBounds()
	}
}

// RemoveChild detaches child from this node. Reports whether child was found.
func (n *Node) RemoveChild(child *Node) bool {
	if child == nil || child.parent != n {
		return false
	}
	n.detach(child)
	if n.layout != nil {
		n.layout.UpdateBounds()
	}
	return true
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.parent == nil {
		return
	}
	n.parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
func (n *Node) RemoveChildren() {
	for i, child := range n.children {
		child.parent = nil
		n.children[i] = nil
	}
	n.children = n.children[:0]
	if n.layout != nil {
		n.layout.UpdateBounds()
	}
}

// RemoveByID detaches every direct child whose ID equals id and returns the
// number of children removed.
func (n *Node) RemoveByID(id string) int {
	kept := n.children[:0]
	removed := 0
	for _, child := range n.children {
		if child.ID == id {
			child.parent = nil
			removed++
			continue
		}
		kept = append(kept, child)
	}
	for i := len(kept); i < len(n.children); i++ {
		n.children[i] = nil
	}
	n.children = kept
	if removed > 0 && n.layout != nil {
		n.layout.UpdateBounds()
	}
	return removed
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// Parent returns the node's parent, or nil for a detached node or a tree root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Root returns the topmost ancestor of n (n itself when detached).
func (n *Node) Root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// FindByID searches the subtree rooted at n depth-first and returns the first
// node whose ID equals id.
func (n *Node) FindByID(id string) *Node {
	if n.ID == id {
		return n
	}
	for _, child := range n.children {
		if found := child.FindByID(id); found != nil {
			return found
		}
	}
	return nil
}

// Walk calls fn for n and every descendant in paint order with the depth
// relative to n. Returning false from fn skips that node's children.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, child := range n.children {
		child.walk(fn, depth+1)
	}
}

// --- Invalidation ---

// Invalidate requests a repaint of the node's whole area.
func (n *Node) Invalidate() {
	n.InvalidateRect(n.bounds.Local(), n)
}

// InvalidateRect requests a repaint of r, given in the node's local
// coordinates. The rectangle is moved into the parent's space, clipped to the
// node's bounds and passed up the tree; the root hands it to its Driver as a
// paint event. A detached node absorbs the request.
func (n *Node) InvalidateRect(r Rect, source *Node) {
	if source == nil {
		source = n
	}
	damaged := r.Translate(n.bounds.X, n.bounds.Y).Intersection(n.bounds)
	switch {
	case n.parent != nil:
		n.parent.InvalidateRect(damaged, source)
	case n.driver != nil:
		n.driver.invalidate(damaged, source)
	}
}

// driverOf returns the driver of the tree n belongs to, if any.
func (n *Node) driverOf() *Driver {
	return n.Root().driver
}

// --- Helpers ---

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// detach removes child from n.children and clears child.parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) detach(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			break
		}
	}
	child.parent = nil
}
