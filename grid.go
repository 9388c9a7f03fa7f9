package bough

// GridCell is the placement of a child inside a Grid. Spans below 1 are
// treated as 1.
type GridCell struct {
	Row, Col         int
	RowSpan, ColSpan int
}

// Cell returns the node's grid placement. It is meaningful only while the
// node's parent is a Grid.
func (n *Node) Cell() GridCell {
	return n.cell
}

// Grid partitions its bounds into rows × cols equal cells. Each child covers
// the cells given at AddChild time. Overlapping spans are not detected.
type Grid struct {
	*Node
	rows, cols int
	padding    float64
}

// NewGrid creates a grid panel. rows or cols ≤ 0 leaves children unplaced
// until both are set.
func NewGrid(name string, rows, cols int) *Grid {
	g := &Grid{Node: newNode(name, NodeTypeGrid), rows: rows, cols: cols}
	g.Node.layout = g
	return g
}

// AsGrid returns the Grid that owns n, if n was created by NewGrid.
func AsGrid(n *Node) (*Grid, bool) {
	if n == nil || n.Type != NodeTypeGrid {
		return nil, false
	}
	g, ok := n.layout.(*Grid)
	return g, ok
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Padding returns the stored padding. It does not affect cell geometry.
func (g *Grid) Padding() float64 { return g.padding }

// SetRows changes the row count and lays the children out again.
func (g *Grid) SetRows(rows int) {
	g.rows = rows
	g.UpdateBounds()
}

// SetCols changes the column count and lays the children out again.
func (g *Grid) SetCols(cols int) {
	g.cols = cols
	g.UpdateBounds()
}

// SetPadding stores the padding and lays the children out again.
func (g *Grid) SetPadding(p float64) {
	g.padding = p
	g.UpdateBounds()
}

// AddChild places child at (row, col) spanning rowSpan × colSpan cells.
// row and col are clamped into the grid, spans to at least 1. A child already
// in the grid keeps its paint order and is only moved to the new cell.
func (g *Grid) AddChild(child *Node, row, col, rowSpan, colSpan int) {
	if child == nil {
		return
	}
	if child.parent == g.Node {
		g.Place(child, row, col, rowSpan, colSpan)
		return
	}
	child.cell = g.clampCell(GridCell{Row: row, Col: col, RowSpan: rowSpan, ColSpan: colSpan})
	g.Node.AddChild(child)
}

// Place moves an existing child to a new cell.
func (g *Grid) Place(child *Node, row, col, rowSpan, colSpan int) {
	if child == nil || child.parent != g.Node {
		return
	}
	child.cell = g.clampCell(GridCell{Row: row, Col: col, RowSpan: rowSpan, ColSpan: colSpan})
	g.UpdateBounds()
}

func (g *Grid) clampCell(c GridCell) GridCell {
	c.Row = clampIndex(c.Row, g.rows)
	c.Col = clampIndex(c.Col, g.cols)
	c.RowSpan = max(c.RowSpan, 1)
	c.ColSpan = max(c.ColSpan, 1)
	return c
}

// clampIndex clamps i into [0, n-1], never returning a negative index.
func clampIndex(i, n int) int {
	if i >= n {
		i = n - 1
	}
	return max(i, 0)
}

// UpdateBounds sets each child's bounds to its cell rectangle.
func (g *Grid) UpdateBounds() {
	if g.rows <= 0 || g.cols <= 0 {
		return
	}
	cw := g.bounds.W / float64(g.cols)
	rh := g.bounds.H / float64(g.rows)
	for _, c := range g.children {
		cell := c.cell
		c.SetBounds(Rect{
			X: float64(cell.Col) * cw,
			Y: float64(cell.Row) * rh,
			W: cw * float64(max(cell.ColSpan, 1)),
			H: rh * float64(max(cell.RowSpan, 1)),
		})
	}
}
