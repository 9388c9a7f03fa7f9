package bough

import (
	"image/color"

	"golang.org/x/image/font"
	"seehuhn.de/go/geom/path"
)

// Surface is the immediate-mode 2D drawing context the tree paints onto.
// Implementations keep a stack of (translation, clip) states; Save pushes the
// current state and Restore pops it. ClipRect intersects the current clip with
// a rectangle given in the current (translated) coordinate space.
type Surface interface {
	Save()
	Restore()
	ClipRect(x, y, w, h float64)
	Translate(dx, dy float64)
	FillPath(p *path.Data, c color.Color)
	StrokePath(p *path.Data, width float64, c color.Color)
	FillText(text string, x, y float64, style TextStyle)
}

// TextStyle controls how FillText places and colors a string. A nil Font
// selects the surface's default face.
type TextStyle struct {
	Color    color.Color
	Align    TextAlign
	Baseline TextBaseline
	Font     font.Face
}

// Painter is implemented by leaf renderers composed into a node. clip is the
// visible region in the node's local coordinates.
type Painter interface {
	Paint(s Surface, clip Rect)
}
