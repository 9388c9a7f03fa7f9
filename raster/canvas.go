// Package raster implements bough.Surface in software on an *image.RGBA.
//
// Paths are filled with golang.org/x/image/vector, strokes are expanded to
// filled outlines first, and text is drawn with an x/image font face
// (basicfont.Face7x13 unless the style names another).
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"github.com/phanxgames/bough"
)

// DefaultFace is used when a TextStyle carries no font.
var DefaultFace font.Face = basicfont.Face7x13

// state is one entry of the save/restore stack.
type state struct {
	ctm  matrix.Matrix
	clip image.Rectangle
}

// Canvas is a software bough.Surface. The zero value is not usable; create
// one with NewCanvas.
type Canvas struct {
	img   *image.RGBA
	cur   state
	stack []state
	ras   *vector.Rasterizer

	// Flatness is the maximum distance, in pixels, between a curve and the
	// polyline that replaces it when stroking.
	Flatness float64
}

var _ bough.Surface = (*Canvas)(nil)

// NewCanvas creates a transparent canvas of the given size.
func NewCanvas(w, h int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	return &Canvas{
		img:      img,
		cur:      state{ctm: matrix.Identity, clip: img.Bounds()},
		ras:      vector.NewRasterizer(0, 0),
		Flatness: 0.25,
	}
}

// Image returns the backing image. Pixels are alpha-premultiplied.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (w, h int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize replaces the backing image with a transparent one of the new size
// and resets the state stack.
func (c *Canvas) Resize(w, h int) {
	c.img = image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	c.stack = c.stack[:0]
	c.cur = state{ctm: matrix.Identity, clip: c.img.Bounds()}
}

// Clear fills the whole canvas with col, ignoring the clip.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// Depth returns the number of unmatched Save calls.
func (c *Canvas) Depth() int {
	return len(c.stack)
}

// Save pushes the current translation and clip.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.cur)
}

// Restore pops the state pushed by the matching Save. Unbalanced calls are
// ignored.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.cur = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate moves the user-space origin by (dx, dy).
func (c *Canvas) Translate(dx, dy float64) {
	m := &c.cur.ctm
	m[4] += m[0]*dx + m[2]*dy
	m[5] += m[1]*dx + m[3]*dy
}

// ClipRect intersects the clip with a user-space rectangle. The device
// rectangle is rounded outward to whole pixels.
func (c *Canvas) ClipRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		c.cur.clip = image.Rectangle{}
		return
	}
	p0 := c.apply(vec.Vec2{X: x, Y: y})
	p1 := c.apply(vec.Vec2{X: x + w, Y: y + h})
	r := image.Rect(
		int(math.Floor(math.Min(p0.X, p1.X))), int(math.Floor(math.Min(p0.Y, p1.Y))),
		int(math.Ceil(math.Max(p0.X, p1.X))), int(math.Ceil(math.Max(p0.Y, p1.Y))),
	)
	c.cur.clip = c.cur.clip.Intersect(r)
}

// Clip returns the current clip in device pixels.
func (c *Canvas) Clip() image.Rectangle {
	return c.cur.clip
}

func (c *Canvas) apply(p vec.Vec2) vec.Vec2 {
	m := c.cur.ctm
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// FillPath fills p with the nonzero winding rule.
func (c *Canvas) FillPath(p *path.Data, col color.Color) {
	if p == nil || len(p.Cmds) == 0 {
		return
	}
	clip := c.cur.clip.Intersect(c.img.Bounds())
	if clip.Empty() {
		return
	}
	c.begin(clip)
	c.addPath(p, clip.Min)
	c.ras.Draw(c.img, clip, image.NewUniform(col), image.Point{})
}

// StrokePath strokes p with the given line width. Joins are round.
func (c *Canvas) StrokePath(p *path.Data, width float64, col color.Color) {
	if p == nil || len(p.Cmds) == 0 || width <= 0 {
		return
	}
	clip := c.cur.clip.Intersect(c.img.Bounds())
	if clip.Empty() {
		return
	}
	c.begin(clip)
	off := vec.Vec2{X: float64(clip.Min.X), Y: float64(clip.Min.Y)}
	for _, poly := range strokeOutline(p, width, c.Flatness) {
		c.addPolygon(poly, off)
	}
	c.ras.Draw(c.img, clip, image.NewUniform(col), image.Point{})
}

func (c *Canvas) begin(clip image.Rectangle) {
	c.ras.Reset(clip.Dx(), clip.Dy())
	c.ras.DrawOp = draw.Over
}

// addPath feeds p to the rasterizer in device space relative to origin.
// Every subpath is closed, as filling requires.
func (c *Canvas) addPath(p *path.Data, origin image.Point) {
	off := vec.Vec2{X: float64(origin.X), Y: float64(origin.Y)}
	dev := func(v vec.Vec2) (float32, float32) {
		d := c.apply(v).Sub(off)
		return float32(d.X), float32(d.Y)
	}
	open := false
	i := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				c.ras.ClosePath()
			}
			c.ras.MoveTo(dev(p.Coords[i]))
			open = true
			i++
		case path.CmdLineTo:
			c.ras.LineTo(dev(p.Coords[i]))
			i++
		case path.CmdQuadTo:
			bx, by := dev(p.Coords[i])
			cx, cy := dev(p.Coords[i+1])
			c.ras.QuadTo(bx, by, cx, cy)
			i += 2
		case path.CmdCubeTo:
			bx, by := dev(p.Coords[i])
			cx, cy := dev(p.Coords[i+1])
			dx, dy := dev(p.Coords[i+2])
			c.ras.CubeTo(bx, by, cx, cy, dx, dy)
			i += 3
		case path.CmdClose:
			if open {
				c.ras.ClosePath()
				open = false
			}
		}
	}
	if open {
		c.ras.ClosePath()
	}
}

// addPolygon adds a closed user-space polygon.
func (c *Canvas) addPolygon(poly []vec.Vec2, off vec.Vec2) {
	if len(poly) < 3 {
		return
	}
	first := c.apply(poly[0]).Sub(off)
	c.ras.MoveTo(float32(first.X), float32(first.Y))
	for _, v := range poly[1:] {
		d := c.apply(v).Sub(off)
		c.ras.LineTo(float32(d.X), float32(d.Y))
	}
	c.ras.ClosePath()
}

// FillText draws a single line of text anchored at (x, y).
func (c *Canvas) FillText(text string, x, y float64, style bough.TextStyle) {
	if text == "" {
		return
	}
	clip := c.cur.clip.Intersect(c.img.Bounds())
	if clip.Empty() {
		return
	}
	face := style.Font
	if face == nil {
		face = DefaultFace
	}
	col := style.Color
	if col == nil {
		col = color.Black
	}
	dst, ok := c.img.SubImage(clip).(*image.RGBA)
	if !ok {
		return
	}
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: face}

	p := c.apply(vec.Vec2{X: x, Y: y})
	width := fixedToFloat(d.MeasureString(text))
	switch style.Align {
	case bough.TextAlignCenter:
		p.X -= width / 2
	case bough.TextAlignRight:
		p.X -= width
	}
	m := face.Metrics()
	ascent, descent := fixedToFloat(m.Ascent), fixedToFloat(m.Descent)
	switch style.Baseline {
	case bough.BaselineTop:
		p.Y += ascent
	case bough.BaselineMiddle:
		p.Y += (ascent - descent) / 2
	}
	d.Dot = fixed.Point26_6{X: floatToFixed(p.X), Y: floatToFixed(p.Y)}
	d.DrawString(text)
}

// MeasureText returns the advance width of text in the given face (the
// default face when nil).
func MeasureText(face font.Face, text string) float64 {
	if face == nil {
		face = DefaultFace
	}
	return fixedToFloat(font.MeasureString(face, text))
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
