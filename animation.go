package bough

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Create one via the convenience constructors (TweenHighlight,
// TweenBackgroundColor) and either hand it to Driver.Animate or call Update
// yourself. Each update writes the values and invalidates the target.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds, writes values to the target
// fields, and invalidates the node.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.Invalidate()
	}
}

// Target returns the node the group writes to.
func (g *TweenGroup) Target() *Node {
	return g.target
}

// TweenHighlight animates a button's press highlight from one amount to
// another over duration seconds.
func TweenHighlight(node *Node, from, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	node.highlight = from
	g.tweens[0] = gween.New(float32(from), float32(to), duration, fn)
	g.fields[0] = &node.highlight
	return g
}

// TweenBackgroundColor animates all four components of the node's background
// color to the target color over the specified duration.
func TweenBackgroundColor(node *Node, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	c := &node.background.Color
	g := &TweenGroup{count: 4, target: node}
	g.tweens[0] = gween.New(float32(c.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(c.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(c.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(c.A), float32(to.A), duration, fn)
	g.fields[0] = &c.R
	g.fields[1] = &c.G
	g.fields[2] = &c.B
	g.fields[3] = &c.A
	return g
}
