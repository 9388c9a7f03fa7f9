// Package bough is a retained-mode UI scene graph with damage-driven repaint
// and a single-threaded, tick-driven event loop.
//
// bough provides the node tree, rectangle algebra, hit testing, event
// dispatch with click and focus inference, and grid and stack layout. It
// paints through the small [Surface] interface; the raster sub-package
// supplies a software implementation and ebitenhost runs a tree in a window.
//
// # Quick start
//
//	root := bough.NewView("root")
//	root.SetBounds(bough.NewRect(0, 0, 640, 480))
//	root.SetBackgroundColor(bough.MustParseHexColor("#eeeeee"))
//
//	ok := bough.NewButton("ok", "OK")
//	ok.SetBounds(bough.NewRect(20, 20, 120, 40))
//	ok.On(bough.EventClick, func(ev bough.Event) { fmt.Println("clicked") })
//	root.AddChild(ok)
//
//	canvas := raster.NewCanvas(640, 480)
//	d, err := bough.NewDriver(canvas, root, bough.DefaultDriverConfig())
//	if err != nil { ... }
//	d.Start()
//
// The host feeds input into [Driver.PointerMove], [Driver.PointerDown],
// [Driver.PointerUp], [Driver.KeyDown] and [Driver.KeyUp], then calls
// [Driver.Tick] on a fixed period (or [Driver.Run] with a context).
//
// # Coordinates
//
// A node's bounds are in its parent's coordinate space. Painting translates
// the surface to each child's origin, and pointer events carry positions in
// the coordinate space of the node they are raised on.
//
// # Repaint
//
// Nothing repaints eagerly. Setters call [Node.Invalidate], which clips the
// node's rectangle against each ancestor on the way to the root and queues a
// paint event on the driver. The next tick unions all queued damage and
// repaints that one rectangle.
package bough
