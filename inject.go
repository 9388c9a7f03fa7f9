package bough

import "time"

// InjectPress queues a primary-button press at the given surface coordinates.
// It is processed on the next Tick, exactly like host input.
func (d *Driver) InjectPress(x, y float64) {
	d.PointerDown(PointerInput{X: x, Y: y, Button: ButtonPrimary})
}

// InjectMove queues a pointer move with the primary button held.
func (d *Driver) InjectMove(x, y float64) {
	d.PointerMove(PointerInput{X: x, Y: y, Button: ButtonPrimary})
}

// InjectHover queues a pointer move with no button held.
func (d *Driver) InjectHover(x, y float64) {
	d.PointerMove(PointerInput{X: x, Y: y})
}

// InjectRelease queues a primary-button release at the given surface coordinates.
func (d *Driver) InjectRelease(x, y float64) {
	d.PointerUp(PointerInput{X: x, Y: y, Button: ButtonPrimary})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Both are handled by the same tick.
func (d *Driver) InjectClick(x, y float64) {
	d.InjectPress(x, y)
	d.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// steps-2 linearly interpolated moves, and a release at (toX, toY).
// Minimum steps is 2 (press + release).
func (d *Driver) InjectDrag(fromX, fromY, toX, toY float64, steps int) {
	if steps < 2 {
		steps = 2
	}
	d.InjectPress(fromX, fromY)
	moves := steps - 2
	for i := 1; i <= moves; i++ {
		t := float64(i) / float64(moves+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		d.InjectMove(x, y)
	}
	d.InjectRelease(toX, toY)
}

// InjectKey queues a key press and release. A single-rune key is treated as
// printable text; longer names ("Backspace", "Enter") are sent as named keys.
func (d *Driver) InjectKey(key string) {
	k := KeyArgs{Key: key, Time: d.now()}
	if r := []rune(key); len(r) == 1 {
		k.Rune = r[0]
	}
	d.KeyDown(k)
	k.Time = k.Time.Add(time.Millisecond)
	d.KeyUp(k)
}

// InjectText queues one InjectKey per rune of s.
func (d *Driver) InjectText(s string) {
	for _, r := range s {
		d.InjectKey(string(r))
	}
}
