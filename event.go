package bough

import "time"

// Event is the single payload type passed to listeners. Only the args block
// matching Type is meaningful; the others are zero.
type Event struct {
	Source *Node
	Type   EventType

	Pointer PointerArgs
	Paint   PaintArgs
	Key     KeyArgs
}

// PointerArgs carries pointer state. X and Y are in the coordinate space of
// the node the event is raised on; ScreenX and ScreenY are surface coordinates.
type PointerArgs struct {
	X, Y             float64
	ScreenX, ScreenY float64
	Time             time.Time

	PrimaryButton   bool
	SecondaryButton bool
	Modifiers       KeyModifiers
}

// PaintArgs describes a damage request. Bounds are in the root's parent space.
type PaintArgs struct {
	Time   time.Time
	Bounds Rect
}

// KeyArgs is the raw key payload delivered by the host.
//
// Key names a non-printable key ("Backspace", "Enter", "ArrowLeft", "Shift",
// ...); for printable input Key holds the character itself and Rune is set.
type KeyArgs struct {
	Key       string
	Rune      rune
	Code      int
	Modifiers KeyModifiers
	Time      time.Time
	Repeat    bool
}

// Printable reports whether the key produces a character.
func (k KeyArgs) Printable() bool {
	return k.Rune != 0
}

// Button returns the pressed button encoded in the args.
func (p PointerArgs) Button() MouseButton {
	switch {
	case p.PrimaryButton:
		return ButtonPrimary
	case p.SecondaryButton:
		return ButtonSecondary
	}
	return ButtonNone
}
