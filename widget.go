package bough

import (
	"strings"
	"unicode/utf8"

	"github.com/tanema/gween/ease"
)

// labelTextInset is the distance from a label's left edge to its text anchor.
const labelTextInset = 10

// buttonFlashSeconds is how long the press highlight takes to fade out.
const buttonFlashSeconds = 0.3

// DefaultHighlightColor is blended over a button's background while pressed.
var DefaultHighlightColor = Color{1, 1, 1, 1}

// NewButton creates a button: a view with centered text that flashes when
// pressed. Listen for EventClick to react to activation.
func NewButton(name, text string) *Node {
	n := newNode(name, NodeTypeButton)
	n.highlightColor = DefaultHighlightColor
	n.text = &Text{Content: text, Color: ColorBlack, Align: TextAlignCenter, Baseline: BaselineMiddle}
	n.On(EventPointerDown, func(Event) {
		n.flash()
	})
	return n
}

// SetHighlightColor sets the color a button flashes toward when pressed.
func (n *Node) SetHighlightColor(c Color) {
	n.highlightColor = c
}

// Highlight returns the current press highlight amount in [0, 1].
func (n *Node) Highlight() float64 {
	return n.highlight
}

// flash starts the press highlight fade. Without a driver there is no clock
// to animate against, so the highlight is left unset.
func (n *Node) flash() {
	d := n.driverOf()
	if d == nil {
		return
	}
	d.Animate(TweenHighlight(n, 0.5, 0, buttonFlashSeconds, ease.OutQuad))
}

// NewLabel creates a view showing a single line of left-aligned text.
func NewLabel(name, text string) *Node {
	n := newNode(name, NodeTypeLabel)
	n.text = &Text{Content: text, Color: ColorBlack, Align: TextAlignLeft, Baseline: BaselineMiddle}
	return n
}

// ignoredEditKeys are key names a text field consumes without editing.
var ignoredEditKeys = map[string]bool{
	"Shift": true, "Meta": true, "Control": true, "Alt": true,
	"ArrowLeft": true, "ArrowRight": true, "ArrowUp": true, "ArrowDown": true,
}

// NewTextField creates a label that edits its text from key input while it
// has focus. Backspace deletes the last character; printable keys append.
func NewTextField(name string) *Node {
	n := newNode(name, NodeTypeTextField)
	n.text = &Text{Color: ColorBlack, Align: TextAlignLeft, Baseline: BaselineMiddle}
	n.On(EventKeyDown, func(ev Event) {
		n.editText(ev.Key)
	})
	return n
}

func (n *Node) editText(k KeyArgs) {
	cur := n.Text()
	switch {
	case ignoredEditKeys[k.Key]:
		return
	case k.Key == "Backspace":
		if cur == "" {
			return
		}
		_, size := utf8.DecodeLastRuneInString(cur)
		n.SetText(cur[:len(cur)-size])
	case k.Printable():
		n.SetText(cur + string(k.Rune))
	case utf8.RuneCountInString(k.Key) == 1 && !strings.ContainsAny(k.Key, "\t\r\n"):
		n.SetText(cur + k.Key)
	}
}
