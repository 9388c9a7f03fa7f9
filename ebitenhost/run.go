// Package ebitenhost runs a bough tree in an Ebitengine window. Input is
// polled every update and fed to the driver; the driver's raster canvas is
// uploaded to the screen after each repaint.
package ebitenhost

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/bough"
	"github.com/phanxgames/bough/raster"
)

// RunConfig controls the window created by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	TPS     int  // updates per second; 0 keeps the Ebitengine default of 60
	ShowFPS bool // overlay FPS and TPS in the top-left corner
}

// Game adapts a Driver and its Canvas to ebiten.Game. Use it directly to
// embed bough in a larger Ebitengine program; Run wraps it for the common case.
type Game struct {
	driver *bough.Driver
	canvas *raster.Canvas
	cfg    RunConfig

	screen   *ebiten.Image
	dirty    bool
	lastTick time.Time
	lastX    int
	lastY    int
	keys     []ebiten.Key
	chars    []rune
	fps      *fpsOverlay
}

// NewGame wires the driver's repaints to an offscreen image. canvas must be
// the surface the driver paints on.
func NewGame(d *bough.Driver, canvas *raster.Canvas, cfg RunConfig) *Game {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = canvas.Size()
	}
	g := &Game{driver: d, canvas: canvas, cfg: cfg, lastX: -1, lastY: -1}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	d.OnRepaint(func(bough.Rect) { g.dirty = true })
	return g
}

// Run opens a window and blocks until it is closed.
func Run(d *bough.Driver, canvas *raster.Canvas, cfg RunConfig) error {
	if d == nil || canvas == nil {
		return errors.New("ebitenhost: nil driver or canvas")
	}
	g := NewGame(d, canvas, cfg)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	d.Start()
	return ebiten.RunGame(g)
}

// Update polls input and ticks the driver once its interval has elapsed.
func (g *Game) Update() error {
	now := time.Now()
	mods := readModifiers()
	g.pollPointer(now, mods)
	g.pollKeys(now, mods)

	if g.lastTick.IsZero() || now.Sub(g.lastTick) >= g.driver.Config().TickInterval {
		g.lastTick = now
		g.driver.Tick()
	}
	if g.fps != nil {
		g.fps.update(now)
	}
	return nil
}

func (g *Game) pollPointer(now time.Time, mods bough.KeyModifiers) {
	x, y := ebiten.CursorPosition()
	in := bough.PointerInput{X: float64(x), Y: float64(y), Modifiers: mods, Time: now}
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		in.Button = bough.ButtonPrimary
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		in.Button = bough.ButtonSecondary
	}

	if x != g.lastX || y != g.lastY {
		g.lastX, g.lastY = x, y
		g.driver.PointerMove(in)
	}
	for _, b := range [...]struct {
		eb ebiten.MouseButton
		bb bough.MouseButton
	}{
		{ebiten.MouseButtonLeft, bough.ButtonPrimary},
		{ebiten.MouseButtonRight, bough.ButtonSecondary},
	} {
		in.Button = b.bb
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			g.driver.PointerDown(in)
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			g.driver.PointerUp(in)
		}
	}
}

func (g *Game) pollKeys(now time.Time, mods bough.KeyModifiers) {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if name, ok := keyNames[k]; ok {
			g.driver.KeyDown(bough.KeyArgs{Key: name, Code: int(k), Modifiers: mods, Time: now})
		}
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		if name, ok := keyNames[k]; ok {
			g.driver.KeyUp(bough.KeyArgs{Key: name, Code: int(k), Modifiers: mods, Time: now})
		}
	}
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		g.driver.KeyDown(bough.KeyArgs{Key: string(r), Rune: r, Modifiers: mods, Time: now})
	}
}

// Draw uploads the canvas after a repaint and blits it to the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.screen == nil {
		w, h := g.canvas.Size()
		g.screen = ebiten.NewImage(w, h)
		g.dirty = true
	}
	if g.dirty {
		g.screen.WritePixels(g.canvas.Image().Pix)
		g.dirty = false
	}
	screen.DrawImage(g.screen, nil)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Layout reports the configured logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// keyNames maps the non-printable keys forwarded to the driver. Printable
// input arrives separately through ebiten.AppendInputChars.
var keyNames = map[ebiten.Key]string{
	ebiten.KeyBackspace:    "Backspace",
	ebiten.KeyDelete:       "Delete",
	ebiten.KeyEnter:        "Enter",
	ebiten.KeyNumpadEnter:  "Enter",
	ebiten.KeyTab:          "Tab",
	ebiten.KeyEscape:       "Escape",
	ebiten.KeyArrowLeft:    "ArrowLeft",
	ebiten.KeyArrowRight:   "ArrowRight",
	ebiten.KeyArrowUp:      "ArrowUp",
	ebiten.KeyArrowDown:    "ArrowDown",
	ebiten.KeyHome:         "Home",
	ebiten.KeyEnd:          "End",
	ebiten.KeyShiftLeft:    "Shift",
	ebiten.KeyShiftRight:   "Shift",
	ebiten.KeyControlLeft:  "Control",
	ebiten.KeyControlRight: "Control",
	ebiten.KeyAltLeft:      "Alt",
	ebiten.KeyAltRight:     "Alt",
	ebiten.KeyMetaLeft:     "Meta",
	ebiten.KeyMetaRight:    "Meta",
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() bough.KeyModifiers {
	var mods bough.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= bough.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= bough.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= bough.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= bough.ModMeta
	}
	return mods
}
