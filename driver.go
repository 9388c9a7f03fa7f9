package bough

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Sentinel errors returned by NewDriver.
var (
	ErrNoSurface = errors.New("bough: driver needs a surface")
	ErrNoRoot    = errors.New("bough: driver needs a root node")
)

const (
	defaultTickInterval        = 100 * time.Millisecond
	defaultMoveThreshold       = 10.0
	defaultDoubleClickInterval = 400 * time.Millisecond
)

// DriverConfig holds the tunable driver settings. Zero fields take defaults.
type DriverConfig struct {
	// TickInterval is the period Run uses between drains.
	TickInterval time.Duration
	// MoveThreshold is the per-axis distance a pointer may travel between
	// down and up and still count as a click.
	MoveThreshold float64
	// DoubleClickInterval is the longest gap between two clicks on the same
	// node that raises EventDoubleClick.
	DoubleClickInterval time.Duration
	// Debug enables tree sanity warnings and per-tick stats logging.
	Debug bool
	// Logger receives listener failures and debug output. nil disables logging.
	Logger *zerolog.Logger
	// Clock supplies event timestamps. nil uses time.Now.
	Clock func() time.Time
}

// DefaultDriverConfig returns the settings used for zero fields.
func DefaultDriverConfig() DriverConfig {
	return DriverConfig{
		TickInterval:        defaultTickInterval,
		MoveThreshold:       defaultMoveThreshold,
		DoubleClickInterval: defaultDoubleClickInterval,
	}
}

func (c DriverConfig) withDefaults() DriverConfig {
	if c.TickInterval <= 0 {
		c.TickInterval = defaultTickInterval
	}
	if c.MoveThreshold <= 0 {
		c.MoveThreshold = defaultMoveThreshold
	}
	if c.DoubleClickInterval <= 0 {
		c.DoubleClickInterval = defaultDoubleClickInterval
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}
	return c
}

// TickStats summarizes one drain.
type TickStats struct {
	Events     int           // events taken from the queue
	Dispatched int           // non-paint events dispatched
	Failures   int           // events whose dispatch returned an error or panicked
	Repainted  bool          // whether the damage rectangle was painted
	Damage     Rect          // union of paint requests, in the root's parent space
	Duration   time.Duration // wall time spent in the tick
}

// Driver owns the drawing surface, the tree root, the event queue, and the
// pointer, button, hover, and focus state. Input entry points only append to
// the queue; Tick drains it on the tree's goroutine and repaints the damage.
type Driver struct {
	surface Surface
	root    *Node
	cfg     DriverConfig
	log     zerolog.Logger
	now     func() time.Time

	queue eventQueue

	mu         sync.Mutex
	pendingCfg *DriverConfig

	ticking  atomic.Bool
	lastTick time.Time

	// Dispatch state, touched only inside Tick.
	pointerX, pointerY float64
	pressed            MouseButton
	downX, downY       float64
	downTime           time.Time
	focus              *Node
	hover              *Node
	lastClickNode      *Node
	lastClickTime      time.Time

	animations []*TweenGroup
	onRepaint  []func(Rect)
	afterTick  []func(TickStats)
	lastStats  TickStats
}

// NewDriver attaches root to surface. The root's bounds are in surface
// coordinates. Nothing is painted until the first Tick; call Start to queue a
// full repaint.
func NewDriver(surface Surface, root *Node, cfg DriverConfig) (*Driver, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	if root == nil {
		return nil, ErrNoRoot
	}
	cfg = cfg.withDefaults()
	d := &Driver{
		surface: surface,
		root:    root,
		cfg:     cfg,
		now:     cfg.Clock,
		pressed: ButtonNone,
	}
	d.setLogger(cfg.Logger)
	root.RemoveFromParent()
	root.driver = d
	if cfg.Debug {
		d.SetDebugMode(true)
	}
	return d, nil
}

func (d *Driver) setLogger(l *zerolog.Logger) {
	if l == nil {
		d.log = zerolog.Nop()
		return
	}
	d.log = l.With().Str("component", "driver").Logger()
}

// SetLogger replaces the driver's logger. nil disables logging.
func (d *Driver) SetLogger(l *zerolog.Logger) {
	d.setLogger(l)
}

// Root returns the tree root.
func (d *Driver) Root() *Node {
	return d.root
}

// Surface returns the drawing surface.
func (d *Driver) Surface() Surface {
	return d.surface
}

// Config returns the active settings.
func (d *Driver) Config() DriverConfig {
	return d.cfg
}

// Focus returns the node holding keyboard focus, or nil.
func (d *Driver) Focus() *Node {
	return d.focus
}

// Hover returns the node under the pointer as of the last processed move.
func (d *Driver) Hover() *Node {
	return d.hover
}

// Pointer returns the last known pointer position in surface coordinates.
func (d *Driver) Pointer() (x, y float64) {
	return d.pointerX, d.pointerY
}

// Pressed returns the button held since the last processed pointerDown.
func (d *Driver) Pressed() MouseButton {
	return d.pressed
}

// Pending returns the number of queued events.
func (d *Driver) Pending() int {
	return d.queue.len()
}

// LastStats returns the stats of the most recent tick.
func (d *Driver) LastStats() TickStats {
	return d.lastStats
}

// OnRepaint registers fn to run after every repaint with the painted region
// in surface coordinates.
func (d *Driver) OnRepaint(fn func(Rect)) {
	if fn != nil {
		d.onRepaint = append(d.onRepaint, fn)
	}
}

// AfterTick registers fn to run at the end of every tick, after the repaint.
// Events fn queues are handled by the next tick.
func (d *Driver) AfterTick(fn func(TickStats)) {
	if fn != nil {
		d.afterTick = append(d.afterTick, fn)
	}
}

// Reconfigure replaces the settings at the start of the next tick. Logger
// and Clock are kept when the new values are nil. Safe to call from any
// goroutine.
func (d *Driver) Reconfigure(cfg DriverConfig) {
	d.mu.Lock()
	d.pendingCfg = &cfg
	d.mu.Unlock()
}

func (d *Driver) applyPendingConfig() {
	d.mu.Lock()
	next := d.pendingCfg
	d.pendingCfg = nil
	d.mu.Unlock()
	if next == nil {
		return
	}
	cfg := *next
	if cfg.Clock == nil {
		cfg.Clock = d.cfg.Clock
	}
	if cfg.Logger != nil {
		d.setLogger(cfg.Logger)
	}
	d.cfg = cfg.withDefaults()
	d.now = d.cfg.Clock
	d.SetDebugMode(d.cfg.Debug)
	d.log.Debug().
		Dur("tick_interval", d.cfg.TickInterval).
		Float64("move_threshold", d.cfg.MoveThreshold).
		Msg("driver reconfigured")
}

// SetDebugMode enables or disables debug mode for this driver's tree. When
// enabled, tree depth and child count warnings are logged and every tick logs
// its stats. Call it from the tree's goroutine.
func (d *Driver) SetDebugMode(enabled bool) {
	d.cfg.Debug = enabled
}

// Animate registers a tween group advanced on every tick until it is done.
func (d *Driver) Animate(g *TweenGroup) {
	if g == nil || g.Done {
		return
	}
	d.animations = append(d.animations, g)
}

// Animating reports whether any tween group is still running.
func (d *Driver) Animating() bool {
	return len(d.animations) > 0
}

// Start queues a repaint of the whole root and runs one tick.
func (d *Driver) Start() TickStats {
	d.root.Invalidate()
	return d.Tick()
}

// Run ticks at the configured interval until ctx is cancelled. It returns
// ctx.Err().
func (d *Driver) Run(ctx context.Context) error {
	interval := d.cfg.TickInterval
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			d.Tick()
			if d.cfg.TickInterval != interval {
				interval = d.cfg.TickInterval
				ticker.Reset(interval)
			}
		}
	}
}

// Tick performs one drain: pending settings are applied, animations advance,
// every event queued before the drain began is processed in FIFO order, and
// the coalesced damage is repainted if it has positive area. Events queued by
// listeners during the drain wait for the next tick. A call made while a tick
// is running is ignored.
func (d *Driver) Tick() TickStats {
	if !d.ticking.CompareAndSwap(false, true) {
		d.log.Warn().Msg("tick re-entered; ignored")
		return TickStats{}
	}
	defer d.ticking.Store(false)

	d.applyPendingConfig()
	start := d.now()
	d.advanceAnimations(start)

	events := d.queue.takeAll()
	stats := TickStats{Events: len(events), Damage: EmptyRect}
	for i := range events {
		ev := events[i]
		if ev.Type == EventPaint {
			stats.Damage = stats.Damage.Union(ev.Paint.Bounds)
			continue
		}
		stats.Dispatched++
		if err := d.dispatchSafe(ev); err != nil {
			stats.Failures++
			d.log.Error().Err(err).
				Stringer("event", ev.Type).
				Msg("event dispatch failed")
		}
	}

	if stats.Damage.Paintable() {
		d.repaint(stats.Damage)
		stats.Repainted = true
	}

	stats.Duration = d.now().Sub(start)
	d.lastTick = start
	d.lastStats = stats
	d.debugLog(stats)
	for _, fn := range d.afterTick {
		fn(stats)
	}
	return stats
}

func (d *Driver) advanceAnimations(now time.Time) {
	if len(d.animations) == 0 {
		return
	}
	dt := d.cfg.TickInterval
	if !d.lastTick.IsZero() {
		dt = now.Sub(d.lastTick)
	}
	kept := d.animations[:0]
	for _, g := range d.animations {
		g.Update(float32(dt.Seconds()))
		if !g.Done {
			kept = append(kept, g)
		}
	}
	for i := len(kept); i < len(d.animations); i++ {
		d.animations[i] = nil
	}
	d.animations = kept
}

// repaint paints the root clipped to damage, given in surface coordinates.
func (d *Driver) repaint(damage Rect) {
	b := d.root.bounds
	d.surface.Save()
	d.surface.Translate(b.X, b.Y)
	d.root.Paint(d.surface, damage.Translate(-b.X, -b.Y))
	d.surface.Restore()
	for _, fn := range d.onRepaint {
		fn(damage)
	}
}
