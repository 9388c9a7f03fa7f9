package bough

// debugDriverOf returns the driver of n's tree when it is in debug mode.
// Detached trees never warn.
func debugDriverOf(n *Node) *Driver {
	d := n.driverOf()
	if d == nil || !d.cfg.Debug {
		return nil
	}
	return d
}

// debugLog writes tick stats when the driver is in debug mode.
func (d *Driver) debugLog(stats TickStats) {
	if !d.cfg.Debug {
		return
	}
	d.log.Debug().
		Int("events", stats.Events).
		Int("dispatched", stats.Dispatched).
		Int("failures", stats.Failures).
		Bool("repainted", stats.Repainted).
		Float64("damage_x", stats.Damage.X).
		Float64("damage_y", stats.Damage.Y).
		Float64("damage_w", stats.Damage.W).
		Float64("damage_h", stats.Damage.H).
		Int("animations", len(d.animations)).
		Dur("took", stats.Duration).
		Msg("tick")
}

func debugWarn(n *Node, msg string) {
	if d := debugDriverOf(n); d != nil {
		d.log.Warn().Str("node", n.Name).Msg(msg)
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func (d *Driver) debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		d.log.Warn().
			Int("depth", depth).
			Int("threshold", debugMaxTreeDepth).
			Str("node", n.Name).
			Msg("tree depth exceeds threshold")
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func (d *Driver) debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		d.log.Warn().
			Int("children", len(n.children)).
			Int("threshold", debugMaxChildCount).
			Str("node", n.Name).
			Msg("child count exceeds threshold")
	}
}
