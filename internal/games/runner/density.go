package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Density maps the current forward speed to obstacle spacing and to the
// number of extra obstacles kept buffered ahead of the runner. It holds no
// state of its own: given the same speed and random draw, results are
// identical.
type Density struct {
	cfg *config.Config
	rng core.Source
}

// NewDensity creates a density model over the given config and random source.
func NewDensity(cfg *config.Config, rng core.Source) *Density {
	return &Density{cfg: cfg, rng: rng}
}

// GapForSpeed returns the distance to leave before the next obstacle.
// The base gap grows linearly with speed above the baseline (faster runs get
// longer, still-reachable jumps), takes a bounded symmetric jitter, is eased
// upward past the high-speed threshold, and is clamped to [Min, Max].
func (d *Density) GapForSpeed(speed float64) float64 {
	g := d.cfg.Gaps
	gap := g.Base + g.SpeedSlope*(speed-d.cfg.Physics.BaseSpeed)
	gap += (2*d.rng.Float64() - 1) * g.Jitter

	if e := d.cfg.Easing; speed > e.Threshold {
		scale := 1 + (speed-e.Threshold)*e.GapRate
		if scale > e.MultiplierCap {
			scale = e.MultiplierCap
		}
		gap *= scale
	}

	return core.ClampF(gap, g.Min, g.Max)
}

// ExtraObstacleCount returns how many obstacles beyond the base buffer should
// be queued ahead at the given speed. Growth is linear in speed below the
// easing threshold, damped above it, and capped at MaxExtra.
func (d *Density) ExtraObstacleCount(speed float64) int {
	eff := speed
	if e := d.cfg.Easing; speed > e.Threshold {
		eff = e.Threshold + (speed-e.Threshold)*e.ExtraDamping
	}

	n := int(math.Floor((eff - d.cfg.Physics.BaseSpeed) / d.cfg.Buffer.SpeedLevelStep))
	return core.Clamp(n, 0, d.cfg.Buffer.MaxExtra)
}
