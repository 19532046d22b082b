package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Obstacle is a ground obstacle the runner must jump over. World x is fixed
// at creation and never moves; the runner moves instead. Size is randomized
// within the configured ranges at creation and immutable afterwards.
type Obstacle struct {
	X      float64 // World x of the left edge
	Width  float64
	Height float64
}

// Box returns the obstacle's collision box. The ground plane sits at world
// y = 0 with y growing downward, so the obstacle occupies [-Height, 0).
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, -o.Height, o.Width, o.Height)
}

// Generator produces obstacles positioned relative to the previous one,
// combining the density model's gap with independent placement jitter.
type Generator struct {
	cfg     *config.Config
	density *Density
	rng     core.Source
}

// NewGenerator creates an obstacle generator.
func NewGenerator(cfg *config.Config, density *Density, rng core.Source) *Generator {
	return &Generator{cfg: cfg, density: density, rng: rng}
}

// Next generates the obstacle following prevX at the given speed. The
// placement jitter is non-negative and smaller than the minimum gap
// (enforced by config validation), so x is strictly increasing and adjacent
// obstacles stay at least Gaps.Min apart.
func (g *Generator) Next(prevX, speed float64) Obstacle {
	gap := g.density.GapForSpeed(speed)
	jitter := g.rng.Float64() * g.cfg.Gaps.PlaceJitter
	return g.sized(prevX + gap + jitter)
}

// PopulateInitial seeds the obstacle sequence at run start: InitialCount
// obstacles at regular gaps from startX, then TailCount deliberately far
// ones with widened gaps so the buffer does not end in an abrupt wall while
// the scheduler catches up.
func (g *Generator) PopulateInitial(startX, speed float64) []Obstacle {
	o := g.cfg.Obstacles
	out := make([]Obstacle, 0, o.InitialCount+o.TailCount)

	prev := startX
	for i := 0; i < o.InitialCount; i++ {
		next := g.Next(prev, speed)
		out = append(out, next)
		prev = next.X
	}

	for i := 0; i < o.TailCount; i++ {
		gap := g.density.GapForSpeed(speed) * o.TailGapScale
		jitter := g.rng.Float64() * g.cfg.Gaps.PlaceJitter
		next := g.sized(prev + gap + jitter)
		out = append(out, next)
		prev = next.X
	}

	return out
}

// sized builds an obstacle at x with randomized dimensions.
func (g *Generator) sized(x float64) Obstacle {
	o := g.cfg.Obstacles
	return Obstacle{
		X:      x,
		Width:  float64(randRange(g.rng, o.MinWidth, o.MaxWidth)),
		Height: float64(randRange(g.rng, o.MinHeight, o.MaxHeight)),
	}
}

// randRange returns a uniform integer in [min, max].
func randRange(rng core.Source, min, max int) int {
	if max <= min {
		return min
	}
	return min + int(rng.Float64()*float64(max-min+1))
}
