package runner

import (
	"math"
	"sort"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Phase is the scheduler state of a run.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseRunning  Phase = "running"
	PhasePaused   Phase = "paused"
	PhaseFinished Phase = "finished"
)

// World owns the entire simulation state: the runner's kinematics, the
// ordered obstacle sequence, speed, score, and the run phase. Only the tick
// scheduler mutates it, and external collaborators go through the narrow
// request/toggle setters; everything runs single-threaded.
type World struct {
	cfg     *config.Config
	rng     core.Source
	density *Density
	gen     *Generator

	// Runner kinematics. runnerY is the vertical offset from the ground
	// plane (0 = grounded, negative = airborne); world y grows downward.
	runnerX  float64
	runnerY  float64
	runnerVY float64
	grounded bool

	// Obstacles, ordered by ascending X.
	obstacles []Obstacle

	startX     float64
	spawnLead  float64 // Distance ahead of the runner where seeding begins
	keepBehind float64 // How far behind the runner passed obstacles are kept for drawing

	speed      float64
	score      int
	ticks      int
	phase      Phase
	invincible bool
}

// NewWorld creates a world over the given config and random source.
// spawnLead is the distance ahead of the runner at which the first obstacle
// appears (typically just past the right screen edge); keepBehind is how far
// behind the runner passed obstacles remain before pruning.
func NewWorld(cfg *config.Config, rng core.Source, spawnLead, keepBehind float64) *World {
	density := NewDensity(cfg, rng)
	w := &World{
		cfg:        cfg,
		rng:        rng,
		density:    density,
		gen:        NewGenerator(cfg, density, rng),
		spawnLead:  spawnLead,
		keepBehind: keepBehind,
	}
	w.Reset()
	return w
}

// Reset fully reinitializes the run: runner back at the origin, speed at
// baseline, score zeroed, obstacle sequence re-seeded, phase Idle.
func (w *World) Reset() {
	w.runnerX = 0
	w.runnerY = 0
	w.runnerVY = 0
	w.grounded = true
	w.startX = 0
	w.speed = w.cfg.Physics.BaseSpeed
	w.score = 0
	w.ticks = 0
	w.phase = PhaseIdle
	w.invincible = false
	w.obstacles = w.gen.PopulateInitial(w.startX+w.spawnLead, w.speed)
}

// Phase returns the current scheduler state.
func (w *World) Phase() Phase {
	return w.phase
}

// RequestStart begins the run. Only effective from Idle.
func (w *World) RequestStart() {
	if w.phase == PhaseIdle {
		w.phase = PhaseRunning
	}
}

// RequestRestart reinitializes from any state.
func (w *World) RequestRestart() {
	w.Reset()
}

// TogglePause switches between Running and Paused. While paused no physics,
// spawning, scoring, or collision checks occur; rendering continues outside.
func (w *World) TogglePause() {
	switch w.phase {
	case PhaseRunning:
		w.phase = PhasePaused
	case PhasePaused:
		w.phase = PhaseRunning
	}
}

// RequestJump launches the runner if it is grounded mid-run.
func (w *World) RequestJump() {
	if w.phase != PhaseRunning || !w.grounded {
		return
	}
	w.runnerVY = w.cfg.Physics.JumpImpulse
	w.grounded = false
}

// ToggleInvincibility flips god mode. Physics and rendering are unaffected;
// only the collision-triggered transition to Finished is suppressed.
func (w *World) ToggleInvincibility() {
	w.invincible = !w.invincible
}

// SetSpeed overrides the forward speed. Non-finite or negative values are
// silently ignored; the tick loop must never stall on bad input.
func (w *World) SetSpeed(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return
	}
	w.speed = v
}

// SpawnObstacleAt inserts an obstacle at the given world x with randomized
// size, keeping the sequence ordered. Debug/test hook; non-finite positions
// are silently ignored.
func (w *World) SpawnObstacleAt(x float64) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return
	}
	o := w.gen.sized(x)
	i := sort.Search(len(w.obstacles), func(i int) bool {
		return w.obstacles[i].X > x
	})
	w.obstacles = append(w.obstacles, Obstacle{})
	copy(w.obstacles[i+1:], w.obstacles[i:])
	w.obstacles[i] = o
}

// Tick advances the simulation by one fixed step. The caller guarantees the
// phase is Running.
func (w *World) Tick() {
	w.ticks++

	// 1. Vertical physics: gravity into velocity, velocity into position,
	// clamped at the ground.
	if !w.grounded {
		w.runnerVY += w.cfg.Physics.Gravity
		if w.runnerVY > w.cfg.Physics.MaxFallSpeed {
			w.runnerVY = w.cfg.Physics.MaxFallSpeed
		}
		w.runnerY += w.runnerVY
		if w.runnerY >= 0 {
			w.runnerY = 0
			w.runnerVY = 0
			w.grounded = true
		}
	}

	// 2. Horizontal advance.
	w.runnerX += w.speed
	w.prune()

	// 3. Lookahead buffer invariant.
	w.maintainBuffer()

	// 4. Score: non-decreasing, derived from distance traveled.
	if s := int((w.runnerX - w.startX) / w.cfg.Score.DistancePerPoint); s > w.score {
		w.score = s
	}

	// 5. Difficulty ramp.
	if w.cfg.Ramp.SpeedIncrement > 0 && w.ticks%w.cfg.Ramp.PeriodTicks == 0 {
		w.rampUp()
	}

	// 6. Collision. Any single overlap ends the run.
	if !w.invincible && w.collides() {
		w.phase = PhaseFinished
	}
}

// maintainBuffer enforces the lookahead invariant: at least
// Base + ExtraObstacleCount(speed) + Boost obstacles strictly ahead of the
// runner. A deficit is filled exactly in one tick; only when the buffer is
// already satisfied does the probabilistic trickle top it up.
func (w *World) maintainBuffer() {
	target := w.bufferTarget()
	ahead := w.AheadCount()

	if deficit := target - ahead; deficit > 0 {
		w.extend(deficit)
		return
	}

	// Trickle: if the farthest obstacle is nearer than gap x multiplier,
	// sometimes spawn 1-2 more so the buffer neither starves nor grows
	// unboundedly ahead of need.
	gap := w.density.GapForSpeed(w.speed)
	if w.farthestX() >= w.runnerX+gap*w.cfg.Buffer.Multiplier {
		return
	}

	b := w.cfg.Buffer
	p := b.TrickleChance + b.TrickleChancePerExtra*float64(w.density.ExtraObstacleCount(w.speed))
	if p > b.TrickleChanceCap {
		p = b.TrickleChanceCap
	}
	if w.rng.Float64() >= p {
		return
	}
	n := 1
	if w.rng.Float64() < p/2 {
		n = 2
	}
	w.extend(n)
}

// rampUp raises speed by the configured increment and immediately spawns a
// capped burst so the just-raised buffer target is met on this tick.
func (w *World) rampUp() {
	w.speed += w.cfg.Ramp.SpeedIncrement
	if w.speed > w.cfg.Ramp.MaxSpeed {
		w.speed = w.cfg.Ramp.MaxSpeed
	}

	deficit := w.bufferTarget() - w.AheadCount()
	if deficit > w.cfg.Ramp.BurstCap {
		deficit = w.cfg.Ramp.BurstCap
	}
	if deficit > 0 {
		w.extend(deficit)
	}
}

// bufferTarget is the minimum obstacle count required ahead of the runner.
func (w *World) bufferTarget() int {
	return w.cfg.Buffer.Base + w.density.ExtraObstacleCount(w.speed) + w.cfg.Buffer.Boost
}

// extend appends n obstacles past the current farthest one. When nothing
// lives ahead of the runner anymore (empty sequence, or a speed override
// that overshot the whole sequence in one step) the chain restarts at the
// spawn lead, as on reset, so every appended obstacle counts toward the
// buffer.
func (w *World) extend(n int) {
	prev := w.farthestX()
	if prev <= w.runnerX {
		prev = w.runnerX + w.spawnLead
	}
	for i := 0; i < n; i++ {
		next := w.gen.Next(prev, w.speed)
		w.obstacles = append(w.obstacles, next)
		prev = next.X
	}
}

// prune drops obstacles that scrolled far enough behind the runner to be
// invisible. Pruning never touches obstacles ahead, so the buffer invariant
// is unaffected.
func (w *World) prune() {
	cut := w.runnerX - w.keepBehind
	live := w.obstacles[:0]
	for _, o := range w.obstacles {
		if o.X+o.Width >= cut {
			live = append(live, o)
		}
	}
	w.obstacles = live
}

// collides reports whether the runner's box overlaps any live obstacle.
func (w *World) collides() bool {
	rb := w.runnerBox()
	for _, o := range w.obstacles {
		if rb.Overlaps(o.Box()) {
			return true
		}
	}
	return false
}

// runnerBox is the runner's collision box in world coordinates: bottom edge
// at runnerY relative to the ground plane (y = 0, growing downward).
func (w *World) runnerBox() core.Box {
	h := float64(w.cfg.Player.Height)
	return core.NewBox(w.runnerX, w.runnerY-h, float64(w.cfg.Player.Width), h)
}

// AheadCount returns how many obstacles sit strictly ahead of the runner.
func (w *World) AheadCount() int {
	n := 0
	for _, o := range w.obstacles {
		if o.X > w.runnerX {
			n++
		}
	}
	return n
}

// farthestX returns the x of the farthest obstacle, or the runner's own x
// when the sequence is empty. The sequence is kept sorted, so this is the
// last element.
func (w *World) farthestX() float64 {
	if len(w.obstacles) == 0 {
		return w.runnerX
	}
	return w.obstacles[len(w.obstacles)-1].X
}

// Obstacles returns the live obstacle sequence, ordered by ascending x.
// Callers must treat it as read-only.
func (w *World) Obstacles() []Obstacle {
	return w.obstacles
}
