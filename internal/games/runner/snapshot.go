package runner

// Snapshot is the read-only view the presentation layer polls once per tick.
// It never aliases mutable world internals.
type Snapshot struct {
	Tick       int
	Phase      Phase
	Speed      float64
	Score      int // Floored integer points
	RunnerX    float64
	RunnerY    float64
	Grounded   bool
	Invincible bool
	Obstacles  int // Live obstacle count
	Extra      int // Current speed-derived extra-obstacle count
}

// Snapshot captures the current world state.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Tick:       w.ticks,
		Phase:      w.phase,
		Speed:      w.speed,
		Score:      w.score,
		RunnerX:    w.runnerX,
		RunnerY:    w.runnerY,
		Grounded:   w.grounded,
		Invincible: w.invincible,
		Obstacles:  len(w.obstacles),
		Extra:      w.density.ExtraObstacleCount(w.speed),
	}
}
