package runner

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

func testWorld(t *testing.T, seed int64) (*World, config.Config) {
	t.Helper()
	cfg := testConfig(t)
	w := NewWorld(&cfg, core.NewSource(seed), 80, 16)
	return w, cfg
}

func TestWorldInitialState(t *testing.T) {
	w, cfg := testWorld(t, 1)

	if w.Phase() != PhaseIdle {
		t.Errorf("new world phase = %v, expected idle", w.Phase())
	}
	snap := w.Snapshot()
	if snap.Speed != cfg.Physics.BaseSpeed || snap.Score != 0 || !snap.Grounded {
		t.Errorf("unexpected initial snapshot: %+v", snap)
	}
	if w.AheadCount() < cfg.Buffer.Base+cfg.Buffer.Boost {
		t.Errorf("initial seeding leaves only %d obstacles ahead, need %d",
			w.AheadCount(), cfg.Buffer.Base+cfg.Buffer.Boost)
	}
}

func TestJumpPhysicsRoundTrip(t *testing.T) {
	// Baseline speed 5, gravity 0.65, jump impulse -15: one jump leaves the
	// ground, gravity brings the runner back, and landing restores the
	// grounded state with zero vertical velocity.
	w, _ := testWorld(t, 1)
	w.RequestStart()

	w.RequestJump()
	if w.grounded {
		t.Fatal("jump should leave the ground")
	}
	if w.runnerVY != -15 {
		t.Fatalf("jump velocity = %v, expected -15", w.runnerVY)
	}

	w.Tick()
	if w.runnerVY != -15+0.65 {
		t.Errorf("velocity after one tick = %v, expected %v", w.runnerVY, -15+0.65)
	}
	if w.runnerY >= 0 {
		t.Error("runner should be airborne after the first tick")
	}

	// A second jump request mid-air is ignored.
	vy := w.runnerVY
	w.RequestJump()
	if w.runnerVY != vy {
		t.Error("airborne jump request should be ignored")
	}

	landed := false
	for i := 0; i < 200; i++ {
		w.Tick()
		if w.grounded {
			landed = true
			break
		}
	}
	if !landed {
		t.Fatal("runner never landed")
	}
	if w.runnerY != 0 || w.runnerVY != 0 {
		t.Errorf("landing should reset y and velocity, got y=%v vy=%v", w.runnerY, w.runnerVY)
	}
}

func TestRunnerNeverBelowGround(t *testing.T) {
	w, _ := testWorld(t, 5)
	w.RequestStart()
	w.invincible = true // Keep the run going through collisions

	for i := 0; i < 500; i++ {
		if i%30 == 0 {
			w.RequestJump()
		}
		w.Tick()
		if w.runnerY > 0 {
			t.Fatalf("runner sank below the ground at tick %d: y=%v", i, w.runnerY)
		}
	}
}

func TestSetSpeedValidation(t *testing.T) {
	w, cfg := testWorld(t, 1)

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -1, -0.001} {
		w.SetSpeed(bad)
		if w.speed != cfg.Physics.BaseSpeed {
			t.Errorf("SetSpeed(%v) should be ignored, speed became %v", bad, w.speed)
		}
	}

	w.SetSpeed(7.5)
	if w.speed != 7.5 {
		t.Errorf("SetSpeed(7.5) ignored, speed = %v", w.speed)
	}
	w.SetSpeed(0)
	if w.speed != 0 {
		t.Errorf("SetSpeed(0) should be accepted, speed = %v", w.speed)
	}
}

func TestSpawnObstacleAtValidation(t *testing.T) {
	w, _ := testWorld(t, 1)
	before := len(w.obstacles)

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		w.SpawnObstacleAt(bad)
	}
	if len(w.obstacles) != before {
		t.Error("non-finite spawn positions should be ignored")
	}

	// A spawn between existing obstacles keeps the sequence ordered.
	mid := (w.obstacles[0].X + w.obstacles[1].X) / 2
	w.SpawnObstacleAt(mid)
	if len(w.obstacles) != before+1 {
		t.Fatal("finite spawn should insert an obstacle")
	}
	for i := 1; i < len(w.obstacles); i++ {
		if w.obstacles[i].X < w.obstacles[i-1].X {
			t.Fatalf("obstacle order broken at %d: %v < %v", i, w.obstacles[i].X, w.obstacles[i-1].X)
		}
	}
}

func TestBufferInvariantHolds(t *testing.T) {
	w, _ := testWorld(t, 42)
	w.RequestStart()
	w.invincible = true

	for i := 0; i < 3000; i++ {
		if i%25 == 0 {
			w.RequestJump()
		}
		w.Tick()

		target := w.bufferTarget()
		if ahead := w.AheadCount(); ahead < target {
			t.Fatalf("tick %d: %d obstacles ahead, invariant requires %d (speed %v)",
				i, ahead, target, w.speed)
		}
	}
}

func TestBufferInvariantAfterSpeedJump(t *testing.T) {
	w, _ := testWorld(t, 8)
	w.RequestStart()
	w.invincible = true

	// An externally forced speed jump raises the target; the next tick's
	// deficit-fill must restore the invariant in one step.
	w.SetSpeed(11)
	w.Tick()
	if ahead, target := w.AheadCount(), w.bufferTarget(); ahead < target {
		t.Errorf("deficit not filled in one tick: %d < %d", ahead, target)
	}
}

func TestBufferInvariantAfterSpeedOvershoot(t *testing.T) {
	cfg := testConfig(t)
	// A generous keepBehind keeps passed obstacles alive, so after a single
	// huge step the farthest live obstacle sits behind the runner. The
	// deficit-fill must re-anchor ahead of the runner, not behind it.
	w := NewWorld(&cfg, core.NewSource(21), 80, 1000)
	w.RequestStart()
	w.invincible = true

	w.SetSpeed(w.farthestX() - w.runnerX + 500)
	w.Tick()

	if ahead, target := w.AheadCount(), w.bufferTarget(); ahead < target {
		t.Fatalf("only %d obstacles ahead after overshoot, invariant requires %d", ahead, target)
	}
	for i := 1; i < len(w.obstacles); i++ {
		if w.obstacles[i].X <= w.obstacles[i-1].X {
			t.Fatalf("obstacle order broken at %d: %v after %v", i, w.obstacles[i].X, w.obstacles[i-1].X)
		}
	}
}

// trickleWorld builds a running world holding exactly the target number of
// obstacles ahead of the runner, the farthest at runnerX+farthest, so a
// maintainBuffer call skips the deficit-fill and exercises only the trickle.
func trickleWorld(t *testing.T, rng core.Source, farthest float64) *World {
	t.Helper()
	cfg := testConfig(t)
	w := NewWorld(&cfg, rng, 80, 16)
	w.RequestStart()
	target := w.bufferTarget()
	w.obstacles = w.obstacles[:0]
	for i := target - 1; i >= 0; i-- {
		w.obstacles = append(w.obstacles, Obstacle{
			X:      w.runnerX + farthest - float64(i)*2,
			Width:  1,
			Height: 2,
		})
	}
	return w
}

func TestTrickleRespectsRangeGate(t *testing.T) {
	cfg := testConfig(t)
	// The farthest obstacle sits at gap x multiplier for the widest gap the
	// density model can produce, so even a guaranteed draw must not spawn.
	w := trickleWorld(t, core.Fixed(0), cfg.Gaps.Max*cfg.Buffer.Multiplier)
	before := len(w.obstacles)
	w.maintainBuffer()
	if extra := len(w.obstacles) - before; extra != 0 {
		t.Fatalf("trickle spawned %d obstacles past the range gate", extra)
	}
}

func TestTrickleSpawnCounts(t *testing.T) {
	chance := testConfig(t).Buffer.TrickleChance

	// At baseline speed the spawn probability is exactly TrickleChance; a
	// fixed source pins the draw relative to it. The farthest obstacle at
	// 40 is well inside the gap x multiplier window for every draw below.
	cases := []struct {
		name string
		draw float64
		want int
	}{
		{"draw above chance", chance + 0.1, 0},
		{"draw below chance", chance * 0.75, 1},
		{"draw below half chance", chance * 0.25, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := trickleWorld(t, core.Fixed(tc.draw), 40)
			before := len(w.obstacles)
			w.maintainBuffer()
			if got := len(w.obstacles) - before; got != tc.want {
				t.Fatalf("trickle spawned %d obstacles, expected %d", got, tc.want)
			}
			for _, o := range w.obstacles[before:] {
				if o.X <= w.runnerX {
					t.Errorf("trickled obstacle at %v is not ahead of the runner at %v", o.X, w.runnerX)
				}
			}
		})
	}
}

func TestScoreMonotonicAndDistanceDerived(t *testing.T) {
	w, cfg := testWorld(t, 2)
	w.RequestStart()
	w.invincible = true

	prev := 0
	for i := 0; i < 400; i++ {
		w.Tick()
		if w.score < prev {
			t.Fatalf("score decreased: %d -> %d", prev, w.score)
		}
		prev = w.score
	}

	want := int((w.runnerX - w.startX) / cfg.Score.DistancePerPoint)
	if w.score != want {
		t.Errorf("score = %d, expected distance-derived %d", w.score, want)
	}
}

func TestDifficultyRamp(t *testing.T) {
	w, cfg := testWorld(t, 3)
	w.RequestStart()
	w.invincible = true

	for i := 0; i < cfg.Ramp.PeriodTicks; i++ {
		w.Tick()
	}
	want := cfg.Physics.BaseSpeed + cfg.Ramp.SpeedIncrement
	if w.speed != want {
		t.Errorf("speed after one ramp period = %v, expected %v", w.speed, want)
	}
	// The ramp tick itself must leave the (possibly raised) target met.
	if ahead, target := w.AheadCount(), w.bufferTarget(); ahead < target {
		t.Errorf("ramp tick left the buffer short: %d < %d", ahead, target)
	}

	// Speed is capped at the configured ceiling.
	w.SetSpeed(cfg.Ramp.MaxSpeed)
	for i := 0; i < cfg.Ramp.PeriodTicks; i++ {
		w.Tick()
	}
	if w.speed > cfg.Ramp.MaxSpeed {
		t.Errorf("ramp exceeded max speed: %v > %v", w.speed, cfg.Ramp.MaxSpeed)
	}
}

func TestInvincibilitySuppressesGameOver(t *testing.T) {
	w, _ := testWorld(t, 4)
	w.RequestStart()
	w.ToggleInvincibility()

	// Plant an obstacle where the runner will be after this tick's advance
	// and keep ticking: the overlap is real every step, but the run must
	// never finish while god mode is on.
	for i := 0; i < 100; i++ {
		w.SpawnObstacleAt(w.runnerX + w.speed + 1)
		w.Tick()
		if w.Phase() == PhaseFinished {
			t.Fatalf("invincible run finished at tick %d", i)
		}
	}

	w.ToggleInvincibility()
	w.SpawnObstacleAt(w.runnerX + w.speed + 1)
	w.Tick()
	if w.Phase() != PhaseFinished {
		t.Error("collision with god mode off should finish the run")
	}
}

func TestCollisionFreezesState(t *testing.T) {
	w, _ := testWorld(t, 6)
	w.RequestStart()
	w.SpawnObstacleAt(w.runnerX + w.speed + 1)
	w.Tick()

	if w.Phase() != PhaseFinished {
		t.Fatal("expected a collision")
	}
	// The scheduler stops ticking a finished world; state stays frozen for
	// inspection. Setters that only make sense mid-run are inert.
	w.RequestJump()
	if !w.grounded || w.runnerVY != 0 {
		t.Error("finished world should not accept jumps")
	}
	w.RequestStart()
	if w.Phase() != PhaseFinished {
		t.Error("start is only valid from idle")
	}
}

func TestRestartReinitializes(t *testing.T) {
	w, cfg := testWorld(t, 9)
	w.RequestStart()
	w.ToggleInvincibility()
	w.SetSpeed(12)
	for i := 0; i < 300; i++ {
		w.Tick()
	}
	if w.score == 0 {
		t.Fatal("test setup: expected a nonzero score")
	}

	w.RequestRestart()

	if w.Phase() != PhaseIdle {
		t.Errorf("restart should return to idle, got %v", w.Phase())
	}
	if w.score != 0 || w.speed != cfg.Physics.BaseSpeed || w.runnerX != 0 {
		t.Errorf("restart did not reset state: score=%d speed=%v x=%v", w.score, w.speed, w.runnerX)
	}
	if w.invincible {
		t.Error("restart should clear invincibility")
	}
	if w.AheadCount() < cfg.Buffer.Base+cfg.Buffer.Boost {
		t.Error("restart should re-establish the buffer invariant before the next tick")
	}
}

func TestPauseToggle(t *testing.T) {
	w, _ := testWorld(t, 10)

	w.TogglePause() // No effect from idle
	if w.Phase() != PhaseIdle {
		t.Error("pause toggle from idle should be inert")
	}

	w.RequestStart()
	w.TogglePause()
	if w.Phase() != PhasePaused {
		t.Errorf("phase = %v, expected paused", w.Phase())
	}
	w.TogglePause()
	if w.Phase() != PhaseRunning {
		t.Errorf("phase = %v, expected running", w.Phase())
	}
}
