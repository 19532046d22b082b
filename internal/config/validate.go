package config

import (
	"fmt"
	"math"
)

// Validate checks the configuration for defects that would break simulation
// invariants at runtime. It is called once at startup; the tick loop itself
// never re-checks these.
func (c Config) Validate() error {
	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("physics.gravity must be positive, got %v", c.Physics.Gravity)
	}
	if c.Physics.JumpImpulse >= 0 {
		return fmt.Errorf("physics.jump_impulse must be negative (up), got %v", c.Physics.JumpImpulse)
	}
	if c.Physics.BaseSpeed < 0 {
		return fmt.Errorf("physics.base_speed must be non-negative, got %v", c.Physics.BaseSpeed)
	}

	if c.Gaps.Min <= 0 {
		return fmt.Errorf("gaps.min must be positive, got %v", c.Gaps.Min)
	}
	if c.Gaps.Min > c.Gaps.Base || c.Gaps.Base > c.Gaps.Max {
		return fmt.Errorf("gaps must satisfy min <= base <= max, got min=%v base=%v max=%v",
			c.Gaps.Min, c.Gaps.Base, c.Gaps.Max)
	}
	// Jitter at or above the minimum gap could reorder obstacles or
	// collapse the gap below the no-overlap floor.
	if c.Gaps.Jitter < 0 || c.Gaps.Jitter >= c.Gaps.Min {
		return fmt.Errorf("gaps.jitter must be in [0, gaps.min), got %v with min=%v",
			c.Gaps.Jitter, c.Gaps.Min)
	}
	if c.Gaps.PlaceJitter < 0 || c.Gaps.PlaceJitter >= c.Gaps.Min {
		return fmt.Errorf("gaps.place_jitter must be in [0, gaps.min), got %v with min=%v",
			c.Gaps.PlaceJitter, c.Gaps.Min)
	}

	if c.Easing.MultiplierCap < 1 {
		return fmt.Errorf("easing.multiplier_cap must be >= 1, got %v", c.Easing.MultiplierCap)
	}
	if c.Easing.ExtraDamping < 0 || c.Easing.ExtraDamping > 1 {
		return fmt.Errorf("easing.extra_damping must be in [0, 1], got %v", c.Easing.ExtraDamping)
	}

	if c.Buffer.Base < 0 || c.Buffer.Boost < 0 || c.Buffer.MaxExtra < 0 {
		return fmt.Errorf("buffer counts must be non-negative, got base=%d boost=%d max_extra=%d",
			c.Buffer.Base, c.Buffer.Boost, c.Buffer.MaxExtra)
	}
	if c.Buffer.SpeedLevelStep <= 0 {
		return fmt.Errorf("buffer.speed_level_step must be positive, got %v", c.Buffer.SpeedLevelStep)
	}
	if c.Buffer.Multiplier < 1 {
		return fmt.Errorf("buffer.multiplier must be >= 1, got %v", c.Buffer.Multiplier)
	}
	for name, p := range map[string]float64{
		"buffer.trickle_chance":           c.Buffer.TrickleChance,
		"buffer.trickle_chance_per_extra": c.Buffer.TrickleChancePerExtra,
		"buffer.trickle_chance_cap":       c.Buffer.TrickleChanceCap,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s must be a probability in [0, 1], got %v", name, p)
		}
	}

	if c.Obstacles.MinWidth <= 0 || c.Obstacles.MinHeight <= 0 {
		return fmt.Errorf("obstacle sizes must be positive, got min_width=%d min_height=%d",
			c.Obstacles.MinWidth, c.Obstacles.MinHeight)
	}
	if c.Obstacles.MinWidth > c.Obstacles.MaxWidth || c.Obstacles.MinHeight > c.Obstacles.MaxHeight {
		return fmt.Errorf("obstacle size ranges inverted: width [%d,%d] height [%d,%d]",
			c.Obstacles.MinWidth, c.Obstacles.MaxWidth, c.Obstacles.MinHeight, c.Obstacles.MaxHeight)
	}
	if c.Obstacles.InitialCount <= 0 {
		return fmt.Errorf("obstacles.initial_count must be positive, got %d", c.Obstacles.InitialCount)
	}
	if c.Obstacles.TailCount < 0 {
		return fmt.Errorf("obstacles.tail_count must be non-negative, got %d", c.Obstacles.TailCount)
	}
	if c.Obstacles.TailCount > 0 && c.Obstacles.TailGapScale < 1 {
		return fmt.Errorf("obstacles.tail_gap_scale must be >= 1, got %v", c.Obstacles.TailGapScale)
	}
	// The initial seeding must satisfy the lookahead invariant before the
	// first tick runs.
	if c.Obstacles.InitialCount+c.Obstacles.TailCount < c.Buffer.Base+c.Buffer.Boost {
		return fmt.Errorf("initial seeding (%d obstacles) cannot satisfy the base buffer (%d)",
			c.Obstacles.InitialCount+c.Obstacles.TailCount, c.Buffer.Base+c.Buffer.Boost)
	}

	if c.Ramp.PeriodTicks <= 0 {
		return fmt.Errorf("ramp.period_ticks must be positive, got %d", c.Ramp.PeriodTicks)
	}
	if c.Ramp.SpeedIncrement < 0 {
		return fmt.Errorf("ramp.speed_increment must be non-negative, got %v", c.Ramp.SpeedIncrement)
	}
	if c.Ramp.BurstCap < 0 {
		return fmt.Errorf("ramp.burst_cap must be non-negative, got %d", c.Ramp.BurstCap)
	}
	if c.Ramp.MaxSpeed < c.Physics.BaseSpeed {
		return fmt.Errorf("ramp.max_speed (%v) must be at least physics.base_speed (%v)",
			c.Ramp.MaxSpeed, c.Physics.BaseSpeed)
	}
	// One ramp step raises the buffer target by at most
	// ceil(increment/step); the burst must cover it so the lookahead
	// invariant holds on the ramp tick itself.
	if c.Ramp.SpeedIncrement > 0 {
		stepJump := int(math.Ceil(c.Ramp.SpeedIncrement / c.Buffer.SpeedLevelStep))
		if c.Ramp.BurstCap < stepJump {
			return fmt.Errorf("ramp.burst_cap (%d) cannot cover a ramp step's buffer deficit (%d)",
				c.Ramp.BurstCap, stepJump)
		}
	}

	if c.Score.DistancePerPoint <= 0 {
		return fmt.Errorf("score.distance_per_point must be positive, got %v", c.Score.DistancePerPoint)
	}

	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("player hitbox must be positive, got %dx%d", c.Player.Width, c.Player.Height)
	}
	if c.Player.X < 0 || c.Player.GroundOffset < 0 {
		return fmt.Errorf("player.x and player.ground_offset must be non-negative, got x=%d offset=%d",
			c.Player.X, c.Player.GroundOffset)
	}

	return nil
}
