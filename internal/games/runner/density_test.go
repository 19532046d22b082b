package runner

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// testConfig returns a validated config with round physics numbers so the
// expected values in tests are easy to compute by hand.
func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Physics.BaseSpeed = 5
	cfg.Physics.Gravity = 0.65
	cfg.Physics.JumpImpulse = -15
	cfg.Physics.MaxFallSpeed = 20
	cfg.Easing.Threshold = 12
	cfg.Buffer.SpeedLevelStep = 2
	cfg.Ramp.PeriodTicks = 100
	cfg.Ramp.SpeedIncrement = 0.5
	cfg.Ramp.BurstCap = 2
	cfg.Ramp.MaxSpeed = 30
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config is invalid: %v", err)
	}
	return cfg
}

func TestGapForSpeedStaysInBounds(t *testing.T) {
	cfg := testConfig(t)
	d := NewDensity(&cfg, core.NewSource(7))

	for speed := cfg.Physics.BaseSpeed; speed <= 40; speed += 0.25 {
		for i := 0; i < 50; i++ {
			gap := d.GapForSpeed(speed)
			if gap < cfg.Gaps.Min || gap > cfg.Gaps.Max {
				t.Fatalf("GapForSpeed(%v) = %v outside [%v, %v]",
					speed, gap, cfg.Gaps.Min, cfg.Gaps.Max)
			}
		}
	}
}

func TestGapForSpeedDeterministic(t *testing.T) {
	cfg := testConfig(t)
	d := NewDensity(&cfg, core.Fixed(0.5))

	// Mid-range draw zeroes the symmetric jitter, leaving the base gap.
	if gap := d.GapForSpeed(cfg.Physics.BaseSpeed); gap != cfg.Gaps.Base {
		t.Errorf("GapForSpeed(baseline) = %v, expected %v", gap, cfg.Gaps.Base)
	}

	// One speed unit above baseline adds one slope unit.
	want := cfg.Gaps.Base + cfg.Gaps.SpeedSlope
	if want > cfg.Gaps.Max {
		want = cfg.Gaps.Max
	}
	if gap := d.GapForSpeed(cfg.Physics.BaseSpeed + 1); gap != want {
		t.Errorf("GapForSpeed(baseline+1) = %v, expected %v", gap, want)
	}
}

func TestGapForSpeedEasingScalesUpward(t *testing.T) {
	cfg := testConfig(t)
	cfg.Gaps.Max = 1000 // Disable the clamp to observe the raw easing
	d := NewDensity(&cfg, core.Fixed(0.5))

	below := d.GapForSpeed(cfg.Easing.Threshold)
	above := d.GapForSpeed(cfg.Easing.Threshold + 0.5)
	linear := below + 0.5*cfg.Gaps.SpeedSlope
	if above <= linear {
		t.Errorf("easing should scale gaps beyond the linear growth: got %v, linear %v", above, linear)
	}

	// The multiplier is capped.
	base := cfg.Gaps.Base + cfg.Gaps.SpeedSlope*(25-cfg.Physics.BaseSpeed)
	if got := d.GapForSpeed(25); got > base*cfg.Easing.MultiplierCap {
		t.Errorf("eased gap %v exceeds the multiplier cap %v", got, base*cfg.Easing.MultiplierCap)
	}
}

func TestExtraObstacleCountMonotonicAndCapped(t *testing.T) {
	cfg := testConfig(t)
	d := NewDensity(&cfg, core.Fixed(0.5))

	prev := -1
	for speed := cfg.Physics.BaseSpeed; speed <= cfg.Easing.Threshold; speed += 0.1 {
		n := d.ExtraObstacleCount(speed)
		if n < prev {
			t.Fatalf("ExtraObstacleCount decreased below the easing threshold: %d -> %d at speed %v",
				prev, n, speed)
		}
		prev = n
	}

	for speed := 0.0; speed <= 100; speed += 0.5 {
		n := d.ExtraObstacleCount(speed)
		if n < 0 || n > cfg.Buffer.MaxExtra {
			t.Fatalf("ExtraObstacleCount(%v) = %d outside [0, %d]", speed, n, cfg.Buffer.MaxExtra)
		}
	}
}

func TestExtraObstacleCountValues(t *testing.T) {
	cfg := testConfig(t)
	d := NewDensity(&cfg, core.Fixed(0.5))

	// floor((speed - baseline) / step) with baseline 5 and step 2.
	tests := []struct {
		speed float64
		want  int
	}{
		{5, 0},
		{6.9, 0},
		{7, 1},
		{9, 2},
		{11, 3},
	}
	for _, tc := range tests {
		if got := d.ExtraObstacleCount(tc.speed); got != tc.want {
			t.Errorf("ExtraObstacleCount(%v) = %d, expected %d", tc.speed, got, tc.want)
		}
	}
}

func TestExtraObstacleCountDampedAboveThreshold(t *testing.T) {
	cfg := testConfig(t)
	cfg.Buffer.MaxExtra = 100 // Lift the cap to observe the damping
	d := NewDensity(&cfg, core.Fixed(0.5))

	atThreshold := d.ExtraObstacleCount(cfg.Easing.Threshold)
	wayAbove := d.ExtraObstacleCount(cfg.Easing.Threshold + 8)
	undamped := int((cfg.Easing.Threshold + 8 - cfg.Physics.BaseSpeed) / cfg.Buffer.SpeedLevelStep)

	if wayAbove < atThreshold {
		t.Errorf("count must not decrease above the threshold: %d -> %d", atThreshold, wayAbove)
	}
	if wayAbove >= undamped {
		t.Errorf("growth above the threshold should be damped: got %d, undamped %d", wayAbove, undamped)
	}
}
