package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultConfig returns the hardcoded default configuration.
// Mirrors defaults/runner.yaml; used as the last-resort fallback.
func DefaultConfig() Config {
	return Config{
		Physics: Physics{
			Gravity:      0.35,
			JumpImpulse:  -2.6,
			MaxFallSpeed: 4.0,
			BaseSpeed:    0.5,
		},
		Gaps: Gaps{
			Base:        40,
			Min:         24,
			Max:         72,
			Jitter:      8,
			SpeedSlope:  10,
			PlaceJitter: 6,
		},
		Easing: Easing{
			Threshold:     1.6,
			MultiplierCap: 1.5,
			GapRate:       0.5,
			ExtraDamping:  0.5,
		},
		Buffer: Buffer{
			Base:                  3,
			Boost:                 2,
			MaxExtra:              6,
			SpeedLevelStep:        0.25,
			Multiplier:            1.5,
			TrickleChance:         0.2,
			TrickleChancePerExtra: 0.05,
			TrickleChanceCap:      0.5,
		},
		Obstacles: Obstacles{
			MinWidth:     1,
			MaxWidth:     3,
			MinHeight:    2,
			MaxHeight:    4,
			InitialCount: 5,
			TailCount:    2,
			TailGapScale: 1.75,
		},
		Ramp: Ramp{
			PeriodTicks:    600,
			SpeedIncrement: 0.1,
			BurstCap:       2,
			MaxSpeed:       3.0,
		},
		Score: Score{
			DistancePerPoint: 10,
		},
		Player: Player{
			X:            8,
			Width:        3,
			Height:       3,
			GroundOffset: 2,
		},
	}
}

// DefaultYAML returns the embedded default YAML, for `runner config`.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
