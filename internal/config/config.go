// Package config provides YAML-based game configuration loading,
// startup validation, and difficulty presets for the runner.
package config

// Config contains every tunable constant of the runner simulation.
// All values are fixed at startup; nothing here is renegotiated at runtime.
type Config struct {
	Physics   Physics    `yaml:"physics"`
	Gaps      Gaps       `yaml:"gaps"`
	Easing    Easing     `yaml:"easing"`
	Buffer    Buffer     `yaml:"buffer"`
	Obstacles Obstacles  `yaml:"obstacles"`
	Ramp      Ramp       `yaml:"ramp"`
	Score     Score      `yaml:"score"`
	Player    Player     `yaml:"player"`
}

// Physics defines the runner's kinematic constants.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`        // Downward acceleration per tick
	JumpImpulse  float64 `yaml:"jump_impulse"`   // Vertical velocity on jump (negative = up)
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal velocity
	BaseSpeed    float64 `yaml:"base_speed"`     // Forward speed at run start (world units per tick)
}

// Gaps defines the inter-obstacle distance model.
type Gaps struct {
	Base        float64 `yaml:"base"`         // Gap at baseline speed before jitter
	Min         float64 `yaml:"min"`          // Hard lower bound (no-overlap safety)
	Max         float64 `yaml:"max"`          // Hard upper bound (pacing)
	Jitter      float64 `yaml:"jitter"`       // Symmetric jitter half-range applied to the gap
	SpeedSlope  float64 `yaml:"speed_slope"`  // Gap growth per speed unit above baseline
	PlaceJitter float64 `yaml:"place_jitter"` // Non-negative placement jitter added on top of the gap
}

// Easing keeps extreme speeds playable: above Threshold gaps are scaled up
// (capped) and extra-obstacle growth is damped.
type Easing struct {
	Threshold     float64 `yaml:"threshold"`      // Speed above which easing kicks in
	MultiplierCap float64 `yaml:"multiplier_cap"` // Max gap scale factor
	GapRate       float64 `yaml:"gap_rate"`       // Gap scale growth per speed unit above threshold
	ExtraDamping  float64 `yaml:"extra_damping"`  // Damping applied to extra-count growth above threshold
}

// Buffer defines the lookahead-queue invariant: how many obstacles must sit
// ahead of the runner, and how the queue is replenished.
type Buffer struct {
	Base                  int     `yaml:"base"`                     // Minimum obstacles ahead at baseline speed
	Boost                 int     `yaml:"boost"`                    // Constant added on top of base + extra
	MaxExtra              int     `yaml:"max_extra"`                // Cap on speed-derived extra obstacles
	SpeedLevelStep        float64 `yaml:"speed_level_step"`         // Speed delta per extra obstacle
	Multiplier            float64 `yaml:"multiplier"`               // Trickle range: farthest obstacle vs gap x multiplier
	TrickleChance         float64 `yaml:"trickle_chance"`           // Base probability of a trickle spawn
	TrickleChancePerExtra float64 `yaml:"trickle_chance_per_extra"` // Probability growth per extra obstacle
	TrickleChanceCap      float64 `yaml:"trickle_chance_cap"`       // Probability ceiling
}

// Obstacles defines obstacle size ranges and the initial seeding.
type Obstacles struct {
	MinWidth     int     `yaml:"min_width"`
	MaxWidth     int     `yaml:"max_width"`
	MinHeight    int     `yaml:"min_height"`
	MaxHeight    int     `yaml:"max_height"`
	InitialCount int     `yaml:"initial_count"`  // Obstacles seeded at regular gaps on reset
	TailCount    int     `yaml:"tail_count"`     // Far obstacles appended after the initial run
	TailGapScale float64 `yaml:"tail_gap_scale"` // Gap widening factor for the tail
}

// Ramp defines the time-based difficulty progression.
type Ramp struct {
	PeriodTicks    int     `yaml:"period_ticks"`    // Ticks between speed increases
	SpeedIncrement float64 `yaml:"speed_increment"` // Speed added each period
	BurstCap       int     `yaml:"burst_cap"`       // Max obstacles spawned immediately after a ramp step
	MaxSpeed       float64 `yaml:"max_speed"`       // Ceiling for ramped speed
}

// Score maps distance traveled to points.
type Score struct {
	DistancePerPoint float64 `yaml:"distance_per_point"`
}

// Player defines the runner's hitbox and screen anchor.
type Player struct {
	X            int `yaml:"x"`             // Fixed horizontal screen position
	Width        int `yaml:"width"`         // Hitbox width
	Height       int `yaml:"height"`        // Hitbox height
	GroundOffset int `yaml:"ground_offset"` // Rows between the ground line and the screen bottom
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
