// Package runner implements an endless side-scrolling obstacle runner.
// The character runs forward automatically at a speed that ramps over time;
// the player jumps over procedurally generated obstacles whose density
// scales with speed.
package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Game wires the world simulation into the platform's Game interface.
type Game struct {
	world    *World
	cfg      config.Config
	runtime  core.RuntimeConfig
	groundY  int // Screen row of the ground line
	legFrame int // Animation frame for running legs
}

// configPath stores the custom config path set via CLI.
var configPath string
var difficultyPreset config.DifficultyPreset
var configOverride *config.Config

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// SetConfigOverride bypasses config loading entirely and uses the given
// config as-is. Replay playback uses this to pin the exact gameplay values a
// run was recorded under. Pass nil to restore normal loading.
func SetConfigOverride(cfg *config.Config) {
	configOverride = cfg
}

// New creates a new runner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Horizon Runner"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt

	if configOverride != nil {
		g.cfg = *configOverride
	} else {
		cfg, err := config.Load(configPath)
		if err != nil {
			cfg = config.DefaultConfig()
		}
		if difficultyPreset != "" {
			config.ApplyPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.groundY = rt.ScreenH - g.cfg.Player.GroundOffset
	g.legFrame = 0

	// First obstacle spawns just past the right screen edge; passed
	// obstacles are kept until they scroll off the left edge.
	spawnLead := float64(rt.ScreenW - g.cfg.Player.X)
	keepBehind := float64(g.cfg.Player.X)
	g.world = NewWorld(&g.cfg, core.NewSource(rt.Seed), spawnLead, keepBehind)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	w := g.world

	// Restart works from any state.
	if in.Has(core.ActionRestart) {
		w.RequestRestart()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionGodMode) && w.Phase() != PhaseFinished {
		w.ToggleInvincibility()
	}

	switch w.Phase() {
	case PhaseIdle:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) {
			w.RequestStart()
		}

	case PhaseRunning, PhasePaused:
		if in.Has(core.ActionPause) {
			w.TogglePause()
		}
		if w.Phase() == PhaseRunning {
			if in.Has(core.ActionJump) {
				w.RequestJump()
			}
			w.Tick()
			g.legFrame = (g.legFrame + 1) % 10
		}

	case PhaseFinished:
		// Frozen for inspection until restart.
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	snap := g.world.Snapshot()
	return core.GameState{
		Score:    snap.Score,
		GameOver: snap.Phase == PhaseFinished,
		Paused:   snap.Phase == PhasePaused,
	}
}

// World exposes the simulation for the debug spawn hook and tests.
func (g *Game) World() *World {
	return g.world
}

// Config returns the gameplay config the current run was initialized with.
// The replay recorder pins it into the trace.
func (g *Game) Config() config.Config {
	return g.cfg
}
