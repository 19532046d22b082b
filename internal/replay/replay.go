// Package replay records and replays runs. A trace stores the RNG seed,
// the runtime the run was played under, and the per-tick action sequence;
// because the simulation is deterministic, that is enough to reproduce the
// run exactly.
package replay

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Frame is one tick's recorded input. Ticks with no actions are not stored.
type Frame struct {
	Tick    int      `json:"tick"`
	Actions []string `json:"actions"`
}

// Trace is a complete run recording. Config pins the gameplay constants the
// run was played under, so playback does not depend on whatever YAML happens
// to be on disk later.
type Trace struct {
	GameID   string         `json:"gameId"`
	Seed     int64          `json:"seed"`
	ScreenW  int            `json:"screenW"`
	ScreenH  int            `json:"screenH"`
	TickRate int            `json:"tickRate"`
	Ticks    int            `json:"ticks"` // Total ticks the run lasted
	Config   *config.Config `json:"config,omitempty"`
	Frames   []Frame        `json:"frames"`
}

// Runtime reconstructs the RuntimeConfig the run was recorded under.
func (t Trace) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  t.ScreenW,
		ScreenH:  t.ScreenH,
		TickRate: t.TickRate,
		Seed:     t.Seed,
	}
}

// Encode serializes the trace to JSON.
func (t Trace) Encode() ([]byte, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot encode trace: %w", err)
	}
	return data, nil
}

// Decode parses a JSON trace.
func Decode(data []byte) (Trace, error) {
	var t Trace
	if err := json.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("replay: cannot decode trace: %w", err)
	}
	return t, nil
}

// Recorder accumulates input frames during a live run.
type Recorder struct {
	trace Trace
	tick  int
}

// NewRecorder starts a recording for the given game and runtime.
func NewRecorder(gameID string, rt core.RuntimeConfig) *Recorder {
	return &Recorder{
		trace: Trace{
			GameID:   gameID,
			Seed:     rt.Seed,
			ScreenW:  rt.ScreenW,
			ScreenH:  rt.ScreenH,
			TickRate: rt.TickRate,
		},
	}
}

// PinConfig stores the gameplay config the run is being played under.
func (r *Recorder) PinConfig(cfg config.Config) {
	r.trace.Config = &cfg
}

// Record stores the actions of the tick about to be simulated.
func (r *Recorder) Record(in core.InputFrame) {
	if actions := in.List(); len(actions) > 0 {
		names := make([]string, len(actions))
		for i, a := range actions {
			names[i] = a.String()
		}
		sort.Strings(names) // Map iteration order must not leak into the trace
		r.trace.Frames = append(r.trace.Frames, Frame{Tick: r.tick, Actions: names})
	}
	r.tick++
}

// Trace finalizes and returns the recording.
func (r *Recorder) Trace() Trace {
	r.trace.Ticks = r.tick
	return r.trace
}

// Player feeds a recorded trace back into a game tick by tick.
type Player struct {
	trace Trace
	tick  int
	next  int // Index into trace.Frames
}

// NewPlayer creates a playback cursor over a trace.
func NewPlayer(trace Trace) *Player {
	return &Player{trace: trace}
}

// Done reports whether the trace has been fully consumed.
func (p *Player) Done() bool {
	return p.tick >= p.trace.Ticks
}

// Next returns the input frame for the current tick and advances the cursor.
func (p *Player) Next() core.InputFrame {
	in := core.NewInputFrame()
	if p.next < len(p.trace.Frames) && p.trace.Frames[p.next].Tick == p.tick {
		for _, name := range p.trace.Frames[p.next].Actions {
			if a := core.ParseAction(name); a != core.ActionNone {
				in.Set(a)
			}
		}
		p.next++
	}
	p.tick++
	return in
}

// Run replays the whole trace headlessly against a freshly reset game and
// returns the final state.
func Run(game core.Game, trace Trace) core.GameState {
	game.Reset(trace.Runtime())
	state := game.State()
	p := NewPlayer(trace)
	for !p.Done() {
		state = game.Step(p.Next()).State
	}
	return state
}
