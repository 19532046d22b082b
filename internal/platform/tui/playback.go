package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/replay"
)

// PlaybackModel replays a recorded trace against a fresh game instance.
// The simulation runs at the trace's original tick rate; keyboard input is
// ignored except for quitting, so the replay cannot diverge from the recording.
type PlaybackModel struct {
	game     core.Game
	screen   *core.Screen
	player   *replay.Player
	config   core.RuntimeConfig
	quitting bool
	done     bool
}

// NewPlaybackModel creates a playback model for the given trace.
func NewPlaybackModel(game core.Game, trace replay.Trace) PlaybackModel {
	cfg := trace.Runtime()
	return PlaybackModel{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		player: replay.NewPlayer(trace),
		config: cfg,
	}
}

// Init initializes the model and starts playback.
func (m PlaybackModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and advances the playback.
func (m PlaybackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case TickMsg:
		if m.player.Done() {
			m.done = true
			return m, nil
		}
		m.game.Step(m.player.Next())
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// View renders the replayed frame with a playback banner.
func (m PlaybackModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	// Stamp the banner over the top-right corner of the frame
	tag := " REPLAY "
	if m.done {
		tag = " REPLAY ENDED - q to exit "
	}
	m.screen.DrawTextColored(m.screen.Width()-len(tag)-1, 0, tag, core.ColorBrightCyan)

	return RenderScreen(m.screen)
}

// RunPlayback plays a recorded trace in the terminal.
func RunPlayback(game core.Game, trace replay.Trace) error {
	model := NewPlaybackModel(game, trace)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
