package runner

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Visual characters for rendering
const (
	RunnerBody   = '█'
	RunnerHead   = '◆'
	RunnerLeg1   = '╱'
	RunnerLeg2   = '╲'
	ObstacleChar = '▓'
	GroundChar   = '═'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	snap := g.world.Snapshot()

	// Ground
	dst.DrawHLine(0, g.groundY, dst.Width(), GroundChar)

	// Obstacles: world x mapped so the runner stays at the fixed player column.
	for _, o := range g.world.Obstacles() {
		g.drawObstacle(dst, o, snap.RunnerX)
	}

	g.drawRunner(dst, snap)
	g.drawHUD(dst, snap)

	switch snap.Phase {
	case PhaseIdle:
		g.drawCenteredMessage(dst, "HORIZON RUNNER", "Press Space to start")
	case PhasePaused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case PhaseFinished:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

// drawObstacle renders a single obstacle column block.
func (g *Game) drawObstacle(dst *core.Screen, o Obstacle, runnerX float64) {
	screenX := int(o.X-runnerX) + g.cfg.Player.X
	w := int(o.Width)
	h := int(o.Height)
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			dst.SetCell(screenX+dx, g.groundY-h+dy, ObstacleChar, core.ColorGreen)
		}
	}
}

// drawRunner renders the player character.
func (g *Game) drawRunner(dst *core.Screen, snap Snapshot) {
	baseY := g.groundY - g.cfg.Player.Height + int(snap.RunnerY)
	x := g.cfg.Player.X

	color := core.ColorBrightWhite
	if snap.Invincible {
		color = core.ColorBrightYellow
	}

	// Simple runner sprite (3x3)
	//  ◆█
	// ███
	// ╱╲
	dst.SetCell(x+1, baseY, RunnerHead, color)
	dst.SetCell(x+2, baseY, RunnerBody, color)

	dst.SetCell(x, baseY+1, RunnerBody, color)
	dst.SetCell(x+1, baseY+1, RunnerBody, color)
	dst.SetCell(x+2, baseY+1, RunnerBody, color)

	if snap.Grounded {
		if g.legFrame < 5 {
			dst.SetCell(x, baseY+2, RunnerLeg1, color)
			dst.SetCell(x+2, baseY+2, RunnerLeg2, color)
		} else {
			dst.SetCell(x+1, baseY+2, RunnerLeg1, color)
			dst.SetCell(x+2, baseY+2, RunnerLeg2, color)
		}
	} else {
		// In air - legs tucked
		dst.SetCell(x, baseY+2, RunnerLeg1, color)
		dst.SetCell(x+1, baseY+2, RunnerLeg2, color)
	}
}

// drawHUD renders the score and speed readouts.
func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", snap.Score))

	right := fmt.Sprintf(" Spd: %.1f  Obst: %d ", snap.Speed, snap.Obstacles)
	dst.DrawText(dst.Width()-len(right)-2, 0, right)

	if snap.Invincible {
		dst.DrawTextColored(2, 1, " GOD ", core.ColorBrightYellow)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
