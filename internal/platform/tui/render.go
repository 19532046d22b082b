package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// ansiCodes maps each core.Color to its ANSI 256 palette entry. The empty
// string means the terminal default.
var ansiCodes = [...]string{
	core.ColorDefault:       "",
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

var styles = buildStyles()

func buildStyles() []lipgloss.Style {
	s := make([]lipgloss.Style, len(ansiCodes))
	for c, code := range ansiCodes {
		if code == "" {
			s[c] = lipgloss.NewStyle()
			continue
		}
		s[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return s
}

func styleFor(c core.Color) lipgloss.Style {
	if int(c) >= len(styles) {
		c = core.ColorDefault
	}
	return styles[c]
}

// RenderScreen flattens a screen buffer into the styled string Bubble Tea
// views return. Cells are emitted in same-color runs, so a row costs one
// escape sequence per color change rather than one per cell.
func RenderScreen(s *core.Screen) string {
	var out strings.Builder
	out.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			out.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			var run strings.Builder
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			out.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return out.String()
}
