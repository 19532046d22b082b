package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
)

func TestRenderScreenLinesAndContent(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.SetCell(0, 1, 'x', core.ColorGreen)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") {
		t.Errorf("first line %q is missing the drawn text", lines[0])
	}
	if !strings.Contains(lines[1], "x") {
		t.Errorf("second line %q is missing the colored cell", lines[1])
	}
}

func TestStyleForOutOfRangeFallsBack(t *testing.T) {
	got := styleFor(core.Color(200)).Render("z")
	want := styleFor(core.ColorDefault).Render("z")
	if got != want {
		t.Errorf("out-of-range color rendered %q, expected the default %q", got, want)
	}
}
