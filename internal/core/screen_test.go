package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '#')
	if s.Get(3, 2) != '#' {
		t.Errorf("Get(3,2) = %q, expected '#'", s.Get(3, 2))
	}

	// Out of bounds writes are ignored, reads return blanks.
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetCell(1, 1, '@', ColorBrightGreen)

	cell := s.GetCell(1, 1)
	if cell.Rune != '@' || cell.Color != ColorBrightGreen {
		t.Errorf("GetCell(1,1) = %+v, expected {'@' BrightGreen}", cell)
	}
	if s.GetCell(2, 1).Color != ColorDefault {
		t.Error("untouched cell should keep the default color")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 3)
	s.SetCell(2, 1, 'x', ColorRed)
	s.Clear()

	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			c := s.GetCell(x, y)
			if c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("cell (%d,%d) not cleared: %+v", x, y, c)
			}
		}
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(1, 1, 'a')
	s.Set(5, 3, 'b')

	s.Resize(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("Resize dimensions wrong: %dx%d", s.Width(), s.Height())
	}
	if s.Get(1, 1) != 'a' {
		t.Error("Resize should preserve content inside the new bounds")
	}

	s.Resize(8, 6)
	if s.Get(1, 1) != 'a' {
		t.Error("growing should preserve content")
	}
	if s.Get(7, 5) != ' ' {
		t.Error("new cells should be blank")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawText(7, 0, "hello") // Clipped at the right edge

	if s.Get(7, 0) != 'h' || s.Get(9, 0) != 'l' {
		t.Error("DrawText did not write expected runes")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	if got != "a  \n  b" {
		t.Errorf("String() = %q", got)
	}
	if strings.Count(got, "\n") != 1 {
		t.Error("String() should join rows with single newlines")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBox(NewRect(1, 1, 5, 4))

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' || s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("DrawBox corners wrong")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 3) != '│' {
		t.Error("DrawBox edges wrong")
	}
}
