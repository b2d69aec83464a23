package core

import (
	"strings"
	"testing"
)

func runeAt(s *Screen, x, y int) rune {
	return s.GetCell(x, y).Rune
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	if strings.Trim(s.String(), " \n") != "" {
		t.Error("new screen should be blank")
	}
}

func TestScreenSetColorClips(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColor(4, 2, 'Y', ColorLaser)
	cell := s.GetCell(4, 2)
	if cell.Rune != 'Y' || cell.Color != ColorLaser {
		t.Errorf("GetCell(4, 2) = %+v, expected laser 'Y'", cell)
	}

	s.SetColor(-1, 0, 'Z', ColorBeam)
	s.SetColor(10, 0, 'Z', ColorBeam)
	if strings.ContainsRune(s.String(), 'Z') {
		t.Error("out of bounds writes should be ignored")
	}
	if runeAt(s, -1, 0) != ' ' || runeAt(s, 0, 99) != ' ' {
		t.Error("out of bounds reads should return a blank")
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColor(1, 1, '#', ColorPlayer)
	s.Clear()

	if cell := s.GetCell(1, 1); cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear() left %+v", cell)
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextColor(7, 0, "Score", ColorHighlight)

	if got := strings.Split(s.String(), "\n")[0]; got != "       Sco" {
		t.Errorf("row 0 = %q, expected clipped text", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc", ColorBeam)

	if runeAt(s, 4, 0) != 'a' || runeAt(s, 6, 0) != 'c' {
		t.Errorf("row = %q, expected centered text", s.String())
	}
	if s.GetCell(5, 0).Color != ColorBeam {
		t.Error("centered text should carry its color")
	}

	// Multi-byte runes count as one cell each
	s.Clear()
	s.DrawTextCentered(0, "✖ ✖", ColorPlayerHit)
	if runeAt(s, 4, 0) != '✖' || runeAt(s, 6, 0) != '✖' {
		t.Errorf("row = %q, expected centered runes", s.String())
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(2, 2, 3, 3, '█', ColorBeam)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if runeAt(s, x, y) != '█' {
				t.Errorf("DrawRect: expected '█' at (%d, %d), got %q", x, y, runeAt(s, x, y))
			}
		}
	}
	if runeAt(s, 1, 1) != ' ' || runeAt(s, 5, 5) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(1, 1, 5, 4, ColorHighlight)

	cells := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
		{3, 1}: '─',
		{1, 2}: '│',
		{3, 2}: ' ',
	}
	for pos, want := range cells {
		if got := runeAt(s, pos[0], pos[1]); got != want {
			t.Errorf("cell at %v = %q, expected %q", pos, got, want)
		}
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(5, 2)
	s.DrawHLine(1, 0, 3, '═', ColorGround)
	s.DrawHLine(0, 1, -2, '═', ColorGround)

	lines := strings.Split(s.String(), "\n")
	if lines[0] != " ═══ " {
		t.Errorf("row 0 = %q", lines[0])
	}
	if lines[1] != "     " {
		t.Errorf("negative length should draw nothing, row 1 = %q", lines[1])
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColor(1, 1, 'K', ColorDefault)
	s.SetColor(4, 4, 'L', ColorDefault)

	s.Resize(3, 3)
	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("size after resize = %dx%d", s.Width(), s.Height())
	}
	if runeAt(s, 1, 1) != 'K' {
		t.Error("Resize should preserve content inside the new bounds")
	}

	s.Resize(6, 6)
	if runeAt(s, 4, 4) != ' ' {
		t.Error("content clipped by a shrink should not reappear")
	}
}
