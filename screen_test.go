package vtscreen

import "testing"

func cellRune(s *Screen, x, y int) rune {
	p, _ := s.Pages.Pin(SpaceActive, x, y)
	return p.Cell().CodePoint
}

func TestScreenPrintAdvancesCursor(t *testing.T) {
	s := NewScreen(3, 5, 50, 100)
	s.Print('a', WideNarrow, Style{})
	if s.Cursor.X != 1 {
		t.Fatalf("Cursor.X after Print = %d, want 1", s.Cursor.X)
	}
	if cellRune(s, 0, 0) != 'a' {
		t.Fatalf("cell (0,0) = %q, want 'a'", cellRune(s, 0, 0))
	}
}

func TestScreenPrintWideCharacterOccupiesSpacerTail(t *testing.T) {
	s := NewScreen(3, 5, 50, 100)
	s.Print('字', WideWide, Style{})
	p, _ := s.Pages.Pin(SpaceActive, 1, 0)
	if p.Cell().Wide != WideSpacerTail {
		t.Fatalf("cell (1,0).Wide = %v, want WideSpacerTail", p.Cell().Wide)
	}
}

func TestScreenScrollUpPushesIntoScrollback(t *testing.T) {
	s := NewScreen(3, 5, 50, 1000)
	s.Print('a', WideNarrow, Style{})
	before := s.Pages.ScrollbackRows()
	s.ScrollUp(0, 2, 1)
	after := s.Pages.ScrollbackRows()
	if after != before+1 {
		t.Fatalf("ScrollbackRows() after ScrollUp = %d, want %d", after, before+1)
	}
}

func TestScreenScrollDownFillsTopWithBlanks(t *testing.T) {
	s := NewScreen(3, 5, 50, 100)
	s.Print('a', WideNarrow, Style{})
	s.MoveCursor(0, 1)
	s.Print('b', WideNarrow, Style{})
	s.ScrollDown(0, 2, 1)
	if cellRune(s, 0, 0) != ' ' {
		t.Fatalf("cell (0,0) after ScrollDown = %q, want blank", cellRune(s, 0, 0))
	}
	if cellRune(s, 0, 1) != 'a' {
		t.Fatalf("cell (0,1) after ScrollDown = %q, want 'a'", cellRune(s, 0, 1))
	}
}

func TestScreenInsertAndDeleteChars(t *testing.T) {
	s := NewScreen(2, 5, 50, 100)
	for i, r := range []rune("abcde") {
		s.MoveCursor(i, 0)
		s.Print(r, WideNarrow, Style{})
	}
	s.InsertChars(0, 1, 2)
	got := string([]rune{cellRune(s, 0, 0), cellRune(s, 1, 0), cellRune(s, 2, 0), cellRune(s, 3, 0), cellRune(s, 4, 0)})
	if got != "a  bc" {
		t.Fatalf("after InsertChars(y=0,x=1,n=2) = %q, want %q", got, "a  bc")
	}

	s2 := NewScreen(2, 5, 50, 100)
	for i, r := range []rune("abcde") {
		s2.MoveCursor(i, 0)
		s2.Print(r, WideNarrow, Style{})
	}
	s2.DeleteChars(0, 1, 2)
	got2 := string([]rune{cellRune(s2, 0, 0), cellRune(s2, 1, 0), cellRune(s2, 2, 0), cellRune(s2, 3, 0), cellRune(s2, 4, 0)})
	if got2 != "ade  " {
		t.Fatalf("after DeleteChars(y=0,x=1,n=2) = %q, want %q", got2, "ade  ")
	}
}

func TestScreenClearRegion(t *testing.T) {
	s := NewScreen(2, 5, 50, 100)
	s.Print('a', WideNarrow, Style{})
	s.ClearRegion(0, 1, 0, 1)
	if cellRune(s, 0, 0) != ' ' {
		t.Fatalf("cell (0,0) after ClearRegion = %q, want blank", cellRune(s, 0, 0))
	}
}

func TestScreenSelectionDirtyTracking(t *testing.T) {
	s := NewScreen(3, 5, 50, 100)
	a, _ := s.Pages.Pin(SpaceActive, 0, 0)
	b, _ := s.Pages.Pin(SpaceActive, 2, 0)
	s.SetSelection(a, b, false)
	if !s.Dirty.Has(DirtySelection) {
		t.Fatal("SetSelection should mark DirtySelection")
	}
	s.Dirty = 0
	s.ClearSelection()
	if !s.Dirty.Has(DirtySelection) {
		t.Fatal("ClearSelection should mark DirtySelection")
	}
	if s.Selection != nil {
		t.Fatal("ClearSelection should drop the selection")
	}
}

func TestScreenHyperlinkLifecycle(t *testing.T) {
	s := NewScreen(2, 5, 50, 100)
	s.SetHyperlink(Hyperlink{URI: "http://example.com"})
	s.Print('x', WideNarrow, Style{})
	p, _ := s.Pages.Pin(SpaceActive, 0, 0)
	if !p.Cell().HasHyperlink() {
		t.Fatal("cell printed after SetHyperlink should carry the hyperlink")
	}
	s.ClearHyperlink()
	s.MoveCursor(1, 0)
	s.Print('y', WideNarrow, Style{})
	p2, _ := s.Pages.Pin(SpaceActive, 1, 0)
	if p2.Cell().HasHyperlink() {
		t.Fatal("cell printed after ClearHyperlink should not carry a hyperlink")
	}
}
