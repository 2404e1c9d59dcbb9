package vtscreen

import "testing"

func TestRenderStateUpdateClearsDirtyBitsets(t *testing.T) {
	term := NewTerminal(3, 5)
	screen := term.ActiveScreen()
	screen.Print('a', WideNarrow, Style{})
	screen.markDirty(DirtyCursor)
	term.SetPWD("/tmp")

	rs := NewRenderState()
	rs.Update(term)

	if term.Dirty() != 0 {
		t.Fatalf("terminal Dirty() after Update() = %v, want 0", term.Dirty())
	}
	if screen.Dirty != 0 {
		t.Fatalf("screen.Dirty after Update() = %v, want 0", screen.Dirty)
	}
}

func TestRenderStateUpdateCopiesCellContent(t *testing.T) {
	term := NewTerminal(3, 5)
	screen := term.ActiveScreen()
	screen.Print('z', WideNarrow, Style{})

	rs := NewRenderState()
	rs.Update(term)

	if rs.Rows[0].Cells[0].CodePoint != 'z' {
		t.Fatalf("Rows[0].Cells[0].CodePoint = %q, want 'z'", rs.Rows[0].Cells[0].CodePoint)
	}
}

func TestRenderStateLinkCellsFindsSharedHyperlink(t *testing.T) {
	term := NewTerminal(1, 5)
	screen := term.ActiveScreen()
	screen.SetHyperlink(Hyperlink{URI: "http://example.com"})
	for i := 0; i < 3; i++ {
		screen.MoveCursor(i, 0)
		screen.Print(rune('a'+i), WideNarrow, Style{})
	}

	rs := NewRenderState()
	rs.Update(term)

	cells := rs.LinkCells(Point{X: 1, Y: 0})
	if len(cells) != 3 {
		t.Fatalf("LinkCells() = %d cells, want 3", len(cells))
	}
}

func TestRenderStateLinkCellsNoneWhenCellHasNoLink(t *testing.T) {
	term := NewTerminal(1, 5)
	screen := term.ActiveScreen()
	screen.Print('a', WideNarrow, Style{})

	rs := NewRenderState()
	rs.Update(term)

	if cells := rs.LinkCells(Point{X: 0, Y: 0}); cells != nil {
		t.Fatalf("LinkCells() = %v, want nil for a cell with no hyperlink", cells)
	}
}

func TestRenderStateUpdateFollowsScrolledViewport(t *testing.T) {
	term := NewTerminal(2, 5)
	screen := term.ActiveScreen()
	screen.Print('a', WideNarrow, Style{})
	screen.ScrollUp(0, 1, 1) // pushes the row holding 'a' into scrollback
	screen.MoveCursor(0, 0)
	screen.Print('b', WideNarrow, Style{})

	rs := NewRenderState()
	rs.Update(term)
	if rs.Rows[0].Cells[0].CodePoint != 'b' {
		t.Fatalf("at viewport offset 0, Rows[0].Cells[0] = %q, want 'b'", rs.Rows[0].Cells[0].CodePoint)
	}

	screen.ScrollViewport(-1)
	rs.Update(term)
	if rs.Rows[0].Cells[0].CodePoint != 'a' {
		t.Fatalf("after scrolling the viewport up one row, Rows[0].Cells[0] = %q, want 'a' (scrollback content)", rs.Rows[0].Cells[0].CodePoint)
	}
}

func TestRenderStateReverseColorsSwapsForegroundBackground(t *testing.T) {
	term := NewTerminal(2, 5)
	rs := NewRenderState()
	rs.Update(term)
	fg, bg := rs.Foreground, rs.Background

	term.SetReverseColors(true)
	rs.Update(term)
	if rs.Foreground != bg || rs.Background != fg {
		t.Fatal("reverse-colors mode should swap foreground and background")
	}
}
