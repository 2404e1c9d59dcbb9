package vtscreen

import "testing"

func writeString(screen *Screen, s string, style Style) {
	for _, r := range s {
		screen.Print(r, WideNarrow, style)
	}
}

func TestSnapshotTextDetail(t *testing.T) {
	term := NewTerminal(3, 10)
	screen := term.ActiveScreen()
	writeString(screen, "Hello", Style{})
	screen.MoveCursor(0, 1)
	writeString(screen, "World", Style{})

	rs := NewRenderState()
	rs.Update(term)
	snap := rs.Snapshot(SnapshotDetailText)

	if snap.Size.Rows != 3 || snap.Size.Cols != 10 {
		t.Fatalf("Size = %+v, want {3 10}", snap.Size)
	}
	if len(snap.Lines) != 3 {
		t.Fatalf("len(Lines) = %d, want 3", len(snap.Lines))
	}
	if snap.Lines[0].Text != "Hello     " {
		t.Errorf("Lines[0].Text = %q, want %q", snap.Lines[0].Text, "Hello     ")
	}
	if snap.Lines[1].Text != "World     " {
		t.Errorf("Lines[1].Text = %q, want %q", snap.Lines[1].Text, "World     ")
	}
	if snap.Lines[0].Segments != nil {
		t.Error("text detail should not populate Segments")
	}
	if snap.Lines[0].Cells != nil {
		t.Error("text detail should not populate Cells")
	}
}

func TestSnapshotCursorReflectsRenderState(t *testing.T) {
	term := NewTerminal(5, 10)
	screen := term.ActiveScreen()
	writeString(screen, "ABC", Style{})

	rs := NewRenderState()
	rs.Update(term)
	snap := rs.Snapshot(SnapshotDetailText)

	if snap.Cursor.Row != 0 || snap.Cursor.Col != 3 {
		t.Errorf("Cursor = %+v, want row 0 col 3", snap.Cursor)
	}
	if !snap.Cursor.Visible {
		t.Error("Cursor.Visible = false, want true")
	}
	if snap.Cursor.Style != "block" {
		t.Errorf("Cursor.Style = %q, want %q", snap.Cursor.Style, "block")
	}
}

func TestSnapshotStyledDetailSegmentsByStyleRun(t *testing.T) {
	term := NewTerminal(1, 6)
	screen := term.ActiveScreen()
	red := Style{Foreground: PaletteColor(1)}
	writeString(screen, "ab", red)
	writeString(screen, "cd", Style{})

	rs := NewRenderState()
	rs.Update(term)
	snap := rs.Snapshot(SnapshotDetailStyled)

	segs := snap.Lines[0].Segments
	if len(segs) != 2 {
		t.Fatalf("len(Segments) = %d, want 2: %+v", len(segs), segs)
	}
	if segs[0].Text != "ab" || segs[0].Fg == "" {
		t.Errorf("Segments[0] = %+v, want red text %q", segs[0], "ab")
	}
	if segs[1].Text != "cd  " || segs[1].Fg != "" {
		t.Errorf("Segments[1] = %+v, want default-color text %q", segs[1], "cd  ")
	}
}

func TestSnapshotFullDetailOneCellPerColumn(t *testing.T) {
	term := NewTerminal(1, 3)
	screen := term.ActiveScreen()
	writeString(screen, "xy", Style{})

	rs := NewRenderState()
	rs.Update(term)
	snap := rs.Snapshot(SnapshotDetailFull)

	cells := snap.Lines[0].Cells
	if len(cells) != 3 {
		t.Fatalf("len(Cells) = %d, want 3", len(cells))
	}
	if cells[0].Char != "x" || cells[1].Char != "y" || cells[2].Char != " " {
		t.Fatalf("Cells chars = %q %q %q, want x y space", cells[0].Char, cells[1].Char, cells[2].Char)
	}
}

func TestSnapshotHyperlinkAttachedToSegmentAndCell(t *testing.T) {
	term := NewTerminal(1, 5)
	screen := term.ActiveScreen()
	screen.SetHyperlink(Hyperlink{ID: "x", URI: "http://example.com"})
	writeString(screen, "go", Style{})
	screen.ClearHyperlink()
	writeString(screen, "!", Style{})

	rs := NewRenderState()
	rs.Update(term)
	snap := rs.Snapshot(SnapshotDetailFull)

	if snap.Lines[0].Cells[0].Hyperlink == nil || snap.Lines[0].Cells[0].Hyperlink.URI != "http://example.com" {
		t.Fatalf("Cells[0].Hyperlink = %+v, want http://example.com", snap.Lines[0].Cells[0].Hyperlink)
	}
	if snap.Lines[0].Cells[2].Hyperlink != nil {
		t.Fatal("Cells[2] was printed after ClearHyperlink, should carry no link")
	}
}
