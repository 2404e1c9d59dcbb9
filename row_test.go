package vtscreen

import "testing"

func TestNewRowIsBlank(t *testing.T) {
	r := NewRow(5)
	if len(r.Cells) != 5 {
		t.Fatalf("len(Cells) = %d, want 5", len(r.Cells))
	}
	if !r.IsEmpty() {
		t.Fatal("a freshly constructed row should be empty")
	}
}

func TestRowResizeGrowShrink(t *testing.T) {
	r := NewRow(3)
	r.Cells[0].CodePoint = 'a'
	r.Resize(5)
	if len(r.Cells) != 5 {
		t.Fatalf("len(Cells) after grow = %d, want 5", len(r.Cells))
	}
	if r.Cells[0].CodePoint != 'a' {
		t.Fatal("growing a row must preserve existing cell content")
	}
	for i := 3; i < 5; i++ {
		if !r.Cells[i].IsBlank() {
			t.Fatalf("new cells from growth should be blank, index %d = %+v", i, r.Cells[i])
		}
	}

	r.Resize(2)
	if len(r.Cells) != 2 {
		t.Fatalf("len(Cells) after shrink = %d, want 2", len(r.Cells))
	}
	if r.Cells[0].CodePoint != 'a' {
		t.Fatal("shrinking a row must preserve the cells that remain")
	}
}

func TestRowResizeNoopAtSameWidth(t *testing.T) {
	r := NewRow(4)
	r.Cells[1].CodePoint = 'z'
	r.Resize(4)
	if r.Cells[1].CodePoint != 'z' {
		t.Fatal("Resize to the current width must not touch existing cells")
	}
}

func TestRowClear(t *testing.T) {
	r := NewRow(3)
	r.Cells[0].CodePoint = 'a'
	r.Flags = r.Flags.Set(RowWrapped)
	r.Clear()
	if !r.IsEmpty() {
		t.Fatal("Clear should blank every cell")
	}
	if r.Flags.Has(RowWrapped) {
		t.Fatal("Clear should drop RowWrapped")
	}
}

func TestRowIsEmptyDetectsNonBlankCell(t *testing.T) {
	r := NewRow(3)
	r.Cells[2].CodePoint = 'x'
	if r.IsEmpty() {
		t.Fatal("a row with one non-blank cell should not be empty")
	}
}

func TestRowFlagsHasSetClear(t *testing.T) {
	var f RowFlags
	f = f.Set(RowDirty)
	f = f.Set(RowPromptStart)
	if !f.Has(RowDirty) || !f.Has(RowPromptStart) {
		t.Fatal("expected both RowDirty and RowPromptStart set")
	}
	f = f.Clear(RowDirty)
	if f.Has(RowDirty) {
		t.Fatal("RowDirty should have been cleared")
	}
	if !f.Has(RowPromptStart) {
		t.Fatal("clearing RowDirty should not affect RowPromptStart")
	}
}
