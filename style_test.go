package vtscreen

import "testing"

func TestStyleFlagsBits(t *testing.T) {
	var f StyleFlags
	f = f.Set(StyleBold)
	f = f.Set(StyleItalic)
	if !f.Has(StyleBold) || !f.Has(StyleItalic) {
		t.Fatalf("expected Bold and Italic set, got %b", f)
	}
	if f.Has(StyleUnderline) {
		t.Fatal("Underline should not be set")
	}
	f = f.Clear(StyleBold)
	if f.Has(StyleBold) {
		t.Fatal("Bold should have been cleared")
	}
	if !f.Has(StyleItalic) {
		t.Fatal("clearing Bold should not affect Italic")
	}
}

func TestStyleIsDefault(t *testing.T) {
	if !(Style{}).IsDefault() {
		t.Fatal("zero Style should be default")
	}
	s := Style{Flags: StyleBold}
	if s.IsDefault() {
		t.Fatal("a style with Bold set should not be default")
	}
}

func TestStyleSetInternsDefaultAsZero(t *testing.T) {
	ss := NewStyleSet()
	id := ss.Intern(Style{})
	if id != 0 {
		t.Fatalf("interning the default style should return StyleID 0, got %d", id)
	}
	if ss.RefCount(0) != 1 {
		t.Fatalf("slot 0 ref count should start at 1, got %d", ss.RefCount(0))
	}
}

func TestStyleSetInternDedups(t *testing.T) {
	ss := NewStyleSet()
	s := Style{Flags: StyleBold, Foreground: PaletteColor(1)}
	id1 := ss.Intern(s)
	id2 := ss.Intern(s)
	if id1 != id2 {
		t.Fatalf("interning the same style twice should return the same id: %d != %d", id1, id2)
	}
	if ss.RefCount(id1) != 2 {
		t.Fatalf("expected ref count 2 after two interns, got %d", ss.RefCount(id1))
	}
	if got := ss.Get(id1); got != s {
		t.Fatalf("Get(%d) = %+v, want %+v", id1, got, s)
	}
}

func TestStyleSetReleaseEvictsAtZero(t *testing.T) {
	ss := NewStyleSet()
	s := Style{Flags: StyleItalic}
	id := ss.Intern(s)
	ss.Release(id)
	if ss.RefCount(id) != 0 {
		t.Fatalf("expected ref count 0 after release, got %d", ss.RefCount(id))
	}
	// Re-interning after the lookup entry was evicted must allocate a
	// fresh slot rather than resurrecting the freed one's ref count.
	id2 := ss.Intern(s)
	if ss.RefCount(id2) != 1 {
		t.Fatalf("expected ref count 1 on re-intern, got %d", ss.RefCount(id2))
	}
}

func TestStyleSetReleaseZeroIsNoop(t *testing.T) {
	ss := NewStyleSet()
	ss.Release(0)
	if ss.RefCount(0) != 1 {
		t.Fatalf("releasing StyleID 0 must not touch its ref count, got %d", ss.RefCount(0))
	}
}
