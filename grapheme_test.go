package vtscreen

import (
	"reflect"
	"testing"
)

func TestGraphemeMapSetGetDelete(t *testing.T) {
	g := NewGraphemeMap()
	if got := g.Get(1, 2); got != nil {
		t.Fatalf("Get on an unset key should return nil, got %v", got)
	}

	g.Set(1, 2, []rune{0x0301})
	if got := g.Get(1, 2); !reflect.DeepEqual(got, []rune{0x0301}) {
		t.Fatalf("Get(1,2) = %v, want [0x0301]", got)
	}
	if g.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", g.Len())
	}

	g.Delete(1, 2)
	if got := g.Get(1, 2); got != nil {
		t.Fatalf("Get after Delete should return nil, got %v", got)
	}
	if g.Len() != 0 {
		t.Fatalf("Len() after Delete = %d, want 0", g.Len())
	}
}

func TestGraphemeMapSetEmptyDeletes(t *testing.T) {
	g := NewGraphemeMap()
	g.Set(0, 0, []rune{0x0301})
	g.Set(0, 0, nil)
	if g.Len() != 0 {
		t.Fatalf("Set with an empty slice should clear the entry, Len() = %d", g.Len())
	}
}

func TestGraphemeMapAppend(t *testing.T) {
	g := NewGraphemeMap()
	g.Append(3, 4, 0x0301)
	g.Append(3, 4, 0x0302)
	want := []rune{0x0301, 0x0302}
	if got := g.Get(3, 4); !reflect.DeepEqual(got, want) {
		t.Fatalf("Get(3,4) = %v, want %v", got, want)
	}
}

func TestGraphemeMapSetCopiesInput(t *testing.T) {
	g := NewGraphemeMap()
	marks := []rune{0x0301}
	g.Set(0, 0, marks)
	marks[0] = 0x0302
	if got := g.Get(0, 0); got[0] != 0x0301 {
		t.Fatal("GraphemeMap.Set must copy its input slice, not alias it")
	}
}
