package vtscreen

// StyleFlags holds the boolean SGR attributes, bit-packed the way the
// teacher's CellFlags packs cell booleans.
type StyleFlags uint16

const (
	StyleBold StyleFlags = 1 << iota
	StyleItalic
	StyleUnderline
	StyleDoubleUnderline
	StyleCurlyUnderline
	StyleDottedUnderline
	StyleDashedUnderline
	StyleStrikethrough
	StyleInverse
	StyleInvisible
	StyleBlink
	StyleFaint
	StyleOverline
)

func (f StyleFlags) Has(flag StyleFlags) bool { return f&flag != 0 }
func (f StyleFlags) Set(flag StyleFlags) StyleFlags { return f | flag }
func (f StyleFlags) Clear(flag StyleFlags) StyleFlags { return f &^ flag }

// Style is the full SGR attribute set for a run of cells: foreground,
// background, underline color, and the boolean flags. Styles are
// interned per page via [StyleSet] so that [Cell.StyleID] stays a
// 4-byte handle instead of embedding the whole struct per cell.
type Style struct {
	Foreground    Color
	Background    Color
	UnderlineColor Color
	Flags         StyleFlags
}

// IsDefault reports whether s is indistinguishable from the zero style,
// the case that maps to [StyleID] zero.
func (s Style) IsDefault() bool {
	return s == Style{}
}

// StyleSet interns [Style] values for one page, handing back a small
// [StyleID] and ref-counting so a page can drop styles that no longer
// have any referring cell (spec.md §4.1's per-page arena model).
type StyleSet struct {
	styles []Style
	refs   []uint32
	lookup map[Style]StyleID
}

// NewStyleSet returns a set with slot zero reserved for the default
// style (never ref-counted, never evicted).
func NewStyleSet() *StyleSet {
	return &StyleSet{
		styles: []Style{{}},
		refs:   []uint32{1},
		lookup: map[Style]StyleID{{}: 0},
	}
}

// Intern returns the StyleID for s, allocating a new slot if s hasn't
// been seen on this page before, and increments its ref count.
func (s *StyleSet) Intern(style Style) StyleID {
	if style.IsDefault() {
		return 0
	}
	if id, ok := s.lookup[style]; ok {
		s.refs[id]++
		return id
	}
	id := StyleID(len(s.styles))
	s.styles = append(s.styles, style)
	s.refs = append(s.refs, 1)
	s.lookup[style] = id
	return id
}

// Get resolves id back to its [Style]. Panics on an out-of-range id,
// which indicates a corrupted page — callers are expected to only pass
// IDs obtained from this same set.
func (s *StyleSet) Get(id StyleID) Style {
	return s.styles[id]
}

// Release decrements id's ref count, evicting its lookup entry (but not
// compacting the slice, which would invalidate other cells' IDs) once
// it reaches zero.
func (s *StyleSet) Release(id StyleID) {
	if id == 0 {
		return
	}
	s.refs[id]--
	if s.refs[id] == 0 {
		delete(s.lookup, s.styles[id])
	}
}

// RefCount reports how many cells currently reference id, for tests and
// diagnostics.
func (s *StyleSet) RefCount(id StyleID) uint32 {
	return s.refs[id]
}
