package vtscreen

// Pin locates one cell inside a [PageList]: a page node plus a row/column
// offset within that node. Pins returned from a tracked registration
// (see [PageList.TrackPin]) stay valid across page splits and trims;
// untracked pins are only a snapshot and must be re-derived after any
// structural edit.
type Pin struct {
	page *pageNode
	Y    int
	X    int
}

// Valid reports whether the pin still resolves inside its page's
// current bounds. A tracked pin whose page was freed reports false.
func (p Pin) Valid() bool {
	if p.page == nil || p.page.freed {
		return false
	}
	return p.Y < p.page.page.Rows() && p.X < p.page.page.Cols()
}

// Cell returns the cell the pin currently points to. Panics if the pin
// is not [Pin.Valid] — callers on the hot path are expected to check
// first, the same contract the teacher's buffer indexing assumes.
func (p Pin) Cell() *Cell {
	return &p.page.page.rows[p.Y].Cells[p.X]
}

// Row returns the row the pin points into.
func (p Pin) Row() *Row {
	return &p.page.page.rows[p.Y]
}

// Page exposes the owning page, for callers that need its style or
// hyperlink set (formatters, Screen mutation methods).
func (p Pin) Page() *Page {
	return p.page.page
}

// down returns a pin one row below p, crossing into the next page node
// if p is at the last row of its own node. Reports ok=false at the end
// of the list.
func (p Pin) down() (Pin, bool) {
	if p.Y+1 < p.page.page.Rows() {
		return Pin{page: p.page, Y: p.Y + 1, X: p.X}, true
	}
	if p.page.next == nil {
		return Pin{}, false
	}
	return Pin{page: p.page.next, Y: 0, X: p.X}, true
}

// up returns a pin one row above p, crossing into the previous page
// node if needed. Reports ok=false at the start of the list.
func (p Pin) up() (Pin, bool) {
	if p.Y > 0 {
		return Pin{page: p.page, Y: p.Y - 1, X: p.X}, true
	}
	if p.page.prev == nil {
		return Pin{}, false
	}
	return Pin{page: p.page.prev, Y: p.page.prev.page.Rows() - 1, X: p.X}, true
}
