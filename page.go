package vtscreen

import "github.com/google/uuid"

// Page is a fixed-capacity block of rows within a [PageList]: the unit
// of allocation, trimming, and dirty tracking. Each page owns its own
// interning arenas so that styles, hyperlinks, and grapheme extensions
// never need to be renumbered when a page is relocated or trimmed.
type Page struct {
	generation uuid.UUID
	rows       []Row
	cols       int
	styles     *StyleSet
	hyperlinks *HyperlinkSet
	graphemes  *GraphemeMap
	dirty      bool
}

// NewPage returns a page of rows×cols blank cells with fresh, empty
// interning tables and a new generation stamp.
func NewPage(rows, cols int) *Page {
	rs := make([]Row, rows)
	for i := range rs {
		rs[i] = NewRow(cols)
	}
	return &Page{
		generation: uuid.New(),
		rows:       rs,
		cols:       cols,
		styles:     NewStyleSet(),
		hyperlinks: NewHyperlinkSet(),
		graphemes:  NewGraphemeMap(),
	}
}

// Generation returns the stamp minted when this page was allocated, a
// distinct identity for each allocation. [Pin.Valid] does not consult
// it: a pin is invalidated through its page node's freed flag, and
// tracked pins are detached when their page is trimmed.
func (p *Page) Generation() uuid.UUID { return p.generation }

// Rows reports the page's current row count.
func (p *Page) Rows() int { return len(p.rows) }

// Cols reports the page's fixed column width.
func (p *Page) Cols() int { return p.cols }

// Row returns a pointer to row y.
func (p *Page) Row(y int) *Row { return &p.rows[y] }

// Cell returns a pointer to the cell at (y, x).
func (p *Page) Cell(y, x int) *Cell { return &p.rows[y].Cells[x] }

// Styles exposes the page's interned style table.
func (p *Page) Styles() *StyleSet { return p.styles }

// Hyperlinks exposes the page's interned hyperlink table.
func (p *Page) Hyperlinks() *HyperlinkSet { return p.hyperlinks }

// Graphemes exposes the page's grapheme side table.
func (p *Page) Graphemes() *GraphemeMap { return p.graphemes }

// Dirty reports whether any row on the page has changed since the last
// observation.
func (p *Page) Dirty() bool { return p.dirty }

// MarkRowDirty flags row y and the page itself dirty. Called by every
// Screen mutation that touches a cell (spec.md §4.1's dirty propagation
// rule: writers set, observers clear).
func (p *Page) MarkRowDirty(y int) {
	p.rows[y].Flags = p.rows[y].Flags.Set(RowDirty)
	p.dirty = true
}

// ClearDirty clears the page-level bit and every row's dirty bit. Only
// an observer (the render-state snapshot) should call this.
func (p *Page) ClearDirty() {
	p.dirty = false
	for i := range p.rows {
		p.rows[i].Flags = p.rows[i].Flags.Clear(RowDirty)
	}
}

// ManagedMemory reports whether row y references anything in the page's
// interning arenas — a style, a hyperlink, or a grapheme extension. The
// render-state snapshot uses this to decide whether a row can be copied
// with a bulk memcpy of cell data or must be walked cell-by-cell to
// resolve indirections (spec.md §4.6).
func (p *Page) ManagedMemory(y int) bool {
	row := &p.rows[y]
	for x, c := range row.Cells {
		if c.StyleID != 0 || c.Hyperlink != 0 {
			return true
		}
		if c.ContentTag == ContentCodepointGrapheme && len(p.graphemes.Get(y, x)) > 0 {
			return true
		}
	}
	return false
}

// ReleaseCell drops the cell's interned references (style, hyperlink,
// grapheme extension) before the cell is overwritten or the row is
// cleared, keeping the page's ref counts accurate.
func (p *Page) ReleaseCell(y, x int) {
	c := &p.rows[y].Cells[x]
	p.styles.Release(c.StyleID)
	p.hyperlinks.Release(c.Hyperlink)
	p.graphemes.Delete(y, x)
}

// pageNode is the doubly-linked list element wrapping a [Page] inside a
// [PageList], plus the tracked-pin registry used to keep pins valid
// across structural edits.
type pageNode struct {
	page       *Page
	prev, next *pageNode
	tracked    map[*Pin]struct{}
	freed      bool
}
