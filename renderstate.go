package vtscreen

import "image/color"

// RenderRow is one row of a [RenderState] snapshot: raw cell data plus
// any graphemes resolved out of the owning page's side table, copied
// so the renderer can read it without holding the terminal lock.
type RenderRow struct {
	Cells      []Cell
	Styles     []Style     // resolved per-cell, parallel to Cells
	Hyperlinks []Hyperlink // resolved per-cell, parallel to Cells; zero value means no link
	Graphemes  map[int][]rune
}

// RenderCursor is the snapshot's cursor position in both coordinate
// systems the renderer cares about.
type RenderCursor struct {
	ActiveX, ActiveY     int
	ViewportX, ViewportY int
	InViewport           bool
	WideTail             bool
	Visible              bool
	Style                CursorStyle
}

// RenderState is a renderer-facing snapshot of the active screen's
// viewport, rebuilt incrementally: a full rebuild when anything
// screen/terminal-wide changed, otherwise only the rows whose page or
// row dirty bit is set (spec.md §4.6).
type RenderState struct {
	Rows       []RenderRow
	Cursor     RenderCursor
	Foreground color.RGBA
	Background color.RGBA
	CursorColor *color.RGBA
	Palette    [256]color.RGBA

	lastScreenKey   ScreenKey
	lastViewportTop Point
	haveLast        bool
}

// NewRenderState returns an empty snapshot ready for its first Update.
func NewRenderState() *RenderState {
	return &RenderState{}
}

// Update rebuilds the snapshot from term's active screen, then clears
// both the terminal's and the screen's dirty bitsets (spec.md §8:
// "after update(), both dirty bitsets are zero").
func (rs *RenderState) Update(term *Terminal) {
	term.mu.Lock()
	defer term.mu.Unlock()

	screen := term.screens.Active()
	key := term.screens.ActiveKey()

	viewportTop := screen.Pages.PinToScreenPoint(screen.Pages.TopLeft(SpaceViewport))

	mustRedraw := !rs.haveLast ||
		key != rs.lastScreenKey ||
		term.dirty != 0 ||
		screen.Dirty != 0 ||
		len(rs.Rows) != screen.Pages.Rows() ||
		viewportTop != rs.lastViewportTop

	if len(rs.Rows) != screen.Pages.Rows() {
		rs.Rows = make([]RenderRow, screen.Pages.Rows())
	}

	// Rows are addressed in viewport space, not active space, so a
	// scrolled-up viewport renders scrollback content instead of always
	// pinning to the bottom-most active rows (spec.md §4.6).
	for y := 0; y < screen.Pages.Rows(); y++ {
		p, ok := screen.Pages.Pin(SpaceViewport, 0, y)
		if !ok {
			continue
		}
		page := p.Page()
		if !mustRedraw && !page.Dirty() {
			continue
		}
		rs.rebuildRow(y, page, p.Y)
	}

	rs.updateCursor(screen)
	rs.updateColors(term)
	rs.updatePaletteCopy(term)

	term.dirty = 0
	screen.Dirty = 0
	for n := screen.Pages.head; n != nil; n = n.next {
		n.page.ClearDirty()
	}

	rs.lastScreenKey = key
	rs.lastViewportTop = viewportTop
	rs.haveLast = true
}

func (rs *RenderState) updatePaletteCopy(term *Terminal) {
	for i := 0; i < 256; i++ {
		rs.Palette[i] = term.palette.Current(uint8(i))
	}
}

// rebuildRow copies row y of page (page-local row index rowY) into the
// snapshot, doing a raw cell copy unless the row references interning
// arenas, per spec.md §4.6.
func (rs *RenderState) rebuildRow(y int, page *Page, rowY int) {
	row := page.Row(rowY)
	rr := &rs.Rows[y]
	if cap(rr.Cells) < len(row.Cells) {
		rr.Cells = make([]Cell, len(row.Cells))
	}
	rr.Cells = rr.Cells[:len(row.Cells)]
	copy(rr.Cells, row.Cells)

	if cap(rr.Styles) < len(row.Cells) {
		rr.Styles = make([]Style, len(row.Cells))
	}
	rr.Styles = rr.Styles[:len(row.Cells)]

	if cap(rr.Hyperlinks) < len(row.Cells) {
		rr.Hyperlinks = make([]Hyperlink, len(row.Cells))
	}
	rr.Hyperlinks = rr.Hyperlinks[:len(row.Cells)]

	rr.Graphemes = nil
	if page.ManagedMemory(rowY) {
		rr.Graphemes = make(map[int][]rune)
		for x, c := range row.Cells {
			rr.Styles[x] = page.Styles().Get(c.StyleID)
			rr.Hyperlinks[x] = page.Hyperlinks().Get(c.Hyperlink)
			if c.ContentTag == ContentCodepointGrapheme {
				if marks := page.Graphemes().Get(rowY, x); len(marks) > 0 {
					rr.Graphemes[x] = append([]rune(nil), marks...)
				}
			}
		}
	} else {
		for x, c := range row.Cells {
			rr.Styles[x] = page.Styles().Get(c.StyleID)
			rr.Hyperlinks[x] = Hyperlink{}
		}
	}
}

func (rs *RenderState) updateCursor(screen *Screen) {
	rs.Cursor.ActiveX, rs.Cursor.ActiveY = screen.Cursor.X, screen.Cursor.Y
	rs.Cursor.Visible = screen.Cursor.Visible
	rs.Cursor.Style = screen.Cursor.Style

	viewportTop := screen.Pages.TopLeft(SpaceViewport)
	activeTop := screen.Pages.TopLeft(SpaceActive)
	offset := pinRowDistance(viewportTop, activeTop)
	viewportY := screen.Cursor.Y + offset
	if viewportY < 0 || viewportY >= screen.Pages.Rows() {
		rs.Cursor.InViewport = false
	} else {
		rs.Cursor.InViewport = true
		rs.Cursor.ViewportX = screen.Cursor.X
		rs.Cursor.ViewportY = viewportY
	}

	rs.Cursor.WideTail = false
	if screen.Cursor.X > 0 {
		left := screen.Cursor.Pin
		left.X--
		if left.Cell().Wide == WideWide {
			rs.Cursor.WideTail = true
		}
	}
}

// pinRowDistance counts rows from a to b walking forward (positive if
// a is above b).
func pinRowDistance(a, b Pin) int {
	n := 0
	cur := a
	for cur.page != b.page || cur.Y != b.Y {
		next, ok := cur.down()
		if !ok {
			return 0
		}
		cur = next
		n++
		if n > b.page.page.Rows()*1000 {
			return 0 // safety valve against a malformed chain
		}
	}
	return n
}

func (rs *RenderState) updateColors(term *Terminal) {
	fg := term.foreground.Resolve(DefaultForeground)
	bg := term.background.Resolve(DefaultBackground)
	if term.reverseColors {
		fg, bg = bg, fg
	}
	rs.Foreground = fg
	rs.Background = bg
	if term.cursorColor.Override != nil || term.cursorColor.Default != nil {
		c := term.cursorColor.Resolve(DefaultCursorColor)
		rs.CursorColor = &c
	} else {
		rs.CursorColor = nil
	}
}

// LinkCells returns every (x, y) in the snapshot sharing the hyperlink
// of the cell at viewportPoint, for hover-highlighting the full link
// extent (spec.md §4.6). Rows in one snapshot can come from different
// pages, each with its own page-local [HyperlinkID] numbering, so this
// compares resolved [Hyperlink] values rather than raw ids — two cells
// on different pages can share an id without sharing a link, and two
// cells sharing a link across pages need not share an id.
func (rs *RenderState) LinkCells(viewportPoint Point) []Point {
	if viewportPoint.Y < 0 || viewportPoint.Y >= len(rs.Rows) {
		return nil
	}
	row := rs.Rows[viewportPoint.Y]
	if viewportPoint.X < 0 || viewportPoint.X >= len(row.Hyperlinks) {
		return nil
	}
	target := row.Hyperlinks[viewportPoint.X]
	if target == (Hyperlink{}) {
		return nil
	}
	var out []Point
	for y, r := range rs.Rows {
		for x, link := range r.Hyperlinks {
			if link == target {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}
	return out
}
