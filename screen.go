package vtscreen

// ScreenDirty records screen-level events a renderer must notice beyond
// plain cell writes — the bits a [RenderState] update checks alongside
// page/row dirty flags (spec.md §3, §4.6).
type ScreenDirty uint16

const (
	DirtyCursor ScreenDirty = 1 << iota
	DirtySelection
	DirtyCharset
	DirtyKittyFlags
	DirtyScroll
)

func (d ScreenDirty) Has(bit ScreenDirty) bool   { return d&bit != 0 }
func (d ScreenDirty) Set(bit ScreenDirty) ScreenDirty   { return d | bit }
func (d ScreenDirty) Clear(bit ScreenDirty) ScreenDirty { return d &^ bit }

// Selection is an optional text selection spanning two pins.
type Selection struct {
	Anchor      Pin
	Head        Pin
	Rectangular bool
}

// Screen owns one page list plus the cursor, charset, kitty-keyboard,
// and selection state that belongs to a single primary-or-alternate
// buffer (spec.md §3).
type Screen struct {
	Pages     *PageList
	Cursor    Cursor
	Selection *Selection
	Dirty     ScreenDirty

	promptMarks []promptMark
}

// NewScreen allocates a screen with the given active dimensions and
// scrollback capacity (0 disables scrollback, appropriate for the
// alternate screen).
func NewScreen(rows, cols, pageCapacity, maxScrollback int) *Screen {
	s := &Screen{
		Pages:  NewPageList(rows, cols, pageCapacity, maxScrollback),
		Cursor: NewCursor(),
	}
	s.Cursor.Pin, _ = s.Pages.Pin(SpaceActive, 0, 0)
	return s
}

func (s *Screen) markDirty(bit ScreenDirty) {
	s.Dirty = s.Dirty.Set(bit)
}

// currentStyleID interns st on the cursor's current page and returns
// its ID, so callers don't need to track interning themselves.
func (s *Screen) currentStyleID(st Style) StyleID {
	return s.Cursor.Pin.Page().Styles().Intern(st)
}

// Print writes r at the cursor position using style and the cursor's
// pending hyperlink, then advances the cursor past the written cells,
// stopping at the last column. Wide characters occupy two cells: the
// base cell plus a spacer_tail.
func (s *Screen) Print(r rune, wide WideKind, style Style) {
	cell := s.Cursor.Pin.Cell()
	s.Cursor.Pin.Page().ReleaseCell(s.Cursor.Pin.Y, s.Cursor.Pin.X)
	*cell = Cell{
		ContentTag: ContentCodepoint,
		CodePoint:  r,
		Wide:       wide,
		StyleID:    s.currentStyleID(style),
		Hyperlink:  s.Cursor.Hyperlink,
	}
	s.Cursor.Pin.Page().MarkRowDirty(s.Cursor.Pin.Y)

	if wide == WideWide {
		if next, ok := s.advanceColumn(); ok {
			tail := next.Cell()
			next.Page().ReleaseCell(next.Y, next.X)
			*tail = Cell{ContentTag: ContentCodepoint, CodePoint: ' ', Wide: WideSpacerTail}
			next.Page().MarkRowDirty(next.Y)
		}
	}
	s.advanceColumn()
}

// advanceColumn moves the cursor pin one column right, reporting
// ok=false if already at the last column (callers handle autowrap
// separately, outside Screen's scope per spec.md §4.2's description of
// cursor movement as a primitive the byte-stream parser composes).
func (s *Screen) advanceColumn() (Pin, bool) {
	if s.Cursor.X+1 >= s.Pages.Cols() {
		return Pin{}, false
	}
	s.Cursor.X++
	s.Cursor.Pin.X = s.Cursor.X
	return s.Cursor.Pin, true
}

// MoveCursor sets the cursor to the active-space coordinate (x, y).
func (s *Screen) MoveCursor(x, y int) bool {
	p, ok := s.Pages.Pin(SpaceActive, x, y)
	if !ok {
		return false
	}
	s.Cursor.Pin = p
	s.Cursor.X, s.Cursor.Y = x, y
	s.markDirty(DirtyCursor)
	return true
}

// SetHyperlink interns link on the cursor's current page and attaches
// it to subsequent Print calls.
func (s *Screen) SetHyperlink(link Hyperlink) {
	s.Cursor.Hyperlink = s.Cursor.Pin.Page().Hyperlinks().Intern(link)
}

// ClearHyperlink detaches the cursor's pending hyperlink.
func (s *Screen) ClearHyperlink() {
	s.Cursor.Hyperlink = 0
}

// ScrollUp moves n rows of [top, bottom] up within the active area,
// pushing rows that scroll off the top of the whole active region into
// scrollback (when top==0 and bottom is the last active row; with a
// maxScrollback of 0 they are discarded instead) and filling vacated
// rows at the bottom with blanks.
func (s *Screen) ScrollUp(top, bottom, n int) {
	for i := 0; i < n; i++ {
		if top == 0 && bottom == s.Pages.Rows()-1 {
			s.scrollActiveTopIntoHistory()
		} else {
			s.shiftRowsUp(top, bottom)
		}
	}
	s.markDirty(DirtyScroll)
}

func (s *Screen) shiftRowsUp(top, bottom int) {
	for y := top; y < bottom; y++ {
		src, _ := s.Pages.Pin(SpaceActive, 0, y+1)
		dst, _ := s.Pages.Pin(SpaceActive, 0, y)
		copyRowCells(dst, src)
	}
	last, _ := s.Pages.Pin(SpaceActive, 0, bottom)
	last.Row().Clear()
}

func (s *Screen) scrollActiveTopIntoHistory() {
	if s.Pages.maxScrollback == 0 {
		s.shiftRowsUp(0, s.Pages.Rows()-1)
		return
	}
	s.Pages.AppendActiveRow()
}

// copyRowCells overwrites dst's row with src's row, releasing dst's
// prior interned references and re-interning src's style/hyperlink
// into dst's page (source and destination may live on different pages,
// so a raw struct copy would leave the copied StyleID/HyperlinkID
// dangling against the wrong page's arena).
func copyRowCells(dst, src Pin) {
	dstRow := dst.Row()
	srcRow := src.Row()
	dstPage := dst.Page()
	srcPage := src.Page()
	for x := range dstRow.Cells {
		dstPage.ReleaseCell(dst.Y, x)
		cell := srcRow.Cells[x]
		if cell.StyleID != 0 {
			cell.StyleID = dstPage.Styles().Intern(srcPage.Styles().Get(cell.StyleID))
		}
		if cell.Hyperlink != 0 {
			cell.Hyperlink = dstPage.Hyperlinks().Intern(srcPage.Hyperlinks().Get(cell.Hyperlink))
		}
		dstRow.Cells[x] = cell
	}
}

// ScrollDown moves n rows of [top, bottom] down, discarding rows pushed
// off the bottom of the region and filling vacated rows at the top with
// blanks. Scrollback is never touched by ScrollDown.
func (s *Screen) ScrollDown(top, bottom, n int) {
	for i := 0; i < n; i++ {
		for y := bottom; y > top; y-- {
			src, _ := s.Pages.Pin(SpaceActive, 0, y-1)
			dst, _ := s.Pages.Pin(SpaceActive, 0, y)
			copyRowCells(dst, src)
		}
		first, _ := s.Pages.Pin(SpaceActive, 0, top)
		first.Row().Clear()
	}
	s.markDirty(DirtyScroll)
}

// InsertLines shifts [y, bottom] down by n within the region, same as
// ScrollDown anchored at y.
func (s *Screen) InsertLines(y, bottom, n int) {
	s.ScrollDown(y, bottom, n)
}

// DeleteLines shifts [y, bottom] up by n within the region, same as
// ScrollUp anchored at y but never touches scrollback.
func (s *Screen) DeleteLines(y, bottom, n int) {
	for i := 0; i < n; i++ {
		s.shiftRowsUp(y, bottom)
	}
	s.markDirty(DirtyScroll)
}

// InsertChars shifts cells [x, rowEnd) right by n within row y,
// discarding cells pushed off the row's right edge.
func (s *Screen) InsertChars(y, x, n int) {
	p, ok := s.Pages.Pin(SpaceActive, 0, y)
	if !ok {
		return
	}
	row := p.Row()
	page := p.Page()
	width := len(row.Cells)
	for i := width - 1; i >= x+n; i-- {
		page.ReleaseCell(p.Y, i)
		row.Cells[i] = row.Cells[i-n]
	}
	for i := x; i < x+n && i < width; i++ {
		page.ReleaseCell(p.Y, i)
		row.Cells[i] = NewCell()
	}
	page.MarkRowDirty(p.Y)
}

// DeleteChars shifts cells (x, rowEnd) left by n within row y, filling
// the vacated tail with blanks.
func (s *Screen) DeleteChars(y, x, n int) {
	p, ok := s.Pages.Pin(SpaceActive, 0, y)
	if !ok {
		return
	}
	row := p.Row()
	page := p.Page()
	width := len(row.Cells)
	for i := x; i < width; i++ {
		page.ReleaseCell(p.Y, i)
		if i+n < width {
			row.Cells[i] = row.Cells[i+n]
		} else {
			row.Cells[i] = NewCell()
		}
	}
	page.MarkRowDirty(p.Y)
}

// ClearRegion blanks every cell in [startY, endY) x [startX, endX).
func (s *Screen) ClearRegion(startY, endY, startX, endX int) {
	for y := startY; y < endY; y++ {
		p, ok := s.Pages.Pin(SpaceActive, 0, y)
		if !ok {
			continue
		}
		row := p.Row()
		page := p.Page()
		for x := startX; x < endX && x < len(row.Cells); x++ {
			page.ReleaseCell(p.Y, x)
			row.Cells[x] = NewCell()
		}
		page.MarkRowDirty(p.Y)
	}
}

// SetCharset designates cs into charset slot.
func (s *Screen) SetCharset(slot CharsetSlot, cs Charset) {
	s.Cursor.Charsets[slot] = cs
	s.markDirty(DirtyCharset)
}

// InvokeGL sets the GL (left, codes 0x20-0x7F) charset slot.
func (s *Screen) InvokeGL(slot CharsetSlot) {
	s.Cursor.GL = slot
	s.markDirty(DirtyCharset)
}

// InvokeGR sets the GR (right, codes 0xA0-0xFF) charset slot.
func (s *Screen) InvokeGR(slot CharsetSlot) {
	s.Cursor.GR = slot
	s.markDirty(DirtyCharset)
}

// SetSelection starts or updates a selection.
func (s *Screen) SetSelection(anchor, head Pin, rectangular bool) {
	s.Selection = &Selection{Anchor: anchor, Head: head, Rectangular: rectangular}
	s.markDirty(DirtySelection)
}

// ScrollViewport moves the scrollback viewport by delta rows (negative
// scrolls up into history, positive scrolls back toward the active
// area) without touching cell content. A [RenderState] update notices
// the new viewport position and redraws from it (spec.md §3's
// "viewport pin changed" redraw trigger, §4.6).
func (s *Screen) ScrollViewport(delta int) {
	s.Pages.ScrollViewport(delta)
	s.markDirty(DirtyScroll)
}

// ClearSelection drops any active selection.
func (s *Screen) ClearSelection() {
	if s.Selection != nil {
		s.Selection = nil
		s.markDirty(DirtySelection)
	}
}
