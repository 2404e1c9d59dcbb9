package vtscreen

// Direction selects iteration order across a [PageList].
type Direction uint8

const (
	DirRightDown Direction = 0
	DirLeftUp    Direction = 1
)

// PointSpace selects which coordinate system a [Point] or [Pin] lookup
// is expressed in.
type PointSpace uint8

const (
	// SpaceScreen addresses rows from the very top of the list,
	// including all scrollback.
	SpaceScreen PointSpace = 0
	// SpaceViewport addresses rows relative to the current scroll
	// position.
	SpaceViewport PointSpace = 1
	// SpaceActive addresses rows relative to the bottom-most active
	// screen area, ignoring scrollback entirely.
	SpaceActive PointSpace = 2
)

// Point is a plain (not yet resolved) row/column coordinate in one of
// the [PointSpace] coordinate systems.
type Point struct {
	X, Y int
}

// PageChunk is a page-clipped slice of a larger pin range, the unit
// [PageList.PageChunks] and the formatter's page-by-page composition
// operate on.
type PageChunk struct {
	Page         *Page
	StartY, EndY int // [StartY, EndY) within Page
	node         *pageNode
}

// PageList is a doubly-linked chain of fixed-capacity [Page]s
// representing one screen's full scrollback plus its active area.
// The active area is always the bottom-most activeRows rows of the
// chain; everything above it is scrollback.
type PageList struct {
	head, tail     *pageNode
	cols           int
	pageCapacity   int
	activeRows     int
	totalRows      int
	viewportOffset int // rows scrolled up from the bottom, 0 = pinned to active area
	maxScrollback  int
}

// NewPageList returns a list with one page holding activeRows blank
// rows — the minimal state for a freshly initialized screen.
func NewPageList(activeRows, cols, pageCapacity, maxScrollback int) *PageList {
	if pageCapacity < activeRows {
		pageCapacity = activeRows
	}
	node := &pageNode{page: NewPage(activeRows, cols), tracked: make(map[*Pin]struct{})}
	return &PageList{
		head: node, tail: node,
		cols: cols, pageCapacity: pageCapacity,
		activeRows: activeRows, totalRows: activeRows,
		maxScrollback: maxScrollback,
	}
}

// Cols reports the fixed column width shared by every page.
func (pl *PageList) Cols() int { return pl.cols }

// Rows reports the active-area row count (the visible screen height).
func (pl *PageList) Rows() int { return pl.activeRows }

// TotalRows reports rows across the whole chain, scrollback included.
func (pl *PageList) TotalRows() int { return pl.totalRows }

// ScrollbackRows reports how many rows of history exist above the
// active area.
func (pl *PageList) ScrollbackRows() int { return pl.totalRows - pl.activeRows }

// activeTopPin returns a Pin at the top-left of the active area,
// walking back activeRows-1 rows from the tail's last row.
func (pl *PageList) activeTopPin() Pin {
	p := Pin{page: pl.tail, Y: pl.tail.page.Rows() - 1, X: 0}
	remaining := pl.activeRows - 1
	for remaining > 0 {
		up, ok := p.up()
		if !ok {
			break
		}
		p = up
		remaining--
	}
	return p
}

// TopLeft returns the top-left pin of the requested coordinate space.
func (pl *PageList) TopLeft(space PointSpace) Pin {
	switch space {
	case SpaceScreen:
		return Pin{page: pl.head, Y: 0, X: 0}
	case SpaceViewport:
		return pl.viewportTop()
	default:
		return pl.activeTopPin()
	}
}

// BottomRight returns the bottom-right pin of the requested coordinate
// space.
func (pl *PageList) BottomRight(space PointSpace) Pin {
	last := Pin{page: pl.tail, Y: pl.tail.page.Rows() - 1, X: pl.cols - 1}
	switch space {
	case SpaceScreen, SpaceActive:
		return last
	default:
		p := pl.viewportTop()
		for i := 1; i < pl.activeRows; i++ {
			next, ok := p.down()
			if !ok {
				break
			}
			p = next
		}
		p.X = pl.cols - 1
		return p
	}
}

// PinToScreenPoint converts a pin into its absolute (scrollback-
// inclusive) screen-space [Point], by counting rows in every page
// before the pin's own node. Used where a caller needs a coordinate
// that outlives the pin's page (e.g. recording a search match), since
// a [Point] carries no page pointer.
func (pl *PageList) PinToScreenPoint(p Pin) Point {
	y := p.Y
	for n := p.page.prev; n != nil; n = n.prev {
		y += n.page.Rows()
	}
	return Point{X: p.X, Y: y}
}

// viewportTop returns the pin at the top of the currently scrolled
// viewport, derived from viewportOffset rows above the active area.
func (pl *PageList) viewportTop() Pin {
	p := pl.activeTopPin()
	remaining := pl.viewportOffset
	for remaining > 0 {
		up, ok := p.up()
		if !ok {
			break
		}
		p = up
		remaining--
	}
	return p
}

// ScrollViewport moves the viewport by delta rows; negative scrolls up
// into scrollback, positive scrolls back down toward the active area.
// Clamped to [0, ScrollbackRows()].
func (pl *PageList) ScrollViewport(delta int) {
	pl.viewportOffset -= delta
	if pl.viewportOffset < 0 {
		pl.viewportOffset = 0
	}
	if max := pl.ScrollbackRows(); pl.viewportOffset > max {
		pl.viewportOffset = max
	}
}

// Pin resolves (x, y) in the given space to a concrete [Pin]. Reports
// ok=false if the coordinate is out of range.
func (pl *PageList) Pin(space PointSpace, x, y int) (Pin, bool) {
	if x < 0 || x >= pl.cols || y < 0 {
		return Pin{}, false
	}
	p := pl.TopLeft(space)
	for i := 0; i < y; i++ {
		next, ok := p.down()
		if !ok {
			return Pin{}, false
		}
		p = next
	}
	p.X = x
	return p, true
}

// Rows returns every row pin from start to end (inclusive of start,
// exclusive of end) in the requested direction. end defaults to the
// far bound of the list in that direction when nil.
func (pl *PageList) Rows(dir Direction, start Pin, end *Pin) []Pin {
	var out []Pin
	cur := start
	for {
		if end != nil && cur.page == end.page && cur.Y == end.Y {
			break
		}
		rowStart := cur
		rowStart.X = 0
		out = append(out, rowStart)
		var ok bool
		if dir == DirRightDown {
			cur, ok = cur.down()
		} else {
			cur, ok = cur.up()
		}
		if !ok {
			break
		}
	}
	return out
}

// PageChunks returns the page-clipped row ranges spanning [topLeft,
// bottomRight], the unit the formatter composes over chunk by chunk.
func (pl *PageList) PageChunks(topLeft, bottomRight Pin) []PageChunk {
	var out []PageChunk
	node := topLeft.page
	startY := topLeft.Y
	for node != nil {
		endY := node.page.Rows()
		if node == bottomRight.page {
			endY = bottomRight.Y + 1
		}
		out = append(out, PageChunk{Page: node.page, StartY: startY, EndY: endY, node: node})
		if node == bottomRight.page {
			break
		}
		node = node.next
		startY = 0
	}
	return out
}

// TrackPin registers p so it is kept valid (or invalidated with
// Pin.page.freed) across page growth/trim. Returns a pointer the caller
// must pass to [PageList.UntrackPin] when done.
func (pl *PageList) TrackPin(p Pin) *Pin {
	tracked := p
	p.page.tracked[&tracked] = struct{}{}
	return &tracked
}

// UntrackPin removes a pin previously registered with TrackPin.
func (pl *PageList) UntrackPin(p *Pin) {
	if p.page != nil {
		delete(p.page.tracked, p)
	}
}

// GrowScrollback prepends a new full-capacity blank page node above the
// head, adding a page of scrollback, then trims scrollback. Screen's
// scroll path does not use it ([PageList.AppendActiveRow] grows the
// list there). Returns the new node's page for callers that need to
// move rows into it.
func (pl *PageList) GrowScrollback() *Page {
	node := &pageNode{page: NewPage(pl.pageCapacity, pl.cols), tracked: make(map[*Pin]struct{}), next: pl.head}
	pl.head.prev = node
	pl.head = node
	pl.totalRows += pl.pageCapacity
	pl.trimScrollback()
	return node.page
}

// trimScrollback evicts the oldest page nodes once scrollback exceeds
// maxScrollback rows, invalidating any pins still tracked against them.
// Eviction is a whole page at a time, and only a head page that lies
// entirely in scrollback is evicted. A maxScrollback of 0 or less sets
// no limit here.
func (pl *PageList) trimScrollback() {
	if pl.maxScrollback <= 0 {
		return
	}
	for pl.ScrollbackRows() > pl.maxScrollback && pl.head != pl.tail && pl.ScrollbackRows() >= pl.head.page.Rows() {
		evict := pl.head
		pl.head = evict.next
		if pl.head != nil {
			pl.head.prev = nil
		}
		evict.freed = true
		for p := range evict.tracked {
			p.page = nil
		}
		pl.totalRows -= evict.page.Rows()
		if pl.viewportOffset > pl.ScrollbackRows() {
			pl.viewportOffset = pl.ScrollbackRows()
		}
	}
}

// AppendActiveRow pushes one fresh blank row onto the tail page,
// growing a new tail page when the current one is at capacity, then
// trims scrollback to maxScrollback. Used by Screen's scroll-up
// implementation (spec.md §4.2).
func (pl *PageList) AppendActiveRow() *Row {
	if pl.tail.page.Rows() >= pl.pageCapacity {
		node := &pageNode{page: NewPage(0, pl.cols), tracked: make(map[*Pin]struct{}), prev: pl.tail}
		pl.tail.next = node
		pl.tail = node
	}
	pl.tail.page.rows = append(pl.tail.page.rows, NewRow(pl.cols))
	pl.totalRows++
	pl.trimScrollback()
	return &pl.tail.page.rows[len(pl.tail.page.rows)-1]
}
