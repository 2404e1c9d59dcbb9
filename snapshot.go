package vtscreen

import (
	"fmt"
	"image/color"
	"strings"
)

// SnapshotDetail controls how much per-cell detail [RenderState.Snapshot]
// includes, matching the teacher's text/styled/full tiers.
type SnapshotDetail string

const (
	// SnapshotDetailText returns plain line text only.
	SnapshotDetailText SnapshotDetail = "text"
	// SnapshotDetailStyled returns text plus per-line style runs.
	SnapshotDetailStyled SnapshotDetail = "styled"
	// SnapshotDetailFull returns one entry per cell with full attributes.
	SnapshotDetailFull SnapshotDetail = "full"
)

// Snapshot is a JSON-friendly capture of a [RenderState], the shape the
// renderer collaborator (out of scope per spec.md §1) consumes instead
// of reaching into Screen/Page internals directly.
type Snapshot struct {
	Size   SnapshotSize   `json:"size"`
	Cursor SnapshotCursor `json:"cursor"`
	Lines  []SnapshotLine `json:"lines"`
}

// SnapshotSize holds the snapshot's viewport dimensions.
type SnapshotSize struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// SnapshotCursor holds cursor state in viewport coordinates. Row/Col
// are -1 when the cursor has scrolled out of the current viewport.
type SnapshotCursor struct {
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Visible bool   `json:"visible"`
	Style   string `json:"style"`
}

// SnapshotLine is one row of the snapshot.
type SnapshotLine struct {
	Text     string            `json:"text"`
	Segments []SnapshotSegment `json:"segments,omitempty"`
	Cells    []SnapshotCell    `json:"cells,omitempty"`
}

// SnapshotSegment is a run of cells sharing the same resolved style,
// color, and hyperlink.
type SnapshotSegment struct {
	Text      string        `json:"text"`
	Fg        string        `json:"fg,omitempty"`
	Bg        string        `json:"bg,omitempty"`
	Attrs     SnapshotAttrs `json:"attrs,omitempty"`
	Hyperlink *SnapshotLink `json:"hyperlink,omitempty"`
}

// SnapshotCell is one cell with full resolved attributes.
type SnapshotCell struct {
	Char       string        `json:"char"`
	Fg         string        `json:"fg"`
	Bg         string        `json:"bg"`
	Attrs      SnapshotAttrs `json:"attrs,omitempty"`
	Hyperlink  *SnapshotLink `json:"hyperlink,omitempty"`
	Wide       bool          `json:"wide,omitempty"`
	WideSpacer bool          `json:"wide_spacer,omitempty"`
}

// SnapshotAttrs mirrors [StyleFlags] as plain booleans for JSON
// consumers that would rather not decode a bitmask.
type SnapshotAttrs struct {
	Bold          bool `json:"bold,omitempty"`
	Dim           bool `json:"dim,omitempty"`
	Italic        bool `json:"italic,omitempty"`
	Underline     bool `json:"underline,omitempty"`
	Blink         bool `json:"blink,omitempty"`
	Reverse       bool `json:"reverse,omitempty"`
	Hidden        bool `json:"hidden,omitempty"`
	Strikethrough bool `json:"strikethrough,omitempty"`
	Overline      bool `json:"overline,omitempty"`
}

// SnapshotLink is an OSC 8 hyperlink's id and URI.
type SnapshotLink struct {
	ID  string `json:"id,omitempty"`
	URI string `json:"uri"`
}

// Snapshot builds a JSON-friendly capture of rs's current content at
// the requested detail level. Call after [RenderState.Update] so the
// snapshot reflects the latest rebuild.
func (rs *RenderState) Snapshot(detail SnapshotDetail) *Snapshot {
	cols := 0
	if len(rs.Rows) > 0 {
		cols = len(rs.Rows[0].Cells)
	}

	row, col := -1, -1
	if rs.Cursor.InViewport {
		row, col = rs.Cursor.ViewportY, rs.Cursor.ViewportX
	}

	snap := &Snapshot{
		Size: SnapshotSize{Rows: len(rs.Rows), Cols: cols},
		Cursor: SnapshotCursor{
			Row:     row,
			Col:     col,
			Visible: rs.Cursor.Visible,
			Style:   cursorStyleToString(rs.Cursor.Style),
		},
		Lines: make([]SnapshotLine, len(rs.Rows)),
	}

	for y, rr := range rs.Rows {
		snap.Lines[y] = rs.snapshotLine(rr, detail)
	}
	return snap
}

func (rs *RenderState) snapshotLine(rr RenderRow, detail SnapshotDetail) SnapshotLine {
	line := SnapshotLine{Text: rowText(rr)}
	switch detail {
	case SnapshotDetailStyled:
		line.Segments = rs.lineToSegments(rr)
	case SnapshotDetailFull:
		line.Cells = rs.lineToCells(rr)
	}
	return line
}

// rowText renders a row's visible text, skipping wide-character spacer
// cells and appending any grapheme extensions (spec.md §4.5's "skip
// spacer_head/spacer_tail" rule, reused here for plain-text output).
func rowText(rr RenderRow) string {
	var b strings.Builder
	for x, c := range rr.Cells {
		if c.IsWideSpacer() {
			continue
		}
		switch c.ContentTag {
		case ContentCodepoint, ContentCodepointGrapheme:
			b.WriteRune(c.CodePoint)
			for _, g := range rr.Graphemes[x] {
				b.WriteRune(g)
			}
		default:
			b.WriteRune(' ')
		}
	}
	return b.String()
}

// lineToSegments folds a row into runs of cells sharing identical
// resolved color/attrs/hyperlink, the teacher's snapshot.go
// lineToSegments generalized to this module's [Style]/[Color] types.
func (rs *RenderState) lineToSegments(rr RenderRow) []SnapshotSegment {
	var segments []SnapshotSegment
	var current *SnapshotSegment
	var text strings.Builder

	flush := func() {
		if current != nil && text.Len() > 0 {
			current.Text = text.String()
			segments = append(segments, *current)
		}
		text.Reset()
	}

	for x, c := range rr.Cells {
		if c.IsWideSpacer() {
			continue
		}
		fg := colorToHex(rr.Styles[x].Foreground, rs.Palette)
		bg := colorToHex(rr.Styles[x].Background, rs.Palette)
		attrs := styleAttrsToSnapshot(rr.Styles[x].Flags)
		link := hyperlinkToSnapshot(rr.Hyperlinks[x])

		if current == nil || !segmentMatches(current, fg, bg, attrs, link) {
			flush()
			current = &SnapshotSegment{Fg: fg, Bg: bg, Attrs: attrs, Hyperlink: link}
		}
		text.WriteRune(cellChar(c))
		for _, g := range rr.Graphemes[x] {
			text.WriteRune(g)
		}
	}
	flush()
	return segments
}

// lineToCells expands a row into one entry per column, wide-character
// spacer cells included (flagged WideSpacer), for callers that want
// full per-cell detail instead of style runs.
func (rs *RenderState) lineToCells(rr RenderRow) []SnapshotCell {
	cells := make([]SnapshotCell, 0, len(rr.Cells))
	for x, c := range rr.Cells {
		ch := string(cellChar(c))
		for _, g := range rr.Graphemes[x] {
			ch += string(g)
		}
		cells = append(cells, SnapshotCell{
			Char:       ch,
			Fg:         colorToHex(rr.Styles[x].Foreground, rs.Palette),
			Bg:         colorToHex(rr.Styles[x].Background, rs.Palette),
			Attrs:      styleAttrsToSnapshot(rr.Styles[x].Flags),
			Hyperlink:  hyperlinkToSnapshot(rr.Hyperlinks[x]),
			Wide:       c.Wide == WideWide,
			WideSpacer: c.IsWideSpacer(),
		})
	}
	return cells
}

// cellChar returns the rune a cell's content tag resolves to for
// text/cell output; background-color-only cells print as a space.
func cellChar(c Cell) rune {
	switch c.ContentTag {
	case ContentCodepoint, ContentCodepointGrapheme:
		return c.CodePoint
	default:
		return ' '
	}
}

// segmentMatches reports whether seg's already-accumulated style still
// applies to a cell resolving to fg/bg/attrs/link.
func segmentMatches(seg *SnapshotSegment, fg, bg string, attrs SnapshotAttrs, link *SnapshotLink) bool {
	if seg.Fg != fg || seg.Bg != bg || seg.Attrs != attrs {
		return false
	}
	if seg.Hyperlink == nil || link == nil {
		return seg.Hyperlink == link
	}
	return *seg.Hyperlink == *link
}

// colorToHex resolves c against palette into a "#rrggbb" string, or ""
// for [ColorDefault] (meaning "let the renderer pick its own default",
// the same convention the teacher's colorToHex uses for a nil color).
func colorToHex(c Color, palette [256]color.RGBA) string {
	if c.Kind == ColorDefault {
		return ""
	}
	rgba := c.RGB
	if c.Kind == ColorPalette {
		rgba = palette[c.Palette]
	}
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

// styleAttrsToSnapshot extracts the boolean SGR attributes out of a
// [StyleFlags] bitmask, merging every underline variant into one
// boolean the way the teacher's cellAttrsToSnapshot does.
func styleAttrsToSnapshot(f StyleFlags) SnapshotAttrs {
	return SnapshotAttrs{
		Bold:   f.Has(StyleBold),
		Dim:    f.Has(StyleFaint),
		Italic: f.Has(StyleItalic),
		Underline: f.Has(StyleUnderline) || f.Has(StyleDoubleUnderline) ||
			f.Has(StyleCurlyUnderline) || f.Has(StyleDottedUnderline) || f.Has(StyleDashedUnderline),
		Blink:         f.Has(StyleBlink),
		Reverse:       f.Has(StyleInverse),
		Hidden:        f.Has(StyleInvisible),
		Strikethrough: f.Has(StyleStrikethrough),
		Overline:      f.Has(StyleOverline),
	}
}

// hyperlinkToSnapshot returns nil for the zero (no-link) value, else
// the link's id/URI.
func hyperlinkToSnapshot(h Hyperlink) *SnapshotLink {
	if h == (Hyperlink{}) {
		return nil
	}
	return &SnapshotLink{ID: h.ID, URI: h.URI}
}

// cursorStyleToString renders a [CursorStyle] as the shape string a
// JSON consumer cares about, folding the blink variants together the
// way the teacher's cursorStyleToString does.
func cursorStyleToString(style CursorStyle) string {
	switch style {
	case CursorBlock, CursorBlockBlink:
		return "block"
	case CursorUnderline, CursorUnderlineBlink:
		return "underline"
	case CursorBar, CursorBarBlink:
		return "bar"
	default:
		return "block"
	}
}
