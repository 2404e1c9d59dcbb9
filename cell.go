package vtscreen

// ContentTag distinguishes what a [Cell]'s content field holds. Stable
// ordinal values per spec.md §6 (the tag crosses the formatter/render
// boundary).
type ContentTag uint8

const (
	ContentCodepoint         ContentTag = 0
	ContentCodepointGrapheme ContentTag = 1
	ContentBGColorRGB        ContentTag = 2
	ContentBGColorPalette    ContentTag = 3
)

// WideKind classifies a cell's layout role for CJK/emoji double-width
// characters.
type WideKind uint8

const (
	WideNarrow     WideKind = 0
	WideWide       WideKind = 1
	WideSpacerHead WideKind = 2
	WideSpacerTail WideKind = 3
)

// StyleID indexes a page-local [StyleSet]. Zero means "default style".
type StyleID uint32

// HyperlinkID indexes a page-local [HyperlinkSet]. Zero means "no
// hyperlink".
type HyperlinkID uint32

// Cell is one grid position: either a printable code point (possibly with
// trailing combining marks recorded in the page's grapheme map), or a
// background-color-only cell (used by some wide-color erase sequences),
// per spec.md §3.
type Cell struct {
	ContentTag   ContentTag
	CodePoint    rune
	PaletteIndex uint8
	Wide         WideKind
	StyleID      StyleID
	Hyperlink    HyperlinkID
}

// NewCell returns a blank cell: a space code point, default style, no
// hyperlink.
func NewCell() Cell {
	return Cell{ContentTag: ContentCodepoint, CodePoint: ' '}
}

// IsBlank reports whether the cell is a plain space with no style,
// hyperlink, or grapheme extension — the condition the page formatter
// uses to decide whether a cell can be folded into an accumulated blank
// run (spec.md §4.5).
func (c Cell) IsBlank() bool {
	return c.ContentTag == ContentCodepoint && c.CodePoint == ' ' && c.StyleID == 0 && c.Hyperlink == 0
}

// IsWideSpacer reports whether this cell is a layout artifact of a wide
// character in an adjacent cell and should be skipped by formatters.
func (c Cell) IsWideSpacer() bool {
	return c.Wide == WideSpacerHead || c.Wide == WideSpacerTail
}

// HasHyperlink reports whether the cell carries a hyperlink reference.
func (c Cell) HasHyperlink() bool {
	return c.Hyperlink != 0
}
