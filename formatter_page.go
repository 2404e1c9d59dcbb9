package vtscreen

import (
	"strconv"
	"strings"
)

// pagePoint is a page-local coordinate produced by [PageFormatter],
// later promoted to a full [Pin] by [PageListFormatter] once it knows
// which page node the chunk belongs to.
type pagePoint struct {
	X, Y int
}

// PageFormatter renders one page's rows as plain text or a VT byte
// stream (spec.md §4.5). Blank rows and blank cells are accumulated and
// only written once non-blank content is found after them, so trailing
// blanks are dropped without a separate trimming pass, whatever
// `Options.Trim` says.
type PageFormatter struct {
	Options Options
}

// pendingRun buffers blank rows/cells that haven't yet been proven
// non-trailing.
type pendingRun struct {
	sepRows   []int       // row index of each owed "\r\n"
	sepPoints [][2]pagePoint // the (\r point, \n point) pair per owed separator
	spaces    []pagePoint // owed blank-cell spaces, cleared at every hard row boundary
}

// Format renders page rows [startY, endY) with startX applying only to
// the first row and endX only to the last row (middle rows use the
// full page width). trailing, if non-nil, is only honored when
// startX==0 && startY==0 — the continuation case where a previous
// page's unflushed blank run might still turn out not to be trailing.
// pins, if non-nil, receives one pagePoint per output byte.
func (f *PageFormatter) Format(page *Page, startY, endY, startX, endX int, trailing *TrailingState, pins *[]pagePoint) ([]byte, TrailingState) {
	var out []byte
	var run pendingRun
	var lastStyle Style
	styleSet := page.styles

	if startX == 0 && startY == 0 && trailing != nil {
		for i := 0; i < trailing.Rows; i++ {
			run.sepRows = append(run.sepRows, -1)
			run.sepPoints = append(run.sepPoints, [2]pagePoint{{0, 0}, {0, 0}})
		}
		for i := 0; i < trailing.Cells; i++ {
			run.spaces = append(run.spaces, pagePoint{0, 0})
		}
	}

	flush := func() {
		for _, pr := range run.sepPoints {
			out = append(out, '\r', '\n')
			appendPin(pins, pr[0])
			appendPin(pins, pr[1])
		}
		run.sepRows = nil
		run.sepPoints = nil
		for _, p := range run.spaces {
			out = append(out, ' ')
			appendPin(pins, p)
		}
		run.spaces = nil
	}

	for y := startY; y < endY; y++ {
		row := page.Row(y)
		rowStartX, rowEndX := 0, page.Cols()
		if y == startY {
			rowStartX = startX
		}
		if y == endY-1 {
			rowEndX = endX
		}

		for x := rowStartX; x < rowEndX; x++ {
			cell := row.Cells[x]
			if cell.IsWideSpacer() {
				continue
			}
			if cell.IsBlank() {
				run.spaces = append(run.spaces, pagePoint{x, y})
				continue
			}
			flush()
			if f.Options.Emit == EmitVT {
				style := styleSet.Get(cell.StyleID)
				if style != lastStyle {
					before := len(out)
					out = append(out, "\x1b[0m"...)
					out = appendSGR(out, style)
					for i := before; i < len(out); i++ {
						appendPin(pins, pagePoint{x, y})
					}
					lastStyle = style
				}
			}
			before := len(out)
			out = appendRune(out, cell.CodePoint)
			for i := before; i < len(out); i++ {
				appendPin(pins, pagePoint{x, y})
			}
		}

		if y < endY-1 {
			wrapped := row.Flags.Has(RowWrapped)
			if wrapped && f.Options.Unwrap {
				continue // no separator; blank run (if any) carries into next row
			}
			last := pagePoint{page.Cols() - 1, y}
			run.sepPoints = append(run.sepPoints, [2]pagePoint{last, last})
			run.sepRows = append(run.sepRows, y)
			run.spaces = nil // trailing blanks of a finished row are dropped, not carried
		}
	}

	return out, TrailingState{Rows: len(run.sepRows), Cells: len(run.spaces)}
}

func appendPin(pins *[]pagePoint, p pagePoint) {
	if pins != nil {
		*pins = append(*pins, p)
	}
}

func appendRune(out []byte, r rune) []byte {
	var buf [4]byte
	n := encodeRune(buf[:], r)
	return append(out, buf[:n]...)
}

// encodeRune is a tiny UTF-8 encoder kept local so formatter hot paths
// avoid importing unicode/utf8 just for EncodeRune in a loop; behavior
// matches utf8.EncodeRune for valid runes.
func encodeRune(buf []byte, r rune) int {
	switch {
	case r < 0x80:
		buf[0] = byte(r)
		return 1
	case r < 0x800:
		buf[0] = byte(0xC0 | r>>6)
		buf[1] = byte(0x80 | r&0x3F)
		return 2
	case r < 0x10000:
		buf[0] = byte(0xE0 | r>>12)
		buf[1] = byte(0x80 | (r>>6)&0x3F)
		buf[2] = byte(0x80 | r&0x3F)
		return 3
	default:
		buf[0] = byte(0xF0 | r>>18)
		buf[1] = byte(0x80 | (r>>12)&0x3F)
		buf[2] = byte(0x80 | (r>>6)&0x3F)
		buf[3] = byte(0x80 | r&0x3F)
		return 4
	}
}

// appendSGR appends the SGR parameter sequence for style (spec.md
// §4.5: palette colors as 256-color SGR, truecolor only for RGB
// styles).
func appendSGR(out []byte, style Style) []byte {
	var params []string
	if style.Flags.Has(StyleBold) {
		params = append(params, "1")
	}
	if style.Flags.Has(StyleFaint) {
		params = append(params, "2")
	}
	if style.Flags.Has(StyleItalic) {
		params = append(params, "3")
	}
	if style.Flags.Has(StyleUnderline) {
		params = append(params, "4")
	}
	if style.Flags.Has(StyleDoubleUnderline) {
		params = append(params, "4:2")
	}
	if style.Flags.Has(StyleCurlyUnderline) {
		params = append(params, "4:3")
	}
	if style.Flags.Has(StyleDottedUnderline) {
		params = append(params, "4:4")
	}
	if style.Flags.Has(StyleDashedUnderline) {
		params = append(params, "4:5")
	}
	if style.Flags.Has(StyleBlink) {
		params = append(params, "5")
	}
	if style.Flags.Has(StyleInverse) {
		params = append(params, "7")
	}
	if style.Flags.Has(StyleInvisible) {
		params = append(params, "8")
	}
	if style.Flags.Has(StyleStrikethrough) {
		params = append(params, "9")
	}
	if style.Flags.Has(StyleOverline) {
		params = append(params, "53")
	}
	params = append(params, colorSGRParams(style.Foreground, false)...)
	params = append(params, colorSGRParams(style.Background, true)...)
	if len(params) == 0 {
		return out
	}
	out = append(out, "\x1b["...)
	out = append(out, strings.Join(params, ";")...)
	out = append(out, 'm')
	return out
}

func colorSGRParams(c Color, background bool) []string {
	base38 := "38"
	if background {
		base38 = "48"
	}
	switch c.Kind {
	case ColorPalette:
		return []string{base38, "5", strconv.Itoa(int(c.Palette))}
	case ColorRGB:
		return []string{base38, "2", strconv.Itoa(int(c.RGB.R)), strconv.Itoa(int(c.RGB.G)), strconv.Itoa(int(c.RGB.B))}
	default:
		return nil
	}
}
