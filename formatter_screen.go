package vtscreen

import "strconv"

// ScreenExtras selects which whole-screen VT extras [ScreenFormatter]
// appends after the page content (spec.md §4.5). Meaningless in plain
// mode.
type ScreenExtras uint8

const (
	ExtraCursor    ScreenExtras = 1 << iota
	ExtraStyle
	ExtraHyperlink
	ExtraProtection
	ExtraKittyFlags
	ExtraCharsets
	ExtraAll = ExtraCursor | ExtraStyle | ExtraHyperlink | ExtraProtection | ExtraKittyFlags | ExtraCharsets
)

// ScreenFormatter renders a [Screen]'s active-area content plus,
// optionally, the extra state needed to reconstruct cursor position,
// style, hyperlink, protection mode, kitty keyboard flags, and charset
// designations when the output is replayed.
type ScreenFormatter struct {
	Options Options
	Extras  ScreenExtras
}

// Format renders screen's active area.
func (f *ScreenFormatter) Format(screen *Screen, pins *PinMap) []byte {
	plf := &PageListFormatter{Options: f.Options}
	tl := screen.Pages.TopLeft(SpaceActive)
	br := screen.Pages.BottomRight(SpaceActive)
	out := plf.Format(screen.Pages, tl, br, pins)

	if f.Options.Emit != EmitVT {
		return out
	}

	if f.Extras&ExtraCharsets != 0 {
		out = appendCharsetExtras(out, &screen.Cursor)
	}
	if f.Extras&ExtraStyle != 0 {
		style := screen.Cursor.Pin.Page().Styles().Get(screen.Cursor.StyleID)
		out = append(out, "\x1b[0m"...)
		out = appendSGR(out, style)
	}
	if f.Extras&ExtraHyperlink != 0 && screen.Cursor.Hyperlink != 0 {
		link := screen.Cursor.Pin.Page().Hyperlinks().Get(screen.Cursor.Hyperlink)
		out = append(out, "\x1b]8;"...)
		if link.ID != "" {
			out = append(out, "id="+link.ID...)
		}
		out = append(out, ';')
		out = append(out, link.URI...)
		out = append(out, "\x1b\\"...)
	}
	if f.Extras&ExtraProtection != 0 && screen.Cursor.Protected {
		out = append(out, "\x1b[1\"q"...)
	}
	if f.Extras&ExtraKittyFlags != 0 {
		if flags := screen.Cursor.CurrentKittyFlags(); flags != 0 {
			out = append(out, "\x1b[="+strconv.Itoa(int(flags))+";1u"...)
		}
	}
	if f.Extras&ExtraCursor != 0 {
		out = append(out, "\x1b["+strconv.Itoa(screen.Cursor.Y+1)+";"+strconv.Itoa(screen.Cursor.X+1)+"H"...)
	}
	return out
}

var charsetDesignator = map[Charset]byte{
	CharsetASCII:      'B',
	CharsetBritish:    'A',
	CharsetDECSpecial: '0',
	CharsetUTF8:       'B', // no classic VT designator for UTF-8; ASCII is the closest replay-safe choice
}

var charsetSlotIntermediate = map[CharsetSlot]byte{
	CharsetG0: '(',
	CharsetG1: ')',
	CharsetG2: '*',
	CharsetG3: '+',
}

func appendCharsetExtras(out []byte, c *Cursor) []byte {
	for slot := CharsetG0; slot <= CharsetG3; slot++ {
		out = append(out, 0x1b, charsetSlotIntermediate[slot], charsetDesignator[c.Charsets[slot]])
	}
	switch c.GL {
	case CharsetG0:
		// default invocation, no sequence needed
	case CharsetG1:
		out = append(out, 0x0E) // SO
	case CharsetG2:
		out = append(out, 0x1b, 'n') // LS2
	case CharsetG3:
		out = append(out, 0x1b, 'o') // LS3
	}
	switch c.GR {
	case CharsetG1:
		out = append(out, 0x1b, '~') // LS1R
	case CharsetG2:
		out = append(out, 0x1b, '}') // LS2R
	case CharsetG3:
		out = append(out, 0x1b, '|') // LS3R
	}
	return out
}
