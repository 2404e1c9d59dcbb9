package vtscreen

import "strconv"

// TerminalExtras selects which whole-terminal VT extras
// [TerminalFormatter] appends (spec.md §4.5).
type TerminalExtras uint8

const (
	TermExtraPalette TerminalExtras = 1 << iota
	TermExtraModes
	TermExtraScrollingRegion
	TermExtraTabstops
	TermExtraModifyOtherKeys
	TermExtraPWD
	TermExtraAll = TermExtraPalette | TermExtraModes | TermExtraScrollingRegion | TermExtraTabstops | TermExtraModifyOtherKeys | TermExtraPWD
)

// TerminalFormatter renders a [Terminal]'s active screen plus,
// optionally, the whole-terminal VT extras needed to reproduce
// palette, modes, scrolling region, tabstops, modify-other-keys, and
// pwd when replayed. Every mode entry is replayed as a DEC private mode
// (CSI ? n h/l); the mode map does not record whether a number was set
// as an ANSI mode.
type TerminalFormatter struct {
	Options     Options
	Extras      TerminalExtras
	ScreenExtra ScreenExtras
}

// Format renders term's active screen.
func (f *TerminalFormatter) Format(term *Terminal, pins *PinMap) []byte {
	term.mu.RLock()
	defer term.mu.RUnlock()

	sf := &ScreenFormatter{Options: f.Options, Extras: f.ScreenExtra}
	out := sf.Format(term.screens.Active(), pins)

	if f.Options.Emit != EmitVT {
		return out
	}

	if f.Extras&TermExtraPalette != 0 {
		for i := 0; i < 256; i++ {
			c := term.palette.Current(uint8(i))
			out = append(out, "\x1b]4;"+strconv.Itoa(i)+";rgb:"+hexByte(c.R)+"/"+hexByte(c.G)+"/"+hexByte(c.B)+"\x1b\\"...)
		}
	}
	if f.Extras&TermExtraModes != 0 {
		for n, on := range term.modes {
			letter := byte('l')
			if on {
				letter = 'h'
			}
			out = append(out, "\x1b[?"+strconv.Itoa(n)+string(letter)...)
		}
	}
	if f.Extras&TermExtraScrollingRegion != 0 {
		r := term.region
		if r.Bottom > r.Top {
			out = append(out, "\x1b["+strconv.Itoa(r.Top+1)+";"+strconv.Itoa(r.Bottom+1)+"r"...)
		}
		if r.Right > r.Left {
			out = append(out, "\x1b["+strconv.Itoa(r.Left+1)+";"+strconv.Itoa(r.Right+1)+"s"...)
		}
	}
	if f.Extras&TermExtraTabstops != 0 {
		out = append(out, "\x1b[3g"...)
		for col, set := range term.tabstops {
			if set {
				out = append(out, "\x1b["+strconv.Itoa(col+1)+"G\x1bH"...)
			}
		}
	}
	if f.Extras&TermExtraModifyOtherKeys != 0 && term.modifyOtherKeys {
		out = append(out, "\x1b[>4;2m"...)
	}
	if f.Extras&TermExtraPWD != 0 && term.pwd != "" {
		out = append(out, "\x1b]7;"+term.pwd+"\x1b\\"...)
	}
	return out
}

const hexDigits = "0123456789abcdef"

func hexByte(b uint8) string {
	return string([]byte{hexDigits[b>>4], hexDigits[b&0xF]})
}
