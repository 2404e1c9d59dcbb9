// Package vtscreen implements the in-memory core of a VT-compatible
// terminal emulator: paged screen storage, an OSC (Operating System
// Command) parser, screen-to-byte-stream formatters, a render-update
// diff pipeline, and a background search engine.
//
// # Architecture
//
// Content lives in [Page]s, fixed-capacity grids of [Cell]s linked into a
// [PageList]. A [Pin] addresses one cell inside that list and stays valid
// across edits when tracked. A [Screen] owns one PageList plus cursor,
// charset and selection state; a [ScreenSet] owns a primary screen and a
// lazily-created alternate screen. A [Terminal] owns a ScreenSet plus the
// state shared across screens: palette, modes, scrolling region, tabstops.
//
//	term := vtscreen.NewTerminal(24, 80)
//	scr := term.ActiveScreen()
//	scr.Print('H', vtscreen.WideNarrow, vtscreen.Style{})
//	scr.Print('i', vtscreen.WideNarrow, vtscreen.Style{})
//
// # OSC parsing
//
// [Parser] consumes one byte at a time and recognizes the OSC commands
// listed in the package's design notes (window title, clipboard, palette,
// hyperlinks, semantic prompts, ConEmu progress, the kitty color protocol,
// ...), bounded by a 2 KiB stack buffer unless heap escalation is enabled.
//
//	p := vtscreen.NewParser(true)
//	for _, b := range []byte("8;id=foo;http://example.com") {
//	    p.WriteByte(b)
//	}
//	cmd := p.End(0x1b)
//
// # Formatting
//
// [TerminalFormatter], [ScreenFormatter], [PageListFormatter] and
// [PageFormatter] serialize page content as plain text or as a replayable
// VT byte stream, optionally producing a [PinMap] mapping every emitted
// byte back to its originating cell.
//
// # Rendering and search
//
// [RenderState] copies only dirty rows from the active screen on each
// [RenderState.Update] call. [Searcher] runs on its own goroutine,
// maintaining per-screen match sets fed under the caller's mutex without
// blocking the ingest path.
//
// The external VT byte-stream parser (CSI/ESC/C0 dispatch) that drives a
// Screen's mutation API, the pixel renderer that consumes RenderState, and
// the surrounding application/process model are intentionally outside this
// package's scope; they are stable counterpart contracts this package is
// built to be driven by and to feed.
package vtscreen
