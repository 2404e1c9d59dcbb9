package vtscreen

// EmitMode selects whether a formatter produces plain text or a
// replayable VT byte stream (spec.md §4.5).
type EmitMode uint8

const (
	EmitPlain EmitMode = 0
	EmitVT    EmitMode = 1
)

// Options are shared across every formatter layer.
type Options struct {
	Emit EmitMode
	// Unwrap joins soft-wrapped rows instead of emitting a line break
	// at the wrap point.
	Unwrap bool
	// Trim is not consulted by [PageFormatter]: trailing blank cells of
	// each row and trailing fully-blank rows are always dropped,
	// whether or not it is set, since blank runs are only ever flushed
	// when followed by non-blank content.
	Trim bool
}

// TrailingState threads blank-run accumulation between chunked
// formatter calls (e.g. across PageListFormatter's per-page chunks),
// so a blank run that starts on one page and ends on the next still
// collapses correctly.
type TrailingState struct {
	Rows  int
	Cells int
}

// PinMap is the optional per-byte reverse index a formatter run can
// build: entry i gives the screen coordinate that produced output
// byte i (spec.md §4.5).
type PinMap struct {
	Pins []Pin
}

func (m *PinMap) append(p Pin) {
	if m != nil {
		m.Pins = append(m.Pins, p)
	}
}

// Len reports how many bytes have been mapped so far.
func (m *PinMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Pins)
}
