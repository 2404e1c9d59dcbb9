package vtscreen

import (
	"image/color"
	"sync"
)

// TerminalDirty records terminal-level events a renderer must notice,
// independent of any one screen's dirty bits (spec.md §3).
type TerminalDirty uint16

const (
	DirtyPalette TerminalDirty = 1 << iota
	DirtyModes
	DirtyScrollingRegion
	DirtyTabstops
	DirtyPWD
	DirtyModifyOtherKeys
	DirtyActiveScreen
)

func (d TerminalDirty) Has(bit TerminalDirty) bool   { return d&bit != 0 }
func (d TerminalDirty) Set(bit TerminalDirty) TerminalDirty   { return d | bit }
func (d TerminalDirty) Clear(bit TerminalDirty) TerminalDirty { return d &^ bit }

// ScrollingRegion is the DECSTBM/DECSLRM-restricted scroll area.
type ScrollingRegion struct {
	Top, Bottom int
	Left, Right int
}

// Terminal is the top-level handle: one [ScreenSet] plus the state
// shared across both screens (palette, modes, scrolling region,
// tabstops, pwd, modify-other-keys). Every exported method except the
// dynamic color slot accessors (ForegroundRGB, BackgroundRGB, CursorRGB)
// acquires Terminal's own lock, the same coarse-grained single-mutex
// shape the teacher's Terminal uses.
type Terminal struct {
	mu sync.RWMutex

	screens *ScreenSet
	palette *DynamicPalette
	foreground *DynamicRGB
	background *DynamicRGB
	cursorColor *DynamicRGB

	modes        map[int]bool
	region       ScrollingRegion
	tabstops     []bool
	pwd          string
	modifyOtherKeys bool
	reverseColors bool

	rows, cols    int
	pageCapacity  int
	maxScrollback int

	dirty TerminalDirty
}

// Option configures a [Terminal] at construction time.
type Option func(*Terminal)

// WithPageCapacity overrides the row capacity of each scrollback page
// (default 500).
func WithPageCapacity(n int) Option {
	return func(t *Terminal) { t.pageCapacity = n }
}

// WithMaxScrollback overrides the maximum scrollback row count
// (default 10_000; 0 disables scrollback entirely).
func WithMaxScrollback(n int) Option {
	return func(t *Terminal) { t.maxScrollback = n }
}

// NewTerminal constructs a Terminal with the given active screen
// dimensions.
func NewTerminal(rows, cols int, opts ...Option) *Terminal {
	t := &Terminal{
		rows: rows, cols: cols,
		pageCapacity:  500,
		maxScrollback: 10_000,
		modes:         make(map[int]bool),
		tabstops:      defaultTabstops(cols),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.screens = NewScreenSet(rows, cols, t.pageCapacity, t.maxScrollback)
	t.palette = NewDynamicPalette(DefaultPalette)
	t.foreground = &DynamicRGB{Default: &DefaultForeground}
	t.background = &DynamicRGB{Default: &DefaultBackground}
	t.cursorColor = &DynamicRGB{Default: &DefaultCursorColor}
	return t
}

func defaultTabstops(cols int) []bool {
	stops := make([]bool, cols)
	for i := 0; i < cols; i += 8 {
		stops[i] = true
	}
	return stops
}

// Screens exposes the underlying [ScreenSet] for callers that need to
// address a specific screen directly.
func (t *Terminal) Screens() *ScreenSet {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.screens
}

// ActiveScreen returns the currently active screen.
func (t *Terminal) ActiveScreen() *Screen {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.screens.Active()
}

// SwitchScreen makes key the active screen, lazily allocating the
// alternate on first use.
func (t *Terminal) SwitchScreen(key ScreenKey) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.screens.Get(key); !ok {
		t.screens.GetInit(key, t.rows, t.cols, t.pageCapacity)
	}
	if err := t.screens.SwitchTo(key); err != nil {
		return err
	}
	t.dirty = t.dirty.Set(DirtyActiveScreen)
	return nil
}

// Palette returns the live dynamic palette.
func (t *Terminal) Palette() *DynamicPalette {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.palette
}

// SetPaletteColor applies an OSC 4 set to palette index i.
func (t *Terminal) SetPaletteColor(i uint8, c color.RGBA) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.palette.Set(i, c)
	t.dirty = t.dirty.Set(DirtyPalette)
}

// ResetPaletteColor reverts index i to its original value (OSC 104
// with an index).
func (t *Terminal) ResetPaletteColor(i uint8) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.palette.Reset(i)
	t.dirty = t.dirty.Set(DirtyPalette)
}

// ResetAllPaletteColors reverts every palette index (bare OSC 104).
func (t *Terminal) ResetAllPaletteColors() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.palette.ResetAll()
	t.dirty = t.dirty.Set(DirtyPalette)
}

// ForegroundRGB returns the dynamic foreground slot (OSC 10/110).
func (t *Terminal) ForegroundRGB() *DynamicRGB { return t.foreground }

// BackgroundRGB returns the dynamic background slot (OSC 11/111).
func (t *Terminal) BackgroundRGB() *DynamicRGB { return t.background }

// CursorRGB returns the dynamic cursor color slot (OSC 12/112).
func (t *Terminal) CursorRGB() *DynamicRGB { return t.cursorColor }

// SetMode toggles a DEC private or ANSI mode (CSI h/l).
func (t *Terminal) SetMode(n int, on bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.modes[n] = on
	t.dirty = t.dirty.Set(DirtyModes)
}

// Mode reports whether mode n is currently set.
func (t *Terminal) Mode(n int) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.modes[n]
}

// Modes returns a copy of every explicitly-set mode.
func (t *Terminal) Modes() map[int]bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[int]bool, len(t.modes))
	for k, v := range t.modes {
		out[k] = v
	}
	return out
}

// SetScrollingRegion applies DECSTBM/DECSLRM.
func (t *Terminal) SetScrollingRegion(r ScrollingRegion) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.region = r
	t.dirty = t.dirty.Set(DirtyScrollingRegion)
}

// ScrollingRegion returns the current scrolling region.
func (t *Terminal) ScrollingRegion() ScrollingRegion {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.region
}

// SetTabstop sets or clears the tabstop at column x.
func (t *Terminal) SetTabstop(x int, set bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tabstops[x] = set
	t.dirty = t.dirty.Set(DirtyTabstops)
}

// ClearAllTabstops clears every tabstop (CSI 3g).
func (t *Terminal) ClearAllTabstops() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.tabstops {
		t.tabstops[i] = false
	}
	t.dirty = t.dirty.Set(DirtyTabstops)
}

// Tabstops returns a copy of the tabstop bitmap.
func (t *Terminal) Tabstops() []bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]bool, len(t.tabstops))
	copy(out, t.tabstops)
	return out
}

// SetPWD records the shell's reported working directory (OSC 7).
func (t *Terminal) SetPWD(pwd string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pwd = pwd
	t.dirty = t.dirty.Set(DirtyPWD)
}

// PWD returns the last reported working directory.
func (t *Terminal) PWD() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.pwd
}

// SetModifyOtherKeys toggles the modifyOtherKeys reporting mode.
func (t *Terminal) SetModifyOtherKeys(on bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.modifyOtherKeys = on
	t.dirty = t.dirty.Set(DirtyModifyOtherKeys)
}

// ModifyOtherKeys reports the current modifyOtherKeys state.
func (t *Terminal) ModifyOtherKeys() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.modifyOtherKeys
}

// SetReverseColors toggles DECSCNM reverse-video mode, which swaps
// foreground/background when the render state resolves them.
func (t *Terminal) SetReverseColors(on bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.reverseColors = on
	t.dirty = t.dirty.Set(DirtyModes)
}

// Dirty returns the accumulated terminal-level dirty bits.
func (t *Terminal) Dirty() TerminalDirty {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.dirty
}

// ClearDirty clears the terminal-level dirty bitset. Only an observer
// (the render-state snapshot) should call this.
func (t *Terminal) ClearDirty() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dirty = 0
}
