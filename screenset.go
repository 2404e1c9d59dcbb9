package vtscreen

import "fmt"

// ScreenKey names one of the two screens a [ScreenSet] can hold.
type ScreenKey uint8

const (
	ScreenPrimary   ScreenKey = 0
	ScreenAlternate ScreenKey = 1
)

// ScreenSet owns the primary screen and a lazily created alternate,
// tracking which one is currently active (spec.md §4.2).
type ScreenSet struct {
	screens   map[ScreenKey]*Screen
	active    ScreenKey
	activeRef *Screen
}

// NewScreenSet creates the primary screen with the given active
// dimensions; the alternate is not allocated until first requested.
func NewScreenSet(rows, cols, pageCapacity, maxScrollback int) *ScreenSet {
	primary := NewScreen(rows, cols, pageCapacity, maxScrollback)
	return &ScreenSet{
		screens:   map[ScreenKey]*Screen{ScreenPrimary: primary},
		active:    ScreenPrimary,
		activeRef: primary,
	}
}

// Get returns the screen for key if it already exists.
func (ss *ScreenSet) Get(key ScreenKey) (*Screen, bool) {
	s, ok := ss.screens[key]
	return s, ok
}

// GetInit returns the screen for key, lazily allocating the alternate
// on first call. The alternate never carries scrollback (spec.md §3).
func (ss *ScreenSet) GetInit(key ScreenKey, rows, cols, pageCapacity int) *Screen {
	if s, ok := ss.screens[key]; ok {
		return s
	}
	s := NewScreen(rows, cols, pageCapacity, 0)
	ss.screens[key] = s
	return s
}

// SwitchTo makes key the active screen. Returns an error if key has
// never been initialized — callers must GetInit the alternate before
// switching to it.
func (ss *ScreenSet) SwitchTo(key ScreenKey) error {
	s, ok := ss.screens[key]
	if !ok {
		return fmt.Errorf("vtscreen: screen %d not initialized", key)
	}
	ss.active = key
	ss.activeRef = s
	return nil
}

// Remove deallocates the screen at key. Removing [ScreenPrimary] is
// forbidden and returns an error.
func (ss *ScreenSet) Remove(key ScreenKey) error {
	if key == ScreenPrimary {
		return fmt.Errorf("vtscreen: cannot remove the primary screen")
	}
	delete(ss.screens, key)
	if ss.active == key {
		ss.active = ScreenPrimary
		ss.activeRef = ss.screens[ScreenPrimary]
	}
	return nil
}

// Active returns the currently active screen.
func (ss *ScreenSet) Active() *Screen {
	return ss.activeRef
}

// ActiveKey returns the key of the currently active screen.
func (ss *ScreenSet) ActiveKey() ScreenKey {
	return ss.active
}
