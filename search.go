package vtscreen

import (
	"bytes"
	"sync"
)

// SearchState is a [ScreenSearch]'s progress state.
type SearchState uint8

const (
	SearchNeedsFeed  SearchState = 0
	SearchInProgress SearchState = 1
	SearchComplete   SearchState = 2
)

// searchWindowSize caps the sliding window of recently inspected
// plain-text content a [ScreenSearch] scans for the active needle.
const searchWindowSize = 64 * 1024

// ScreenSearch holds one screen's match list and sliding window. All
// its methods assume the caller already holds whatever lock is
// required by the method (tick needs none; feed needs the terminal
// lock — spec.md §4.7).
type ScreenSearch struct {
	screen  *Screen
	needle  []byte
	window  []byte
	points  []Point // parallel to window: points[i] is the cell byte i came from
	cursor  Pin
	fed     bool // Feed has drained everything the screen currently holds
	matches []Point
}

// NewScreenSearch creates a search over screen for needle, starting
// from the top of the screen's content.
func NewScreenSearch(screen *Screen, needle []byte) *ScreenSearch {
	return &ScreenSearch{
		screen: screen,
		needle: needle,
		cursor: screen.Pages.TopLeft(SpaceScreen),
	}
}

// State reports the search's current progress.
func (s *ScreenSearch) State() SearchState {
	if len(s.window) == 0 {
		if s.fed {
			return SearchComplete
		}
		return SearchNeedsFeed
	}
	return SearchInProgress
}

// Tick scans the current window for the needle without touching the
// screen, advancing past any matches found. Returns progressed=true if
// it made forward progress; needsFeed=true when the window is exhausted
// and more content must be fed in; complete=true when the window is
// exhausted and the screen's content has been fully fed.
func (s *ScreenSearch) Tick() (progressed bool, needsFeed bool, complete bool) {
	if len(s.window) == 0 {
		if s.fed {
			return false, false, true
		}
		return false, true, false
	}
	idx := bytes.Index(s.window, s.needle)
	if idx < 0 {
		s.window = nil
		s.points = nil
		if s.fed {
			return true, false, true
		}
		return true, true, false
	}
	if idx < len(s.points) {
		s.matches = append(s.matches, s.points[idx])
	}
	adv := max(1, len(s.needle))
	s.window = s.window[idx+adv:]
	if idx+adv <= len(s.points) {
		s.points = s.points[idx+adv:]
	} else {
		s.points = nil
	}
	complete = len(s.window) == 0 && s.fed
	return true, false, complete
}

// Feed pulls more plain-text content from the screen into the window.
// MUST be called while holding the terminal's lock.
func (s *ScreenSearch) Feed() error {
	if s.fed {
		return nil
	}
	tl := s.cursor
	br := s.screen.Pages.BottomRight(SpaceScreen)
	if tl.page == br.page && tl.Y == br.Y && tl.X >= br.X {
		s.fed = true
		return nil
	}

	plf := &PageListFormatter{Options: Options{Emit: EmitPlain, Trim: false}}
	pm := &PinMap{}
	chunk := plf.Format(s.screen.Pages, tl, br, pm)
	points := make([]Point, len(pm.Pins))
	for i, pin := range pm.Pins {
		points[i] = s.screen.Pages.PinToScreenPoint(pin)
	}
	if len(chunk) > searchWindowSize && len(pm.Pins) > searchWindowSize {
		// Take one window's worth; the next Feed resumes at the first
		// byte left out.
		s.window = append(s.window, chunk[:searchWindowSize]...)
		s.points = append(s.points, points[:searchWindowSize]...)
		s.cursor = pm.Pins[searchWindowSize]
		return nil
	}
	s.window = append(s.window, chunk...)
	s.points = append(s.points, points...)
	s.cursor = br
	s.fed = true
	return nil
}

// TotalMatches reports how many matches have been recorded so far on
// this screen.
func (s *ScreenSearch) TotalMatches() int {
	return len(s.matches)
}

// SearchEventKind tags a [SearchEvent].
type SearchEventKind uint8

const (
	SearchEventComplete     SearchEventKind = 0
	SearchEventTotalMatches SearchEventKind = 1
)

// SearchEvent is emitted on the searcher's event channel.
type SearchEvent struct {
	Kind  SearchEventKind
	Total int
}

// Searcher owns one [ScreenSearch] per screen and advances them on a
// dedicated goroutine, communicating via channels rather than the
// teacher's callback-based event loop — the concurrency model spec.md
// §9 explicitly suggests for a language with first-class channels.
type Searcher struct {
	term *Terminal

	mailbox chan []byte
	stop    chan struct{}
	events  chan SearchEvent
	done    chan struct{}

	mu        sync.Mutex
	searches  map[ScreenKey]*ScreenSearch
	lastTotal int
	allDone   bool // every ScreenSearch has reached SearchComplete; loop idles until a new needle arrives
}

// NewSearcher starts a searcher goroutine bound to term. Call Stop to
// shut it down.
func NewSearcher(term *Terminal) *Searcher {
	s := &Searcher{
		term:     term,
		mailbox:  make(chan []byte, 64),
		stop:     make(chan struct{}),
		events:   make(chan SearchEvent, 16),
		done:     make(chan struct{}),
		searches: make(map[ScreenKey]*ScreenSearch),
	}
	go s.loop()
	return s
}

// Events returns the channel event_cb notifications arrive on.
func (s *Searcher) Events() <-chan SearchEvent {
	return s.events
}

// ChangeNeedle stops the current search and starts a new one for
// needle. Passing nil leaves the screen unsearched.
func (s *Searcher) ChangeNeedle(needle []byte) {
	select {
	case s.mailbox <- needle:
	case <-s.stop:
	}
}

// Stop terminates the searcher goroutine and waits for it to exit.
func (s *Searcher) Stop() {
	close(s.stop)
	<-s.done
}

func (s *Searcher) loop() {
	defer close(s.done)
	for {
		select {
		case <-s.stop:
			return
		case needle := <-s.mailbox:
			s.handleChangeNeedle(needle)
		default:
		}

		s.mu.Lock()
		active := len(s.searches) > 0 && !s.allDone
		s.mu.Unlock()

		if !active {
			select {
			case <-s.stop:
				return
			case needle := <-s.mailbox:
				s.handleChangeNeedle(needle)
			}
			continue
		}

		result := s.tickAll()
		switch result {
		case aggComplete:
			s.markAllDone()
			s.emit(SearchEvent{Kind: SearchEventComplete})
		case aggBlocked:
			s.feedAll()
			s.mu.Lock()
			done := true
			for _, ss := range s.searches {
				if ss.State() != SearchComplete {
					done = false
				}
			}
			s.mu.Unlock()
			if done {
				s.markAllDone()
				s.emit(SearchEvent{Kind: SearchEventComplete})
			}
		}
		s.emitTotalIfChanged()
	}
}

type aggResult uint8

const (
	aggProgress aggResult = iota
	aggComplete
	aggBlocked
)

func (s *Searcher) tickAll() aggResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	anyBlocked := false
	allComplete := true
	for _, ss := range s.searches {
		_, needsFeed, complete := ss.Tick()
		if !complete {
			allComplete = false
		}
		if needsFeed {
			anyBlocked = true
		}
	}
	if allComplete {
		return aggComplete
	}
	if anyBlocked {
		return aggBlocked
	}
	return aggProgress
}

func (s *Searcher) markAllDone() {
	s.mu.Lock()
	s.allDone = true
	s.mu.Unlock()
}

func (s *Searcher) feedAll() {
	s.term.mu.Lock()
	defer s.term.mu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ss := range s.searches {
		if ss.State() == SearchNeedsFeed {
			_ = ss.Feed()
		}
	}
}

func (s *Searcher) handleChangeNeedle(needle []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searches = make(map[ScreenKey]*ScreenSearch)
	s.lastTotal = -1
	s.allDone = false
	if len(needle) == 0 {
		return
	}
	s.term.mu.RLock()
	defer s.term.mu.RUnlock()
	for key, scr := range s.term.screens.screens {
		s.searches[key] = NewScreenSearch(scr, needle)
	}
}

func (s *Searcher) emitTotalIfChanged() {
	s.mu.Lock()
	active := s.term.screens.ActiveKey()
	var total int
	if ss, ok := s.searches[active]; ok {
		total = ss.TotalMatches()
	}
	changed := total != s.lastTotal
	s.lastTotal = total
	s.mu.Unlock()
	if changed {
		s.emit(SearchEvent{Kind: SearchEventTotalMatches, Total: total})
	}
}

func (s *Searcher) emit(ev SearchEvent) {
	select {
	case s.events <- ev:
	case <-s.stop:
	}
}
