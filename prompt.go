package vtscreen

// PromptKind distinguishes the semantic-prompt row kinds recognized from
// OSC 133 (supplemented feature — shell integration, ported from the
// teacher's semantic_prompt.go/shell_integration.go onto the paged
// storage model).
type PromptKind uint8

const (
	PromptPrimary      PromptKind = 0
	PromptContinuation PromptKind = 1
	PromptSecondary    PromptKind = 2
	PromptRight        PromptKind = 3
)

// promptMark records where a semantic prompt began, so a terminal can
// jump the viewport between command prompts the way shell-integration
// aware terminals do.
type promptMark struct {
	pin  Pin
	kind PromptKind
}

// MarkPromptStart records a prompt start at the cursor's current
// position and sets the owning row's flags so the formatter and
// render-state layers can see it without consulting this list.
func (s *Screen) MarkPromptStart(kind PromptKind) {
	row := s.Cursor.Pin.Row()
	switch kind {
	case PromptContinuation:
		row.Flags = row.Flags.Set(RowPromptContinuation)
	default:
		row.Flags = row.Flags.Set(RowPromptStart)
	}
	s.promptMarks = append(s.promptMarks, promptMark{pin: s.Cursor.Pin, kind: kind})
}

// MarkCommandOutputStart flags the cursor's current row as the first
// row of a command's output (after OSC 133;C).
func (s *Screen) MarkCommandOutputStart() {
	s.Cursor.Pin.Row().Flags = s.Cursor.Pin.Row().Flags.Set(RowCommandOutput)
}

// PromptMarks returns every recorded prompt mark, oldest first.
func (s *Screen) PromptMarks() []Pin {
	out := make([]Pin, len(s.promptMarks))
	for i, m := range s.promptMarks {
		out[i] = m.pin
	}
	return out
}

// NextPromptRow returns the first recorded prompt pin strictly below
// from's active-space row, for "jump to next command" navigation.
// Reports ok=false if none exists.
func (s *Screen) NextPromptRow(from Pin) (Pin, bool) {
	for _, m := range s.promptMarks {
		if isBelow(m.pin, from) {
			return m.pin, true
		}
	}
	return Pin{}, false
}

// PrevPromptRow returns the last recorded prompt pin strictly above
// from's row, for "jump to previous command" navigation.
func (s *Screen) PrevPromptRow(from Pin) (Pin, bool) {
	var best Pin
	found := false
	for _, m := range s.promptMarks {
		if isBelow(from, m.pin) {
			best = m.pin
			found = true
		}
	}
	return best, found
}

// isBelow reports whether a's row comes strictly after b's row in
// top-to-bottom page order.
func isBelow(a, b Pin) bool {
	if a.page == b.page {
		return a.Y > b.Y
	}
	for n := b.page; n != nil; n = n.next {
		if n == a.page {
			return true
		}
	}
	return false
}
