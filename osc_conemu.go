package vtscreen

import "strings"

// dispatchConEmu implements OSC 9's ConEmu sub-protocol dispatch on the
// accumulated payload (spec.md §4.4). Real ConEmu dispatches per-digit
// as bytes arrive; this implementation dispatches once at End() time
// off the fully accumulated payload string, which is observably
// identical for a single-producer, non-streaming-response protocol and
// avoids hand-rolling another digit-trie alongside the Ps one (noted in
// DESIGN.md).
func dispatchConEmu(payload string) *Command {
	switch {
	case payload == "12":
		return &Command{Kind: CmdPromptStart, PromptKind: PromptSubPrimary}
	case strings.HasPrefix(payload, "1;"):
		ms, ok := parseIntClamped(payload[2:], 0, 10_000)
		if !ok {
			ms = 100
		}
		return &Command{Kind: CmdConEmuSleep, SleepMS: ms}
	case strings.HasPrefix(payload, "2;"):
		return &Command{Kind: CmdConEmuShowMessageBox, MessageBoxText: payload[2:]}
	case payload == "3;" || payload == "3":
		return &Command{Kind: CmdConEmuChangeTabTitle, TabTitleOp: TabTitleReset}
	case strings.HasPrefix(payload, "3;"):
		return &Command{Kind: CmdConEmuChangeTabTitle, TabTitleOp: TabTitleValue, TabTitleValue: payload[2:]}
	case strings.HasPrefix(payload, "4;"):
		return dispatchConEmuProgress(payload[2:])
	case payload == "5":
		return &Command{Kind: CmdConEmuWaitInput}
	case strings.HasPrefix(payload, "6;"):
		return &Command{Kind: CmdConEmuGUIMacro, GUIMacro: payload[2:]}
	case payload == "7" || payload == "8" || payload == "9":
		return &Command{Kind: CmdInvalid}
	default:
		return &Command{Kind: CmdShowDesktopNotification, NotifyTitle: "", NotifyBody: payload}
	}
}

func dispatchConEmuProgress(rest string) *Command {
	stateStr, progressStr, hasProgress := strings.Cut(rest, ";")
	state, ok := parseIntClamped(stateStr, 0, 4)
	if !ok {
		return &Command{Kind: CmdInvalid}
	}
	ps := ProgressState(state)
	cmd := &Command{Kind: CmdConEmuProgressReport, ProgressState: ps}
	switch ps {
	case ProgressSet, ProgressError, ProgressPause:
		if hasProgress {
			if p, ok := parseIntClamped(progressStr, 0, 100); ok {
				cmd.Progress = &p
			}
		}
	}
	return cmd
}

func parseIntClamped(s string, lo, hi int) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
		if n > hi {
			n = hi
		}
	}
	if n < lo {
		n = lo
	}
	return n, true
}
