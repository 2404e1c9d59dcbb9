package vtscreen

import "strings"

// dispatchClipboard parses OSC 52's "Pc;Pd" form: Pc selects the
// clipboard kind (a single selection-buffer letter, 'c' for the
// default/system clipboard when empty), Pd is the base64 payload
// (validated by the caller, not here — spec.md §4.4 defers payload
// validation).
func dispatchClipboard(payload string) *Command {
	kindPart, data, ok := strings.Cut(payload, ";")
	if !ok {
		return &Command{Kind: CmdInvalid}
	}
	kind := byte('c')
	if kindPart != "" {
		kind = kindPart[0]
	}
	return &Command{Kind: CmdClipboardContents, ClipboardKind: kind, ClipboardData: data}
}
