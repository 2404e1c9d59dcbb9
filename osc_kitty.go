package vtscreen

import "strings"

// kittyColorMaxEntries bounds the number of k=v pairs an OSC 21 payload
// may contain (spec.md §4.4: "Kind.max * 2"). The kitty protocol has a
// few dozen named color keys plus 256 palette indices; twice that
// comfortably bounds any legitimate request while still rejecting a
// pathological payload.
const kittyColorMaxEntries = (256 + 16) * 2

// dispatchKittyColor parses OSC 21's semicolon-separated k=v pairs.
func dispatchKittyColor(payload string) *Command {
	parts := splitOSCFields(payload)
	if len(parts) > kittyColorMaxEntries {
		return &Command{Kind: CmdInvalid}
	}
	cmd := &Command{Kind: CmdKittyColorProtocol}
	for _, part := range parts {
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			return &Command{Kind: CmdInvalid}
		}
		if !isKittyColorKey(k) {
			return &Command{Kind: CmdInvalid}
		}
		req := KittyColorRequest{Key: k}
		switch v {
		case "":
			req.Reset = true
		case "?":
			req.Query = true
		default:
			req.Value = v
		}
		cmd.KittyRequests = append(cmd.KittyRequests, req)
	}
	return cmd
}

// kittyColorKeys are the well-known kitty color protocol key names
// (beyond decimal palette indices).
var kittyColorKeys = map[string]bool{
	"foreground": true, "background": true, "cursor": true, "cursor_text": true,
	"visual_bell": true, "selection_foreground": true, "selection_background": true,
}

// isKittyColorKey reports whether k is a well-known kitty color name or
// a decimal palette index (0-255).
func isKittyColorKey(k string) bool {
	if kittyColorKeys[k] {
		return true
	}
	idx, ok := parseByteIndex(k)
	return ok && int(idx) <= 255
}
