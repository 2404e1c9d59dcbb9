package vtscreen

import "strings"

// dispatchColorOperation parses the set/query/reset tuple grammar
// shared by OSC 4/5/10-19/104/110-119: semicolon-separated entries,
// each either an index+value pair (OSC 4/104 only), a bare value (set),
// "?" (query), or empty (reset).
func dispatchColorOperation(num int, payload string) *Command {
	cmd := &Command{Kind: CmdColorOperation, ColorOp: num}
	indexed := num == 4 || num == 104
	parts := splitOSCFields(payload)

	// OSC 104 with no payload at all ("104;") resets every palette
	// entry: ColorRequests stays nil, which callers read as "apply to
	// all 256 indices" rather than "apply to none".
	if indexed && len(parts) == 0 {
		return cmd
	}

	if indexed {
		i := 0
		for i < len(parts) {
			idx, ok := parseByteIndex(parts[i])
			if !ok {
				return &Command{Kind: CmdInvalid}
			}
			if i+1 >= len(parts) {
				cmd.ColorRequests = append(cmd.ColorRequests, ColorRequest{Index: idx, Reset: true})
				break
			}
			cmd.ColorRequests = append(cmd.ColorRequests, colorRequestFromValue(idx, parts[i+1]))
			i += 2
		}
		return cmd
	}

	if len(parts) == 0 || (len(parts) == 1 && parts[0] == "") {
		cmd.ColorRequests = append(cmd.ColorRequests, ColorRequest{Reset: true})
		return cmd
	}
	for _, v := range parts {
		cmd.ColorRequests = append(cmd.ColorRequests, colorRequestFromValue(0, v))
	}
	return cmd
}

func colorRequestFromValue(idx uint8, v string) ColorRequest {
	switch v {
	case "":
		return ColorRequest{Index: idx, Reset: true}
	case "?":
		return ColorRequest{Index: idx, Query: true}
	default:
		return ColorRequest{Index: idx, Value: v}
	}
}

func parseByteIndex(s string) (uint8, bool) {
	n := 0
	if s == "" {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
		if n > 255 {
			return 0, false
		}
	}
	return uint8(n), true
}

func splitOSCFields(payload string) []string {
	if payload == "" {
		return nil
	}
	return strings.Split(payload, ";")
}
