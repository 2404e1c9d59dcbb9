package vtscreen

import (
	"strings"

	"github.com/google/uuid"
)

// dispatchHyperlink parses OSC 8's "params;URI" form. Params are
// colon-separated key=value pairs; only "id" is recognized (spec.md
// §4.4). When the sender opens a link without an id, one is minted
// here so every hyperlink_start the parser emits can still be grouped
// and released by id, matching the interning scheme in hyperlink.go.
func dispatchHyperlink(payload string) *Command {
	semi := strings.IndexByte(payload, ';')
	if semi < 0 {
		return &Command{Kind: CmdInvalid}
	}
	params, uri := payload[:semi], payload[semi+1:]

	var id string
	if params != "" {
		for _, kv := range strings.Split(params, ":") {
			k, v, ok := strings.Cut(kv, "=")
			if ok && k == "id" {
				id = v
			}
		}
	}

	if uri == "" {
		if id != "" {
			return &Command{Kind: CmdInvalid}
		}
		return &Command{Kind: CmdHyperlinkEnd}
	}
	if id == "" {
		id = uuid.NewString()
	}
	return &Command{Kind: CmdHyperlinkStart, HyperlinkID: id, HyperlinkURI: uri}
}
