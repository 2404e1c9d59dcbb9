package vtscreen

import "testing"

func feedString(p *Parser, s string) {
	for i := 0; i < len(s); i++ {
		p.WriteByte(s[i])
	}
}

func TestOSCHyperlinkStart(t *testing.T) {
	p := NewParser(true)
	feedString(p, "8;id=foo;http://example.com")
	cmd := p.End(0x1B)
	if cmd == nil || cmd.Kind != CmdHyperlinkStart {
		t.Fatalf("End() = %+v, want hyperlink_start", cmd)
	}
	if cmd.HyperlinkID != "foo" || cmd.HyperlinkURI != "http://example.com" {
		t.Fatalf("got id=%q uri=%q", cmd.HyperlinkID, cmd.HyperlinkURI)
	}
	if cmd.Terminator != TerminatorST {
		t.Fatalf("Terminator = %v, want ST for a non-BEL terminator byte", cmd.Terminator)
	}
}

func TestOSCHyperlinkEndOnEmptyURI(t *testing.T) {
	p := NewParser(true)
	feedString(p, "8;;")
	cmd := p.End(0x07)
	if cmd == nil || cmd.Kind != CmdHyperlinkEnd {
		t.Fatalf("End() = %+v, want hyperlink_end", cmd)
	}
	if cmd.Terminator != TerminatorBEL {
		t.Fatalf("Terminator = %v, want BEL", cmd.Terminator)
	}
}

func TestOSCHyperlinkStartAutoGeneratesID(t *testing.T) {
	p := NewParser(true)
	feedString(p, "8;;http://example.com")
	cmd := p.End(0x1B)
	if cmd == nil || cmd.Kind != CmdHyperlinkStart {
		t.Fatalf("End() = %+v, want hyperlink_start", cmd)
	}
	if cmd.HyperlinkID == "" {
		t.Fatal("HyperlinkID should be auto-generated when the sender omits id=, got empty string")
	}

	p2 := NewParser(true)
	feedString(p2, "8;;http://example.com")
	cmd2 := p2.End(0x1B)
	if cmd2.HyperlinkID == cmd.HyperlinkID {
		t.Fatal("auto-generated hyperlink ids should not collide across unrelated opens")
	}
}

func TestOSCHyperlinkInvalidIDWithoutURI(t *testing.T) {
	p := NewParser(true)
	feedString(p, "8;id=foo;")
	cmd := p.End(0x07)
	if cmd != nil {
		t.Fatalf("End() = %+v, want nil (invalid: id without uri)", cmd)
	}
}

func TestOSCSemanticPromptOptions(t *testing.T) {
	p := NewParser(true)
	feedString(p, "133;A;aid=a=b;redraw=0")
	cmd := p.End(0x07)
	if cmd == nil || cmd.Kind != CmdPromptStart {
		t.Fatalf("End() = %+v, want prompt_start", cmd)
	}
	if cmd.PromptAID != "a=b" {
		t.Fatalf("PromptAID = %q, want %q", cmd.PromptAID, "a=b")
	}
	if cmd.PromptRedraw {
		t.Fatal("PromptRedraw should be false for redraw=0")
	}
	if cmd.PromptKind != PromptSubPrimary {
		t.Fatalf("PromptKind = %v, want primary", cmd.PromptKind)
	}
}

func TestOSCConEmuProgressClamped(t *testing.T) {
	p := NewParser(true)
	feedString(p, "9;4;1;150")
	cmd := p.End(0x07)
	if cmd == nil || cmd.Kind != CmdConEmuProgressReport {
		t.Fatalf("End() = %+v, want conemu_progress_report", cmd)
	}
	if cmd.ProgressState != ProgressSet {
		t.Fatalf("ProgressState = %v, want set", cmd.ProgressState)
	}
	if cmd.Progress == nil || *cmd.Progress != 100 {
		t.Fatalf("Progress = %v, want 100 (clamped)", cmd.Progress)
	}
}

func TestOSCConEmuFallthroughNotification(t *testing.T) {
	p := NewParser(true)
	feedString(p, "9;hello there")
	cmd := p.End(0x07)
	if cmd == nil || cmd.Kind != CmdShowDesktopNotification {
		t.Fatalf("End() = %+v, want show_desktop_notification", cmd)
	}
	if cmd.NotifyTitle != "" || cmd.NotifyBody != "hello there" {
		t.Fatalf("got title=%q body=%q", cmd.NotifyTitle, cmd.NotifyBody)
	}
}

func TestOSCChangeWindowTitle(t *testing.T) {
	p := NewParser(true)
	feedString(p, "0;new title")
	cmd := p.End(0x07)
	if cmd == nil || cmd.Kind != CmdChangeWindowTitle || cmd.Title != "new title" {
		t.Fatalf("End() = %+v, want change_window_title{new title}", cmd)
	}
}

func TestOSCInvalidNumericPrefixForcesInvalid(t *testing.T) {
	p := NewParser(true)
	feedString(p, "999;x")
	if cmd := p.End(0x07); cmd != nil {
		t.Fatalf("End() = %+v, want nil for an unrecognized OSC number", cmd)
	}
}

func TestOSCHeapRequiredRejectedWithoutAllocator(t *testing.T) {
	p := NewParser(false)
	feedString(p, "52;c;aGVsbG8=")
	if cmd := p.End(0x07); cmd != nil {
		t.Fatalf("End() = %+v, want nil: OSC 52 needs the allocator", cmd)
	}
}

func TestOSCClipboardWithAllocator(t *testing.T) {
	p := NewParser(true)
	feedString(p, "52;c;aGVsbG8=")
	cmd := p.End(0x07)
	if cmd == nil || cmd.Kind != CmdClipboardContents {
		t.Fatalf("End() = %+v, want clipboard_contents", cmd)
	}
	if cmd.ClipboardKind != 'c' || cmd.ClipboardData != "aGVsbG8=" {
		t.Fatalf("got kind=%q data=%q", cmd.ClipboardKind, cmd.ClipboardData)
	}
}

func TestOSCResetIsIdempotent(t *testing.T) {
	p := NewParser(true)
	feedString(p, "0;abc")
	p.End(0x07)
	p.Reset()
	first := *p
	p.Reset()
	second := *p
	if first.state != second.state || first.ps != second.ps || first.num != second.num {
		t.Fatalf("Reset() is not idempotent: %+v vs %+v", first, second)
	}
	if p.state != parserStart {
		t.Fatalf("state after Reset() = %v, want parserStart", p.state)
	}
}

func TestOSCReportPWD(t *testing.T) {
	p := NewParser(true)
	feedString(p, "7;file:///home/user")
	cmd := p.End(0x07)
	if cmd == nil || cmd.Kind != CmdReportPWD || cmd.Title != "file:///home/user" {
		t.Fatalf("End() = %+v, want report_pwd{file:///home/user}", cmd)
	}
}

func TestOSCKittyColorSetQueryAndReset(t *testing.T) {
	p := NewParser(true)
	feedString(p, "21;foreground=?;cursor=;5=#ff0000")
	cmd := p.End(0x07)
	if cmd == nil || cmd.Kind != CmdKittyColorProtocol {
		t.Fatalf("End() = %+v, want kitty_color_protocol", cmd)
	}
	if len(cmd.KittyRequests) != 3 {
		t.Fatalf("KittyRequests = %+v, want 3 entries", cmd.KittyRequests)
	}
	if !cmd.KittyRequests[0].Query || cmd.KittyRequests[0].Key != "foreground" {
		t.Fatalf("request[0] = %+v, want query foreground", cmd.KittyRequests[0])
	}
	if !cmd.KittyRequests[1].Reset || cmd.KittyRequests[1].Key != "cursor" {
		t.Fatalf("request[1] = %+v, want reset cursor", cmd.KittyRequests[1])
	}
	if cmd.KittyRequests[2].Value != "#ff0000" || cmd.KittyRequests[2].Key != "5" {
		t.Fatalf("request[2] = %+v, want set 5=#ff0000", cmd.KittyRequests[2])
	}
}

func TestOSCKittyColorUnknownKeyInvalid(t *testing.T) {
	p := NewParser(true)
	feedString(p, "21;bogus_key=?")
	if cmd := p.End(0x07); cmd != nil {
		t.Fatalf("End() = %+v, want nil for an unrecognized kitty color key", cmd)
	}
}

func TestOSCPaletteSetIndexedColor(t *testing.T) {
	p := NewParser(true)
	feedString(p, "4;5;#ff00ff")
	cmd := p.End(0x07)
	if cmd == nil || cmd.Kind != CmdColorOperation {
		t.Fatalf("End() = %+v, want color_operation", cmd)
	}
	if len(cmd.ColorRequests) != 1 {
		t.Fatalf("ColorRequests = %+v, want 1 entry", cmd.ColorRequests)
	}
	req := cmd.ColorRequests[0]
	if req.Index != 5 || req.Value != "#ff00ff" || req.Query || req.Reset {
		t.Fatalf("request = %+v, want set index=5 value=#ff00ff", req)
	}
}

func TestOSCPaletteQueryForeground(t *testing.T) {
	p := NewParser(true)
	feedString(p, "10;?")
	cmd := p.End(0x07)
	if cmd == nil || cmd.Kind != CmdColorOperation {
		t.Fatalf("End() = %+v, want color_operation", cmd)
	}
	if len(cmd.ColorRequests) != 1 || !cmd.ColorRequests[0].Query {
		t.Fatalf("ColorRequests = %+v, want a single query entry", cmd.ColorRequests)
	}
}

func TestOSCPaletteResetAll(t *testing.T) {
	p := NewParser(true)
	feedString(p, "104;")
	cmd := p.End(0x07)
	if cmd == nil || cmd.Kind != CmdColorOperation {
		t.Fatalf("End() = %+v, want color_operation", cmd)
	}
	if len(cmd.ColorRequests) != 0 {
		t.Fatalf("ColorRequests = %+v, want none (empty payload means reset every entry)", cmd.ColorRequests)
	}
}

func TestOSCPaletteResetSingleIndex(t *testing.T) {
	p := NewParser(true)
	feedString(p, "104;5")
	cmd := p.End(0x07)
	if cmd == nil || cmd.Kind != CmdColorOperation {
		t.Fatalf("End() = %+v, want color_operation", cmd)
	}
	if len(cmd.ColorRequests) != 1 || !cmd.ColorRequests[0].Reset || cmd.ColorRequests[0].Index != 5 {
		t.Fatalf("ColorRequests = %+v, want a single reset entry for index 5", cmd.ColorRequests)
	}
}
