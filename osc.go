package vtscreen

import "strconv"

type parserState uint8

const (
	parserStart parserState = iota
	parserNum
	parserPayload
	parserInvalid
)

// oscRecognizedNumbers lists every Ps value the parser accepts. The
// teacher's OSC-adjacent code (providers.go's notification handling)
// dispatches on a small fixed set of sequences rather than a literal
// per-digit state enum; this generalizes that same shape to the full
// command set instead of hand-enumerating one Go state per digit of a
// 35-entry digit-trie, which would just be this table re-expressed as
// control flow (documented in DESIGN.md).
var oscRecognizedNumbers = func() map[int]bool {
	m := map[int]bool{0: true, 1: true, 2: true, 4: true, 5: true, 7: true, 8: true, 9: true,
		21: true, 22: true, 52: true, 77: true, 104: true, 133: true, 777: true}
	for i := 10; i <= 19; i++ {
		m[i] = true
	}
	for i := 110; i <= 119; i++ {
		m[i] = true
	}
	return m
}()

var oscHeapRequired = func() map[int]bool {
	m := map[int]bool{4: true, 5: true, 21: true, 52: true, 104: true}
	for i := 10; i <= 19; i++ {
		m[i] = true
	}
	for i := 110; i <= 119; i++ {
		m[i] = true
	}
	return m
}()

// validPrefix reports whether digits is a prefix of the decimal form of
// some recognized OSC number, so the parser can reject a non-conforming
// numeric prefix byte-by-byte instead of waiting for the terminating
// ';'.
func validPrefix(digits string) bool {
	for n := range oscRecognizedNumbers {
		s := strconv.Itoa(n)
		if len(s) >= len(digits) && s[:len(digits)] == digits {
			return true
		}
	}
	return false
}

// Parser is an incremental, single-producer OSC state machine: feed it
// one byte at a time via [Parser.WriteByte], then call [Parser.End]
// with the terminator byte to obtain the parsed [Command] (spec.md
// §4.4).
type Parser struct {
	allowHeap bool
	state     parserState
	ps        string
	num       int
	w         oscWriter
	logf      func(format string, args ...any)
}

// NewParser returns a parser. allowHeap mirrors the "optional
// allocator" configuration of spec.md §4.4: when false, any OSC number
// that would require heap escalation is rejected as invalid instead of
// accepted into a growable buffer.
func NewParser(allowHeap bool) *Parser {
	return &Parser{allowHeap: allowHeap}
}

// SetLogf installs the hook the parser reports malformed input through
// (spec.md §7: "parser logs at info level with the offending bytes and
// continues from a clean start state"). Nil (the default) makes
// malformed-input reporting a no-op, matching spec.md §7's user-visible
// behavior ("a malformed OSC produces no state change") without forcing
// output during normal operation or tests.
func (p *Parser) SetLogf(logf func(format string, args ...any)) {
	p.logf = logf
}

func (p *Parser) logInvalid(reason string, b byte) {
	if p.logf == nil {
		return
	}
	p.logf("osc: invalid sequence (%s), ps=%q byte=%#02x", reason, p.ps, b)
}

// Reset returns the parser to its initial state, idempotently, and
// releases any allocating-writer storage (spec.md §8's idempotence
// property).
func (p *Parser) Reset() {
	p.state = parserStart
	p.ps = ""
	p.num = 0
	p.w.reset()
}

// WriteByte feeds one byte of OSC payload (everything from the first
// digit of Ps up to, but not including, the terminator).
func (p *Parser) WriteByte(b byte) {
	switch p.state {
	case parserInvalid:
		return
	case parserStart, parserNum:
		p.writeNumByte(b)
	case parserPayload:
		p.w.writeByte(b, p.num == 52)
		if p.w.overflow {
			p.logInvalid("payload overflowed its buffer", b)
			p.state = parserInvalid
		}
	}
}

func (p *Parser) writeNumByte(b byte) {
	if b == ';' {
		if p.ps == "" {
			p.logInvalid("empty Ps before ';'", b)
			p.state = parserInvalid
			return
		}
		n, err := strconv.Atoi(p.ps)
		if err != nil || !oscRecognizedNumbers[n] {
			p.logInvalid("unrecognized Ps", b)
			p.state = parserInvalid
			return
		}
		if oscHeapRequired[n] && !p.allowHeap {
			p.logInvalid("Ps requires heap allocator but none is configured", b)
			p.state = parserInvalid
			return
		}
		p.num = n
		p.state = parserPayload
		return
	}
	if b < '0' || b > '9' {
		p.logInvalid("non-digit byte in Ps", b)
		p.state = parserInvalid
		return
	}
	candidate := p.ps + string(b)
	if !validPrefix(candidate) {
		p.logInvalid("Ps is not a prefix of any recognized command", b)
		p.state = parserInvalid
		return
	}
	p.ps = candidate
	p.state = parserNum
}

// End finalizes the command using terminatorByte (0x07 for BEL,
// anything else taken to mean the string was closed by ESC \). Returns
// nil if the parser never reached a valid payload state.
func (p *Parser) End(terminatorByte byte) *Command {
	term := TerminatorST
	if terminatorByte == 0x07 {
		term = TerminatorBEL
	}
	if p.state != parserPayload {
		return nil
	}
	payload := p.w.string()
	cmd := p.dispatch(p.num, payload)
	if cmd == nil || cmd.Kind == CmdInvalid {
		if p.logf != nil {
			p.logf("osc: invalid payload for Ps=%d, payload=%q", p.num, payload)
		}
		return nil
	}
	cmd.Terminator = term
	return cmd
}

func (p *Parser) dispatch(num int, payload string) *Command {
	switch {
	case num == 0 || num == 2:
		return &Command{Kind: CmdChangeWindowTitle, Title: payload}
	case num == 1:
		return &Command{Kind: CmdChangeWindowIcon, Title: payload}
	case num == 4 || num == 5 || num == 104 || (num >= 10 && num <= 19) || (num >= 110 && num <= 119):
		return dispatchColorOperation(num, payload)
	case num == 7:
		return &Command{Kind: CmdReportPWD, Title: payload}
	case num == 8:
		return dispatchHyperlink(payload)
	case num == 9:
		return dispatchConEmu(payload)
	case num == 21:
		return dispatchKittyColor(payload)
	case num == 22:
		return &Command{Kind: CmdMouseShape, MouseShape: payload}
	case num == 52:
		return dispatchClipboard(payload)
	case num == 77:
		return dispatchOSC77(payload)
	case num == 777:
		return dispatchNotifyDirect(payload)
	case num == 133:
		return dispatchSemanticPrompt(payload)
	}
	return nil
}
