package vtscreen

import (
	"net/url"
	"strconv"
	"strings"
)

// dispatchSemanticPrompt parses OSC 133's shell-integration sub-letters
// (spec.md §4.4).
func dispatchSemanticPrompt(payload string) *Command {
	letter, rest, _ := strings.Cut(payload, ";")
	switch letter {
	case "A":
		return dispatchPromptStart(rest)
	case "B":
		return &Command{Kind: CmdPromptEnd}
	case "C":
		return dispatchEndOfInput(rest)
	case "D":
		return dispatchEndOfCommand(rest)
	default:
		return &Command{Kind: CmdInvalid}
	}
}

func dispatchPromptStart(rest string) *Command {
	cmd := &Command{Kind: CmdPromptStart, PromptKind: PromptSubPrimary}
	if rest == "" {
		return cmd
	}
	for _, opt := range strings.Split(rest, ";") {
		k, v, _ := strings.Cut(opt, "=")
		switch k {
		case "aid":
			cmd.PromptAID = v
		case "redraw":
			cmd.PromptRedraw = v == "1"
		case "special_key":
			cmd.PromptSpecialKey = v == "1"
		case "click_events":
			cmd.PromptClickEvents = v == "1"
		case "k":
			switch v {
			case "c":
				cmd.PromptKind = PromptSubContinuation
			case "s":
				cmd.PromptKind = PromptSubSecondary
			case "r":
				cmd.PromptKind = PromptSubRight
			case "i":
				cmd.PromptKind = PromptSubPrimary
			}
		}
	}
	return cmd
}

func dispatchEndOfInput(rest string) *Command {
	cmd := &Command{Kind: CmdEndOfInput}
	if rest == "" {
		return cmd
	}
	for _, opt := range strings.Split(rest, ";") {
		k, v, ok := strings.Cut(opt, "=")
		if !ok {
			continue
		}
		switch k {
		case "cmdline":
			if decoded, err := strconv.Unquote(`"` + v + `"`); err == nil {
				cmd.CmdLine = &decoded
			}
		case "cmdline_url":
			if decoded, err := url.QueryUnescape(v); err == nil {
				cmd.CmdLine = &decoded
			}
		}
	}
	return cmd
}

func dispatchEndOfCommand(rest string) *Command {
	cmd := &Command{Kind: CmdEndOfCommand}
	if rest == "" {
		return cmd
	}
	if code, err := strconv.Atoi(rest); err == nil {
		cmd.ExitCode = &code
	}
	return cmd
}
