package main

type Command int

const (
	CmdNone Command = iota
	CmdLines
	CmdSearch
	CmdGroup
	CmdFilter
)

type CommandInput struct {
	cmd Command
	buf string
}

func CommandFromPrefix(r rune) Command {
	switch r {
	case ':':
		return CmdLines
	case '/':
		return CmdSearch
	case '@':
		return CmdGroup
	default:
		return CmdNone
	}
}

func (m *model) commandBadge(cmd Command) string {
	switch cmd {
	case CmdSearch:
		return "[FIND]"
	case CmdFilter:
		return "[FILTER]"
	case CmdLines:
		return "[LINES]"
	case CmdGroup:
		return "[GROUP]"
	default:
		return "[NORMAL]"
	}
}

func (m *model) commandPrompt(cmd Command) string {
	switch cmd {
	case CmdSearch:
		return "line: "
	case CmdFilter:
		return "min duration: "
	case CmdLines:
		return "lines: "
	case CmdGroup:
		return "group: "
	default:
		return ""
	}
}

func (m *model) commandHintsLine(cmd Command) string {
	switch cmd {
	case CmdLines:
		return "e.g. 3-9, 12, 5-, -4   enter: apply   esc: cancel"
	case CmdFilter:
		return "e.g. 30s, 5m, 0 to clear   enter: apply   esc: cancel"
	case CmdSearch:
		return "text or group/label   enter: find   esc: cancel"
	default:
		return "enter: apply   esc: cancel"
	}
}

func (m *model) idleCommandHintsLine() string {
	return "/ find   : lines   @ group   f min duration   t time window"
}

// activeCommandLine returns the command prompt text for the footer status line.
func (m *model) activeCommandLine() string {
	badge := m.commandBadge(m.ui.command.cmd)
	prompt := m.commandPrompt(m.ui.command.cmd)
	return badge + " " + prompt + m.ui.command.buf
}

func (m *model) enterCommandMode(cmd Command) {
	m.ui.command = CommandInput{cmd: cmd}
	m.ui.mode = modeCommand
}

func trimLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return ""
	}
	return string(r[:len(r)-1])
}
