package command

import (
	"strings"

	"modal-edit/app/message"
)

// Names of the commands understood by the command line
const (
	Write      = ":w"
	ChangeName = ":chn"
	SaveAs     = ":sav"
	Quit       = ":q"
)

// Command is a parsed command line
type Command struct {
	Name string
	Args []string
}

// Parse splits a command line into its command name and arguments.
// The name is case-folded, arguments are kept as typed.
func Parse(line string) Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}
	}

	return Command{
		Name: strings.ToLower(fields[0]),
		Args: fields[1:],
	}
}

// Arg returns all arguments concatenated without separators,
// so ":chn my notes" names the file "mynotes".
func (c Command) Arg() string {
	return strings.Join(c.Args, "")
}

// Commands maps command names to the functions executing them
type Commands map[string]func(args ...string) message.StatusBarMsg

// Exec parses line and runs the matching command.
// Unknown commands are ignored; the second return value
// reports whether a command was found.
func (cmds Commands) Exec(line string) (message.StatusBarMsg, bool) {
	cmd := Parse(line)

	fn, ok := cmds[cmd.Name]
	if !ok {
		return message.StatusBarMsg{}, false
	}

	return fn(cmd.Args...), true
}
