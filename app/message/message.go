package message

type Type int

const (
	Success Type = iota
	Error
)

var typeName = map[Type]string{
	Success: "success",
	Error:   "error",
}

func (t Type) String() string {
	return typeName[t]
}

// StatusBarMsg is the result of a command, shown in the command bar
// once the editor is back in insert mode.
type StatusBarMsg struct {
	Content string
	Type    Type
}

// Empty reports whether there is nothing to show
func (m StatusBarMsg) Empty() bool {
	return m.Content == ""
}

// Err returns an error message with the error's text
func Err(err error) StatusBarMsg {
	return StatusBarMsg{
		Content: err.Error(),
		Type:    Error,
	}
}
