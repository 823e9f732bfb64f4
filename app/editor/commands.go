package editor

import (
	"errors"
	"fmt"

	"modal-edit/app/command"
	"modal-edit/app/debug"
	"modal-edit/app/files"
	"modal-edit/app/message"
)

func (e *Editor) cmdRegistry() command.Commands {
	return command.Commands{
		command.Write:      e.writeBuffer,
		command.ChangeName: e.changeFileName,
		command.SaveAs:     e.saveBufferAs,
		command.Quit:       e.quit,
	}
}

// writeBuffer writes the main buffer to the operating file
func (e *Editor) writeBuffer(_ ...string) message.StatusBarMsg {
	return e.save(e.fileName)
}

// changeFileName sets the operating file name without writing anything
func (e *Editor) changeFileName(args ...string) message.StatusBarMsg {
	name := command.Command{Args: args}.Arg()
	if name == "" {
		return message.StatusBarMsg{
			Content: message.StatusBar.NoFileName,
			Type:    message.Error,
		}
	}

	e.fileName = name
	debug.LogInfo("operating file name changed to", name)

	return message.StatusBarMsg{
		Content: fmt.Sprintf(message.StatusBar.FileRenamed, name),
	}
}

// saveBufferAs writes the main buffer to another file.
// The operating file name stays the same.
func (e *Editor) saveBufferAs(args ...string) message.StatusBarMsg {
	name := command.Command{Args: args}.Arg()
	if name == "" {
		return message.StatusBarMsg{
			Content: message.StatusBar.NoFileName,
			Type:    message.Error,
		}
	}

	return e.save(name)
}

// quit terminates the process right away, unsaved changes are lost.
func (e *Editor) quit(_ ...string) message.StatusBarMsg {
	debug.LogInfo("quit")
	e.running = false
	e.exit(0)
	return message.StatusBarMsg{}
}

// save writes the main buffer to path. Failures are reported
// in the returned message, never as a fault.
func (e *Editor) save(path string) message.StatusBarMsg {
	n, err := files.Write(path, e.main.Buffer.Text())
	if err != nil {
		var writeErr *files.WriteError
		if !errors.As(err, &writeErr) {
			err = &files.WriteError{Path: path, Err: err}
		}
		debug.LogErr(err)
		return message.Err(err)
	}

	return message.StatusBarMsg{
		Content: fmt.Sprintf(
			message.StatusBar.FileWritten,
			path,
			e.main.Buffer.LineCount(),
			n,
		),
	}
}
