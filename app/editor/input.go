package editor

import (
	"modal-edit/app/debug"
	"modal-edit/app/event"
	"modal-edit/app/message"
	"modal-edit/app/mode"
)

// HandleEvent applies a single input event to the editor.
// The event is fully applied before HandleEvent returns.
func (e *Editor) HandleEvent(ev event.Event) {
	debug.LogDebug(e.mode.Current.String(), ev.String())

	switch ev := ev.(type) {
	case event.TextInsert:
		e.insertChar(ev.Char)

	// the command line is a single line,
	// vertical movement always applies to the document
	case event.NavigateUp:
		e.main.Cursor.Up()

	case event.NavigateDown:
		e.main.Cursor.Down()

	case event.NavigateLeft:
		e.active().Cursor.Left()

	case event.NavigateRight:
		e.active().Cursor.Right()

	case event.Backspace:
		e.deleteCharBefore()

	case event.Escape:
		e.toggleMode()

	case event.Return:
		e.handleReturn()

	case event.Quit:
		e.running = false
	}

	e.main.Cursor.ScrollTo(e.height, e.width)
	e.cmd.Cursor.ScrollTo(1, e.cmdWidth)
}

// HandleEvents applies events in order
func (e *Editor) HandleEvents(events ...event.Event) {
	for _, ev := range events {
		e.HandleEvent(ev)
	}
}

func (e *Editor) insertChar(ch rune) {
	p := e.active()
	pos := p.Cursor.Position()

	p.Buffer.InsertChar(pos.Row, pos.Col, ch)
	p.Cursor.Right()
}

func (e *Editor) deleteCharBefore() {
	p := e.active()
	pos := p.Cursor.Position()

	p.Cursor.Set(p.Buffer.DeleteCharBefore(pos.Row, pos.Col))
}

// toggleMode switches between insert and command mode.
// The command line starts empty in either direction.
func (e *Editor) toggleMode() {
	if e.mode.Toggle() == mode.Command {
		e.status = message.StatusBarMsg{}
	}
	e.cmd.reset()
}

// handleReturn splits the current line in insert mode and
// runs the command line in command mode.
func (e *Editor) handleReturn() {
	if e.mode.Current == mode.Insert {
		pos := e.main.Cursor.Position()
		e.main.Cursor.Set(e.main.Buffer.SplitLine(pos.Row, pos.Col))
		return
	}

	e.execCommandLine()
}

// execCommandLine interprets the command line and returns to insert
// mode, whether or not the command was recognised.
func (e *Editor) execCommandLine() {
	line := e.cmd.Buffer.Line(0)

	msg, ok := e.commands.Exec(line)
	if !ok {
		debug.LogDebug("ignoring unknown command", line)
	}
	e.status = msg

	e.mode.Current = mode.Insert
	e.cmd.reset()
}
