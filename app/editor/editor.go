package editor

import (
	"os"
	"strings"

	"modal-edit/app/buffer"
	"modal-edit/app/command"
	"modal-edit/app/message"
	"modal-edit/app/mode"
)

// DefaultFileName is the operating file name of an editor
// that has not been given one
const DefaultFileName = "untitled"

// Pane is a buffer together with the cursor navigating it
type Pane struct {
	Buffer *buffer.Buffer
	Cursor *buffer.Cursor
}

func newPane(lines ...string) *Pane {
	buf := buffer.New(lines...)
	return &Pane{
		Buffer: buf,
		Cursor: buffer.NewCursor(buf),
	}
}

// reset replaces the content with a single empty line
func (p *Pane) reset() {
	p.Buffer.Reset()
	p.Cursor.Reset()
}

// Editor is the aggregate of the main document, the command line,
// the current mode and the operating file name.
// All mutation goes through HandleEvent.
type Editor struct {
	main *Pane
	cmd  *Pane

	mode     *mode.ModeInstance
	fileName string
	running  bool

	// result of the last executed command
	status message.StatusBarMsg

	commands command.Commands

	// exit terminates the process for :q
	exit func(code int)

	// size of the area the main buffer is shown in
	height int
	width  int

	// width of the command line in cells
	cmdWidth int
}

type Option func(*Editor)

// WithLines seeds the main buffer with lines
func WithLines(lines ...string) Option {
	return func(e *Editor) {
		e.main.Buffer.Reset(lines...)
		e.main.Cursor.Reset()
	}
}

// WithText seeds the main buffer with text split on "\n",
// e.g. the contents of a file that was loaded.
func WithText(text string) Option {
	return WithLines(strings.Split(text, "\n")...)
}

// WithFileName sets the operating file name
func WithFileName(name string) Option {
	return func(e *Editor) {
		if name != "" {
			e.fileName = name
		}
	}
}

// WithExit replaces the function :q uses to terminate the process.
// It defaults to os.Exit.
func WithExit(exit func(code int)) Option {
	return func(e *Editor) {
		if exit != nil {
			e.exit = exit
		}
	}
}

// New creates an editor in insert mode with an empty document
func New(opts ...Option) *Editor {
	e := &Editor{
		main:     newPane(),
		cmd:      newPane(),
		mode:     mode.New(),
		fileName: DefaultFileName,
		running:  true,
		exit:     os.Exit,
	}

	e.commands = e.cmdRegistry()

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Resize sets the size of the area the main buffer is shown in.
// The scroll offset of the main cursor follows the cursor within it.
func (e *Editor) Resize(height int, width int) {
	e.height = height
	e.width = width
	e.main.Cursor.ScrollTo(e.height, e.width)
}

// ResizeCommandLine sets the width the command line is shown in
func (e *Editor) ResizeCommandLine(width int) {
	e.cmdWidth = width
	e.cmd.Cursor.ScrollTo(1, e.cmdWidth)
}

// Running reports whether the run loop should continue
func (e *Editor) Running() bool { return e.running }

// Mode returns the current mode
func (e *Editor) Mode() mode.Mode { return e.mode.GetCurrent() }

// IsCommandMode reports whether input goes to the command line
func (e *Editor) IsCommandMode() bool { return e.mode.GetCurrent() == mode.Command }

// FileName returns the operating file name
func (e *Editor) FileName() string { return e.fileName }

// Status returns the result of the last command
func (e *Editor) Status() message.StatusBarMsg { return e.status }

// Lines returns the lines of the main buffer
func (e *Editor) Lines() []string { return e.main.Buffer.Lines() }

// LineCount returns the number of lines in the main buffer
func (e *Editor) LineCount() int { return e.main.Buffer.LineCount() }

// Line returns a single line of the main buffer
func (e *Editor) Line(row int) string { return e.main.Buffer.Line(row) }

// Text returns the main buffer the way it is written to disk
func (e *Editor) Text() string { return e.main.Buffer.Text() }

// Cursor returns the position of the main cursor
func (e *Editor) Cursor() buffer.Pos { return e.main.Cursor.Position() }

// Scroll returns the scroll offset of the main cursor
func (e *Editor) Scroll() buffer.Pos { return e.main.Cursor.Scroll() }

// CommandLines returns the lines of the command buffer
func (e *Editor) CommandLines() []string { return e.cmd.Buffer.Lines() }

// CommandLine returns the first line of the command buffer,
// the line that is interpreted on Return
func (e *Editor) CommandLine() string { return e.cmd.Buffer.Line(0) }

// CommandCursor returns the position of the command line cursor
func (e *Editor) CommandCursor() buffer.Pos { return e.cmd.Cursor.Position() }

// CommandScroll returns the first visible column of the command line
func (e *Editor) CommandScroll() buffer.Pos { return e.cmd.Cursor.Scroll() }

// active returns the pane that receives input in the current mode
func (e *Editor) active() *Pane {
	if e.IsCommandMode() {
		return e.cmd
	}
	return e.main
}
