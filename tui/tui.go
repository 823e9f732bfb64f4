package tui

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	bl "github.com/winder/bubblelayout"

	"modal-edit/app/config"
	"modal-edit/app/debug"
	"modal-edit/app/editor"
	"modal-edit/tui/keyinput"
	"modal-edit/tui/theme"
)

// height of the command bar below the editor
const commandBarHeight = 1

// exitRequest records a :q so the program can exit
// once the terminal has been restored
type exitRequest struct {
	requested bool
	code      int
}

// Model is the Bubble Tea model for the TUI
type Model struct {
	layout bl.BubbleLayout

	gutterID bl.ID
	editorID bl.ID

	gutterSize bl.Size
	editorSize bl.Size

	// total width of the terminal
	width int

	editor   *editor.Editor
	keyInput *keyinput.Input
	settings config.Settings
	styles   theme.Styles

	exit *exitRequest
}

// New creates the model. The options are passed on to the editor,
// the exit function of :q is always replaced.
func New(settings config.Settings, opts ...editor.Option) Model {
	m := Model{
		layout:   bl.New(),
		keyInput: keyinput.New(settings.TabWidth),
		settings: settings,
		styles:   theme.New(settings),
		exit:     &exitRequest{},
	}

	opts = append(
		[]editor.Option{editor.WithFileName(settings.FileNamePlaceholder)},
		opts...,
	)
	opts = append(opts, editor.WithExit(m.requestExit))
	m.editor = editor.New(opts...)

	// the command line can't hold more than one line of a paste
	m.keyInput.SingleLine = m.editor.IsCommandMode

	if settings.LineNumbers {
		m.gutterID = m.layout.Add("width 5")
	}
	m.editorID = m.layout.Add("grow")

	return m
}

func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		width, height := theme.TerminalSize()
		return tea.WindowSizeMsg{Width: width, Height: height}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		m.editor.HandleEvents(m.keyInput.HandleKey(msg)...)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.editor.ResizeCommandLine(msg.Width)

		// Convert WindowSizeMsg to BubbleLayoutMsg.
		return m, func() tea.Msg {
			return m.layout.Resize(
				msg.Width,
				max(msg.Height-commandBarHeight, 1),
			)
		}

	case bl.BubbleLayoutMsg:
		if m.settings.LineNumbers {
			m.gutterSize, _ = msg.Size(m.gutterID)
		}
		m.editorSize, _ = msg.Size(m.editorID)
		m.editor.Resize(m.editorSize.Height, m.editorSize.Width)
	}

	if m.exit.requested || !m.editor.Running() {
		debug.LogInfo("quitting")
		return m, tea.Quit
	}

	return m, nil
}

// Editor returns the editor driven by the model
func (m Model) Editor() *editor.Editor { return m.editor }

// ExitCode reports whether :q asked for the process to exit
// and with which code
func (m Model) ExitCode() (int, bool) {
	return m.exit.code, m.exit.requested
}

// requestExit is handed to the editor as the exit of :q.
// The process is left running until the program has shut down.
func (m Model) requestExit(code int) {
	m.exit.requested = true
	m.exit.code = code
}
