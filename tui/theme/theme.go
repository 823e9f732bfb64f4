package theme

import (
	"os"

	"github.com/charmbracelet/lipgloss/v2"
	"golang.org/x/term"

	"modal-edit/app/config"
	"modal-edit/app/message"
)

var ColourError = lipgloss.Color("#e06c75")

// Styles holds the styles the editor is rendered with
type Styles struct {
	Base        lipgloss.Style
	Cursor      lipgloss.Style
	LineNumber  lipgloss.Style
	CurrentLine lipgloss.Style
	ModeInsert  lipgloss.Style
	ModeCommand lipgloss.Style
	Success     lipgloss.Style
	Error       lipgloss.Style
	FileName    lipgloss.Style
}

// New builds the styles from the resolved settings
func New(s config.Settings) Styles {
	base := lipgloss.NewStyle().
		Background(lipgloss.Color(s.Background)).
		Foreground(lipgloss.Color(s.Foreground))

	return Styles{
		Base:   base,
		Cursor: base.Reverse(true),
		LineNumber: base.
			Foreground(lipgloss.Color("#5c6370")).
			Align(lipgloss.Right).
			PaddingRight(1),
		CurrentLine: base.
			Align(lipgloss.Right).
			PaddingRight(1),
		ModeInsert: base.
			Foreground(lipgloss.Color(s.ModeInsert)).
			Bold(true),
		ModeCommand: base.
			Foreground(lipgloss.Color(s.ModeCommand)),
		Success:  base,
		Error:    base.Foreground(ColourError),
		FileName: base.Italic(true),
	}
}

// Status returns the style of a status message
func (s Styles) Status(t message.Type) lipgloss.Style {
	if t == message.Error {
		return s.Error
	}
	return s.Success
}

// TerminalSize determines the current terminal size,
// falling back to 80x24
func TerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return 80, 24
	}
	return width, height
}
