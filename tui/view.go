package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"modal-edit/app"
	"modal-edit/app/buffer"
)

// View renders the editor in its current state.
func (m Model) View() tea.View {
	var view tea.View
	view.SetContent(m.Content())
	return view
}

// Content renders the visible part of the document
// followed by the command bar
func (m Model) Content() string {
	height := m.editorSize.Height
	scroll := m.editor.Scroll()
	cursor := m.editor.Cursor()

	rows := make([]string, 0, height+commandBarHeight)

	for i := range height {
		row := scroll.Row + i
		rows = append(rows, m.renderGutter(row, cursor.Row)+m.renderLine(row, scroll.Col, cursor))
	}

	rows = append(rows, m.renderCommandBar())

	return strings.Join(rows, "\n")
}

func (m Model) renderGutter(row int, cursorRow int) string {
	if !m.settings.LineNumbers {
		return ""
	}

	width := m.gutterSize.Width

	if row >= m.editor.LineCount() {
		return m.styles.LineNumber.Width(width).Render("~")
	}

	style := m.styles.LineNumber
	if row == cursorRow {
		style = m.styles.CurrentLine
	}

	return style.Width(width).Render(strconv.Itoa(row + 1))
}

func (m Model) renderLine(row int, offset int, cursor buffer.Pos) string {
	width := m.editorSize.Width

	if row >= m.editor.LineCount() {
		return m.styles.Base.Render(strings.Repeat(" ", width))
	}

	line := []rune(m.editor.Line(row))
	showCursor := row == cursor.Row && !m.editor.IsCommandMode()

	return m.renderRunes(line, offset, cursor.Col, showCursor, width, m.styles.Base)
}

// renderRunes renders line from offset on, clipped and padded to width.
// If showCursor is set the cell at col is highlighted, past the end
// of the line the cursor is shown as a blank cell.
func (m Model) renderRunes(
	line []rune,
	offset int,
	col int,
	showCursor bool,
	width int,
	style lipgloss.Style,
) string {
	offset = min(offset, len(line))
	visible := visibleRunes(line[offset:], width)
	col -= offset

	var b strings.Builder

	if showCursor && col >= 0 && col <= len(visible) {
		cell, rest := " ", ""
		if col < len(visible) {
			cell = string(visible[col])
			rest = string(visible[col+1:])
		}

		b.WriteString(style.Render(string(visible[:col])))
		b.WriteString(m.styles.Cursor.Render(cell))
		b.WriteString(style.Render(rest))
	} else {
		b.WriteString(style.Render(string(visible)))
	}

	rendered := ansi.Truncate(b.String(), width, "")

	if pad := width - ansi.StringWidth(rendered); pad > 0 {
		rendered += m.styles.Base.Render(strings.Repeat(" ", pad))
	}

	return rendered
}

// visibleRunes returns the leading runes of line that fit into width cells
func visibleRunes(line []rune, width int) []rune {
	used := 0

	for i, r := range line {
		used += runewidth.RuneWidth(r)
		if used > width {
			return line[:i]
		}
	}

	return line
}

// renderCommandBar shows the command line in command mode, otherwise
// the mode, the result of the last command, the file name and the
// cursor position
func (m Model) renderCommandBar() string {
	width := m.width

	if m.editor.IsCommandMode() {
		line := []rune(m.editor.CommandLine())
		col := m.editor.CommandCursor().Col
		offset := m.editor.CommandScroll().Col

		return m.renderRunes(line, offset, col, true, width, m.styles.ModeCommand)
	}

	left := m.styles.ModeInsert.Render(m.editor.Mode().FullString())

	if status := m.editor.Status(); !status.Empty() {
		left += m.styles.Base.Render(" ") +
			m.styles.Status(status.Type).Render(status.Content)
	}

	pos := m.editor.Cursor()
	position := fmt.Sprintf(" %d:%d", pos.Row+1, pos.Col+1)

	nameWidth := max(width-lipgloss.Width(left)-len(position)-1, 0)
	name := truncate.StringWithTail(m.editor.FileName(), uint(nameWidth), "…")

	right := m.styles.FileName.Render(name) + m.styles.Base.Render(position)
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)

	bar := left + m.styles.Base.Render(strings.Repeat(" ", gap)) + right

	return ansi.Truncate(bar, width, "")
}

// Title is the terminal window title for the operating file
func (m Model) Title() string {
	return app.Name() + " - " + m.editor.FileName()
}
