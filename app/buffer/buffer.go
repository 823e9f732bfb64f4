package buffer

import (
	"slices"
	"strings"
)

// Pos is a position inside a Buffer.
// Col counts characters and may be equal to the length of the line,
// which is the end-of-line position.
type Pos struct {
	Row int
	Col int
}

// Buffer is an ordered list of mutable lines.
// A Buffer always holds at least one, possibly empty, line.
type Buffer struct {
	lines [][]rune
}

// New creates a buffer seeded with the given lines.
// Without any lines the buffer holds a single empty line.
func New(lines ...string) *Buffer {
	buf := &Buffer{}
	buf.Reset(lines...)
	return buf
}

// FromText creates a buffer by splitting text on "\n".
// It is the inverse of Text.
func FromText(text string) *Buffer {
	return New(strings.Split(text, "\n")...)
}

// Reset replaces the whole content of the buffer.
func (b *Buffer) Reset(lines ...string) {
	b.lines = make([][]rune, 0, max(len(lines), 1))
	for _, l := range lines {
		b.lines = append(b.lines, []rune(l))
	}

	if len(b.lines) == 0 {
		b.lines = append(b.lines, []rune{})
	}
}

// LineCount returns the number of lines in the buffer
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the line at row.
// Rows outside of the buffer return an empty string.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return string(b.lines[row])
}

// LineLen returns the number of characters in the line at row.
func (b *Buffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

// Lines returns a copy of all lines
func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.lines))
	for i, l := range b.lines {
		lines[i] = string(l)
	}
	return lines
}

// Text returns the lines joined with "\n", without a trailing newline.
func (b *Buffer) Text() string {
	return strings.Join(b.Lines(), "\n")
}

// Clamp returns the nearest valid position to p.
func (b *Buffer) Clamp(p Pos) Pos {
	p.Row = clamp(p.Row, 0, len(b.lines)-1)
	p.Col = clamp(p.Col, 0, len(b.lines[p.Row]))
	return p
}

// InsertChar inserts ch into the line at row before col.
func (b *Buffer) InsertChar(row int, col int, ch rune) {
	p := b.Clamp(Pos{row, col})
	b.lines[p.Row] = slices.Insert(b.lines[p.Row], p.Col, ch)
}

// SplitLine breaks the line at row into the text before col and
// the text from col on. The latter becomes a new line below.
// It returns the start of the new line.
func (b *Buffer) SplitLine(row int, col int) Pos {
	p := b.Clamp(Pos{row, col})
	line := b.lines[p.Row]

	head := slices.Clone(line[:p.Col])
	tail := slices.Clone(line[p.Col:])

	b.lines[p.Row] = head
	b.lines = slices.Insert(b.lines, p.Row+1, tail)

	return Pos{Row: p.Row + 1, Col: 0}
}

// JoinWithPrevious appends the line at row to the line above it and
// removes it. It returns the position in the joined line where the
// appended text starts.
// The first line has nothing to join with and is left as is.
func (b *Buffer) JoinWithPrevious(row int) Pos {
	if row <= 0 || row >= len(b.lines) {
		return b.Clamp(Pos{Row: row})
	}

	prevLen := len(b.lines[row-1])
	b.lines[row-1] = append(b.lines[row-1], b.lines[row]...)
	b.lines = slices.Delete(b.lines, row, row+1)

	return Pos{Row: row - 1, Col: prevLen}
}

// DeleteCharBefore removes the character before col.
// At the start of a line the line is joined with the previous one,
// at the start of the buffer nothing happens.
// It returns the position the cursor should move to.
func (b *Buffer) DeleteCharBefore(row int, col int) Pos {
	p := b.Clamp(Pos{row, col})

	switch {
	case p.Col > 0:
		b.lines[p.Row] = slices.Delete(b.lines[p.Row], p.Col-1, p.Col)
		return Pos{Row: p.Row, Col: p.Col - 1}

	case p.Row == 0:
		return Pos{}

	default:
		return b.JoinWithPrevious(p.Row)
	}
}

// GrowTo appends empty lines until row is a valid row.
func (b *Buffer) GrowTo(row int) {
	for len(b.lines) <= row {
		b.lines = append(b.lines, []rune{})
	}
}

func clamp(v, low, high int) int {
	if high < low {
		low, high = high, low
	}
	return min(high, max(low, v))
}
