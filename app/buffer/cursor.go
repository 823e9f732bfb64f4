package buffer

import "github.com/mattn/go-runewidth"

// Cursor is a position within a buffer plus a scroll offset.
// The position is kept valid against the buffer by every method,
// the scroll offset is independent from it.
type Cursor struct {
	pos    Pos
	scroll Pos
	buf    *Buffer
}

// NewCursor returns a cursor at the start of buf
func NewCursor(buf *Buffer) *Cursor {
	return &Cursor{buf: buf}
}

// Position returns the current cursor position
func (c *Cursor) Position() Pos { return c.pos }

// Scroll returns the first visible row and column
func (c *Cursor) Scroll() Pos { return c.scroll }

// Set moves the cursor to p, clamped to the buffer.
func (c *Cursor) Set(p Pos) {
	c.pos = c.buf.Clamp(p)
}

// Reset moves the cursor and the scroll offset back to the origin.
func (c *Cursor) Reset() {
	c.pos = Pos{}
	c.scroll = Pos{}
}

// Left moves the cursor one character to the left.
func (c *Cursor) Left() {
	c.pos.Col = max(c.pos.Col-1, 0)
}

// Right moves the cursor one character to the right,
// at most to the end of the line.
func (c *Cursor) Right() {
	c.pos.Col = min(c.pos.Col+1, c.buf.LineLen(c.pos.Row))
}

// Up moves the cursor one line up.
func (c *Cursor) Up() {
	c.pos.Row = max(c.pos.Row-1, 0)
	c.clampCol()
}

// Down moves the cursor one line down.
// Moving past the last line grows the buffer by one empty line.
func (c *Cursor) Down() {
	c.pos.Row++
	c.buf.GrowTo(c.pos.Row)
	c.clampCol()
}

// ScrollTo moves the scroll offset so that the cursor lies within a
// viewport of height lines and width terminal cells. Non-positive sizes
// leave the corresponding axis untouched.
// The column offset stays a character index, but the text between it
// and the cursor is measured in cells, so wide characters scroll
// earlier than narrow ones.
func (c *Cursor) ScrollTo(height int, width int) {
	if height > 0 {
		c.scroll.Row = scrollAxis(c.pos.Row, c.scroll.Row, height)
	}

	if width > 0 {
		c.scroll.Col = c.scrollCol(width)
	}
}

// scrollCol returns the first visible column that keeps the cursor
// cell within width cells
func (c *Cursor) scrollCol(width int) int {
	line := c.buf.lines[c.pos.Row]
	offset := min(c.scroll.Col, c.pos.Col)

	// past the end of the line the cursor is a blank cell
	cursorWidth := 1
	if c.pos.Col < len(line) {
		cursorWidth = max(runewidth.RuneWidth(line[c.pos.Col]), 1)
	}

	used := runewidth.StringWidth(string(line[offset:c.pos.Col])) + cursorWidth

	for offset < c.pos.Col && used > width {
		used -= runewidth.RuneWidth(line[offset])
		offset++
	}

	return offset
}

func (c *Cursor) clampCol() {
	c.pos.Col = min(c.pos.Col, c.buf.LineLen(c.pos.Row))
}

func scrollAxis(pos, offset, size int) int {
	if pos < offset {
		return pos
	}
	if pos >= offset+size {
		return pos - size + 1
	}
	return offset
}
