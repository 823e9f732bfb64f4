// Package buffer holds the line-oriented text buffer of the editor and
// the cursor that navigates it.
//
// Positions handed to the buffer are clamped, never rejected, so an out of
// range row or column can not corrupt the buffer. The buffer never becomes
// empty: removing the last line is impossible and Reset without lines seeds a
// single empty one.
package buffer
