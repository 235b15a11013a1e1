package tui

import (
	"strconv"
	"unicode/utf8"
)

// escBuilder builds ANSI escape sequences into a reusable buffer.
type escBuilder struct {
	buf []byte
}

// newEscBuilder creates a new escape sequence builder with the given initial capacity.
func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{
		buf: make([]byte, 0, capacity),
	}
}

// Reset clears the buffer for reuse.
func (e *escBuilder) Reset() {
	e.buf = e.buf[:0]
}

// Bytes returns the built escape sequence.
func (e *escBuilder) Bytes() []byte {
	return e.buf
}

func (e *escBuilder) csi(params string, final byte) {
	e.buf = append(e.buf, '\x1b', '[')
	e.buf = append(e.buf, params...)
	e.buf = append(e.buf, final)
}

// MoveTo moves the cursor to the specified position.
// x and y are 0-indexed; ANSI sequences use 1-indexed positions.
func (e *escBuilder) MoveTo(x, y int) {
	e.buf = append(e.buf, '\x1b', '[')
	e.buf = strconv.AppendInt(e.buf, int64(y+1), 10)
	e.buf = append(e.buf, ';')
	e.buf = strconv.AppendInt(e.buf, int64(x+1), 10)
	e.buf = append(e.buf, 'H')
}

// ClearScreen clears the entire screen.
func (e *escBuilder) ClearScreen() { e.csi("2", 'J') }

// HideCursor makes the cursor invisible.
func (e *escBuilder) HideCursor() { e.csi("?25", 'l') }

// ShowCursor makes the cursor visible.
func (e *escBuilder) ShowCursor() { e.csi("?25", 'h') }

// EnterAltScreen switches to the alternate screen buffer.
func (e *escBuilder) EnterAltScreen() { e.csi("?1049", 'h') }

// ExitAltScreen switches back to the main screen buffer.
func (e *escBuilder) ExitAltScreen() { e.csi("?1049", 'l') }

// EnableMouse enables button tracking with SGR-1006 coordinates, which is
// what carries wheel events.
func (e *escBuilder) EnableMouse() {
	e.csi("?1000", 'h')
	e.csi("?1006", 'h')
}

// DisableMouse disables mouse reporting.
func (e *escBuilder) DisableMouse() {
	e.csi("?1006", 'l')
	e.csi("?1000", 'l')
}

// ResetStyle resets all text attributes to default.
func (e *escBuilder) ResetStyle() { e.csi("0", 'm') }

// SetStyle emits a full SGR sequence for s, starting from a reset.
func (e *escBuilder) SetStyle(s Style) {
	e.buf = append(e.buf, '\x1b', '[', '0')
	if s.HasAttr(AttrBold) {
		e.buf = append(e.buf, ';', '1')
	}
	if s.HasAttr(AttrDim) {
		e.buf = append(e.buf, ';', '2')
	}
	if s.HasAttr(AttrUnderline) {
		e.buf = append(e.buf, ';', '4')
	}
	if s.HasAttr(AttrReverse) {
		e.buf = append(e.buf, ';', '7')
	}
	e.appendColor(s.Fg, 30, 90, 38)
	e.appendColor(s.Bg, 40, 100, 48)
	e.buf = append(e.buf, 'm')
}

// appendColor writes the basic code for palette entries 0-15 and the
// 256-color form for everything else.
func (e *escBuilder) appendColor(c Color, normal, bright, extended int) {
	if c.IsDefault() {
		return
	}
	idx := int(c.ANSI())
	e.buf = append(e.buf, ';')
	switch {
	case idx < 8:
		e.buf = strconv.AppendInt(e.buf, int64(normal+idx), 10)
	case idx < 16:
		e.buf = strconv.AppendInt(e.buf, int64(bright+idx-8), 10)
	default:
		e.buf = strconv.AppendInt(e.buf, int64(extended), 10)
		e.buf = append(e.buf, ';', '5', ';')
		e.buf = strconv.AppendInt(e.buf, int64(idx), 10)
	}
}

// WriteRune appends a UTF-8 encoded rune to the buffer.
func (e *escBuilder) WriteRune(r rune) {
	e.buf = utf8.AppendRune(e.buf, r)
}
