package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// ANSITerminal implements Terminal using ANSI escape sequences.
type ANSITerminal struct {
	out       io.Writer
	esc       *escBuilder
	lastStyle Style
	inFd      int
	outFd     int
	rawState  *term.State
}

// NewANSITerminal creates an ANSI terminal writing to out and switching
// in into raw mode on demand. File descriptors are only available when
// out and in are *os.File.
func NewANSITerminal(out io.Writer, in io.Reader) *ANSITerminal {
	t := &ANSITerminal{
		out:   out,
		esc:   newEscBuilder(4096),
		inFd:  -1,
		outFd: -1,
	}
	if f, ok := out.(*os.File); ok {
		t.outFd = int(f.Fd())
	}
	if f, ok := in.(*os.File); ok {
		t.inFd = int(f.Fd())
	}
	return t
}

// Size returns the terminal dimensions.
// Returns a default of 80x24 if the size cannot be determined.
func (t *ANSITerminal) Size() (width, height int) {
	if t.outFd < 0 {
		return 80, 24
	}
	w, h, err := term.GetSize(t.outFd)
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

// Flush writes the given cell changes, moving the cursor only when the
// next change is not adjacent to the previous one.
func (t *ANSITerminal) Flush(changes []CellChange) {
	if len(changes) == 0 {
		return
	}

	t.esc.Reset()
	lastX, lastY := -1, -1

	for _, ch := range changes {
		// The primary cell of a wide rune already covered this column.
		if ch.Cell.IsContinuation() {
			continue
		}
		if ch.Y != lastY || ch.X != lastX+1 {
			t.esc.MoveTo(ch.X, ch.Y)
		}
		if !ch.Cell.Style.Equal(t.lastStyle) {
			t.esc.SetStyle(ch.Cell.Style)
			t.lastStyle = ch.Cell.Style
		}
		if ch.Cell.Rune != 0 {
			t.esc.WriteRune(ch.Cell.Rune)
		} else {
			t.esc.WriteRune(' ')
		}
		lastX = ch.X + int(ch.Cell.Width) - 1
		lastY = ch.Y
	}

	t.out.Write(t.esc.Bytes())
}

// Clear clears the entire terminal screen.
func (t *ANSITerminal) Clear() {
	t.esc.Reset()
	t.esc.ResetStyle()
	t.esc.MoveTo(0, 0)
	t.esc.ClearScreen()
	t.out.Write(t.esc.Bytes())
	t.lastStyle = NewStyle()
}

// HideCursor makes the cursor invisible.
func (t *ANSITerminal) HideCursor() {
	t.write((*escBuilder).HideCursor)
}

// ShowCursor makes the cursor visible.
func (t *ANSITerminal) ShowCursor() {
	t.write((*escBuilder).ShowCursor)
}

// EnterAltScreen switches to the alternate screen buffer.
func (t *ANSITerminal) EnterAltScreen() {
	t.write((*escBuilder).EnterAltScreen)
}

// ExitAltScreen switches back to the main screen buffer.
func (t *ANSITerminal) ExitAltScreen() {
	t.write((*escBuilder).ExitAltScreen)
}

// EnableMouse turns on SGR mouse reporting.
func (t *ANSITerminal) EnableMouse() {
	t.write((*escBuilder).EnableMouse)
}

// DisableMouse turns off mouse reporting.
func (t *ANSITerminal) DisableMouse() {
	t.write((*escBuilder).DisableMouse)
}

// EnterRawMode puts the input terminal into raw mode.
func (t *ANSITerminal) EnterRawMode() error {
	if t.inFd < 0 {
		return errNotATerminal
	}
	state, err := term.MakeRaw(t.inFd)
	if err != nil {
		return err
	}
	t.rawState = state
	return nil
}

// ExitRawMode restores the terminal to the mode saved by EnterRawMode.
func (t *ANSITerminal) ExitRawMode() error {
	if t.rawState == nil {
		return nil
	}
	err := term.Restore(t.inFd, t.rawState)
	t.rawState = nil
	return err
}

func (t *ANSITerminal) write(emit func(*escBuilder)) {
	t.esc.Reset()
	emit(t.esc)
	t.out.Write(t.esc.Bytes())
}
