package tui

import "strings"

// MockTerminal is a Terminal for tests. It applies flushed cell changes to
// an in-memory grid and records mode switches.
type MockTerminal struct {
	width, height int
	cells         []Cell
	cursorHidden  bool
	inRawMode     bool
	inAltScreen   bool
	mouseEnabled  bool
	flushCount    int
}

// Ensure MockTerminal implements Terminal.
var _ Terminal = (*MockTerminal)(nil)

// NewMockTerminal creates a new mock terminal with the given dimensions.
func NewMockTerminal(width, height int) *MockTerminal {
	m := &MockTerminal{}
	m.Resize(width, height)
	return m
}

// Size returns the terminal dimensions.
func (m *MockTerminal) Size() (width, height int) {
	return m.width, m.height
}

// Flush applies the given cell changes to the mock terminal's grid. A wide
// rune also covers the cell to its right, as the cursor advances past it on
// a real terminal.
func (m *MockTerminal) Flush(changes []CellChange) {
	m.flushCount++
	for _, ch := range changes {
		if ch.X < 0 || ch.X >= m.width || ch.Y < 0 || ch.Y >= m.height {
			continue
		}
		m.cells[ch.Y*m.width+ch.X] = ch.Cell
		if ch.Cell.Width == 2 && ch.X+1 < m.width {
			m.cells[ch.Y*m.width+ch.X+1] = Cell{}
		}
	}
}

// Clear clears the entire terminal to spaces with default style.
func (m *MockTerminal) Clear() {
	blank := NewCell(' ', NewStyle())
	for i := range m.cells {
		m.cells[i] = blank
	}
}

// HideCursor makes the cursor invisible.
func (m *MockTerminal) HideCursor() { m.cursorHidden = true }

// ShowCursor makes the cursor visible.
func (m *MockTerminal) ShowCursor() { m.cursorHidden = false }

// EnterRawMode simulates entering raw mode.
func (m *MockTerminal) EnterRawMode() error {
	m.inRawMode = true
	return nil
}

// ExitRawMode simulates exiting raw mode.
func (m *MockTerminal) ExitRawMode() error {
	m.inRawMode = false
	return nil
}

// EnterAltScreen simulates entering the alternate screen buffer.
func (m *MockTerminal) EnterAltScreen() { m.inAltScreen = true }

// ExitAltScreen simulates exiting the alternate screen buffer.
func (m *MockTerminal) ExitAltScreen() { m.inAltScreen = false }

// EnableMouse simulates enabling mouse event reporting.
func (m *MockTerminal) EnableMouse() { m.mouseEnabled = true }

// DisableMouse simulates disabling mouse event reporting.
func (m *MockTerminal) DisableMouse() { m.mouseEnabled = false }

// --- Test helper methods ---

// CellAt returns the cell at the given position.
func (m *MockTerminal) CellAt(x, y int) Cell {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Cell{}
	}
	return m.cells[y*m.width+x]
}

// StringTrimmed returns the terminal content with trailing spaces removed from each line.
func (m *MockTerminal) StringTrimmed() string {
	lines := make([]string, m.height)
	for y := 0; y < m.height; y++ {
		var line strings.Builder
		for x := 0; x < m.width; x++ {
			cell := m.cells[y*m.width+x]
			if cell.IsContinuation() && cell.Rune == 0 && x > 0 && m.cells[y*m.width+x-1].Width == 2 {
				continue
			}
			if cell.Rune == 0 {
				line.WriteRune(' ')
			} else {
				line.WriteRune(cell.Rune)
			}
		}
		lines[y] = strings.TrimRight(line.String(), " ")
	}
	return strings.Join(lines, "\n")
}

// Line returns row y with trailing spaces removed.
func (m *MockTerminal) Line(y int) string {
	lines := strings.Split(m.StringTrimmed(), "\n")
	if y < 0 || y >= len(lines) {
		return ""
	}
	return lines[y]
}

// FlushCount returns how many times Flush was called.
func (m *MockTerminal) FlushCount() int { return m.flushCount }

// IsCursorHidden returns whether the cursor is hidden.
func (m *MockTerminal) IsCursorHidden() bool { return m.cursorHidden }

// IsInRawMode returns whether the terminal is in raw mode.
func (m *MockTerminal) IsInRawMode() bool { return m.inRawMode }

// IsInAltScreen returns whether the terminal is using the alternate screen buffer.
func (m *MockTerminal) IsInAltScreen() bool { return m.inAltScreen }

// IsMouseEnabled returns whether mouse event reporting is enabled.
func (m *MockTerminal) IsMouseEnabled() bool { return m.mouseEnabled }

// Resize changes the terminal dimensions and blanks the grid.
func (m *MockTerminal) Resize(width, height int) {
	m.width = width
	m.height = height
	m.cells = make([]Cell, width*height)
	m.Clear()
}
