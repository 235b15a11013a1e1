package tui

import "errors"

var errNotATerminal = errors.New("tui: input is not a terminal")

// Terminal abstracts terminal operations for rendering.
// Implementations are the ANSI terminal and MockTerminal for tests.
type Terminal interface {
	// Size returns the terminal dimensions (width, height) in cells.
	Size() (width, height int)

	// Flush writes the given cell changes to the terminal.
	// Changes are expected to be in row-major order.
	Flush(changes []CellChange)

	// Clear clears the entire terminal screen.
	Clear()

	// HideCursor makes the cursor invisible.
	HideCursor()

	// ShowCursor makes the cursor visible.
	ShowCursor()

	// EnterRawMode puts the terminal into raw mode for character-by-character input.
	EnterRawMode() error

	// ExitRawMode restores the terminal to its previous mode.
	ExitRawMode() error

	// EnterAltScreen switches to the alternate screen buffer.
	EnterAltScreen()

	// ExitAltScreen switches back to the main screen buffer.
	ExitAltScreen()

	// EnableMouse turns on mouse reporting.
	EnableMouse()

	// DisableMouse turns off mouse reporting.
	DisableMouse()
}
