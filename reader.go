package tui

import "time"

// EventReader reads events from the terminal.
// It is designed for polling-based event loops.
type EventReader interface {
	// PollEvent reads the next event with a timeout.
	// Returns (event, true) if an event was read, or (nil, false) on timeout.
	// A negative timeout blocks until input arrives.
	PollEvent(timeout time.Duration) (Event, bool)

	// Close releases resources. Must be called when done.
	Close() error
}

// parseInputWithRemainder parses input and returns any incomplete trailing
// UTF-8 bytes so they can be prepended to the next read.
func parseInputWithRemainder(data []byte) ([]Event, []byte) {
	remaining := findIncompleteUTF8Suffix(data)
	if len(remaining) > 0 {
		data = data[:len(data)-len(remaining)]
	}
	return parseInput(data), remaining
}

// findIncompleteUTF8Suffix finds any incomplete UTF-8 sequence at the end of data.
func findIncompleteUTF8Suffix(data []byte) []byte {
	for i := 1; i <= 3 && i <= len(data); i++ {
		b := data[len(data)-i]
		if b >= 0xC0 {
			var expected int
			switch {
			case b < 0xE0:
				expected = 2
			case b < 0xF0:
				expected = 3
			default:
				expected = 4
			}
			if i < expected {
				return data[len(data)-i:]
			}
			return nil
		}
		if b < 0x80 {
			return nil
		}
	}
	return nil
}
