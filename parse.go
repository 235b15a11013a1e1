package tui

import "unicode/utf8"

// parseInput parses buffered bytes into events.
// Handles printable runes, control characters, CSI cursor/navigation keys,
// SS3 arrows, SGR mouse reports and Alt+key.
func parseInput(data []byte) []Event {
	var events []Event
	i := 0

	for i < len(data) {
		b := data[i]

		if b == 0x1b {
			if i+1 >= len(data) {
				events = append(events, KeyEvent{Key: KeyEscape})
				i++
				continue
			}
			switch next := data[i+1]; {
			case next == '[':
				ev, consumed := parseCSISequence(data[i:])
				if consumed > 0 {
					if ev != nil {
						events = append(events, ev)
					}
					i += consumed
					continue
				}
			case next == 'O' && i+2 < len(data):
				if key := parseSS3(data[i+2]); key != KeyNone {
					events = append(events, KeyEvent{Key: key})
					i += 3
					continue
				}
			case next >= 0x20 && next < 0x7f:
				events = append(events, KeyEvent{Key: KeyRune, Rune: rune(next), Mod: ModAlt})
				i += 2
				continue
			}
			events = append(events, KeyEvent{Key: KeyEscape})
			i++
			continue
		}

		if b < 0x20 {
			if key := controlToKey(b); key != KeyNone {
				events = append(events, KeyEvent{Key: key})
			}
			i++
			continue
		}

		// DEL is backspace on most terminals.
		if b == 0x7f {
			events = append(events, KeyEvent{Key: KeyBackspace})
			i++
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			i++
			continue
		}
		events = append(events, KeyEvent{Key: KeyRune, Rune: r})
		i += size
	}

	return events
}

// controlToKey converts a control character (0x00-0x1F) to a Key.
func controlToKey(b byte) Key {
	switch b {
	case 0x03:
		return KeyCtrlC
	case 0x04:
		return KeyCtrlD
	case 0x08:
		return KeyBackspace
	case 0x09:
		return KeyTab
	case 0x0a, 0x0d:
		return KeyEnter
	case 0x0c:
		return KeyCtrlL
	default:
		return KeyNone
	}
}

// parseCSISequence parses a CSI escape sequence starting at data[0].
// Returns the event (nil for recognised but ignored sequences) and the
// number of bytes consumed, or 0 if the sequence is malformed or incomplete.
func parseCSISequence(data []byte) (Event, int) {
	if len(data) < 3 || data[0] != 0x1b || data[1] != '[' {
		return nil, 0
	}

	i := 2
	sgrMouse := false
	if data[i] == '<' {
		sgrMouse = true
		i++
	}

	var params []int
	current := 0
	hasParam := false

	for i < len(data) {
		b := data[i]
		switch {
		case b >= '0' && b <= '9':
			current = current*10 + int(b-'0')
			hasParam = true
		case b == ';':
			params = append(params, current)
			current = 0
			hasParam = false
		case b >= 0x40 && b <= 0x7e:
			if hasParam {
				params = append(params, current)
			}
			if sgrMouse {
				return parseSGRMouse(params, b), i + 1
			}
			key, mod := parseCSI(params, b)
			if key == KeyNone {
				return nil, i + 1
			}
			return KeyEvent{Key: key, Mod: mod}, i + 1
		default:
			return nil, 0
		}
		i++
	}
	return nil, 0
}

// parseSGRMouse decodes "CSI < button ; x ; y M|m". Coordinates are 1-based
// on the wire.
func parseSGRMouse(params []int, final byte) Event {
	if len(params) < 3 {
		return nil
	}
	code := params[0]
	ev := MouseEvent{X: params[1] - 1, Y: params[2] - 1, Release: final == 'm'}
	if code&4 != 0 {
		ev.Mod |= ModShift
	}
	if code&8 != 0 {
		ev.Mod |= ModAlt
	}
	if code&16 != 0 {
		ev.Mod |= ModCtrl
	}
	switch {
	case code&64 != 0 && code&1 == 0:
		ev.Button = MouseWheelUp
	case code&64 != 0:
		ev.Button = MouseWheelDown
	case code&3 == 1:
		ev.Button = MouseMiddle
	case code&3 == 2:
		ev.Button = MouseRight
	default:
		ev.Button = MouseLeft
	}
	return ev
}

// parseCSI maps a complete non-mouse CSI sequence to a key.
func parseCSI(params []int, final byte) (Key, Modifier) {
	mod := ModNone
	if len(params) >= 2 {
		mod = decodeModifier(params[1])
	}

	switch final {
	case 'A':
		return KeyUp, mod
	case 'B':
		return KeyDown, mod
	case 'C':
		return KeyRight, mod
	case 'D':
		return KeyLeft, mod
	case 'H':
		return KeyHome, mod
	case 'F':
		return KeyEnd, mod
	case '~':
		if len(params) == 0 {
			return KeyNone, ModNone
		}
		switch params[0] {
		case 1, 7:
			return KeyHome, mod
		case 3:
			return KeyDelete, mod
		case 4, 8:
			return KeyEnd, mod
		case 5:
			return KeyPageUp, mod
		case 6:
			return KeyPageDown, mod
		}
	}
	return KeyNone, ModNone
}

// parseSS3 parses the final byte of an SS3 sequence.
func parseSS3(b byte) Key {
	switch b {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	case 'H':
		return KeyHome
	case 'F':
		return KeyEnd
	}
	return KeyNone
}

// decodeModifier decodes the xterm modifier parameter.
// The parameter is encoded as: 1 + (shift ? 1 : 0) + (alt ? 2 : 0) + (ctrl ? 4 : 0)
func decodeModifier(param int) Modifier {
	if param <= 1 {
		return ModNone
	}
	flags := param - 1
	var mod Modifier
	if flags&1 != 0 {
		mod |= ModShift
	}
	if flags&2 != 0 {
		mod |= ModAlt
	}
	if flags&4 != 0 {
		mod |= ModCtrl
	}
	return mod
}
