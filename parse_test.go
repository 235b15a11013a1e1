package tui

import "testing"

func TestParseInput_Keys(t *testing.T) {
	type tc struct {
		input    []byte
		expected []KeyEvent
	}

	tests := map[string]tc{
		"single letter":  {input: []byte("a"), expected: []KeyEvent{{Key: KeyRune, Rune: 'a'}}},
		"multiple chars": {input: []byte("ab"), expected: []KeyEvent{{Key: KeyRune, Rune: 'a'}, {Key: KeyRune, Rune: 'b'}}},
		"utf8":           {input: []byte("日"), expected: []KeyEvent{{Key: KeyRune, Rune: '日'}}},
		"enter cr":       {input: []byte{0x0d}, expected: []KeyEvent{{Key: KeyEnter}}},
		"enter lf":       {input: []byte{0x0a}, expected: []KeyEvent{{Key: KeyEnter}}},
		"tab":            {input: []byte{0x09}, expected: []KeyEvent{{Key: KeyTab}}},
		"ctrl c":         {input: []byte{0x03}, expected: []KeyEvent{{Key: KeyCtrlC}}},
		"del":            {input: []byte{0x7f}, expected: []KeyEvent{{Key: KeyBackspace}}},
		"lone escape":    {input: []byte{0x1b}, expected: []KeyEvent{{Key: KeyEscape}}},
		"alt a":          {input: []byte{0x1b, 'a'}, expected: []KeyEvent{{Key: KeyRune, Rune: 'a', Mod: ModAlt}}},
		"csi up":         {input: []byte("\x1b[A"), expected: []KeyEvent{{Key: KeyUp}}},
		"csi down":       {input: []byte("\x1b[B"), expected: []KeyEvent{{Key: KeyDown}}},
		"ss3 right":      {input: []byte("\x1bOC"), expected: []KeyEvent{{Key: KeyRight}}},
		"home tilde":     {input: []byte("\x1b[1~"), expected: []KeyEvent{{Key: KeyHome}}},
		"end letter":     {input: []byte("\x1b[F"), expected: []KeyEvent{{Key: KeyEnd}}},
		"page up":        {input: []byte("\x1b[5~"), expected: []KeyEvent{{Key: KeyPageUp}}},
		"page down":      {input: []byte("\x1b[6~"), expected: []KeyEvent{{Key: KeyPageDown}}},
		"delete":         {input: []byte("\x1b[3~"), expected: []KeyEvent{{Key: KeyDelete}}},
		"ctrl up":        {input: []byte("\x1b[1;5A"), expected: []KeyEvent{{Key: KeyUp, Mod: ModCtrl}}},
		"shift alt down": {input: []byte("\x1b[1;4B"), expected: []KeyEvent{{Key: KeyDown, Mod: ModShift | ModAlt}}},
		"key then arrow": {input: []byte("x\x1b[A"), expected: []KeyEvent{{Key: KeyRune, Rune: 'x'}, {Key: KeyUp}}},
		"unknown csi":    {input: []byte("\x1b[99Z"), expected: nil},
		"invalid utf8":   {input: []byte{0xff, 'a'}, expected: []KeyEvent{{Key: KeyRune, Rune: 'a'}}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			events := parseInput(tt.input)
			if len(events) != len(tt.expected) {
				t.Fatalf("parseInput(%q) returned %d events, want %d", tt.input, len(events), len(tt.expected))
			}
			for i, e := range events {
				ke, ok := e.(KeyEvent)
				if !ok {
					t.Fatalf("event %d is %T, want KeyEvent", i, e)
				}
				if ke != tt.expected[i] {
					t.Errorf("event %d = %+v, want %+v", i, ke, tt.expected[i])
				}
			}
		})
	}
}

func TestParseInput_Mouse(t *testing.T) {
	type tc struct {
		input    string
		expected MouseEvent
	}

	tests := map[string]tc{
		"left press":   {input: "\x1b[<0;5;3M", expected: MouseEvent{Button: MouseLeft, X: 4, Y: 2}},
		"left release": {input: "\x1b[<0;5;3m", expected: MouseEvent{Button: MouseLeft, X: 4, Y: 2, Release: true}},
		"right":        {input: "\x1b[<2;1;1M", expected: MouseEvent{Button: MouseRight}},
		"middle":       {input: "\x1b[<1;1;1M", expected: MouseEvent{Button: MouseMiddle}},
		"wheel up":     {input: "\x1b[<64;10;20M", expected: MouseEvent{Button: MouseWheelUp, X: 9, Y: 19}},
		"wheel down":   {input: "\x1b[<65;10;20M", expected: MouseEvent{Button: MouseWheelDown, X: 9, Y: 19}},
		"ctrl wheel":   {input: "\x1b[<80;1;1M", expected: MouseEvent{Button: MouseWheelUp, Mod: ModCtrl}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			events := parseInput([]byte(tt.input))
			if len(events) != 1 {
				t.Fatalf("got %d events, want 1", len(events))
			}
			me, ok := events[0].(MouseEvent)
			if !ok {
				t.Fatalf("event is %T, want MouseEvent", events[0])
			}
			if me != tt.expected {
				t.Errorf("got %+v, want %+v", me, tt.expected)
			}
		})
	}
}

func TestParseInputWithRemainder(t *testing.T) {
	type tc struct {
		input         []byte
		wantEvents    int
		wantRemainder []byte
	}

	jp := []byte("日")

	tests := map[string]tc{
		"complete":          {input: []byte("ab"), wantEvents: 2},
		"split 3-byte rune": {input: append([]byte("a"), jp[:2]...), wantEvents: 1, wantRemainder: jp[:2]},
		"lead byte only":    {input: jp[:1], wantEvents: 0, wantRemainder: jp[:1]},
		"complete rune":     {input: jp, wantEvents: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			events, rest := parseInputWithRemainder(tt.input)
			if len(events) != tt.wantEvents {
				t.Errorf("events = %d, want %d", len(events), tt.wantEvents)
			}
			if string(rest) != string(tt.wantRemainder) {
				t.Errorf("remainder = %v, want %v", rest, tt.wantRemainder)
			}
		})
	}
}
