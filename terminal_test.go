package tui

import (
	"bytes"
	"testing"
)

func TestANSITerminal_Flush(t *testing.T) {
	type tc struct {
		changes []CellChange
		want    string
	}

	plain := NewStyle()
	tests := map[string]tc{
		"adjacent cells move once": {
			changes: []CellChange{
				{X: 0, Y: 0, Cell: NewCell('a', plain)},
				{X: 1, Y: 0, Cell: NewCell('b', plain)},
			},
			want: "\x1b[1;1Hab",
		},
		"gap moves again": {
			changes: []CellChange{
				{X: 0, Y: 0, Cell: NewCell('a', plain)},
				{X: 3, Y: 1, Cell: NewCell('b', plain)},
			},
			want: "\x1b[1;1Ha\x1b[2;4Hb",
		},
		"style change": {
			changes: []CellChange{
				{X: 0, Y: 0, Cell: NewCell('a', plain.Bold().Foreground(Red))},
			},
			want: "\x1b[1;1H\x1b[0;1;31ma",
		},
		"bright background": {
			changes: []CellChange{
				{X: 0, Y: 0, Cell: NewCell('a', plain.Background(BrightBlack))},
			},
			want: "\x1b[1;1H\x1b[0;100ma",
		},
		"wide rune skips continuation": {
			changes: []CellChange{
				{X: 0, Y: 0, Cell: NewCell('日', plain)},
				{X: 1, Y: 0, Cell: Cell{Style: plain}},
				{X: 2, Y: 0, Cell: NewCell('x', plain)},
			},
			want: "\x1b[1;1H日x",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			term := NewANSITerminal(&out, nil)
			term.Flush(tt.changes)
			if got := out.String(); got != tt.want {
				t.Errorf("Flush wrote %q, want %q", got, tt.want)
			}
		})
	}
}

func TestANSITerminal_NotATerminal(t *testing.T) {
	var out bytes.Buffer
	term := NewANSITerminal(&out, &bytes.Buffer{})

	if w, h := term.Size(); w != 80 || h != 24 {
		t.Errorf("Size() = %dx%d, want 80x24 fallback", w, h)
	}
	if err := term.EnterRawMode(); err == nil {
		t.Error("EnterRawMode on a non-file reader should fail")
	}
	if err := term.ExitRawMode(); err != nil {
		t.Errorf("ExitRawMode without raw mode = %v, want nil", err)
	}
}

func TestANSITerminal_Modes(t *testing.T) {
	type tc struct {
		call func(*ANSITerminal)
		want string
	}

	tests := map[string]tc{
		"hide cursor":      {call: (*ANSITerminal).HideCursor, want: "\x1b[?25l"},
		"show cursor":      {call: (*ANSITerminal).ShowCursor, want: "\x1b[?25h"},
		"enter alt screen": {call: (*ANSITerminal).EnterAltScreen, want: "\x1b[?1049h"},
		"exit alt screen":  {call: (*ANSITerminal).ExitAltScreen, want: "\x1b[?1049l"},
		"enable mouse":     {call: (*ANSITerminal).EnableMouse, want: "\x1b[?1000h\x1b[?1006h"},
		"disable mouse":    {call: (*ANSITerminal).DisableMouse, want: "\x1b[?1006l\x1b[?1000l"},
		"clear":            {call: (*ANSITerminal).Clear, want: "\x1b[0m\x1b[1;1H\x1b[2J"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			tt.call(NewANSITerminal(&out, nil))
			if got := out.String(); got != tt.want {
				t.Errorf("wrote %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMockTerminal_Flush(t *testing.T) {
	type tc struct {
		text string
		want string
	}

	tests := map[string]tc{
		"narrow":       {text: "abc", want: "abc"},
		"wide":         {text: "日本", want: "日本"},
		"wide between": {text: "a日b", want: "a日b"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			buf := NewBuffer(8, 1)
			buf.SetString(0, 0, tt.text, NewStyle())
			term := NewMockTerminal(8, 1)
			term.Flush(buf.Diff())
			if got := term.Line(0); got != tt.want {
				t.Errorf("Line(0) = %q, want %q", got, tt.want)
			}
		})
	}
}
