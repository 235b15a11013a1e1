package widget

import (
	"testing"

	tui "github.com/grindlemire/scrollsnap"
)

func TestLabel(t *testing.T) {
	type tc struct {
		text  string
		width int
		want  []string
	}

	tests := map[string]tc{
		"single line": {
			text:  "hello",
			width: 10,
			want:  []string{"hello"},
		},
		"multi line": {
			text:  "one\ntwo",
			width: 10,
			want:  []string{"one", "two"},
		},
		"clipped": {
			text:  "truncate me",
			width: 5,
			want:  []string{"trunc"},
		},
		"wide runes": {
			text:  "日本",
			width: 10,
			want:  []string{"日本"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, term := mount[string](t, NewLabel(func(s string) string { return s }), tt.text, tt.width, 3)
			for y, want := range tt.want {
				if got := term.Line(y); got != want {
					t.Errorf("row %d = %q, want %q", y, got, want)
				}
			}
		})
	}
}

func TestLabel_UpdateRepaintsNewText(t *testing.T) {
	app, term := mount[int](t, NewLabel(func(n int) string { return string(rune('0' + n)) }), 1, 4, 1)

	app.Apply(func(n *int) { *n = 7 })
	app.Render()
	if got := term.Line(0); got != "7" {
		t.Errorf("row 0 = %q, want %q", got, "7")
	}
}

func TestPadding(t *testing.T) {
	_, term := mount[string](t, NewPadding[string](tui.Edges{Top: 1, Left: 2}, Text[string]("x")), "", 6, 3)

	if got := term.Line(0); got != "" {
		t.Errorf("row 0 = %q, want empty", got)
	}
	if got := term.Line(1); got != "  x" {
		t.Errorf("row 1 = %q, want %q", got, "  x")
	}
}
