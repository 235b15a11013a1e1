package widget

import (
	"testing"

	tui "github.com/grindlemire/scrollsnap"
)

// mount renders root over data on a width x height mock terminal.
func mount[T any](t *testing.T, root tui.Widget[T], data T, width, height int) (*tui.App[T], *tui.MockTerminal) {
	t.Helper()
	term := tui.NewMockTerminal(width, height)
	app, err := tui.NewAppWithIO[T](term, tui.NewMockEventReader(), root, data)
	if err != nil {
		t.Fatalf("NewAppWithIO: %v", err)
	}
	t.Cleanup(func() { app.Close() })
	app.Render()
	return app, term
}

func lines(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('a' + i%26))
	}
	return out
}

func stringList() *List[[]string, string] {
	return NewList(func(s []string) []string { return s }, func() tui.Widget[string] {
		return NewLabel(func(s string) string { return s })
	})
}
