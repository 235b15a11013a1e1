package widget

import (
	"strings"

	tui "github.com/grindlemire/scrollsnap"
)

// Label displays text derived from the data. Text may span several lines.
type Label[T any] struct {
	text  func(T) string
	style tui.Style
	lines []string
}

// NewLabel creates a label whose text is recomputed from the data on
// every update.
func NewLabel[T any](text func(T) string) *Label[T] {
	return &Label[T]{text: text, style: tui.NewStyle()}
}

// Text creates a label with fixed text.
func Text[T any](s string) *Label[T] {
	return NewLabel(func(T) string { return s })
}

// WithStyle sets the text style.
func (l *Label[T]) WithStyle(s tui.Style) *Label[T] {
	l.style = s
	return l
}

func (l *Label[T]) Event(*tui.EventCtx, tui.Event, *T) {}

func (l *Label[T]) Lifecycle(*tui.LifecycleCtx, tui.LifecycleEvent, T) {}

func (l *Label[T]) Update(ctx *tui.UpdateCtx, old, data T) {
	if l.text(old) != l.text(data) {
		ctx.RequestLayout()
	}
}

func (l *Label[T]) Layout(_ *tui.LayoutCtx, bc tui.Constraints, data T) tui.Size {
	l.lines = strings.Split(l.text(data), "\n")
	width := 0
	for _, line := range l.lines {
		width = max(width, tui.StringWidth(line))
	}
	return bc.Constrain(tui.Size{Width: width, Height: len(l.lines)})
}

func (l *Label[T]) Paint(ctx *tui.PaintCtx, _ T) {
	for y, line := range l.lines {
		ctx.SetString(0, y, line, l.style)
	}
}
