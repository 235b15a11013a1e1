package snap

import (
	tui "github.com/grindlemire/scrollsnap"
	"github.com/grindlemire/scrollsnap/internal/debug"
	"github.com/grindlemire/scrollsnap/widget"
)

// ExtendedAtEnd is submitted by ListSnap when its content grew.
var ExtendedAtEnd = tui.NewSelector("list has been extended at the end")

// ListSnap wraps a growing widget, usually a widget.List, and submits
// ExtendedAtEnd whenever its measured height increases.
type ListSnap[T any] struct {
	inner  tui.Widget[T]
	height int
}

// NewListSnap wraps inner.
func NewListSnap[T any](inner tui.Widget[T]) *ListSnap[T] {
	return &ListSnap[T]{inner: inner}
}

func (l *ListSnap[T]) Event(ctx *tui.EventCtx, ev tui.Event, data *T) {
	l.inner.Event(ctx, ev, data)
}

func (l *ListSnap[T]) Lifecycle(ctx *tui.LifecycleCtx, ev tui.LifecycleEvent, data T) {
	l.inner.Lifecycle(ctx, ev, data)
}

func (l *ListSnap[T]) Update(ctx *tui.UpdateCtx, old, data T) {
	l.inner.Update(ctx, old, data)
}

func (l *ListSnap[T]) Layout(ctx *tui.LayoutCtx, bc tui.Constraints, data T) tui.Size {
	size := l.inner.Layout(ctx, bc, data)
	if size.Height > l.height {
		ctx.Submit(tui.NewCommand(ExtendedAtEnd))
	}
	l.height = size.Height
	return size
}

func (l *ListSnap[T]) Paint(ctx *tui.PaintCtx, data T) {
	l.inner.Paint(ctx, data)
}

// Follow is a controller for a widget.Scroll that scrolls to the bottom
// when ExtendedAtEnd arrives and when holds for the current data. It
// consumes every ExtendedAtEnd it sees, so each signal acts at most once.
type Follow[T any] struct {
	widget.BaseController[T, *widget.Scroll[T]]
	when Predicate[T]
}

// NewFollow creates a Follow controller. A nil predicate never scrolls.
func NewFollow[T any](when Predicate[T]) *Follow[T] {
	if when == nil {
		when = Never[T]
	}
	return &Follow[T]{when: when}
}

func (f *Follow[T]) Event(child *widget.Scroll[T], ctx *tui.EventCtx, ev tui.Event, data *T) {
	child.Event(ctx, ev, data)

	cmd, ok := ev.(tui.CommandEvent)
	if !ok || !cmd.Is(ExtendedAtEnd) {
		return
	}
	if f.when(*data) {
		moved := child.ScrollToEnd(tui.Vertical)
		debug.Log("follow: snapped vertical moved=%t", moved)
	}
	ctx.SetHandled()
}

// FollowScroll attaches a Follow controller to scroll.
func FollowScroll[T any](scroll *widget.Scroll[T], when Predicate[T]) *widget.Controlled[T, *widget.Scroll[T]] {
	return widget.NewControlled[T, *widget.Scroll[T]](scroll, NewFollow(when))
}
