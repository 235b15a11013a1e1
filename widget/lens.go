package widget

import tui "github.com/grindlemire/scrollsnap"

// Lens presents a widget over U as a widget over T. get projects the parent
// data; set writes the child's data back after an event.
type Lens[T, U any] struct {
	inner tui.Widget[U]
	get   func(T) U
	set   func(*T, U)
}

// NewLens wraps inner. set may be nil for a read-only projection.
func NewLens[T, U any](get func(T) U, set func(*T, U), inner tui.Widget[U]) *Lens[T, U] {
	return &Lens[T, U]{inner: inner, get: get, set: set}
}

func (l *Lens[T, U]) Event(ctx *tui.EventCtx, ev tui.Event, data *T) {
	u := l.get(*data)
	l.inner.Event(ctx, ev, &u)
	if l.set != nil {
		l.set(data, u)
	}
}

func (l *Lens[T, U]) Lifecycle(ctx *tui.LifecycleCtx, ev tui.LifecycleEvent, data T) {
	l.inner.Lifecycle(ctx, ev, l.get(data))
}

func (l *Lens[T, U]) Update(ctx *tui.UpdateCtx, old, data T) {
	l.inner.Update(ctx, l.get(old), l.get(data))
}

func (l *Lens[T, U]) Layout(ctx *tui.LayoutCtx, bc tui.Constraints, data T) tui.Size {
	return l.inner.Layout(ctx, bc, l.get(data))
}

func (l *Lens[T, U]) Paint(ctx *tui.PaintCtx, data T) {
	l.inner.Paint(ctx, l.get(data))
}
