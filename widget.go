package tui

// Widget is a node in the retained widget tree. The App calls the five
// methods in the fixed order event, lifecycle, update, layout, paint, always
// from its loop goroutine. Only Event may mutate the application data.
type Widget[T any] interface {
	Event(ctx *EventCtx, ev Event, data *T)
	Lifecycle(ctx *LifecycleCtx, ev LifecycleEvent, data T)
	Update(ctx *UpdateCtx, old, data T)
	Layout(ctx *LayoutCtx, bc Constraints, data T) Size
	Paint(ctx *PaintCtx, data T)
}

// WidgetPod owns a child widget together with the position its parent gave
// it. Containers hold their children in pods and forward every phase
// through them.
type WidgetPod[T any] struct {
	inner  Widget[T]
	origin Point
	size   Size
	added  bool
}

// NewWidgetPod wraps w.
func NewWidgetPod[T any](w Widget[T]) *WidgetPod[T] {
	return &WidgetPod[T]{inner: w}
}

// Widget returns the wrapped widget.
func (p *WidgetPod[T]) Widget() Widget[T] { return p.inner }

// SetOrigin places the child relative to its parent. Call after Layout.
func (p *WidgetPod[T]) SetOrigin(pt Point) { p.origin = pt }

// Origin returns the position set by the parent.
func (p *WidgetPod[T]) Origin() Point { return p.origin }

// Size returns the size measured by the last Layout.
func (p *WidgetPod[T]) Size() Size { return p.size }

// Rect returns the child's rectangle in parent coordinates.
func (p *WidgetPod[T]) Rect() Rect {
	return Rect{X: p.origin.X, Y: p.origin.Y, Width: p.size.Width, Height: p.size.Height}
}

// IsAdded reports whether the child has received LifecycleWidgetAdded.
func (p *WidgetPod[T]) IsAdded() bool { return p.added }

// Event forwards ev unless it was already handled. Mouse events outside the
// child are dropped; inside ones are translated into child coordinates.
func (p *WidgetPod[T]) Event(ctx *EventCtx, ev Event, data *T) {
	if ctx.IsHandled() {
		return
	}
	if me, ok := ev.(MouseEvent); ok {
		if !p.Rect().Contains(me.X, me.Y) {
			return
		}
		me.X -= p.origin.X
		me.Y -= p.origin.Y
		ev = me
	}
	p.inner.Event(ctx, ev, data)
}

// Lifecycle forwards ev, turning routing events into LifecycleWidgetAdded for
// a child that has not been added yet.
func (p *WidgetPod[T]) Lifecycle(ctx *LifecycleCtx, ev LifecycleEvent, data T) {
	switch ev.(type) {
	case LifecycleWidgetAdded, LifecycleChildrenChanged:
		if !p.added {
			p.added = true
			p.inner.Lifecycle(ctx, LifecycleWidgetAdded{}, data)
			return
		}
		p.inner.Lifecycle(ctx, LifecycleChildrenChanged{}, data)
	default:
		p.inner.Lifecycle(ctx, ev, data)
	}
}

// Update forwards to the child.
func (p *WidgetPod[T]) Update(ctx *UpdateCtx, old, data T) {
	p.inner.Update(ctx, old, data)
}

// Layout measures the child and records its size.
func (p *WidgetPod[T]) Layout(ctx *LayoutCtx, bc Constraints, data T) Size {
	p.size = p.inner.Layout(ctx, bc, data)
	return p.size
}

// Paint paints the child at its origin, clipped to its rectangle.
func (p *WidgetPod[T]) Paint(ctx *PaintCtx, data T) {
	child := ctx.WithClip(p.Rect()).WithOffset(p.origin)
	if child.Clip().IsEmpty() {
		return
	}
	p.inner.Paint(child, data)
}
