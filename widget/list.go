package widget

import tui "github.com/grindlemire/scrollsnap"

// List renders the sequence returned by items as a column, one child widget
// per element. Children are created with build as the sequence grows and
// dropped from the end as it shrinks.
//
// Items are delivered to children by value; mutations a child makes to its
// item during Event are discarded. Mutate the sequence through the parent
// data instead.
type List[T, I any] struct {
	items    func(T) []I
	build    func() tui.Widget[I]
	children []*tui.WidgetPod[I]
}

// NewList creates a list over items(data).
func NewList[T, I any](items func(T) []I, build func() tui.Widget[I]) *List[T, I] {
	return &List[T, I]{items: items, build: build}
}

// Len returns the number of child widgets.
func (l *List[T, I]) Len() int { return len(l.children) }

// sync grows or shrinks the children to n and reports whether it changed anything.
func (l *List[T, I]) sync(n int) bool {
	if n == len(l.children) {
		return false
	}
	for len(l.children) < n {
		l.children = append(l.children, tui.NewWidgetPod(l.build()))
	}
	clear(l.children[n:])
	l.children = l.children[:n]
	return true
}

func (l *List[T, I]) Event(ctx *tui.EventCtx, ev tui.Event, data *T) {
	items := l.items(*data)
	for i, child := range l.children {
		if i >= len(items) || ctx.IsHandled() {
			return
		}
		item := items[i]
		child.Event(ctx, ev, &item)
	}
}

func (l *List[T, I]) Lifecycle(ctx *tui.LifecycleCtx, ev tui.LifecycleEvent, data T) {
	items := l.items(data)
	if _, ok := ev.(tui.LifecycleWidgetAdded); ok {
		l.sync(len(items))
	}
	for i, child := range l.children {
		if i >= len(items) {
			return
		}
		child.Lifecycle(ctx, ev, items[i])
	}
}

func (l *List[T, I]) Update(ctx *tui.UpdateCtx, old, data T) {
	oldItems, newItems := l.items(old), l.items(data)
	for i, child := range l.children {
		if i >= len(oldItems) || i >= len(newItems) {
			break
		}
		child.Update(ctx, oldItems[i], newItems[i])
	}
	if l.sync(len(newItems)) {
		ctx.ChildrenChanged()
	}
}

// Layout stacks the children top to bottom. Each child gets the list's
// width and as much height as it wants.
func (l *List[T, I]) Layout(ctx *tui.LayoutCtx, bc tui.Constraints, data T) tui.Size {
	items := l.items(data)
	childBC := tui.Constraints{
		Min: tui.Size{Width: bc.Min.Width},
		Max: tui.Size{Width: bc.Max.Width, Height: tui.Unbounded},
	}

	width, y := 0, 0
	for i, child := range l.children {
		if i >= len(items) {
			break
		}
		size := child.Layout(ctx, childBC, items[i])
		child.SetOrigin(tui.Point{Y: y})
		y += size.Height
		width = max(width, size.Width)
	}
	return bc.Constrain(tui.Size{Width: width, Height: y})
}

func (l *List[T, I]) Paint(ctx *tui.PaintCtx, data T) {
	items := l.items(data)
	for i, child := range l.children {
		if i >= len(items) {
			return
		}
		child.Paint(ctx, items[i])
	}
}
