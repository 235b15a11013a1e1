package widget

import tui "github.com/grindlemire/scrollsnap"

// Flex lays children out along one axis. Fixed children take the size they
// ask for; flex children share what is left in proportion to their factor.
// Children are stretched to the full cross-axis extent.
type Flex[T any] struct {
	axis     tui.Axis
	children []flexChild[T]
}

type flexChild[T any] struct {
	pod  *tui.WidgetPod[T]
	flex int
}

// Column creates a vertical Flex.
func Column[T any]() *Flex[T] {
	return &Flex[T]{axis: tui.Vertical}
}

// Row creates a horizontal Flex.
func Row[T any]() *Flex[T] {
	return &Flex[T]{axis: tui.Horizontal}
}

// WithChild appends a child that keeps its measured size.
func (f *Flex[T]) WithChild(w tui.Widget[T]) *Flex[T] {
	f.children = append(f.children, flexChild[T]{pod: tui.NewWidgetPod(w)})
	return f
}

// WithFlexChild appends a child that takes a share of the leftover space.
// Factors below 1 are treated as 1.
func (f *Flex[T]) WithFlexChild(w tui.Widget[T], factor int) *Flex[T] {
	f.children = append(f.children, flexChild[T]{pod: tui.NewWidgetPod(w), flex: max(1, factor)})
	return f
}

// WithSpacer appends n empty cells along the main axis.
func (f *Flex[T]) WithSpacer(n int) *Flex[T] {
	return f.WithChild(&spacer[T]{axis: f.axis, n: n})
}

func (f *Flex[T]) Event(ctx *tui.EventCtx, ev tui.Event, data *T) {
	for _, c := range f.children {
		if ctx.IsHandled() {
			return
		}
		c.pod.Event(ctx, ev, data)
	}
}

func (f *Flex[T]) Lifecycle(ctx *tui.LifecycleCtx, ev tui.LifecycleEvent, data T) {
	for _, c := range f.children {
		c.pod.Lifecycle(ctx, ev, data)
	}
}

func (f *Flex[T]) Update(ctx *tui.UpdateCtx, old, data T) {
	for _, c := range f.children {
		c.pod.Update(ctx, old, data)
	}
}

func (f *Flex[T]) Layout(ctx *tui.LayoutCtx, bc tui.Constraints, data T) tui.Size {
	main, cross := f.axis, f.axis.Cross()
	crossMax := bc.Max.Get(cross)
	crossMin := 0
	if bc.IsBounded(cross) {
		crossMin = crossMax
	}

	childBC := func(minMain, maxMain int) tui.Constraints {
		var c tui.Constraints
		c.Min = c.Min.With(main, minMain).With(cross, crossMin)
		c.Max = c.Max.With(main, maxMain).With(cross, crossMax)
		return c
	}

	// Fixed children first, so flex children know what is left.
	used, totalFlex, crossSize := 0, 0, 0
	for _, c := range f.children {
		if c.flex > 0 {
			totalFlex += c.flex
			continue
		}
		remaining := max(0, bc.Max.Get(main)-used)
		size := c.pod.Layout(ctx, childBC(0, remaining), data)
		used += size.Get(main)
		crossSize = max(crossSize, size.Get(cross))
	}

	if totalFlex > 0 {
		free := 0
		if bc.IsBounded(main) {
			free = max(0, bc.Max.Get(main)-used)
		}
		given := 0
		seen := 0
		for _, c := range f.children {
			if c.flex == 0 {
				continue
			}
			seen += c.flex
			// The last flex child absorbs rounding.
			share := free*seen/totalFlex - given
			given += share
			var size tui.Size
			if bc.IsBounded(main) {
				size = c.pod.Layout(ctx, childBC(share, share), data)
			} else {
				size = c.pod.Layout(ctx, childBC(0, tui.Unbounded), data)
			}
			used += size.Get(main)
			crossSize = max(crossSize, size.Get(cross))
		}
	}

	pos := 0
	for _, c := range f.children {
		c.pod.SetOrigin(tui.Point{}.With(main, pos))
		pos += c.pod.Size().Get(main)
	}

	var size tui.Size
	size = size.With(main, used).With(cross, crossSize)
	return bc.Constrain(size)
}

func (f *Flex[T]) Paint(ctx *tui.PaintCtx, data T) {
	for _, c := range f.children {
		c.pod.Paint(ctx, data)
	}
}

// spacer takes up n cells along axis and draws nothing.
type spacer[T any] struct {
	axis tui.Axis
	n    int
}

func (*spacer[T]) Event(*tui.EventCtx, tui.Event, *T)                 {}
func (*spacer[T]) Lifecycle(*tui.LifecycleCtx, tui.LifecycleEvent, T) {}
func (*spacer[T]) Update(*tui.UpdateCtx, T, T)                        {}
func (*spacer[T]) Paint(*tui.PaintCtx, T)                             {}

func (s *spacer[T]) Layout(_ *tui.LayoutCtx, bc tui.Constraints, _ T) tui.Size {
	var size tui.Size
	return bc.Constrain(size.With(s.axis, s.n))
}
