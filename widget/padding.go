package widget

import tui "github.com/grindlemire/scrollsnap"

// Padding insets its child by fixed edges.
type Padding[T any] struct {
	child *tui.WidgetPod[T]
	edges tui.Edges
}

// NewPadding wraps child with the given insets.
func NewPadding[T any](edges tui.Edges, child tui.Widget[T]) *Padding[T] {
	return &Padding[T]{child: tui.NewWidgetPod(child), edges: edges}
}

func (p *Padding[T]) Event(ctx *tui.EventCtx, ev tui.Event, data *T) {
	p.child.Event(ctx, ev, data)
}

func (p *Padding[T]) Lifecycle(ctx *tui.LifecycleCtx, ev tui.LifecycleEvent, data T) {
	p.child.Lifecycle(ctx, ev, data)
}

func (p *Padding[T]) Update(ctx *tui.UpdateCtx, old, data T) {
	p.child.Update(ctx, old, data)
}

func (p *Padding[T]) Layout(ctx *tui.LayoutCtx, bc tui.Constraints, data T) tui.Size {
	h, v := p.edges.Horizontal(), p.edges.Vertical()
	size := p.child.Layout(ctx, bc.Shrink(h, v), data)
	p.child.SetOrigin(tui.Point{X: p.edges.Left, Y: p.edges.Top})
	return bc.Constrain(tui.Size{Width: size.Width + h, Height: size.Height + v})
}

func (p *Padding[T]) Paint(ctx *tui.PaintCtx, data T) {
	p.child.Paint(ctx, data)
}
