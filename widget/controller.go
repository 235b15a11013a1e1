package widget

import tui "github.com/grindlemire/scrollsnap"

// Controller intercepts the event, lifecycle and update phases of a child
// widget of type W. Implementations decide whether and when to forward to
// the child. Embed BaseController to forward the phases you do not override.
type Controller[T any, W tui.Widget[T]] interface {
	Event(child W, ctx *tui.EventCtx, ev tui.Event, data *T)
	Lifecycle(child W, ctx *tui.LifecycleCtx, ev tui.LifecycleEvent, data T)
	Update(child W, ctx *tui.UpdateCtx, old, data T)
}

// BaseController forwards every phase to the child unchanged.
type BaseController[T any, W tui.Widget[T]] struct{}

func (BaseController[T, W]) Event(child W, ctx *tui.EventCtx, ev tui.Event, data *T) {
	child.Event(ctx, ev, data)
}

func (BaseController[T, W]) Lifecycle(child W, ctx *tui.LifecycleCtx, ev tui.LifecycleEvent, data T) {
	child.Lifecycle(ctx, ev, data)
}

func (BaseController[T, W]) Update(child W, ctx *tui.UpdateCtx, old, data T) {
	child.Update(ctx, old, data)
}

// Controlled hosts a child together with its controller. Layout and paint
// go straight to the child.
type Controlled[T any, W tui.Widget[T]] struct {
	child W
	ctrl  Controller[T, W]
}

// NewControlled attaches ctrl to child.
func NewControlled[T any, W tui.Widget[T]](child W, ctrl Controller[T, W]) *Controlled[T, W] {
	return &Controlled[T, W]{child: child, ctrl: ctrl}
}

// Child returns the controlled widget.
func (c *Controlled[T, W]) Child() W { return c.child }

func (c *Controlled[T, W]) Event(ctx *tui.EventCtx, ev tui.Event, data *T) {
	c.ctrl.Event(c.child, ctx, ev, data)
}

func (c *Controlled[T, W]) Lifecycle(ctx *tui.LifecycleCtx, ev tui.LifecycleEvent, data T) {
	c.ctrl.Lifecycle(c.child, ctx, ev, data)
}

func (c *Controlled[T, W]) Update(ctx *tui.UpdateCtx, old, data T) {
	c.ctrl.Update(c.child, ctx, old, data)
}

func (c *Controlled[T, W]) Layout(ctx *tui.LayoutCtx, bc tui.Constraints, data T) tui.Size {
	return c.child.Layout(ctx, bc, data)
}

func (c *Controlled[T, W]) Paint(ctx *tui.PaintCtx, data T) {
	c.child.Paint(ctx, data)
}
