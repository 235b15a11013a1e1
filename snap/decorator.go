package snap

import (
	tui "github.com/grindlemire/scrollsnap"
	"github.com/grindlemire/scrollsnap/internal/debug"
)

// Viewport is the scroll container a Decorator wraps.
type Viewport[T any] interface {
	tui.Widget[T]
	// ScrollBy moves the offset by delta, clamped to the valid range.
	ScrollBy(delta tui.Vec2) bool
	// ScrollToEnd moves the offset to the far edge of axis.
	ScrollToEnd(axis tui.Axis) bool
	// ContentSize returns the content size measured by the last layout.
	ContentSize() tui.Size
}

// Decorator wraps a Viewport and scrolls it to the end after its content
// grows, when the policy allows it.
type Decorator[T any] struct {
	vp     Viewport[T]
	policy Policy[T]
	name   string

	extent tui.Size
	box    mailbox
}

// Option configures a Decorator.
type Option[T any] func(*Decorator[T])

// WithHorizontal tracks horizontal growth, snapping when pred holds.
func WithHorizontal[T any](pred Predicate[T]) Option[T] {
	return func(d *Decorator[T]) { d.policy.Horizontal = pred }
}

// WithVertical tracks vertical growth, snapping when pred holds.
func WithVertical[T any](pred Predicate[T]) Option[T] {
	return func(d *Decorator[T]) { d.policy.Vertical = pred }
}

// WithPolicy replaces both predicates.
func WithPolicy[T any](p Policy[T]) Option[T] {
	return func(d *Decorator[T]) { d.policy = p }
}

// WithName labels the decorator in debug logs.
func WithName[T any](name string) Option[T] {
	return func(d *Decorator[T]) { d.name = name }
}

// New wraps vp. Without options no axis is tracked and the decorator only
// forwards.
func New[T any](vp Viewport[T], opts ...Option[T]) *Decorator[T] {
	d := &Decorator[T]{vp: vp, name: "snap"}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Viewport returns the wrapped viewport.
func (d *Decorator[T]) Viewport() Viewport[T] { return d.vp }

// Pending reports whether a snap is waiting for the next update.
func (d *Decorator[T]) Pending() bool { return d.box.pending() }

// Extent returns the content size recorded by the last layout.
func (d *Decorator[T]) Extent() tui.Size { return d.extent }

func (d *Decorator[T]) Event(ctx *tui.EventCtx, ev tui.Event, data *T) {
	d.vp.Event(ctx, ev, data)
}

func (d *Decorator[T]) Lifecycle(ctx *tui.LifecycleCtx, ev tui.LifecycleEvent, data T) {
	d.vp.Lifecycle(ctx, ev, data)
}

// Update forwards to the viewport and always asks for a layout, since the
// forwarded update may have changed the content size. A pending snap is
// resolved here against the new data and then dropped. Only the axes that
// grew are snapped.
func (d *Decorator[T]) Update(ctx *tui.UpdateCtx, old, data T) {
	d.vp.Update(ctx, old, data)
	ctx.RequestLayout()

	grew := d.box.take()
	for _, axis := range []tui.Axis{tui.Horizontal, tui.Vertical} {
		if !grew.Has(axis) {
			continue
		}
		if d.policy.Allows(axis, data) {
			moved := d.vp.ScrollToEnd(axis)
			debug.Log("%s: snapped %s moved=%t", d.name, axis, moved)
		} else {
			debug.Log("%s: %s snap suppressed by policy", d.name, axis)
		}
	}
}

// Layout measures the viewport and compares its content against the
// previous layout. It returns the viewport's size unchanged.
func (d *Decorator[T]) Layout(ctx *tui.LayoutCtx, bc tui.Constraints, data T) tui.Size {
	size := d.vp.Layout(ctx, bc, data)
	next := d.vp.ContentSize()
	if grew := GrownAxes(d.extent, next, d.policy.Axes()); grew != tui.AxesNone {
		debug.Log("%s: content grew %dx%d -> %dx%d", d.name,
			d.extent.Width, d.extent.Height, next.Width, next.Height)
		d.box.post(grew)
		ctx.RequestUpdate()
	}
	d.extent = next
	return size
}

func (d *Decorator[T]) Paint(ctx *tui.PaintCtx, data T) {
	d.vp.Paint(ctx, data)
}
