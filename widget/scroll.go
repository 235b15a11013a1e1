package widget

import (
	"math"

	tui "github.com/grindlemire/scrollsnap"
	"github.com/grindlemire/scrollsnap/internal/layout"
)

// Scroll is a viewport onto a child that may be larger than the space it is
// given. It tracks a scroll offset and keeps it within
// [0, content - viewport] on every enabled axis.
type Scroll[T any] struct {
	child *tui.WidgetPod[T]
	axes  tui.Axes

	offset   tui.Point
	content  tui.Size
	viewport tui.Size
	bar      bool

	keyboard       bool
	wheelStep      int
	scrollbar      bool
	scrollbarStyle tui.Style
	thumbStyle     tui.Style
}

// ScrollOption configures a Scroll.
type ScrollOption func(*scrollConfig)

type scrollConfig struct {
	keyboard       bool
	wheelStep      int
	scrollbar      bool
	scrollbarStyle tui.Style
	thumbStyle     tui.Style
}

// WithKeyboard makes the viewport handle Up, Down, PageUp, PageDown, Home
// and End when its child does not.
func WithKeyboard() ScrollOption {
	return func(c *scrollConfig) { c.keyboard = true }
}

// WithWheelStep sets how many rows one wheel notch scrolls. Default is 3.
// Values below 1 are ignored.
func WithWheelStep(rows int) ScrollOption {
	return func(c *scrollConfig) {
		if rows >= 1 {
			c.wheelStep = rows
		}
	}
}

// WithoutScrollbar stops the viewport from reserving a column for the
// vertical scrollbar.
func WithoutScrollbar() ScrollOption {
	return func(c *scrollConfig) { c.scrollbar = false }
}

// WithScrollbarStyle sets the track and thumb styles.
func WithScrollbarStyle(track, thumb tui.Style) ScrollOption {
	return func(c *scrollConfig) {
		c.scrollbarStyle = track
		c.thumbStyle = thumb
	}
}

// NewScroll wraps child in a viewport that scrolls on both axes. Narrow it
// with Vertical or Horizontal.
func NewScroll[T any](child tui.Widget[T], opts ...ScrollOption) *Scroll[T] {
	cfg := scrollConfig{
		wheelStep:      3,
		scrollbar:      true,
		scrollbarStyle: tui.NewStyle().Foreground(tui.BrightBlack),
		thumbStyle:     tui.NewStyle(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Scroll[T]{
		child:          tui.NewWidgetPod(child),
		axes:           tui.AxesBoth,
		keyboard:       cfg.keyboard,
		wheelStep:      cfg.wheelStep,
		scrollbar:      cfg.scrollbar,
		scrollbarStyle: cfg.scrollbarStyle,
		thumbStyle:     cfg.thumbStyle,
	}
}

// Vertical restricts scrolling to the vertical axis.
func (s *Scroll[T]) Vertical() *Scroll[T] {
	s.axes = tui.AxesVertical
	s.offset.X = 0
	return s
}

// Horizontal restricts scrolling to the horizontal axis.
func (s *Scroll[T]) Horizontal() *Scroll[T] {
	s.axes = tui.AxesHorizontal
	s.offset.Y = 0
	return s
}

// Both enables scrolling on both axes.
func (s *Scroll[T]) Both() *Scroll[T] {
	s.axes = tui.AxesBoth
	return s
}

// Axes returns the enabled axes.
func (s *Scroll[T]) Axes() tui.Axes { return s.axes }

// Child returns the scrolled widget.
func (s *Scroll[T]) Child() tui.Widget[T] { return s.child.Widget() }

// Offset returns the current scroll position.
func (s *Scroll[T]) Offset() tui.Point { return s.offset }

// ContentSize returns the child's size as measured by the last layout.
func (s *Scroll[T]) ContentSize() tui.Size { return s.content }

// ViewportSize returns the visible area, excluding the scrollbar column.
func (s *Scroll[T]) ViewportSize() tui.Size { return s.viewport }

// MaxOffset returns the largest valid offset on each axis.
func (s *Scroll[T]) MaxOffset() tui.Point {
	var p tui.Point
	if s.axes.Has(tui.Horizontal) {
		p.X = max(0, s.content.Width-s.viewport.Width)
	}
	if s.axes.Has(tui.Vertical) {
		p.Y = max(0, s.content.Height-s.viewport.Height)
	}
	return p
}

// AtEnd reports whether the offset sits at the far edge of axis.
func (s *Scroll[T]) AtEnd(axis tui.Axis) bool {
	return s.offset.Get(axis) >= s.MaxOffset().Get(axis)
}

// ScrollTo moves the offset to p, clamped to the valid range. It returns
// whether the offset changed.
func (s *Scroll[T]) ScrollTo(p tui.Point) bool {
	limit := s.MaxOffset()
	next := tui.Point{
		X: layout.Clamp(p.X, 0, limit.X),
		Y: layout.Clamp(p.Y, 0, limit.Y),
	}
	if next == s.offset {
		return false
	}
	s.offset = next
	return true
}

// ScrollBy adds delta to the offset and clamps the result. Deltas saturate,
// so math.MaxInt scrolls to the end without overflowing.
func (s *Scroll[T]) ScrollBy(delta tui.Vec2) bool {
	return s.ScrollTo(tui.Point{
		X: layout.SaturatingAdd(s.offset.X, delta.X),
		Y: layout.SaturatingAdd(s.offset.Y, delta.Y),
	})
}

// ScrollToEdge moves to the start or end of axis.
func (s *Scroll[T]) ScrollToEdge(axis tui.Axis, edge tui.Edge) bool {
	if edge == tui.EdgeStart {
		return s.ScrollBy(layout.Along(axis, math.MinInt))
	}
	return s.ScrollBy(layout.Along(axis, math.MaxInt))
}

// ScrollToEnd moves to the far edge of axis. Calling it again at the bound
// changes nothing.
func (s *Scroll[T]) ScrollToEnd(axis tui.Axis) bool {
	return s.ScrollToEdge(axis, tui.EdgeEnd)
}

func (s *Scroll[T]) Event(ctx *tui.EventCtx, ev tui.Event, data *T) {
	switch e := ev.(type) {
	case tui.MouseEvent:
		if e.X >= s.viewport.Width || e.Y >= s.viewport.Height {
			return
		}
		inner := e
		inner.X += s.offset.X
		inner.Y += s.offset.Y
		s.child.Event(ctx, inner, data)
		if ctx.IsHandled() || e.Release {
			return
		}
		switch e.Button {
		case tui.MouseWheelUp:
			s.ScrollBy(tui.Vec2{Y: -s.wheelStep})
			ctx.SetHandled()
		case tui.MouseWheelDown:
			s.ScrollBy(tui.Vec2{Y: s.wheelStep})
			ctx.SetHandled()
		}
	case tui.KeyEvent:
		s.child.Event(ctx, ev, data)
		if ctx.IsHandled() || !s.keyboard {
			return
		}
		if s.handleKey(e) {
			ctx.SetHandled()
		}
	default:
		s.child.Event(ctx, ev, data)
	}
}

func (s *Scroll[T]) handleKey(e tui.KeyEvent) bool {
	page := max(1, s.viewport.Height-1)
	switch e.Key {
	case tui.KeyUp:
		s.ScrollBy(tui.Vec2{Y: -1})
	case tui.KeyDown:
		s.ScrollBy(tui.Vec2{Y: 1})
	case tui.KeyLeft:
		s.ScrollBy(tui.Vec2{X: -1})
	case tui.KeyRight:
		s.ScrollBy(tui.Vec2{X: 1})
	case tui.KeyPageUp:
		s.ScrollBy(tui.Vec2{Y: -page})
	case tui.KeyPageDown:
		s.ScrollBy(tui.Vec2{Y: page})
	case tui.KeyHome:
		s.ScrollToEdge(tui.Vertical, tui.EdgeStart)
	case tui.KeyEnd:
		s.ScrollToEdge(tui.Vertical, tui.EdgeEnd)
	default:
		return false
	}
	return true
}

func (s *Scroll[T]) Lifecycle(ctx *tui.LifecycleCtx, ev tui.LifecycleEvent, data T) {
	s.child.Lifecycle(ctx, ev, data)
}

func (s *Scroll[T]) Update(ctx *tui.UpdateCtx, old, data T) {
	s.child.Update(ctx, old, data)
}

// Layout measures the child with unbounded space along the enabled axes.
// When the content overflows vertically one column is reserved for the
// scrollbar and the child is measured again at the narrower width.
func (s *Scroll[T]) Layout(ctx *tui.LayoutCtx, bc tui.Constraints, data T) tui.Size {
	avail := bc.Max
	childBC := s.childConstraints(avail, avail.Width)
	content := s.child.Layout(ctx, childBC, data)

	s.bar = false
	if s.scrollbar && s.axes.Has(tui.Vertical) && !s.axes.Has(tui.Horizontal) &&
		content.Height > avail.Height && avail.Width > 1 && bc.IsBounded(tui.Vertical) {
		s.bar = true
		content = s.child.Layout(ctx, s.childConstraints(avail, avail.Width-1), data)
	}
	s.child.SetOrigin(tui.Point{})

	size := bc.Constrain(content)
	s.content = content
	s.viewport = size
	if s.bar {
		s.viewport.Width = max(0, size.Width-1)
	}

	// Content may have shrunk below the current offset.
	s.ScrollTo(s.offset)
	return size
}

// childConstraints opens the enabled axes and asks the child to fill the
// disabled ones.
func (s *Scroll[T]) childConstraints(avail tui.Size, width int) tui.Constraints {
	bc := tui.Constraints{Max: tui.Size{Width: width, Height: avail.Height}}
	for _, axis := range []tui.Axis{tui.Horizontal, tui.Vertical} {
		if s.axes.Has(axis) {
			bc = bc.Unbound(axis)
		} else if bc.IsBounded(axis) {
			bc.Min = bc.Min.With(axis, bc.Max.Get(axis))
		}
	}
	return bc
}

func (s *Scroll[T]) Paint(ctx *tui.PaintCtx, data T) {
	view := tui.NewRect(0, 0, s.viewport.Width, s.viewport.Height)
	inner := ctx.WithClip(view).WithOffset(tui.Point{X: -s.offset.X, Y: -s.offset.Y})
	s.child.Paint(inner, data)
	if s.bar {
		s.paintScrollbar(ctx)
	}
}

// paintScrollbar draws the track in the reserved column with a thumb sized
// by the visible fraction of the content.
func (s *Scroll[T]) paintScrollbar(ctx *tui.PaintCtx) {
	trackX := s.viewport.Width
	trackHeight := s.viewport.Height
	maxScroll := s.content.Height - s.viewport.Height
	if trackHeight <= 0 || maxScroll <= 0 {
		return
	}

	thumbHeight := max(1, trackHeight*s.viewport.Height/s.content.Height)
	thumbTop := s.offset.Y * (trackHeight - thumbHeight) / maxScroll

	for y := 0; y < trackHeight; y++ {
		if y >= thumbTop && y < thumbTop+thumbHeight {
			ctx.SetRune(trackX, y, '█', s.thumbStyle)
		} else {
			ctx.SetRune(trackX, y, '│', s.scrollbarStyle)
		}
	}
}
