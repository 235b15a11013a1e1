package tui

// frameState collects the requests widgets make while a pass runs. The App
// owns one and reads it between passes to decide what runs next.
type frameState struct {
	phase           Phase
	layoutRequested bool
	updateRequested bool
	childrenChanged bool
	commands        []Command
	stop            bool
}

func (s *frameState) submit(cmd Command) {
	s.commands = append(s.commands, cmd)
}

// takeCommands returns the queued commands and empties the queue.
func (s *frameState) takeCommands() []Command {
	cmds := s.commands
	s.commands = nil
	return cmds
}

// EventCtx is handed to Widget.Event. One EventCtx is shared by every widget
// that sees the same event, so SetHandled in a child is visible to its parent.
type EventCtx struct {
	st      *frameState
	handled bool
}

// SetHandled marks the event as consumed. Containers stop forwarding it.
func (c *EventCtx) SetHandled() { c.handled = true }

// IsHandled reports whether some widget consumed the event.
func (c *EventCtx) IsHandled() bool { return c.handled }

// RequestLayout schedules a layout pass.
func (c *EventCtx) RequestLayout() { c.st.layoutRequested = true }

// RequestUpdate schedules an update pass even if the data did not change.
func (c *EventCtx) RequestUpdate() { c.st.updateRequested = true }

// Submit queues cmd for delivery after this pass.
func (c *EventCtx) Submit(cmd Command) { c.st.submit(cmd) }

// Stop asks the App to exit after the current event.
func (c *EventCtx) Stop() { c.st.stop = true }

// Phase returns the running phase.
func (c *EventCtx) Phase() Phase { return c.st.phase }

// LifecycleCtx is handed to Widget.Lifecycle.
type LifecycleCtx struct {
	st *frameState
}

// RequestLayout schedules a layout pass.
func (c *LifecycleCtx) RequestLayout() { c.st.layoutRequested = true }

// Phase returns the running phase.
func (c *LifecycleCtx) Phase() Phase { return c.st.phase }

// UpdateCtx is handed to Widget.Update.
type UpdateCtx struct {
	st *frameState
}

// RequestLayout schedules a layout pass.
func (c *UpdateCtx) RequestLayout() { c.st.layoutRequested = true }

// ChildrenChanged reports that pods were added or removed, which triggers a
// lifecycle pass before layout.
func (c *UpdateCtx) ChildrenChanged() {
	c.st.childrenChanged = true
	c.st.layoutRequested = true
}

// Submit queues cmd for delivery after this pass.
func (c *UpdateCtx) Submit(cmd Command) { c.st.submit(cmd) }

// Phase returns the running phase.
func (c *UpdateCtx) Phase() Phase { return c.st.phase }

// LayoutCtx is handed to Widget.Layout.
type LayoutCtx struct {
	st *frameState
}

// RequestUpdate schedules another update pass in the same frame. Layout uses
// this to hand work to the following update instead of acting in place.
func (c *LayoutCtx) RequestUpdate() { c.st.updateRequested = true }

// Submit queues cmd for delivery after this pass.
func (c *LayoutCtx) Submit(cmd Command) { c.st.submit(cmd) }

// Phase returns the running phase.
func (c *LayoutCtx) Phase() Phase { return c.st.phase }

// PaintCtx is handed to Widget.Paint. Coordinates passed to its drawing
// methods are relative to the widget's origin and clipped to Clip.
type PaintCtx struct {
	st     *frameState
	buf    *Buffer
	origin Point
	clip   Rect
}

// Buffer returns the back buffer being painted.
func (c *PaintCtx) Buffer() *Buffer { return c.buf }

// Origin returns the absolute position of the widget's top-left corner.
func (c *PaintCtx) Origin() Point { return c.origin }

// Clip returns the absolute rectangle painting is restricted to.
func (c *PaintCtx) Clip() Rect { return c.clip }

// Phase returns the running phase.
func (c *PaintCtx) Phase() Phase { return c.st.phase }

// SetRune draws r at (x, y) relative to the widget.
func (c *PaintCtx) SetRune(x, y int, r rune, style Style) {
	ax, ay := c.origin.X+x, c.origin.Y+y
	if !c.clip.Contains(ax, ay) {
		return
	}
	if RuneWidth(r) == 2 && !c.clip.Contains(ax+1, ay) {
		return
	}
	c.buf.SetRune(ax, ay, r, style)
}

// SetString draws s starting at (x, y) relative to the widget and returns
// the display width that landed inside the clip.
func (c *PaintCtx) SetString(x, y int, s string, style Style) int {
	return c.buf.SetStringClipped(c.origin.X+x, c.origin.Y+y, s, style, c.clip)
}

// Fill fills r, relative to the widget, with ch.
func (c *PaintCtx) Fill(r Rect, ch rune, style Style) {
	abs := r.Translate(c.origin.X, c.origin.Y).Intersect(c.clip)
	c.buf.Fill(abs, ch, style)
}

// WithOffset returns a context translated by off. The clip is unchanged.
func (c *PaintCtx) WithOffset(off Point) *PaintCtx {
	child := *c
	child.origin = c.origin.Add(off)
	return &child
}

// WithClip returns a context whose clip is narrowed to r, relative to the widget.
func (c *PaintCtx) WithClip(r Rect) *PaintCtx {
	child := *c
	child.clip = c.clip.Intersect(r.Translate(c.origin.X, c.origin.Y))
	return &child
}
