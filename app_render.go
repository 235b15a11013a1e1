package tui

import "github.com/grindlemire/scrollsnap/internal/debug"

// Render brings the tree up to date with the data and paints it:
//
//  1. queued commands are delivered through the event phase,
//  2. a lifecycle pass runs when children changed,
//  3. an update pass runs when the data changed or an update was requested,
//  4. a layout pass runs when requested or when the terminal was resized,
//
// repeating while any pass asked for more work, up to the configured
// maximum. The result is painted into the back buffer and the difference
// flushed to the terminal.
func (a *App[T]) Render() {
	width, height := a.terminal.Size()
	if a.buffer.Width() != width || a.buffer.Height() != height {
		a.terminal.Clear()
		a.buffer.Resize(width, height)
	}
	size := Size{Width: width, Height: height}
	if size != a.lastSize {
		a.lastSize = size
		a.st.layoutRequested = true
	}
	if !a.started {
		a.started = true
		a.st.childrenChanged = true
		a.st.layoutRequested = true
	}

	a.lastPasses = a.settle(size)
	a.paint()

	changes := a.buffer.Diff()
	if len(changes) > 0 {
		a.terminal.Flush(changes)
	}
	a.buffer.Swap()
}

// settle runs passes until nothing is pending and returns how many ran.
func (a *App[T]) settle(size Size) int {
	passes := 0
	for a.pending() {
		if passes == a.cfg.maxPasses {
			debug.Log("tui: frame did not settle after %d passes", passes)
			break
		}
		passes++

		a.deliverCommands()
		a.lifecyclePass()
		if a.st.updateRequested || !a.same(a.lastData, a.data) {
			a.updatePass()
		}
		a.lifecyclePass()
		if a.st.layoutRequested {
			a.layoutPass(size)
		}
	}
	a.st.phase = PhaseIdle
	return passes
}

func (a *App[T]) pending() bool {
	return a.st.layoutRequested ||
		a.st.updateRequested ||
		a.st.childrenChanged ||
		len(a.st.commands) > 0 ||
		!a.same(a.lastData, a.data)
}

func (a *App[T]) lifecyclePass() {
	if !a.st.childrenChanged {
		return
	}
	a.st.childrenChanged = false
	a.st.phase = PhaseLifecycle
	a.root.Lifecycle(&LifecycleCtx{st: &a.st}, LifecycleChildrenChanged{}, a.data)
	a.st.phase = PhaseIdle
}

func (a *App[T]) updatePass() {
	a.st.updateRequested = false
	old := a.lastData
	a.lastData = a.data
	a.st.phase = PhaseUpdate
	a.root.Update(&UpdateCtx{st: &a.st}, old, a.data)
	a.st.phase = PhaseIdle
}

func (a *App[T]) layoutPass(size Size) {
	a.st.layoutRequested = false
	a.st.phase = PhaseLayout
	a.root.Layout(&LayoutCtx{st: &a.st}, Tight(size), a.data)
	a.root.SetOrigin(Point{})
	a.st.phase = PhaseIdle
}

func (a *App[T]) paint() {
	a.buffer.Clear()
	a.st.phase = PhasePaint
	ctx := &PaintCtx{st: &a.st, buf: a.buffer, clip: a.buffer.Rect()}
	a.root.Paint(ctx, a.data)
	a.st.phase = PhaseIdle
}
