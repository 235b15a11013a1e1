package snap

import (
	"testing"

	tui "github.com/grindlemire/scrollsnap"
	"github.com/grindlemire/scrollsnap/widget"
)

// feed is the application data used across snap tests.
type feed struct {
	Items  []string
	Follow bool
}

func follow(f feed) bool { return f.Follow }

func (f feed) with(items ...string) feed {
	f.Items = append(append([]string(nil), f.Items...), items...)
	return f
}

func itemLabel() tui.Widget[string] {
	return widget.NewLabel(func(s string) string { return s })
}

func newFeedList() *widget.List[feed, string] {
	return widget.NewList(func(f feed) []string { return f.Items }, itemLabel)
}

// scrollCall records one ScrollToEnd made by the decorator.
type scrollCall struct {
	axis  tui.Axis
	phase tui.Phase
	moved bool
}

// recorder is a Scroll that remembers the phase of the last pipeline call
// it received and logs every ScrollToEnd.
type recorder struct {
	*widget.Scroll[feed]
	phase tui.Phase
	calls []scrollCall
}

func (r *recorder) Update(ctx *tui.UpdateCtx, old, data feed) {
	r.phase = ctx.Phase()
	r.Scroll.Update(ctx, old, data)
}

func (r *recorder) Layout(ctx *tui.LayoutCtx, bc tui.Constraints, data feed) tui.Size {
	r.phase = ctx.Phase()
	return r.Scroll.Layout(ctx, bc, data)
}

func (r *recorder) ScrollToEnd(axis tui.Axis) bool {
	moved := r.Scroll.ScrollToEnd(axis)
	r.calls = append(r.calls, scrollCall{axis: axis, phase: r.phase, moved: moved})
	return moved
}

type harness struct {
	app  *tui.App[feed]
	dec  *Decorator[feed]
	rec  *recorder
	term *tui.MockTerminal
}

// newHarness builds decorator(scroll(list)) on a width x height mock terminal.
func newHarness(t *testing.T, width, height int, data feed, opts ...Option[feed]) *harness {
	t.Helper()
	rec := &recorder{Scroll: widget.NewScroll[feed](newFeedList(), widget.WithoutScrollbar()).Vertical()}
	dec := New[feed](rec, opts...)
	term := tui.NewMockTerminal(width, height)
	app, err := tui.NewAppWithIO[feed](term, tui.NewMockEventReader(), dec, data)
	if err != nil {
		t.Fatalf("NewAppWithIO: %v", err)
	}
	t.Cleanup(func() { app.Close() })
	app.Render()
	return &harness{app: app, dec: dec, rec: rec, term: term}
}

func (h *harness) apply(fn func(*feed)) {
	h.app.Apply(fn)
	h.app.Render()
}

func (h *harness) appendItems(items ...string) {
	h.apply(func(f *feed) { *f = f.with(items...) })
}

func (h *harness) setFollow(on bool) {
	h.apply(func(f *feed) { f.Follow = on })
}
