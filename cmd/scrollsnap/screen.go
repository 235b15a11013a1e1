package main

import (
	"fmt"
	"slices"
	"strings"

	tui "github.com/grindlemire/scrollsnap"
	"github.com/grindlemire/scrollsnap/internal/config"
	"github.com/grindlemire/scrollsnap/internal/rule"
	"github.com/grindlemire/scrollsnap/snap"
	"github.com/grindlemire/scrollsnap/widget"
)

var words = strings.Fields("We do not inherit the earth from our ancestors, we borrow it from our children.")

// model is the data shared by both subcommands.
type model struct {
	Items  []string
	Follow bool
	Next   int // index into words of the next word to add
}

func (m model) appendLine(s string) model {
	m.Items = append(slices.Clip(m.Items), s)
	return m
}

func (m model) addWord() model {
	m = m.appendLine(words[m.Next])
	m.Next = (m.Next + 1) % len(words)
	return m
}

func (m model) clear() model {
	m.Items = nil
	m.Next = 0
	return m
}

// snapshot exposes model fields to snap expressions.
func snapshot(m model) map[string]any {
	return map[string]any{
		"follow": m.Follow,
		"items":  m.Items,
		"count":  len(m.Items),
	}
}

func radio(on bool) string {
	if on {
		return "(•)"
	}
	return "( )"
}

func status(m model) string {
	return fmt.Sprintf("%s ||  %s ▼   [X] clear   %d lines", radio(!m.Follow), radio(m.Follow), len(m.Items))
}

// screen is the root widget: a hint row, the following list and a status
// row. It owns the keys that edit the model.
type screen struct {
	body   *widget.Flex[model]
	scroll *widget.Scroll[model]
	keys   tui.KeyMap[model]
}

func addWord(_ *tui.EventCtx, _ tui.KeyEvent, m *model) { *m = m.addWord() }

// screenKeys returns the bindings for the model-editing keys. a and enter
// add words only when addWords is set.
func screenKeys(addWords bool) tui.KeyMap[model] {
	var km tui.KeyMap[model]
	if addWords {
		km = append(km,
			tui.OnRuneStop('a', addWord),
			tui.OnKeyStop(tui.KeyEnter, addWord),
		)
	}
	return append(km,
		tui.OnRuneStop('p', func(_ *tui.EventCtx, _ tui.KeyEvent, m *model) { m.Follow = false }),
		tui.OnRuneStop('f', func(_ *tui.EventCtx, _ tui.KeyEvent, m *model) { m.Follow = true }),
		tui.OnRuneStop('x', func(_ *tui.EventCtx, _ tui.KeyEvent, m *model) { *m = m.clear() }),
		tui.OnRuneStop('q', func(ctx *tui.EventCtx, _ tui.KeyEvent, _ *model) { ctx.Stop() }),
	)
}

// newScreen mounts the list with the snapping mechanism selected by cfg.
func newScreen(cfg *config.Config, hint string, addWords bool) (*screen, error) {
	engine, err := rule.ParseEngine(cfg.Engine)
	if err != nil {
		return nil, err
	}
	vertical, err := rule.Compile(engine, cfg.Snap.Vertical, snapshot)
	if err != nil {
		return nil, err
	}

	list := widget.NewList(func(m model) []string { return m.Items }, func() tui.Widget[string] {
		return widget.NewLabel(func(s string) string { return s })
	})

	var (
		scroll *widget.Scroll[model]
		view   tui.Widget[model]
	)
	switch cfg.Mode {
	case config.ModeBroadcast:
		scroll = widget.NewScroll[model](snap.NewListSnap[model](list), widget.WithKeyboard()).Vertical()
		view = snap.FollowScroll(scroll, vertical)
	default:
		scroll = widget.NewScroll[model](list, widget.WithKeyboard()).Vertical()
		opts := []snap.Option[model]{snap.WithName[model]("list")}
		if cfg.Snap.Vertical != "" {
			opts = append(opts, snap.WithVertical(vertical))
		}
		if cfg.Snap.Horizontal != "" {
			horizontal, err := rule.Compile(engine, cfg.Snap.Horizontal, snapshot)
			if err != nil {
				return nil, err
			}
			scroll.Both()
			opts = append(opts, snap.WithHorizontal(horizontal))
		}
		view = snap.New[model](scroll, opts...)
	}

	body := widget.Column[model]().
		WithChild(widget.Text[model](hint).WithStyle(tui.NewStyle().Dim())).
		WithFlexChild(view, 1).
		WithChild(widget.NewLabel(status).WithStyle(tui.NewStyle().Reverse()))

	return &screen{body: body, scroll: scroll, keys: screenKeys(addWords)}, nil
}

func (s *screen) Event(ctx *tui.EventCtx, ev tui.Event, data *model) {
	before := s.scroll.Offset()
	s.body.Event(ctx, ev, data)
	if ctx.IsHandled() {
		s.trackManualScroll(ev, before, data)
		return
	}

	if key, ok := ev.(tui.KeyEvent); ok {
		s.keys.Handle(ctx, key, data)
	}
}

// trackManualScroll pauses following when the user scrolls away from the
// end and resumes it on End.
func (s *screen) trackManualScroll(ev tui.Event, before tui.Point, data *model) {
	if key, ok := ev.(tui.KeyEvent); ok && key.Key == tui.KeyEnd {
		data.Follow = true
		return
	}
	if s.scroll.Offset().Y < before.Y && !s.scroll.AtEnd(tui.Vertical) {
		data.Follow = false
	}
}

func (s *screen) Lifecycle(ctx *tui.LifecycleCtx, ev tui.LifecycleEvent, data model) {
	s.body.Lifecycle(ctx, ev, data)
}

func (s *screen) Update(ctx *tui.UpdateCtx, old, data model) {
	s.body.Update(ctx, old, data)
}

func (s *screen) Layout(ctx *tui.LayoutCtx, bc tui.Constraints, data model) tui.Size {
	return s.body.Layout(ctx, bc, data)
}

func (s *screen) Paint(ctx *tui.PaintCtx, data model) {
	s.body.Paint(ctx, data)
}
