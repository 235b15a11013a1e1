package widget

import (
	"testing"

	tui "github.com/grindlemire/scrollsnap"
)

// probe counts the lifecycle and update calls it receives.
type probe struct {
	added   int
	updates int
}

func (p *probe) Event(*tui.EventCtx, tui.Event, *string) {}

func (p *probe) Lifecycle(_ *tui.LifecycleCtx, ev tui.LifecycleEvent, _ string) {
	if _, ok := ev.(tui.LifecycleWidgetAdded); ok {
		p.added++
	}
}

func (p *probe) Update(*tui.UpdateCtx, string, string) { p.updates++ }

func (p *probe) Layout(_ *tui.LayoutCtx, bc tui.Constraints, s string) tui.Size {
	return bc.Constrain(tui.Size{Width: len(s), Height: 1})
}

func (p *probe) Paint(ctx *tui.PaintCtx, s string) { ctx.SetString(0, 0, s, tui.NewStyle()) }

func TestList_GrowsAndShrinksWithData(t *testing.T) {
	var probes []*probe
	list := NewList(func(s []string) []string { return s }, func() tui.Widget[string] {
		p := &probe{}
		probes = append(probes, p)
		return p
	})
	app, term := mount[[]string](t, list, []string{"one"}, 10, 4)

	app.Apply(func(s *[]string) { *s = append(*s, "two", "three") })
	app.Render()

	if got := list.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	for i, p := range probes {
		if p.added != 1 {
			t.Errorf("child %d added %d times, want 1", i, p.added)
		}
	}
	if got := probes[0].updates; got != 1 {
		t.Errorf("existing child updates = %d, want 1", got)
	}
	if got := term.Line(2); got != "three" {
		t.Errorf("row 2 = %q, want %q", got, "three")
	}

	app.Apply(func(s *[]string) { *s = (*s)[:1] })
	app.Render()
	if got := list.Len(); got != 1 {
		t.Errorf("Len() after shrink = %d, want 1", got)
	}
	if got := term.Line(1); got != "" {
		t.Errorf("row 1 after shrink = %q, want empty", got)
	}
}

func TestList_StacksChildrenVertically(t *testing.T) {
	list := stringList()
	mount[[]string](t, list, []string{"ab", "c", "defg"}, 10, 5)

	type tc struct {
		idx  int
		want tui.Rect
	}
	tests := map[string]tc{
		"first":  {idx: 0, want: tui.NewRect(0, 0, 10, 1)},
		"second": {idx: 1, want: tui.NewRect(0, 1, 10, 1)},
		"third":  {idx: 2, want: tui.NewRect(0, 2, 10, 1)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := list.children[tt.idx].Rect(); got != tt.want {
				t.Errorf("child rect = %v, want %v", got, tt.want)
			}
		})
	}
}
