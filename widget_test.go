package tui

import (
	"testing"
	"time"
)

// probe remembers the last event and lifecycle notifications it saw and
// fills its whole area when painted.
type probe struct {
	events    []Event
	lifecycle []LifecycleEvent
}

func (p *probe) Event(_ *EventCtx, ev Event, _ *int) { p.events = append(p.events, ev) }
func (p *probe) Lifecycle(_ *LifecycleCtx, ev LifecycleEvent, _ int) {
	p.lifecycle = append(p.lifecycle, ev)
}
func (p *probe) Update(*UpdateCtx, int, int) {}
func (p *probe) Layout(_ *LayoutCtx, bc Constraints, _ int) Size {
	return bc.Max
}
func (p *probe) Paint(ctx *PaintCtx, _ int) {
	ctx.Fill(NewRect(0, 0, 100, 100), '*', NewStyle())
}

func placedPod(origin Point, size Size) (*WidgetPod[int], *probe) {
	w := &probe{}
	pod := NewWidgetPod[int](w)
	pod.Layout(&LayoutCtx{st: &frameState{}}, Tight(size), 0)
	pod.SetOrigin(origin)
	return pod, w
}

func TestWidgetPod_MouseRouting(t *testing.T) {
	type tc struct {
		ev     MouseEvent
		want   bool
		wantAt Point
	}

	tests := map[string]tc{
		"inside is translated": {
			ev:     MouseEvent{Button: MouseLeft, X: 3, Y: 2},
			want:   true,
			wantAt: Point{X: 1, Y: 1},
		},
		"top left corner": {
			ev:     MouseEvent{Button: MouseLeft, X: 2, Y: 1},
			want:   true,
			wantAt: Point{},
		},
		"right of child": {
			ev: MouseEvent{Button: MouseLeft, X: 6, Y: 2},
		},
		"above child": {
			ev: MouseEvent{Button: MouseLeft, X: 3, Y: 0},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			pod, w := placedPod(Point{X: 2, Y: 1}, Size{Width: 4, Height: 2})
			data := 0
			pod.Event(&EventCtx{st: &frameState{}}, tt.ev, &data)

			if got := len(w.events) == 1; got != tt.want {
				t.Fatalf("delivered = %t, want %t", got, tt.want)
			}
			if !tt.want {
				return
			}
			if got := w.events[0].(MouseEvent).Pos(); got != tt.wantAt {
				t.Errorf("position = %v, want %v", got, tt.wantAt)
			}
		})
	}
}

func TestWidgetPod_SkipsHandledEvents(t *testing.T) {
	pod, w := placedPod(Point{}, Size{Width: 4, Height: 4})
	ctx := &EventCtx{st: &frameState{}}
	ctx.SetHandled()

	data := 0
	pod.Event(ctx, KeyEvent{Key: KeyEnter}, &data)
	if len(w.events) != 0 {
		t.Errorf("handled event reached child: %v", w.events)
	}
}

func TestWidgetPod_WidgetAddedOnce(t *testing.T) {
	pod, w := placedPod(Point{}, Size{Width: 1, Height: 1})
	ctx := &LifecycleCtx{st: &frameState{}}

	pod.Lifecycle(ctx, LifecycleChildrenChanged{}, 0)
	pod.Lifecycle(ctx, LifecycleChildrenChanged{}, 0)
	pod.Lifecycle(ctx, LifecycleWidgetAdded{}, 0)

	want := []LifecycleEvent{LifecycleWidgetAdded{}, LifecycleChildrenChanged{}, LifecycleChildrenChanged{}}
	if len(w.lifecycle) != len(want) {
		t.Fatalf("lifecycle = %v, want %v", w.lifecycle, want)
	}
	for i := range want {
		if w.lifecycle[i] != want[i] {
			t.Errorf("lifecycle[%d] = %T, want %T", i, w.lifecycle[i], want[i])
		}
	}
	if !pod.IsAdded() {
		t.Error("IsAdded() = false after routing")
	}
}

func TestWidgetPod_PaintClipsToRect(t *testing.T) {
	buf := NewBuffer(6, 4)
	pod, _ := placedPod(Point{X: 1, Y: 1}, Size{Width: 3, Height: 2})
	pod.Paint(&PaintCtx{st: &frameState{}, buf: buf, clip: buf.Rect()}, 0)

	want := "\n ***\n ***\n"
	if got := buf.String(); got != want {
		t.Errorf("buffer =\n%s\nwant\n%s", got, want)
	}
}

func TestWidgetPod_PaintSkipsOffscreen(t *testing.T) {
	buf := NewBuffer(4, 4)
	pod, _ := placedPod(Point{X: 10, Y: 10}, Size{Width: 3, Height: 2})
	pod.Paint(&PaintCtx{st: &frameState{}, buf: buf, clip: buf.Rect()}, 0)

	if got := buf.String(); got != "\n\n\n" {
		t.Errorf("offscreen child painted %q", got)
	}
}

func TestWatchers(t *testing.T) {
	type tc struct {
		watcher func(hits chan<- string) (Watcher, func())
		want    []string
	}

	tests := map[string]tc{
		"channel values in order": {
			watcher: func(hits chan<- string) (Watcher, func()) {
				ch := make(chan string, 2)
				ch <- "a"
				ch <- "b"
				return Watch(ch, func(v string) { hits <- v }), func() { close(ch) }
			},
			want: []string{"a", "b"},
		},
		"timer fires repeatedly": {
			watcher: func(hits chan<- string) (Watcher, func()) {
				return OnTimer(time.Millisecond, func() { hits <- "tick" }), func() {}
			},
			want: []string{"tick", "tick"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			queue := make(chan func(), 4)
			stop := make(chan struct{})
			defer close(stop)

			hits := make(chan string, 8)
			w, done := tt.watcher(hits)
			w.Start(queue, stop)
			defer done()

			for i, want := range tt.want {
				select {
				case fn := <-queue:
					fn()
				case <-time.After(2 * time.Second):
					t.Fatalf("handler %d never queued", i)
				}
				if got := <-hits; got != want {
					t.Errorf("hit %d = %q, want %q", i, got, want)
				}
			}
		})
	}
}
