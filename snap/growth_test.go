package snap

import (
	"testing"

	tui "github.com/grindlemire/scrollsnap"
)

func TestGrew(t *testing.T) {
	type tc struct {
		prev, next tui.Size
		axes       tui.Axes
		want       bool
	}

	tests := map[string]tc{
		"first layout from zero": {
			next: tui.Size{Width: 10, Height: 3},
			axes: tui.AxesVertical,
			want: true,
		},
		"unchanged": {
			prev: tui.Size{Width: 10, Height: 3},
			next: tui.Size{Width: 10, Height: 3},
			axes: tui.AxesBoth,
			want: false,
		},
		"shrink": {
			prev: tui.Size{Width: 10, Height: 3},
			next: tui.Size{Width: 10, Height: 2},
			axes: tui.AxesBoth,
			want: false,
		},
		"vertical growth on vertical axis": {
			prev: tui.Size{Width: 10, Height: 3},
			next: tui.Size{Width: 10, Height: 4},
			axes: tui.AxesVertical,
			want: true,
		},
		"vertical growth on untracked axis": {
			prev: tui.Size{Width: 10, Height: 3},
			next: tui.Size{Width: 10, Height: 4},
			axes: tui.AxesHorizontal,
			want: false,
		},
		"horizontal growth while height shrinks": {
			prev: tui.Size{Width: 10, Height: 3},
			next: tui.Size{Width: 12, Height: 1},
			axes: tui.AxesBoth,
			want: true,
		},
		"no axes tracked": {
			next: tui.Size{Width: 12, Height: 12},
			axes: tui.AxesNone,
			want: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Grew(tt.prev, tt.next, tt.axes); got != tt.want {
				t.Errorf("Grew(%v, %v) = %t, want %t", tt.prev, tt.next, got, tt.want)
			}
		})
	}
}

func TestGrownAxes(t *testing.T) {
	type tc struct {
		prev, next tui.Size
		axes       tui.Axes
		want       tui.Axes
	}

	tests := map[string]tc{
		"vertical only": {
			prev: tui.Size{Width: 10, Height: 3},
			next: tui.Size{Width: 10, Height: 4},
			axes: tui.AxesBoth,
			want: tui.AxesVertical,
		},
		"both grew": {
			prev: tui.Size{Width: 10, Height: 3},
			next: tui.Size{Width: 11, Height: 4},
			axes: tui.AxesBoth,
			want: tui.AxesBoth,
		},
		"untracked axis filtered": {
			prev: tui.Size{Width: 10, Height: 3},
			next: tui.Size{Width: 11, Height: 4},
			axes: tui.AxesHorizontal,
			want: tui.AxesHorizontal,
		},
		"horizontal grew while vertical shrank": {
			prev: tui.Size{Width: 10, Height: 3},
			next: tui.Size{Width: 12, Height: 1},
			axes: tui.AxesBoth,
			want: tui.AxesHorizontal,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := GrownAxes(tt.prev, tt.next, tt.axes); got != tt.want {
				t.Errorf("GrownAxes(%v, %v) = %v, want %v", tt.prev, tt.next, got, tt.want)
			}
		})
	}
}

func TestMailbox(t *testing.T) {
	type tc struct {
		posts []tui.Axes
		want  tui.Axes
	}

	tests := map[string]tc{
		"empty":                {want: tui.AxesNone},
		"repeated posts":       {posts: []tui.Axes{tui.AxesVertical, tui.AxesVertical}, want: tui.AxesVertical},
		"axes accumulate":      {posts: []tui.Axes{tui.AxesVertical, tui.AxesHorizontal}, want: tui.AxesBoth},
		"single horizontal":    {posts: []tui.Axes{tui.AxesHorizontal}, want: tui.AxesHorizontal},
		"empty post stays off": {posts: []tui.Axes{tui.AxesNone}, want: tui.AxesNone},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var m mailbox
			for _, axes := range tt.posts {
				m.post(axes)
			}
			if got := m.pending(); got != (tt.want != tui.AxesNone) {
				t.Errorf("pending() = %v, want %v", got, tt.want != tui.AxesNone)
			}
			if got := m.take(); got != tt.want {
				t.Errorf("take() = %v, want %v", got, tt.want)
			}
			if got := m.take(); got != tui.AxesNone {
				t.Errorf("second take() = %v, want none", got)
			}
		})
	}
}

func TestPolicy_Axes(t *testing.T) {
	type tc struct {
		policy Policy[bool]
		want   tui.Axes
	}

	tests := map[string]tc{
		"empty":      {want: tui.AxesNone},
		"vertical":   {policy: Policy[bool]{Vertical: Always[bool]}, want: tui.AxesVertical},
		"horizontal": {policy: Policy[bool]{Horizontal: Never[bool]}, want: tui.AxesHorizontal},
		"both":       {policy: Policy[bool]{Horizontal: Never[bool], Vertical: Always[bool]}, want: tui.AxesBoth},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.policy.Axes(); got != tt.want {
				t.Errorf("Axes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolicy_AllowsUsesLiveData(t *testing.T) {
	p := Policy[bool]{Vertical: func(follow bool) bool { return follow }}

	if !p.Allows(tui.Vertical, true) {
		t.Error("Allows(vertical, true) = false, want true")
	}
	if p.Allows(tui.Vertical, false) {
		t.Error("Allows(vertical, false) = true, want false")
	}
	if p.Allows(tui.Horizontal, true) {
		t.Error("Allows(horizontal) = true for an untracked axis")
	}
}
