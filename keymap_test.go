package tui

import "testing"

func TestKeyPattern_Matches(t *testing.T) {
	type tc struct {
		pattern KeyPattern
		ev      KeyEvent
		want    bool
	}

	tests := map[string]tc{
		"rune matches": {
			pattern: KeyPattern{Rune: 'q'},
			ev:      KeyEvent{Key: KeyRune, Rune: 'q'},
			want:    true,
		},
		"rune mismatch": {
			pattern: KeyPattern{Rune: 'q'},
			ev:      KeyEvent{Key: KeyRune, Rune: 'p'},
		},
		"key matches": {
			pattern: KeyPattern{Key: KeyEnter},
			ev:      KeyEvent{Key: KeyEnter},
			want:    true,
		},
		"any rune ignores special keys": {
			pattern: KeyPattern{AnyRune: true},
			ev:      KeyEvent{Key: KeyEnter},
		},
		"required mod present": {
			pattern: KeyPattern{Rune: 'a', Mod: ModCtrl},
			ev:      KeyEvent{Key: KeyRune, Rune: 'a', Mod: ModCtrl},
			want:    true,
		},
		"required mod absent": {
			pattern: KeyPattern{Rune: 'a', Mod: ModCtrl},
			ev:      KeyEvent{Key: KeyRune, Rune: 'a'},
		},
		"no mods rejects alt": {
			pattern: KeyPattern{Rune: 'a', RequireNoMods: true},
			ev:      KeyEvent{Key: KeyRune, Rune: 'a', Mod: ModAlt},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.pattern.Matches(tt.ev); got != tt.want {
				t.Errorf("Matches(%+v) = %v, want %v", tt.ev, got, tt.want)
			}
		})
	}
}

func TestKeyMap_Handle(t *testing.T) {
	type tc struct {
		ev          KeyEvent
		wantCalls   []string
		wantHandled bool
	}

	record := func(name string) func(*EventCtx, KeyEvent, *[]string) {
		return func(_ *EventCtx, _ KeyEvent, calls *[]string) {
			*calls = append(*calls, name)
		}
	}
	km := KeyMap[[]string]{
		OnRune('a', record("a1")),
		OnRune('a', record("a2")),
		OnRuneStop('b', record("b1")),
		OnRune('b', record("b2")),
		OnKey(KeyEnter, record("enter")),
	}

	tests := map[string]tc{
		"non-stop bindings all fire": {
			ev:          KeyEvent{Key: KeyRune, Rune: 'a'},
			wantCalls:   []string{"a1", "a2"},
			wantHandled: true,
		},
		"stop binding halts later ones": {
			ev:          KeyEvent{Key: KeyRune, Rune: 'b'},
			wantCalls:   []string{"b1"},
			wantHandled: true,
		},
		"special key": {
			ev:          KeyEvent{Key: KeyEnter},
			wantCalls:   []string{"enter"},
			wantHandled: true,
		},
		"unbound key is left unhandled": {
			ev: KeyEvent{Key: KeyRune, Rune: 'z'},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := &EventCtx{st: &frameState{}}
			var calls []string
			fired := km.Handle(ctx, tt.ev, &calls)
			if fired != tt.wantHandled || ctx.IsHandled() != tt.wantHandled {
				t.Errorf("Handle = %v, IsHandled = %v, want %v", fired, ctx.IsHandled(), tt.wantHandled)
			}
			if len(calls) != len(tt.wantCalls) {
				t.Fatalf("calls = %v, want %v", calls, tt.wantCalls)
			}
			for i := range calls {
				if calls[i] != tt.wantCalls[i] {
					t.Errorf("calls = %v, want %v", calls, tt.wantCalls)
					break
				}
			}
		})
	}
}
