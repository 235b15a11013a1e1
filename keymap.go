package tui

// KeyMap is an ordered list of key bindings over data of type T. A widget
// usually builds one at construction time and calls Handle from Event.
type KeyMap[T any] []KeyBinding[T]

// KeyBinding associates a key pattern with a handler.
type KeyBinding[T any] struct {
	Pattern KeyPattern
	Handler func(ctx *EventCtx, ev KeyEvent, data *T)
	Stop    bool // If true, later bindings do not fire for this key
}

// KeyPattern identifies which key events match a binding.
type KeyPattern struct {
	Key           Key      // Specific key (KeyEnter, KeyEscape, etc.), or 0
	Rune          rune     // Specific rune, or 0
	AnyRune       bool     // Match any printable character
	Mod           Modifier // Required modifiers (when non-zero, event must have exactly these mods)
	RequireNoMods bool     // When true, event must have no modifiers (Mod field is ignored)
}

// Matches reports whether ke satisfies the pattern.
func (p KeyPattern) Matches(ke KeyEvent) bool {
	if p.RequireNoMods && ke.Mod != 0 {
		return false
	}
	if p.Mod != 0 && ke.Mod != p.Mod {
		return false
	}

	if p.AnyRune && ke.Key == KeyRune {
		return true
	}
	if p.Rune != 0 && ke.Rune == p.Rune && ke.Key == KeyRune {
		return true
	}
	if p.Key != 0 && ke.Key == p.Key {
		return true
	}
	return false
}

// OnKey creates a binding for a specific key. Later bindings for the same
// key also fire.
func OnKey[T any](key Key, handler func(*EventCtx, KeyEvent, *T)) KeyBinding[T] {
	return KeyBinding[T]{Pattern: KeyPattern{Key: key}, Handler: handler}
}

// OnKeyStop creates a stop-propagation binding for a specific key.
func OnKeyStop[T any](key Key, handler func(*EventCtx, KeyEvent, *T)) KeyBinding[T] {
	return KeyBinding[T]{Pattern: KeyPattern{Key: key}, Handler: handler, Stop: true}
}

// OnRune creates a binding for a specific printable character.
func OnRune[T any](r rune, handler func(*EventCtx, KeyEvent, *T)) KeyBinding[T] {
	return KeyBinding[T]{Pattern: KeyPattern{Rune: r}, Handler: handler}
}

// OnRuneStop creates a stop-propagation binding for a specific printable character.
func OnRuneStop[T any](r rune, handler func(*EventCtx, KeyEvent, *T)) KeyBinding[T] {
	return KeyBinding[T]{Pattern: KeyPattern{Rune: r}, Handler: handler, Stop: true}
}

// Handle runs every binding matching ev in order, stopping after the first
// Stop binding. The event is marked handled when any binding fired. Handle
// reports whether one did.
func (km KeyMap[T]) Handle(ctx *EventCtx, ev KeyEvent, data *T) bool {
	fired := false
	for _, b := range km {
		if !b.Pattern.Matches(ev) {
			continue
		}
		b.Handler(ctx, ev, data)
		fired = true
		if b.Stop {
			break
		}
	}
	if fired {
		ctx.SetHandled()
	}
	return fired
}
