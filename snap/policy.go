package snap

import tui "github.com/grindlemire/scrollsnap"

// Predicate decides from the current data whether snapping is allowed.
type Predicate[T any] func(T) bool

// Never is the predicate of an axis that does not snap.
func Never[T any](T) bool { return false }

// Always snaps whenever the content grows.
func Always[T any](T) bool { return true }

// Policy holds one predicate per axis. A nil predicate means the axis is not
// tracked and never snaps.
type Policy[T any] struct {
	Horizontal Predicate[T]
	Vertical   Predicate[T]
}

// Axes returns the axes with a predicate.
func (p Policy[T]) Axes() tui.Axes {
	var axes tui.Axes
	if p.Horizontal != nil {
		axes |= tui.AxesHorizontal
	}
	if p.Vertical != nil {
		axes |= tui.AxesVertical
	}
	return axes
}

// Allows evaluates the predicate for axis against data.
func (p Policy[T]) Allows(axis tui.Axis, data T) bool {
	pred := p.Vertical
	if axis == tui.Horizontal {
		pred = p.Horizontal
	}
	return pred != nil && pred(data)
}
