// layout.go re-exports geometry types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package tui

import "github.com/grindlemire/scrollsnap/internal/layout"

// Point represents an (X, Y) coordinate.
type Point = layout.Point

// Size represents a width/height pair.
type Size = layout.Size

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Vec2 is a scroll delta.
type Vec2 = layout.Vec2

// Constraints bound the size a widget may choose during layout.
type Constraints = layout.Constraints

// Axis selects the horizontal or vertical direction.
type Axis = layout.Axis

const (
	Horizontal = layout.Horizontal
	Vertical   = layout.Vertical
)

// Axes is a set of axes.
type Axes = layout.Axes

const (
	AxesNone       = layout.AxesNone
	AxesHorizontal = layout.AxesHorizontal
	AxesVertical   = layout.AxesVertical
	AxesBoth       = layout.AxesBoth
)

// AxesOf builds a set from individual axes.
func AxesOf(axes ...Axis) Axes {
	return layout.AxesOf(axes...)
}

// Edge selects the start or end of an axis.
type Edge = layout.Edge

const (
	EdgeStart = layout.EdgeStart
	EdgeEnd   = layout.EdgeEnd
)

// Unbounded is the maximum extent handed to children along a scrolling axis.
const Unbounded = layout.Unbounded

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// Tight returns constraints that only admit s.
func Tight(s Size) Constraints {
	return layout.Tight(s)
}

// Loose returns constraints from zero up to max.
func Loose(max Size) Constraints {
	return layout.Loose(max)
}
