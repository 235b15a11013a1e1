package layout

// Axis selects one of the two layout directions.
type Axis uint8

const (
	// Horizontal is the X axis (columns).
	Horizontal Axis = iota
	// Vertical is the Y axis (rows).
	Vertical
)

// String returns "horizontal" or "vertical".
func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Cross returns the other axis.
func (a Axis) Cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// Axes is a set of axes.
type Axes uint8

const (
	// AxesNone tracks nothing.
	AxesNone Axes = 0
	// AxesHorizontal contains only the horizontal axis.
	AxesHorizontal Axes = 1 << Horizontal
	// AxesVertical contains only the vertical axis.
	AxesVertical Axes = 1 << Vertical
	// AxesBoth contains both axes.
	AxesBoth = AxesHorizontal | AxesVertical
)

// AxesOf builds a set from individual axes.
func AxesOf(axes ...Axis) Axes {
	var s Axes
	for _, a := range axes {
		s |= 1 << a
	}
	return s
}

// Has reports whether axis is in the set.
func (s Axes) Has(axis Axis) bool {
	return s&(1<<axis) != 0
}

// Edge selects the start or end of an axis.
type Edge uint8

const (
	// EdgeStart is the top or left edge.
	EdgeStart Edge = iota
	// EdgeEnd is the bottom or right edge.
	EdgeEnd
)
