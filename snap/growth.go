package snap

import tui "github.com/grindlemire/scrollsnap"

// GrownAxes returns the axes in axes along which next is strictly larger
// than prev. Shrinking or unchanged extents never count.
func GrownAxes(prev, next tui.Size, axes tui.Axes) tui.Axes {
	var grew tui.Axes
	for _, axis := range []tui.Axis{tui.Horizontal, tui.Vertical} {
		if axes.Has(axis) && next.Get(axis) > prev.Get(axis) {
			grew |= tui.AxesOf(axis)
		}
	}
	return grew
}

// Grew reports whether next is strictly larger than prev along any axis in
// axes.
func Grew(prev, next tui.Size, axes tui.Axes) bool {
	return GrownAxes(prev, next, axes) != tui.AxesNone
}
