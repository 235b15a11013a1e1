package layout

// Unbounded is the maximum extent handed to children along a scrolling axis.
// It is large enough to be "infinite" for a terminal and small enough that
// sums of a few of them cannot overflow.
const Unbounded = 1 << 24

// Size represents a width/height pair.
type Size struct {
	Width, Height int
}

// Get returns the extent along axis.
func (s Size) Get(axis Axis) int {
	if axis == Horizontal {
		return s.Width
	}
	return s.Height
}

// With returns a copy of s with the extent along axis replaced by v.
func (s Size) With(axis Axis, v int) Size {
	if axis == Horizontal {
		s.Width = v
	} else {
		s.Height = v
	}
	return s
}

// IsZero reports whether both extents are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Constraints bound the size a widget may choose during layout.
// Min is never larger than Max along either axis.
type Constraints struct {
	Min, Max Size
}

// Tight returns constraints that only admit s.
func Tight(s Size) Constraints {
	return Constraints{Min: s, Max: s}
}

// Loose returns constraints from zero up to max.
func Loose(max Size) Constraints {
	return Constraints{Max: max}
}

// Loosen drops the minimum size.
func (c Constraints) Loosen() Constraints {
	return Constraints{Max: c.Max}
}

// Unbound returns a copy of c with the maximum along axis set to Unbounded.
func (c Constraints) Unbound(axis Axis) Constraints {
	c.Max = c.Max.With(axis, Unbounded)
	return c
}

// IsBounded reports whether the maximum along axis is a real limit.
func (c Constraints) IsBounded(axis Axis) bool {
	return c.Max.Get(axis) < Unbounded
}

// Constrain clamps s into [Min, Max] on both axes.
func (c Constraints) Constrain(s Size) Size {
	return Size{
		Width:  clamp(s.Width, c.Min.Width, c.Max.Width),
		Height: clamp(s.Height, c.Min.Height, c.Max.Height),
	}
}

// Shrink reduces both bounds by the given amounts, never below zero.
func (c Constraints) Shrink(width, height int) Constraints {
	return Constraints{
		Min: Size{Width: max(0, c.Min.Width-width), Height: max(0, c.Min.Height-height)},
		Max: Size{Width: max(0, c.Max.Width-width), Height: max(0, c.Max.Height-height)},
	}
}

// Clamp restricts v to the range [lo, hi]. When hi < lo, lo wins.
func Clamp(v, lo, hi int) int {
	return clamp(v, lo, hi)
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
