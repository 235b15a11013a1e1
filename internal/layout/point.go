package layout

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y int
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns a new Point with other subtracted.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// In returns true if the point is inside the given rectangle.
func (p Point) In(r Rect) bool {
	return r.Contains(p.X, p.Y)
}

// Get returns the coordinate along axis.
func (p Point) Get(axis Axis) int {
	if axis == Horizontal {
		return p.X
	}
	return p.Y
}

// With returns a copy of p with the coordinate along axis replaced by v.
func (p Point) With(axis Axis, v int) Point {
	if axis == Horizontal {
		p.X = v
	} else {
		p.Y = v
	}
	return p
}

// Vec2 is a scroll delta. Components are added to an offset with saturation,
// so math.MaxInt is a valid "as far as possible" request.
type Vec2 struct {
	X, Y int
}

// Along returns a Vec2 with v on axis and zero on the other axis.
func Along(axis Axis, v int) Vec2 {
	if axis == Horizontal {
		return Vec2{X: v}
	}
	return Vec2{Y: v}
}

// SaturatingAdd adds a and b, pinning the result at math.MaxInt or math.MinInt
// instead of wrapping.
func SaturatingAdd(a, b int) int {
	sum := a + b
	if b > 0 && sum < a {
		return maxInt
	}
	if b < 0 && sum > a {
		return minInt
	}
	return sum
}

const (
	maxInt = int(^uint(0) >> 1)
	minInt = -maxInt - 1
)
