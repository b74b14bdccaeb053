package point

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Point is an (X, Y) pair of signed integers.
type Point struct{ X, Y int }

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point { return Point{x, y} }

// Unit directions. Y grows downwards, so North is (0,-1).
var (
	Zero  = Point{}
	North = Point{0, -1}
	East  = Point{1, 0}
	South = Point{0, 1}
	West  = Point{-1, 0}
)

// Dirs4 lists the axis-aligned directions in N, E, S, W order.
var Dirs4 = [4]Point{North, East, South, West}

// Dirs8 lists all eight neighbor deltas clockwise from North.
var Dirs8 = [8]Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// Add returns pt + other.
func (pt Point) Add(other Point) Point {
	pt.X += other.X
	pt.Y += other.Y
	return pt
}

// Sub returns pt - other.
func (pt Point) Sub(other Point) Point {
	pt.X -= other.X
	pt.Y -= other.Y
	return pt
}

// Mul scales both components by n.
func (pt Point) Mul(n int) Point {
	pt.X *= n
	pt.Y *= n
	return pt
}

// Neg returns the opposite vector; for a direction that is its reversal.
func (pt Point) Neg() Point {
	return Point{-pt.X, -pt.Y}
}

// RotateLeft rotates a delta 90° counter-clockwise on screen.
func (pt Point) RotateLeft() Point {
	return Point{pt.Y, -pt.X}
}

// RotateRight rotates a delta 90° clockwise on screen.
func (pt Point) RotateRight() Point {
	return Point{-pt.Y, pt.X}
}

// Manhattan returns |dx| + |dy| between pt and other.
func (pt Point) Manhattan(other Point) int {
	return AbsDiff(pt.X, other.X) + AbsDiff(pt.Y, other.Y)
}

// String formats the point as "x,y", the form puzzle answers use.
func (pt Point) String() string {
	return strconv.Itoa(pt.X) + "," + strconv.Itoa(pt.Y)
}

// Abs returns |v|.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// AbsDiff returns |a - b|.
func AbsDiff[T constraints.Signed](a, b T) T {
	return Abs(a - b)
}
