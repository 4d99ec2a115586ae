package internal

import (
	"fmt"
	"math"
)

// Predicates use a tolerance so that points sitting on an edge are not thrown
// out by rounding. It is always scaled by the magnitudes being compared. Point
// identity never uses it; see Point.Equals.
const Tolerance = 1e-9

// Which side of the line through a and b the point p is on: 1 for left
// (counterclockwise), -1 for right, and 0 for collinear. The collinear band is
// relative to the lengths involved, so the answer doesn't depend on the units
// of the coordinates.
func Orientation(a, b, p Point) int {
	ab := b.Sub(a)
	ap := p.Sub(a)
	cross := ab.Cross(ap)
	if math.Abs(cross) <= Tolerance*ab.Mag()*ap.Mag() {
		return 0
	}
	if cross < 0 {
		return -1
	}
	return 1
}

// Exact coordinate equality.
func (p Point) Equals(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

func (p Point) Dot(other Point) float64 {
	return p.X*other.X + p.Y*other.Y
}

// Z component of the 3D cross product.
func (p Point) Cross(other Point) float64 {
	return p.X*other.Y - p.Y*other.X
}

func (p Point) Mag() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
