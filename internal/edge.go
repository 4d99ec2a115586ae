package internal

import "fmt"

func NewEdge(a, b Point) Edge {
	return Edge{A: a, B: b}
}

// Order independent: edge(a, b) equals edge(b, a).
func (e Edge) Equals(other Edge) bool {
	return (e.A.Equals(other.A) && e.B.Equals(other.B)) ||
		(e.A.Equals(other.B) && e.B.Equals(other.A))
}

func (e Edge) Reverse() Edge {
	return Edge{A: e.B, B: e.A}
}

func (e Edge) Length() float64 {
	return e.B.Sub(e.A).Mag()
}

// Project p onto the segment, clamping to the endpoints. A degenerate edge
// (both endpoints equal) has only one closest point.
func (e Edge) ClosestPoint(p Point) Point {
	ab := e.B.Sub(e.A)
	lengthSquared := ab.Dot(ab)
	if lengthSquared == 0 {
		return e.A
	}

	t := p.Sub(e.A).Dot(ab) / lengthSquared
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return e.A.Add(ab.Scale(t))
}

func (e Edge) DistanceTo(p Point) float64 {
	return p.Sub(e.ClosestPoint(p)).Mag()
}

func (e Edge) String() string {
	return fmt.Sprintf("%s-%s", e.A, e.B)
}

func (pack EdgeDistancePack) Less(other EdgeDistancePack) bool {
	return pack.Distance < other.Distance
}
