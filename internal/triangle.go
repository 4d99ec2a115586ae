package internal

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/trianglesoup/internal/dbg"
)

func NewTriangle(a, b, c Point) *Triangle {
	return &Triangle{A: a, B: b, C: c}
}

// The three edges in the fixed order AB, BC, CA. Query tie-breaks rely on
// this order.
func (t *Triangle) Edges() [3]Edge {
	return [3]Edge{
		{t.A, t.B},
		{t.B, t.C},
		{t.C, t.A},
	}
}

func (t *Triangle) Vertices() [3]Point {
	return [3]Point{t.A, t.B, t.C}
}

// Twice the signed area is the cross product of two sides. Positive for
// counterclockwise triangles.
func (t *Triangle) SignedArea() float64 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)) / 2
}

func (t *Triangle) Area() float64 {
	area := t.SignedArea()
	if area < 0 {
		return -area
	}
	return area
}

func (t *Triangle) IsCCW() bool {
	return Orientation(t.A, t.B, t.C) > 0
}

func (t *Triangle) IsCW() bool {
	return Orientation(t.A, t.B, t.C) < 0
}

func (t *Triangle) IsDegenerate() bool {
	return Orientation(t.A, t.B, t.C) == 0
}

// Point containment, inclusive of the boundary. The point is inside when it
// is not strictly on opposite sides of any two edges. This works for either
// winding.
func (t *Triangle) Contains(p Point) bool {
	if t.IsDegenerate() {
		// Every cross product is zero for collinear corners, so fall back to
		// checking the segments directly.
		for _, edge := range t.Edges() {
			if edge.DistanceTo(p) <= Tolerance*edge.Length() || p.Equals(edge.A) {
				return true
			}
		}
		return false
	}

	var sawPositive, sawNegative bool
	for _, edge := range t.Edges() {
		switch Orientation(edge.A, edge.B, p) {
		case 1:
			sawPositive = true
		case -1:
			sawNegative = true
		}
	}
	return !(sawPositive && sawNegative)
}

func (t *Triangle) HasVertex(p Point) bool {
	return t.A.Equals(p) || t.B.Equals(p) || t.C.Equals(p)
}

// A triangle is a neighbour of an edge when both endpoints of the edge are
// corners of the triangle, i.e. the edge is one of the triangle's own edges.
func (t *Triangle) IsNeighbour(edge Edge) bool {
	return t.HasVertex(edge.A) && t.HasVertex(edge.B)
}

// The corner which is not on the edge. Returns false if the edge is not one of
// the triangle's edges.
func (t *Triangle) NoneEdgeVertex(edge Edge) (Point, bool) {
	if !t.IsNeighbour(edge) {
		return Point{}, false
	}
	for _, corner := range t.Vertices() {
		if !corner.Equals(edge.A) && !corner.Equals(edge.B) {
			return corner, true
		}
	}
	return Point{}, false
}

// The edge of this triangle closest to p. Equal distances resolve to the
// earliest edge in Edges() order.
func (t *Triangle) FindNearestEdge(p Point) EdgeDistancePack {
	edges := t.Edges()
	nearest := EdgeDistancePack{edges[0], edges[0].DistanceTo(p)}
	for _, edge := range edges[1:] {
		candidate := EdgeDistancePack{edge, edge.DistanceTo(p)}
		if candidate.Less(nearest) {
			nearest = candidate
		}
	}
	return nearest
}

func (t *Triangle) String() string {
	return fmt.Sprintf("Triangle %s <A: %s, B: %s, C: %s>", t.DbgName(), t.A, t.B, t.C)
}

func (t *Triangle) DbgName() string {
	name := dbg.Name(t)
	if t.IsDegenerate() {
		name = aurora.Red(name).String()
	} else if t.IsCW() {
		name = aurora.Cyan(name).String()
	} else {
		name = aurora.Green(name).String()
	}
	return name
}

func (tl TriangleList) String() string {
	parts := make([]string, 0, len(tl))
	for _, t := range tl {
		parts = append(parts, dbg.Name(t))
	}
	return fmt.Sprintf("%v", parts)
}
