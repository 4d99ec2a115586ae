package internal

type Point struct {
	X float64
	Y float64
}

// Edges are unordered. Two edges with the same endpoints in either order are
// the same edge, see Edge.Equals.
type Edge struct {
	A, B Point
}

// Triangles are stored in the soup by pointer, and the pointer is the
// triangle's identity. Two triangles with equal corners are still different
// members of a soup.
type Triangle struct {
	A, B, C Point
}

// Result carrier for nearest edge queries. These are never stored.
type EdgeDistancePack struct {
	Edge     Edge
	Distance float64
}

type TriangleList []*Triangle
