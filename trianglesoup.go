// A triangle soup for incremental mesh construction in Go.
//
// A soup is a flat, unordered working set of planar triangles. It answers the
// bookkeeping queries a triangulation driver needs between edits: which
// triangle contains a point, which triangle is across an edge, which edge is
// nearest to a point, and removing every triangle that uses a vertex. All
// queries are linear scans in insertion order, and the first match wins.
package trianglesoup

import (
	"io"

	"github.com/osuushi/trianglesoup/internal"
)

type Point = internal.Point
type Edge = internal.Edge
type Triangle = internal.Triangle
type EdgeDistancePack = internal.EdgeDistancePack
type Soup = internal.TriangleSoup

// Returned (wrapped) by FindNearestEdge on an empty soup. Use errors.Is.
var ErrEmptySoup = internal.ErrEmptySoup

// Create an empty soup. Its logger is a no-op until SetLogger is called.
func New() *Soup {
	return internal.NewTriangleSoup()
}

// An unordered edge: NewEdge(a, b) equals NewEdge(b, a).
func NewEdge(a, b Point) Edge {
	return internal.NewEdge(a, b)
}

// A new triangle. Soups identify triangles by pointer, not by corners.
func NewTriangle(a, b, c Point) *Triangle {
	return internal.NewTriangle(a, b, c)
}

// Read a soup in the plain text format: one "x y" point per line, three
// points per triangle, and a blank line between triangles.
func Read(in io.Reader) (*Soup, error) {
	return internal.ReadText(in)
}

// Read a soup from a YAML document with a list of triangles, each with a
// "points" list of three [x, y] pairs.
func ReadYAML(in io.Reader) (*Soup, error) {
	return internal.ReadYAML(in)
}

// Write a soup in the format ReadYAML reads, in soup order.
func WriteYAML(out io.Writer, soup *Soup) error {
	return internal.WriteYAML(out, soup)
}
