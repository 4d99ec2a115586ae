package internal

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// A triangle soup is a flat, unordered working set of triangles for
// incremental mesh construction. Every query is a linear scan in insertion
// order, and the first match wins. There is no spatial index and no
// validation that the triangles form a planar subdivision.
//
// A soup is not safe for concurrent use. Mutating it (or the slice returned by
// Triangles) while a scan is in progress is undefined.
type TriangleSoup struct {
	triangles TriangleList
	logger    *zap.Logger
}

func NewTriangleSoup() *TriangleSoup {
	return &TriangleSoup{logger: zap.NewNop()}
}

func (s *TriangleSoup) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s.logger = logger
}

func (s *TriangleSoup) log() *zap.Logger {
	if s.logger == nil {
		return zap.NewNop()
	}
	return s.logger
}

// Append a triangle. Duplicates are allowed, and both copies are visited by
// later scans.
func (s *TriangleSoup) Add(triangle *Triangle) {
	s.triangles = append(s.triangles, triangle)
	s.log().Debug("added triangle", zap.Stringer("triangle", lazyName{triangle}), zap.Int("size", len(s.triangles)))
}

// Remove the first occurrence of the triangle. Removing a triangle that isn't
// in the soup does nothing.
func (s *TriangleSoup) Remove(triangle *Triangle) {
	for i, member := range s.triangles {
		if member == triangle {
			last := len(s.triangles) - 1
			copy(s.triangles[i:], s.triangles[i+1:])
			// Clear the vacated slot so the removed triangle can be collected
			s.triangles[last] = nil
			s.triangles = s.triangles[:last]
			s.log().Debug("removed triangle", zap.Stringer("triangle", lazyName{triangle}), zap.Int("size", len(s.triangles)))
			return
		}
	}
}

// The live triangle slice. This is not a copy.
func (s *TriangleSoup) Triangles() TriangleList {
	return s.triangles
}

func (s *TriangleSoup) Len() int {
	return len(s.triangles)
}

// Membership by identity.
func (s *TriangleSoup) Has(triangle *Triangle) bool {
	for _, member := range s.triangles {
		if member == triangle {
			return true
		}
	}
	return false
}

// The first triangle containing the point, or nil. On a boundary shared by
// several triangles, whichever was added first wins.
func (s *TriangleSoup) FindContainingTriangle(point Point) *Triangle {
	for _, triangle := range s.triangles {
		if triangle.Contains(point) {
			return triangle
		}
	}
	return nil
}

// The first triangle other than the given one which has the edge, or nil. The
// given triangle is excluded by identity even though it would always match
// its own edges.
func (s *TriangleSoup) FindNeighbour(triangle *Triangle, edge Edge) *Triangle {
	for _, candidate := range s.triangles {
		if candidate != triangle && candidate.IsNeighbour(edge) {
			return candidate
		}
	}
	return nil
}

// One of the triangles having the edge, or nil. Which one depends on the order
// of the soup; use FindNeighbour with the result to get the other side.
func (s *TriangleSoup) FindOneTriangleSharing(edge Edge) *Triangle {
	for _, triangle := range s.triangles {
		if triangle.IsNeighbour(edge) {
			return triangle
		}
	}
	return nil
}

// The edge anywhere in the soup closest to the point. Each triangle reports
// its own nearest edge; those are stably sorted by distance, so ties go to the
// triangle added first. An empty soup has no answer and returns ErrEmptySoup.
func (s *TriangleSoup) FindNearestEdge(point Point) (Edge, error) {
	packs := make([]EdgeDistancePack, 0, len(s.triangles))
	for _, triangle := range s.triangles {
		packs = append(packs, triangle.FindNearestEdge(point))
	}
	if len(packs) == 0 {
		return Edge{}, errors.WithStack(ErrEmptySoup)
	}

	sort.SliceStable(packs, func(i, j int) bool {
		return packs[i].Less(packs[j])
	})
	return packs[0].Edge, nil
}

// Remove every triangle using the vertex. The condemned triangles are
// collected first and then dropped in a single pass, so the soup is never
// modified while it is being scanned.
func (s *TriangleSoup) RemoveTrianglesUsing(vertex Point) {
	condemned := make(map[*Triangle]struct{})
	for _, triangle := range s.triangles {
		if triangle.HasVertex(vertex) {
			condemned[triangle] = struct{}{}
		}
	}
	if len(condemned) == 0 {
		return
	}

	kept := s.triangles[:0]
	for _, triangle := range s.triangles {
		if _, ok := condemned[triangle]; !ok {
			kept = append(kept, triangle)
		}
	}
	// Clear the tail so dropped triangles can be collected
	for i := len(kept); i < len(s.triangles); i++ {
		s.triangles[i] = nil
	}
	removed := len(s.triangles) - len(kept)
	s.triangles = kept

	s.log().Debug("removed triangles using vertex",
		zap.Stringer("vertex", vertex),
		zap.Int("removed", removed),
		zap.Int("size", len(s.triangles)),
	)
}

func (s *TriangleSoup) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "TriangleSoup (%d)", len(s.triangles))
	for _, triangle := range s.triangles {
		b.WriteString("\n  ")
		b.WriteString(triangle.String())
	}
	return b.String()
}

// Debug names are memoized forever, so they must only be generated when a log
// entry is actually written. zap calls String while encoding, which never
// happens for disabled levels.
type lazyName struct {
	t *Triangle
}

func (n lazyName) String() string {
	if n.t == nil {
		return "Ø"
	}
	return n.t.DbgName()
}
