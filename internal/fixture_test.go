package internal

import (
	"embed"
	"log"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// This file parses the svg fixtures into soups. It is not a real svg parser:
// every <polygon> element with exactly three points becomes a triangle, in
// document order, and anything else is fatal. Coordinates are used as written,
// so the svg y axis is upside down relative to the soup.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) *TriangleSoup {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}

	soup := NewTriangleSoup()
	for _, polygonEl := range polygons {
		var points []Point
		for _, pointString := range strings.Fields(polygonEl.Attributes["points"]) {
			coords := strings.Split(pointString, ",")
			if len(coords) != 2 {
				log.Fatalf("Invalid point string %q in fixture %q", pointString, name)
			}
			x, err := strconv.ParseFloat(coords[0], 64)
			if err != nil {
				log.Fatalf("Invalid x value %q: %v", coords[0], err)
			}
			y, err := strconv.ParseFloat(coords[1], 64)
			if err != nil {
				log.Fatalf("Invalid y value %q: %v", coords[1], err)
			}
			points = append(points, Point{x, y})
		}
		if len(points) != 3 {
			log.Fatalf("Polygon with %d points in fixture %q is not a triangle", len(points), name)
		}
		soup.Add(NewTriangle(points[0], points[1], points[2]))
	}

	// Set SOUP_DRAW to see fixtures in the terminal while running verbose tests
	if testing.Verbose() && os.Getenv("SOUP_DRAW") != "" {
		soup.dbgDraw(40)
	}
	return soup
}

func TestLoadFixture(t *testing.T) {
	fan := LoadFixture("fan")
	require.Equal(t, 8, fan.Len())
	assert.Equal(t, &Triangle{Point{0, 0}, Point{4, 0}, Point{2, 3}}, fan.Triangles()[0])

	strip := LoadFixture("strip")
	assert.Equal(t, 6, strip.Len())
}

// Walk along the strip from one end to the other using only adjacency queries
func TestFixture_WalkStrip(t *testing.T) {
	strip := LoadFixture("strip")
	current := strip.FindContainingTriangle(Point{0.1, 0.1})
	require.NotNil(t, current)

	visited := TriangleList{current}
	var previous *Triangle
	for {
		var next *Triangle
		for _, edge := range current.Edges() {
			neighbour := strip.FindNeighbour(current, edge)
			if neighbour != nil && neighbour != previous {
				next = neighbour
				break
			}
		}
		if next == nil {
			break
		}
		previous, current = current, next
		visited = append(visited, current)
	}

	assert.Equal(t, strip.Triangles(), visited)
}

// Every spoke of the fan is shared by exactly two triangles
func TestFixture_FanSpokes(t *testing.T) {
	fan := LoadFixture("fan")
	center := Point{0, 0}
	for _, spoke := range []Point{{4, 0}, {2, 3}, {-2, 3}, {-4, 0}, {-2, -3}, {2, -3}} {
		edge := NewEdge(center, spoke)
		one := fan.FindOneTriangleSharing(edge)
		require.NotNil(t, one, "spoke to %s", spoke)
		other := fan.FindNeighbour(one, edge)
		require.NotNil(t, other, "spoke to %s", spoke)
		assert.NotSame(t, one, other)
		assert.Same(t, one, fan.FindNeighbour(other, edge.Reverse()))
	}
}
