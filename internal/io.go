package internal

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Two mesh formats are supported.
//
// The text format has one "x y" point per line, three points per triangle,
// with triangles separated by a blank line. Lines starting with '#' are
// comments.
//
// The YAML format is a document with a list of triangles, each with a list of
// three [x, y] points:
//
//	triangles:
//	  - points: [[0, 0], [1, 0], [0, 1]]

type yamlSoup struct {
	Triangles []yamlTriangle `yaml:"triangles"`
}

type yamlTriangle struct {
	Points [][]float64 `yaml:"points,flow"`
}

func ReadText(in io.Reader) (soup *TriangleSoup, err error) {
	defer func() {
		if recoveredErr := HandlePanicRecover(recover()); recoveredErr != nil {
			soup = nil
			err = recoveredErr
		}
	}()

	soup = NewTriangleSoup()
	scanner := bufio.NewScanner(in)
	var points []Point
	lineNumber := 0
	flush := func() {
		if len(points) == 0 {
			return
		}
		soup.Add(triangleFromPoints(points, lineNumber))
		points = nil
	}

	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		// A blank line ends the triangle
		if line == "" {
			flush()
			continue
		}
		points = append(points, parsePoint(line, lineNumber))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading triangles")
	}

	// Handle a trailing triangle with no blank line after it
	flush()
	return soup, nil
}

func parsePoint(line string, lineNumber int) Point {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		fatalf("line %d: expected \"x y\", got %q", lineNumber, line)
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		fatalf("line %d: invalid x value %q: %v", lineNumber, fields[0], err)
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		fatalf("line %d: invalid y value %q: %v", lineNumber, fields[1], err)
	}
	return Point{X: x, Y: y}
}

func triangleFromPoints(points []Point, lineNumber int) *Triangle {
	if len(points) != 3 {
		fatalf("line %d: triangle has %d points, expected 3", lineNumber, len(points))
	}
	return NewTriangle(points[0], points[1], points[2])
}

func ReadYAML(in io.Reader) (soup *TriangleSoup, err error) {
	defer func() {
		if recoveredErr := HandlePanicRecover(recover()); recoveredErr != nil {
			soup = nil
			err = recoveredErr
		}
	}()

	var doc yamlSoup
	if err := yaml.NewDecoder(in).Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decoding yaml soup")
	}

	soup = NewTriangleSoup()
	for i, yamlTri := range doc.Triangles {
		if len(yamlTri.Points) != 3 {
			fatalf("triangle %d: has %d points, expected 3", i, len(yamlTri.Points))
		}
		var corners [3]Point
		for j, coords := range yamlTri.Points {
			if len(coords) != 2 {
				fatalf("triangle %d, point %d: has %d coordinates, expected 2", i, j, len(coords))
			}
			corners[j] = Point{X: coords[0], Y: coords[1]}
		}
		soup.Add(NewTriangle(corners[0], corners[1], corners[2]))
	}
	return soup, nil
}

func WriteYAML(out io.Writer, soup *TriangleSoup) error {
	doc := yamlSoup{Triangles: make([]yamlTriangle, 0, soup.Len())}
	for _, t := range soup.Triangles() {
		points := make([][]float64, 0, 3)
		for _, corner := range t.Vertices() {
			points = append(points, []float64{corner.X, corner.Y})
		}
		doc.Triangles = append(doc.Triangles, yamlTriangle{Points: points})
	}

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return errors.Wrap(err, "encoding yaml soup")
	}
	return errors.Wrap(encoder.Close(), "encoding yaml soup")
}
