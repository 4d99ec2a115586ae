package internal

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the soup, in pixels
const drawPadding = 40

type bounds struct {
	minX, minY, maxX, maxY float64
}

func (s *TriangleSoup) bounds(markers []Point) bounds {
	b := bounds{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	extend := func(p Point) {
		b.minX = math.Min(b.minX, p.X)
		b.minY = math.Min(b.minY, p.Y)
		b.maxX = math.Max(b.maxX, p.X)
		b.maxY = math.Max(b.maxY, p.Y)
	}
	for _, t := range s.triangles {
		for _, corner := range t.Vertices() {
			extend(corner)
		}
	}
	for _, marker := range markers {
		extend(marker)
	}
	if math.IsInf(b.minX, 1) {
		// Nothing to draw, so use a unit box
		return bounds{0, 0, 1, 1}
	}
	return b
}

// Draw the soup onto a new context. Counterclockwise triangles are filled
// green, clockwise ones cyan and degenerate ones red. Markers are drawn as
// small yellow dots, which is handy for showing query points.
func (s *TriangleSoup) Draw(scale float64, markers ...Point) *gg.Context {
	b := s.bounds(markers)

	width := int(scale*(b.maxX-b.minX)) + drawPadding*2
	height := int(scale*(b.maxY-b.minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-b.minX, -b.minY)

	for _, t := range s.triangles {
		c.MoveTo(t.A.X, t.A.Y)
		c.LineTo(t.B.X, t.B.Y)
		c.LineTo(t.C.X, t.C.Y)
		c.ClosePath()
		switch {
		case t.IsDegenerate():
			c.SetRGBA(1, 0, 0, 0.5)
		case t.IsCW():
			c.SetRGBA(0, 1, 1, 0.5)
		default:
			c.SetRGBA(0, 0.5, 0, 0.5)
		}
		c.FillPreserve()
		c.SetRGB(1, 1, 1)
		// Line width is in user space, so undo the scale
		c.SetLineWidth(2 / scale)
		c.Stroke()
	}

	c.SetRGB(1, 1, 0)
	for _, marker := range markers {
		c.DrawCircle(marker.X, marker.Y, 4/scale)
		c.Fill()
	}
	return c
}

func (s *TriangleSoup) SavePNG(path string, scale float64, markers ...Point) error {
	if err := s.Draw(scale, markers...).SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving soup drawing to %s", path)
	}
	return nil
}

// Print a PNG file to a terminal which supports inline images (iTerm).
func PreviewPNG(path string, out io.Writer) error {
	return errors.Wrap(imgcat.CatFile(path, out), "previewing png")
}

// Draw the soup straight to the terminal while debugging.
func (s *TriangleSoup) dbgDraw(scale float64, markers ...Point) {
	s.dbgDrawTo("/tmp/triangle_soup.png", os.Stdout, os.Stderr, scale, markers...)
}

func (s *TriangleSoup) dbgDrawTo(path string, out, errOut io.Writer, scale float64, markers ...Point) {
	if err := s.SavePNG(path, scale, markers...); err != nil {
		fmt.Fprintln(errOut, "dbgDraw:", err)
		return
	}
	if err := PreviewPNG(path, out); err != nil {
		fmt.Fprintln(errOut, "dbgDraw:", err)
	}
}
