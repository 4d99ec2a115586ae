package internal

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"
)

// Interactive HTML view of a soup. Every triangle becomes a closed line series
// overlapped on a scatter of the vertices; markers (query points) get a
// separate series so they stand out.
func (s *TriangleSoup) Chart(title string, markers ...Point) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "900px",
			Height: "900px",
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "value",
			SplitLine: &opts.SplitLine{Show: opts.Bool(false)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "value",
			SplitLine: &opts.SplitLine{Show: opts.Bool(false)},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside", Orient: "horizontal", FilterMode: "none"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside", Orient: "vertical", FilterMode: "none"}),
	)

	vertices := make([]opts.ScatterData, 0, len(s.triangles)*3)
	for _, t := range s.triangles {
		for _, corner := range t.Vertices() {
			vertices = append(vertices, opts.ScatterData{Value: []float64{corner.X, corner.Y}})
		}
	}
	scatter.AddSeries("Vertices", vertices)

	if len(markers) > 0 {
		markerData := make([]opts.ScatterData, 0, len(markers))
		for _, marker := range markers {
			markerData = append(markerData, opts.ScatterData{Value: []float64{marker.X, marker.Y}})
		}
		scatter.AddSeries("Queries", markerData).
			SetSeriesOptions(charts.WithItemStyleOpts(opts.ItemStyle{Color: "orange"}))
	}

	for _, t := range s.triangles {
		outline := make([]opts.LineData, 0, 4)
		for _, corner := range []Point{t.A, t.B, t.C, t.A} {
			outline = append(outline, opts.LineData{Value: []float64{corner.X, corner.Y}})
		}
		line := charts.NewLine()
		line.AddSeries("Triangles", outline).
			SetSeriesOptions(charts.WithLineStyleOpts(opts.LineStyle{Width: 1}))
		scatter.Overlap(line)
	}
	return scatter
}

func (s *TriangleSoup) RenderChart(out io.Writer, title string, markers ...Point) error {
	return errors.Wrap(s.Chart(title, markers...).Render(out), "rendering soup chart")
}
