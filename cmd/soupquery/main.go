package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/osuushi/trianglesoup"
	"github.com/osuushi/trianglesoup/internal"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Load a triangle soup and run a single query against it. The soup is read
// from --input, or stdin, in either the text format (one "x y" point per line,
// a blank line after each triangle) or YAML.
//
//	soupquery --input mesh.yaml locate 0.2 0.3
//	soupquery nearest 5 5 < mesh.txt
func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "soupquery:", err)
		os.Exit(1)
	}
}

type config struct {
	input   string
	format  string
	verbose bool
}

type pointArgs struct {
	x, y *float64
}

func (p pointArgs) point() trianglesoup.Point {
	return trianglesoup.Point{X: *p.x, Y: *p.y}
}

func addPointArgs(cmd *kingpin.CmdClause, prefix string) pointArgs {
	return pointArgs{
		x: cmd.Arg(prefix+"x", "X coordinate").Required().Float64(),
		y: cmd.Arg(prefix+"y", "Y coordinate").Required().Float64(),
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	var cfg config
	app := kingpin.New("soupquery", "Query a triangle soup.")
	app.Terminate(nil)
	app.UsageWriter(stdout)
	app.ErrorWriter(stdout)
	app.Flag("input", "Soup file to read. Defaults to stdin.").Short('i').Envar("SOUPQUERY_INPUT").StringVar(&cfg.input)
	app.Flag("format", "Input format. Files ending in .yaml or .yml default to yaml.").Envar("SOUPQUERY_FORMAT").EnumVar(&cfg.format, "text", "yaml")
	app.Flag("verbose", "Log soup edits to stderr.").Short('v').Envar("SOUPQUERY_VERBOSE").BoolVar(&cfg.verbose)

	locateCmd := app.Command("locate", "Print the triangle containing a point.")
	locatePoint := addPointArgs(locateCmd, "")

	nearestCmd := app.Command("nearest", "Print the edge nearest to a point.")
	nearestPoint := addPointArgs(nearestCmd, "")

	sharingCmd := app.Command("sharing", "Print the triangles on both sides of an edge.")
	sharingA := addPointArgs(sharingCmd, "a")
	sharingB := addPointArgs(sharingCmd, "b")

	purgeCmd := app.Command("purge", "Remove every triangle using a vertex and write the result as YAML.")
	purgePoint := addPointArgs(purgeCmd, "")
	purgeOut := purgeCmd.Flag("out", "Output file. Defaults to stdout.").Short('o').String()

	drawCmd := app.Command("draw", "Draw the soup to a PNG file.")
	drawOut := drawCmd.Flag("out", "PNG file to write.").Short('o').Required().String()
	drawScale := drawCmd.Flag("scale", "Pixels per unit.").Default("50").Float64()
	drawPreview := drawCmd.Flag("preview", "Also print the image to the terminal (iTerm only).").Bool()

	chartCmd := app.Command("chart", "Render the soup as an HTML chart.")
	chartOut := chartCmd.Flag("out", "HTML file to write.").Short('o').Required().String()
	chartTitle := chartCmd.Flag("title", "Chart title.").Default("Triangle soup").String()

	command, err := app.Parse(args)
	if err != nil {
		return err
	}
	if command == "" {
		// --help was handled by kingpin
		return nil
	}

	logger := internal.NewLogger(cfg.verbose)
	defer logger.Sync()

	soup, err := loadSoup(cfg, stdin)
	if err != nil {
		return err
	}
	soup.SetLogger(logger)
	logger.Debug("loaded soup", zap.Int("triangles", soup.Len()), zap.String("command", command))

	switch command {
	case locateCmd.FullCommand():
		triangle := soup.FindContainingTriangle(locatePoint.point())
		if triangle == nil {
			fmt.Fprintln(stdout, "none")
			return nil
		}
		printTriangle(stdout, triangle)

	case nearestCmd.FullCommand():
		edge, err := soup.FindNearestEdge(nearestPoint.point())
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, edge)

	case sharingCmd.FullCommand():
		edge := trianglesoup.NewEdge(sharingA.point(), sharingB.point())
		one := soup.FindOneTriangleSharing(edge)
		if one == nil {
			fmt.Fprintln(stdout, "none")
			return nil
		}
		printTriangle(stdout, one)
		if other := soup.FindNeighbour(one, edge); other != nil {
			printTriangle(stdout, other)
		}

	case purgeCmd.FullCommand():
		before := soup.Len()
		soup.RemoveTrianglesUsing(purgePoint.point())
		logger.Info("purged vertex", zap.Stringer("vertex", purgePoint.point()), zap.Int("removed", before-soup.Len()))
		return writeOutput(*purgeOut, stdout, func(w io.Writer) error {
			return trianglesoup.WriteYAML(w, soup)
		})

	case drawCmd.FullCommand():
		if err := soup.SavePNG(*drawOut, *drawScale); err != nil {
			return err
		}
		logger.Info("wrote drawing", zap.String("path", *drawOut))
		if *drawPreview {
			return internal.PreviewPNG(*drawOut, stdout)
		}

	case chartCmd.FullCommand():
		return writeOutput(*chartOut, stdout, func(w io.Writer) error {
			return soup.RenderChart(w, *chartTitle)
		})
	}
	return nil
}

func loadSoup(cfg config, stdin io.Reader) (*trianglesoup.Soup, error) {
	in := stdin
	format := cfg.format
	if cfg.input != "" {
		file, err := os.Open(cfg.input)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer file.Close()
		in = file

		if format == "" {
			switch strings.ToLower(filepath.Ext(cfg.input)) {
			case ".yaml", ".yml":
				format = "yaml"
			}
		}
	}

	if format == "yaml" {
		return trianglesoup.ReadYAML(in)
	}
	return trianglesoup.Read(in)
}

func writeOutput(path string, stdout io.Writer, write func(io.Writer) error) error {
	if path == "" {
		return write(stdout)
	}
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	return errors.Wrap(file.Close(), "closing output")
}

func printTriangle(out io.Writer, t *trianglesoup.Triangle) {
	fmt.Fprintf(out, "%s %s %s\n", t.A, t.B, t.C)
}
