// Command sectorfill triangulates a sector read from a file (or stdin) and
// reports what came out. It's a debugging aid: draw the result to a PNG, print
// it straight to the terminal, or dump the graph the triangulator built.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/sectorfill/internal"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("sectorfill", "Triangulate a map sector and show the result.")

	inputFile = app.Arg("input", "File to read. Reads stdin if omitted.").File()
	format    = app.Flag("format", "Input format.").Short('f').Default("text").Enum("text", "yaml", "svg")
	pngPath   = app.Flag("png", "Draw the triangles to this PNG file.").PlaceHolder("FILE").String()
	showImage = app.Flag("imgcat", "Print the drawing to the terminal (iTerm2 protocol).").Bool()
	scale     = app.Flag("scale", "Pixels per map unit when drawing.").Default("20").Float64()
	dump      = app.Flag("dump", "Print every outline and edge of the graph.").Bool()
	verbose   = app.Flag("verbose", "Log triangulator diagnostics to stderr.").Short('v').Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	var in io.Reader = os.Stdin
	if *inputFile != nil {
		defer (*inputFile).Close()
		in = *inputFile
	}

	if err := run(in, os.Stdout); err != nil {
		app.Fatalf("%v", err)
	}
}

func newLogger() *slog.Logger {
	if !*verbose {
		return internal.NopLogger()
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func run(in io.Reader, out io.Writer) error {
	segments, err := readSegments(in, *format)
	if err != nil {
		return errors.Wrap(err, "reading input")
	}

	g := internal.NewGraphFromSegments(segments, newLogger())
	triangles, stats, err := triangulate(g)
	if err != nil {
		return err
	}

	printSummary(out, len(segments), triangles, stats)
	if *dump {
		fmt.Fprint(out, g.Dump())
	}

	if *pngPath == "" && !*showImage {
		return nil
	}
	path := *pngPath
	if path == "" {
		file, err := os.CreateTemp("", "sectorfill-*.png")
		if err != nil {
			return errors.Wrap(err, "creating image file")
		}
		file.Close()
		defer os.Remove(file.Name())
		path = file.Name()
	}
	if err := g.Draw(triangles, *scale).SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	if *showImage {
		if err := imgcat.CatFile(path, out); err != nil {
			return errors.Wrap(err, "printing image")
		}
	}
	return nil
}

// Unlike the library, the tool wants to hear about triangulator bugs
func triangulate(g *internal.Graph) (triangles []internal.Point, stats internal.Stats, err error) {
	defer func() {
		if recovered := internal.HandleTriangulatePanicRecover(recover()); recovered != nil {
			err = recovered
		}
	}()
	triangles, stats = g.Triangulate()
	return triangles, stats, nil
}

func printSummary(out io.Writer, segmentCount int, triangles []internal.Point, stats internal.Stats) {
	var area float64
	for i := 0; i+2 < len(triangles); i += 3 {
		area += math.Abs(internal.SignedArea(triangles[i], triangles[i+1], triangles[i+2]))
	}

	fmt.Fprintf(out, "%d segments, %d outlines, %d splits (%d pruned)\n",
		segmentCount, stats.Outlines, stats.Splits, stats.PrunedSplits)
	fmt.Fprintf(out, "%s triangles in %d convex polygons, area %s\n",
		aurora.Bold(aurora.Green(stats.Triangles)), stats.Polygons, aurora.Cyan(fmt.Sprintf("%g", area)))
	if stats.Unresolved > 0 {
		fmt.Fprintln(out, aurora.Yellow(fmt.Sprintf("%d concave edges could not be split", stats.Unresolved)))
	}
	if stats.Triangles == 0 {
		fmt.Fprintln(out, aurora.Red("nothing to draw"))
	}
}
