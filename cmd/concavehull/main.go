package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/shp"
	goshp "github.com/jonas-p/go-shp"
	imgcat "github.com/martinlindhe/imgcat/lib"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/geofold/concavehull"
	"github.com/geofold/concavehull/hull"
)

// Demo driver. Reads a point cloud from stdin as newline separated "x y"
// pairs (or from a point shapefile), computes the concave hull, and prints
// the closed ring in the same format along with an area/centroid summary.
// The debug surfaces (narration, PNG rendering) are wired to flags here so
// the library itself stays silent.

var (
	kFlag     = kingpin.Flag("k", "Initial nearest-neighbour count.").Default("3").Int()
	precision = kingpin.Flag("precision", "Decimal places kept by duplicate elimination.").Default("0").Int()
	verbose   = kingpin.Flag("verbose", "Narrate tracing attempts to stderr.").Short('v').Bool()
	pngOut    = kingpin.Flag("png", "Render the result to a PNG file.").String()
	pngScale  = kingpin.Flag("png-scale", "Pixels per input unit in the PNG.").Default("20").Float64()
	catFlag   = kingpin.Flag("imgcat", "Dump the PNG to stdout for inline-image terminals.").Bool()
	shpIn     = kingpin.Flag("shp", "Read points from a point shapefile instead of stdin.").String()
	shpOut    = kingpin.Flag("shp-out", "Write the hull as a polygon shapefile.").String()
)

func main() {
	kingpin.Parse()

	var points []hull.Point
	if *shpIn != "" {
		points = readShapefile(*shpIn)
	} else {
		points = readPoints(os.Stdin)
	}

	opts := concavehull.Options{K: *kFlag, Precision: *precision}
	if *verbose {
		opts.Diagnostics = &hull.LogDiagnostics{Out: os.Stderr}
	}

	poly, err := concavehull.ConcaveHullWithOptions(points, opts)
	kingpin.FatalIfError(err, "computing hull of %d points", len(points))

	ring := poly.Closed()
	for _, p := range ring {
		fmt.Printf("%g %g\n", p.X, p.Y)
	}
	summarize(ring)

	if *pngOut != "" {
		writePNG(*pngOut, points, poly.Points)
	}
	if *shpOut != "" {
		writeShapefile(*shpOut, ring)
	}
}

// readPoints scans newline separated "x y" pairs. Blank lines are skipped
// so clipboard pastes with trailing newlines just work.
func readPoints(in *os.File) []hull.Point {
	points := []hull.Point{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		points = append(points, parsePoint(line))
	}
	kingpin.FatalIfError(scanner.Err(), "reading points")
	return points
}

func parsePoint(line string) hull.Point {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		kingpin.Fatalf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	kingpin.FatalIfError(err, "bad x value %q", parts[0])
	y, err := strconv.ParseFloat(parts[1], 64)
	kingpin.FatalIfError(err, "bad y value %q", parts[1])
	return hull.Point{X: x, Y: y}
}

func readShapefile(path string) []hull.Point {
	d, err := shp.NewDecoder(path)
	kingpin.FatalIfError(err, "opening %s", path)
	defer d.Close()

	var points []hull.Point
	for {
		var row struct{ Geom geom.Point }
		if !d.DecodeRow(&row) {
			break
		}
		points = append(points, hull.Point{X: row.Geom.X, Y: row.Geom.Y})
	}
	kingpin.FatalIfError(d.Error(), "reading %s", path)
	return points
}

func summarize(ring []hull.Point) {
	poly := toGeomPolygon(ring)
	centroid := poly.Centroid()
	fmt.Fprintf(os.Stderr, "hull: %d vertices, area %g, centroid (%g, %g)\n",
		len(ring)-1, poly.Area(), centroid.X, centroid.Y)
}

func writePNG(path string, points, ring []hull.Point) {
	err := hull.RenderHull(points, ring, *pngScale).SavePNG(path)
	kingpin.FatalIfError(err, "writing %s", path)
	if *catFlag {
		imgcat.CatFile(path, os.Stdout)
	}
}

func writeShapefile(path string, ring []hull.Point) {
	poly := toGeomPolygon(ring)
	e, err := shp.NewEncoderFromFields(path, goshp.POLYGON,
		goshp.FloatField("AREA", 14, 8))
	kingpin.FatalIfError(err, "creating %s", path)
	err = e.EncodeFields(poly, poly.Area())
	kingpin.FatalIfError(err, "writing %s", path)
	e.Close()
}

func toGeomPolygon(ring []hull.Point) geom.Polygon {
	gring := make([]geom.Point, len(ring))
	for i, p := range ring {
		gring[i] = geom.Point{X: p.X, Y: p.Y}
	}
	return geom.Polygon{gring}
}
