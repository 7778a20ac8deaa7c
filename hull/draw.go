package hull

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Rendering is a debugging aid; nothing in the trace depends on it.

const drawPadding = 10

// RenderHull draws the input cloud and a (possibly partial) ring into an
// image context at scale pixels per input unit, with the origin at the
// bottom left.
func RenderHull(points, ring []Point, scale float64) *gg.Context {
	minX := math.Inf(1)
	minY := math.Inf(1)
	maxX := math.Inf(-1)
	maxY := math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip so the origin is at the bottom left, then map the cloud's
	// extent into the padded area.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetRGB(0.6, 0.6, 0.6)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, 2/scale)
	}
	c.Fill()

	if len(ring) > 1 {
		c.MoveTo(ring[0].X, ring[0].Y)
		for _, p := range ring[1:] {
			c.LineTo(p.X, p.Y)
		}
		if len(ring) > 2 {
			c.ClosePath()
		}
		c.SetRGB(0, 1, 1)
		c.SetLineWidth(2)
		c.Stroke()
	}
	return c
}

// SnapshotDiagnostics writes a PNG per attempt outcome into Dir: the
// partial hull for failed attempts, the finished ring for the accepted
// one. With Imgcat set, each image is also dumped to stdout for terminals
// that render inline images.
type SnapshotDiagnostics struct {
	Dir    string
	Scale  float64 // pixels per input unit, 20 when zero
	Imgcat bool

	points  []Point
	partial []Point
}

func (s *SnapshotDiagnostics) AttemptStarted(k int, points []Point) {
	s.points = points
	s.partial = s.partial[:0]
}

func (s *SnapshotDiagnostics) EdgeAdded(k, step int, hull []Point) {
	s.partial = append(s.partial[:0], hull...)
}

func (s *SnapshotDiagnostics) AttemptFailed(k int, reason string) {
	s.save(fmt.Sprintf("attempt_k%d_failed.png", k), s.partial)
}

func (s *SnapshotDiagnostics) HullAccepted(k int, ring []Point) {
	s.save(fmt.Sprintf("attempt_k%d_hull.png", k), ring)
}

func (s *SnapshotDiagnostics) save(name string, ring []Point) {
	if len(s.points) == 0 {
		return
	}
	scale := s.Scale
	if scale == 0 {
		scale = 20
	}
	path := filepath.Join(s.Dir, name)
	// A snapshot that can't be written is not worth stopping a trace for.
	if err := RenderHull(s.points, ring, scale).SavePNG(path); err != nil {
		return
	}
	if s.Imgcat {
		imgcat.CatFile(path, os.Stdout)
	}
}
