// Package svg writes hatch output as a minimal SVG document: one line
// element per segment, styled by what the segment represents.
package svg

import (
	"fmt"
	"math"
	"os"

	"github.com/osuushi/hatch/geometry"
	"github.com/pkg/errors"
)

// LineFormat selects the visual style for a group of segments.
type LineFormat int

const (
	// Contour lines are the shape's boundary and get the wider stroke.
	Contour LineFormat = iota
	// Hatch lines are the fill and get the narrower stroke.
	Hatch
)

// drawOrder fixes the emission order of the style groups. Hatch goes
// first so the contour strokes end up on top, and the output bytes
// don't depend on map iteration order.
var drawOrder = []LineFormat{Hatch, Contour}

func (lf LineFormat) strokeWidth() float64 {
	if lf == Contour {
		return 2
	}
	return 1
}

// Writer accumulates segments grouped by format and renders them all on
// Close. Rendering is deferred because the scale factor depends on the
// bounding box of everything drawn.
type Writer struct {
	out           *os.File
	segments      map[LineFormat][]geometry.Segment
	width, height float64
}

// NewWriter creates the output file and writes the document header. The
// caller must Close the writer to flush the line elements and the
// closing tag.
func NewWriter(path string, width, height float64) (*Writer, error) {
	out, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}

	w := &Writer{
		out:      out,
		segments: make(map[LineFormat][]geometry.Segment),
		width:    width,
		height:   height,
	}
	fmt.Fprintf(out, "<svg version=\"1.1\"\n")
	fmt.Fprintf(out, "    width=\"%g\" height=\"%g\"\n", width, height)
	fmt.Fprintf(out, "    xmlns=\"http://www.w3.org/2000/svg\">\n\n")
	return w, nil
}

// DrawSegments queues segments for rendering with the given format.
func (w *Writer) DrawSegments(segments []geometry.Segment, lf LineFormat) {
	w.segments[lf] = append(w.segments[lf], segments...)
}

// Close renders every queued segment and finishes the document.
func (w *Writer) Close() error {
	w.draw()
	fmt.Fprintf(w.out, "\n</svg>\n")
	return errors.Wrap(w.out.Close(), "failed to close svg output")
}

func (w *Writer) draw() {
	minX, minY, maxX, maxY := Bounds(w.allSegments())

	// One uniform scale for both axes, so the drawing fits the canvas
	// without distorting aspect ratio.
	scale := math.Min(w.width/(maxX-minX), w.height/(maxY-minY))

	for _, lf := range drawOrder {
		for _, segment := range w.segments[lf] {
			// SVG's Y axis grows downward, so flip against the top of the
			// bounding box while translating to the origin.
			ax := scale * (segment.A.X - minX)
			ay := scale * (maxY - segment.A.Y)
			bx := scale * (segment.B.X - minX)
			by := scale * (maxY - segment.B.Y)

			fmt.Fprintf(w.out,
				"<line x1=\"%g\" y1=\"%g\" x2=\"%g\" y2=\"%g\" stroke=\"black\" stroke-width=\"%g\" />\n",
				ax, ay, bx, by, lf.strokeWidth())
		}
	}
}

func (w *Writer) allSegments() []geometry.Segment {
	var all []geometry.Segment
	for _, lf := range drawOrder {
		all = append(all, w.segments[lf]...)
	}
	return all
}

// Bounds gives the bounding box over a set of segments.
func Bounds(segments []geometry.Segment) (minX, minY, maxX, maxY float64) {
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, s := range segments {
		minX = math.Min(minX, math.Min(s.A.X, s.B.X))
		minY = math.Min(minY, math.Min(s.A.Y, s.B.Y))
		maxX = math.Max(maxX, math.Max(s.A.X, s.B.X))
		maxY = math.Max(maxY, math.Max(s.A.Y, s.B.Y))
	}
	return
}
