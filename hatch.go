// Hatch fills convex quadrilaterals with parallel line segments at a
// given angle and spacing, clipped to the shape's boundary.
//
// The geometry lives in the geometry subpackage; this package is the
// convenient front door. Rendering to SVG and PNG lives in the svg and
// preview subpackages.
package hatch

import (
	"strconv"
	"strings"

	"github.com/osuushi/hatch/geometry"
	"github.com/pkg/errors"
)

type Point = geometry.Point
type Segment = geometry.Segment
type Rectangle = geometry.Rectangle

// Generate computes the hatch segments for a convex quadrilateral. The
// angle is in degrees (0 produces horizontal hatch lines), step is the
// spacing between consecutive lines and must be positive.
//
// Corners must be ordered around the boundary. Neither convexity nor
// step is validated here; see ParsePoints and the cmd/hatch wrapper for
// boundary checks.
func Generate(rect Rectangle, angle, step float64) []Segment {
	return geometry.GenerateHatch(rect, angle, step)
}

// Contour returns the quadrilateral's own boundary edges, for rendering
// alongside the hatch.
func Contour(rect Rectangle) []Segment {
	return rect.Segments()
}

// ParsePoints reads four corner points from a string of eight floats,
// separated by spaces and/or commas: "x1 y1 x2 y2 x3 y3 x4 y4".
func ParsePoints(s string) (Rectangle, error) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(fields) != 8 {
		return Rectangle{}, errors.Errorf("expected 8 coordinates, got %d", len(fields))
	}

	var rect Rectangle
	for i := range rect.Points {
		x, err := strconv.ParseFloat(fields[i*2], 64)
		if err != nil {
			return Rectangle{}, errors.Wrapf(err, "bad x coordinate for point %d", i+1)
		}
		y, err := strconv.ParseFloat(fields[i*2+1], 64)
		if err != nil {
			return Rectangle{}, errors.Wrapf(err, "bad y coordinate for point %d", i+1)
		}
		rect.Points[i] = Point{X: x, Y: y}
	}
	return rect, nil
}
