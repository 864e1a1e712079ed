package geometry

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance for all floating point comparisons in this
// package. If we compared exactly, nearly-parallel hatch lines and
// intersections landing a hair off a boundary edge would flicker in and
// out of existence depending on the angle.
const Epsilon = 1e-7

// Tolerance based float equality. See Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

type Point struct {
	X, Y float64
}

type Vector struct {
	X, Y float64
}

// All geometry here is plain value types. Points carry no identity; two
// points are the same point exactly when their coordinates agree (up to
// Epsilon where a predicate says so).

// NewVector gives the displacement from p1 to p2.
func NewVector(p1, p2 Point) Vector {
	return Vector{p2.X - p1.X, p2.Y - p1.Y}
}

func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y}
}

func (v Vector) Scale(c float64) Vector {
	return Vector{v.X * c, v.Y * c}
}

func Cross(v1, v2 Vector) float64 {
	return v1.X*v2.Y - v1.Y*v2.X
}

func Dot(v1, v2 Vector) float64 {
	return v1.X*v2.X + v1.Y*v2.Y
}

// Distance2 is the squared distance between two points. Everything in
// this package only ever compares distances, so we never pay for the
// square root.
func Distance2(p1, p2 Point) float64 {
	return (p1.X-p2.X)*(p1.X-p2.X) + (p1.Y-p2.Y)*(p1.Y-p2.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g %g)", p.X, p.Y)
}

// Line in general form: Ax + By + C = 0.
type Line struct {
	A, B, C float64
}

// LineThrough is the line through two distinct points.
func LineThrough(p1, p2 Point) Line {
	return Line{
		A: p1.Y - p2.Y,
		B: p2.X - p1.X,
		C: p1.X*p2.Y - p2.X*p1.Y,
	}
}

// LineWithNormal is the line through p perpendicular to norm. norm must
// be nonzero.
func LineWithNormal(norm Vector, p Point) Line {
	return Line{
		A: norm.X,
		B: norm.Y,
		C: -norm.X*p.X - norm.Y*p.Y,
	}
}

// Normal is the line's normal vector (A, B).
func (l Line) Normal() Vector {
	return Vector{l.A, l.B}
}

// Segment is a pair of endpoints plus the line through them. The line is
// computed once at construction because the hatch sweep intersects the
// same four edge lines over and over.
type Segment struct {
	A, B Point
	Line Line
}

func NewSegment(p1, p2 Point) Segment {
	return Segment{A: p1, B: p2, Line: LineThrough(p1, p2)}
}

func (s Segment) String() string {
	return fmt.Sprintf("%v -> %v", s.A, s.B)
}

// Rectangle is a convex quadrilateral given by four corner points,
// ordered around the boundary. Winding direction doesn't matter as long
// as it's consistent.
type Rectangle struct {
	Points [4]Point
}

// Segments decomposes the rectangle into its four boundary edges. The
// closing edge (first corner to last corner) comes first, then the
// consecutive edges in corner order. Callers depend on this order being
// stable, so don't reshuffle it.
func (r Rectangle) Segments() []Segment {
	res := make([]Segment, 0, len(r.Points))
	res = append(res, NewSegment(r.Points[0], r.Points[3]))
	for i := 0; i < len(r.Points)-1; i++ {
		res = append(res, NewSegment(r.Points[i], r.Points[i+1]))
	}
	return res
}
