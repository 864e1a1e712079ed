package geometry

import "math"

// ParallelOrSame reports whether two lines are parallel or coincident.
// Two lines are parallel exactly when their normals are, i.e. when the
// cross product of the normals vanishes.
func ParallelOrSame(l1, l2 Line) bool {
	return math.Abs(Cross(l1.Normal(), l2.Normal())) < Epsilon
}

// Intersection solves the two line equations by Cramer's rule.
//
// The lines must not be parallel or coincident; check ParallelOrSame
// first. With a vanishing determinant the result is garbage, not an
// error.
func Intersection(l1, l2 Line) Point {
	d := l1.A*l2.B - l2.A*l1.B
	dx := l1.B*l2.C - l2.B*l1.C
	dy := l1.C*l2.A - l2.C*l1.A
	return Point{dx / d, dy / d}
}

// InSegment reports whether p lies strictly between the segment's
// endpoints. The point must be collinear with the segment (cross product
// within Epsilon of zero) and project strictly inside it from both ends
// (both dot products strictly positive). The endpoints themselves are
// not in the segment: a hatch line grazing a corner does not count as
// entering the shape.
func InSegment(p Point, s Segment) bool {
	ab := NewVector(s.A, s.B)
	ap := NewVector(s.A, p)
	pb := NewVector(p, s.B)

	return math.Abs(Cross(ab, ap)) < Epsilon && Dot(ab, ap) > 0 && Dot(ab, pb) > 0
}
