package geometry

import "math"

// The sweep is a tiny state machine rather than a tangle of booleans.
// Forward walks away from the starting corner in the direction of the
// offset normal; Backward restarts from the corner with the normal
// negated; Done means both directions have run off the shape.
type sweepState int

const (
	sweepForward sweepState = iota
	sweepBackward
	sweepDone
)

// GenerateHatch fills a convex quadrilateral with parallel hatch lines
// at the given angle (degrees) and spacing (step, in the same units as
// the corner coordinates). It returns the hatch lines clipped to the
// shape, forward-sweep segments first, then backward-sweep segments.
//
// Rather than computing the shape's extent along the sweep direction
// analytically, the sweep discovers it: it offsets a probe point by a
// fixed normal each iteration and stops once a probe stops producing
// intersections on each side of the starting corner. For a convex shape
// the clipped band varies monotonically with the offset, so the first
// miss in a pure direction really is the end.
//
// step must be positive; callers validate before invoking.
func GenerateHatch(rect Rectangle, angle, step float64) []Segment {
	rad := angle * math.Pi / 180

	// The offset normal plays two roles: it's the spacing between
	// consecutive hatch lines, and each hatch line is the line through
	// the probe point perpendicular to it.
	norm := Vector{math.Sin(rad), math.Cos(rad)}.Scale(step)
	edges := rect.Segments()
	start := rect.Points[0]

	probe := start
	state := sweepForward
	first := true

	var res []Segment

	for state != sweepDone {
		hatchLine := LineWithNormal(norm, probe)

		candidates := clipCandidates(hatchLine, edges)

		if len(candidates) >= 2 && onAnyEdge(candidates[0], edges) {
			res = append(res, NewSegment(candidates[0], candidates[1]))
		} else {
			switch {
			case state == sweepForward && first:
				// The probe starts at a corner, and corners never pass the
				// strict containment test, so the very first probe is
				// usually a miss. Take one more forward step before giving
				// up on this direction.
			case state == sweepForward:
				state = sweepBackward
				norm = norm.Scale(-1)
				probe = start
			default:
				state = sweepDone
			}
		}

		first = false
		probe = probe.Add(norm)
	}

	return res
}

// clipCandidates intersects the hatch line with the four edge lines,
// skipping parallels, and reduces the result to the two points that can
// actually bound the clipped segment.
func clipCandidates(hatchLine Line, edges []Segment) []Point {
	var intersections []Point
	for _, edge := range edges {
		if !ParallelOrSame(edge.Line, hatchLine) {
			intersections = append(intersections, Intersection(edge.Line, hatchLine))
		}
	}

	// When the hatch line is parallel to no edge, all four infinite edge
	// lines are crossed, but only two crossings lie on actual edges. The
	// two spurious ones are the extremes: drop the farthest-apart pair
	// and the middle two remain.
	if len(intersections) == 4 {
		var far1, far2 int
		maxDist2 := 0.0
		for i := 0; i < len(intersections); i++ {
			for j := i + 1; j < len(intersections); j++ {
				d := Distance2(intersections[i], intersections[j])
				if maxDist2 < d {
					maxDist2 = d
					far1, far2 = i, j
				}
			}
		}

		kept := make([]Point, 0, 2)
		for i, p := range intersections {
			if i != far1 && i != far2 {
				kept = append(kept, p)
			}
		}
		intersections = kept
	}

	return intersections
}

func onAnyEdge(p Point, edges []Segment) bool {
	for _, edge := range edges {
		if InSegment(p, edge) {
			return true
		}
	}
	return false
}
