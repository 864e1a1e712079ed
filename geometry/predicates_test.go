package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParallelOrSame(t *testing.T) {
	horizontal1 := LineThrough(Point{0, 0}, Point{10, 0})
	horizontal2 := LineThrough(Point{0, 5}, Point{10, 5})
	vertical := LineThrough(Point{0, 0}, Point{0, 10})
	diagonal := LineThrough(Point{0, 0}, Point{1, 1})

	assert.True(t, ParallelOrSame(horizontal1, horizontal2))
	assert.False(t, ParallelOrSame(horizontal1, vertical))
	assert.False(t, ParallelOrSame(diagonal, horizontal1))

	t.Run("Same line counts as parallel", func(t *testing.T) {
		// Two parameterizations of the same line
		l1 := LineThrough(Point{0, 0}, Point{1, 1})
		l2 := LineThrough(Point{2, 2}, Point{5, 5})
		assert.True(t, ParallelOrSame(l1, l2))
	})

	t.Run("Symmetric", func(t *testing.T) {
		lines := []Line{horizontal1, horizontal2, vertical, diagonal}
		for _, l1 := range lines {
			for _, l2 := range lines {
				assert.Equal(t, ParallelOrSame(l1, l2), ParallelOrSame(l2, l1))
			}
		}
	})
}

func TestIntersection(t *testing.T) {
	l1 := LineThrough(Point{0, 0}, Point{10, 10})
	l2 := LineThrough(Point{0, 2}, Point{2, 0})
	p := Intersection(l1, l2)
	assert.InDelta(t, 1.0, p.X, Epsilon)
	assert.InDelta(t, 1.0, p.Y, Epsilon)

	t.Run("Stable under reparameterization", func(t *testing.T) {
		// The same diagonal built from a different point pair must meet
		// l2 at the same place.
		l1b := LineThrough(Point{-3, -3}, Point{7, 7})
		pb := Intersection(l1b, l2)
		assert.InDelta(t, p.X, pb.X, Epsilon)
		assert.InDelta(t, p.Y, pb.Y, Epsilon)
	})

	t.Run("Axis aligned", func(t *testing.T) {
		p := Intersection(LineThrough(Point{4, 0}, Point{4, 1}), LineThrough(Point{0, 7}, Point{1, 7}))
		assert.InDelta(t, 4.0, p.X, Epsilon)
		assert.InDelta(t, 7.0, p.Y, Epsilon)
	})
}

func TestInSegment(t *testing.T) {
	s := NewSegment(Point{0, 0}, Point{10, 0})

	t.Run("Strictly interior points are in", func(t *testing.T) {
		assert.True(t, InSegment(Point{5, 0}, s))
		assert.True(t, InSegment(Point{0.001, 0}, s))
		assert.True(t, InSegment(Point{9.999, 0}, s))
	})

	t.Run("Endpoints are out", func(t *testing.T) {
		assert.False(t, InSegment(Point{0, 0}, s))
		assert.False(t, InSegment(Point{10, 0}, s))
	})

	t.Run("Collinear but outside is out", func(t *testing.T) {
		assert.False(t, InSegment(Point{-1, 0}, s))
		assert.False(t, InSegment(Point{11, 0}, s))
	})

	t.Run("Off the line is out", func(t *testing.T) {
		assert.False(t, InSegment(Point{5, 0.1}, s))
		assert.False(t, InSegment(Point{5, -0.1}, s))
	})

	t.Run("Slanted segment", func(t *testing.T) {
		s := NewSegment(Point{1, 1}, Point{5, 9})
		assert.True(t, InSegment(Point{3, 5}, s))
		assert.False(t, InSegment(Point{1, 1}, s))
		assert.False(t, InSegment(Point{5, 9}, s))
		assert.False(t, InSegment(Point{3, 5.1}, s))
	})
}
