package skel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointArithmetic(t *testing.T) {
	a := Point{1, 2}
	b := Point{3, 4}

	require.Equal(t, Point{4, 6}, a.Add(b))
	require.Equal(t, Point{-2, -2}, a.Sub(b))
	require.Equal(t, Point{2, 4}, a.Scale(2))
	require.InDelta(t, 11.0, a.Dot(b), EPSILON)
	require.InDelta(t, -2.0, a.Cross(b), EPSILON)
}

func TestNormalize(t *testing.T) {
	v := Point{3, 4}.Normalize()
	require.InDelta(t, 1.0, v.Length(), EPSILON)

	require.Equal(t, Point{}, Point{}.Normalize())
}

func TestIntersectLinesParallel(t *testing.T) {
	_, ok := intersectLines(Point{0, 0}, Point{1, 0}, Point{0, 1}, Point{1, 0})
	require.False(t, ok)
}

func TestIntersectLinesCrossing(t *testing.T) {
	p, ok := intersectLines(Point{0, 0}, Point{1, 0}, Point{5, -5}, Point{0, 1})
	require.True(t, ok)
	require.InDelta(t, 5.0, p.X, EPSILON)
	require.InDelta(t, 0.0, p.Y, EPSILON)
}

func TestDistanceToLine(t *testing.T) {
	seg := LineSegment{P: Point{0, 0}, V: Point{1, 0}}
	d := distanceToLine(seg, Point{5, 3})
	require.InDelta(t, 3.0, d, EPSILON)
}

func TestApproxEqual(t *testing.T) {
	require.True(t, approxEqual(Point{100, 100}, Point{100.05, 100}))
	require.False(t, approxEqual(Point{1, 1}, Point{2, 2}))
}
