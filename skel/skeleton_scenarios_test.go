package skel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// pointInPolygon is a simple ray-casting point-in-polygon test used
// only to check that every emitted source lies inside its polygon;
// it is deliberately independent of the skel package's own geometry
// so it cannot mask a bug in that geometry.
func pointInPolygon(p Point, poly []Point) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := poly[i], poly[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}

func sinkPoints(subtrees []Subtree) []Point {
	var all []Point
	for _, st := range subtrees {
		all = append(all, st.Sinks...)
	}
	return all
}

func requireContainsApprox(t *testing.T, pts []Point, want Point) {
	t.Helper()
	for _, p := range pts {
		if approxEqual(p, want) {
			return
		}
	}
	t.Fatalf("expected %v among %v", want, pts)
}

// Scenario 1: a simple rectangle with no holes.
func TestScenarioRectangle(t *testing.T) {
	outer := []Point{{40, 40}, {40, 310}, {520, 310}, {520, 40}}

	out, err := Skeletonize(outer, nil)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	sinks := sinkPoints(out)
	for _, v := range outer {
		requireContainsApprox(t, sinks, v)
	}

	for _, st := range out {
		require.True(t, pointInPolygon(st.Source, outer), "source %v must lie inside the rectangle", st.Source)
		require.GreaterOrEqual(t, st.Height, 0.0)
	}
}

// Scenario 2: an arrow-like concave hexagon, no holes.
func TestScenarioArrow(t *testing.T) {
	outer := []Point{{30, 20}, {30, 120}, {90, 70}, {160, 140}, {178, 93}, {160, 20}}

	out, err := Skeletonize(outer, nil)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	sinks := sinkPoints(out)
	for _, v := range outer {
		requireContainsApprox(t, sinks, v)
	}
}

// Scenario 3: a symmetric "iron cross"-like polygon with two reflex
// vertices that should trigger a split event.
func TestScenarioSplitEventFires(t *testing.T) {
	outer := []Point{
		{100, 50}, {150, 150}, {50, 100}, {50, 350},
		{350, 350}, {350, 100}, {250, 150}, {300, 50},
	}

	out, err := Skeletonize(outer, nil)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	for _, st := range out {
		require.True(t, pointInPolygon(st.Source, outer))
	}

	sinks := sinkPoints(out)
	for _, v := range outer {
		requireContainsApprox(t, sinks, v)
	}
}

// Scenario 4: an outer rectangle containing a rectangular hole whose
// split events should merge the outer LAV and the hole LAV.
func TestScenarioHoleMerge(t *testing.T) {
	outer := []Point{{0, 0}, {0, 200}, {400, 200}, {400, 0}}
	hole := []Point{{50, 50}, {350, 50}, {350, 150}, {50, 150}}

	out, err := Skeletonize(outer, [][]Point{hole})
	require.NoError(t, err)
	require.NotEmpty(t, out)

	sinks := sinkPoints(out)
	for _, v := range outer {
		requireContainsApprox(t, sinks, v)
	}
	for _, v := range hole {
		requireContainsApprox(t, sinks, v)
	}
}

// Scenario 5: holes supplied as a flat vertex list rather than a list
// of contours must be rejected. The core Go API's [][]Point signature
// already prevents this at compile time for direct callers; the CLI's
// JSON-decoding path (cmd/skelgo) re-creates the runtime check and is
// exercised in cmd/skelgo's own tests.
func TestScenarioHoleShapeMismatchIsUncheckableAtCoreAPI(t *testing.T) {
	outer := []Point{{0, 0}, {0, 200}, {400, 200}, {400, 0}}
	// A flat vertex list cannot be passed where [][]Point is expected;
	// the nearest equivalent a caller could still construct is an
	// empty hole contour, which degenerates instead of mismatching.
	_, err := Skeletonize(outer, [][]Point{{}})
	require.ErrorIs(t, err, ErrEmptyContour)
}

// Scenario 6: a degenerate triangle collapses to a single subtree at
// the incenter with all three original vertices as sinks.
func TestScenarioDegenerateTriangle(t *testing.T) {
	outer := []Point{{0, 0}, {10, 0}, {5, 10}}

	out, err := Skeletonize(outer, nil)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.ElementsMatch(t, outer, out[0].Sinks)
	require.True(t, pointInPolygon(out[0].Source, outer))
}

func TestSkeletonizeIsDeterministic(t *testing.T) {
	outer := []Point{
		{100, 50}, {150, 150}, {50, 100}, {50, 350},
		{350, 350}, {350, 100}, {250, 150}, {300, 50},
	}

	first, err := Skeletonize(outer, nil)
	require.NoError(t, err)
	second, err := Skeletonize(outer, nil)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestSkeletonizeHeightsNonDecreasing(t *testing.T) {
	outer := []Point{{40, 40}, {40, 310}, {520, 310}, {520, 40}}
	out, err := Skeletonize(outer, nil)
	require.NoError(t, err)

	prev := -math.MaxFloat64
	for _, st := range out {
		require.GreaterOrEqual(t, st.Height, prev)
		prev = st.Height
	}
}

// For a convex polygon with no holes, every sink appears in at most
// one subtree.
func TestConvexPolygonIsATree(t *testing.T) {
	outer := []Point{{40, 40}, {40, 310}, {520, 310}, {520, 40}}
	out, err := Skeletonize(outer, nil)
	require.NoError(t, err)

	seen := map[Point]int{}
	for _, st := range out {
		for _, sink := range st.Sinks {
			seen[sink]++
		}
	}
	for p, count := range seen {
		require.LessOrEqual(t, count, 1, "sink %v appeared in more than one subtree", p)
	}
}

func TestSkeletonizeRejectsEmptyOuter(t *testing.T) {
	_, err := Skeletonize(nil, nil)
	require.ErrorIs(t, err, ErrEmptyContour)
}
