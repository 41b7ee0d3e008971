package skel

import (
	"fmt"
	"math"
)

// event is the tagged union of edgeEvent and splitEvent: both are
// ordered by Distance, which is what the event queue's heap compares
// on first (ties fall back to insertion order).
type event interface {
	distance() float64
	String() string
}

// edgeEvent fires when the bisectors of two adjacent vertices in a
// LAV meet, collapsing the wavefront edge between them.
type edgeEvent struct {
	Distance float64
	Point    Point
	A        *lavVertex
	B        *lavVertex
	seq      uint64
}

func (e *edgeEvent) distance() float64 { return e.Distance }
func (e *edgeEvent) String() string {
	return fmt.Sprintf("%.4f edge event @ %v between %v and %v", e.Distance, e.Point, e.A.Point, e.B.Point)
}

// splitEvent fires when a reflex vertex's bisector reaches the
// interior of an original edge it is not incident to.
type splitEvent struct {
	Distance     float64
	Point        Point
	Vertex       *lavVertex
	OppositeEdge LineSegment
	seq          uint64
}

func (e *splitEvent) distance() float64 { return e.Distance }
func (e *splitEvent) String() string {
	return fmt.Sprintf("%.4f split event @ %v from %v to %v", e.Distance, e.Point, e.Vertex.Point, e.OppositeEdge)
}

// nextEvent computes v's next event: the nearest (by Euclidean
// distance from v's current point — deliberately distinct from the
// queue's own distance-to-edge ordering) candidate among the
// edge-events formed with v's neighbors and, for reflex vertices, the
// split-events formed against every non-incident original edge.
func (v *lavVertex) nextEvent() (event, bool) {
	var candidates []event

	if v.IsReflex {
		for _, oe := range v.originalEdges() {
			if sameLineSegment(oe.Edge, v.EdgeLeft) || sameLineSegment(oe.Edge, v.EdgeRight) {
				continue
			}

			leftDot := math.Abs(v.EdgeLeft.V.Normalize().Dot(oe.Edge.V.Normalize()))
			rightDot := math.Abs(v.EdgeRight.V.Normalize().Dot(oe.Edge.V.Normalize()))

			var selfEdge LineSegment
			if leftDot < rightDot {
				selfEdge = v.EdgeLeft
			} else {
				selfEdge = v.EdgeRight
			}

			i, ok := intersectLines(selfEdge.P, selfEdge.V, oe.Edge.P, oe.Edge.V)
			if !ok || approxEqual(i, v.Point) {
				continue
			}

			linVec := v.Point.Sub(i).Normalize()
			edVec := oe.Edge.V.Normalize()
			if linVec.Dot(edVec) < 0 {
				edVec = edVec.Negate()
			}

			bisecVec := edVec.Add(linVec)
			if bisecVec.Length() == 0 {
				continue
			}

			b, ok := intersectLines(i, bisecVec, v.Bisector.P, v.Bisector.V)
			if !ok {
				continue
			}

			xleft := oe.BisectorLeft.V.Normalize().Cross(b.Sub(oe.BisectorLeft.P).Normalize()) > -EPSILON
			xright := oe.BisectorRight.V.Normalize().Cross(b.Sub(oe.BisectorRight.P).Normalize()) < EPSILON
			xedge := oe.Edge.V.Normalize().Cross(b.Sub(oe.Edge.P).Normalize()) < EPSILON

			if !(xleft && xright && xedge) {
				continue
			}

			candidates = append(candidates, &splitEvent{
				Distance:     distanceToLine(oe.Edge, b),
				Point:        b,
				Vertex:       v,
				OppositeEdge: oe.Edge,
			})
		}
	}

	if iPrev, ok := intersectRays(v.Bisector, v.Prev.Bisector); ok {
		candidates = append(candidates, &edgeEvent{
			Distance: distanceToLine(v.EdgeLeft, iPrev),
			Point:    iPrev,
			A:        v.Prev,
			B:        v,
		})
	}
	if iNext, ok := intersectRays(v.Bisector, v.Next.Bisector); ok {
		candidates = append(candidates, &edgeEvent{
			Distance: distanceToLine(v.EdgeRight, iNext),
			Point:    iNext,
			A:        v,
			B:        v.Next,
		})
	}

	if len(candidates) == 0 {
		return nil, false
	}

	best := candidates[0]
	bestDist := v.Point.Distance(eventIntersectionPoint(best))
	for _, c := range candidates[1:] {
		d := v.Point.Distance(eventIntersectionPoint(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, true
}

func eventIntersectionPoint(e event) Point {
	switch ev := e.(type) {
	case *edgeEvent:
		return ev.Point
	case *splitEvent:
		return ev.Point
	default:
		return Point{}
	}
}

func sameLineSegment(a, b LineSegment) bool {
	return a.P == b.P && a.V == b.V
}
