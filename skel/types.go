// Package skel computes the straight skeleton of a simple polygon
// (optionally with holes) using the Felkel-Obdrzalek wavefront
// propagation algorithm.
package skel

// EPSILON is the tolerance used for all cross-product sign tests and
// near-zero magnitude checks.
const EPSILON = 1e-5

// Point is a 2D point or vector. The library treats points and
// vectors interchangeably, the way a geometry kernel built on plain
// float64 pairs does.
type Point struct {
	X, Y float64
}

// Vector is an alias for Point: direction and displacement share the
// same representation throughout this package.
type Vector = Point

// LineSegment is a finite segment given by an origin and a direction
// vector (V = end - P). Length carries meaning; direction is
// normalized only where used as a unit vector.
type LineSegment struct {
	P Point
	V Vector
}

// End returns the segment's terminal point.
func (s LineSegment) End() Point {
	return s.P.Add(s.V)
}

// Ray is a half-line given by an origin and a direction vector.
type Ray struct {
	P Point
	V Vector
}

// originalEdge is a snapshot, taken at t=0, of one polygon edge
// together with the bisector rays at its two endpoints. It is
// immutable for the lifetime of a Skeletonize call and is consulted
// only by split-event eligibility tests, never mutated.
type originalEdge struct {
	Edge          LineSegment
	BisectorLeft  Ray
	BisectorRight Ray
}

// Subtree is one emitted skeleton node: a source point produced at a
// given height, connected to the sinks (older vertices, or dissolved
// LAV heads) that collapsed into it.
type Subtree struct {
	Source Point
	Height float64
	Sinks  []Point
}
