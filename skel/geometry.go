package skel

import "math"

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by k.
func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }

// Negate returns -p.
func (p Point) Negate() Point { return Point{-p.X, -p.Y} }

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the 2D cross product (scalar) of p and q.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Length returns the Euclidean length of p.
func (p Point) Length() float64 { return math.Hypot(p.X, p.Y) }

// Normalize returns p scaled to unit length. Returns the zero vector
// if p is already (numerically) zero-length.
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return p.Scale(1 / l)
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 { return p.Sub(q).Length() }

// approxEqual reports whether a and b are close enough to be treated
// as the same point: exact equality, or a relative difference no
// greater than 0.1% of the larger magnitude.
func approxEqual(a, b Point) bool {
	if a == b {
		return true
	}
	d := a.Sub(b).Length()
	bound := math.Max(a.Length(), b.Length()) * 0.001
	return d <= bound
}

// intersectLines intersects the infinite lines through a (direction
// da) and b (direction db). Returns ok=false if the lines are
// parallel (cross product of directions is ~0).
func intersectLines(a Point, da Vector, b Point, db Vector) (Point, bool) {
	denom := da.Cross(db)
	if math.Abs(denom) < EPSILON {
		return Point{}, false
	}
	// Solve a + t*da == b + u*db for t.
	diff := b.Sub(a)
	t := diff.Cross(db) / denom
	return a.Add(da.Scale(t)), true
}

// intersectRays intersects two rays as infinite lines (matching the
// reference implementation's Ray2.intersect, which does not clip to
// the ray's forward half — bisectors routinely "intersect" behind
// their origin during degenerate configurations, and the event
// derivation relies on that).
func intersectRays(a, b Ray) (Point, bool) {
	return intersectLines(a.P, a.V, b.P, b.V)
}

// distanceToLine returns the perpendicular distance from p to the
// infinite line through a line segment's origin with its direction.
func distanceToLine(seg LineSegment, p Point) float64 {
	dir := seg.V.Normalize()
	if dir == (Point{}) {
		return p.Distance(seg.P)
	}
	rel := p.Sub(seg.P)
	// Perpendicular component: |rel - (rel.dir)dir|
	proj := rel.Dot(dir)
	perp := rel.Sub(dir.Scale(proj))
	return perp.Length()
}
