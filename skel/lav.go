package skel

// lav is a circular doubly-linked list of active vertices — one
// active contour of the wavefront. It owns its vertices.
type lav struct {
	Head *lavVertex
	Len  int
	Slav *slav
}

// newLavFromPolygon builds a LAV from a normalized contour, creating
// one vertex per point and wiring edgeLeft/edgeRight from the
// adjacent points.
func newLavFromPolygon(points []Point, s *slav) *lav {
	l := &lav{Slav: s}
	n := len(points)
	vertices := make([]*lavVertex, n)
	for i, p := range points {
		prev := points[(i-1+n)%n]
		next := points[(i+1)%n]
		vertices[i] = newLavVertex(p, LineSegment{P: prev, V: p.Sub(prev)}, LineSegment{P: p, V: next.Sub(p)}, nil)
	}
	for i, v := range vertices {
		v.Lav = l
		v.Next = vertices[(i+1)%n]
		v.Prev = vertices[(i-1+n)%n]
	}
	l.Head = vertices[0]
	l.Len = n
	return l
}

// newLavFromChain wraps an already-linked cycle of vertices (produced
// by the split handler) into a new LAV rooted at head, claiming
// ownership of every vertex in the cycle.
func newLavFromChain(head *lavVertex, s *slav) *lav {
	l := &lav{Head: head, Slav: s}
	v := head
	for {
		v.Lav = l
		l.Len++
		v = v.Next
		if v == head {
			break
		}
	}
	return l
}

// invalidate marks vertex dead, advances the LAV's head pointer off
// it if necessary, and severs the vertex's back-reference. Panics if
// vertex does not belong to this LAV — an invariant violation is a
// programmer error, not a normal runtime condition.
func (l *lav) invalidate(vertex *lavVertex) {
	if vertex.Lav != l {
		panic(ErrInvariantViolation)
	}
	vertex.Valid = false
	if l.Head == vertex {
		l.Head = l.Head.Next
	}
	vertex.Lav = nil
}

// unify collapses adjacent vertices a and b (b == a.Next) into a
// single replacement vertex at point, inheriting a's left edge and
// b's right edge and the two vertices' bisector directions (so reflex
// classification survives chains of unifications). The replacement is
// stitched between a.Prev and b.Next; a and b are invalidated.
func (l *lav) unify(a, b *lavVertex, point Point) *lavVertex {
	inherited := [2]Vector{b.Bisector.V.Normalize(), a.Bisector.V.Normalize()}
	replacement := newLavVertex(point, a.EdgeLeft, b.EdgeRight, &inherited)
	replacement.Lav = l

	if l.Head == a || l.Head == b {
		l.Head = replacement
	}

	a.Prev.Next = replacement
	b.Next.Prev = replacement
	replacement.Prev = a.Prev
	replacement.Next = b.Next

	a.invalidate()
	b.invalidate()

	l.Len--
	return replacement
}

// vertices returns a snapshot slice of the LAV's current members, safe
// to range over while mutating the underlying links (mirrors the
// reference implementation's list(lav) before invalidating in bulk).
func (l *lav) vertices() []*lavVertex {
	out := make([]*lavVertex, 0, l.Len)
	v := l.Head
	for {
		out = append(out, v)
		v = v.Next
		if v == l.Head {
			break
		}
	}
	return out
}
