package skel

// slav is the set of all active LAVs plus the immutable snapshot of
// original polygon edges used by split-event eligibility tests.
type slav struct {
	Lavs          []*lav
	OriginalEdges []originalEdge
}

// newSLAV constructs the SLAV from a normalized outer contour plus
// zero or more normalized hole contours, each becoming its own LAV.
func newSLAV(contours [][]Point) (*slav, error) {
	s := &slav{}
	for _, c := range contours {
		if len(c) < 3 {
			return nil, ErrDegenerateContour
		}
		s.Lavs = append(s.Lavs, newLavFromPolygon(c, s))
	}

	for _, l := range s.Lavs {
		for _, v := range l.vertices() {
			s.OriginalEdges = append(s.OriginalEdges, originalEdge{
				Edge:          LineSegment{P: v.Prev.Point, V: v.Point.Sub(v.Prev.Point)},
				BisectorLeft:  v.Prev.Bisector,
				BisectorRight: v.Bisector,
			})
		}
	}
	return s, nil
}

func (s *slav) empty() bool { return len(s.Lavs) == 0 }

func (s *slav) removeLav(l *lav) {
	for i, cur := range s.Lavs {
		if cur == l {
			s.Lavs = append(s.Lavs[:i], s.Lavs[i+1:]...)
			return
		}
	}
}

// handleEdgeEvent fires when the wavefront edge between e.A and e.B
// collapses to zero length.
func (s *slav) handleEdgeEvent(e *edgeEvent) (*Subtree, []event) {
	var sinks []Point
	var events []event

	l := e.A.Lav

	if e.A.Prev == e.B.Next {
		// Degenerate collapse: the LAV has exactly three effective
		// vertices and all three bisectors concur at one point.
		s.removeLav(l)
		for _, v := range l.vertices() {
			sinks = append(sinks, v.Point)
			v.invalidate()
		}
	} else {
		replacement := l.unify(e.A, e.B, e.Point)
		sinks = append(sinks, e.A.Point, e.B.Point)
		if ev, ok := replacement.nextEvent(); ok {
			events = append(events, ev)
		}
	}

	return &Subtree{Source: e.Point, Height: e.Distance, Sinks: sinks}, events
}

// handleSplitEvent fires when a reflex vertex's bisector reaches the
// interior of an opposite original edge, splitting one LAV into two
// or merging two LAVs into one.
func (s *slav) handleSplitEvent(e *splitEvent) (*Subtree, []event) {
	l := e.Vertex.Lav

	sinks := []Point{e.Vertex.Point}
	var seeds []*lavVertex

	var x, y *lavVertex // right, left straddling vertices
	norm := e.OppositeEdge.V.Normalize()

	var allVertices []*lavVertex
	for _, candidateLav := range s.Lavs {
		allVertices = append(allVertices, candidateLav.vertices()...)
	}

search:
	for _, v := range allVertices {
		matched := false
		if norm == v.EdgeLeft.V.Normalize() && e.OppositeEdge.P == v.EdgeLeft.P {
			x = v
			y = x.Prev
			matched = true
		} else if norm == v.EdgeRight.V.Normalize() && e.OppositeEdge.P == v.EdgeRight.P {
			y = v
			x = y.Next
			matched = true
		}
		if !matched {
			continue
		}

		xleft := y.Bisector.V.Normalize().Cross(e.Point.Sub(y.Point).Normalize()) >= -EPSILON
		xright := x.Bisector.V.Normalize().Cross(e.Point.Sub(x.Point).Normalize()) <= EPSILON

		if xleft && xright {
			break search
		}
		x, y = nil, nil
	}

	if x == nil {
		return nil, nil
	}

	v1 := newLavVertex(e.Point, e.Vertex.EdgeLeft, e.OppositeEdge, nil)
	v2 := newLavVertex(e.Point, e.OppositeEdge, e.Vertex.EdgeRight, nil)

	v1.Prev = e.Vertex.Prev
	v1.Next = x
	e.Vertex.Prev.Next = v1
	x.Prev = v1

	v2.Prev = y
	v2.Next = e.Vertex.Next
	e.Vertex.Next.Prev = v2
	y.Next = v2

	s.removeLav(l)

	var newLavs []*lav
	if l != x.Lav {
		// The split actually merges two LAVs (outer+hole, or two
		// already-split sub-chains) into one, rooted at v1.
		s.removeLav(x.Lav)
		newLavs = []*lav{newLavFromChain(v1, s)}
	} else {
		newLavs = []*lav{newLavFromChain(v1, s), newLavFromChain(v2, s)}
	}

	for _, nl := range newLavs {
		if nl.Len > 2 {
			s.Lavs = append(s.Lavs, nl)
			seeds = append(seeds, nl.Head)
		} else {
			sinks = append(sinks, nl.Head.Next.Point)
			for _, v := range nl.vertices() {
				v.invalidate()
			}
		}
	}

	var events []event
	for _, v := range seeds {
		if ev, ok := v.nextEvent(); ok {
			events = append(events, ev)
		}
	}

	e.Vertex.invalidate()
	return &Subtree{Source: e.Point, Height: e.Distance, Sinks: sinks}, events
}
