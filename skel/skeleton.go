package skel

import "fmt"

// Skeletonize computes the straight skeleton of outer (plus zero or
// more holes).
//
// outer must be CCW and non-self-intersecting; each hole must be CW
// and non-self-intersecting, in a plane where the y-axis grows
// downward. Neither outer nor any hole may share an edge with
// another — that is the caller's responsibility. The returned
// subtrees are in event-firing order, after the source-merge pass.
func Skeletonize(outer []Point, holes [][]Point, opts ...Option) ([]Subtree, error) {
	cfg := newConfig(opts)
	if cfg.logOutput != nil {
		prevEnabled, prevOutput := DebugEnabled, DebugOutput
		DebugEnabled, DebugOutput = true, cfg.logOutput
		defer func() { DebugEnabled, DebugOutput = prevEnabled, prevOutput }()
	}

	debugLogPhase("NORMALIZE")
	if len(outer) == 0 {
		return nil, ErrEmptyContour
	}
	contours := make([][]Point, 0, 1+len(holes))
	contours = append(contours, normalizeContour(outer))
	for _, h := range holes {
		if len(h) == 0 {
			return nil, ErrEmptyContour
		}
		contours = append(contours, normalizeContour(h))
	}
	debugLog("normalized %d contour(s)", len(contours))

	debugLogPhase("BUILD SLAV")
	s, err := newSLAV(contours)
	if err != nil {
		return nil, fmt.Errorf("skel: building active-vertex graph: %w", err)
	}

	queue := newEventQueue()
	for _, l := range s.Lavs {
		for _, v := range l.vertices() {
			if ev, ok := v.nextEvent(); ok {
				queue.push(ev)
			}
		}
	}

	debugLogPhase("EVENT LOOP")
	var output []*Subtree
	for !queue.empty() && !s.empty() {
		e := queue.pop()
		debugLogEvent("fire", e)

		var subtree *Subtree
		var newEvents []event

		switch ev := e.(type) {
		case *edgeEvent:
			if !ev.A.Valid || !ev.B.Valid {
				continue
			}
			subtree, newEvents = s.handleEdgeEvent(ev)
		case *splitEvent:
			if !ev.Vertex.Valid {
				continue
			}
			subtree, newEvents = s.handleSplitEvent(ev)
		}

		queue.pushAll(newEvents)
		if subtree != nil {
			output = append(output, subtree)
		}
	}

	debugLogPhase("MERGE")
	output = mergeSources(output)

	result := make([]Subtree, len(output))
	for i, st := range output {
		result[i] = *st
	}
	return result, nil
}
