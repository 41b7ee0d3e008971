package skel

// mergeSources coalesces subtrees whose source points compare equal:
// their sinks are unioned preserving order with duplicates removed,
// and the later subtree is dropped. Height of the survivor is
// unchanged. Highly symmetrical shapes with reflex vertices can
// produce multiple sources at the same location; this is the pass
// that reconciles them.
func mergeSources(subtrees []*Subtree) []*Subtree {
	index := make(map[Point]int, len(subtrees))
	merged := make([]*Subtree, 0, len(subtrees))

	for _, st := range subtrees {
		if i, ok := index[st.Source]; ok {
			survivor := merged[i]
			for _, sink := range st.Sinks {
				if !containsPoint(survivor.Sinks, sink) {
					survivor.Sinks = append(survivor.Sinks, sink)
				}
			}
			continue
		}
		index[st.Source] = len(merged)
		merged = append(merged, st)
	}
	return merged
}

func containsPoint(pts []Point, p Point) bool {
	for _, q := range pts {
		if q == p {
			return true
		}
	}
	return false
}
