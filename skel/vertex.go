package skel

// lavVertex is one active vertex of the wavefront: a node in a
// circular doubly-linked LAV, carrying the two original polygon edges
// incident to it and the bisector ray it traces as the wavefront
// advances.
type lavVertex struct {
	Point     Point
	EdgeLeft  LineSegment
	EdgeRight LineSegment
	Prev      *lavVertex
	Next      *lavVertex
	Lav       *lav
	IsReflex  bool
	Bisector  Ray
	Valid     bool
}

// newLavVertex constructs a vertex at point with the given incident
// edges. If inherited is non-nil it supplies the two direction
// vectors used for the reflex test and bisector construction instead
// of recomputing them from edgeLeft/edgeRight — this is the path
// unify takes to preserve correct reflex classification across a
// chain of unifications.
func newLavVertex(point Point, edgeLeft, edgeRight LineSegment, inherited *[2]Vector) *lavVertex {
	v := &lavVertex{
		Point:     point,
		EdgeLeft:  edgeLeft,
		EdgeRight: edgeRight,
		Valid:     true,
	}

	var dIn, dOut Vector
	if inherited != nil {
		dIn, dOut = inherited[0], inherited[1]
	} else {
		dIn = edgeLeft.V.Normalize().Negate()
		dOut = edgeRight.V.Normalize()
	}

	v.IsReflex = dIn.Cross(dOut) < 0

	dir := dIn.Add(dOut)
	if v.IsReflex {
		dir = dir.Negate()
	}
	v.Bisector = Ray{P: point, V: dir}

	return v
}

// originalEdges returns the immutable edge set of the SLAV this
// vertex's LAV belongs to.
func (v *lavVertex) originalEdges() []originalEdge {
	return v.Lav.Slav.OriginalEdges
}

// invalidate marks v dead and, if it still belongs to a LAV,
// delegates to that LAV so head-pointer bookkeeping stays consistent.
func (v *lavVertex) invalidate() {
	if v.Lav != nil {
		v.Lav.invalidate(v)
	} else {
		v.Valid = false
	}
}
