package main

import (
	"encoding/json"
	"fmt"

	"github.com/go-clipper/straight-skeleton/skel"
)

// polygonFile is the on-disk JSON shape accepted by the CLI: an
// outer ring plus a list of hole rings. holes is decoded manually so
// that a single flat contour given where a list of contours was
// expected is rejected with skel.ErrHoleShapeMismatch instead of a
// generic JSON type error.
type polygonFile struct {
	Outer [][2]float64    `json:"outer"`
	Holes json.RawMessage `json:"holes,omitempty"`
}

func parsePolygonFile(data []byte) ([]skel.Point, [][]skel.Point, error) {
	var pf polygonFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, nil, fmt.Errorf("decoding polygon file: %w", err)
	}

	outer := toPoints(pf.Outer)

	if len(pf.Holes) == 0 {
		return outer, nil, nil
	}

	holes, err := decodeHoles(pf.Holes)
	if err != nil {
		return nil, nil, err
	}
	return outer, holes, nil
}

// decodeHoles distinguishes "holes": [[x,y],[x,y],...] (a single
// flat contour, the common mistake this guards against) from
// "holes": [[[x,y],...], [[x,y],...]] (a list of contours).
func decodeHoles(raw json.RawMessage) ([][]skel.Point, error) {
	var asContours [][][2]float64
	if err := json.Unmarshal(raw, &asContours); err == nil {
		holes := make([][]skel.Point, len(asContours))
		for i, c := range asContours {
			holes[i] = toPoints(c)
		}
		return holes, nil
	}

	var asFlat [][2]float64
	if err := json.Unmarshal(raw, &asFlat); err == nil {
		return nil, skel.ErrHoleShapeMismatch
	}

	return nil, fmt.Errorf("decoding holes: unrecognized shape")
}

func toPoints(coords [][2]float64) []skel.Point {
	pts := make([]skel.Point, len(coords))
	for i, c := range coords {
		pts[i] = skel.Point{X: c[0], Y: c[1]}
	}
	return pts
}
