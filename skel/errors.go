package skel

import "errors"

var (
	// ErrEmptyContour indicates an outer contour or hole had no points.
	ErrEmptyContour = errors.New("skel: contour is empty")

	// ErrDegenerateContour indicates a contour normalized down to
	// fewer than three distinct vertices.
	ErrDegenerateContour = errors.New("skel: contour has fewer than three distinct vertices after normalization")

	// ErrHoleShapeMismatch indicates holes were passed as a flat
	// vertex list instead of a list of contours.
	ErrHoleShapeMismatch = errors.New("skel: holes must be a list of contours, not a single flat vertex list")

	// ErrInvariantViolation signals a programmer error: a vertex was
	// asked to invalidate itself against a LAV it does not belong to.
	ErrInvariantViolation = errors.New("skel: invariant violation")
)
