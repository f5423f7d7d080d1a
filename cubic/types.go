package cubic

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splinalg"
	"gonum.org/v1/gonum/mat"
)

// tracer writes to trace with key 'cubic'
func tracer() tracing.Trace {
	return tracing.Select("cubic")
}

var (
	// ErrTooFewNodes indicates a knot count below 2.
	ErrTooFewNodes = errors.New("spline needs at least 2 nodes")
	// ErrDimensionMismatch indicates end points of different dimension.
	ErrDimensionMismatch = errors.New("end points live in spaces of different dimension")
	// ErrInvalidPoint indicates an end point with a NaN/Inf coordinate or
	// without any coordinates at all.
	ErrInvalidPoint = errors.New("end point has invalid coordinates")
	// ErrShapeMismatch indicates a parameter matrix of the wrong shape.
	ErrShapeMismatch = errors.New("parameter matrix does not match spline shape")
)

// Spline is a piecewise-cubic curve between two fixed end points p and q,
// represented by numNodes knots, i.e. numNodes-1 cubic segments. The
// basis matrix spans the null space of the curve's constraint system; it
// depends on the segment count only and is shared between splines (see
// package nullspace).
//
// A Spline is immutable. The shape of the curve between its end points is
// determined per evaluation by a matrix of free parameters, see
// InitParams and Evaluate.
type Spline struct {
	p, q splinalg.Vec

	numNodes int
	numEdges int

	basis *mat.Dense // shared, read-only
}

// P is the curve start point.
func (s *Spline) P() splinalg.Vec {
	return s.p
}

// Q is the curve end point.
func (s *Spline) Q() splinalg.Vec {
	return s.q
}

// Dim is the dimension of the ambient space.
func (s *Spline) Dim() int {
	return s.p.Dim()
}

// NumNodes is the number of knots, interior knots plus both end points.
func (s *Spline) NumNodes() int {
	return s.numNodes
}

// NumEdges is the number of cubic segments, NumNodes()-1.
func (s *Spline) NumEdges() int {
	return s.numEdges
}
