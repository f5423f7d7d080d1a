package cubic

import (
	"fmt"

	"github.com/npillmayer/splinalg"
	"github.com/npillmayer/splinalg/nullspace"
	"gonum.org/v1/gonum/mat"
)

// FromNodes creates a spline between end points p and q, represented by
// numNodes knots. It validates the end-point geometry and returns an
// error for fewer than 2 nodes, mismatched dimensions or non-finite
// coordinates. The null-space basis for the resulting segment count is
// taken from the process-wide memo, so repeated construction with equal
// knot counts is cheap.
func FromNodes(p, q splinalg.Vec, numNodes int) (*Spline, error) {
	if err := validateNodes(p, q, numNodes); err != nil {
		return nil, err
	}
	basis, err := nullspace.Shared(numNodes - 1)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("spline over %d-dimensional space with %d edges", p.Dim(), numNodes-1)
	return &Spline{
		p:        p,
		q:        q,
		numNodes: numNodes,
		numEdges: numNodes - 1,
		basis:    basis,
	}, nil
}

// MustFromNodes is a convenience helper which panics on validation errors.
func MustFromNodes(p, q splinalg.Vec, numNodes int) *Spline {
	s, err := FromNodes(p, q, numNodes)
	if err != nil {
		panic(err)
	}
	return s
}

func validateNodes(p, q splinalg.Vec, numNodes int) error {
	if numNodes < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewNodes, numNodes)
	}
	if p.Dim() != q.Dim() {
		return fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, p.Dim(), q.Dim())
	}
	if p.Dim() < 1 {
		return fmt.Errorf("%w: no coordinates", ErrInvalidPoint)
	}
	if !p.IsValid() || !q.IsValid() {
		return fmt.Errorf("%w: NaN or Inf", ErrInvalidPoint)
	}
	return nil
}

// InitParams returns a fresh zero parameter matrix of shape
// NumNodes() x Dim(). Zero parameters describe the straight line from p
// to q; optimizers conventionally start from there.
func (s *Spline) InitParams() *mat.Dense {
	return mat.NewDense(s.numNodes, s.p.Dim(), nil)
}

func (s *Spline) checkParams(params *mat.Dense) error {
	if params == nil {
		return fmt.Errorf("%w: nil", ErrShapeMismatch)
	}
	r, c := params.Dims()
	if r != s.numNodes || c != s.p.Dim() {
		return fmt.Errorf("%w: got %dx%d, want %dx%d",
			ErrShapeMismatch, r, c, s.numNodes, s.p.Dim())
	}
	return nil
}

// Evaluate computes curve point and first derivative at every time in ts.
// The curve point is the straight line from p to q plus the piecewise
// perturbation selected by params; the derivative is taken with respect
// to curve time.
//
// Times outside [0,1] extrapolate, see the package documentation.
func (s *Spline) Evaluate(ts []float64, params *mat.Dense) ([]splinalg.TangentSpace, error) {
	if err := s.checkParams(params); err != nil {
		return nil, err
	}
	coeffs := s.coefficients(params)
	dcoeffs := shiftScale(coeffs, s.numEdges, 4, 1)
	delta := s.q.Sub(s.p)

	out := make([]splinalg.TangentSpace, len(ts))
	for i, t := range ts {
		point := s.p.Interp(t, s.q).Add(evalPiecewise(t, s.numEdges, coeffs, 4))
		vector := delta.Add(evalPiecewise(t, s.numEdges, dcoeffs, 3))
		out[i] = splinalg.TangentSpace{Point: point, Vector: vector}
	}
	return out, nil
}

// At evaluates the curve at a single time.
func (s *Spline) At(t float64, params *mat.Dense) (splinalg.TangentSpace, error) {
	out, err := s.Evaluate([]float64{t}, params)
	if err != nil {
		return splinalg.TangentSpace{}, err
	}
	return out[0], nil
}

// Acceleration computes the second derivative of the curve with respect
// to curve time at every time in ts. The straight-line part of the curve
// contributes nothing here; only the perturbation does.
func (s *Spline) Acceleration(ts []float64, params *mat.Dense) ([]splinalg.Vec, error) {
	if err := s.checkParams(params); err != nil {
		return nil, err
	}
	coeffs := s.coefficients(params)
	ddcoeffs := shiftScale(coeffs, s.numEdges, 4, 2)

	out := make([]splinalg.Vec, len(ts))
	for i, t := range ts {
		out[i] = evalPiecewise(t, s.numEdges, ddcoeffs, 2)
	}
	return out, nil
}
