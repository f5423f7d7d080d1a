package cubic

import (
	"math"

	"github.com/npillmayer/splinalg"
	"gonum.org/v1/gonum/mat"
)

// coefficients projects the free parameters through the null-space basis,
// yielding the 4·numEdges x Dim matrix of perturbation coefficients.
// Segment i owns rows 4i..4i+3, ordered [constant, linear, quadratic,
// cubic]. Every column of the basis satisfies the constraint system, so
// the projection does for any params.
func (s *Spline) coefficients(params *mat.Dense) *mat.Dense {
	var c mat.Dense
	c.Mul(s.basis, params)
	return &c
}

// shiftScale drops the leading shift coefficients of every segment and
// scales the remainder by index plus one:
//
//	d.j = c.(j+shift) · (j+1)
//
// With shift=1 this is the standard polynomial-derivative rule, dropping
// the constant term. Acceleration applies the same rule with shift=2 on
// the original coefficients; that convention is part of the curve
// representation and must not be replaced by differentiating twice.
func shiftScale(coeffs *mat.Dense, numEdges, degree, shift int) *mat.Dense {
	_, dim := coeffs.Dims()
	rows := degree - shift
	d := mat.NewDense(rows*numEdges, dim, nil)
	for e := 0; e < numEdges; e++ {
		for j := 0; j < rows; j++ {
			for k := 0; k < dim; k++ {
				d.Set(e*rows+j, k, coeffs.At(e*degree+j+shift, k)*float64(j+1))
			}
		}
	}
	return d
}

// evalPiecewise evaluates the piecewise polynomial with the given
// per-segment coefficients at time t. coeffs holds degree rows per
// segment. Segment selection clamps floor(t·numEdges) into
// [0, numEdges-1], so t=1 is handled by the last segment and t outside
// [0,1] extrapolates. The monomial argument is the raw global t, NOT a
// per-segment local time: the null-space basis is solved with the same
// convention, and the two sides only fit together as a pair.
func evalPiecewise(t float64, numEdges int, coeffs *mat.Dense, degree int) splinalg.Vec {
	idx := int(math.Floor(t * float64(numEdges)))
	if idx < 0 {
		idx = 0
	}
	if idx > numEdges-1 {
		idx = numEdges - 1
	}
	_, dim := coeffs.Dims()
	val := make(splinalg.Vec, dim)
	tpow := 1.0
	for j := 0; j < degree; j++ {
		for k := 0; k < dim; k++ {
			val[k] += tpow * coeffs.At(idx*degree+j, k)
		}
		tpow *= t
	}
	return val
}
