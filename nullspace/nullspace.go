/*
Package nullspace constructs orthonormal bases for the null space of the
linear constraint system of piecewise-cubic splines.

A spline with e segments is described by 4·e polynomial coefficients. The
constraint system pins the curve value at both end points and enforces
continuity of value, first and second derivative at every interior knot,
which amounts to 2 + 3·(e-1) homogeneous linear constraints. Any
coefficient vector in the null space of this system yields a feasible
spline, so the null-space basis turns constrained curve fitting into an
unconstrained problem over the basis coordinates.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package nullspace

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/gonum/mat"
)

// tracer writes to trace with key 'nullspace'
func tracer() tracing.Trace {
	return tracing.Select("nullspace")
}

var (
	// ErrNoEdges indicates a segment count below 1.
	ErrNoEdges = errors.New("spline needs at least one edge")
	// ErrNoConvergence indicates that the SVD of the constraint matrix failed.
	ErrNoConvergence = errors.New("singular value decomposition did not converge")
)

// Constraints builds the constraint matrix for a piecewise-cubic spline
// with numEdges polynomial segments. Each segment contributes 4 contiguous
// columns, ordered [constant, linear, quadratic, cubic]. The rows are, in
// order: the two end-point rows, then value continuity, first-derivative
// continuity and second-derivative continuity at every interior knot. The
// interior knot times are the equidistant fractions i/numEdges.
//
// numEdges must be at least 1.
func Constraints(numEdges int) *mat.Dense {
	rows := 2 + 3*(numEdges-1)
	cols := 4 * numEdges
	c := mat.NewDense(rows, cols, nil)

	// End-point rows: curve value at the very start and the very end. The
	// end row is the monomial vector [1,1,1,1], i.e. t^0..t^3 at t=1.
	c.Set(0, 0, 1.0)
	for j := cols - 4; j < cols; j++ {
		c.Set(1, j, 1.0)
	}

	for i := 0; i < numEdges-1; i++ {
		ti := float64(i+1) / float64(numEdges)
		si := 4 * i // start column of segment i

		value := [4]float64{1.0, ti, ti * ti, ti * ti * ti}
		first := [4]float64{0.0, 1.0, 2.0 * ti, 3.0 * ti * ti}
		// Row layout kept exactly as solved for: 6t in the quadratic
		// slot, 2 in the cubic slot.
		second := [4]float64{0.0, 0.0, 6.0 * ti, 2.0}

		fillPaired(c, 2+i, si, value)
		fillPaired(c, 2+(numEdges-1)+i, si, first)
		fillPaired(c, 2+2*(numEdges-1)+i, si, second)
	}
	return c
}

// fillPaired writes a continuity row: the functional on segment i's block
// and its negation on segment i+1's block.
func fillPaired(c *mat.Dense, row, si int, fill [4]float64) {
	for k, f := range fill {
		c.Set(row, si+k, f)
		c.Set(row, si+4+k, -f)
	}
}

// Basis computes an orthonormal basis of the null space of the constraint
// system for numEdges segments. The result has 4·numEdges rows and
// numEdges+1 columns; its columns span exactly the set of coefficient
// vectors satisfying all end-point and continuity constraints.
//
// The basis depends on the segment count only. It is therefore a prime
// candidate for memoization, see Memo and Shared.
func Basis(numEdges int) (*mat.Dense, error) {
	if numEdges < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrNoEdges, numEdges)
	}
	constraints := Constraints(numEdges)

	var svd mat.SVD
	if ok := svd.Factorize(constraints, mat.SVDFull); !ok {
		return nil, fmt.Errorf("%w for %d edges", ErrNoConvergence, numEdges)
	}
	// The null space is spanned by the right-singular vectors beyond the
	// singular-value count. Factorizing with SVDFull keeps them around.
	rank := len(svd.Values(nil))
	var v mat.Dense
	svd.VTo(&v)

	n := 4 * numEdges
	basis := mat.DenseCopyOf(v.Slice(0, n, rank, n))
	tracer().Debugf("null-space basis for %d edges: %d x %d", numEdges, n, n-rank)
	return basis, nil
}
