// Package cubic implements piecewise-cubic spline curves between two fixed
// end points, parameterised by coordinates in a constraint null space.
/*

A curve is the sum of the straight line between its end points and a
piecewise-cubic perturbation. The perturbation coefficients are not free:
they must vanish at both end points and be continuous in value, first and
second derivative at every interior knot. Package nullspace computes an
orthonormal basis of the coefficient vectors satisfying these constraints,
so that ANY choice of basis coordinates — the free parameters of the
curve — yields a feasible spline. A parameter matrix of all zeros yields
the straight line itself.

This representation is aimed at unconstrained optimization over curve
shape, e.g. geodesic finding on manifolds: an optimizer may move the free
parameters arbitrarily without ever leaving the feasible set.

Usage

Construct a spline descriptor from its end points and a knot count, then
evaluate it at a batch of times:

	s, err := cubic.FromNodes(splinalg.V(0, 0), splinalg.V(1, 1), 4)
	if err != nil { ... }
	params := s.InitParams()         // numNodes x D, all zero
	out, err := s.Evaluate([]float64{0, 0.25, 0.5, 0.75, 1}, params)

Each output element carries the curve point and its first derivative with
respect to curve time. Second derivatives are available via Acceleration.

Evaluation times live in [0,1]. Times outside that interval select the
first or last segment but keep the raw time as the monomial argument;
such extrapolation is accepted but mathematically unvalidated.

Evaluation is a pure function of (time, parameters, descriptor). A
descriptor is immutable after construction and may be used from multiple
goroutines concurrently.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package cubic
