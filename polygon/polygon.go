/*
Package polygon approximates planar spline curves by closed polygons and
implements affine transforms, area computation and boolean clipping on
them. Clipping is backed by the polyclip-go library.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"errors"
	"fmt"
	"math"

	"github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splinalg"
	"github.com/npillmayer/splinalg/cubic"
	"gonum.org/v1/gonum/mat"
)

// L writes to trace with key 'polygon'
func L() tracing.Trace {
	return tracing.Select("polygon")
}

var (
	// ErrNotPlanar indicates a curve over a space of dimension other than 2.
	ErrNotPlanar = errors.New("polygon approximation needs a planar curve")
	// ErrTooFewSamples indicates a sample count below 1.
	ErrTooFewSamples = errors.New("polygon approximation needs at least one sample")
)

// Polygon is a polygon in the plane, open while being built and closed by
// Cycle(). Knots are planar vectors.
type Polygon struct {
	knots []splinalg.Vec
	cycle bool
}

// NullPolygon creates an empty polygon, to be extended knot by knot.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a corner point. Part of builder functionality.
// Panics for vectors of dimension other than 2.
func (pg *Polygon) Knot(v splinalg.Vec) *Polygon {
	if v.Dim() != 2 {
		panic(fmt.Sprintf("polygon knot of dimension %d", v.Dim()))
	}
	pg.knots = append(pg.knots, v)
	return pg
}

// Cycle closes the polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// N is the number of knots.
func (pg *Polygon) N() int {
	return len(pg.knots)
}

// Z returns knot i.
func (pg *Polygon) Z(i int) splinalg.Vec {
	return pg.knots[i]
}

// IsCycle is a predicate: has the polygon been closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// Box creates a closed axis-aligned rectangle from two opposite corner
// points.
func Box(p1, p2 splinalg.Vec) *Polygon {
	return NullPolygon().
		Knot(splinalg.V(p1[0], p1[1])).
		Knot(splinalg.V(p2[0], p1[1])).
		Knot(splinalg.V(p2[0], p2[1])).
		Knot(splinalg.V(p1[0], p2[1])).
		Cycle()
}

// FromCurve samples a planar spline curve at samples+1 equidistant times
// in [0,1] and closes the sampled polyline into a polygon. The curve's
// ambient space must be 2-dimensional.
func FromCurve(s *cubic.Spline, params *mat.Dense, samples int) (*Polygon, error) {
	if s.Dim() != 2 {
		return nil, fmt.Errorf("%w: dimension %d", ErrNotPlanar, s.Dim())
	}
	if samples < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSamples, samples)
	}
	ts := make([]float64, samples+1)
	for i := range ts {
		ts[i] = float64(i) / float64(samples)
	}
	out, err := s.Evaluate(ts, params)
	if err != nil {
		return nil, err
	}
	pg := NullPolygon()
	for _, tsp := range out {
		pg.Knot(tsp.Point)
	}
	L().Debugf("sampled curve into polygon with %d knots", pg.N())
	return pg.Cycle(), nil
}

// Transformed applies an affine transform to every knot and returns the
// resulting polygon. The receiver is unchanged.
func (pg *Polygon) Transformed(m splinalg.AT) *Polygon {
	o := &Polygon{cycle: pg.cycle}
	o.knots = make([]splinalg.Vec, len(pg.knots))
	for i, v := range pg.knots {
		o.knots[i] = m.Transform(v)
	}
	return o
}

// Area computes the unsigned area enclosed by the polygon (shoelace
// formula). Open polygons are treated as implicitly closed.
func (pg *Polygon) Area() float64 {
	n := len(pg.knots)
	if n < 3 {
		return 0
	}
	var a float64
	for i := 0; i < n; i++ {
		v, w := pg.knots[i], pg.knots[(i+1)%n]
		a += v[0]*w[1] - w[0]*v[1]
	}
	return math.Abs(a) / 2
}

// contour converts to polyclip's representation.
func (pg *Polygon) contour() polyclip.Contour {
	c := make(polyclip.Contour, len(pg.knots))
	for i, v := range pg.knots {
		c[i] = polyclip.Point{X: v[0], Y: v[1]}
	}
	return c
}

func fromContours(cs polyclip.Polygon) []*Polygon {
	out := make([]*Polygon, 0, len(cs))
	for _, c := range cs {
		pg := NullPolygon()
		for _, pt := range c {
			pg.Knot(splinalg.V(pt.X, pt.Y))
		}
		out = append(out, pg.Cycle())
	}
	return out
}

// construct runs a polyclip boolean operation of pg against clip. The
// result may consist of several disjoint polygons.
func (pg *Polygon) construct(op polyclip.Op, clip *Polygon) []*Polygon {
	subject := polyclip.Polygon{pg.contour()}
	clipping := polyclip.Polygon{clip.contour()}
	return fromContours(subject.Construct(op, clipping))
}

// Intersection clips pg against other.
func (pg *Polygon) Intersection(other *Polygon) []*Polygon {
	return pg.construct(polyclip.INTERSECTION, other)
}

// Union merges pg with other.
func (pg *Polygon) Union(other *Polygon) []*Polygon {
	return pg.construct(polyclip.UNION, other)
}

// Difference subtracts other from pg.
func (pg *Polygon) Difference(other *Polygon) []*Polygon {
	return pg.construct(polyclip.DIFFERENCE, other)
}

// AsString returns a polygon as a (debugging) string, e.g.
//
//	(0,0) .. (1,3) .. (3,0) .. cycle
func AsString(pg *Polygon) string {
	var s string
	for i := 0; i < pg.N(); i++ {
		if i > 0 {
			s += " .. "
		}
		s += pg.Z(i).String()
	}
	if pg.IsCycle() {
		s += " .. cycle"
	}
	return s
}
