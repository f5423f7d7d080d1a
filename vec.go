package splinalg

import (
	"fmt"
	"math"
	"strings"
)

// === Vector Data Type ======================================================

// Vec is a point or direction in D-dimensional space. Operations on vectors
// never modify their receiver; they return fresh vectors instead. Binary
// operations require both operands to have the same dimension and will
// panic otherwise.
type Vec []float64

// V is a quick notation for constructing a vector from floats.
func V(coords ...float64) Vec {
	v := make(Vec, len(coords))
	copy(v, coords)
	return v
}

// Zero returns the origin of dim-dimensional space.
func Zero(dim int) Vec {
	return make(Vec, dim)
}

// Dim is the dimension of the space v lives in.
func (v Vec) Dim() int {
	return len(v)
}

// Pretty Stringer for vectors.
func (v Vec) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, x := range v {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%g", x)
	}
	b.WriteByte(')')
	return b.String()
}

// IsValid is a predicate: are all coordinates finite?
func (v Vec) IsValid() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Sanitize returns v unchanged if all coordinates are finite, and the
// origin of the same dimension otherwise.
func Sanitize(v Vec) Vec {
	if !v.IsValid() {
		tracer().Errorf("sanitized vector with NaN/Inf coordinate")
		return Zero(v.Dim())
	}
	return v
}

// IsOrigin is a predicate: is this vector the origin?
func (v Vec) IsOrigin() bool {
	for _, x := range v {
		if !Is0(x) {
			return false
		}
	}
	return true
}

// Equal compares two vectors coordinate-wise, within ε.
func (v Vec) Equal(w Vec) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if !Is0(v[i] - w[i]) {
			return false
		}
	}
	return true
}

// Zap rounds every coordinate to Epsilon.
func (v Vec) Zap() Vec {
	z := make(Vec, len(v))
	for i, x := range v {
		z[i] = Zap(x)
	}
	return z
}

// Add returns v + w.
func (v Vec) Add(w Vec) Vec {
	v.checkDim(w)
	r := make(Vec, len(v))
	for i := range v {
		r[i] = v[i] + w[i]
	}
	return r
}

// Sub returns v - w.
func (v Vec) Sub(w Vec) Vec {
	v.checkDim(w)
	r := make(Vec, len(v))
	for i := range v {
		r[i] = v[i] - w[i]
	}
	return r
}

// Scaled returns a new vector scaled by factor a.
func (v Vec) Scaled(a float64) Vec {
	r := make(Vec, len(v))
	for i := range v {
		r[i] = v[i] * a
	}
	return r
}

// Interp evaluates the straight line from v to w at time t, i.e.
//
//	v + (w-v)·t
//
// t is not restricted to [0,1]; values outside extrapolate the line.
func (v Vec) Interp(t float64, w Vec) Vec {
	v.checkDim(w)
	r := make(Vec, len(v))
	for i := range v {
		r[i] = v[i] + (w[i]-v[i])*t
	}
	return r
}

func (v Vec) checkDim(w Vec) {
	if len(v) != len(w) {
		panic(fmt.Sprintf("vectors of dimension %d and %d in binary operation", len(v), len(w)))
	}
}

// === Tangent Space =========================================================

// TangentSpace couples a point on a curve with a derivative vector at that
// point. It is the output carrier of curve evaluation (see package cubic).
type TangentSpace struct {
	Point  Vec
	Vector Vec
}

// String produces a readable "point @ vector" representation.
func (ts TangentSpace) String() string {
	return fmt.Sprintf("%v @ %v", ts.Point, ts.Vector)
}
