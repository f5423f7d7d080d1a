package splinalg

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	if !Is1(1.00000002) {
		t.Errorf("Expected 1.00000002 to mean 1.0, does not")
	}
	if Zap(a) != 0 {
		t.Errorf("Expected Zap(a) to be exactly 0, is not")
	}
}

func TestVecBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	v := V(3, 2, 1)
	w := V(-3, -2, -1)
	if !v.Add(w).IsOrigin() {
		t.Errorf("Expected v + w to be the origin, is %v", v.Add(w))
	}
	if v.Dim() != 3 {
		t.Errorf("Expected v to be 3-dimensional, is %d", v.Dim())
	}
	if !v.Sub(v).Equal(Zero(3)) {
		t.Errorf("Expected v - v to equal the origin, does not")
	}
	if !v.Scaled(2).Equal(V(6, 4, 2)) {
		t.Errorf("Expected 2v to be (6,4,2), is %v", v.Scaled(2))
	}
}

func TestVecInterp(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := V(0, 0)
	q := V(2, 4)
	if !p.Interp(0, q).Equal(p) {
		t.Errorf("Expected line at t=0 to be p")
	}
	if !p.Interp(1, q).Equal(q) {
		t.Errorf("Expected line at t=1 to be q")
	}
	if !p.Interp(0.5, q).Equal(V(1, 2)) {
		t.Errorf("Expected line at t=0.5 to be (1,2), is %v", p.Interp(0.5, q))
	}
}

func TestVecValidity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !V(1, 2).IsValid() {
		t.Errorf("Expected (1,2) to be valid, is not")
	}
	if V(math.NaN(), 0).IsValid() {
		t.Errorf("Expected NaN coordinate to be invalid, is not")
	}
	if !Sanitize(V(math.Inf(1), 0)).IsOrigin() {
		t.Errorf("Expected sanitized Inf vector to be origin, is not")
	}
}

func TestVecDimPanic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on dimension mismatch, got none")
		}
	}()
	V(1, 2).Add(V(1, 2, 3))
}

func TestTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !V(1, 1).Add(V(-1, -1)).IsOrigin() {
		t.Errorf("Expected (1,1) shifted (-1,-1) to be origin, is not")
	}
	T := Translation(V(-1, -1))
	if !T.Transform(V(1, 1)).IsOrigin() {
		t.Errorf("Expected translated point to be origin, is not")
	}
}

func TestRotation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	R := Rotation(180 * Deg2Rad)
	if !R.Transform(V(1, 0)).Add(V(1, 0)).Zap().IsOrigin() {
		t.Errorf("Expected result to be origin, is not")
	}
}

func TestCombine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	T := Translation(V(2, 0)).Combine(Scaling(2, 2))
	v := T.Transform(V(1, 1))
	if !v.Equal(V(6, 2)) {
		t.Errorf("Expected combined transform of (1,1) to be (6,2), is %v", v)
	}
}
