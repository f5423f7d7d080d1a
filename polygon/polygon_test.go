package polygon

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/splinalg"
	"github.com/npillmayer/splinalg/cubic"
	"github.com/stretchr/testify/assert"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon().Knot(splinalg.V(0, 0)).Knot(splinalg.V(1, 3)).Knot(splinalg.V(3, 0)).Cycle()
	L().Infof("pg = %s", AsString(pg))
	if pg.N() != 3 {
		t.Fail()
	}
	if got, want := AsString(pg), "(0,0) .. (1,3) .. (3,0) .. cycle"; got != want {
		t.Fatalf("AsString mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(splinalg.V(0, 5), splinalg.V(4, 1))
	L().Infof("box = %s", AsString(box))
	if box.N() != 4 {
		t.Fail()
	}
	assert.InDelta(t, 16.0, box.Area(), 1e-12)
}

func TestFromCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := cubic.MustFromNodes(splinalg.V(0, 0), splinalg.V(1, 1), 3)
	pg, err := FromCurve(s, s.InitParams(), 4)
	if err != nil {
		t.Fatalf("FromCurve failed: %v", err)
	}
	if pg.N() != 5 {
		t.Errorf("expected 5 knots, got %d", pg.N())
	}
	if !pg.IsCycle() {
		t.Errorf("expected sampled polygon to be closed")
	}
	// zero parameters sample the straight line
	if !pg.Z(2).Equal(splinalg.V(0.5, 0.5)) {
		t.Errorf("expected mid sample (0.5,0.5), got %v", pg.Z(2))
	}
}

func TestFromCurveNotPlanar(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := cubic.MustFromNodes(splinalg.V(0, 0, 0), splinalg.V(1, 1, 1), 3)
	if _, err := FromCurve(s, s.InitParams(), 4); err == nil {
		t.Fatalf("expected error for 3-dimensional curve, got none")
	}
}

func TestTransformed(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(splinalg.V(0, 0), splinalg.V(2, 2))
	moved := box.Transformed(splinalg.Translation(splinalg.V(10, 0)))
	if !moved.Z(0).Equal(splinalg.V(10, 0)) {
		t.Errorf("expected translated corner (10,0), got %v", moved.Z(0))
	}
	assert.InDelta(t, box.Area(), moved.Area(), 1e-12)
	scaled := box.Transformed(splinalg.Scaling(2, 1))
	assert.InDelta(t, 8.0, scaled.Area(), 1e-12)
}

func TestIntersection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Box(splinalg.V(0, 0), splinalg.V(2, 2))
	b := Box(splinalg.V(1, 1), splinalg.V(3, 3))
	clipped := a.Intersection(b)
	if len(clipped) != 1 {
		t.Fatalf("expected one intersection polygon, got %d", len(clipped))
	}
	assert.InDelta(t, 1.0, clipped[0].Area(), 1e-9)
}

func TestUnionArea(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Box(splinalg.V(0, 0), splinalg.V(1, 1))
	b := Box(splinalg.V(2, 0), splinalg.V(3, 1))
	merged := a.Union(b)
	if len(merged) != 2 {
		t.Fatalf("expected two disjoint polygons, got %d", len(merged))
	}
	total := merged[0].Area() + merged[1].Area()
	assert.InDelta(t, 2.0, total, 1e-9)
}
