package polygon

import "testing"

func square(x0, y0, x1, y1 int64) Polygon {
	return Polygon{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

func TestPolygons_BoundingBox(t *testing.T) {
	ps := Polygons{square(10, 20, 110, 70)}
	min, max, ok := ps.BoundingBox()
	if !ok {
		t.Fatalf("expected ok=true for non-empty set")
	}
	if min != (Point2{10, 20}) || max != (Point2{110, 70}) {
		t.Errorf("unexpected bbox: min=%v max=%v", min, max)
	}
}

func TestPolygons_BoundingBox_Empty(t *testing.T) {
	var ps Polygons
	_, _, ok := ps.BoundingBox()
	if ok {
		t.Errorf("expected ok=false for empty set")
	}
}

func TestPolygons_PointInPolygons(t *testing.T) {
	ps := Polygons{square(0, 0, 100, 100)}

	cases := []struct {
		p      Point2
		inside bool
	}{
		{Point2{50, 50}, true},
		{Point2{1, 1}, true},
		{Point2{150, 50}, false},
		{Point2{-1, 50}, false},
	}
	for _, c := range cases {
		got := ps.PointInPolygons(c.p)
		if got != c.inside {
			t.Errorf("PointInPolygons(%v) = %v, want %v", c.p, got, c.inside)
		}
	}
}

func TestPolygons_Edges_VisitsEveryDirectedEdge(t *testing.T) {
	ps := Polygons{square(0, 0, 10, 10)}
	var got []Point2
	ps.Edges(func(p0, p1 Point2) bool {
		got = append(got, p0)
		return true
	})
	want := []Point2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	if len(got) != len(want) {
		t.Fatalf("got %d edges, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("edge start %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPolygons_Edges_EarlyStop(t *testing.T) {
	ps := Polygons{square(0, 0, 10, 10), square(100, 100, 110, 110)}
	visited := 0
	ok := ps.Edges(func(p0, p1 Point2) bool {
		visited++
		return visited < 2
	})
	if ok {
		t.Errorf("expected Edges to report false after early stop")
	}
	if visited != 2 {
		t.Errorf("expected exactly 2 visits before stopping, got %d", visited)
	}
}

func TestPolygons_Clone_IsIndependent(t *testing.T) {
	ps := Polygons{square(0, 0, 10, 10)}
	cloned := ps.Clone()
	cloned[0][0] = Point2{99, 99}
	if ps[0][0] == (Point2{99, 99}) {
		t.Errorf("mutating the clone mutated the original")
	}
}
