package interlock

import "testing"

func TestRotation_ZeroDegrees_IsIdentity(t *testing.T) {
	r := NewRotation(0)
	ps := Polygons{{{0, 0}, {100, 0}, {100, 100}, {0, 100}}}
	rotated := r.Apply(ps)
	min, max, _ := rotated.BoundingBox()
	if min != (Point2{0, 0}) || max != (Point2{100, 100}) {
		t.Errorf("0 degree rotation should not move the polygon, got min=%v max=%v", min, max)
	}
}

func TestRotation_Apply_Unapply_RoundTripsWithinOneUnit(t *testing.T) {
	r := NewRotation(22.5)
	ps := Polygons{{{1000, 2000}, {5000, 2000}, {5000, 6000}, {1000, 6000}}}
	roundTripped := r.Unapply(r.Apply(ps))

	for i, poly := range ps {
		for j, p := range poly {
			q := roundTripped[i][j]
			dx := p.X - q.X
			dy := p.Y - q.Y
			if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
				t.Errorf("point %d of polygon %d drifted by more than one unit: %v -> %v", j, i, p, q)
			}
		}
	}
}
