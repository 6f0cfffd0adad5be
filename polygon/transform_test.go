package polygon

import "testing"

func TestMatrix2_Apply_Identity(t *testing.T) {
	m := Matrix2{A: 1, B: 0, C: 0, D: 1}
	p := m.Apply(Point2{X: 5, Y: -3})
	if p != (Point2{5, -3}) {
		t.Errorf("identity matrix should not move the point, got %v", p)
	}
}

func TestMatrix2_Apply_Rotate90(t *testing.T) {
	// (x, y) -> (-y, x)
	m := Matrix2{A: 0, B: -1, C: 1, D: 0}
	p := m.Apply(Point2{X: 10, Y: 0})
	if p != (Point2{0, 10}) {
		t.Errorf("expected (10,0) rotated 90deg to be (0,10), got %v", p)
	}
}

func TestApplyMatrix_TransformsEveryPoint(t *testing.T) {
	m := Matrix2{A: 2, B: 0, C: 0, D: 2}
	ps := Polygons{square(0, 0, 10, 10)}
	scaled := ApplyMatrix(ps, m)
	min, max, _ := scaled.BoundingBox()
	if min != (Point2{0, 0}) || max != (Point2{20, 20}) {
		t.Errorf("expected 2x scale to double the bbox, got min=%v max=%v", min, max)
	}
}

func TestTranslate_ShiftsEveryPoint(t *testing.T) {
	ps := Polygons{square(0, 0, 10, 10)}
	shifted := Translate(ps, Point2{X: 100, Y: -50})
	min, max, _ := shifted.BoundingBox()
	if min != (Point2{100, -50}) || max != (Point2{110, -40}) {
		t.Errorf("unexpected translated bbox: min=%v max=%v", min, max)
	}
}
