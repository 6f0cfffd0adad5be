// Package polygon implements 2D polygon algebra over sets of polygons
// with exact integer coordinates: union, intersection, difference, xor,
// offset, applyMatrix and translate.
//
// Boolean set operations are delegated to github.com/akavel/polyclip-go
// (clip.go); offsetting has no equivalent in any commonly-used Go
// module, so it is implemented directly here (offset.go).
package polygon

// Point2 is a point in the XY plane with exact integer (micrometer-scale)
// coordinates.
type Point2 struct {
	X, Y int64
}

// Polygon is an ordered sequence of points with an implicit closing edge
// from the last point back to the first.
type Polygon []Point2

// Polygons is a set of polygons, interpreted as their union (even-odd
// membership, consistently, across every operation in this package).
type Polygons []Polygon

// Add appends poly to the set.
func (ps Polygons) Add(poly Polygon) Polygons {
	return append(ps, poly)
}

// Empty reports whether the polygon set contains no polygons.
func (ps Polygons) Empty() bool {
	return len(ps) == 0
}

// BoundingBox returns the axis-aligned bounding box of every point across
// every polygon in the set. ok is false for an empty set.
func (ps Polygons) BoundingBox() (min, max Point2, ok bool) {
	first := true
	for _, poly := range ps {
		for _, p := range poly {
			if first {
				min, max = p, p
				first = false
				continue
			}
			if p.X < min.X {
				min.X = p.X
			}
			if p.Y < min.Y {
				min.Y = p.Y
			}
			if p.X > max.X {
				max.X = p.X
			}
			if p.Y > max.Y {
				max.Y = p.Y
			}
		}
	}
	return min, max, !first
}

// Edges calls visit for every directed edge (p0, p1) of every polygon in
// the set, in order. Early termination: visit returning false stops
// iteration immediately and Edges returns false; exhausting every edge
// returns true. WalkPolygons drives this to enumerate every cell a
// polygon's boundary crosses.
func (ps Polygons) Edges(visit func(p0, p1 Point2) bool) bool {
	for _, poly := range ps {
		n := len(poly)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			p0 := poly[i]
			p1 := poly[(i+1)%n]
			if !visit(p0, p1) {
				return false
			}
		}
	}
	return true
}

// PointInPolygons reports whether p lies inside the set under the
// even-odd rule, cast as a horizontal ray to +X.
func (ps Polygons) PointInPolygons(p Point2) bool {
	inside := false
	for _, poly := range ps {
		n := len(poly)
		if n < 3 {
			continue
		}
		for i, j := 0, n-1; i < n; j, i = i, i+1 {
			pi, pj := poly[i], poly[j]
			if (pi.Y > p.Y) != (pj.Y > p.Y) {
				xCross := float64(pj.X-pi.X)*float64(p.Y-pi.Y)/float64(pj.Y-pi.Y) + float64(pi.X)
				if float64(p.X) < xCross {
					inside = !inside
				}
			}
		}
	}
	return inside
}

// Clone returns a deep copy of the polygon set.
func (ps Polygons) Clone() Polygons {
	out := make(Polygons, len(ps))
	for i, poly := range ps {
		cp := make(Polygon, len(poly))
		copy(cp, poly)
		out[i] = cp
	}
	return out
}
