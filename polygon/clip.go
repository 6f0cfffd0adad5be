package polygon

import (
	polyclip "github.com/akavel/polyclip-go"
)

// toClip converts a Polygons set to polyclip-go's float64-based
// representation. Coordinates in this module are micrometer-scale int64;
// float64 carries 52 bits of mantissa, comfortably exact for the
// centimeter-to-meter part ranges this generator targets, so the
// conversion loses no precision in practice even though it is not a
// type-level guarantee.
func toClip(ps Polygons) polyclip.Polygon {
	out := make(polyclip.Polygon, 0, len(ps))
	for _, poly := range ps {
		contour := make(polyclip.Contour, 0, len(poly))
		for _, p := range poly {
			contour = append(contour, polyclip.Point{X: float64(p.X), Y: float64(p.Y)})
		}
		out = append(out, contour)
	}
	return out
}

// fromClip converts back, rounding each coordinate to the nearest int64.
func fromClip(cp polyclip.Polygon) Polygons {
	out := make(Polygons, 0, len(cp))
	for _, contour := range cp {
		poly := make(Polygon, 0, len(contour))
		for _, p := range contour {
			poly = append(poly, Point2{X: roundCoord(p.X), Y: roundCoord(p.Y)})
		}
		if len(poly) > 0 {
			out = append(out, poly)
		}
	}
	return out
}

func roundCoord(v float64) int64 {
	if v >= 0 {
		return int64(v + 0.5)
	}
	return -int64(-v + 0.5)
}

// Union returns the union of a and b.
func Union(a, b Polygons) Polygons {
	if a.Empty() {
		return b.Clone()
	}
	if b.Empty() {
		return a.Clone()
	}
	return fromClip(toClip(a).Construct(polyclip.UNION, toClip(b)))
}

// Intersection returns the intersection of a and b.
func Intersection(a, b Polygons) Polygons {
	if a.Empty() || b.Empty() {
		return nil
	}
	return fromClip(toClip(a).Construct(polyclip.INTERSECTION, toClip(b)))
}

// Difference returns a minus b.
func Difference(a, b Polygons) Polygons {
	if a.Empty() {
		return nil
	}
	if b.Empty() {
		return a.Clone()
	}
	return fromClip(toClip(a).Construct(polyclip.DIFFERENCE, toClip(b)))
}

// Xor returns the symmetric difference of a and b.
func Xor(a, b Polygons) Polygons {
	if a.Empty() {
		return b.Clone()
	}
	if b.Empty() {
		return a.Clone()
	}
	return fromClip(toClip(a).Construct(polyclip.XOR, toClip(b)))
}

// UnionAll folds Union across every member of sets, left to right: the
// same fold the driver performs inline (calling Union directly) over each
// per-band polygon accumulator.
func UnionAll(sets ...Polygons) Polygons {
	var acc Polygons
	for _, s := range sets {
		acc = Union(acc, s)
	}
	return acc
}
