package polygon

import "math"

// diskSides is the number of sides used to approximate a disk of radius r
// as a convex polygon when computing a Minkowski sum. No commonly
// reached-for Go module implements integer polygon offsetting
// (polyclip-go, used for the boolean ops below, does not), so offset is a
// from-scratch routine: a Minkowski sum with a disk, signed by the sign
// of the radius.
const diskSides = 16

func diskPolygon(center Point2, r int64) Polygon {
	if r <= 0 {
		return Polygon{center}
	}
	poly := make(Polygon, diskSides)
	for i := 0; i < diskSides; i++ {
		theta := 2 * math.Pi * float64(i) / float64(diskSides)
		poly[i] = Point2{
			X: center.X + roundCoord(float64(r)*math.Cos(theta)),
			Y: center.Y + roundCoord(float64(r)*math.Sin(theta)),
		}
	}
	return poly
}

// edgeStrip returns the rectangle swept by segment (p0,p1) offset
// perpendicular by r on both sides, capped at the endpoints (the vertex
// disks cover the rounded caps).
func edgeStrip(p0, p1 Point2, r int64) Polygon {
	dx := float64(p1.X - p0.X)
	dy := float64(p1.Y - p0.Y)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}
	nx := -dy / length * float64(r)
	ny := dx / length * float64(r)
	offX, offY := roundCoord(nx), roundCoord(ny)
	return Polygon{
		{p0.X + offX, p0.Y + offY},
		{p1.X + offX, p1.Y + offY},
		{p1.X - offX, p1.Y - offY},
		{p0.X - offX, p0.Y - offY},
	}
}

// dilate computes the Minkowski sum of ps with a disk of radius r (r >= 0).
func dilate(ps Polygons, r int64) Polygons {
	if r <= 0 || ps.Empty() {
		return ps.Clone()
	}
	acc := ps.Clone()
	for _, poly := range ps {
		n := len(poly)
		if n == 0 {
			continue
		}
		for i := 0; i < n; i++ {
			acc = Union(acc, Polygons{diskPolygon(poly[i], r)})
		}
		if n >= 2 {
			for i := 0; i < n; i++ {
				p0 := poly[i]
				p1 := poly[(i+1)%n]
				if strip := edgeStrip(p0, p1, r); strip != nil {
					acc = Union(acc, Polygons{strip})
				}
			}
		}
	}
	return acc
}

// erode computes the polygon set whose points have their full radius-r
// disk contained in ps, via the standard complement trick: erode(P,r) =
// U \ dilate(U \ P, r) for a universe rectangle U comfortably containing
// P plus the offset radius, so the dilation of the complement cannot
// reach back past U's own boundary and falsely erode true interior
// points.
func erode(ps Polygons, r int64) Polygons {
	if r <= 0 || ps.Empty() {
		return ps.Clone()
	}
	min, max, ok := ps.BoundingBox()
	if !ok {
		return nil
	}
	margin := r + 1
	u := Polygon{
		{min.X - margin, min.Y - margin},
		{max.X + margin, min.Y - margin},
		{max.X + margin, max.Y + margin},
		{min.X - margin, max.Y + margin},
	}
	universe := Polygons{u}
	complement := Difference(universe, ps)
	grownComplement := dilate(complement, r)
	return Difference(universe, grownComplement)
}

// Offset returns the Minkowski sum of ps with a disk of radius delta when
// delta > 0 (dilation/growth) or the corresponding erosion when delta < 0.
// delta == 0 returns a copy of ps unchanged.
func Offset(ps Polygons, delta int64) Polygons {
	switch {
	case delta > 0:
		return dilate(ps, delta)
	case delta < 0:
		return erode(ps, -delta)
	default:
		return ps.Clone()
	}
}

// Close applies a morphological close (dilate then erode) by radius r,
// the operation the layer region builder uses to smooth small gaps.
func Close(ps Polygons, r int64) Polygons {
	return Offset(Offset(ps, r), -r)
}

// Open applies a morphological open (erode then dilate) by radius r, the
// operation the shell voxelizer uses to drop sub-cell specks from a skin.
func Open(ps Polygons, r int64) Polygons {
	return Offset(Offset(ps, -r), r)
}
