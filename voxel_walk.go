package interlock

import "math"

// VoxelUtils bundles the cell-size-parameterized walkers: line/polygon/
// area traversal plus dilation-kernel expansion, all over a single fixed
// CellSize.
type VoxelUtils struct {
	CellSize CellSize
}

// ToGrid floor-divides p by the grid's cell size.
func (v VoxelUtils) ToGrid(p Point3) GridPoint3 { return ToGrid(p, v.CellSize) }

// ToLowerCorner is ToGrid's inverse left boundary.
func (v VoxelUtils) ToLowerCorner(g GridPoint3) Point3 { return ToLowerCorner(g, v.CellSize) }

// ToCellPolygon returns cell g's XY footprint square.
func (v VoxelUtils) ToCellPolygon(g GridPoint3) Polygon { return ToCellPolygon(g, v.CellSize) }

// WalkLine enumerates every grid cell the segment (a,b] crosses via 3D
// DDA, emitting the cell containing a first. visit returning false stops
// immediately (WalkLine then returns false); exhausting the segment
// returns true. A degenerate segment (a == b) emits only the cell
// containing a.
func (v VoxelUtils) WalkLine(a, b Point3, visit func(GridPoint3) bool) bool {
	cs := v.CellSize
	g := ToGrid(a, cs)
	if !visit(g) {
		return false
	}
	if a == b {
		return true
	}
	end := ToGrid(b, cs)
	if g == end {
		return true
	}

	d := [3]float64{float64(b.X - a.X), float64(b.Y - a.Y), float64(b.Z - a.Z)}
	start := [3]float64{float64(a.X), float64(a.Y), float64(a.Z)}
	size := [3]float64{float64(cs.X), float64(cs.Y), float64(cs.Z)}
	gi := [3]int64{g.X, g.Y, g.Z}
	endI := [3]int64{end.X, end.Y, end.Z}

	var step [3]int64
	var tMax, tDelta [3]float64
	for axis := 0; axis < 3; axis++ {
		if d[axis] == 0 {
			step[axis] = 0
			tMax[axis] = math.Inf(1)
			tDelta[axis] = math.Inf(1)
			continue
		}
		if d[axis] > 0 {
			step[axis] = 1
			nextBoundary := float64(gi[axis]+1) * size[axis]
			tMax[axis] = (nextBoundary - start[axis]) / d[axis]
		} else {
			step[axis] = -1
			nextBoundary := float64(gi[axis]) * size[axis]
			tMax[axis] = (nextBoundary - start[axis]) / d[axis]
		}
		tDelta[axis] = size[axis] / math.Abs(d[axis])
	}

	const maxSteps = 1 << 20
	for i := 0; i < maxSteps; i++ {
		bestAxis := -1
		bestT := math.Inf(1)
		for axis := 0; axis < 3; axis++ {
			if tMax[axis] < bestT {
				bestT = tMax[axis]
				bestAxis = axis
			}
		}
		if bestAxis < 0 || bestT > 1+1e-9 {
			return true
		}

		gi[bestAxis] += step[bestAxis]
		tMax[bestAxis] += tDelta[bestAxis]

		next := GridPoint3{gi[0], gi[1], gi[2]}
		if !visit(next) {
			return false
		}
		if next == (GridPoint3{endI[0], endI[1], endI[2]}) {
			return true
		}
	}
	return true
}

// WalkPolygons visits every cell any edge of polys, placed at integer
// layer z, crosses.
func (v VoxelUtils) WalkPolygons(polys Polygons, z int64, visit func(GridPoint3) bool) bool {
	ok := true
	polys.Edges(func(p0, p1 Point2) bool {
		a := Point3{p0.X, p0.Y, z}
		b := Point3{p1.X, p1.Y, z}
		if !v.WalkLine(a, b, visit) {
			ok = false
			return false
		}
		return true
	})
	return ok
}

// WalkAreas visits every cell whose center lies inside polys (a scanline
// test over the cell's lower-corner-plus-half-cell-size center point),
// plus every cell any edge crosses, each cell emitted to visit at most
// once. z is a layer index, not a grid Z: both the interior scan and the
// boundary walk floor-divide it to the same grid plane, so a single call
// never straddles two Z planes.
func (v VoxelUtils) WalkAreas(polys Polygons, z int64, visit func(GridPoint3) bool) bool {
	seen := make(map[GridPoint3]struct{})
	wrapped := func(g GridPoint3) bool {
		if _, ok := seen[g]; ok {
			return true
		}
		seen[g] = struct{}{}
		return visit(g)
	}

	if polys.Empty() {
		return true
	}
	min, max, ok := polys.BoundingBox()
	if !ok {
		return true
	}
	minG := ToGrid(Point3{min.X, min.Y, z}, v.CellSize)
	maxG := ToGrid(Point3{max.X, max.Y, z}, v.CellSize)

	for gy := minG.Y; gy <= maxG.Y; gy++ {
		for gx := minG.X; gx <= maxG.X; gx++ {
			g := GridPoint3{gx, gy, minG.Z}
			lo := v.ToLowerCorner(g)
			center := Point2{X: lo.X + v.CellSize.X/2, Y: lo.Y + v.CellSize.Y/2}
			if polys.PointInPolygons(center) {
				if !wrapped(g) {
					return false
				}
			}
		}
	}

	return v.WalkPolygons(polys, z, wrapped)
}

// WalkDilatedPolygons is WalkPolygons followed by kernel expansion of
// every visited cell. Nothing is deduplicated here: a cell reached from
// several edges or offsets is passed to visit each time, so the visitor
// (CellSet.Insert in the driver) absorbs the repeats.
func (v VoxelUtils) WalkDilatedPolygons(polys Polygons, z int64, kernel DilationKernel, visit func(GridPoint3) bool) bool {
	ok := true
	v.WalkPolygons(polys, z, func(g GridPoint3) bool {
		if !kernel.Dilate(g, visit) {
			ok = false
			return false
		}
		return true
	})
	return ok
}

// WalkDilatedAreas is WalkAreas followed by kernel expansion of every
// visited cell.
func (v VoxelUtils) WalkDilatedAreas(polys Polygons, z int64, kernel DilationKernel, visit func(GridPoint3) bool) bool {
	ok := true
	v.WalkAreas(polys, z, func(g GridPoint3) bool {
		if !kernel.Dilate(g, visit) {
			ok = false
			return false
		}
		return true
	})
	return ok
}
