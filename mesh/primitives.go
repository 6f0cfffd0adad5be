package mesh

import "github.com/gekko3d/interlock/polygon"

// Cube builds a SlicedMesh whose every layer is a single square outline,
// spanning [minXY, maxXY) in X and Y and one layer per layerHeight step
// from minZ to maxZ.
func Cube(minXY, maxXY, minZ, maxZ, layerHeight Coord, wallLineWidth0 Coord, extruderNr int) *SlicedMesh {
	square := polygon.Polygon{
		{X: minXY, Y: minXY},
		{X: maxXY, Y: minXY},
		{X: maxXY, Y: maxXY},
		{X: minXY, Y: maxXY},
	}

	var layers []Layer
	for z := minZ; z < maxZ; z += layerHeight {
		cp := make(polygon.Polygon, len(square))
		copy(cp, square)
		layers = append(layers, Layer{Z: z, Polygons: polygon.Polygons{cp}})
	}
	return NewSlicedMesh(layers, wallLineWidth0, extruderNr)
}

// Slab is a single-layer Cube, useful for the smallest end-to-end
// exercises of the driver (one shared layer, no z extent to reason
// about).
func Slab(minXY, maxXY, z Coord, wallLineWidth0 Coord, extruderNr int) *SlicedMesh {
	return Cube(minXY, maxXY, z, z+1, 1, wallLineWidth0, extruderNr)
}

// AdjacentCubes builds two cubes of the given size sharing the face at
// x=boundary: a occupies [boundary-size, boundary), b occupies
// [boundary, boundary+size). Both span the same Z range on different
// extruders, the minimal geometry that produces a non-empty contact
// region.
func AdjacentCubes(boundary, size, minZ, maxZ, layerHeight, wallLineWidth0 Coord) (a, b *SlicedMesh) {
	a = Cube(boundary-size, boundary, minZ, maxZ, layerHeight, wallLineWidth0, 0)
	b = Cube(boundary, boundary+size, minZ, maxZ, layerHeight, wallLineWidth0, 1)
	return a, b
}

// OverlappingCubes builds two different-extruder cubes whose ranges
// overlap by overlap units along X, both spanning the same Z range: a
// genuine 3D overlap, not just a shared face.
func OverlappingCubes(size, overlap, minZ, maxZ, layerHeight, wallLineWidth0 Coord) (a, b *SlicedMesh) {
	a = Cube(0, size, minZ, maxZ, layerHeight, wallLineWidth0, 0)
	b = Cube(size-overlap, size-overlap+size, minZ, maxZ, layerHeight, wallLineWidth0, 1)
	return a, b
}

// GappedCubes builds two cubes separated by gap units along X, never
// touching, for exercising the AABB-overlap skip path.
func GappedCubes(size, gap, minZ, maxZ, layerHeight, wallLineWidth0 Coord) (a, b *SlicedMesh) {
	a = Cube(0, size, minZ, maxZ, layerHeight, wallLineWidth0, 0)
	b = Cube(size+gap, size+gap+size, minZ, maxZ, layerHeight, wallLineWidth0, 1)
	return a, b
}
