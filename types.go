// Package interlock implements the interlocking microstructure generator:
// given two sliced meshes printed in different materials that share a
// boundary, it rewrites their per-layer outlines so the two materials
// dovetail together along the contact region.
package interlock

import "github.com/gekko3d/interlock/polygon"

// Coord is the fixed-point micrometer-scale integer coordinate used
// throughout the core. Every stored coordinate is an integer, but not all
// arithmetic on it is: the boolean ops (polygon/clip.go) and offsetting
// (polygon/offset.go) compute in float64 and round back to integers,
// WalkLine's DDA compares float64 crossing times, and the rotation matrix
// in rotation.go is applied with rounding.
type Coord = int64

// Point2 is a 2D point in the XY plane, at some implicit layer z.
type Point2 = polygon.Point2

// Point3 is a world-space point in full 3D.
type Point3 struct {
	X, Y, Z Coord
}

// GridPoint3 is an integer cell index triple. It is comparable and usable
// directly as a map key.
type GridPoint3 struct {
	X, Y, Z int64
}

// Add returns g + o, componentwise.
func (g GridPoint3) Add(o GridPoint3) GridPoint3 {
	return GridPoint3{g.X + o.X, g.Y + o.Y, g.Z + o.Z}
}

// Polygon is an ordered sequence of Point2 with an implicit closing edge.
type Polygon = polygon.Polygon

// Polygons is a set of polygons interpreted as their union.
type Polygons = polygon.Polygons

// SlicerLayer is one printed layer: a world z-height plus its wall outlines.
type SlicerLayer struct {
	Z        Coord
	Polygons Polygons
}

// Slicer is the contract a sliced mesh must satisfy: an ordered,
// bottom-up stack of layers, plus the two settings the driver reads.
// mesh.SlicedMesh is the concrete implementation this module ships.
type Slicer interface {
	// Layers returns the ordered, bottom-up layer stack. The returned
	// slice's Polygons fields are mutated in place by Generate (step 9 of
	// the driver); nothing else in the core mutates a Slicer.
	Layers() []SlicerLayer
	// AABB returns the mesh's world-space axis-aligned bounding box.
	AABB() (min, max Point3)
	// WallLineWidth0 returns the wall_line_width_0 setting, in Coord units.
	WallLineWidth0() Coord
	// ExtruderNr returns the wall_0_extruder_nr setting.
	ExtruderNr() int
}
