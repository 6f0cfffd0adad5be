// Package mesh provides a concrete implementation of the interlock
// package's Slicer contract plus synthetic geometry builders for tests
// and the demo CLI.
package mesh

import "github.com/gekko3d/interlock"

// Coord, Point3 and Layer alias the core package's types directly so a
// SlicedMesh satisfies interlock.Slicer without any conversion step.
type (
	Coord  = interlock.Coord
	Point3 = interlock.Point3
	Layer  = interlock.SlicerLayer
)

// SlicedMesh is a minimal, in-memory Slicer: an ordered layer stack plus
// the two settings interlock.Generate reads. It holds no geometry beyond
// what a real slicer's layer outlines would carry.
type SlicedMesh struct {
	layers         []Layer
	wallLineWidth0 Coord
	extruderNr     int
}

// NewSlicedMesh builds a SlicedMesh from an already-sliced layer stack.
func NewSlicedMesh(layers []Layer, wallLineWidth0 Coord, extruderNr int) *SlicedMesh {
	return &SlicedMesh{layers: layers, wallLineWidth0: wallLineWidth0, extruderNr: extruderNr}
}

// Layers returns the mesh's layer stack. Generate mutates each entry's
// Polygons field in place.
func (m *SlicedMesh) Layers() []Layer { return m.layers }

// AABB returns the mesh's world-space axis-aligned bounding box, computed
// from the layer stack: z from the first/last layer, x/y from every
// polygon vertex across every layer.
func (m *SlicedMesh) AABB() (min, max Point3) {
	if len(m.layers) == 0 {
		return Point3{}, Point3{}
	}
	first := true
	for _, l := range m.layers {
		for _, poly := range l.Polygons {
			for _, p := range poly {
				pt := Point3{X: p.X, Y: p.Y, Z: l.Z}
				if first {
					min, max = pt, pt
					first = false
					continue
				}
				if pt.X < min.X {
					min.X = pt.X
				}
				if pt.Y < min.Y {
					min.Y = pt.Y
				}
				if pt.Z < min.Z {
					min.Z = pt.Z
				}
				if pt.X > max.X {
					max.X = pt.X
				}
				if pt.Y > max.Y {
					max.Y = pt.Y
				}
				if pt.Z > max.Z {
					max.Z = pt.Z
				}
			}
		}
	}
	if first {
		z := m.layers[0].Z
		return Point3{Z: z}, Point3{Z: m.layers[len(m.layers)-1].Z}
	}
	return min, max
}

// WallLineWidth0 returns the wall_line_width_0 setting.
func (m *SlicedMesh) WallLineWidth0() Coord { return m.wallLineWidth0 }

// ExtruderNr returns the wall_0_extruder_nr setting.
func (m *SlicedMesh) ExtruderNr() int { return m.extruderNr }
