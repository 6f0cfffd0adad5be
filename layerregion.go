package interlock

import "github.com/gekko3d/interlock/polygon"

// BuildLayerRegions combines both meshes' per-layer outlines into a
// single "both models' footprint" per layer, closed by ignoredGap and
// rotated, for use as a clipping envelope. The returned
// slice has L+1 entries (indices 0..L), where L = max(|a.layers|,
// |b.layers|)+1; the topmost entry is the "ghost" layer, always empty
// since index L is always past both meshes' real layers, so later code
// can reference band*beamLayerCount for the tallest band without a bounds
// check.
func BuildLayerRegions(a, b Slicer, rot Rotation, ignoredGap Coord) []Polygons {
	la, lb := a.Layers(), b.Layers()
	L := maxInt(len(la), len(lb)) + 1

	regions := make([]Polygons, L+1)
	for l := 0; l <= L; l++ {
		var merged Polygons
		if l < len(la) {
			merged = polygon.Union(merged, la[l].Polygons)
		}
		if l < len(lb) {
			merged = polygon.Union(merged, lb[l].Polygons)
		}
		merged = polygon.Close(merged, ignoredGap)
		regions[l] = rot.Apply(merged)
	}
	return regions
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
