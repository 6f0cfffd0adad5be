package interlock

import "github.com/gekko3d/interlock/polygon"

// ShellVoxelizer computes the set of cells containing a mesh's boundary
// surface: wall outlines per layer plus the skin transition between
// consecutive layers, dilated by a kernel.
type ShellVoxelizer struct {
	Voxel  VoxelUtils
	Kernel DilationKernel
}

// BuildShell rotates every layer of m once, walks the rotated outlines
// (dilated), and additionally walks each layer's denoised XOR skin
// against the one below it. The z coordinate passed to the walkers is the
// integer layer index, not a world z: cells are
// (grid_x, grid_y, layer/cell_size.z).
func (sv ShellVoxelizer) BuildShell(m Slicer, rot Rotation) *CellSet {
	layers := m.Layers()
	rotated := make([]Polygons, len(layers))
	for i, layer := range layers {
		rotated[i] = rot.Apply(layer.Polygons)
	}

	shell := NewCellSet(0)
	for l := range rotated {
		sv.Voxel.WalkDilatedPolygons(rotated[l], int64(l), sv.Kernel, shell.Insert)
	}

	cs := sv.Voxel.CellSize
	for l := range rotated {
		var prev Polygons
		if l > 0 {
			prev = rotated[l-1]
		}
		skin := polygon.Xor(rotated[l], prev)
		skin = polygon.Open(skin, cs.X/2)
		sv.Voxel.WalkDilatedAreas(skin, int64(l), sv.Kernel, shell.Insert)
	}

	return shell
}
