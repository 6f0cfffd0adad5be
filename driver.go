package interlock

import "github.com/gekko3d/interlock/polygon"

// InterlockingDriver orchestrates a single mesh pair: shell
// intersection, optional air filtering, template stamping into per-band
// accumulators, union/clip/unrotate, and the final per-layer rewrite.
type InterlockingDriver struct {
	Params          InterlockParams
	Voxel           VoxelUtils
	Rotation        Rotation
	InterfaceKernel DilationKernel
	AirKernel       DilationKernel
	Template        MicrostructureTemplate
}

func kernelSize(radius int64) int64 {
	if radius < 0 {
		radius = 0
	}
	return 2*radius + 1
}

// NewInterlockingDriver builds the two reusable kernels, the rotation, and
// the microstructure template table for one pair's parameters, so that
// each is constructed once and reused across every layer and both meshes.
func NewInterlockingDriver(p InterlockParams) *InterlockingDriver {
	cs := p.CellSize()
	ifaceSize := kernelSize(p.InterfaceDepth)
	airSize := kernelSize(p.BoundaryAvoidance)

	return &InterlockingDriver{
		Params:          p,
		Voxel:           VoxelUtils{CellSize: cs},
		Rotation:        NewRotation(p.RotationDegrees),
		InterfaceKernel: NewDilationKernel(GridPoint3{X: ifaceSize, Y: ifaceSize, Z: ifaceSize}, DIAMOND),
		AirKernel:       NewDilationKernel(GridPoint3{X: airSize, Y: airSize, Z: airSize}, PRISM),
		Template:        NewMicrostructureTemplate(cs, p.BeamWidthA, p.BeamWidthB),
	}
}

func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}

// Process runs the full pipeline for one mesh pair and mutates a and b's
// layer polygons in place. It returns the number of
// contact cells found, for observability only (Report, never consulted by
// the algorithm).
func (d *InterlockingDriver) Process(a, b Slicer) int {
	shellA := ShellVoxelizer{Voxel: d.Voxel, Kernel: d.InterfaceKernel}.BuildShell(a, d.Rotation)
	shellB := ShellVoxelizer{Voxel: d.Voxel, Kernel: d.InterfaceKernel}.BuildShell(b, d.Rotation)
	contact := shellA.Intersect(shellB)

	layerRegions := BuildLayerRegions(a, b, d.Rotation, d.Params.IgnoredGap)
	L := int64(len(layerRegions) - 1) // layerRegions has indices 0..L

	if d.Params.AirFiltering {
		airCells := d.computeAirCells(layerRegions)
		contact = contact.Subtract(airCells)
	}

	contactCount := contact.Len()

	beamLayerCount := d.Params.BeamLayerCount
	maxBand := ceilDiv(L+1, beamLayerCount)
	bandCount := int(maxBand) + 1

	// struct_per_mesh_per_band[m][b], accumulated as raw translated
	// template rectangles; unioned in the pass below.
	var raw [2][][]Polygon
	raw[0] = make([][]Polygon, bandCount)
	raw[1] = make([][]Polygon, bandCount)

	cs := d.Voxel.CellSize
	contact.Each(func(g GridPoint3) bool {
		corner := d.Voxel.ToLowerCorner(g)
		for ell := corner.Z; ell < corner.Z+cs.Z && ell < L; ell += beamLayerCount {
			band := ell / beamLayerCount
			parity := int(band % 2)
			if int(band) >= bandCount {
				continue
			}
			for m := 0; m < 2; m++ {
				tmpl := d.Template.At(parity, m)
				translated := make(Polygon, len(tmpl))
				for i, p := range tmpl {
					translated[i] = Point2{X: p.X + corner.X, Y: p.Y + corner.Y}
				}
				raw[m][band] = append(raw[m][band], translated)
			}
		}
		return true
	})

	var final [2][]Polygons
	final[0] = make([]Polygons, bandCount)
	final[1] = make([]Polygons, bandCount)

	for m := 0; m < 2; m++ {
		for band := 0; band < bandCount; band++ {
			var p Polygons
			for _, poly := range raw[m][band] {
				p = polygon.Union(p, Polygons{poly})
			}
			if !d.Params.AirFiltering {
				idx := int64(band) * beamLayerCount
				if idx >= 0 && idx < int64(len(layerRegions)) {
					p = polygon.Intersection(layerRegions[idx], p)
				} else {
					p = nil
				}
			}
			p = d.Rotation.Unapply(p)
			final[m][band] = p
		}
	}

	for m := 0; m < 2; m++ {
		mesh := a
		other := b
		if m == 1 {
			mesh, other = b, a
		}
		_ = other
		layers := mesh.Layers()
		for ell := 0; ell < len(layers); ell++ {
			band := ell / int(beamLayerCount)
			if band >= bandCount {
				continue
			}
			own := final[m][band]
			otherStruct := final[1-m][band]
			layers[ell].Polygons = polygon.Difference(polygon.Union(layers[ell].Polygons, own), otherStruct)
		}
	}

	return contactCount
}

// computeAirCells dilates the boundary of the combined layer region by
// the air kernel.
func (d *InterlockingDriver) computeAirCells(layerRegions []Polygons) *CellSet {
	air := NewCellSet(0)
	for l, region := range layerRegions {
		d.Voxel.WalkDilatedPolygons(region, int64(l), d.AirKernel, air.Insert)
	}
	return air
}
